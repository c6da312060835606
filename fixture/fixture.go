// fixture.go — synthetic OFF generators.
package fixture

import (
	"fmt"
	"strconv"
	"strings"
)

// Square is a 2x2 square split into two triangles along the 0-2
// diagonal.
func Square() string {
	return "OFF\n4 2 5\n0 0 0\n2 0 0\n2 2 0\n0 2 0\n3 0 1 2\n3 0 2 3\n"
}

// Grid builds a rows x cols axis-aligned grid of unit cells, each
// split into two triangles along its rising (bottom-left to
// top-right) diagonal, row-major indexed as row*cols + col.
func Grid(rows, cols int) string {
	if rows < 2 || cols < 2 {
		panic("fixture: Grid requires at least 2 rows and 2 cols")
	}
	idx := func(r, c int) int { return r*cols + c }

	var verts, faces strings.Builder
	nv, nf := 0, 0
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			fmt.Fprintf(&verts, "%d %d 0\n", c, r)
			nv++
		}
	}
	for r := 0; r < rows-1; r++ {
		for c := 0; c < cols-1; c++ {
			v00, v10, v11, v01 := idx(r, c), idx(r, c+1), idx(r+1, c+1), idx(r+1, c)
			fmt.Fprintf(&faces, "3 %d %d %d\n", v00, v10, v11)
			fmt.Fprintf(&faces, "3 %d %d %d\n", v00, v11, v01)
			nf += 2
		}
	}

	var sb strings.Builder
	sb.WriteString("OFF\n")
	sb.WriteString(strconv.Itoa(nv) + " " + strconv.Itoa(nf) + " 0\n")
	sb.WriteString(verts.String())
	sb.WriteString(faces.String())
	return sb.String()
}

// Sliver is a convex pentagon fan-triangulated from its first vertex.
// The pentagon's elongated shape guarantees the naive fan
// triangulation contains at least one edge that lies inside its
// neighbour's circumcircle, giving the flipper genuine work to
// converge on.
func Sliver() string {
	return "OFF\n5 3 8\n" +
		"0 0 0\n4 0 0\n4 1 0\n2 1.3 0\n0 1 0\n" +
		"3 0 1 2\n3 0 2 3\n3 0 3 4\n"
}
