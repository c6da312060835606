// off.go — the OFF reader and writer. ReadOFF is the mesh's only
// constructor: a staged builder that parses vertices,
// parses and links triangular faces, synthesizes boundary halfedges,
// links the boundary into cycles, and validates every invariant before
// returning a usable *Mesh.
package mesh

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lvlath-labs/pddelaunay/kernel"
)

// directedEdge canonicalizes one (source, target) pair for the edge
// map used while linking faces.
type directedEdge struct{ from, to VertexHandle }

// ReadOFF parses an OFF stream into a validated Mesh. Any parse or
// topology error discards the partial mesh; there is nothing left
// observable on failure.
func ReadOFF[T kernel.Real](r io.Reader) (*Mesh[T], error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	header, ok := nextToken(sc)
	if !ok || header != "OFF" {
		return nil, ErrBadHeader
	}

	nv, nf, _, err := readCounts(sc)
	if err != nil {
		return nil, err
	}

	m := &Mesh[T]{
		vertices: make([]vertex[T], nv),
	}
	for i := 0; i < nv; i++ {
		p, err := readVertex[T](sc)
		if err != nil {
			return nil, err
		}
		m.vertices[i] = vertex[T]{point: p, halfedge: NullHalfedge}
	}

	edgeOf := make(map[directedEdge]HalfedgeHandle, 3*nf)
	m.faces = make([]face, 0, nf)
	m.halfedges = make([]halfedge, 0, 3*nf)

	for fi := 0; fi < nf; fi++ {
		idx, err := readFaceIndices(sc, nv)
		if err != nil {
			return nil, err
		}
		if err := m.linkFace(idx, edgeOf); err != nil {
			return nil, err
		}
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("mesh: ReadOFF: %w", err)
	}

	m.synthesizeBoundary(edgeOf)
	m.linkBoundaryCycles()

	if err := m.validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func nextToken(sc *bufio.Scanner) (string, bool) {
	for sc.Scan() {
		f := strings.Fields(sc.Text())
		if len(f) == 0 {
			continue
		}
		return f[0], true
	}
	return "", false
}

func nextFields(sc *bufio.Scanner) ([]string, bool) {
	for sc.Scan() {
		f := strings.Fields(sc.Text())
		if len(f) == 0 {
			continue
		}
		return f, true
	}
	return nil, false
}

func readCounts(sc *bufio.Scanner) (v, f, e int, err error) {
	fields, ok := nextFields(sc)
	if !ok || len(fields) < 3 {
		return 0, 0, 0, ErrBadCounts
	}
	v, err1 := strconv.Atoi(fields[0])
	f, err2 := strconv.Atoi(fields[1])
	e, err3 := strconv.Atoi(fields[2])
	if err1 != nil || err2 != nil || err3 != nil || v < 0 || f < 0 || e < 0 {
		return 0, 0, 0, ErrBadCounts
	}
	return v, f, e, nil
}

func readVertex[T kernel.Real](sc *bufio.Scanner) (kernel.Point[T], error) {
	fields, ok := nextFields(sc)
	if !ok || len(fields) < 3 {
		return kernel.Point[T]{}, ErrBadVertex
	}
	x, err1 := strconv.ParseFloat(fields[0], 64)
	y, err2 := strconv.ParseFloat(fields[1], 64)
	_, err3 := strconv.ParseFloat(fields[2], 64) // z is parsed, then discarded
	if err1 != nil || err2 != nil || err3 != nil {
		return kernel.Point[T]{}, ErrBadVertex
	}
	return kernel.Point[T]{X: T(x), Y: T(y)}, nil
}

func readFaceIndices(sc *bufio.Scanner, nv int) ([3]VertexHandle, error) {
	var zero [3]VertexHandle
	fields, ok := nextFields(sc)
	if !ok {
		return zero, ErrNotTriangle
	}
	degree, err := strconv.Atoi(fields[0])
	if err != nil || degree != 3 || len(fields) != 4 {
		return zero, ErrNotTriangle
	}
	var idx [3]VertexHandle
	for k := 0; k < 3; k++ {
		n, err := strconv.Atoi(fields[k+1])
		if err != nil || n < 0 || n >= nv {
			return zero, ErrBadFaceIndex
		}
		idx[k] = VertexHandle(n)
	}
	if idx[0] == idx[1] || idx[1] == idx[2] || idx[0] == idx[2] {
		return zero, ErrBadFaceIndex
	}
	return idx, nil
}

// linkFace creates the three directed halfedges of one CCW triangle,
// wiring next/prev/face and twinning against any opposite-direction
// halfedge already created by a neighbouring face.
func (m *Mesh[T]) linkFace(idx [3]VertexHandle, edgeOf map[directedEdge]HalfedgeHandle) error {
	a, b, c := m.vertices[idx[0]].point, m.vertices[idx[1]].point, m.vertices[idx[2]].point
	if kernel.Orient(a, b, c) != kernel.LeftTurn {
		return ErrClockwiseFace
	}

	fh := FaceHandle(len(m.faces))
	var hs [3]HalfedgeHandle
	for k := 0; k < 3; k++ {
		from, to := idx[k], idx[(k+1)%3]
		if _, exists := edgeOf[directedEdge{from, to}]; exists {
			return ErrCoincidentFaces
		}
		hh := HalfedgeHandle(len(m.halfedges))
		m.halfedges = append(m.halfedges, halfedge{target: to, twin: NullHalfedge, face: fh})
		edgeOf[directedEdge{from, to}] = hh
		m.vertices[from].halfedge = hh
		hs[k] = hh

		if rev, ok := edgeOf[directedEdge{to, from}]; ok {
			m.halfedges[hh].twin = rev
			m.halfedges[rev].twin = hh
		}
	}
	for k := 0; k < 3; k++ {
		m.halfedges[hs[k]].next = hs[(k+1)%3]
		m.halfedges[hs[k]].prev = hs[(k+2)%3]
	}
	m.faces = append(m.faces, face{halfedge: hs[0]})
	return nil
}

// synthesizeBoundary creates, for every interior halfedge whose
// reverse direction was never claimed by a face, the missing twin:
// a halfedge with Face = NullFace.
func (m *Mesh[T]) synthesizeBoundary(edgeOf map[directedEdge]HalfedgeHandle) {
	n := len(m.halfedges)
	for hh := 0; hh < n; hh++ {
		if m.halfedges[hh].twin != NullHalfedge {
			continue
		}
		src := m.Source(HalfedgeHandle(hh))
		bh := HalfedgeHandle(len(m.halfedges))
		m.halfedges = append(m.halfedges, halfedge{target: src, twin: HalfedgeHandle(hh), face: NullFace})
		m.halfedges[hh].twin = bh
	}
}

// linkBoundaryCycles sets next/prev among all boundary halfedges by
// rotating around each boundary halfedge's target vertex: starting
// from its (interior) twin and repeatedly applying twin(prev(.)) until
// another boundary halfedge is reached.
func (m *Mesh[T]) linkBoundaryCycles() {
	for hh := range m.halfedges {
		if m.halfedges[hh].face != NullFace {
			continue
		}
		b := HalfedgeHandle(hh)
		cur := m.halfedges[b].twin
		for m.halfedges[cur].face != NullFace {
			cur = m.halfedges[m.halfedges[cur].prev].twin
		}
		m.halfedges[b].next = cur
		m.halfedges[cur].prev = b
	}
}

// WriteOFF serializes m in OFF format: vertices in arena (index) order
// with z = 0, then one "3 i j k" line per face in face-iteration
// order.
func WriteOFF[T kernel.Real](w io.Writer, m *Mesh[T]) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "OFF")
	fmt.Fprintf(bw, "%d %d %d\n", len(m.vertices), len(m.faces), 0)
	for _, v := range m.vertices {
		p := kernel.PointToR2(kernel.Point[float64]{X: float64(v.point.X), Y: float64(v.point.Y)})
		fmt.Fprintf(bw, "%v %v 0\n", p.X, p.Y)
	}
	for fi := range m.faces {
		verts := m.FaceVertices(FaceHandle(fi))
		fmt.Fprintf(bw, "3 %d %d %d\n", verts[0], verts[1], verts[2])
	}
	return bw.Flush()
}
