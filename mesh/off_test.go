package mesh_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lvlath-labs/pddelaunay/mesh"
)

// square is a 2x2 square split into two triangles along the 0-2
// diagonal.
const square = "OFF\n4 2 5\n0 0 0\n2 0 0\n2 2 0\n0 2 0\n3 0 1 2\n3 0 2 3\n"

func TestReadOFF_Square(t *testing.T) {
	m, err := mesh.ReadOFF[float64](strings.NewReader(square))
	require.NoError(t, err)
	require.Equal(t, 4, m.NumVertices())
	require.Equal(t, 2, m.NumFaces())
	require.Equal(t, 10, m.NumHalfedges()) // 3 per face * 2 faces + 4 boundary
}

func TestReadOFF_RoundTrip(t *testing.T) {
	m, err := mesh.ReadOFF[float64](strings.NewReader(square))
	require.NoError(t, err)

	var out strings.Builder
	require.NoError(t, mesh.WriteOFF[float64](&out, m))

	m2, err := mesh.ReadOFF[float64](strings.NewReader(out.String()))
	require.NoError(t, err)
	require.Equal(t, m.NumVertices(), m2.NumVertices())
	require.Equal(t, m.NumFaces(), m2.NumFaces())
	for i := 0; i < m.NumVertices(); i++ {
		require.Equal(t, m.VertexPoint(mesh.VertexHandle(i)), m2.VertexPoint(mesh.VertexHandle(i)))
	}
}

func TestReadOFF_RejectsNonTriangleFace(t *testing.T) {
	const bad = "OFF\n4 1 4\n0 0 0\n2 0 0\n2 2 0\n0 2 0\n4 0 1 2 3\n"
	_, err := mesh.ReadOFF[float64](strings.NewReader(bad))
	require.ErrorIs(t, err, mesh.ErrNotTriangle)
}

func TestReadOFF_RejectsClockwiseFace(t *testing.T) {
	const bad = "OFF\n3 1 3\n0 0 0\n2 0 0\n0 2 0\n3 0 2 1\n"
	_, err := mesh.ReadOFF[float64](strings.NewReader(bad))
	require.ErrorIs(t, err, mesh.ErrClockwiseFace)
}

func TestReadOFF_RejectsCoincidentFaces(t *testing.T) {
	const bad = "OFF\n3 2 3\n0 0 0\n2 0 0\n0 2 0\n3 0 1 2\n3 0 1 2\n"
	_, err := mesh.ReadOFF[float64](strings.NewReader(bad))
	require.ErrorIs(t, err, mesh.ErrCoincidentFaces)
}

func TestReadOFF_RejectsBadHeader(t *testing.T) {
	_, err := mesh.ReadOFF[float64](strings.NewReader("NOPE\n0 0 0\n"))
	require.ErrorIs(t, err, mesh.ErrBadHeader)
}
