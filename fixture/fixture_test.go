package fixture_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lvlath-labs/pddelaunay/fixture"
	"github.com/lvlath-labs/pddelaunay/flipper"
	"github.com/lvlath-labs/pddelaunay/kernel"
	"github.com/lvlath-labs/pddelaunay/mesh"
)

func TestSquare_Parses(t *testing.T) {
	m, err := mesh.ReadOFF[float64](strings.NewReader(fixture.Square()))
	require.NoError(t, err)
	require.Equal(t, 4, m.NumVertices())
	require.Equal(t, 2, m.NumFaces())
}

func TestGrid_Parses(t *testing.T) {
	m, err := mesh.ReadOFF[float64](strings.NewReader(fixture.Grid(4, 4)))
	require.NoError(t, err)
	require.Equal(t, 16, m.NumVertices())
	require.Equal(t, 18, m.NumFaces()) // 2 * 3 * 3 cells
}

func TestSliver_ConvergesToFixpoint(t *testing.T) {
	m, err := mesh.ReadOFF[float64](strings.NewReader(fixture.Sliver()))
	require.NoError(t, err)

	u := kernel.Vector[float64]{X: 1, Y: 0}
	v := kernel.Vector[float64]{X: 0, Y: 1}
	flips := 0
	require.NoError(t, flipper.Flip(m, u, v, flipper.WithOnFlip(func(int) { flips++ })))
	require.NotZero(t, flips, "sliver fixture should require at least one flip to reach a fixpoint")

	for h := 0; h < m.NumHalfedges(); h++ {
		hh := mesh.HalfedgeHandle(h)
		ht := m.Twin(hh)
		if m.IsBoundary(hh) || m.IsBoundary(ht) || hh > ht {
			continue
		}
		a, c := m.Source(hh), m.Target(hh)
		d := m.Target(m.Next(hh))
		b := m.Target(m.Next(ht))
		pa, pb, pc, pd := m.VertexPoint(a), m.VertexPoint(b), m.VertexPoint(c), m.VertexPoint(d)
		if !kernel.IsStrictlyConvexQuad(pa, pb, pc, pd) {
			continue
		}
		require.True(t, kernel.IsLocallyPDDelaunayEdge(pa, pb, pc, pd, u, v))
	}
}
