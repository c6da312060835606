package kernel_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lvlath-labs/pddelaunay/kernel"
)

func pt(x, y float64) kernel.Point[float64] { return kernel.Point[float64]{X: x, Y: y} }
func vec(x, y float64) kernel.Vector[float64] { return kernel.Vector[float64]{X: x, Y: y} }

func TestOrient(t *testing.T) {
	a, b, c, d, e := pt(0, 0), pt(2, 2), pt(2, 0), pt(1, 1), pt(0, 2)

	require.Equal(t, kernel.RightTurn, kernel.Orient(a, b, c))
	require.Equal(t, kernel.Collinear, kernel.Orient(a, b, d))
	require.Equal(t, kernel.LeftTurn, kernel.Orient(a, b, e))
}

func TestIsStrictlyConvexQuad(t *testing.T) {
	a02, b00, c20, d22, e11 := pt(0, 2), pt(0, 0), pt(2, 0), pt(2, 2), pt(1, 1)

	require.True(t, kernel.IsStrictlyConvexQuad(a02, b00, c20, d22))
	require.False(t, kernel.IsStrictlyConvexQuad(b00, e11, d22, pt(3, 3))) // collinear
	require.False(t, kernel.IsStrictlyConvexQuad(a02, b00, e11, pt(3, 0)))
}

// TestSideOfOrientedCircle_Cocircular checks that a square's four
// corners are cocircular, so the diagonal's opposite vertex lies
// exactly on the circumcircle (OnBoundary), never inside.
func TestSideOfOrientedCircle_Cocircular(t *testing.T) {
	a, b, c, d := pt(0, 0), pt(2, 0), pt(2, 2), pt(0, 2)
	require.Equal(t, kernel.OnBoundary, kernel.SideOfOrientedCircle(a, b, c, d))
}

// TestSideOfOrientedCircle_Perturbation checks that a tiny perturbation
// of a cocircular configuration flips the boundary result to a
// definite side.
func TestSideOfOrientedCircle_Perturbation(t *testing.T) {
	a, b, c := pt(0, 0), pt(2, 0), pt(2, 2)
	inside := pt(0, 2-1e-9)  // pulled slightly into the circle
	outside := pt(0, 2+1e-9) // pushed slightly out

	require.Equal(t, kernel.OnNegativeSide, kernel.SideOfOrientedCircle(a, b, c, outside))
	require.Equal(t, kernel.OnPositiveSide, kernel.SideOfOrientedCircle(a, b, c, inside))
}

func TestPreferredDirection(t *testing.T) {
	a, b, c, d := pt(0, 0), pt(2, 2), pt(2, 0), pt(0, 2)
	// ab runs along (1,1), cd runs along (-2,2) i.e. direction (-1,1).
	alongAB := vec(1, 1)
	alongCD := vec(-1, 1)

	require.Equal(t, 1, kernel.PreferredDirection(a, b, c, d, alongAB))
	require.Equal(t, 1, kernel.PreferredDirection(c, d, a, b, alongCD))
	require.Equal(t, 0, kernel.PreferredDirection(a, b, a, b, alongAB))
}

// TestIsLocallyPDDelaunayEdge_TieBreak checks that a square's
// diagonal is a cocircular tie broken by u then v.
func TestIsLocallyPDDelaunayEdge_TieBreak(t *testing.T) {
	// Square 0,0 / 2,0 / 2,2 / 0,2. Diagonal edge endpoints are (0,0)-(2,2);
	// b=(2,0), d=(0,2) are the opposite vertices.
	a, b, c, d := pt(0, 0), pt(2, 0), pt(2, 2), pt(0, 2)

	// u=(1,0), v=(1,1): both diagonals are equally aligned with u, so v
	// decides; a-c runs along v, so the edge is locally PD-Delaunay: no
	// flip needed.
	require.True(t, kernel.IsLocallyPDDelaunayEdge(a, b, c, d, vec(1, 0), vec(1, 1)))

	// u=(0,1), v=(1,0): both diagonals are equally aligned with u and with
	// v, so the tie stays unresolved and a-c is NOT locally PD-Delaunay:
	// a flip is required.
	require.False(t, kernel.IsLocallyPDDelaunayEdge(a, b, c, d, vec(0, 1), vec(1, 0)))
}

func TestValidateDirections(t *testing.T) {
	require.NoError(t, kernel.ValidateDirections(vec(1, 0), vec(1, 1)))
	require.ErrorIs(t, kernel.ValidateDirections(vec(0, 0), vec(1, 1)), kernel.ErrZeroVector)
	require.ErrorIs(t, kernel.ValidateDirections(vec(1, 1), vec(2, 2)), kernel.ErrParallelVectors)
	require.ErrorIs(t, kernel.ValidateDirections(vec(1, 0), vec(0, 1)), kernel.ErrOrthogonalVectors)
}

func TestStatsFilterSoundness(t *testing.T) {
	kernel.ResetStats[float64]()
	// A cocircular in-circle test forces the exact fallback.
	a, b, c, d := pt(0, 0), pt(2, 0), pt(2, 2), pt(0, 2)
	kernel.SideOfOrientedCircle(a, b, c, d)

	stats := kernel.StatsFor[float64]()
	require.Equal(t, uint64(1), stats.SideOfOrientedCircleTotal)
	require.LessOrEqual(t, stats.SideOfOrientedCircleExact, stats.SideOfOrientedCircleTotal)
	require.Equal(t, uint64(1), stats.SideOfOrientedCircleExact)
}
