package interval

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestRoundingScopeRestoration verifies that an acquired rounding
// scope stays open until its release function runs, and that scopes
// are balanced again afterwards.
func TestRoundingScopeRestoration(t *testing.T) {
	require.True(t, scopeBalanced())

	release := acquireRounding()
	require.False(t, scopeBalanced())
	release()
	require.True(t, scopeBalanced())
}

// TestRoundingScopeDoubleReleasePanics guards the invariant that a
// scope cannot be released twice without corrupting the depth counter.
func TestRoundingScopeDoubleReleasePanics(t *testing.T) {
	release := acquireRounding()
	release()
	require.Panics(t, func() { release() })
}

func TestBumpDirection(t *testing.T) {
	require.Less(t, bumpDown(1.0), 1.0+1e-300) // bumpDown never rounds a value up
	require.LessOrEqual(t, bumpDown(1.0), 1.0)
	require.GreaterOrEqual(t, bumpUp(1.0), 1.0)
	require.Less(t, float32(0), bumpUp(float32(0)))
	require.Greater(t, float32(0), bumpDown(float32(0)))
}
