package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lvlath-labs/pddelaunay/config"
	"github.com/lvlath-labs/pddelaunay/kernel"
)

func TestResolve_Defaults(t *testing.T) {
	cfg, err := config.Resolve()
	require.NoError(t, err)
	require.Equal(t, kernel.Vector[float64]{X: 1, Y: 0}, cfg.U)
	require.Equal(t, kernel.Vector[float64]{X: 1, Y: 1}, cfg.V)
}

func TestResolve_WithDirections(t *testing.T) {
	cfg, err := config.Resolve(config.WithDirections(
		kernel.Vector[float64]{X: 0, Y: 1},
		kernel.Vector[float64]{X: 1, Y: 2},
	))
	require.NoError(t, err)
	require.Equal(t, kernel.Vector[float64]{X: 0, Y: 1}, cfg.U)
	require.Equal(t, kernel.Vector[float64]{X: 1, Y: 2}, cfg.V)
}

func TestResolve_RejectsInvalidPair(t *testing.T) {
	_, err := config.Resolve(config.WithDirections(
		kernel.Vector[float64]{X: 1, Y: 0},
		kernel.Vector[float64]{X: 2, Y: 0}, // parallel to u
	))
	require.ErrorIs(t, err, kernel.ErrParallelVectors)
}

func TestResolve_WithYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "directions.yaml")
	require.NoError(t, os.WriteFile(path, []byte("u:\n  x: 0\n  y: 1\nv:\n  x: 1\n  y: 2\n"), 0o644))

	cfg, err := config.Resolve(config.WithYAMLFile(path))
	require.NoError(t, err)
	require.Equal(t, kernel.Vector[float64]{X: 0, Y: 1}, cfg.U)
	require.Equal(t, kernel.Vector[float64]{X: 1, Y: 2}, cfg.V)
}

func TestResolve_WithYAMLFile_PartialOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "directions.yaml")
	require.NoError(t, os.WriteFile(path, []byte("u:\n  x: 0\n  y: 1\n"), 0o644))

	cfg, err := config.Resolve(config.WithYAMLFile(path))
	require.NoError(t, err)
	require.Equal(t, kernel.Vector[float64]{X: 0, Y: 1}, cfg.U)
	require.Equal(t, kernel.Vector[float64]{X: 1, Y: 1}, cfg.V) // default, unset by file
}

func TestResolve_WithYAMLFile_Missing(t *testing.T) {
	_, err := config.Resolve(config.WithYAMLFile("/nonexistent/directions.yaml"))
	require.ErrorIs(t, err, config.ErrOptionViolation)
}
