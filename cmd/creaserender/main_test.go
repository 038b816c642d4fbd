package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crease-renderer/internal/config"
)

func TestParseAngles(t *testing.T) {
	got, err := parseAngles("0.5, -1,0")
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, -1, 0}, got)

	_, err = parseAngles("1,x")
	assert.Error(t, err)
}

func testConfig(t *testing.T) config.Config {
	cfg := config.Default()
	cfg.Render.Size = 32
	cfg.Render.Supersample = 1
	cfg.Planar.WidthPx = 48
	cfg.Planar.HeightPx = 32
	cfg.Output.Dir = t.TempDir()
	cfg.Output.Format = "png"
	cfg.Batch.Frames = 3
	cfg.Batch.Workers = 2
	return cfg
}

func TestRunModes(t *testing.T) {
	pattern := filepath.Join("..", "..", "patterns", "strip.yaml")
	for _, mode := range []string{"planar", "reference", "folded", "combined"} {
		t.Run(mode, func(t *testing.T) {
			cfg := testConfig(t)
			require.NoError(t, run(context.Background(), cfg, pattern, mode, "", 1))
			entries, err := os.ReadDir(cfg.Output.Dir)
			require.NoError(t, err)
			require.Len(t, entries, 1)
			assert.Contains(t, entries[0].Name(), "_"+mode+".png")
		})
	}
}

func TestRunSequence(t *testing.T) {
	cfg := testConfig(t)
	pattern := filepath.Join("..", "..", "patterns", "strip.yaml")
	require.NoError(t, run(context.Background(), cfg, pattern, "sequence", "", 1))

	matches, err := filepath.Glob(filepath.Join(cfg.Output.Dir, "*", "frame_*.png"))
	require.NoError(t, err)
	assert.Len(t, matches, 3)
	manifests, err := filepath.Glob(filepath.Join(cfg.Output.Dir, "*", "manifest.json"))
	require.NoError(t, err)
	assert.Len(t, manifests, 1)
}

func TestRunErrors(t *testing.T) {
	cfg := testConfig(t)
	pattern := filepath.Join("..", "..", "patterns", "strip.yaml")
	assert.Error(t, run(context.Background(), cfg, pattern, "bogus", "", 1))
	assert.Error(t, run(context.Background(), cfg, pattern, "folded", "1", 1))
	assert.Error(t, run(context.Background(), cfg, "missing.yaml", "planar", "", 1))

	err := run(context.Background(), cfg, pattern, "sequence", "0,0,0", 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sequence")
	entries, err := os.ReadDir(cfg.Output.Dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
