package batch

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crease-renderer/internal/config"
	"crease-renderer/internal/creasepattern"
)

func setup(t *testing.T) (config.Config, *creasepattern.Pattern) {
	t.Helper()
	p, err := creasepattern.Load(filepath.Join("..", "creasepattern", "testdata", "strip.yaml"))
	require.NoError(t, err)

	cfg := config.Default()
	cfg.Render.Size = 32
	cfg.Render.Supersample = 1
	cfg.Output.Dir = t.TempDir()
	cfg.Output.Format = "png"
	cfg.Batch.Workers = 3
	return cfg, p
}

func TestFrames(t *testing.T) {
	_, p := setup(t)
	frames := Frames(p, 5)
	require.Len(t, frames, 5)
	assert.Equal(t, 0.0, frames[0].T)
	assert.Equal(t, 1.0, frames[4].T)
	assert.Equal(t, []float64{0, 0, 0}, frames[0].Angles)
	assert.Equal(t, p.FoldAngleTarget(), frames[4].Angles)
	assert.Len(t, Frames(p, 0), 2)
}

func TestRunWritesEveryFrame(t *testing.T) {
	cfg, p := setup(t)
	results := Run(context.Background(), cfg, p, Frames(p, 6))

	require.Len(t, results, 6)
	for i, r := range results {
		assert.True(t, r.Success, r.Error)
		assert.Equal(t, i, r.Frame.Index)
		assert.FileExists(t, filepath.Join(cfg.Output.Dir, r.Image))
	}

	path := filepath.Join(cfg.Output.Dir, "manifest.json")
	require.NoError(t, WriteManifest(path, "strip", results))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var m Manifest
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, "strip", m.Pattern)
	require.Len(t, m.Frames, 6)
	assert.Equal(t, "frame_005.png", m.Frames[5].Image)
}

func TestRunReportsRenderErrors(t *testing.T) {
	cfg, p := setup(t)
	frames := []Frame{{Index: 0, Angles: []float64{1}}}
	results := Run(context.Background(), cfg, p, frames)
	require.Len(t, results, 1)
	assert.False(t, results[0].Success)
	assert.Contains(t, results[0].Error, "invalid input")
}

func TestRunCancelled(t *testing.T) {
	cfg, p := setup(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	results := Run(ctx, cfg, p, Frames(p, 4))
	for _, r := range results {
		// A cancelled run may still finish frames already handed out.
		if !r.Success {
			assert.Equal(t, "not rendered", r.Error)
		}
	}
}
