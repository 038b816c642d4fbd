package render

import (
	"image"
	"image/color"
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crease-renderer/internal/config"
	"crease-renderer/internal/creasepattern"
	"crease-renderer/internal/plot"
)

func loadStrip(t *testing.T) *creasepattern.Pattern {
	t.Helper()
	p, err := creasepattern.Load(filepath.Join("..", "creasepattern", "testdata", "strip.yaml"))
	require.NoError(t, err)
	return p
}

func smallConfig() config.Config {
	cfg := config.Default()
	cfg.Render.Size = 64
	cfg.Render.Supersample = 2
	cfg.Planar.WidthPx = 80
	cfg.Planar.HeightPx = 60
	return cfg
}

func TestExtent(t *testing.T) {
	// Fixed face 1 is centered at (1.5, 0.5); the far corners are 1.5 across
	// and 0.5 up.
	assert.InDelta(t, math.Hypot(1.5, 0.5), Extent(loadStrip(t)), 1e-12)
}

func TestTargetAngles(t *testing.T) {
	assert.Equal(t, []float64{-0.25, 0.25, 0}, TargetAngles(loadStrip(t), 0.5))
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#ff8000")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{0xff, 0x80, 0x00, 0xff}, c)

	_, err = ParseColor("#zz")
	assert.Error(t, err)
}

func TestFoldedImage(t *testing.T) {
	cfg := smallConfig()
	img, err := Folded(loadStrip(t), TargetAngles(loadStrip(t), 1), cfg.Render)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 64, 64), img.Bounds())

	bg := color.NRGBA{0xff, 0xff, 0xff, 0xff}
	assert.Equal(t, bg, img.NRGBAAt(0, 0))
	assert.NotEqual(t, bg, img.NRGBAAt(32, 32), "fixed face covers the center")
}

func TestFoldedRejectsWrongAngleCount(t *testing.T) {
	_, err := Folded(loadStrip(t), []float64{1}, smallConfig().Render)
	assert.ErrorIs(t, err, plot.ErrInvalidInput)
}

func TestReferenceAndPlanarAndCombined(t *testing.T) {
	cfg := smallConfig()
	p := loadStrip(t)

	ref, err := Reference(p, cfg.Render)
	require.NoError(t, err)
	assert.Equal(t, 64, ref.Bounds().Dx())

	planar, err := Planar(p, cfg.Planar, 2)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 80, 60), planar.Bounds())

	both, err := Combined(p, TargetAngles(p, 0.5), cfg)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 144, 64), both.Bounds())
}
