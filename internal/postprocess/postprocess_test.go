package postprocess

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestDownsampleKeepsSolidColor(t *testing.T) {
	c := color.NRGBA{R: 200, G: 40, B: 10, A: 255}
	out := Downsample(solid(64, 32, c), 32, 16)
	assert.Equal(t, image.Rect(0, 0, 32, 16), out.Bounds())
	got := out.NRGBAAt(10, 8)
	assert.InDelta(t, int(c.R), int(got.R), 1)
	assert.InDelta(t, int(c.G), int(got.G), 1)
	assert.Equal(t, uint8(255), got.A)
}

func TestDownsampleNoOpWhenSmall(t *testing.T) {
	img := solid(8, 8, color.NRGBA{A: 255})
	assert.Same(t, img, Downsample(img, 16, 16))
}

func TestSideBySide(t *testing.T) {
	red := color.NRGBA{R: 255, A: 255}
	blue := color.NRGBA{B: 255, A: 255}
	out := SideBySide(solid(4, 2, red), solid(3, 5, blue))

	assert.Equal(t, image.Rect(0, 0, 7, 5), out.Bounds())
	assert.Equal(t, red, out.NRGBAAt(0, 0))
	assert.Equal(t, blue, out.NRGBAAt(6, 4))
	assert.Equal(t, color.NRGBA{}, out.NRGBAAt(0, 4))
}
