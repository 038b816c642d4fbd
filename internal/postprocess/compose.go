package postprocess

import (
	"image"

	"golang.org/x/image/draw"
)

// SideBySide places panels left to right, top-aligned. Uncovered area stays
// transparent.
func SideBySide(panels ...*image.NRGBA) *image.NRGBA {
	w, h := 0, 0
	for _, p := range panels {
		w += p.Bounds().Dx()
		if p.Bounds().Dy() > h {
			h = p.Bounds().Dy()
		}
	}
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	x := 0
	for _, p := range panels {
		b := p.Bounds()
		draw.Draw(out, image.Rect(x, 0, x+b.Dx(), b.Dy()), p, b.Min, draw.Src)
		x += b.Dx()
	}
	return out
}
