package canvas

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// painter fills antialiased paths into one destination image.
type painter struct {
	dst  *image.NRGBA
	rast *vector.Rasterizer
}

func newPainter(dst *image.NRGBA) *painter {
	b := dst.Bounds()
	return &painter{dst: dst, rast: vector.NewRasterizer(b.Dx(), b.Dy())}
}

func (p *painter) clear(c color.NRGBA) {
	draw.Draw(p.dst, p.dst.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// fillPolygon fills the closed polygon (xs[i], ys[i]). Fewer than three
// vertices cover no area and draw nothing.
func (p *painter) fillPolygon(xs, ys []float64, c color.NRGBA) {
	if len(xs) < 3 || c.A == 0 {
		return
	}
	b := p.dst.Bounds()
	p.rast.Reset(b.Dx(), b.Dy())
	p.rast.DrawOp = draw.Over
	p.rast.MoveTo(float32(xs[0]), float32(ys[0]))
	for i := 1; i < len(xs); i++ {
		p.rast.LineTo(float32(xs[i]), float32(ys[i]))
	}
	p.rast.ClosePath()
	p.rast.Draw(p.dst, b, image.NewUniform(c), image.Point{})
}

// strokeSegment draws a line of the given pixel width as a filled quad.
func (p *painter) strokeSegment(x0, y0, x1, y1, width float64, c color.NRGBA) {
	dx, dy := x1-x0, y1-y0
	l := math.Hypot(dx, dy)
	if l < 1e-9 {
		return
	}
	if width < 1 {
		width = 1
	}
	nx, ny := -dy/l*width/2, dx/l*width/2
	p.fillPolygon(
		[]float64{x0 + nx, x1 + nx, x1 - nx, x0 - nx},
		[]float64{y0 + ny, y1 + ny, y1 - ny, y0 - ny},
		c,
	)
}

// strokePolygon outlines a closed polygon.
func (p *painter) strokePolygon(xs, ys []float64, width float64, c color.NRGBA) {
	n := len(xs)
	if n < 2 {
		return
	}
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		p.strokeSegment(xs[i], ys[i], xs[j], ys[j], width, c)
	}
}

// fillCircle approximates a disc with a regular polygon.
func (p *painter) fillCircle(cx, cy, r float64, c color.NRGBA) {
	const sides = 24
	xs := make([]float64, sides)
	ys := make([]float64, sides)
	for i := 0; i < sides; i++ {
		a := 2 * math.Pi * float64(i) / sides
		xs[i] = cx + r*math.Cos(a)
		ys[i] = cy + r*math.Sin(a)
	}
	p.fillPolygon(xs, ys, c)
}

// withAlpha returns c with its alpha replaced by a in [0, 1].
func withAlpha(c color.NRGBA, a float64) color.NRGBA {
	switch {
	case a <= 0:
		c.A = 0
	case a >= 1:
		c.A = 0xff
	default:
		c.A = uint8(a*255 + 0.5)
	}
	return c
}
