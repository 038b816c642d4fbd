package canvas

import (
	"image"
	"image/color"
	"math"
	"sort"

	"crease-renderer/internal/mathutil"
	"crease-renderer/internal/surface"
)

// autoMargin pads autoscaled limits on each side, as a fraction of the span.
const autoMargin = 0.05

// Axes2D is a planar surface with autoscaling limits.
type Axes2D struct {
	Background color.NRGBA
	Frame      bool
	DPI        float64

	xlim, ylim     [2]float64
	xauto, yauto   bool
	dataLo, dataHi mathutil.Vec2
	hasData        bool
	boxAspect      float64

	layers []layer
	labels []label
}

var _ surface.Axes2D = (*Axes2D)(nil)

type layer struct {
	z     int
	lines *surface.LineCollection
	marks *surface.Markers
}

type label struct {
	text  string
	at    mathutil.Vec2
	style surface.TextStyle
}

// NewAxes2D returns an empty autoscaling surface.
func NewAxes2D() *Axes2D {
	return &Axes2D{
		Background: color.NRGBA{0xff, 0xff, 0xff, 0xff},
		Frame:      true,
		DPI:        DefaultDPI,
		xlim:       [2]float64{0, 1},
		ylim:       [2]float64{0, 1},
		xauto:      true,
		yauto:      true,
	}
}

func (a *Axes2D) XLim() (float64, float64) {
	if a.xauto && a.hasData {
		return padded(a.dataLo[0], a.dataHi[0])
	}
	return a.xlim[0], a.xlim[1]
}

func (a *Axes2D) YLim() (float64, float64) {
	if a.yauto && a.hasData {
		return padded(a.dataLo[1], a.dataHi[1])
	}
	return a.ylim[0], a.ylim[1]
}

// SetXLim fixes the x limits and turns x autoscaling off.
func (a *Axes2D) SetXLim(lo, hi float64) {
	a.xlim = [2]float64{lo, hi}
	a.xauto = false
}

// SetYLim fixes the y limits and turns y autoscaling off.
func (a *Axes2D) SetYLim(lo, hi float64) {
	a.ylim = [2]float64{lo, hi}
	a.yauto = false
}

func padded(lo, hi float64) (float64, float64) {
	m := (hi - lo) * autoMargin
	if m == 0 {
		m = 0.5
	}
	return lo - m, hi + m
}

func (a *Axes2D) extend(p mathutil.Vec2) {
	if !a.hasData {
		a.dataLo, a.dataHi, a.hasData = p, p, true
		return
	}
	for k := 0; k < 2; k++ {
		a.dataLo[k] = math.Min(a.dataLo[k], p[k])
		a.dataHi[k] = math.Max(a.dataHi[k], p[k])
	}
}

func (a *Axes2D) AddLineCollection(c *surface.LineCollection) {
	for _, s := range c.Segments {
		a.extend(s[0])
		a.extend(s[1])
	}
	a.layers = append(a.layers, layer{z: surface.LineZOrder, lines: c})
}

func (a *Axes2D) Scatter(m *surface.Markers) {
	for _, p := range m.Points {
		a.extend(p)
	}
	a.layers = append(a.layers, layer{z: m.ZOrder, marks: m})
}

func (a *Axes2D) Annotate(text string, at mathutil.Vec2, style surface.TextStyle) {
	a.labels = append(a.labels, label{text: text, at: at, style: style})
}

func (a *Axes2D) SetAspect(boxAspect float64) { a.boxAspect = boxAspect }

// BoxAspect returns the last aspect set, or 0 when the box fills the image.
func (a *Axes2D) BoxAspect() float64 { return a.boxAspect }

// Lines returns the attached line collections in attachment order.
func (a *Axes2D) Lines() []*surface.LineCollection {
	var out []*surface.LineCollection
	for _, l := range a.layers {
		if l.lines != nil {
			out = append(out, l.lines)
		}
	}
	return out
}

// Markers returns the attached marker layers in attachment order.
func (a *Axes2D) Markers() []*surface.Markers {
	var out []*surface.Markers
	for _, l := range a.layers {
		if l.marks != nil {
			out = append(out, l.marks)
		}
	}
	return out
}

// Labels returns the annotation texts in attachment order.
func (a *Axes2D) Labels() []string {
	out := make([]string, len(a.labels))
	for i, l := range a.labels {
		out[i] = l.text
	}
	return out
}

// plotBox returns the pixel rectangle data is mapped into.
func (a *Axes2D) plotBox(w, h int) (x0, y0, bw, bh float64) {
	m := 0.08 * math.Min(float64(w), float64(h))
	x0, y0 = m, m
	bw, bh = float64(w)-2*m, float64(h)-2*m
	if a.boxAspect > 0 && bw > 0 && bh > 0 {
		if bw/bh > a.boxAspect {
			nw := bh * a.boxAspect
			x0 += (bw - nw) / 2
			bw = nw
		} else {
			nh := bw / a.boxAspect
			y0 += (bh - nh) / 2
			bh = nh
		}
	}
	return x0, y0, bw, bh
}

// Render rasterizes layers by z-order (stable in attachment order), then labels.
func (a *Axes2D) Render(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	p := newPainter(img)
	p.clear(a.Background)

	xl, xh := a.XLim()
	yl, yh := a.YLim()
	bx, by, bw, bh := a.plotBox(w, h)
	sx := bw / nonZero(xh-xl)
	sy := bh / nonZero(yh-yl)
	toPx := func(v mathutil.Vec2) (float64, float64) {
		return bx + (v[0]-xl)*sx, by + bh - (v[1]-yl)*sy
	}
	ptPx := a.DPI / 72

	black := color.NRGBA{A: 0xff}
	if a.Frame {
		p.strokePolygon(
			[]float64{bx, bx + bw, bx + bw, bx},
			[]float64{by, by, by + bh, by + bh},
			ptPx*0.8, black,
		)
	}

	layers := append([]layer(nil), a.layers...)
	sort.SliceStable(layers, func(i, j int) bool { return layers[i].z < layers[j].z })
	for _, l := range layers {
		switch {
		case l.lines != nil:
			for i, s := range l.lines.Segments {
				c := black
				if i < len(l.lines.Colors) {
					c = l.lines.Colors[i]
				}
				x0, y0 := toPx(s[0])
				x1, y1 := toPx(s[1])
				p.strokeSegment(x0, y0, x1, y1, l.lines.LineWidth*ptPx, c)
			}
		case l.marks != nil:
			r := math.Sqrt(l.marks.Size) / 2 * ptPx
			for _, pt := range l.marks.Points {
				x, y := toPx(pt)
				p.fillCircle(x, y, r, l.marks.Color)
			}
		}
	}

	fc := newFaceCache(a.DPI)
	defer fc.close()
	for _, lb := range a.labels {
		x, y := toPx(lb.at)
		x += lb.style.Offset[0] * ptPx
		y -= lb.style.Offset[1] * ptPx
		size := lb.style.FontSize
		if size <= 0 {
			size = 10
		}
		drawText(img, fc.face(size, lb.style.Bold), lb.text, x, y, lb.style.Align, black)
	}
	return img
}

func nonZero(v float64) float64 {
	if math.Abs(v) < 1e-12 {
		return 1
	}
	return v
}
