// Package canvas is a software drawing surface: it records what the diagram
// builders attach and rasterizes it into an image on demand.
package canvas

import (
	"image"
	"image/color"
	"math"
	"sort"

	"crease-renderer/internal/surface"
)

// DefaultDPI converts point sizes to pixels.
const DefaultDPI = 100

// Axes3D is an orthographic 3D surface.
type Axes3D struct {
	Elevation  float64 // degrees
	Azimuth    float64 // degrees
	Background color.NRGBA
	DPI        float64

	xlim, ylim, zlim [2]float64
	collections      []*surface.PolyCollection
}

var _ surface.Axes3D = (*Axes3D)(nil)

// NewAxes3D returns a surface with unit limits on every axis.
func NewAxes3D() *Axes3D {
	return &Axes3D{
		Elevation:  30,
		Azimuth:    -60,
		Background: color.NRGBA{0xff, 0xff, 0xff, 0xff},
		DPI:        DefaultDPI,
		xlim:       [2]float64{0, 1},
		ylim:       [2]float64{0, 1},
		zlim:       [2]float64{0, 1},
	}
}

func (a *Axes3D) XLim() (float64, float64) { return a.xlim[0], a.xlim[1] }
func (a *Axes3D) YLim() (float64, float64) { return a.ylim[0], a.ylim[1] }
func (a *Axes3D) ZLim() (float64, float64) { return a.zlim[0], a.zlim[1] }

func (a *Axes3D) SetXLim(lo, hi float64) { a.xlim = [2]float64{lo, hi} }
func (a *Axes3D) SetYLim(lo, hi float64) { a.ylim = [2]float64{lo, hi} }
func (a *Axes3D) SetZLim(lo, hi float64) { a.zlim = [2]float64{lo, hi} }

func (a *Axes3D) Collections() []*surface.PolyCollection { return a.collections }

func (a *Axes3D) ReplaceCollections(c *surface.PolyCollection) {
	a.collections = []*surface.PolyCollection{c}
}

// AddCollection attaches c on top of the existing collections.
func (a *Axes3D) AddCollection(c *surface.PolyCollection) {
	a.collections = append(a.collections, c)
}

// projectedPoly is one polygon ready to fill.
type projectedPoly struct {
	xs, ys []float64
	key    float64 // distance from the viewer, larger is farther
	face   color.NRGBA
}

// Render rasterizes every collection into a w×h image. Within a collection
// polygons are painted far to near by their z-sort key; collections are
// painted in attachment order.
func (a *Axes3D) Render(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	p := newPainter(img)
	p.clear(a.Background)

	proj := newProjector(a, w, h)
	edgeWidth := a.DPI / 72
	for _, c := range a.collections {
		polys := make([]projectedPoly, 0, len(c.Polygons))
		for i, verts := range c.Polygons {
			px, py, pz := proj.Project(verts)
			var face color.NRGBA
			if i < len(c.FaceColors) {
				face = c.FaceColors[i]
			}
			polys = append(polys, projectedPoly{
				xs:   px,
				ys:   py,
				key:  depthKey(pz, c.ZSort),
				face: withAlpha(face, c.Alpha),
			})
		}
		sort.SliceStable(polys, func(i, j int) bool { return polys[i].key > polys[j].key })

		for _, pp := range polys {
			p.fillPolygon(pp.xs, pp.ys, pp.face)
			if c.EdgeColor != nil {
				p.strokePolygon(pp.xs, pp.ys, edgeWidth, withAlpha(*c.EdgeColor, c.Alpha))
			}
		}
	}
	return img
}

// depthKey reduces per-vertex depths (toward the viewer) to a distance key.
func depthKey(pz []float64, mode surface.ZSort) float64 {
	if len(pz) == 0 {
		return math.Inf(-1)
	}
	switch mode {
	case surface.ZSortMax:
		// farthest vertex
		m := pz[0]
		for _, z := range pz[1:] {
			m = math.Min(m, z)
		}
		return -m
	case surface.ZSortMin:
		m := pz[0]
		for _, z := range pz[1:] {
			m = math.Max(m, z)
		}
		return -m
	default:
		var s float64
		for _, z := range pz {
			s += z
		}
		return -s / float64(len(pz))
	}
}
