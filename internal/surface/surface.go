// Package surface defines the drawing-surface contract the diagram builders
// draw against, together with the artifacts they hand to it.
package surface

import (
	"image/color"

	"crease-renderer/internal/mathutil"
)

// ZSort selects how a polygon's depth is reduced to one sort key.
type ZSort string

const (
	ZSortAverage ZSort = "average"
	ZSortMin     ZSort = "min"
	ZSortMax     ZSort = "max"
)

// PolyCollection is a set of 3D polygons drawn with a single depth-sort pass.
type PolyCollection struct {
	Polygons   [][]mathutil.Vec3
	FaceColors []color.NRGBA // one per polygon, alpha ignored
	Alpha      float64
	EdgeColor  *color.NRGBA // nil: no outlines
	ZSort      ZSort
}

// LineCollection is a set of 2D segments sharing one line width.
type LineCollection struct {
	Segments  [][2]mathutil.Vec2
	Colors    []color.NRGBA
	LineWidth float64 // points
}

// LineZOrder is the stacking order of line collections. Marker layers with a
// higher ZOrder draw over them regardless of call order.
const LineZOrder = 2

// Markers is a scatter layer. Higher ZOrder draws later.
type Markers struct {
	Points []mathutil.Vec2
	Color  color.NRGBA
	Size   float64 // marker area in points²
	ZOrder int
}

// HAlign is the horizontal anchor of a text label.
type HAlign int

const (
	AlignCenter HAlign = iota
	AlignLeft
	AlignRight
)

// TextStyle controls annotation placement and look.
type TextStyle struct {
	Offset   [2]float64 // points, +y up
	Align    HAlign
	FontSize float64
	Bold     bool
}

// Axes3D is a 3D drawing surface.
type Axes3D interface {
	XLim() (lo, hi float64)
	YLim() (lo, hi float64)
	ZLim() (lo, hi float64)
	SetXLim(lo, hi float64)
	SetYLim(lo, hi float64)
	SetZLim(lo, hi float64)

	Collections() []*PolyCollection
	// ReplaceCollections removes every attached collection and attaches c.
	ReplaceCollections(c *PolyCollection)
}

// Axes2D is a planar drawing surface.
type Axes2D interface {
	XLim() (lo, hi float64)
	YLim() (lo, hi float64)

	AddLineCollection(c *LineCollection)
	Scatter(m *Markers)
	Annotate(text string, at mathutil.Vec2, style TextStyle)
	// SetAspect fixes the width:height ratio of the plotting box.
	SetAspect(boxAspect float64)
}
