// Package plot draws crease patterns onto drawing surfaces: the folded 3D
// surface, its flat reference configuration and the planar crease diagram.
package plot

import (
	"math"

	"crease-renderer/internal/surface"
)

// SetAxesEqual gives all three axes the same span, centered on their current
// midpoints, so shapes are drawn undistorted. The common half-span is half of
// the largest current span.
func SetAxesEqual(ax surface.Axes3D) {
	x0, x1 := ax.XLim()
	y0, y1 := ax.YLim()
	z0, z1 := ax.ZLim()

	radius := 0.5 * math.Max(math.Abs(x1-x0), math.Max(math.Abs(y1-y0), math.Abs(z1-z0)))

	xm, ym, zm := (x0+x1)/2, (y0+y1)/2, (z0+z1)/2
	ax.SetXLim(xm-radius, xm+radius)
	ax.SetYLim(ym-radius, ym+radius)
	ax.SetZLim(zm-radius, zm+radius)
}
