// Package render turns a crease pattern and render settings into finished
// images by driving the diagram builders against software canvases.
package render

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"cogentcore.org/core/colors"

	"crease-renderer/internal/canvas"
	"crease-renderer/internal/config"
	"crease-renderer/internal/creasepattern"
	"crease-renderer/internal/plot"
	"crease-renderer/internal/postprocess"
)

// Extent returns the largest distance from the fixed face's centroid to any
// face corner. Folding is rigid, so every folded state fits in this radius.
func Extent(m creasepattern.Model) float64 {
	if m.NumFaces() == 0 {
		return 1
	}
	c := m.FaceCenters()[m.FixedFace()]
	r := 0.0
	for i, pts := range m.FaceCornerPoints() {
		for _, p := range pts[:m.NumFaceCornerPoints()[i]] {
			r = math.Max(r, math.Hypot(p[0]-c[0], p[1]-c[1]))
		}
	}
	if r < 1e-9 {
		return 1
	}
	return r
}

// TargetAngles scales every fold's target angle by t; t=0 is flat and t=1 is
// the fully folded state.
func TargetAngles(m creasepattern.Model, t float64) []float64 {
	targets := m.FoldAngleTarget()
	out := make([]float64, len(targets))
	for i, a := range targets {
		out[i] = a * t
	}
	return out
}

// ParseColor reads #rgb, #rrggbb or #rrggbbaa.
func ParseColor(s string) (color.NRGBA, error) {
	c, err := colors.FromHex(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("render: color %q: %w", s, err)
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA), nil
}

// Folded renders the pattern folded by angles into a size×size image.
func Folded(m creasepattern.Model, angles []float64, rc config.RenderConfig) (*image.NRGBA, error) {
	bg, err := ParseColor(rc.Background)
	if err != nil {
		return nil, err
	}
	ss := max(rc.Supersample, 1)

	ax := canvas.NewAxes3D()
	ax.Elevation = rc.Elevation
	ax.Azimuth = rc.Azimuth
	ax.Background = bg
	ax.DPI = canvas.DefaultDPI * float64(ss)

	// The builder centers the fixed face at half the upper x/y limits.
	e := Extent(m)
	ax.SetXLim(0, 2*e)
	ax.SetYLim(0, 2*e)
	ax.SetZLim(-e, e)

	err = plot.RenderFolded(ax, m, angles,
		plot.WithColormap(rc.Colormap),
		plot.WithAlpha(rc.Alpha),
		plot.WithEdges(rc.Edges),
	)
	if err != nil {
		return nil, err
	}
	plot.SetAxesEqual(ax)

	img := ax.Render(rc.Size*ss, rc.Size*ss)
	return postprocess.Downsample(img, rc.Size, rc.Size), nil
}

// Reference renders the flat configuration.
func Reference(m creasepattern.Model, rc config.RenderConfig) (*image.NRGBA, error) {
	return Folded(m, make([]float64, m.NumFolds()), rc)
}

// Planar renders the crease diagram.
func Planar(m creasepattern.Model, pc config.PlanarConfig, supersample int) (*image.NRGBA, error) {
	ss := max(supersample, 1)
	ax := canvas.NewAxes2D()
	ax.DPI = canvas.DefaultDPI * float64(ss)

	err := plot.RenderPlanar(ax, m,
		plot.WithFoldColormap(pc.Colormap),
		plot.WithFoldLabels(pc.FoldLabels),
		plot.WithVertexLabels(pc.VertexLabels),
		plot.WithFaceLabels(pc.FaceLabels),
	)
	if err != nil {
		return nil, err
	}

	img := ax.Render(pc.WidthPx*ss, pc.HeightPx*ss)
	return postprocess.Downsample(img, pc.WidthPx, pc.HeightPx), nil
}

// Combined renders the crease diagram next to the folded view.
func Combined(m creasepattern.Model, angles []float64, cfg config.Config) (*image.NRGBA, error) {
	planar, err := Planar(m, cfg.Planar, cfg.Render.Supersample)
	if err != nil {
		return nil, err
	}
	folded, err := Folded(m, angles, cfg.Render)
	if err != nil {
		return nil, err
	}
	return postprocess.SideBySide(planar, folded), nil
}
