package plot

import (
	"fmt"
	"image/color"
	"math"

	"go.uber.org/zap"

	"crease-renderer/internal/creasepattern"
	"crease-renderer/internal/logger"
	"crease-renderer/internal/mathutil"
	"crease-renderer/internal/palette"
	"crease-renderer/internal/surface"
)

// Fold assignment colors used when no fold colormap is given.
var (
	MountainColor = color.NRGBA{R: 0xff, A: 0xff}
	ValleyColor   = color.NRGBA{B: 0xff, A: 0xff}
	BorderColor   = color.NRGBA{A: 0xff}
)

// MarkerColor fills reference point markers.
var MarkerColor = color.NRGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}

const (
	foldLineWidth = 1.0
	markerSize    = 36.0
	markerZOrder  = surface.LineZOrder + 1
	labelFontSize = 8.0
)

type planarOptions struct {
	cmName       string
	faceLabels   bool
	foldLabels   bool
	vertexLabels bool
}

// PlanarOption configures RenderPlanar.
type PlanarOption func(*planarOptions)

// WithFoldColormap colors folds by index through the named palette instead
// of by mountain/valley assignment. An empty name keeps assignment colors.
func WithFoldColormap(name string) PlanarOption {
	return func(o *planarOptions) { o.cmName = name }
}

func WithFoldLabels(on bool) PlanarOption   { return func(o *planarOptions) { o.foldLabels = on } }
func WithVertexLabels(on bool) PlanarOption { return func(o *planarOptions) { o.vertexLabels = on } }
func WithFaceLabels(on bool) PlanarOption   { return func(o *planarOptions) { o.faceLabels = on } }

// RenderPlanar draws the flat crease diagram: one segment per fold, a marker
// per reference point and optional fold, vertex and face labels. The only
// error is an unknown fold colormap name.
func RenderPlanar(ax surface.Axes2D, model creasepattern.Model, opts ...PlanarOption) error {
	o := planarOptions{faceLabels: true, foldLabels: true, vertexLabels: true}
	for _, opt := range opts {
		opt(&o)
	}

	colors, err := foldColors(model, o.cmName)
	if err != nil {
		return err
	}

	p1, p2 := model.P1(), model.P2()
	segments := make([][2]mathutil.Vec2, len(p1))
	midpoints := make([]mathutil.Vec2, len(p1))
	for i := range p1 {
		segments[i] = [2]mathutil.Vec2{p1[i], p2[i]}
		midpoints[i] = p1[i].Mid(p2[i])
	}

	ax.AddLineCollection(&surface.LineCollection{
		Segments:  segments,
		Colors:    colors,
		LineWidth: foldLineWidth,
	})
	ax.Scatter(&surface.Markers{
		Points: model.ReferencePoints(),
		Color:  MarkerColor,
		Size:   markerSize,
		ZOrder: markerZOrder,
	})

	xl, xr := ax.XLim()
	yb, yt := ax.YLim()
	ax.SetAspect(math.Abs((xr - xl) / (yb - yt)))

	if o.foldLabels {
		ends := model.FoldVectorPoints()
		for i, m := range midpoints {
			text := fmt.Sprintf("e%d\n%d-%d", i, ends[i][0], ends[i][1])
			ax.Annotate(text, m, surface.TextStyle{Align: surface.AlignCenter, FontSize: labelFontSize, Bold: true})
		}
	}
	if o.vertexLabels {
		for i, v := range model.ReferencePoints() {
			ax.Annotate(fmt.Sprintf("v%d", i), v, surface.TextStyle{
				Offset:   [2]float64{0, 4},
				Align:    surface.AlignCenter,
				FontSize: labelFontSize,
			})
		}
	}
	if o.faceLabels {
		for i, c := range model.FaceCenters() {
			ax.Annotate(fmt.Sprintf("F%d", i), c, surface.TextStyle{Align: surface.AlignCenter, FontSize: labelFontSize})
		}
	}

	logger.Debug("rendered crease pattern",
		zap.Int("folds", len(segments)),
		zap.Int("points", len(model.ReferencePoints())),
	)
	return nil
}

// foldColors picks one color per fold: by palette position when a colormap is
// named, else by the sign of the fold's target angle.
func foldColors(model creasepattern.Model, cmName string) ([]color.NRGBA, error) {
	n := model.NumFolds()
	if cmName != "" {
		cm, err := palette.Lookup(cmName)
		if err != nil {
			return nil, fmt.Errorf("plot: %w", err)
		}
		return palette.SampleAll(cm, n), nil
	}

	targets := model.FoldAngleTarget()
	colors := make([]color.NRGBA, n)
	for i := 0; i < n; i++ {
		switch {
		case targets[i] < 0:
			colors[i] = ValleyColor
		case targets[i] > 0:
			colors[i] = MountainColor
		default:
			colors[i] = BorderColor
		}
	}
	return colors, nil
}
