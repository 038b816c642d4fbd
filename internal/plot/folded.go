package plot

import (
	"errors"
	"fmt"
	"image/color"

	"go.uber.org/zap"

	"crease-renderer/internal/creasepattern"
	"crease-renderer/internal/logger"
	"crease-renderer/internal/mathutil"
	"crease-renderer/internal/palette"
	"crease-renderer/internal/surface"
)

// ErrInvalidInput reports a fold-angle vector whose length differs from the
// pattern's fold count.
var ErrInvalidInput = errors.New("plot: invalid input")

// DefaultColormap colors faces when no colormap option is given.
const DefaultColormap = "terrain"

// EdgeColor outlines faces when edges are requested.
var EdgeColor = color.NRGBA{A: 0xff}

type foldedOptions struct {
	cmName string
	cm     palette.Colormap
	alpha  float64
	edges  bool
}

// FoldedOption configures RenderFolded.
type FoldedOption func(*foldedOptions)

// WithColormap selects the face palette by name.
func WithColormap(name string) FoldedOption {
	return func(o *foldedOptions) { o.cmName, o.cm = name, nil }
}

// WithPalette supplies the face palette directly.
func WithPalette(cm palette.Colormap) FoldedOption {
	return func(o *foldedOptions) { o.cm = cm }
}

// WithAlpha sets the uniform face opacity.
func WithAlpha(alpha float64) FoldedOption {
	return func(o *foldedOptions) { o.alpha = alpha }
}

// WithEdges outlines every face in EdgeColor.
func WithEdges(on bool) FoldedOption {
	return func(o *foldedOptions) { o.edges = on }
}

// RenderFolded draws model folded by angles (radians, one per fold) as a
// single depth-sorted polygon collection, replacing everything previously
// attached to ax. The fixed face's centroid is moved to the middle of the
// surface's upper x/y limits. Nothing is drawn when the angle count is wrong.
func RenderFolded(ax surface.Axes3D, model creasepattern.Model, angles []float64, opts ...FoldedOption) error {
	o := foldedOptions{cmName: DefaultColormap, alpha: 1.0}
	for _, opt := range opts {
		opt(&o)
	}

	if len(angles) != model.NumFolds() {
		return fmt.Errorf("%w: got %d fold angles, pattern has %d folds", ErrInvalidInput, len(angles), model.NumFolds())
	}

	cm := o.cm
	if cm == nil {
		var err error
		if cm, err = palette.Lookup(o.cmName); err != nil {
			return fmt.Errorf("plot: %w", err)
		}
	}

	numFaces := model.NumFaces()
	colors := palette.SampleAll(cm, numFaces)

	_, sizeX := ax.XLim()
	_, sizeY := ax.YLim()

	faceMap, err := model.ComputeFoldingMap(angles)
	if err != nil {
		return fmt.Errorf("plot: folding map: %w", err)
	}

	corners := model.FaceCornerPoints()
	counts := model.NumFaceCornerPoints()
	// A pattern without faces has no fixed face to center on.
	var shift mathutil.Vec3
	if numFaces > 0 {
		fixedCenter := model.FaceCenters()[model.FixedFace()].Lift()
		shift = mathutil.Vec3{sizeX * 0.5, sizeY * 0.5, 0}.Sub(fixedCenter)
	}

	// One collection for every face so a single depth sort orders them all.
	polys := make([][]mathutil.Vec3, numFaces)
	for i := 0; i < numFaces; i++ {
		composite := faceMap[i]
		pts := corners[i][:counts[i]]
		poly := make([]mathutil.Vec3, len(pts))
		for j, p := range pts {
			poly[j] = composite.MulVec4(p.Lift().Homogeneous()).XYZ().Add(shift)
		}
		polys[i] = poly
	}

	coll := &surface.PolyCollection{
		Polygons:   polys,
		FaceColors: colors,
		Alpha:      o.alpha,
		ZSort:      surface.ZSortMax,
	}
	if o.edges {
		edge := EdgeColor
		coll.EdgeColor = &edge
	}
	ax.ReplaceCollections(coll)

	logger.Debug("rendered folded surface",
		zap.Int("faces", numFaces),
		zap.Int("folds", len(angles)),
		zap.String("colormap", cm.Name()),
	)
	return nil
}

// RenderReference draws model with every fold angle at zero.
func RenderReference(ax surface.Axes3D, model creasepattern.Model, opts ...FoldedOption) error {
	return RenderFolded(ax, model, make([]float64, model.NumFolds()), opts...)
}
