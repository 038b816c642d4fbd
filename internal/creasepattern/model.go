// Package creasepattern holds the crease-pattern model consumed by the
// diagram builders: flat-layout geometry plus the folding map capability.
package creasepattern

import (
	"errors"
	"fmt"

	"crease-renderer/internal/mathutil"
)

// ErrAngleCount is returned when a fold-angle vector does not match the
// pattern's fold count.
var ErrAngleCount = errors.New("creasepattern: fold angle count mismatch")

// Model is the read-only view of a crease pattern.
type Model interface {
	NumFaces() int
	NumFolds() int

	// FaceCornerPoints may carry padded trailing slots per face;
	// NumFaceCornerPoints gives the valid prefix length.
	FaceCornerPoints() [][]mathutil.Vec2
	NumFaceCornerPoints() []int
	FaceCenters() []mathutil.Vec2
	FixedFace() int

	ReferencePoints() []mathutil.Vec2
	P1() []mathutil.Vec2
	P2() []mathutil.Vec2
	FoldVectorPoints() [][2]int
	FoldAngleTarget() []float64

	// ComputeFoldingMap returns one composite transform per face.
	ComputeFoldingMap(angles []float64) ([]mathutil.Mat4, error)
}

// Fold is a crease between two reference points.
type Fold struct {
	Vertices [2]int  `yaml:"vertices"`
	Target   float64 `yaml:"target"` // <0 valley, >0 mountain, 0 border
	Faces    []int   `yaml:"faces,omitempty"`
}

// Pattern is the file-backed Model implementation.
type Pattern struct {
	Name     string          `yaml:"name"`
	Fixed    int             `yaml:"fixed_face"`
	Vertices []mathutil.Vec2 `yaml:"vertices"`
	Faces    [][]int         `yaml:"faces"`
	Folds    []Fold          `yaml:"folds"`

	corners    [][]mathutil.Vec2
	numCorners []int
	centers    []mathutil.Vec2
	p1, p2     []mathutil.Vec2
	foldPoints [][2]int
	targets    []float64
	adj        [][]edge
}

// edge links a face to its neighbour across fold.
type edge struct {
	face int
	fold int
}

// Prepare validates the raw fields and derives the cached arrays.
// It must be called after the exported fields change.
func (p *Pattern) Prepare() error {
	nv := len(p.Vertices)
	if len(p.Faces) > 0 && (p.Fixed < 0 || p.Fixed >= len(p.Faces)) {
		return fmt.Errorf("creasepattern: fixed face %d out of range [0,%d)", p.Fixed, len(p.Faces))
	}

	maxCorners := 0
	for i, f := range p.Faces {
		for _, v := range f {
			if v < 0 || v >= nv {
				return fmt.Errorf("creasepattern: face %d: vertex %d out of range", i, v)
			}
		}
		if len(f) > maxCorners {
			maxCorners = len(f)
		}
	}

	p.corners = make([][]mathutil.Vec2, len(p.Faces))
	p.numCorners = make([]int, len(p.Faces))
	p.centers = make([]mathutil.Vec2, len(p.Faces))
	for i, f := range p.Faces {
		// Padded to the widest face, like a dense corner array.
		pts := make([]mathutil.Vec2, maxCorners)
		var sum mathutil.Vec2
		for j, v := range f {
			pts[j] = p.Vertices[v]
			sum = sum.Add(p.Vertices[v])
		}
		p.corners[i] = pts
		p.numCorners[i] = len(f)
		if len(f) > 0 {
			p.centers[i] = sum.Scale(1 / float64(len(f)))
		}
	}

	p.p1 = make([]mathutil.Vec2, len(p.Folds))
	p.p2 = make([]mathutil.Vec2, len(p.Folds))
	p.foldPoints = make([][2]int, len(p.Folds))
	p.targets = make([]float64, len(p.Folds))
	p.adj = make([][]edge, len(p.Faces))
	for k, fd := range p.Folds {
		a, b := fd.Vertices[0], fd.Vertices[1]
		if a < 0 || a >= nv || b < 0 || b >= nv {
			return fmt.Errorf("creasepattern: fold %d: vertex out of range", k)
		}
		p.p1[k] = p.Vertices[a]
		p.p2[k] = p.Vertices[b]
		p.foldPoints[k] = fd.Vertices
		p.targets[k] = fd.Target

		faces := fd.Faces
		if len(faces) == 0 {
			faces = p.facesSharing(a, b)
		}
		if len(faces) == 2 {
			f0, f1 := faces[0], faces[1]
			if f0 < 0 || f0 >= len(p.Faces) || f1 < 0 || f1 >= len(p.Faces) {
				return fmt.Errorf("creasepattern: fold %d: face out of range", k)
			}
			p.adj[f0] = append(p.adj[f0], edge{face: f1, fold: k})
			p.adj[f1] = append(p.adj[f1], edge{face: f0, fold: k})
		}
	}
	return nil
}

// facesSharing returns the faces whose boundary contains the edge a-b.
func (p *Pattern) facesSharing(a, b int) []int {
	var out []int
	for i, f := range p.Faces {
		n := len(f)
		for j := 0; j < n; j++ {
			u, v := f[j], f[(j+1)%n]
			if (u == a && v == b) || (u == b && v == a) {
				out = append(out, i)
				break
			}
		}
	}
	return out
}

func (p *Pattern) NumFaces() int { return len(p.Faces) }
func (p *Pattern) NumFolds() int { return len(p.Folds) }

func (p *Pattern) FaceCornerPoints() [][]mathutil.Vec2 { return p.corners }
func (p *Pattern) NumFaceCornerPoints() []int          { return p.numCorners }
func (p *Pattern) FaceCenters() []mathutil.Vec2        { return p.centers }
func (p *Pattern) FixedFace() int                      { return p.Fixed }
func (p *Pattern) ReferencePoints() []mathutil.Vec2    { return p.Vertices }
func (p *Pattern) P1() []mathutil.Vec2                 { return p.p1 }
func (p *Pattern) P2() []mathutil.Vec2                 { return p.p2 }
func (p *Pattern) FoldVectorPoints() [][2]int          { return p.foldPoints }
func (p *Pattern) FoldAngleTarget() []float64          { return p.targets }

// Bounds returns the axis-aligned extent of the flat layout.
func (p *Pattern) Bounds() (lo, hi mathutil.Vec2) {
	if len(p.Vertices) == 0 {
		return
	}
	lo, hi = p.Vertices[0], p.Vertices[0]
	for _, v := range p.Vertices[1:] {
		for k := 0; k < 2; k++ {
			if v[k] < lo[k] {
				lo[k] = v[k]
			}
			if v[k] > hi[k] {
				hi[k] = v[k]
			}
		}
	}
	return lo, hi
}
