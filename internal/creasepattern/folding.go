package creasepattern

import (
	"fmt"

	"crease-renderer/internal/mathutil"
)

// ComputeFoldingMap walks a breadth-first spanning tree of the fold graph
// rooted at the fixed face. Each child composite is its parent's composite
// followed by a rotation about the shared fold line. Positive angles push the
// child face below the parent (mountain), negative angles lift it (valley).
// Faces unreachable from the fixed face keep the identity.
func (p *Pattern) ComputeFoldingMap(angles []float64) ([]mathutil.Mat4, error) {
	if len(angles) != len(p.Folds) {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrAngleCount, len(angles), len(p.Folds))
	}

	out := make([]mathutil.Mat4, len(p.Faces))
	for i := range out {
		out[i] = mathutil.Mat4Identity()
	}
	if len(p.Faces) == 0 {
		return out, nil
	}

	visited := make([]bool, len(p.Faces))
	visited[p.Fixed] = true
	queue := []int{p.Fixed}
	for len(queue) > 0 {
		parent := queue[0]
		queue = queue[1:]
		for _, e := range p.adj[parent] {
			if visited[e.face] {
				continue
			}
			visited[e.face] = true
			local := p.hinge(e.fold, e.face, angles[e.fold])
			out[e.face] = mathutil.Mat4Mul(out[parent], local)
			queue = append(queue, e.face)
		}
	}
	return out, nil
}

// hinge returns the flat-frame rotation of child about fold k.
func (p *Pattern) hinge(k, child int, angle float64) mathutil.Mat4 {
	a, b := p.p1[k], p.p2[k]
	dir := b.Sub(a).Lift()
	rel := p.centers[child].Sub(a).Lift()
	side := dir.Cross(rel)[2]
	// Rotating about +dir lifts points on the left side of the fold line.
	if side > 0 {
		angle = -angle
	}
	return mathutil.RotationAbout(a.Lift(), dir, angle)
}
