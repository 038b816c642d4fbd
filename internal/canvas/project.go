package canvas

import (
	"math"

	"crease-renderer/internal/mathutil"
)

// ViewMatrix orients the unit data cube for a camera at the given elevation
// and azimuth (degrees). After the transform, screen x is row 0, screen up is
// row 1 and row 2 grows toward the viewer.
func ViewMatrix(elev, azim float64) mathutil.Mat3 {
	return mathutil.Mat3Mul(
		mathutil.RotX(-mathutil.Deg2Rad(90-elev)),
		mathutil.RotZ(-mathutil.Deg2Rad(azim+90)),
	)
}

// projector maps data coordinates to pixel coordinates plus depth.
type projector struct {
	lo, span [3]float64
	view     mathutil.Mat3
	half     [2]float64
	scale    float64
}

func newProjector(a *Axes3D, w, h int) projector {
	p := projector{
		view: ViewMatrix(a.Elevation, a.Azimuth),
		half: [2]float64{float64(w) / 2, float64(h) / 2},
	}
	lims := [3][2]float64{a.xlim, a.ylim, a.zlim}
	for k, l := range lims {
		p.lo[k] = l[0]
		p.span[k] = l[1] - l[0]
		if math.Abs(p.span[k]) < 1e-12 {
			p.span[k] = 1
		}
	}
	// Unit cube half-diagonal is √3/2; leave a small margin around it.
	p.scale = math.Min(float64(w), float64(h)) / (2 * 0.92)
	return p
}

// Project returns screen x, screen y (down) and depth (toward viewer) for
// every vertex.
func (p projector) Project(verts []mathutil.Vec3) (px, py, pz []float64) {
	n := len(verts)
	px = make([]float64, n)
	py = make([]float64, n)
	pz = make([]float64, n)
	for i, v := range verts {
		var u mathutil.Vec3
		for k := 0; k < 3; k++ {
			u[k] = (v[k]-p.lo[k])/p.span[k] - 0.5
		}
		t := p.view.MulVec3(u)
		px[i] = t[0]*p.scale + p.half[0]
		py[i] = -t[1]*p.scale + p.half[1]
		pz[i] = t[2]
	}
	return px, py, pz
}
