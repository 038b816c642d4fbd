package mathutil

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
)

var approx = cmpopts.EquateApprox(0, 1e-12)

func TestMulVec4MatchesMulPoint(t *testing.T) {
	m := Mat4Mul(Translation(Vec3{1, 2, 3}), FromMat3Translation(RotZ(0.3), Vec3{}))
	p := Vec3{0.5, -1, 2}

	got := m.MulVec4(p.Homogeneous())
	if diff := cmp.Diff(m.MulPoint(p), got.XYZ(), approx); diff != "" {
		t.Errorf("(-MulPoint +MulVec4):\n%s", diff)
	}
	assert.InDelta(t, 1.0, got[3], 1e-12)
}

func TestAxisAngleMatchesEulerRotations(t *testing.T) {
	a := 0.7
	cases := []struct {
		axis Vec3
		want Mat3
	}{
		{Vec3{1, 0, 0}, RotX(a)},
		{Vec3{0, 0, 2}, RotZ(a)},
	}
	for _, c := range cases {
		got := QuatToMat3(AxisAngleToQuat(c.axis, a))
		if diff := cmp.Diff(c.want, got, approx); diff != "" {
			t.Errorf("axis %v (-want +got):\n%s", c.axis, diff)
		}
	}
	assert.Equal(t, Mat3Identity(), QuatToMat3(AxisAngleToQuat(Vec3{}, a)))
}

func TestRotationAboutKeepsAxisFixed(t *testing.T) {
	origin := Vec3{1, 0, 0}
	m := RotationAbout(origin, Vec3{0, 1, 0}, math.Pi/2)

	if diff := cmp.Diff(Vec3{1, 5, 0}, m.MulPoint(Vec3{1, 5, 0}), approx); diff != "" {
		t.Errorf("axis point moved:\n%s", diff)
	}
	// Quarter turn about +y maps +x offsets to -z.
	if diff := cmp.Diff(Vec3{1, 0, -1}, m.MulPoint(Vec3{2, 0, 0}), cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("rotated point:\n%s", diff)
	}
}

func TestVec2Helpers(t *testing.T) {
	a, b := Vec2{0, 2}, Vec2{4, 6}
	assert.Equal(t, Vec2{2, 4}, a.Mid(b))
	assert.Equal(t, Vec3{4, 6, 0}, b.Lift())
	assert.Equal(t, Vec2{4, 4}, b.Sub(a))
}

func TestIsIdentity(t *testing.T) {
	assert.True(t, Mat4Identity().IsIdentity())
	assert.False(t, Translation(Vec3{0, 0, 1e-3}).IsIdentity())
}

func TestCrossDot(t *testing.T) {
	x, y := Vec3{1, 0, 0}, Vec3{0, 1, 0}
	assert.Equal(t, Vec3{0, 0, 1}, x.Cross(y))
	assert.Equal(t, Vec3{0, 0, -1}, y.Cross(x))
	assert.Equal(t, 0.0, x.Dot(y))
	assert.Equal(t, 5.0, Vec3{3, 4, 0}.Len())
}
