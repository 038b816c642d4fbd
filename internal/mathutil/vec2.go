package mathutil

// Vec2 is a 2-component vector in crease-pattern (flat layout) coordinates.
type Vec2 [2]float64

func (a Vec2) Add(b Vec2) Vec2 {
	return Vec2{a[0] + b[0], a[1] + b[1]}
}

func (a Vec2) Sub(b Vec2) Vec2 {
	return Vec2{a[0] - b[0], a[1] - b[1]}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v[0] * s, v[1] * s}
}

// Mid returns the midpoint of a and b.
func (a Vec2) Mid(b Vec2) Vec2 {
	return Vec2{(a[0] + b[0]) * 0.5, (a[1] + b[1]) * 0.5}
}

// Lift embeds the point in the z=0 plane.
func (v Vec2) Lift() Vec3 {
	return Vec3{v[0], v[1], 0}
}
