package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec2 and Vec3 are the vector types consumed by every physics component.
// They are plain value arrays; all operations return new values.
type (
	Vec2 = mgl64.Vec2
	Vec3 = mgl64.Vec3
)

var (
	Zero3   = Vec3{}
	WorldUp = Vec3{0, 0, 1}
)

// Distance2 computes Euclidean distance between two ground points.
func Distance2(a, b Vec2) float64 { return math.Hypot(b[0]-a[0], b[1]-a[1]) }

// Distance3 computes Euclidean distance between two points in space.
func Distance3(a, b Vec3) float64 { return b.Sub(a).Len() }

// Ground drops the vertical component.
func Ground(v Vec3) Vec2 { return Vec2{v[0], v[1]} }

// Lift raises a ground point to the given height.
func Lift(v Vec2, z float64) Vec3 { return Vec3{v[0], v[1], z} }

// Angle2 returns the bearing of v in radians, measured from +x towards +y.
func Angle2(v Vec2) float64 { return math.Atan2(v[1], v[0]) }

// RotateZ rotates v about the vertical axis by angle radians. The z
// component is preserved exactly.
func RotateZ(v Vec3, angle float64) Vec3 {
	r := mgl64.Rotate3DZ(angle).Mul3x1(v)
	r[2] = v[2]
	return r
}

// Rotate2 rotates a ground vector by angle radians.
func Rotate2(v Vec2, angle float64) Vec2 {
	return Ground(RotateZ(Lift(v, 0), angle))
}

// Scale multiplies every component by s.
func Scale(v Vec3, s float64) Vec3 { return v.Mul(s) }

// ScaleAxes multiplies v component-wise by f.
func ScaleAxes(v, f Vec3) Vec3 { return Vec3{v[0] * f[0], v[1] * f[1], v[2] * f[2]} }

// Normalize returns the unit vector along v, or false when v has no length.
func Normalize(v Vec3) (Vec3, bool) {
	l := v.Len()
	if l == 0 {
		return Vec3{}, false
	}
	return v.Mul(1 / l), true
}

// MagnitudeAlong returns the signed length of v projected onto direction.
// A zero direction yields 0.
func MagnitudeAlong(v, direction Vec3) float64 {
	l := direction.Len()
	if l == 0 {
		return 0
	}
	return v.Dot(direction) / l
}

// MagnitudeAlong2 is MagnitudeAlong on the ground plane.
func MagnitudeAlong2(v, direction Vec2) float64 {
	l := direction.Len()
	if l == 0 {
		return 0
	}
	return v.Dot(direction) / l
}
