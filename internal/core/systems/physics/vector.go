package physics

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidVector = errors.New("invalid vector")
	ErrInvalidScalar = errors.New("invalid scalar")
)

// Finite reports whether x is neither NaN nor infinite.
func Finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

// CheckScalar rejects NaN and ±Inf.
func CheckScalar(x float64) (float64, error) {
	if !Finite(x) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidScalar, x)
	}
	return x, nil
}

// CheckVec2 rejects a ground vector with any non-finite component.
func CheckVec2(v Vec2) (Vec2, error) {
	if !Finite(v[0]) || !Finite(v[1]) {
		return Vec2{}, fmt.Errorf("%w: %v", ErrInvalidVector, v)
	}
	return v, nil
}

// CheckVec3 rejects a vector with any non-finite component.
func CheckVec3(v Vec3) (Vec3, error) {
	if !Finite(v[0]) || !Finite(v[1]) || !Finite(v[2]) {
		return Vec3{}, fmt.Errorf("%w: %v", ErrInvalidVector, v)
	}
	return v, nil
}

// Vec3From builds a Vec3 from a slice, enforcing dimensionality and finiteness.
// It is the boundary used when vectors arrive from configuration or flags.
func Vec3From(s []float64) (Vec3, error) {
	if len(s) != 3 {
		return Vec3{}, fmt.Errorf("%w: want 3 components, got %d", ErrInvalidVector, len(s))
	}
	return CheckVec3(Vec3{s[0], s[1], s[2]})
}

// Vec2From builds a Vec2 from a slice, enforcing dimensionality and finiteness.
func Vec2From(s []float64) (Vec2, error) {
	if len(s) != 2 {
		return Vec2{}, fmt.Errorf("%w: want 2 components, got %d", ErrInvalidVector, len(s))
	}
	return CheckVec2(Vec2{s[0], s[1]})
}
