package disc

import (
	"math"

	"github.com/zeusync/discflight/internal/core/systems/physics"
)

// AngleOfAttack returns the pitch of a disc oriented by up relative to its
// direction of travel, in [-π/2, π/2]. Positive means the leading edge is
// raised. Velocity parallel to the disc normal has no forward direction and
// yields π/2.
func AngleOfAttack(velocity, up physics.Vec3) float64 {
	direction, ok := physics.Normalize(velocity)
	if !ok {
		return math.Pi / 2
	}
	side, ok := physics.Normalize(direction.Cross(up))
	if !ok {
		return math.Pi / 2
	}

	// Forward lies in the plane of direction and up, pointing along travel.
	forward := up.Cross(side)
	if physics.MagnitudeAlong(forward, direction) < 0 {
		forward = forward.Mul(-1)
	}

	angle := math.Acos(clampUnit(forward.Dot(direction)))
	if angle > math.Pi/2 {
		angle -= math.Pi
	}

	if forward.Sub(direction).Dot(physics.WorldUp) > 0 {
		return math.Abs(angle)
	}
	return -math.Abs(angle)
}

// Forces returns the lift and drag accelerations acting on a disc for one
// step. A motionless disc feels neither.
func Forces(p Params, velocity, up physics.Vec3) (lift, drag physics.Vec3) {
	speed := velocity.Len()
	if speed == 0 {
		return physics.Zero3, physics.Zero3
	}
	direction := velocity.Mul(1 / speed)
	speedSq := speed * speed

	angle := math.Pi / 2
	if side, ok := physics.Normalize(direction.Cross(up)); ok {
		liftDirection := direction.Cross(side)
		if physics.MagnitudeAlong(liftDirection, up) < 0 {
			liftDirection = liftDirection.Mul(-1)
		}
		angle = AngleOfAttack(velocity, up)
		lift = liftDirection.Mul(speedSq * (p.LiftConst + angle*p.LiftLinear))
	}

	offset := angle - p.OptimalDragAngle
	drag = direction.Mul(-speedSq * (p.DragConst + offset*offset*p.DragQuadratic))
	return lift, drag
}

// CreateUpVector returns the unit disc normal that gives a disc thrown with
// velocity the requested angle of attack and lateral tilt. Positive tilt
// rolls the disc towards the thrower's right (-y for a throw along +x).
func CreateUpVector(velocity physics.Vec3, angleOfAttack, tilt float64) physics.Vec3 {
	direction, ok := physics.Normalize(velocity)
	if !ok {
		return physics.WorldUp
	}
	side, ok := physics.Normalize(direction.Cross(physics.WorldUp))
	if !ok {
		// Vertical throw: any horizontal side axis works, pick the one a
		// throw along +x would have.
		side = physics.Vec3{0, -1, 0}
	}
	liftAxis := side.Cross(direction)

	cosAttack := math.Cos(angleOfAttack)
	return direction.Mul(-math.Sin(angleOfAttack)).
		Add(liftAxis.Mul(cosAttack * math.Cos(tilt))).
		Add(side.Mul(cosAttack * math.Sin(tilt)))
}

// clampUnit guards acos against rounding just outside [-1, 1].
func clampUnit(x float64) float64 {
	return math.Max(-1, math.Min(1, x))
}
