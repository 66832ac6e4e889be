package physics

// Lightweight abstractions shared by the disc integrator and its consumers.
// Players live outside this module; the physics layer only needs to know
// where they stand.

// Body is anything standing on the field that can catch or pick up a disc.
type Body interface {
	// GroundPosition returns the body's position on the ground plane.
	GroundPosition() Vec2
}

// Point is a Body fixed at a ground position. Handy for tests and planning
// positions that have no player object at hand.
type Point Vec2

func (p Point) GroundPosition() Vec2 { return Vec2(p) }
