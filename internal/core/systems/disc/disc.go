package disc

import (
	"errors"
	"fmt"

	"github.com/zeusync/discflight/internal/core/systems/physics"
)

var ErrZeroUpVector = errors.New("up vector has zero length")

// State is the kinematic state of a loose disc. The up vector is unit
// length and Grounded holds exactly when Position.Z() <= 0.
type State struct {
	Position physics.Vec3
	Velocity physics.Vec3
	Up       physics.Vec3
	Grounded bool
}

// NewState validates the vectors and normalizes the up vector.
func NewState(position, velocity, up physics.Vec3) (State, error) {
	var s State
	var err error
	if s, err = s.WithPosition(position); err != nil {
		return State{}, err
	}
	if s, err = s.WithVelocity(velocity); err != nil {
		return State{}, err
	}
	if s, err = s.WithUp(up); err != nil {
		return State{}, err
	}
	return s, nil
}

// WithPosition returns s moved to position, with Grounded recomputed.
func (s State) WithPosition(position physics.Vec3) (State, error) {
	position, err := physics.CheckVec3(position)
	if err != nil {
		return s, fmt.Errorf("position: %w", err)
	}
	s.Position = position
	s.Grounded = position[2] <= 0
	return s, nil
}

func (s State) WithVelocity(velocity physics.Vec3) (State, error) {
	velocity, err := physics.CheckVec3(velocity)
	if err != nil {
		return s, fmt.Errorf("velocity: %w", err)
	}
	s.Velocity = velocity
	return s, nil
}

func (s State) WithUp(up physics.Vec3) (State, error) {
	up, err := physics.CheckVec3(up)
	if err != nil {
		return s, fmt.Errorf("up vector: %w", err)
	}
	unit, ok := physics.Normalize(up)
	if !ok {
		return s, ErrZeroUpVector
	}
	s.Up = unit
	return s, nil
}

// AngleOfAttack of the disc's current orientation against its velocity.
func (s State) AngleOfAttack() float64 { return AngleOfAttack(s.Velocity, s.Up) }

// Step advances the state by one simulation step: explicit Euler position
// update, gravity, then either ground contact or aerodynamic forces.
func (s State) Step(p Params) State {
	s.Position = s.Position.Add(s.Velocity)
	s.Velocity = s.Velocity.Add(physics.Vec3{0, 0, -p.Gravity})

	if s.Position[2] <= 0 {
		keep := 1 - p.GroundFriction
		s.Position[2] = 0
		s.Velocity = physics.ScaleAxes(s.Velocity, physics.Vec3{keep, keep, 0})
		s.Up = physics.WorldUp
		s.Grounded = true
		return s
	}

	s.Grounded = false
	// A disc at the apex of a vertical throw has no defined travel direction.
	if s.Velocity == physics.Zero3 {
		return s
	}
	lift, drag := Forces(p, s.Velocity, s.Up)
	s.Velocity = s.Velocity.Add(drag.Add(lift))
	return s
}

// ApplyFriction scales the whole velocity by (1 - amount).
func (s State) ApplyFriction(amount float64) State {
	s.Velocity = s.Velocity.Mul(1 - amount)
	return s
}

// ApplyAxisFriction scales each velocity component by (1 - amounts[i]).
func (s State) ApplyAxisFriction(amounts physics.Vec3) State {
	s.Velocity = physics.ScaleAxes(s.Velocity, physics.Vec3{1 - amounts[0], 1 - amounts[1], 1 - amounts[2]})
	return s
}

// Disc owns one live disc state and the coefficients it flies with. It is
// the frame-by-frame driver; planning code works on State copies instead.
type Disc struct {
	params Params
	state  State
}

// New creates a loose disc.
func New(p Params, position, velocity, up physics.Vec3) (*Disc, error) {
	s, err := NewState(position, velocity, up)
	if err != nil {
		return nil, err
	}
	return &Disc{params: p, state: s}, nil
}

// FromState wraps an already validated state.
func FromState(p Params, s State) *Disc {
	return &Disc{params: p, state: s}
}

func (d *Disc) Params() Params { return d.params }
func (d *Disc) State() State   { return d.state }

func (d *Disc) Position() physics.Vec3 { return d.state.Position }
func (d *Disc) Velocity() physics.Vec3 { return d.state.Velocity }
func (d *Disc) Up() physics.Vec3       { return d.state.Up }
func (d *Disc) Grounded() bool         { return d.state.Grounded }

// Step advances the disc one frame in place.
func (d *Disc) Step() { d.state = d.state.Step(d.params) }

func (d *Disc) SetPosition(position physics.Vec3) error {
	s, err := d.state.WithPosition(position)
	if err != nil {
		return err
	}
	d.state = s
	return nil
}

func (d *Disc) SetVelocity(velocity physics.Vec3) error {
	s, err := d.state.WithVelocity(velocity)
	if err != nil {
		return err
	}
	d.state = s
	return nil
}

func (d *Disc) SetUpVector(up physics.Vec3) error {
	s, err := d.state.WithUp(up)
	if err != nil {
		return err
	}
	d.state = s
	return nil
}

// Accelerate adds delta to the velocity.
func (d *Disc) Accelerate(delta physics.Vec3) error {
	delta, err := physics.CheckVec3(delta)
	if err != nil {
		return fmt.Errorf("acceleration: %w", err)
	}
	d.state.Velocity = d.state.Velocity.Add(delta)
	return nil
}

func (d *Disc) ApplyFriction(amount float64)           { d.state = d.state.ApplyFriction(amount) }
func (d *Disc) ApplyAxisFriction(amounts physics.Vec3) { d.state = d.state.ApplyAxisFriction(amounts) }

// AngleOfAttack of the live disc.
func (d *Disc) AngleOfAttack() float64 { return d.state.AngleOfAttack() }
