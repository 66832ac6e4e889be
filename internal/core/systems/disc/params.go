package disc

import (
	"fmt"

	"github.com/zeusync/discflight/internal/core/systems/physics"
)

// Params holds the empirically tuned flight coefficients and the player
// reach constants. Units are field units per simulation step.
type Params struct {
	Gravity          float64 `json:"gravity" yaml:"gravity"`
	GroundFriction   float64 `json:"ground_friction" yaml:"ground_friction"`
	OptimalDragAngle float64 `json:"optimal_drag_angle" yaml:"optimal_drag_angle"`
	DragConst        float64 `json:"drag_const" yaml:"drag_const"`
	DragQuadratic    float64 `json:"drag_quadratic" yaml:"drag_quadratic"`
	LiftConst        float64 `json:"lift_const" yaml:"lift_const"`
	LiftLinear       float64 `json:"lift_linear" yaml:"lift_linear"`

	// ArmHeight is the height of a player's catching hand above the ground.
	ArmHeight float64 `json:"arm_height" yaml:"arm_height"`
	// ArmLength is the 3D catch radius around the hand.
	ArmLength float64 `json:"arm_length" yaml:"arm_length"`
	// MaxPickupDist is the 2D pickup radius for a grounded disc.
	MaxPickupDist float64 `json:"max_pickup_dist" yaml:"max_pickup_dist"`
}

// DefaultParams returns the coefficients the throw tables are tuned against.
func DefaultParams() Params {
	return Params{
		Gravity:          0.05,
		GroundFriction:   0.2,
		OptimalDragAngle: 0,
		DragConst:        0.01,
		DragQuadratic:    0.1,
		LiftConst:        0.01,
		LiftLinear:       0.04,
		ArmHeight:        2,
		ArmLength:        1.5,
		MaxPickupDist:    1,
	}
}

// Validate validates the coefficients
func (p Params) Validate() error {
	for _, c := range []struct {
		name  string
		value float64
	}{
		{"gravity", p.Gravity},
		{"ground_friction", p.GroundFriction},
		{"optimal_drag_angle", p.OptimalDragAngle},
		{"drag_const", p.DragConst},
		{"drag_quadratic", p.DragQuadratic},
		{"lift_const", p.LiftConst},
		{"lift_linear", p.LiftLinear},
		{"arm_height", p.ArmHeight},
		{"arm_length", p.ArmLength},
		{"max_pickup_dist", p.MaxPickupDist},
	} {
		if _, err := physics.CheckScalar(c.value); err != nil {
			return fmt.Errorf("%s: %w", c.name, err)
		}
	}

	if p.Gravity <= 0 {
		return fmt.Errorf("gravity must be positive, got %v", p.Gravity)
	}
	if p.GroundFriction < 0 || p.GroundFriction > 1 {
		return fmt.Errorf("ground friction must be within [0, 1], got %v", p.GroundFriction)
	}
	if p.ArmHeight <= 0 || p.ArmLength <= 0 || p.MaxPickupDist <= 0 {
		return fmt.Errorf("reach constants must be positive")
	}

	return nil
}
