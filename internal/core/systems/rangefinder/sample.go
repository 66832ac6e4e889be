package rangefinder

import (
	"github.com/zeusync/discflight/internal/core/systems/disc"
	"github.com/zeusync/discflight/internal/core/systems/physics"
	"github.com/zeusync/discflight/internal/core/systems/trajectory"
)

// Input is the launch that produced a sample. Velocity is stored in the
// canonical frame, where the throw lands on the positive x axis.
type Input struct {
	Velocity      physics.Vec3 `json:"velocity"`
	AngleOfAttack float64      `json:"angle_of_attack"`
	Tilt          float64      `json:"tilt"`
}

// Landing is where and when a simulation run stopped.
type Landing struct {
	Position physics.Vec3 `json:"position"`
	Time     int          `json:"time"`
}

// Distance along the canonical axis.
func (l Landing) Distance() float64 { return l.Position[0] }

// Sample is one cell of the sweep. Catchable is the moment the disc drops to
// hand height, Grounded the moment it touches the ground.
type Sample struct {
	Input      Input                  `json:"input"`
	Catchable  Landing                `json:"catchable"`
	Grounded   Landing                `json:"grounded"`
	PeakHeight float64                `json:"peak_height"`
	Path       []trajectory.PathPoint `json:"path,omitempty"`
}

// HangTime is the number of steps the disc spends below hand height before
// it lands.
func (s Sample) HangTime() int { return s.Grounded.Time - s.Catchable.Time }

// Throw is a set of launch parameters aimed at a caller's target.
type Throw struct {
	Velocity      physics.Vec3 `json:"velocity"`
	AngleOfAttack float64      `json:"angle_of_attack"`
	Tilt          float64      `json:"tilt"`
}

// UpVector orients the disc for this throw.
func (t Throw) UpVector() physics.Vec3 {
	return disc.CreateUpVector(t.Velocity, t.AngleOfAttack, t.Tilt)
}

// State builds the launch state of this throw released from position.
func (t Throw) State(position physics.Vec3) (disc.State, error) {
	return disc.NewState(position, t.Velocity, t.UpVector())
}

// aimed rotates the canonical input toward angle.
func (in Input) aimed(angle float64) Throw {
	return Throw{
		Velocity:      physics.RotateZ(in.Velocity, angle),
		AngleOfAttack: in.AngleOfAttack,
		Tilt:          in.Tilt,
	}
}
