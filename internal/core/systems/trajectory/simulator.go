package trajectory

import (
	"errors"
	"fmt"
	"math"

	"github.com/zeusync/discflight/internal/core/systems/disc"
	"github.com/zeusync/discflight/internal/core/systems/physics"
)

// DefaultMaxSteps bounds every simulation run. Real throws settle within a
// few hundred steps.
const DefaultMaxSteps = 10000

var ErrDidNotTerminate = errors.New("simulation did not terminate")

// Predicate decides when a simulation run stops. It sees the state after
// each step.
type Predicate func(disc.State) bool

// PathPoint is one recorded sample of a trajectory.
type PathPoint struct {
	Time     int          `json:"time"`
	Position physics.Vec3 `json:"position"`
}

// Result of a simulation run. FinalTime counts steps taken.
type Result struct {
	FinalPosition physics.Vec3
	FinalTime     int
	// PeakHeight is the greatest height reached, including the start.
	PeakHeight float64
	// Path holds one point per step when recording was requested.
	Path []PathPoint
}

// Simulator runs private copies of a disc state forward. It holds no
// mutable state and is safe for concurrent use.
type Simulator struct {
	params   disc.Params
	maxSteps int
}

type Option func(*Simulator)

// WithMaxSteps overrides the step cap. Non-positive values are ignored.
func WithMaxSteps(n int) Option {
	return func(s *Simulator) {
		if n > 0 {
			s.maxSteps = n
		}
	}
}

func New(p disc.Params, opts ...Option) *Simulator {
	s := &Simulator{params: p, maxSteps: DefaultMaxSteps}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Simulator) Params() disc.Params { return s.params }
func (s *Simulator) MaxSteps() int       { return s.maxSteps }

// Until steps start until done holds. At least one step is always taken.
func (s *Simulator) Until(start disc.State, done Predicate, recordPath bool) (Result, error) {
	state := start
	res := Result{PeakHeight: state.Position[2]}
	if recordPath {
		res.Path = make([]PathPoint, 0, 128)
	}

	for {
		if res.FinalTime >= s.maxSteps {
			return res, fmt.Errorf("%w: %d steps from %v", ErrDidNotTerminate, s.maxSteps, start.Position)
		}
		state = state.Step(s.params)
		res.FinalTime++
		res.FinalPosition = state.Position
		res.PeakHeight = math.Max(res.PeakHeight, state.Position[2])
		if recordPath {
			res.Path = append(res.Path, PathPoint{Time: res.FinalTime, Position: state.Position})
		}
		if done(state) {
			return res, nil
		}
	}
}

// UntilGrounded runs until the disc touches the ground.
func (s *Simulator) UntilGrounded(start disc.State, recordPath bool) (Result, error) {
	return s.Until(start, Grounded, recordPath)
}

// UntilCatchable runs until the disc drops to hand height. Lateral reach is
// ignored; this only bounds the window in which a catch is possible.
func (s *Simulator) UntilCatchable(start disc.State, recordPath bool) (Result, error) {
	return s.Until(start, BelowHeight(s.params.ArmHeight), recordPath)
}

// Grounded stops once the disc is on the ground.
func Grounded(st disc.State) bool { return st.Grounded }

// BelowHeight stops once the disc is at or below z.
func BelowHeight(z float64) Predicate {
	return func(st disc.State) bool { return st.Position[2] <= z }
}
