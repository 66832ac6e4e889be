package trajectory

import (
	"fmt"

	"github.com/zeusync/discflight/internal/core/systems/disc"
	"github.com/zeusync/discflight/internal/core/systems/physics"
)

// Interception reports who, if anyone, would catch a throw and when.
type Interception[B physics.Body] struct {
	Defender B
	// Index of Defender in the slice passed to Intercept, -1 when none.
	Index       int
	Intercepted bool
	// Time is the step of the catch, or the landing step when untouched.
	Time int
}

// Intercept flies start one step at a time and checks every defender for a
// catch before each step. Defenders are scanned in slice order so ties
// resolve the same way on every run.
func Intercept[B physics.Body](s *Simulator, start disc.State, defenders []B) (Interception[B], error) {
	state := start
	for t := 0; ; t++ {
		if state.Grounded {
			return Interception[B]{Index: -1, Time: t}, nil
		}
		if d, idx, ok := disc.TryCatch(s.params, state.Position, defenders); ok {
			return Interception[B]{Defender: d, Index: idx, Intercepted: true, Time: t}, nil
		}
		if t >= s.maxSteps {
			return Interception[B]{Index: -1, Time: t},
				fmt.Errorf("%w: interception scan from %v", ErrDidNotTerminate, start.Position)
		}
		state = state.Step(s.params)
	}
}
