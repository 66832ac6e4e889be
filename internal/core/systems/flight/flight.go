package flight

import (
	"errors"
	"fmt"
	"time"

	"github.com/zeusync/discflight/internal/core/systems"
	"github.com/zeusync/discflight/internal/core/systems/disc"
	"github.com/zeusync/discflight/internal/core/systems/physics"
)

var (
	ErrNotHeld  = errors.New("disc is not held")
	ErrHeld     = errors.New("disc is already held")
	ErrNoHolder = errors.New("holder index out of range")
)

// EventKind tells how a loose disc came to rest in someone's hands.
type EventKind uint8

const (
	EventNone EventKind = iota
	EventCatch
	EventPickup
)

func (k EventKind) String() string {
	switch k {
	case EventCatch:
		return "catch"
	case EventPickup:
		return "pickup"
	default:
		return "none"
	}
}

// Event is emitted by the frame in which a player takes the disc.
type Event struct {
	Kind   EventKind
	Player int
	Frame  int
}

var _ systems.System = (*System[physics.Point])(nil)

// System drives the live disc one step per frame. A loose disc is stepped
// first and then offered to the players: in the air to catchers within arm
// reach, on the ground to anyone within pickup distance.
type System[B physics.Body] struct {
	params  disc.Params
	disc    *disc.Disc
	players func() []B

	holder  int
	// thrower may not catch the disc until it lands or someone else has it.
	thrower int
	events  []Event
	metrics systems.Metrics
}

// New returns a system with the disc held by player holder. players is
// called every frame so the roster and its positions can change.
func New[B physics.Body](p disc.Params, players func() []B, holder int) *System[B] {
	held := disc.State{Up: physics.WorldUp, Grounded: true}
	return &System[B]{params: p, disc: disc.FromState(p, held), players: players, holder: holder, thrower: -1}
}

func (s *System[B]) Name() string { return "disc_flight" }

// Disc returns the live disc. It must not be mutated while held.
func (s *System[B]) Disc() *disc.Disc { return s.disc }

// Holder returns the index of the player holding the disc.
func (s *System[B]) Holder() (int, bool) { return s.holder, s.holder >= 0 }

// Throw releases the held disc with the given launch state. The state is
// validated like disc.NewState; the holder cannot catch it back in flight.
func (s *System[B]) Throw(start disc.State) error {
	if s.holder < 0 {
		return ErrNotHeld
	}
	d, err := disc.New(s.params, start.Position, start.Velocity, start.Up)
	if err != nil {
		return err
	}
	s.disc = d
	s.thrower, s.holder = s.holder, -1
	return nil
}

// Drop releases the disc as a loose disc at rest at position, for turnovers
// and pulls that land out of bounds.
func (s *System[B]) Drop(position physics.Vec3) error {
	d, err := disc.New(s.params, position, physics.Zero3, physics.WorldUp)
	if err != nil {
		return err
	}
	s.disc = d
	s.holder, s.thrower = -1, -1
	return nil
}

// Give hands a loose disc to player directly.
func (s *System[B]) Give(player int) error {
	if s.holder >= 0 {
		return ErrHeld
	}
	if player < 0 || player >= len(s.players()) {
		return ErrNoHolder
	}
	s.holder, s.thrower = player, -1
	return nil
}

// Update advances a loose disc by one frame. A catch or pickup is queued as
// an Event and the disc becomes held.
func (s *System[B]) Update(frame int) (err error) {
	defer func(start time.Time) { s.metrics.Record(start, err) }(time.Now())

	if s.holder >= 0 {
		return nil
	}

	s.disc.Step()
	position, err := physics.CheckVec3(s.disc.Position())
	if err != nil {
		return fmt.Errorf("frame %d: %w", frame, err)
	}
	players := s.players()

	var (
		idx int
		ok  bool
	)
	kind := EventCatch
	if s.disc.Grounded() {
		kind = EventPickup
		s.thrower = -1
		_, idx, ok = disc.TryPickup(s.params, position, players)
	} else {
		_, idx, ok = disc.TryCatchExcept(s.params, position, players, s.thrower)
	}
	if !ok {
		return nil
	}

	s.holder, s.thrower = idx, -1
	s.events = append(s.events, Event{Kind: kind, Player: idx, Frame: frame})
	return nil
}

// Events drains the events produced since the last call.
func (s *System[B]) Events() []Event {
	out := s.events
	s.events = nil
	return out
}

func (s *System[B]) GetMetrics() systems.Metrics { return s.metrics }
