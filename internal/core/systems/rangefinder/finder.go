package rangefinder

import (
	"math/rand/v2"
	"sync"

	"github.com/zeusync/discflight/internal/core/systems/physics"
)

// Finder answers throw queries against a table. Targets are ground vectors
// from the thrower: their length is the distance to cover, their bearing the
// direction to throw in.
type Finder struct {
	table     *Table
	tolerance float64

	mu  sync.Mutex
	rng *rand.Rand
}

func NewFinder(table *Table, tolerance float64, rng *rand.Rand) *Finder {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Finder{table: table, tolerance: tolerance, rng: rng}
}

func (f *Finder) Table() *Table { return f.table }

// RandomSample picks uniformly among the candidates from Table.Samples.
func (f *Finder) RandomSample(distance float64, minTime int) (Sample, bool) {
	candidates := f.table.Samples(distance, minTime)
	if len(candidates) == 0 {
		return Sample{}, false
	}

	f.mu.Lock()
	i := f.rng.IntN(len(candidates))
	f.mu.Unlock()

	return candidates[i], true
}

// RandomThrow aims a random throw that can be caught at target after at
// least minTime steps.
func (f *Finder) RandomThrow(target physics.Vec2, minTime int) (Throw, bool, error) {
	if _, err := physics.CheckVec2(target); err != nil {
		return Throw{}, false, err
	}
	s, ok := f.RandomSample(target.Len(), minTime)
	return aim(s, ok, target)
}

// FloatiestThrow is like RandomThrow but prefers the highest arc.
func (f *Finder) FloatiestThrow(target physics.Vec2, minTime int) (Throw, bool, error) {
	if _, err := physics.CheckVec2(target); err != nil {
		return Throw{}, false, err
	}
	s, ok := f.table.FloatiestSample(target.Len(), minTime)
	return aim(s, ok, target)
}

// BestThrow looks for a throw landing within the tolerance of target that
// gives a receiver more than minRunTime steps and floats the longest.
func (f *Finder) BestThrow(target physics.Vec2, minRunTime int) (Throw, bool, error) {
	if _, err := physics.CheckVec2(target); err != nil {
		return Throw{}, false, err
	}
	d := target.Len()
	s, ok, err := f.table.BestSample(d-f.tolerance, d+f.tolerance, minRunTime)
	if err != nil {
		return Throw{}, false, err
	}
	return aim(s, ok, target)
}

// LongestThrow aims the longest throw in the table along direction.
func (f *Finder) LongestThrow(direction physics.Vec2) (Throw, error) {
	if _, err := physics.CheckVec2(direction); err != nil {
		return Throw{}, err
	}
	return f.table.Longest().Input.aimed(physics.Angle2(direction)), nil
}

func aim(s Sample, ok bool, target physics.Vec2) (Throw, bool, error) {
	if !ok {
		return Throw{}, false, nil
	}
	return s.Input.aimed(physics.Angle2(target)), true, nil
}
