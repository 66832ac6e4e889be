package rangefinder

import (
	"errors"
	"fmt"
	"sort"
)

var ErrInvalidRange = errors.New("distance range is inverted")

// Samples returns every sample that can be caught at distance after at least
// minTime steps in the air. Distances outside the table yield nil.
func (t *Table) Samples(distance float64, minTime int) []Sample {
	if distance < t.minDistance || distance > t.maxDistance {
		return nil
	}

	var out []Sample
	for _, s := range t.samples {
		if s.Catchable.Distance() <= distance && distance <= s.Grounded.Distance() && s.Grounded.Time >= minTime {
			out = append(out, s)
		}
	}
	return out
}

// ClosestSample returns the first sample landing at or beyond distance.
func (t *Table) ClosestSample(distance float64) (Sample, bool) {
	i := t.search(distance)
	if i == len(t.samples) {
		return Sample{}, false
	}
	return t.samples[i], true
}

// FloatiestSample returns the candidate from Samples with the highest peak.
func (t *Table) FloatiestSample(distance float64, minTime int) (Sample, bool) {
	candidates := t.Samples(distance, minTime)
	if len(candidates) == 0 {
		return Sample{}, false
	}

	best := 0
	for i := 1; i < len(candidates); i++ {
		if candidates[i].PeakHeight > candidates[best].PeakHeight {
			best = i
		}
	}
	return candidates[best], true
}

// BestSample returns the sample landing within [minDistance, maxDistance]
// that hangs below hand height the longest, among those in the air for more
// than minRunTime steps.
func (t *Table) BestSample(minDistance, maxDistance float64, minRunTime int) (Sample, bool, error) {
	if maxDistance < minDistance {
		return Sample{}, false, fmt.Errorf("%w: [%g, %g]", ErrInvalidRange, minDistance, maxDistance)
	}

	lo := t.search(minDistance)
	hi := sort.Search(len(t.samples), func(i int) bool {
		return t.samples[i].Grounded.Distance() > maxDistance
	})

	best, found := -1, false
	for i := lo; i < hi; i++ {
		s := t.samples[i]
		if s.Grounded.Time <= minRunTime {
			continue
		}
		if !found || s.HangTime() > t.samples[best].HangTime() {
			best, found = i, true
		}
	}
	if !found {
		return Sample{}, false, nil
	}
	return t.samples[best], true, nil
}

// Longest returns the sample with the greatest landing distance.
func (t *Table) Longest() Sample { return t.samples[len(t.samples)-1] }

// search returns the index of the first sample landing at or beyond
// distance.
func (t *Table) search(distance float64) int {
	return sort.Search(len(t.samples), func(i int) bool {
		return t.samples[i].Grounded.Distance() >= distance
	})
}
