package disc

import "github.com/zeusync/discflight/internal/core/systems/physics"

// TryCatch returns the candidate whose hand is nearest the disc, provided
// that distance is strictly below the arm length. The hand sits ArmHeight
// above the candidate's ground position. Candidates are scanned in order
// and the first one wins an exact tie.
func TryCatch[B physics.Body](p Params, position physics.Vec3, candidates []B) (B, int, bool) {
	return TryCatchExcept(p, position, candidates, -1)
}

// TryCatchExcept is TryCatch with the candidate at index skip left out, so
// a thrower cannot catch their own throw. A negative skip excludes nobody.
func TryCatchExcept[B physics.Body](p Params, position physics.Vec3, candidates []B, skip int) (B, int, bool) {
	return nearest(candidates, skip, p.ArmLength, func(b B) float64 {
		return physics.Distance3(physics.Lift(b.GroundPosition(), p.ArmHeight), position)
	})
}

// TryPickup is TryCatch on the ground plane with the pickup radius. It is
// meant for a disc that has settled.
func TryPickup[B physics.Body](p Params, position physics.Vec3, candidates []B) (B, int, bool) {
	return nearest(candidates, -1, p.MaxPickupDist, func(b B) float64 {
		return physics.Distance2(b.GroundPosition(), physics.Ground(position))
	})
}

func nearest[B any](candidates []B, skip int, limit float64, dist func(B) float64) (B, int, bool) {
	var zero B
	best, bestDist := -1, limit
	for i, c := range candidates {
		if i == skip {
			continue
		}
		if d := dist(c); d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return zero, -1, false
	}
	return candidates[best], best, true
}
