package disc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zeusync/discflight/internal/core/systems/physics"
)

func TestTryCatch(t *testing.T) {
	p := DefaultParams()
	hand := physics.Vec3{0, 0, p.ArmHeight}

	t.Run("within_reach", func(t *testing.T) {
		players := []physics.Point{{10, 10}, {1, 0}}
		got, idx, ok := TryCatch(p, hand, players)
		require.True(t, ok)
		require.Equal(t, 1, idx)
		require.Equal(t, physics.Point{1, 0}, got)
	})

	t.Run("exactly_arm_length_does_not_catch", func(t *testing.T) {
		_, _, ok := TryCatch(p, hand, []physics.Point{{p.ArmLength, 0}})
		require.False(t, ok)
	})

	t.Run("nearest_wins", func(t *testing.T) {
		players := []physics.Point{{1, 0}, {0.5, 0}, {0, 1.2}}
		_, idx, ok := TryCatch(p, hand, players)
		require.True(t, ok)
		require.Equal(t, 1, idx)
	})

	t.Run("first_wins_exact_tie", func(t *testing.T) {
		players := []physics.Point{{0, 0.5}, {0.5, 0}, {0, -0.5}}
		_, idx, ok := TryCatch(p, hand, players)
		require.True(t, ok)
		require.Equal(t, 0, idx)
	})

	t.Run("height_matters", func(t *testing.T) {
		_, _, ok := TryCatch(p, physics.Vec3{0, 0, p.ArmHeight + 2}, []physics.Point{{0, 0}})
		require.False(t, ok)
	})

	t.Run("no_candidates", func(t *testing.T) {
		_, idx, ok := TryCatch[physics.Point](p, hand, nil)
		require.False(t, ok)
		require.Equal(t, -1, idx)
	})

	t.Run("skipped_candidate", func(t *testing.T) {
		players := []physics.Point{{0, 0}, {1, 0}}
		_, idx, ok := TryCatchExcept(p, hand, players, 0)
		require.True(t, ok)
		require.Equal(t, 1, idx)

		_, _, ok = TryCatchExcept(p, hand, players[:1], 0)
		require.False(t, ok)

		_, idx, ok = TryCatchExcept(p, hand, players, -1)
		require.True(t, ok)
		require.Equal(t, 0, idx)
	})
}

func TestTryPickup(t *testing.T) {
	p := DefaultParams()
	ground := physics.Vec3{5, 5, 0}

	got, idx, ok := TryPickup(p, ground, []physics.Point{{8, 5}, {5.5, 5}, {5, 5.4}})
	require.True(t, ok)
	require.Equal(t, 2, idx)
	require.Equal(t, physics.Point{5, 5.4}, got)

	_, _, ok = TryPickup(p, ground, []physics.Point{{5 + p.MaxPickupDist, 5}})
	require.False(t, ok)

	// Height is ignored for pickup.
	_, _, ok = TryPickup(p, physics.Vec3{5, 5, 3}, []physics.Point{{5, 5}})
	require.True(t, ok)
}

func TestParamsValidate(t *testing.T) {
	require.NoError(t, DefaultParams().Validate())

	p := DefaultParams()
	p.Gravity = 0
	require.Error(t, p.Validate())

	p = DefaultParams()
	p.GroundFriction = 1.5
	require.Error(t, p.Validate())

	p = DefaultParams()
	p.ArmLength = -1
	require.Error(t, p.Validate())
}
