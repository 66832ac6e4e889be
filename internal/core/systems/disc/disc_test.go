package disc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zeusync/discflight/internal/core/systems/physics"
)

func TestNewState(t *testing.T) {
	t.Run("normalizes_up", func(t *testing.T) {
		s, err := NewState(physics.Vec3{0, 0, 3}, physics.Vec3{1, 0, 0}, physics.Vec3{0, 0, 5})
		require.NoError(t, err)
		require.Equal(t, physics.WorldUp, s.Up)
		require.False(t, s.Grounded)
	})

	t.Run("grounded_at_or_below_zero", func(t *testing.T) {
		s, err := NewState(physics.Vec3{1, 1, 0}, physics.Vec3{}, physics.WorldUp)
		require.NoError(t, err)
		require.True(t, s.Grounded)
	})

	t.Run("rejects_non_finite", func(t *testing.T) {
		_, err := NewState(physics.Vec3{math.NaN(), 0, 0}, physics.Vec3{}, physics.WorldUp)
		require.ErrorIs(t, err, physics.ErrInvalidVector)
		_, err = NewState(physics.Vec3{}, physics.Vec3{0, math.Inf(1), 0}, physics.WorldUp)
		require.ErrorIs(t, err, physics.ErrInvalidVector)
		_, err = NewState(physics.Vec3{}, physics.Vec3{}, physics.Vec3{0, 0, math.NaN()})
		require.ErrorIs(t, err, physics.ErrInvalidVector)
	})

	t.Run("rejects_zero_up", func(t *testing.T) {
		_, err := NewState(physics.Vec3{}, physics.Vec3{}, physics.Vec3{})
		require.ErrorIs(t, err, ErrZeroUpVector)
	})
}

func TestStep(t *testing.T) {
	p := DefaultParams()

	t.Run("flight", func(t *testing.T) {
		d, err := New(p, physics.Vec3{0, 0, 10}, physics.Vec3{1, 0, 0}, physics.WorldUp)
		require.NoError(t, err)

		d.Step()
		require.False(t, d.Grounded())
		require.Equal(t, physics.Vec3{1, 0, 10}, d.Position())
		require.Less(t, d.Velocity().X(), 1.0)
		require.Less(t, d.Velocity().Z(), 0.0)
		require.Greater(t, d.Velocity().Z(), -p.Gravity)
	})

	t.Run("ground_contact", func(t *testing.T) {
		tilted := CreateUpVector(physics.Vec3{1, 0, -1}, 0.3, 0.2)
		d, err := New(p, physics.Vec3{0, 0, 0.5}, physics.Vec3{1, 0.5, -1}, tilted)
		require.NoError(t, err)

		d.Step()
		require.True(t, d.Grounded())
		require.Equal(t, physics.Vec3{1, 0.5, 0}, d.Position())
		require.InDelta(t, 0.8, d.Velocity().X(), 1e-12)
		require.InDelta(t, 0.4, d.Velocity().Y(), 1e-12)
		require.Equal(t, 0.0, d.Velocity().Z())
		require.Equal(t, physics.WorldUp, d.Up())
	})

	t.Run("grounded_stays_grounded", func(t *testing.T) {
		d, err := New(p, physics.Vec3{0, 0, 0}, physics.Vec3{2, 1, 0}, physics.WorldUp)
		require.NoError(t, err)

		for i := 0; i < 50; i++ {
			d.Step()
			require.True(t, d.Grounded())
			require.Equal(t, 0.0, d.Position().Z())
			require.Equal(t, 0.0, d.Velocity().Z())
			require.Equal(t, physics.WorldUp, d.Up())
		}
		require.Less(t, d.Velocity().Len(), 1e-3)
	})

	t.Run("motionless_apex_skips_forces", func(t *testing.T) {
		s, err := NewState(physics.Vec3{0, 0, 5}, physics.Vec3{0, 0, p.Gravity}, physics.WorldUp)
		require.NoError(t, err)

		s = s.Step(p)
		require.Equal(t, physics.Vec3{0, 0, 5 + p.Gravity}, s.Position)
		require.Equal(t, physics.Zero3, s.Velocity)

		s = s.Step(p)
		require.Equal(t, 0.0, s.Velocity.X())
		require.Equal(t, 0.0, s.Velocity.Y())
		require.Less(t, s.Velocity.Z(), 0.0)
		require.Greater(t, s.Velocity.Z(), -p.Gravity)
	})

	t.Run("deterministic", func(t *testing.T) {
		run := func() State {
			velocity := physics.Vec3{0.9, 0.1, 0.4}
			s, err := NewState(physics.Vec3{0, 0, 2}, velocity, CreateUpVector(velocity, 0.2, 0.1))
			require.NoError(t, err)
			for !s.Grounded {
				s = s.Step(p)
			}
			return s
		}
		require.Equal(t, run(), run())
	})
}

func TestSetters(t *testing.T) {
	p := DefaultParams()
	d, err := New(p, physics.Vec3{0, 0, 1}, physics.Vec3{}, physics.WorldUp)
	require.NoError(t, err)

	require.NoError(t, d.SetPosition(physics.Vec3{0, 0, -1}))
	require.True(t, d.Grounded())
	require.NoError(t, d.SetPosition(physics.Vec3{0, 0, 2}))
	require.False(t, d.Grounded())

	require.ErrorIs(t, d.SetVelocity(physics.Vec3{math.NaN(), 0, 0}), physics.ErrInvalidVector)
	require.NoError(t, d.SetVelocity(physics.Vec3{1, 0, 0}))

	require.ErrorIs(t, d.SetUpVector(physics.Vec3{}), ErrZeroUpVector)
	require.NoError(t, d.SetUpVector(physics.Vec3{-1, 0, 1}))
	require.InDelta(t, 1, d.Up().Len(), 1e-12)
	require.InDelta(t, math.Pi/4, d.AngleOfAttack(), tolerance)

	require.NoError(t, d.Accelerate(physics.Vec3{0, 1, 0}))
	require.Equal(t, physics.Vec3{1, 1, 0}, d.Velocity())
	require.ErrorIs(t, d.Accelerate(physics.Vec3{0, 0, math.Inf(1)}), physics.ErrInvalidVector)
}

func TestFriction(t *testing.T) {
	s := State{Velocity: physics.Vec3{2, 4, 8}}

	require.Equal(t, physics.Vec3{1, 2, 4}, s.ApplyFriction(0.5).Velocity)
	require.Equal(t, physics.Vec3{1, 4, 0}, s.ApplyAxisFriction(physics.Vec3{0.5, 0, 1}).Velocity)

	d := FromState(DefaultParams(), s)
	d.ApplyFriction(0.25)
	require.Equal(t, physics.Vec3{1.5, 3, 6}, d.Velocity())
	d.ApplyAxisFriction(physics.Vec3{0, 0, 1})
	require.Equal(t, physics.Vec3{1.5, 3, 0}, d.Velocity())
}

func BenchmarkStep(b *testing.B) {
	p := DefaultParams()
	velocity := physics.Vec3{1, 0, 0.3}
	start, _ := NewState(physics.Vec3{0, 0, 2}, velocity, CreateUpVector(velocity, 0.1, 0))
	s := start

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s = s.Step(p)
		if s.Grounded {
			s = start
		}
	}
}
