package rangefinder

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"github.com/zeusync/discflight/internal/core/systems/disc"
	"github.com/zeusync/discflight/internal/core/systems/physics"
	"github.com/zeusync/discflight/internal/core/systems/trajectory"
	"github.com/zeusync/discflight/pkg/concurrent"
)

// rotationTolerance bounds the lateral landing coordinate left after a sample
// is rotated onto the canonical axis.
const rotationTolerance = 1e-3

var (
	ErrRotationInvariant = errors.New("landing point not on canonical axis after rotation")
	ErrEmptyTable        = errors.New("sweep produced no samples")
)

// Table is an immutable set of samples sorted by increasing landing
// distance. It is safe for concurrent use.
type Table struct {
	id          uuid.UUID
	key         Key
	samples     []Sample
	omitted     int
	minDistance float64
	maxDistance float64
	checksum    uint64
	elapsed     time.Duration
}

// Build sweeps cfg through sim. Launch angles are simulated in parallel; the
// resulting table does not depend on the number of workers.
func Build(ctx context.Context, sim *trajectory.Simulator, cfg Config) (*Table, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	launchAngles := grid(cfg.LaunchAngle, cfg.AngleStep)
	rows, err := concurrent.Map(ctx, launchAngles, cfg.Workers, func(ctx context.Context, launchAngle float64) (sweepRow, error) {
		return sweep(ctx, sim, cfg, launchAngle)
	})
	if err != nil {
		return nil, fmt.Errorf("build table %s: %w", cfg.Key, err)
	}

	t := &Table{id: uuid.New(), key: cfg.Key}
	for _, row := range rows {
		t.samples = append(t.samples, row.samples...)
		t.omitted += row.omitted
	}
	if len(t.samples) == 0 {
		return nil, fmt.Errorf("%w: %s omitted %d throws", ErrEmptyTable, cfg.Key, t.omitted)
	}

	sort.SliceStable(t.samples, func(i, j int) bool {
		return t.samples[i].Grounded.Distance() < t.samples[j].Grounded.Distance()
	})

	t.minDistance = math.Inf(1)
	for _, s := range t.samples {
		t.minDistance = math.Min(t.minDistance, s.Catchable.Distance())
	}
	t.maxDistance = t.samples[len(t.samples)-1].Grounded.Distance()
	t.checksum = checksum(t.samples)
	t.elapsed = time.Since(start)

	return t, nil
}

type sweepRow struct {
	samples []Sample
	omitted int
}

// sweep simulates every speed, angle of attack and tilt for one launch angle.
func sweep(ctx context.Context, sim *trajectory.Simulator, cfg Config, launchAngle float64) (sweepRow, error) {
	var row sweepRow
	origin := physics.Vec3{0, 0, cfg.LaunchHeight}

	for _, speed := range grid(Range{Min: cfg.MinSpeed, Max: cfg.MaxSpeed}, cfg.SpeedStep) {
		if err := ctx.Err(); err != nil {
			return row, err
		}
		velocity := physics.Vec3{speed * math.Cos(launchAngle), 0, speed * math.Sin(launchAngle)}

		for _, attack := range grid(cfg.AngleOfAttack, cfg.AngleStep) {
			for _, tilt := range grid(cfg.Tilt, cfg.AngleStep) {
				sample, err := simulate(sim, origin, Input{Velocity: velocity, AngleOfAttack: attack, Tilt: tilt}, cfg.RecordPaths)
				if err != nil {
					return row, err
				}
				if sample.Grounded.Distance() <= cfg.MinRange {
					row.omitted++
					continue
				}
				row.samples = append(row.samples, sample)
			}
		}
	}

	return row, nil
}

// simulate runs one launch to hand height and to the ground, then rotates the
// result so the landing point lies on the positive x axis.
func simulate(sim *trajectory.Simulator, origin physics.Vec3, in Input, recordPath bool) (Sample, error) {
	start, err := disc.NewState(origin, in.Velocity, disc.CreateUpVector(in.Velocity, in.AngleOfAttack, in.Tilt))
	if err != nil {
		return Sample{}, err
	}

	catchable, err := sim.UntilCatchable(start, false)
	if err != nil {
		return Sample{}, err
	}
	grounded, err := sim.UntilGrounded(start, recordPath)
	if err != nil {
		return Sample{}, err
	}

	angle := physics.Angle2(physics.Ground(grounded.FinalPosition))
	s := Sample{
		Input: Input{
			Velocity:      physics.RotateZ(in.Velocity, -angle),
			AngleOfAttack: in.AngleOfAttack,
			Tilt:          in.Tilt,
		},
		Catchable:  Landing{Position: physics.RotateZ(catchable.FinalPosition, -angle), Time: catchable.FinalTime},
		Grounded:   Landing{Position: physics.RotateZ(grounded.FinalPosition, -angle), Time: grounded.FinalTime},
		PeakHeight: grounded.PeakHeight,
	}
	if err := checkCanonical(s); err != nil {
		return Sample{}, err
	}

	if recordPath {
		s.Path = make([]trajectory.PathPoint, len(grounded.Path))
		for i, p := range grounded.Path {
			s.Path[i] = trajectory.PathPoint{Time: p.Time, Position: physics.RotateZ(p.Position, -angle)}
		}
	}

	return s, nil
}

// checkCanonical fails when the landing point of s is off the canonical
// axis.
func checkCanonical(s Sample) error {
	if lateral := s.Grounded.Position[1]; math.Abs(lateral) > rotationTolerance {
		return fmt.Errorf("%w: lateral %g for %+v", ErrRotationInvariant, lateral, s.Input)
	}
	return nil
}

// checksum fingerprints the launch inputs and landings in table order.
func checksum(samples []Sample) uint64 {
	h := xxhash.New()
	var buf [8]byte
	write := func(f float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(f))
		_, _ = h.Write(buf[:])
	}
	for _, s := range samples {
		for _, v := range []physics.Vec3{s.Input.Velocity, s.Catchable.Position, s.Grounded.Position} {
			write(v[0])
			write(v[1])
			write(v[2])
		}
		write(s.Input.AngleOfAttack)
		write(s.Input.Tilt)
		write(float64(s.Catchable.Time))
		write(float64(s.Grounded.Time))
	}
	return h.Sum64()
}

func (t *Table) ID() uuid.UUID            { return t.id }
func (t *Table) Key() Key                 { return t.key }
func (t *Table) Len() int                 { return len(t.samples) }
func (t *Table) Omitted() int             { return t.omitted }
func (t *Table) MinDistance() float64     { return t.minDistance }
func (t *Table) MaxDistance() float64     { return t.maxDistance }
func (t *Table) Checksum() uint64         { return t.checksum }
func (t *Table) BuildTime() time.Duration { return t.elapsed }

// At returns the i-th sample in distance order.
func (t *Table) At(i int) Sample { return t.samples[i] }

// All returns a copy of the samples in distance order.
func (t *Table) All() []Sample {
	out := make([]Sample, len(t.samples))
	copy(out, t.samples)
	return out
}

// TableStats summarizes a table.
type TableStats struct {
	ID          string        `json:"id"`
	Key         Key           `json:"key"`
	Samples     int           `json:"samples"`
	Omitted     int           `json:"omitted"`
	MinDistance float64       `json:"min_distance"`
	MaxDistance float64       `json:"max_distance"`
	Checksum    uint64        `json:"checksum"`
	BuildTime   time.Duration `json:"build_time"`
}

func (t *Table) Stats() TableStats {
	return TableStats{
		ID:          t.id.String(),
		Key:         t.key,
		Samples:     len(t.samples),
		Omitted:     t.omitted,
		MinDistance: t.minDistance,
		MaxDistance: t.maxDistance,
		Checksum:    t.checksum,
		BuildTime:   t.elapsed,
	}
}
