package rangefinder

import (
	"context"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"github.com/elliotchance/orderedmap/v2"
	"golang.org/x/sync/singleflight"

	"github.com/zeusync/discflight/internal/core/observability/log"
	"github.com/zeusync/discflight/internal/core/systems/disc"
	"github.com/zeusync/discflight/internal/core/systems/trajectory"
)

// Factory builds finders lazily and keeps them for its lifetime. Each key is
// built at most once even under concurrent requests; entries are never
// evicted.
type Factory struct {
	base   Config
	sim    *trajectory.Simulator
	logger log.Log

	seed   uint64
	seeded bool

	group    singleflight.Group
	mu       sync.RWMutex
	registry *orderedmap.OrderedMap[Key, *Finder]

	hits      atomic.Uint64
	builds    atomic.Uint64
	failures  atomic.Uint64
	buildTime atomic.Int64
}

type Option func(*Factory)

func WithLogger(logger log.Log) Option {
	return func(f *Factory) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// WithSeed makes random throw selection reproducible. Every finder gets its
// own stream derived from seed and its key.
func WithSeed(seed uint64) Option {
	return func(f *Factory) {
		f.seed = seed
		f.seeded = true
	}
}

// NewFactory returns a factory sweeping base with the key of each request.
func NewFactory(base Config, sim *trajectory.Simulator, opts ...Option) *Factory {
	f := &Factory{
		base:     base,
		sim:      sim,
		logger:   log.NewNop(),
		registry: orderedmap.NewOrderedMap[Key, *Finder](),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

var defaultFactory = sync.OnceValue(func() *Factory {
	return NewFactory(DefaultConfig(), trajectory.New(disc.DefaultParams()), WithLogger(log.Provide()))
})

// Default is the process-wide factory with production settings.
func Default() *Factory { return defaultFactory() }

// Base returns the sweep settings shared by every key.
func (f *Factory) Base() Config { return f.base }

// Create returns the finder for the given sweep resolution, building it on
// first use.
func (f *Factory) Create(ctx context.Context, maxSpeed, speedStep, angleStep float64) (*Finder, error) {
	return f.CreateKey(ctx, Key{MaxSpeed: maxSpeed, SpeedStep: speedStep, AngleStep: angleStep})
}

func (f *Factory) CreateKey(ctx context.Context, k Key) (*Finder, error) {
	if finder, ok := f.lookup(k); ok {
		f.hits.Add(1)
		f.logger.Debug("range finder cache hit", log.Stringer("key", k))
		return finder, nil
	}

	v, err, _ := f.group.Do(k.String(), func() (any, error) {
		if finder, ok := f.lookup(k); ok {
			return finder, nil
		}
		return f.build(ctx, k)
	})
	if err != nil {
		return nil, err
	}
	return v.(*Finder), nil
}

// Keys lists the cached keys in the order they were built.
func (f *Factory) Keys() []Key {
	f.mu.RLock()
	defer f.mu.RUnlock()

	keys := make([]Key, 0, f.registry.Len())
	for el := f.registry.Front(); el != nil; el = el.Next() {
		keys = append(keys, el.Key)
	}
	return keys
}

func (f *Factory) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.registry.Len()
}

func (f *Factory) lookup(k Key) (*Finder, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.registry.Get(k)
}

func (f *Factory) build(ctx context.Context, k Key) (*Finder, error) {
	cfg := f.base.WithKey(k)
	logger := f.logger.With(log.Stringer("key", k))

	table, err := Build(ctx, f.sim, cfg)
	if err != nil {
		f.failures.Add(1)
		logger.Error("range finder build failed", log.Err(err))
		return nil, err
	}
	f.builds.Add(1)
	f.buildTime.Add(int64(table.BuildTime()))

	logger.Info("range finder ready",
		log.String("id", table.ID().String()),
		log.Int("samples", table.Len()),
		log.Int("omitted", table.Omitted()),
		log.Float64("min_distance", table.MinDistance()),
		log.Float64("max_distance", table.MaxDistance()),
		log.Duration("duration", table.BuildTime()),
	)
	if table.Len() < cfg.SmallTableWarning {
		logger.Warn("range finder table is small",
			log.Int("samples", table.Len()),
			log.Int("omitted", table.Omitted()),
			log.Int("threshold", cfg.SmallTableWarning),
		)
	}

	finder := NewFinder(table, cfg.RangeTolerance, f.rng(k))

	f.mu.Lock()
	f.registry.Set(k, finder)
	f.mu.Unlock()

	return finder, nil
}

func (f *Factory) rng(k Key) *rand.Rand {
	if !f.seeded {
		return nil
	}
	return rand.New(rand.NewPCG(f.seed, k.Hash()))
}

// Stats counts factory activity since construction.
type Stats struct {
	Tables    int           `json:"tables"`
	Hits      uint64        `json:"hits"`
	Builds    uint64        `json:"builds"`
	Failures  uint64        `json:"failures"`
	BuildTime time.Duration `json:"build_time"`
}

func (f *Factory) Stats() Stats {
	return Stats{
		Tables:    f.Len(),
		Hits:      f.hits.Load(),
		Builds:    f.builds.Load(),
		Failures:  f.failures.Load(),
		BuildTime: time.Duration(f.buildTime.Load()),
	}
}
