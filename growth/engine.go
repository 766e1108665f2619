package growth

import (
	"github.com/katalvlaran/lichtenberg/core"
)

// Engine grows a core.Graph one step at a time.
//
// The Engine is the sole mutator of its graph. It is not safe for
// concurrent use: every GrowOnce must finish (reinforcement included)
// before the next one starts.
type Engine struct {
	graph    *core.Graph
	cfg      Config
	sampler  Sampler
	observer Observer
	seeded   bool // sampler supplied explicitly via WithSampler
}

// Option customizes an Engine before construction is finalized.
type Option func(*Engine)

// WithConfig replaces the whole configuration. Later options still apply on top.
func WithConfig(cfg Config) Option {
	return func(e *Engine) { e.cfg = cfg }
}

// WithStepDistance sets r.
func WithStepDistance(r float64) Option {
	return func(e *Engine) { e.cfg.StepDistance = r }
}

// WithMergeFactor sets the proximity-merge multiplier.
func WithMergeFactor(f float64) Option {
	return func(e *Engine) { e.cfg.MergeFactor = f }
}

// WithMaxRetries sets the attempt cap of GrowOnce.
func WithMaxRetries(n int) Option {
	return func(e *Engine) { e.cfg.MaxRetries = n }
}

// WithRoot sets the reinforcement destination vertex.
func WithRoot(id string) Option {
	return func(e *Engine) { e.cfg.Root = id }
}

// WithSeed seeds the default math/rand sampler.
func WithSeed(seed int64) Option {
	return func(e *Engine) { e.cfg.Seed = seed }
}

// WithSampler installs an explicit uniform source, overriding the seed.
// Panics on nil to surface programmer error early.
func WithSampler(s Sampler) Option {
	if s == nil {
		panic("growth: WithSampler(nil)")
	}
	return func(e *Engine) {
		e.sampler = s
		e.seeded = true
	}
}

// WithObserver installs a hook called after every completed step.
// Panics on nil to surface programmer error early.
func WithObserver(o Observer) Option {
	if o == nil {
		panic("growth: WithObserver(nil)")
	}
	return func(e *Engine) { e.observer = o }
}

// NewEngine binds an Engine to g.
//
// The root does not have to exist yet; it is checked on every GrowOnce.
//
// Errors:
//   - ErrGraphNil if g is nil.
//   - ErrBadConfig (wrapped) if the resulting Config is invalid.
func NewEngine(g *core.Graph, opts ...Option) (*Engine, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	e := &Engine{graph: g, cfg: DefaultConfig()}
	var opt Option
	for _, opt = range opts {
		opt(e)
	}
	if err := e.cfg.Validate(); err != nil {
		return nil, err
	}
	if !e.seeded {
		e.sampler = rngFromSeed(e.cfg.Seed)
	}

	return e, nil
}

// Graph returns the graph this Engine grows.
func (e *Engine) Graph() *core.Graph { return e.graph }

// Config returns the effective configuration.
func (e *Engine) Config() Config { return e.cfg }
