package wave

import "math/rand"

// Seed pins one cell to one id before solving starts and again after
// every contradiction restart. At least one Seed is mandatory — without
// it a restart would resume from a completely unconstrained grid.
type Seed struct {
	X, Y int // cell coordinates
	ID   int // symbol id, 0..Symbols()-1
}

// Options configures a solve run.
//
// Rand        – sampling RNG. Nil falls back to a time-seeded source;
//               inject via WithRand/WithSeed for reproducible output.
// Seeds       – pre-collapsed cells, re-applied after every restart.
// MaxRestarts – restart ceiling; values ≤ 0 mean unbounded (the classic
//               Las Vegas behavior). Exhaustion yields ErrRestartBudget.
// Propagation – run the AC-3 worklist sweep after each committed cell,
//               narrowing neighbors eagerly instead of only at decision
//               time. Off by default.
type Options struct {
	Rand        *rand.Rand
	Seeds       []Seed
	MaxRestarts int
	Propagation bool
}

// Option represents a functional option for configuring the solver.
type Option func(*Options)

// DefaultOptions returns the baseline configuration: no seeds yet, no
// restart ceiling, no eager propagation, RNG resolved at run time.
func DefaultOptions() Options {
	return Options{}
}

// WithRand provides an explicit RNG for weighted sampling.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		// Fail fast to avoid silent non-determinism later.
		panic("wave: WithRand(nil)")
	}
	return func(o *Options) {
		o.Rand = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rand.New(rand.NewSource(seed))
	}
}

// WithSeedCell pins the cell at (x,y) to id before solving; repeatable.
// Coordinates and id are validated against the grid by NewDriver.
func WithSeedCell(x, y, id int) Option {
	return func(o *Options) {
		o.Seeds = append(o.Seeds, Seed{X: x, Y: y, ID: id})
	}
}

// WithMaxRestarts caps contradiction restarts; exceeding the cap makes
// the run fail with ErrRestartBudget instead of looping forever.
// Panics on negative n; use 0 (or omit) for unbounded.
func WithMaxRestarts(n int) Option {
	if n < 0 {
		panic("wave: WithMaxRestarts(n<0)")
	}
	return func(o *Options) {
		o.MaxRestarts = n
	}
}

// WithPropagation enables the AC-3 style worklist sweep after each
// committed cell.
func WithPropagation() Option {
	return func(o *Options) {
		o.Propagation = true
	}
}
