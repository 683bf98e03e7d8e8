package wave

import (
	"errors"
	"math/rand"
	"time"

	"github.com/katalvlaran/wfc/rules"
)

// Sentinel errors returned by NewDriver / Collapse validation and by the
// restart ceiling.
var (
	// ErrNilRules indicates a nil *rules.RuleSet was passed in.
	ErrNilRules = errors.New("wave: rule set is nil")
	// ErrWeightMismatch indicates len(weights) differs from the grid's
	// symbol count.
	ErrWeightMismatch = errors.New("wave: weight table length must equal the symbol count")
	// ErrBadWeights indicates a negative weight, or no positive weight at all.
	ErrBadWeights = errors.New("wave: weights must be non-negative with at least one positive")
	// ErrNoSeed indicates no seed cell was supplied; solving without one
	// is a caller error.
	ErrNoSeed = errors.New("wave: at least one seed cell is required")
	// ErrSeedBounds indicates a seed cell outside the grid.
	ErrSeedBounds = errors.New("wave: seed cell coordinates out of bounds")
	// ErrSeedSymbol indicates a seed id outside 0..Symbols()-1.
	ErrSeedSymbol = errors.New("wave: seed symbol id out of range")
	// ErrRestartBudget indicates the opt-in restart ceiling was exhausted.
	ErrRestartBudget = errors.New("wave: restart budget exhausted before the grid collapsed")
)

// Result reports what a solve run cost.
type Result struct {
	Steps    int // committed propagator steps, across all attempts
	Restarts int // full-grid restarts taken on contradiction
}

// Driver runs the collapse state machine over one Grid. Construct with
// NewDriver; the rule set and weight table are shared read-only inputs
// and are never mutated.
type Driver struct {
	g       *Grid
	rs      *rules.RuleSet
	weights []float64
	opts    Options

	steps    int
	restarts int
}

// NewDriver validates the inputs, applies every seed cell, and returns a
// Driver ready to Step or Run.
//
// Returns ErrNilGrid, ErrNilRules, ErrWeightMismatch, ErrBadWeights,
// ErrNoSeed, ErrSeedBounds or ErrSeedSymbol. Validation happens before
// any grid mutation.
func NewDriver(g *Grid, rs *rules.RuleSet, weights []float64, opts ...Option) (*Driver, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if rs == nil {
		return nil, ErrNilRules
	}
	if len(weights) != g.Symbols() {
		return nil, ErrWeightMismatch
	}
	positive := false
	for _, w := range weights {
		if w < 0 {
			return nil, ErrBadWeights
		}
		if w > 0 {
			positive = true
		}
	}
	if !positive {
		return nil, ErrBadWeights
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if len(o.Seeds) == 0 {
		return nil, ErrNoSeed
	}
	for _, s := range o.Seeds {
		if !g.InBounds(s.X, s.Y) {
			return nil, ErrSeedBounds
		}
		if s.ID < 0 || s.ID >= g.Symbols() {
			return nil, ErrSeedSymbol
		}
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	d := &Driver{g: g, rs: rs, weights: weights, opts: o}
	d.applySeeds()

	return d, nil
}

// applySeeds pins every configured seed cell; coordinates and ids were
// validated in NewDriver.
func (d *Driver) applySeeds() {
	for _, s := range d.opts.Seeds {
		_ = d.g.SetCollapsed(s.X, s.Y, s.ID)
	}
}

// Steps reports committed propagator steps so far.
func (d *Driver) Steps() int { return d.steps }

// Restarts reports full-grid restarts taken so far.
func (d *Driver) Restarts() int { return d.restarts }

// Step performs one state-machine transition and returns the grid state
// after it:
//
//	Uncollapsed   → select the lowest-entropy cell, intersect its
//	                neighbors' permissions, weighted-sample, commit.
//	Contradicting → reset the whole grid, re-apply every seed. No partial
//	                backtracking, no memory of the failed attempt.
//	Collapsed     → terminal; no-op.
//
// A contradiction never surfaces as an error; only an exhausted restart
// ceiling does (ErrRestartBudget, with the grid left reset and seeded).
func (d *Driver) Step() (State, error) {
	switch d.g.State() {
	case Collapsed:
		return Collapsed, nil
	case Contradicting:
		d.restarts++
		if d.opts.MaxRestarts > 0 && d.restarts > d.opts.MaxRestarts {
			d.g.Reset()
			d.applySeeds()

			return Contradicting, ErrRestartBudget
		}
		d.g.Reset()
		d.applySeeds()

		return d.g.State(), nil
	default:
		x, y, ok := MinEntropyCell(d.g, d.weights)
		if !ok {
			return d.g.State(), nil
		}
		collapseCell(d.g, d.rs, d.weights, x, y, d.opts.Rand)
		d.steps++
		if d.opts.Propagation && !d.g.cells[y][x].IsContradicted() {
			propagate(d.g, d.rs, x, y)
		}

		return d.g.State(), nil
	}
}

// Run loops Step until the grid collapses, returning the run cost.
// With no restart ceiling this is a Las Vegas loop: always-correct
// output, potentially unbounded time on pathological rule sets.
func (d *Driver) Run() (Result, error) {
	for {
		st, err := d.Step()
		if err != nil {
			return Result{Steps: d.steps, Restarts: d.restarts}, err
		}
		if st == Collapsed {
			return Result{Steps: d.steps, Restarts: d.restarts}, nil
		}
	}
}

// Collapse is the one-call form: validate, seed, and run to completion.
//
// Example:
//
//	g, _ := wave.New(32, 32, len(weights))
//	res, err := wave.Collapse(g, rs, weights,
//	    wave.WithSeedCell(16, 16, 0),
//	    wave.WithSeed(42),
//	)
func Collapse(g *Grid, rs *rules.RuleSet, weights []float64, opts ...Option) (Result, error) {
	d, err := NewDriver(g, rs, weights, opts...)
	if err != nil {
		return Result{}, err
	}

	return d.Run()
}
