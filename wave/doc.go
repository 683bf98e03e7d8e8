// Package wave implements the Wave Function Collapse solver core: the
// cell/candidate-set grid, Shannon-entropy cell selection, neighbor
// constraint intersection with weighted sampling, and the
// collapse / contradiction / restart state machine.
//
// What:
//
//   - Grid is a fixed W×H lattice of Cells; each Cell holds the set of
//     symbol ids it may still become. Size 1 means collapsed, size 0 is
//     the contradiction signal. There is no separate "collapsed" variant —
//     the candidate set is the single source of truth.
//   - Analyze scans a collapsed sample Grid and learns a rules.RuleSet
//     plus an empirical weight table.
//   - Driver (or the Collapse convenience wrapper) runs the solve loop:
//     pick the lowest-entropy undecided cell, intersect what its decided
//     neighbors allow, sample one survivor by weight, and restart the
//     whole grid from its seeds whenever a cell runs out of candidates.
//
// Why:
//
//   - Texture and level synthesis: generate arrangements that locally
//     resemble a hand-made sample.
//   - The restart-only policy is a Las Vegas algorithm: output is always
//     consistent, runtime is unbounded unless WithMaxRestarts caps it.
//
// Complexity (per solve step):
//
//   - Entropy scan: O(W×H×C) for C candidates per cell.
//   - Constraint intersection: O(D×R_k) over D rule offsets.
//   - Optional worklist propagation: O(W×H×D×C) worst case per commit.
//
// Options:
//
//   - WithRand / WithSeed:   inject the sampling RNG (determinism).
//   - WithSeedCell:          pre-collapse a cell before solving (≥1 required).
//   - WithMaxRestarts:       opt-in restart ceiling; default unbounded.
//   - WithPropagation:       AC-3 style worklist narrowing after each commit.
//
// Errors:
//
//   - ErrBadDimensions, ErrBadSymbolCount: invalid Grid construction.
//   - ErrCellBounds, ErrSymbolRange:       invalid cell access or id.
//   - ErrUncertainCell:  reading the id of a cell that is not size 1.
//   - ErrNilGrid, ErrNilRules, ErrWeightMismatch, ErrBadWeights,
//     ErrNoSeed, ErrSeedBounds, ErrSeedSymbol: solver misconfiguration.
//   - ErrRestartBudget:  the opt-in restart ceiling was exhausted.
//
// A contradiction is NOT an error: it is a recognized solver state that
// triggers an automatic full-grid restart and never escapes the Driver.
package wave
