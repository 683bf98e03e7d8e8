package wave

import (
	"errors"

	"github.com/katalvlaran/wfc/rules"
)

// Sentinel errors for sample analysis and solver configuration shared
// across this package.
var (
	// ErrNilGrid indicates a nil *Grid was passed in.
	ErrNilGrid = errors.New("wave: grid is nil")
)

// unitOffsets are the four orthogonal displacements the analyzer learns
// rules for, in a fixed registration order for deterministic rule sets.
var unitOffsets = []rules.Offset{rules.Left, rules.Right, rules.Up, rules.Down}

// scannable reports whether index idx may anchor rule registration along
// an axis of the given length. Axes long enough to have a true interior
// restrict the scan to it, so border-truncated adjacencies are never
// recorded; axes of length ≤ 2 have no interior at all and would
// otherwise contribute nothing, so every index qualifies there.
func scannable(idx, length int) bool {
	return length <= 2 || (idx >= 1 && idx <= length-2)
}

// Analyze scans a sample grid and derives the adjacency rule set and the
// empirical weight table.
//
// Weights count every occurrence of an id across the entire sample —
// including each candidate membership of an uncollapsed cell — divided by
// the total cell count. They are therefore normalized by sample area, not
// by the candidate subset a later sampling step sees.
//
// Rules are recorded from scannable cells only (see scannable): for each
// of the four unit offsets with an in-bounds neighbor, the rule
// (neighbor id, cell id, offset) is registered once, provided both
// endpoints are collapsed. Deriving twice from the same sample yields
// rule sets equal as sets.
//
// Returns ErrNilGrid on nil input.
// Complexity: O(W×H) time, O(R+N) memory.
func Analyze(sample *Grid) (*rules.RuleSet, []float64, error) {
	if sample == nil {
		return nil, nil, ErrNilGrid
	}

	counts := make([]int, sample.n)
	for y := 0; y < sample.h; y++ {
		for x := 0; x < sample.w; x++ {
			for _, id := range sample.cells[y][x].candidates {
				counts[id]++
			}
		}
	}
	weights := make([]float64, sample.n)
	area := float64(sample.w * sample.h)
	for id, c := range counts {
		weights[id] = float64(c) / area
	}

	rs := rules.NewRuleSet()
	for y := 0; y < sample.h; y++ {
		if !scannable(y, sample.h) {
			continue
		}
		for x := 0; x < sample.w; x++ {
			if !scannable(x, sample.w) {
				continue
			}
			id, err := sample.cells[y][x].ID()
			if err != nil {
				continue
			}
			for _, off := range unitOffsets {
				nx, ny := x+off.DX, y+off.DY
				if !sample.InBounds(nx, ny) {
					continue
				}
				nid, err := sample.cells[ny][nx].ID()
				if err != nil {
					continue
				}
				rs.Add(rules.Rule{Neighbor: nid, Subject: id, Off: off})
			}
		}
	}

	return rs, weights, nil
}
