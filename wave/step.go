package wave

import (
	"math/rand"
	"sort"

	"github.com/katalvlaran/wfc/rules"
)

// collapseCell decides the cell at (x,y): intersect what every in-bounds
// neighbor still permits, then weighted-sample one survivor.
//
// For each offset the rule set knows, the relevant neighbor sits at
// (x,y) − off, because a rule keyed by off allows ids at the neighbor's
// position + off — i.e. the offset points from the neighbor toward the
// target. A neighbor whose rules grant nothing for that offset is skipped
// entirely: a missing rule contributes no constraint. Only when NO
// neighbor grants anything, or the intersection empties, does the cell
// commit to the empty set — the contradiction signal.
//
// Sampling is deliberately two-phase: survivors are ordered ascending by
// (weight, id), one uniform draw r is taken, the first survivor with
// weight strictly above r wins, and when none qualifies (weights are
// normalized by total sample area, so the draw often exceeds them all)
// the last, highest-weight survivor wins. Output distributions depend on
// this exact scan-then-fallback shape; a cumulative-distribution sampler
// is not a drop-in replacement.
func collapseCell(g *Grid, rs *rules.RuleSet, weights []float64, x, y int, rng *rand.Rand) {
	var survivors []int
	first := true
	for _, off := range rs.Offsets() {
		nx, ny := x-off.DX, y-off.DY
		if !g.InBounds(nx, ny) {
			continue
		}
		allowed := rs.AllowedAny(g.cells[ny][nx].candidates, off)
		if len(allowed) == 0 {
			continue
		}
		if first {
			survivors = allowed
			first = false
			continue
		}
		survivors = intersect(survivors, allowed)
	}
	// The cell's own set is full until committed in the base loop, so this
	// intersection only bites when worklist propagation has narrowed it.
	if !first {
		survivors = intersect(survivors, g.cells[y][x].candidates)
	}
	if len(survivors) == 0 {
		g.cells[y][x] = Cell{candidates: []int{}}
		return
	}

	sort.Slice(survivors, func(i, j int) bool {
		wi, wj := weights[survivors[i]], weights[survivors[j]]
		if wi != wj {
			return wi < wj
		}

		return survivors[i] < survivors[j]
	})

	r := rng.Float64()
	chosen := survivors[len(survivors)-1]
	for _, id := range survivors {
		if weights[id] > r {
			chosen = id
			break
		}
	}
	g.cells[y][x] = Cell{candidates: []int{chosen}}
}

// intersect keeps the elements of a that also occur in b, preserving a's
// order. Complexity: O(len(a)+len(b)).
func intersect(a, b []int) []int {
	inB := make(map[int]struct{}, len(b))
	for _, id := range b {
		inB[id] = struct{}{}
	}
	out := a[:0]
	for _, id := range a {
		if _, ok := inB[id]; ok {
			out = append(out, id)
		}
	}

	return out
}
