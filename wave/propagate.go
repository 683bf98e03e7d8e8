package wave

import "github.com/katalvlaran/wfc/rules"

// propagate narrows candidate sets outward from (x,y) with an explicit
// FIFO worklist until the queue drains — an AC-3 style arc-consistency
// sweep. For each offset off the rule set knows, the cell at c + off may
// only hold ids some candidate of c still allows; a changed neighbor
// re-enqueues. An in-queue marker prevents duplicate entries, so the
// sweep terminates on cyclic neighbor graphs. An offset with no matching
// rules contributes no constraint and never wipes a neighbor.
//
// The sweep stops early once any cell empties: the grid is Contradicting
// and the driver will restart it anyway.
// Complexity: O(W×H×D×C) worst case per call.
func propagate(g *Grid, rs *rules.RuleSet, x, y int) {
	queued := make([]bool, g.w*g.h)
	queue := [][2]int{{x, y}}
	queued[y*g.w+x] = true

	offs := rs.Offsets()
	for len(queue) > 0 {
		cx, cy := queue[0][0], queue[0][1]
		queue = queue[1:]
		queued[cy*g.w+cx] = false

		for _, off := range offs {
			nx, ny := cx+off.DX, cy+off.DY
			if !g.InBounds(nx, ny) {
				continue
			}
			allowed := rs.AllowedAny(g.cells[cy][cx].candidates, off)
			if len(allowed) == 0 {
				continue
			}
			narrowed := intersect(g.cells[ny][nx].Candidates(), allowed)
			if len(narrowed) == len(g.cells[ny][nx].candidates) {
				continue
			}
			g.cells[ny][nx] = Cell{candidates: narrowed}
			if len(narrowed) == 0 {
				return
			}
			if !queued[ny*g.w+nx] {
				queued[ny*g.w+nx] = true
				queue = append(queue, [2]int{nx, ny})
			}
		}
	}
}
