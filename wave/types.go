// Package wave defines the Grid/Cell data model and sentinel errors for
// the Wave Function Collapse solver.
package wave

import "errors"

// Sentinel errors for grid construction and cell access.
var (
	// ErrBadDimensions indicates a non-positive grid width or height.
	ErrBadDimensions = errors.New("wave: grid dimensions must be positive")
	// ErrBadSymbolCount indicates a non-positive number of symbol ids.
	ErrBadSymbolCount = errors.New("wave: symbol count must be positive")
	// ErrCellBounds indicates coordinates outside the grid.
	ErrCellBounds = errors.New("wave: cell coordinates out of bounds")
	// ErrSymbolRange indicates a symbol id outside 0..Symbols()-1.
	ErrSymbolRange = errors.New("wave: symbol id out of range")
	// ErrUncertainCell indicates an id read on a cell whose candidate set
	// does not have exactly one member. Contract violation; fail fast.
	ErrUncertainCell = errors.New("wave: cell is not collapsed to exactly one id")
)

// State classifies a Grid in the solver state machine.
type State int

const (
	// Uncollapsed: at least one cell still has two or more candidates
	// (and none has zero).
	Uncollapsed State = iota
	// Collapsed: every cell has exactly one candidate. Terminal.
	Collapsed
	// Contradicting: at least one cell has no candidates left.
	Contradicting
)

// String implements fmt.Stringer for diagnostics.
func (s State) String() string {
	switch s {
	case Collapsed:
		return "Collapsed"
	case Contradicting:
		return "Contradicting"
	default:
		return "Uncollapsed"
	}
}

// Cell is one grid position: the set of symbol ids it may still become.
// No duplicates; order carries no meaning but stays deterministic.
// Size 1 is collapsed; size 0 is the contradiction signal.
type Cell struct {
	candidates []int
}

// Candidates returns a copy of the cell's remaining ids.
func (c Cell) Candidates() []int {
	out := make([]int, len(c.candidates))
	copy(out, c.candidates)

	return out
}

// Size reports the number of remaining candidates.
func (c Cell) Size() int { return len(c.candidates) }

// IsCollapsed reports whether exactly one candidate remains.
func (c Cell) IsCollapsed() bool { return len(c.candidates) == 1 }

// IsContradicted reports whether no candidate remains.
func (c Cell) IsContradicted() bool { return len(c.candidates) == 0 }

// ID returns the single remaining candidate.
// Returns ErrUncertainCell unless the cell is collapsed (size exactly 1).
func (c Cell) ID() (int, error) {
	if len(c.candidates) != 1 {
		return 0, ErrUncertainCell
	}

	return c.candidates[0], nil
}

// Grid is the mutable output lattice: a fixed width×height matrix of
// Cells over a symbol space 0..Symbols()-1. The Grid exclusively owns its
// cells; neighbor lookups go by coordinate, never by reference.
// Not safe for concurrent mutation — the solver is single-threaded.
type Grid struct {
	w, h  int
	n     int // number of symbol ids
	cells [][]Cell // cells[y][x]
}

// New constructs a Grid with every cell holding the full candidate range
// 0..n-1. A one-symbol grid is therefore born collapsed.
// Returns ErrBadDimensions or ErrBadSymbolCount on non-positive input.
// Complexity: O(W×H×n).
func New(w, h, n int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrBadDimensions
	}
	if n <= 0 {
		return nil, ErrBadSymbolCount
	}
	g := &Grid{w: w, h: h, n: n}
	g.Reset()

	return g, nil
}

// Width reports the number of columns.
func (g *Grid) Width() int { return g.w }

// Height reports the number of rows.
func (g *Grid) Height() int { return g.h }

// Symbols reports the size of the id space.
func (g *Grid) Symbols() int { return g.n }

// InBounds reports whether (x,y) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// At returns the cell at (x,y).
// Returns ErrCellBounds outside the grid.
func (g *Grid) At(x, y int) (Cell, error) {
	if !g.InBounds(x, y) {
		return Cell{}, ErrCellBounds
	}

	return g.cells[y][x], nil
}

// SetCandidates replaces the candidate set at (x,y). The input is copied;
// duplicates are dropped, first occurrence wins. An empty set is legal —
// it is the contradiction signal.
// Returns ErrCellBounds or ErrSymbolRange.
func (g *Grid) SetCandidates(x, y int, ids []int) error {
	if !g.InBounds(x, y) {
		return ErrCellBounds
	}
	set := make([]int, 0, len(ids))
	seen := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		if id < 0 || id >= g.n {
			return ErrSymbolRange
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		set = append(set, id)
	}
	g.cells[y][x] = Cell{candidates: set}

	return nil
}

// SetCollapsed pins the cell at (x,y) to a single id.
// Returns ErrCellBounds or ErrSymbolRange.
func (g *Grid) SetCollapsed(x, y, id int) error {
	if !g.InBounds(x, y) {
		return ErrCellBounds
	}
	if id < 0 || id >= g.n {
		return ErrSymbolRange
	}
	g.cells[y][x] = Cell{candidates: []int{id}}

	return nil
}

// Reset restores every cell to the full candidate range 0..n-1.
// The caller is responsible for re-applying any seed cells; Driver does.
// Complexity: O(W×H×n).
func (g *Grid) Reset() {
	g.cells = make([][]Cell, g.h)
	for y := 0; y < g.h; y++ {
		g.cells[y] = make([]Cell, g.w)
		for x := 0; x < g.w; x++ {
			ids := make([]int, g.n)
			for i := range ids {
				ids[i] = i
			}
			g.cells[y][x] = Cell{candidates: ids}
		}
	}
}

// State classifies the grid: any empty cell wins as Contradicting, then
// all-size-1 as Collapsed, otherwise Uncollapsed.
// Complexity: O(W×H).
func (g *Grid) State() State {
	allOne := true
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			switch len(g.cells[y][x].candidates) {
			case 0:
				return Contradicting
			case 1:
				// still consistent with Collapsed
			default:
				allOne = false
			}
		}
	}
	if allOne {
		return Collapsed
	}

	return Uncollapsed
}

// IDs exports a fully collapsed grid as ids[y][x].
// Returns ErrUncertainCell if any cell is not size 1.
// Complexity: O(W×H).
func (g *Grid) IDs() ([][]int, error) {
	out := make([][]int, g.h)
	for y := 0; y < g.h; y++ {
		out[y] = make([]int, g.w)
		for x := 0; x < g.w; x++ {
			id, err := g.cells[y][x].ID()
			if err != nil {
				return nil, err
			}
			out[y][x] = id
		}
	}

	return out, nil
}
