package symbols

import "errors"

// Sentinel errors for symbol table operations.
var (
	// ErrUnknownID indicates the requested id was never assigned by Intern.
	ErrUnknownID = errors.New("symbols: unknown symbol id")
)

// Table interns raw symbols of type T into dense ids 0..Len()-1,
// first-seen order, and counts one occurrence per Intern call.
//
// A Table built with New uses == equality and a map index; a Table built
// with NewFunc uses the supplied predicate and a linear first-seen scan
// (required for symbol kinds without a meaningful ==, e.g. tile images).
type Table[T any] struct {
	eq     func(a, b T) bool // nil when index is in use
	index  map[any]int       // value → id, comparable fast path
	syms   []T               // id → symbol, insertion order
	counts []int             // id → occurrences
	total  int               // sum of counts
}

// New returns a Table for comparable symbol kinds, deduplicating by ==.
// Complexity: O(1) per construction.
func New[T comparable]() *Table[T] {
	return &Table[T]{index: make(map[any]int)}
}

// NewFunc returns a Table deduplicating by the supplied predicate.
// Panics on nil eq to surface programmer error early; the lookup
// degrades to a linear scan over distinct symbols.
func NewFunc[T any](eq func(a, b T) bool) *Table[T] {
	if eq == nil {
		panic("symbols: NewFunc(nil)")
	}
	return &Table[T]{eq: eq}
}

// Intern returns the dense id of v, assigning the next free id on first
// sight, and counts one occurrence. Interning every cell of a sample once
// makes Count reflect per-cell frequency exactly.
// Complexity: O(1) expected (map) or O(N·cost(eq)) (predicate).
func (t *Table[T]) Intern(v T) int {
	t.total++
	if t.index != nil {
		if id, ok := t.index[v]; ok {
			t.counts[id]++
			return id
		}
		id := len(t.syms)
		t.index[v] = id
		t.syms = append(t.syms, v)
		t.counts = append(t.counts, 1)

		return id
	}
	for id := range t.syms {
		if t.eq(t.syms[id], v) {
			t.counts[id]++
			return id
		}
	}
	t.syms = append(t.syms, v)
	t.counts = append(t.counts, 1)

	return len(t.syms) - 1
}

// Symbol returns the raw symbol for id.
// Returns ErrUnknownID when id is outside 0..Len()-1.
func (t *Table[T]) Symbol(id int) (T, error) {
	if id < 0 || id >= len(t.syms) {
		var zero T
		return zero, ErrUnknownID
	}

	return t.syms[id], nil
}

// Len reports the number of distinct symbols interned so far.
func (t *Table[T]) Len() int { return len(t.syms) }

// Count reports how many times the symbol with the given id was interned;
// 0 for ids never assigned.
func (t *Table[T]) Count(id int) int {
	if id < 0 || id >= len(t.counts) {
		return 0
	}

	return t.counts[id]
}

// Total reports the total number of Intern calls (occurrences, not
// distinct symbols).
func (t *Table[T]) Total() int { return t.total }

// Weights returns the empirical relative frequency per id:
// Count(id) / Total(). Nil when nothing was interned.
// Every entry is > 0 by construction (an id exists only if seen).
// Complexity: O(N).
func (t *Table[T]) Weights() []float64 {
	if t.total == 0 {
		return nil
	}
	w := make([]float64, len(t.counts))
	for id, c := range t.counts {
		w[id] = float64(c) / float64(t.total)
	}

	return w
}
