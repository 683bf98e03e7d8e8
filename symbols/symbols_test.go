package symbols_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/wfc/symbols"
)

// TestTable_FirstSeenOrder verifies dense id assignment in first-seen order
// with deduplication by ==.
func TestTable_FirstSeenOrder(t *testing.T) {
	tab := symbols.New[string]()

	assert.Equal(t, 0, tab.Intern("sea"))
	assert.Equal(t, 1, tab.Intern("coast"))
	assert.Equal(t, 0, tab.Intern("sea"), "re-interning must return the original id")
	assert.Equal(t, 2, tab.Intern("land"))

	assert.Equal(t, 3, tab.Len())
	assert.Equal(t, 4, tab.Total())
}

// TestTable_SymbolLookup verifies Symbol round-trips and rejects unknown ids.
func TestTable_SymbolLookup(t *testing.T) {
	tab := symbols.New[rune]()
	tab.Intern('A')
	tab.Intern('B')

	s, err := tab.Symbol(1)
	assert.NoError(t, err)
	assert.Equal(t, 'B', s)

	_, err = tab.Symbol(2)
	assert.ErrorIs(t, err, symbols.ErrUnknownID)
	_, err = tab.Symbol(-1)
	assert.ErrorIs(t, err, symbols.ErrUnknownID)
}

// TestTable_Weights verifies counts and Total-normalized weights:
// interning A,B,A gives w_A=2/3, w_B=1/3.
func TestTable_Weights(t *testing.T) {
	tab := symbols.New[string]()
	tab.Intern("A")
	tab.Intern("B")
	tab.Intern("A")

	assert.Equal(t, 2, tab.Count(0))
	assert.Equal(t, 1, tab.Count(1))
	assert.Equal(t, 0, tab.Count(7), "unassigned id counts zero")

	w := tab.Weights()
	assert.InDelta(t, 2.0/3.0, w[0], 1e-12)
	assert.InDelta(t, 1.0/3.0, w[1], 1e-12)

	// Invariant: every weight positive, at least one > 0.
	for id, wi := range w {
		assert.Greater(t, wi, 0.0, "weight of id %d", id)
	}
}

// TestTable_EmptyWeights verifies Weights is nil before any Intern.
func TestTable_EmptyWeights(t *testing.T) {
	tab := symbols.New[int]()
	assert.Nil(t, tab.Weights())
	assert.Equal(t, 0, tab.Len())
}

// TestTable_PredicateEquality verifies NewFunc dedup via a custom
// predicate (equal-length strings) and its linear first-seen scan.
func TestTable_PredicateEquality(t *testing.T) {
	tab := symbols.NewFunc(func(a, b string) bool { return len(a) == len(b) })

	assert.Equal(t, 0, tab.Intern("aa"))
	assert.Equal(t, 1, tab.Intern("xyz"))
	assert.Equal(t, 0, tab.Intern("bb"), "same length dedups to first-seen id")
	assert.Equal(t, 2, tab.Len(), "two distinct length classes")

	assert.Panics(t, func() { symbols.NewFunc[string](nil) }, "nil predicate must panic")
}
