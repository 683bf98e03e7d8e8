package wave_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/wfc/wave"
)

//----------------------------------------------------------------------------//
// Grid construction and cell access
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects non-positive dimensions and
// symbol counts.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name    string
		w, h, n int
		err     error
	}{
		{"ZeroWidth", 0, 3, 2, wave.ErrBadDimensions},
		{"NegativeHeight", 3, -1, 2, wave.ErrBadDimensions},
		{"ZeroSymbols", 3, 3, 0, wave.ErrBadSymbolCount},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := wave.New(tc.w, tc.h, tc.n)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestNew_FullCandidates verifies every cell starts with the full id
// range, and a one-symbol grid is born collapsed.
func TestNew_FullCandidates(t *testing.T) {
	g, err := wave.New(2, 2, 3)
	assert.NoError(t, err)

	c, err := g.At(1, 1)
	assert.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, c.Candidates())
	assert.Equal(t, wave.Uncollapsed, g.State())

	single, err := wave.New(2, 2, 1)
	assert.NoError(t, err)
	assert.Equal(t, wave.Collapsed, single.State())
}

// TestGrid_CellAccess verifies At/SetCollapsed/SetCandidates bounds and
// range checks.
func TestGrid_CellAccess(t *testing.T) {
	g, _ := wave.New(3, 2, 2)

	_, err := g.At(3, 0)
	assert.ErrorIs(t, err, wave.ErrCellBounds)

	assert.ErrorIs(t, g.SetCollapsed(-1, 0, 0), wave.ErrCellBounds)
	assert.ErrorIs(t, g.SetCollapsed(0, 0, 2), wave.ErrSymbolRange)
	assert.ErrorIs(t, g.SetCandidates(0, 0, []int{0, 5}), wave.ErrSymbolRange)

	assert.NoError(t, g.SetCandidates(0, 0, []int{1, 0, 1}))
	c, _ := g.At(0, 0)
	assert.Equal(t, []int{1, 0}, c.Candidates(), "duplicates dropped, first occurrence wins")
}

// TestCell_ID verifies the fail-fast collapsed-id contract: size must be
// exactly 1.
func TestCell_ID(t *testing.T) {
	g, _ := wave.New(2, 1, 2)

	c, _ := g.At(0, 0)
	_, err := c.ID()
	assert.ErrorIs(t, err, wave.ErrUncertainCell, "uncertain cell must not be coerced")

	assert.NoError(t, g.SetCollapsed(0, 0, 1))
	c, _ = g.At(0, 0)
	id, err := c.ID()
	assert.NoError(t, err)
	assert.Equal(t, 1, id)
	assert.True(t, c.IsCollapsed())

	assert.NoError(t, g.SetCandidates(1, 0, nil))
	c, _ = g.At(1, 0)
	_, err = c.ID()
	assert.ErrorIs(t, err, wave.ErrUncertainCell)
	assert.True(t, c.IsContradicted())
}

//----------------------------------------------------------------------------//
// State machine classification
//----------------------------------------------------------------------------//

// TestGrid_State verifies the three-way classification and that an empty
// cell dominates: Contradicting beats Collapsed and Uncollapsed.
func TestGrid_State(t *testing.T) {
	g, _ := wave.New(2, 2, 2)
	assert.Equal(t, wave.Uncollapsed, g.State())

	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			assert.NoError(t, g.SetCollapsed(x, y, 0))
		}
	}
	assert.Equal(t, wave.Collapsed, g.State())

	assert.NoError(t, g.SetCandidates(1, 1, []int{}))
	assert.Equal(t, wave.Contradicting, g.State())
}

// TestGrid_Reset verifies Reset restores the full candidate range
// everywhere (seeds are the driver's responsibility).
func TestGrid_Reset(t *testing.T) {
	g, _ := wave.New(2, 2, 3)
	assert.NoError(t, g.SetCollapsed(0, 0, 2))
	assert.NoError(t, g.SetCandidates(1, 1, []int{}))

	g.Reset()
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			c, _ := g.At(x, y)
			assert.Equal(t, []int{0, 1, 2}, c.Candidates(), "cell (%d,%d)", x, y)
		}
	}
}

// TestGrid_IDs verifies export of a solved grid and rejection of an
// unsolved one.
func TestGrid_IDs(t *testing.T) {
	g, _ := wave.New(2, 1, 2)
	_, err := g.IDs()
	assert.ErrorIs(t, err, wave.ErrUncertainCell)

	assert.NoError(t, g.SetCollapsed(0, 0, 1))
	assert.NoError(t, g.SetCollapsed(1, 0, 0))
	ids, err := g.IDs()
	assert.NoError(t, err)
	assert.Equal(t, [][]int{{1, 0}}, ids)
}

// TestState_String covers the Stringer for diagnostics.
func TestState_String(t *testing.T) {
	assert.Equal(t, "Uncollapsed", wave.Uncollapsed.String())
	assert.Equal(t, "Collapsed", wave.Collapsed.String())
	assert.Equal(t, "Contradicting", wave.Contradicting.String())
	assert.False(t, errors.Is(wave.ErrNilGrid, wave.ErrNilRules), "distinct sentinels")
}
