package wave_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/wfc/wave"
)

// TestEntropy_Boundaries verifies that collapsed cells and
// single-candidate cells both score exactly 0 — the boundary the lazy
// finalization of the selector must not disturb.
func TestEntropy_Boundaries(t *testing.T) {
	weights := []float64{0.5, 0.25, 0.25}
	g, _ := wave.New(2, 1, 3)

	assert.NoError(t, g.SetCollapsed(0, 0, 1))
	c, _ := g.At(0, 0)
	assert.Equal(t, 0.0, wave.Entropy(c, weights), "collapsed cell entropy is exactly 0")

	assert.NoError(t, g.SetCandidates(1, 0, []int{2}))
	c, _ = g.At(1, 0)
	assert.Equal(t, 0.0, wave.Entropy(c, weights), "single-candidate cell entropy is exactly 0")
}

// TestEntropy_Uniform verifies the closed form for two equal weights:
// log2(2w) − (2·w·log2 w)/(2w) = 1 bit for any w, here w=0.5.
func TestEntropy_Uniform(t *testing.T) {
	g, _ := wave.New(1, 1, 2)
	c, _ := g.At(0, 0)

	assert.InDelta(t, 1.0, wave.Entropy(c, []float64{0.5, 0.5}), 1e-12)
}

// TestEntropy_SkewLowersUncertainty verifies a skewed candidate set
// scores below the uniform one, so more-constrained cells are preferred.
func TestEntropy_SkewLowersUncertainty(t *testing.T) {
	g, _ := wave.New(1, 1, 2)
	c, _ := g.At(0, 0)

	uniform := wave.Entropy(c, []float64{0.5, 0.5})
	skewed := wave.Entropy(c, []float64{0.9, 0.1})
	assert.Less(t, skewed, uniform)
	assert.Greater(t, skewed, 0.0)
}

// TestMinEntropyCell_PicksMostConstrained verifies the scan selects the
// lowest-entropy undecided cell and skips decided ones.
func TestMinEntropyCell_PicksMostConstrained(t *testing.T) {
	weights := []float64{0.4, 0.3, 0.3}
	g, _ := wave.New(3, 1, 3)

	assert.NoError(t, g.SetCollapsed(0, 0, 0))             // decided: excluded
	assert.NoError(t, g.SetCandidates(1, 0, []int{1, 2}))  // 2 candidates
	// (2,0) keeps all 3 candidates: strictly higher entropy.

	x, y, ok := wave.MinEntropyCell(g, weights)
	assert.True(t, ok)
	assert.Equal(t, [2]int{1, 0}, [2]int{x, y})
}

// TestMinEntropyCell_RowMajorTieBreak verifies the explicit tie-break:
// equal entropies resolve to the first cell in row-major order.
func TestMinEntropyCell_RowMajorTieBreak(t *testing.T) {
	weights := []float64{0.5, 0.5}
	g, _ := wave.New(2, 2, 2)

	x, y, ok := wave.MinEntropyCell(g, weights)
	assert.True(t, ok)
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)
}

// TestMinEntropyCell_NoneLeft verifies ok=false once every cell is
// decided or contradicted.
func TestMinEntropyCell_NoneLeft(t *testing.T) {
	weights := []float64{1.0}
	g, _ := wave.New(2, 1, 1) // born collapsed

	_, _, ok := wave.MinEntropyCell(g, weights)
	assert.False(t, ok)
}
