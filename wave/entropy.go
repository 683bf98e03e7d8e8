package wave

import "math"

// Entropy computes the weighted Shannon entropy of a cell over its
// candidate ids i with weights w_i:
//
//	log2(Σ w_i) − (Σ w_i·log2(w_i)) / (Σ w_i)
//
// which equals the standard entropy of the normalized distribution
// p_i = w_i/Σw, so the result is always ≥ 0 and exactly 0 for a cell
// with a single candidate (collapsed cells score 0 by definition).
// Zero-weight candidates contribute nothing (lim x→0 of x·log2 x = 0).
// Complexity: O(C) over the candidate count.
func Entropy(c Cell, weights []float64) float64 {
	if len(c.candidates) <= 1 {
		return 0
	}
	var sum, logSum float64
	for _, id := range c.candidates {
		w := weights[id]
		if w <= 0 {
			continue
		}
		sum += w
		logSum += w * math.Log2(w)
	}
	if sum <= 0 {
		return 0
	}

	return math.Log2(sum) - logSum/sum
}

// MinEntropyCell scans the grid in row-major order and returns the
// coordinates of the lowest-entropy undecided cell. Strict less-than
// keeps the first-encountered minimum — an explicit, reproducible
// tie-break. Cells of size ≤ 1 (collapsed or contradicted) are excluded;
// ok is false when no undecided cell remains.
// Complexity: O(W×H×C).
func MinEntropyCell(g *Grid, weights []float64) (x, y int, ok bool) {
	minEntropy := math.MaxFloat64
	for cy := 0; cy < g.h; cy++ {
		for cx := 0; cx < g.w; cx++ {
			if len(g.cells[cy][cx].candidates) <= 1 {
				continue
			}
			if e := Entropy(g.cells[cy][cx], weights); e < minEntropy {
				minEntropy = e
				x, y, ok = cx, cy, true
			}
		}
	}

	return x, y, ok
}
