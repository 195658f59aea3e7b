package validation

import (
	"fmt"
	"math"

	"github.com/Chibee/rt-cloud/ndarray"
)

// PearsonsMeanCorr — mean column-wise Pearson correlation
//
// Description:
//
//	Both inputs are rank-2 arrays of identical shape; each column of a is
//	scored against the corresponding column of b with the standard
//	product-moment coefficient, and the result is the arithmetic mean of
//	the per-column coefficients.
//
// Invalid-column policy:
//
//	A column is invalid when EVERY value of that column is NaN in either
//	matrix (the producers pad missing channels that way). Invalid columns
//	are excluded from the mean entirely — they are not scored as zero.
//	A column that is only partially NaN still participates; its NaN values
//	propagate into the coefficient per IEEE semantics.
//
// Degenerate cases (documented, deliberate):
//   - all columns invalid → NaN (there is no defined mean)
//   - a valid column with zero variance → NaN coefficient, which
//     propagates NaN into the mean
//
// Errors:
//   - ndarray.ErrNotMatrix      — either input is not rank-2.
//   - ndarray.ErrShapeMismatch  — shapes differ.
//
// Complexity: O(rows*cols) time, O(rows) extra memory.
func PearsonsMeanCorr(a, b *ndarray.Array) (float64, error) {
	// Stage 1 (Validate): rank-2 inputs of one shape.
	if err := ndarray.ValidateMatrix(a); err != nil {
		return 0, fmt.Errorf("PearsonsMeanCorr: %w", err)
	}
	if err := ndarray.ValidateMatrix(b); err != nil {
		return 0, fmt.Errorf("PearsonsMeanCorr: %w", err)
	}
	if err := ndarray.ValidateSameShape(a, b); err != nil {
		return 0, fmt.Errorf("PearsonsMeanCorr: %w", err)
	}

	// Stage 2 (Score): one coefficient per valid column, fixed j order.
	cols, err := a.Cols()
	if err != nil {
		return 0, fmt.Errorf("PearsonsMeanCorr: %w", err)
	}
	var sum float64
	valid := 0
	for j := 0; j < cols; j++ {
		colA, err := a.Column(j)
		if err != nil {
			return 0, fmt.Errorf("PearsonsMeanCorr: %w", err)
		}
		colB, err := b.Column(j)
		if err != nil {
			return 0, fmt.Errorf("PearsonsMeanCorr: %w", err)
		}
		if allNaN(colA) || allNaN(colB) {
			continue // invalid column: excluded, not zeroed
		}
		sum += pearson(colA, colB)
		valid++
	}

	// Stage 3 (Finalize): mean over valid columns; none valid → NaN.
	if valid == 0 {
		return math.NaN(), nil
	}

	return sum / float64(valid), nil
}

// allNaN reports whether every element of col is NaN.
func allNaN(col []float64) bool {
	for _, v := range col {
		if !math.IsNaN(v) {
			return false
		}
	}

	return true
}

// pearson computes the product-moment coefficient of two equal-length
// sequences: cov(x,y) / (std(x)*std(y)). Zero variance in either input
// yields NaN (0/0), which the caller propagates by design.
func pearson(x, y []float64) float64 {
	n := float64(len(x))

	// Means first, deterministic single passes.
	var mx, my float64
	for i := range x {
		mx += x[i]
		my += y[i]
	}
	mx /= n
	my /= n

	// Centered cross- and self-products.
	var cov, vx, vy float64
	for i := range x {
		dx, dy := x[i]-mx, y[i]-my
		cov += dx * dy
		vx += dx * dx
		vy += dy * dy
	}

	return cov / math.Sqrt(vx*vy)
}
