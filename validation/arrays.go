package validation

import (
	"fmt"
	"math"

	"github.com/Chibee/rt-cloud/ndarray"
)

// CompareArrays — elementwise relative deviation
//
// Description:
//
//	For every element pair (a, e) the deviation is |a−e| / |e|, so the
//	report reads as a fraction of the expected value. Two conventions
//	keep the report finite and meaningful at e == 0:
//	  • a == 0 && e == 0 → deviation 0 (exact agreement)
//	  • a != 0 && e == 0 → deviation |a−e| (absolute fallback)
//
// Precondition:
//
//	actual and expected must share a shape; a mismatch fails with
//	ndarray.ErrShapeMismatch.
//
// Complexity: O(len) time, O(1) extra memory.
func CompareArrays(actual, expected *ndarray.Array) (DeviationReport, error) {
	// Stage 1 (Validate): shapes must match exactly.
	if err := ndarray.ValidateSameShape(actual, expected); err != nil {
		return DeviationReport{}, fmt.Errorf("CompareArrays: %w", err)
	}

	// Stage 2 (Accumulate): single pass over the flat buffers.
	a, e := actual.Data(), expected.Data()
	var sum, max float64
	for i := range e {
		dev := relativeDeviation(a[i], e[i])
		sum += dev
		if dev > max {
			max = dev
		}
	}

	// Stage 3 (Finalize): mean over all elements (Len >= 1 by construction).
	return DeviationReport{Mean: sum / float64(len(e)), Max: max}, nil
}

// relativeDeviation computes one elementwise term of CompareArrays.
func relativeDeviation(a, e float64) float64 {
	diff := math.Abs(a - e)
	if e == 0 {
		if a == 0 {
			return 0
		}

		return diff
	}

	return diff / math.Abs(e)
}

// AreArraysClose reports whether actual deviates from expected within
// limits: Mean <= limits.Mean and Max <= limits.Max. Use DefaultLimits()
// and set Mean to bound only the mean deviation.
//
// Example:
//
//	lim := validation.DefaultLimits()
//	lim.Mean = 0.00667
//	ok, err := validation.AreArraysClose(got, want, lim)
func AreArraysClose(actual, expected *ndarray.Array, limits Limits) (bool, error) {
	rep, err := CompareArrays(actual, expected)
	if err != nil {
		return false, fmt.Errorf("AreArraysClose: %w", err)
	}

	return rep.Mean <= limits.Mean && rep.Max <= limits.Max, nil
}
