// Package validation: result and option types.
package validation

import "math"

// DeviationReport summarizes elementwise relative deviation between an
// actual and an expected array of equal shape.
//
// Invariant: both fields are >= 0 by construction (deviations are absolute
// ratios); a zero report means exact agreement.
type DeviationReport struct {
	// Mean is the arithmetic mean of all elementwise deviations.
	Mean float64

	// Max is the single largest elementwise deviation.
	Max float64
}

// ComparisonResult maps a field name to its DeviationReport. Every
// comparison call builds a fresh map; results are never mutated afterward.
type ComparisonResult map[string]DeviationReport

// Limits bounds a DeviationReport for the AreArraysClose predicate.
//
// Fields:
//   - Mean — upper bound on DeviationReport.Mean (required).
//   - Max  — upper bound on DeviationReport.Max; +Inf disables the bound.
type Limits struct {
	Mean float64
	Max  float64
}

// DefaultLimits returns Limits with the max bound disabled:
//   - Mean: 0 (callers set their tolerance)
//   - Max:  +Inf (unbounded)
func DefaultLimits() Limits {
	return Limits{Mean: 0, Max: math.Inf(1)}
}
