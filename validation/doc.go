// Package validation compares numeric results against references:
// elementwise relative deviation over arrays, field-by-field deviation over
// structured records (in memory or loaded from disk), and mean Pearson
// correlation across matched matrix columns.
//
// 🚀 What is validation?
//
//	The acceptance layer for replayed analytic runs. A replay is "good"
//	when its outputs sit within a relative tolerance of the reference
//	outputs, field by field:
//	  • CompareArrays / AreArraysClose — one numeric array vs another
//	  • CompareStructs / IsMeanWithinThreshold — whole records at once
//	  • CompareStructFiles — the same, straight from serialized files
//	  • PearsonsMeanCorr — column-wise linear agreement of two matrices
//
// ✨ Guarantees:
//   - deviations are relative (|actual−expected|/|expected|), so reports
//     read as fractions: 0.01 means "within 1%"
//   - every result is computed fresh per call and never mutated after
//   - failures are immediate sentinel errors; nothing is retried or
//     silently swallowed
//
// ⚙️ Usage:
//
//	rep, err := validation.CompareArrays(got, want)
//	ok := rep.Mean <= 0.00667 // or AreArraysClose with Limits
//
//	res, err := validation.CompareStructFiles(runA, runB, nil,
//	    structdict.Options{SubField: "sub"})
//	pass := validation.IsMeanWithinThreshold(res, 0.01)
package validation
