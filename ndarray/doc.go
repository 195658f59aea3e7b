// Package ndarray provides a fixed-shape, N-dimensional float64 array,
// the numeric container shared by the validation comparators.
//
// 🚀 What is ndarray?
//
//	A minimal dense array: a shape plus a flat row-major buffer.
//	It exists so comparisons and correlation scoring can work over
//	scalars, vectors and volumes with one type and one shape check:
//	  • Scalar(6.0)                      — rank-0 leaf values
//	  • FromSlice(data, 5)               — vectors
//	  • FromRows(rows)                   — 2-D matrices (correlation input)
//	  • New(40, 50, 60)                  — arbitrary-rank volumes
//
// ✨ Key properties:
//   - row-major flat storage, cache friendly, no per-element boxing
//   - shape is fixed at construction; no reshape, no broadcasting
//   - all user-triggered failures return sentinel errors (errors.Is),
//     never panic
//
// ⚙️ Usage:
//
//	a, err := ndarray.FromSlice([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
//	v, err := a.At(1, 2)      // 6
//	col, err := a.Column(0)   // [1 4]
//
// Performance: At/Set are O(rank); whole-array walks use Data() which is O(1).
package ndarray
