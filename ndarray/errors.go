// SPDX-License-Identifier: MIT
// Package ndarray: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the ndarray
// package. All operations MUST return these sentinels and tests MUST check them
// via errors.Is. No operation panics on user-triggered error conditions.

package ndarray

import "errors"

// Every message is prefixed with "ndarray: ..." for consistency and to allow
// easy grepping across logs. When context is essential, call sites wrap with
// fmt.Errorf("ctx: %w", ErrX) — callers still match via errors.Is.

var (
	// ErrBadShape is returned when a requested shape is invalid (any dim <= 0)
	// or when the provided data length does not match the shape's volume.
	ErrBadShape = errors.New("ndarray: invalid shape")

	// ErrOutOfRange indicates that an index is outside valid bounds, or that
	// the number of indices does not match the array rank.
	ErrOutOfRange = errors.New("ndarray: index out of range")

	// ErrShapeMismatch indicates two arrays with incompatible shapes were
	// combined, e.g. elementwise comparison of a 2×3 with a 3×2.
	ErrShapeMismatch = errors.New("ndarray: shape mismatch")

	// ErrNilArray indicates that a nil *Array (receiver or argument) was used.
	ErrNilArray = errors.New("ndarray: nil array")

	// ErrNotMatrix signals that a rank-2 array was required but the input
	// has a different rank (Rows/Cols/Column helpers).
	ErrNotMatrix = errors.New("ndarray: array is not rank-2")
)
