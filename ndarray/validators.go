// SPDX-License-Identifier: MIT
// Package ndarray: canonical validation checks.
// Centralizing validators keeps the comparator packages free of ad hoc guard
// logic: they call these and wrap the returned sentinel at the boundary.

package ndarray

import "fmt"

// validatorErrorf wraps an underlying sentinel with the validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the array reference is non-nil.
// Returns ErrNilArray if a == nil. Complexity: O(1).
func ValidateNotNil(a *Array) error {
	if a == nil {
		return validatorErrorf("ValidateNotNil", ErrNilArray)
	}

	return nil
}

// ValidateSameShape ensures arrays a and b are non-nil and share a shape.
// Returns ErrNilArray or ErrShapeMismatch. Complexity: O(rank).
func ValidateSameShape(a, b *Array) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if !a.SameShape(b) {
		return validatorErrorf("ValidateSameShape", ErrShapeMismatch)
	}

	return nil
}

// ValidateMatrix ensures a is a non-nil rank-2 array.
// Returns ErrNilArray or ErrNotMatrix. Complexity: O(1).
func ValidateMatrix(a *Array) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if a.Rank() != 2 {
		return validatorErrorf("ValidateMatrix", ErrNotMatrix)
	}

	return nil
}
