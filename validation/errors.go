// SPDX-License-Identifier: MIT
// Package validation: sentinel error set (unified, consistent).
// Shape failures surface ndarray.ErrShapeMismatch and record-lookup failures
// surface structdict sentinels; this file adds only the comparator-owned
// conditions. All are matched via errors.Is.

package validation

import "errors"

var (
	// ErrNilStruct indicates a nil *structdict.StructDict argument.
	ErrNilStruct = errors.New("validation: nil struct record")

	// ErrStringMismatch indicates two string leaves that were expected to be
	// identical differ; string inequality has no deviation metric, so the
	// comparison fails instead of reporting a number.
	ErrStringMismatch = errors.New("validation: string fields differ")

	// ErrFieldKind indicates a compared field is not a comparable leaf pair:
	// a container, or a leaf of one kind in one record and another kind in
	// the other.
	ErrFieldKind = errors.New("validation: field kinds are not comparable")
)
