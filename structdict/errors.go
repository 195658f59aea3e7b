// SPDX-License-Identifier: MIT
// Package structdict: sentinel error set (unified, consistent).
// All operations return these sentinels (possibly wrapped with context);
// tests and callers match them via errors.Is. Nothing here panics.

package structdict

import "errors"

var (
	// ErrFieldNotFound indicates a requested field is absent from both the
	// top level and the designated sub-record.
	ErrFieldNotFound = errors.New("structdict: field not found")

	// ErrAmbiguousField indicates a field name exists both at the top level
	// and inside the designated sub-record, so flattening cannot pick one.
	ErrAmbiguousField = errors.New("structdict: ambiguous field name in flattening")

	// ErrBadValue indicates a value outside the closed field-value set
	// (numeric array, string, one nested sub-record level).
	ErrBadValue = errors.New("structdict: unsupported field value")

	// ErrLoad indicates a struct file could not be read or decoded.
	// It wraps the underlying cause and is propagated unchanged by callers.
	ErrLoad = errors.New("structdict: cannot load struct file")
)
