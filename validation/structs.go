package validation

import (
	"fmt"

	"github.com/Chibee/rt-cloud/structdict"
)

// CompareStructs — field-by-field record comparison
//
// Description:
//
//	Applies CompareArrays to every compared numeric leaf of two records
//	and collects the per-field reports. The compared field set is:
//	  • fields == nil → the union of expected's leaf fields, with the
//	    designated sub-record flattened one level (an ambiguous name
//	    fails with structdict.ErrAmbiguousField)
//	  • fields given  → exactly those names; a name missing from either
//	    record fails with structdict.ErrFieldNotFound
//
// String leaves carry no deviation metric: equal strings are checked and
// skipped from the numeric result, unequal strings fail with
// ErrStringMismatch. A field that is not a matching leaf pair (container,
// or string-vs-array) fails with ErrFieldKind.
//
// Complexity: O(total elements compared).
func CompareStructs(actual, expected *structdict.StructDict, fields []string) (ComparisonResult, error) {
	// Stage 1 (Validate): both records must be present.
	if actual == nil || expected == nil {
		return nil, fmt.Errorf("CompareStructs: %w", ErrNilStruct)
	}

	// Stage 2 (Resolve field set): flatten expected when no subset given.
	if fields == nil {
		var err error
		if fields, err = expected.LeafFields(); err != nil {
			return nil, fmt.Errorf("CompareStructs: %w", err)
		}
	}

	// Stage 3 (Compare): one report per numeric leaf, strings checked exact.
	result := make(ComparisonResult, len(fields))
	for _, name := range fields {
		ev, err := expected.Get(name)
		if err != nil {
			return nil, fmt.Errorf("CompareStructs: expected record: %w", err)
		}
		av, err := actual.Get(name)
		if err != nil {
			return nil, fmt.Errorf("CompareStructs: actual record: %w", err)
		}

		switch want := ev.(type) {
		case structdict.ArrayValue:
			got, ok := av.(structdict.ArrayValue)
			if !ok {
				return nil, fieldKindError(name)
			}
			rep, err := CompareArrays(got.Arr, want.Arr)
			if err != nil {
				return nil, fmt.Errorf("CompareStructs: field %q: %w", name, err)
			}
			result[name] = rep
		case structdict.StringValue:
			got, ok := av.(structdict.StringValue)
			if !ok {
				return nil, fieldKindError(name)
			}
			if got != want {
				return nil, fmt.Errorf("CompareStructs: field %q: %w", name, ErrStringMismatch)
			}
			// Equal strings are exact by definition; no numeric report.
		default:
			return nil, fieldKindError(name)
		}
	}

	return result, nil
}

func fieldKindError(name string) error {
	return fmt.Errorf("CompareStructs: field %q: %w", name, ErrFieldKind)
}

// IsMeanWithinThreshold reports whether every field's mean deviation in
// result is <= limit. An empty result passes trivially.
func IsMeanWithinThreshold(result ComparisonResult, limit float64) bool {
	for _, rep := range result {
		if rep.Mean > limit {
			return false
		}
	}

	return true
}
