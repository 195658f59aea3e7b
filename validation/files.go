package validation

import (
	"fmt"

	"github.com/Chibee/rt-cloud/structdict"
)

// CompareStructFiles loads two serialized records and delegates to
// CompareStructs. pathA is the actual record, pathB the expected one;
// fields and opts behave exactly as in CompareStructs and
// structdict.LoadFile.
//
// A missing or malformed file fails with structdict.ErrLoad, propagated
// unchanged; nothing is recovered or retried.
//
// Comparing a file against itself yields all-zero deviations:
//
//	res, _ := validation.CompareStructFiles(p, p, nil, opts)
//	validation.IsMeanWithinThreshold(res, 0) // true
func CompareStructFiles(pathA, pathB string, fields []string, opts structdict.Options) (ComparisonResult, error) {
	actual, err := structdict.LoadFile(pathA, opts)
	if err != nil {
		return nil, fmt.Errorf("CompareStructFiles: %w", err)
	}
	expected, err := structdict.LoadFile(pathB, opts)
	if err != nil {
		return nil, fmt.Errorf("CompareStructFiles: %w", err)
	}

	return CompareStructs(actual, expected, fields)
}
