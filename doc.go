// Package rtcloud bundles the numeric and filesystem validation utilities
// used to check replayed analytic runs against reference data.
//
// 🚀 What is rt-cloud (Go utilities)?
//
//	A small toolkit for answering one question: does this run's output
//	match the reference within tolerance?
//		• fileutil/    — locate the newest scan file by glob pattern
//		• ndarray/     — fixed-shape N-dimensional float64 arrays
//		• structdict/  — two-level structured records + YAML (de)serialization
//		• validation/  — deviation reports, record comparison, Pearson scoring
//
// ✨ Why this shape?
//
//   - Pure functions – every comparison is synchronous, single-threaded,
//     and computed fresh per call
//   - Sentinel errors – all failures match via errors.Is; absence of a
//     file match is the one documented non-error
//   - No daemons, no network – the only side effects are a directory
//     listing and a record-file read
//
// Quick example:
//
//	path, _ := fileutil.FindNewestFile("/data/scans", "subj1_2017*")
//	res, err := validation.CompareStructFiles(path, refPath, nil,
//	    structdict.Options{SubField: "sub"})
//	if err == nil && validation.IsMeanWithinThreshold(res, 0.01) {
//	    // run accepted
//	}
package rtcloud
