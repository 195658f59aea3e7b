// Package fileutil locates files on disk by glob pattern.
//
// 🚀 What is fileutil?
//
//	One job: given a directory and a pattern, find the newest matching
//	file. "Newest" is decided lexically, because the producing systems
//	name scan files with monotonically increasing timestamp suffixes
//	(e.g. run_20170101T010101.dat), so the greatest name is the latest
//	file without touching mtimes.
//
// ✨ Call forms (all equivalent):
//   - FindNewestFile("/data/run", "scan_2017*")
//   - FindNewestFile("", "/data/run/scan_2017*")
//   - FindNewestFile("/data", "run/scan_2017*")
//
// A pattern with no match — including a directory that does not exist —
// yields an empty path and a nil error; absence is not a failure.
package fileutil
