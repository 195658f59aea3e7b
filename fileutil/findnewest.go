package fileutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gobwas/glob"
)

// FindNewestFile — lexical newest-match lookup
//
// Description:
//
//	Resolve dir and pattern into one combined glob expression, list the
//	matching directory entries, and return the entry whose filename is
//	lexicographically greatest. Producers encode monotonically increasing
//	timestamps in filenames, so lexical order is creation order and ties
//	are broken by full lexical comparison for free.
//
// Resolution rules:
//  1. An absolute pattern stands alone; dir is ignored.
//  2. Otherwise the effective expression is Join(dir, pattern), so the
//     directory may be passed separately, fully embedded in the pattern,
//     or split between the two.
//  3. Glob metacharacters are honored in the final path component; any
//     leading components are taken literally.
//
// Errors:
//   - ErrBadPattern — the final component does not compile as a glob.
//   - A directory that exists but cannot be listed surfaces its os error.
//   - No match (including a non-existent directory) is NOT an error:
//     the result is ("", nil).
var (
	// ErrBadPattern indicates the glob expression could not be compiled.
	ErrBadPattern = errors.New("fileutil: malformed glob pattern")
)

// FindNewestFile returns the path of the lexically newest file matching
// pattern under dir, or "" when nothing matches.
//
// Example:
//
//	newest, err := fileutil.FindNewestFile("/tmp/scans", "subj1_2017*")
func FindNewestFile(dir, pattern string) (string, error) {
	// Stage 1 (Resolve): build the combined expression per the rules above.
	combined := pattern
	if dir != "" && !filepath.IsAbs(pattern) {
		combined = filepath.Join(dir, pattern)
	}

	// Stage 2 (Split): literal directory part vs glob base component.
	searchDir, base := filepath.Split(combined)
	if searchDir == "" {
		searchDir = "."
	}

	matcher, err := glob.Compile(base)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrBadPattern, base, err)
	}

	// Stage 3 (List): enumerate the directory; absence means no match.
	entries, err := os.ReadDir(searchDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}

		return "", fmt.Errorf("fileutil: list %q: %w", searchDir, err)
	}

	// Stage 4 (Select): keep the lexically greatest matching name.
	newest := ""
	for _, entry := range entries {
		name := entry.Name()
		if !matcher.Match(name) {
			continue
		}
		if name > newest {
			newest = name
		}
	}
	if newest == "" {
		return "", nil
	}

	return filepath.Join(searchDir, newest), nil
}
