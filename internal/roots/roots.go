// Package roots turns user-supplied paths (or platform defaults) into the
// ordered, canonicalized, deduplicated list of directories the walker scans.
package roots

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNoRoots is returned when not a single supplied or default root is a
// usable directory. It is the only condition that aborts a scan.
var ErrNoRoots = errors.New("no usable search roots")

// Warning describes a root that was skipped without aborting the run.
type Warning struct {
	Path string // the path as the user supplied it
	Err  error  // why it was skipped
}

func (w Warning) String() string {
	return fmt.Sprintf("skipping root %q: %v", w.Path, w.Err)
}

// Resolve canonicalizes the supplied paths and removes duplicates while
// preserving order. Paths that do not exist or are not directories become
// warnings, not errors. Ancestor/descendant overlap between roots is passed
// through untouched: apparent ancestry can be misleading under symlinks, so
// containment pruning is the walker's job, done by filesystem identity.
//
// Resolve returns ErrNoRoots only when every supplied path was skipped.
func Resolve(paths []string) ([]string, []Warning, error) {
	var (
		resolved []string
		warnings []Warning
		seen     = make(map[string]bool, len(paths))
	)

	for _, p := range paths {
		canon, err := Canonicalize(p)
		if err != nil {
			warnings = append(warnings, Warning{Path: p, Err: err})
			continue
		}
		if seen[canon] {
			continue
		}
		seen[canon] = true
		resolved = append(resolved, canon)
	}

	if len(resolved) == 0 {
		return nil, warnings, fmt.Errorf("%w: %d path(s) supplied, none usable", ErrNoRoots, len(paths))
	}
	return resolved, warnings, nil
}

// Canonicalize makes a path absolute, resolves symlinks and relative
// segments, and verifies it names a directory.
func Canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving absolute path: %w", err)
	}

	canon, err := filepath.EvalSymlinks(abs)
	if err != nil {
		// EvalSymlinks already wraps a *PathError with the offending path.
		return "", err
	}

	info, err := os.Stat(canon)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s is not a directory", path)
	}
	return canon, nil
}
