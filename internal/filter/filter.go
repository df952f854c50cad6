// Package filter provides glob-based exclusion of directories from a scan.
package filter

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"
)

// Filter decides which directories the walker should refuse to descend
// into. Patterns match slash-normalized paths relative to the search root
// (e.g. "saves/backups", "**/.git", "**/trash*").
type Filter struct {
	patterns []compiledGlob
}

// compiledGlob holds a compiled pattern and its original string for error
// reporting and tests.
type compiledGlob struct {
	pattern  glob.Glob
	original string
}

// New compiles the given glob patterns. Blank patterns are skipped.
// Returns an error naming the first pattern that fails to compile.
func New(patterns []string) (*Filter, error) {
	f := &Filter{}
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", p, err)
		}
		f.patterns = append(f.patterns, compiledGlob{pattern: g, original: p})
	}
	return f, nil
}

// Match reports whether the relative path matches any exclude pattern.
// A matched directory is pruned before descent, so its whole subtree is
// covered by a single match.
func (f *Filter) Match(relPath string) bool {
	if f == nil {
		return false
	}
	for _, g := range f.patterns {
		if g.pattern.Match(relPath) {
			return true
		}
	}
	return false
}

// Empty reports whether the filter has no patterns.
func (f *Filter) Empty() bool {
	return f == nil || len(f.patterns) == 0
}

// Patterns returns the original pattern strings, for display.
func (f *Filter) Patterns() []string {
	if f == nil {
		return nil
	}
	out := make([]string, len(f.patterns))
	for i, g := range f.patterns {
		out[i] = g.original
	}
	return out
}
