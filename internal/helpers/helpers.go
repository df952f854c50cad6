// Package helpers provides shared utility functions used across the application.
// These are generic helpers that don't belong to a specific domain package.
package helpers

import (
	"os"
	"strings"
)

// TruncateText shortens text to the specified maximum length, adding "..." if truncated.
// Returns empty string if input is empty or only whitespace.
func TruncateText(text string, maxLen int) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	if len(text) <= maxLen {
		return text
	}
	return text[:maxLen-3] + "..."
}

// TruncatePathLeft shortens a path to maxLen characters, keeping the tail.
// Paths identify themselves by their last segments, so truncation drops the
// front and prefixes "..." instead.
func TruncatePathLeft(path string, maxLen int) string {
	if len(path) <= maxLen {
		return path
	}
	return "..." + path[len(path)-maxLen+3:]
}

// AbbreviateHome replaces a leading home-directory prefix with "~" for
// display. The path is returned unchanged when the home directory is
// unknown or not a prefix.
func AbbreviateHome(path string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	if path == home {
		return "~"
	}
	if rest, ok := strings.CutPrefix(path, home+string(os.PathSeparator)); ok {
		return "~" + string(os.PathSeparator) + rest
	}
	return path
}
