// Package output provides formatting and file writing for scan reports.
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"worldscout/internal/world"
)

// Format represents an output format type.
type Format string

const (
	// FormatJSON outputs as JSON.
	FormatJSON Format = "json"
	// FormatYAML outputs as YAML.
	FormatYAML Format = "yaml"
	// FormatTOML outputs as TOML.
	FormatTOML Format = "toml"
	// FormatMarkdown outputs as a Markdown report.
	FormatMarkdown Format = "markdown"
	// FormatTable outputs as an aligned text table.
	FormatTable Format = "table"
)

// ValidFormats returns all valid format strings.
func ValidFormats() []string {
	return []string{
		string(FormatJSON),
		string(FormatYAML),
		string(FormatTOML),
		string(FormatMarkdown),
		string(FormatTable),
	}
}

// IsValidFormat checks if a format string is valid.
func IsValidFormat(s string) bool {
	switch Format(strings.ToLower(s)) {
	case FormatJSON, FormatYAML, FormatTOML, FormatMarkdown, FormatTable:
		return true
	default:
		return false
	}
}

// Warning is a skipped-subtree notice carried into reports.
// This is decoupled from walker.Warning to keep the output package
// independent.
type Warning struct {
	Path    string
	Message string
}

// Summary holds the scan totals.
type Summary struct {
	Roots       int
	DirsVisited int
	WorldsFound int
	Warnings    int
}

// Report contains all data needed for output formatting.
type Report struct {
	GeneratedAt time.Time
	Roots       []string
	Worlds      []world.World
	Warnings    []Warning
	Summary     Summary
}

// Formatter is the interface that output formatters implement.
type Formatter interface {
	Format(report *Report) ([]byte, error)
}

// GetFormatter returns the appropriate formatter for a format.
func GetFormatter(format Format) (Formatter, error) {
	switch format {
	case FormatJSON:
		return &JSONFormatter{}, nil
	case FormatYAML:
		return &YAMLFormatter{}, nil
	case FormatTOML:
		return &TOMLFormatter{}, nil
	case FormatMarkdown:
		return &MarkdownFormatter{}, nil
	case FormatTable:
		return &TableFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}

// FormatReport formats a report using the specified format.
func FormatReport(report *Report, format Format) ([]byte, error) {
	formatter, err := GetFormatter(format)
	if err != nil {
		return nil, err
	}
	return formatter.Format(report)
}

// InferFormat determines the output format from a filename extension.
func InferFormat(filename string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".md", ".markdown":
		return FormatMarkdown, nil
	case ".txt":
		return FormatTable, nil
	default:
		return "", fmt.Errorf(
			"cannot infer format from extension %q (supported: .json, .yaml, .yml, .toml, .md, .markdown, .txt)",
			ext,
		)
	}
}

// WriteToFile writes a formatted report to a file.
func WriteToFile(report *Report, filename string) error {
	format, err := InferFormat(filename)
	if err != nil {
		return err
	}

	data, err := FormatReport(report, format)
	if err != nil {
		return fmt.Errorf("formatting report: %w", err)
	}

	if err := os.WriteFile(filename, data, 0o600); err != nil {
		return fmt.Errorf("writing file: %w", err)
	}

	return nil
}
