package output

import (
	"fmt"
	"strings"

	"worldscout/internal/stats"
)

// MarkdownFormatter formats reports as Markdown.
type MarkdownFormatter struct{}

// Format implements Formatter.
func (*MarkdownFormatter) Format(report *Report) ([]byte, error) {
	// Pre-grow builder: estimate ~150 bytes per world + ~400 bytes header
	var b strings.Builder
	b.Grow(len(report.Worlds)*150 + 400)

	// Header
	b.WriteString("# Worldscout Scan Report\n\n")
	b.WriteString(fmt.Sprintf("**Generated:** %s  \n", report.GeneratedAt.Format("2006-01-02 15:04:05")))
	b.WriteString(fmt.Sprintf("**Roots Scanned:** %d  \n", report.Summary.Roots))
	b.WriteString(fmt.Sprintf("**Directories Visited:** %d  \n", report.Summary.DirsVisited))
	b.WriteString(fmt.Sprintf("**Worlds Found:** %d\n\n", report.Summary.WorldsFound))

	// Roots section
	if len(report.Roots) > 0 {
		b.WriteString("## Search Roots\n\n")
		for _, root := range report.Roots {
			b.WriteString(fmt.Sprintf("- `%s`\n", root))
		}
		b.WriteString("\n")
	}

	// Worlds section
	if len(report.Worlds) > 0 {
		b.WriteString(fmt.Sprintf("## Worlds (%d)\n\n", len(report.Worlds)))
		b.WriteString("| Name | Path | Size | Last Modified |\n")
		b.WriteString("|------|------|------|---------------|\n")
		for _, w := range report.Worlds {
			modTime := ""
			if !w.ModTime.IsZero() {
				modTime = w.ModTime.Format("2006-01-02 15:04:05")
			}
			b.WriteString(fmt.Sprintf("| %s | `%s` | %s | %s |\n",
				escapeMarkdown(w.Name), w.Path,
				stats.FormatBytes(uint64(max(w.LevelDatSize, 0))), modTime))
		}
		b.WriteString("\n")
	} else {
		b.WriteString("No worlds found.\n\n")
	}

	// Warnings section
	if len(report.Warnings) > 0 {
		b.WriteString(fmt.Sprintf("## Warnings (%d)\n\n", len(report.Warnings)))
		b.WriteString("| Path | Message |\n")
		b.WriteString("|------|--------|\n")
		for _, warn := range report.Warnings {
			b.WriteString(fmt.Sprintf("| `%s` | %s |\n",
				warn.Path, escapeMarkdown(warn.Message)))
		}
		b.WriteString("\n")
	}

	return []byte(b.String()), nil
}

// escapeMarkdown escapes special markdown characters in a string.
func escapeMarkdown(s string) string {
	// Escape pipe characters which break tables
	s = strings.ReplaceAll(s, "|", "\\|")
	// Escape backticks
	s = strings.ReplaceAll(s, "`", "\\`")
	return s
}
