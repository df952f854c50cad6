package output

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"

	"worldscout/internal/stats"
)

// TableFormatter formats reports as an aligned text table.
type TableFormatter struct{}

// Format implements Formatter.
func (*TableFormatter) Format(report *Report) ([]byte, error) {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Name", "Path", "Size", "Last Modified"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
	})

	for _, w := range report.Worlds {
		modTime := ""
		if !w.ModTime.IsZero() {
			modTime = w.ModTime.Format("2006-01-02 15:04")
		}
		size := ""
		if w.LevelDatSize > 0 {
			size = stats.FormatBytes(uint64(w.LevelDatSize))
		}
		table.Append([]string{w.Name, w.Path, size, modTime})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Worlds %d", report.Summary.WorldsFound),
		fmt.Sprintf("Dirs visited %d", report.Summary.DirsVisited),
		"",
		"",
	})

	table.Render()

	if len(report.Warnings) > 0 {
		fmt.Fprintf(&buf, "\n%d director(y/ies) skipped with warnings.\n", len(report.Warnings))
	}

	return buf.Bytes(), nil
}
