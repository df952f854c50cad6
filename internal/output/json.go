package output

import "encoding/json"

// JSONFormatter formats reports as JSON.
type JSONFormatter struct{}

// jsonOutput is the JSON structure for output.
type jsonOutput struct {
	GeneratedAt string        `json:"generated_at"`
	Roots       []string      `json:"roots"`
	Summary     jsonSummary   `json:"summary"`
	Worlds      []jsonWorld   `json:"worlds"`
	Warnings    []jsonWarning `json:"warnings,omitempty"`
}

type jsonSummary struct {
	Roots       int `json:"roots"`
	DirsVisited int `json:"dirs_visited"`
	WorldsFound int `json:"worlds_found"`
	Warnings    int `json:"warnings,omitempty"`
}

type jsonWorld struct {
	Path         string `json:"path"`
	Name         string `json:"name"`
	Root         string `json:"root"`
	LevelDatSize int64  `json:"level_dat_size,omitempty"`
	ModTime      string `json:"mod_time,omitempty"`
}

type jsonWarning struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Format implements Formatter.
func (*JSONFormatter) Format(report *Report) ([]byte, error) {
	out := jsonOutput{
		GeneratedAt: report.GeneratedAt.Format("2006-01-02T15:04:05Z07:00"),
		Roots:       report.Roots,
		Summary: jsonSummary{
			Roots:       report.Summary.Roots,
			DirsVisited: report.Summary.DirsVisited,
			WorldsFound: report.Summary.WorldsFound,
			Warnings:    report.Summary.Warnings,
		},
		Worlds: make([]jsonWorld, 0, len(report.Worlds)),
	}

	for _, w := range report.Worlds {
		jw := jsonWorld{
			Path:         w.Path,
			Name:         w.Name,
			Root:         w.Root,
			LevelDatSize: w.LevelDatSize,
		}
		if !w.ModTime.IsZero() {
			jw.ModTime = w.ModTime.Format("2006-01-02T15:04:05Z07:00")
		}
		out.Worlds = append(out.Worlds, jw)
	}

	for _, warn := range report.Warnings {
		out.Warnings = append(out.Warnings, jsonWarning(warn))
	}

	return json.MarshalIndent(out, "", "  ")
}
