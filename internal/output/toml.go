package output

import toml "github.com/pelletier/go-toml/v2"

// TOMLFormatter formats reports as TOML.
type TOMLFormatter struct{}

// tomlOutput is the TOML structure for output.
type tomlOutput struct {
	GeneratedAt string        `toml:"generated_at"`
	Roots       []string      `toml:"roots"`
	Summary     tomlSummary   `toml:"summary"`
	Worlds      []tomlWorld   `toml:"worlds,omitempty"`
	Warnings    []tomlWarning `toml:"warnings,omitempty"`
}

type tomlSummary struct {
	Roots       int `toml:"roots"`
	DirsVisited int `toml:"dirs_visited"`
	WorldsFound int `toml:"worlds_found"`
	Warnings    int `toml:"warnings"`
}

type tomlWorld struct {
	Path         string `toml:"path"`
	Name         string `toml:"name"`
	Root         string `toml:"root"`
	LevelDatSize int64  `toml:"level_dat_size,omitempty"`
	ModTime      string `toml:"mod_time,omitempty"`
}

type tomlWarning struct {
	Path    string `toml:"path"`
	Message string `toml:"message"`
}

// Format implements Formatter.
func (*TOMLFormatter) Format(report *Report) ([]byte, error) {
	out := tomlOutput{
		GeneratedAt: report.GeneratedAt.Format("2006-01-02T15:04:05Z07:00"),
		Roots:       report.Roots,
		Summary: tomlSummary{
			Roots:       report.Summary.Roots,
			DirsVisited: report.Summary.DirsVisited,
			WorldsFound: report.Summary.WorldsFound,
			Warnings:    report.Summary.Warnings,
		},
		Worlds: make([]tomlWorld, 0, len(report.Worlds)),
	}

	for _, w := range report.Worlds {
		tw := tomlWorld{
			Path:         w.Path,
			Name:         w.Name,
			Root:         w.Root,
			LevelDatSize: w.LevelDatSize,
		}
		if !w.ModTime.IsZero() {
			tw.ModTime = w.ModTime.Format("2006-01-02T15:04:05Z07:00")
		}
		out.Worlds = append(out.Worlds, tw)
	}

	for _, warn := range report.Warnings {
		out.Warnings = append(out.Warnings, tomlWarning(warn))
	}

	return toml.Marshal(out)
}
