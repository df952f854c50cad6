package output

import "gopkg.in/yaml.v3"

// YAMLFormatter formats reports as YAML.
type YAMLFormatter struct{}

// yamlOutput is the YAML structure for output.
type yamlOutput struct {
	GeneratedAt string        `yaml:"generated_at"`
	Roots       []string      `yaml:"roots"`
	Worlds      []yamlWorld   `yaml:"worlds"`
	Warnings    []yamlWarning `yaml:"warnings,omitempty"`
	Summary     yamlSummary   `yaml:"summary"`
}

type yamlSummary struct {
	Roots       int `yaml:"roots"`
	DirsVisited int `yaml:"dirs_visited"`
	WorldsFound int `yaml:"worlds_found"`
	Warnings    int `yaml:"warnings,omitempty"`
}

type yamlWorld struct {
	Path         string `yaml:"path"`
	Name         string `yaml:"name"`
	Root         string `yaml:"root"`
	LevelDatSize int64  `yaml:"level_dat_size,omitempty"`
	ModTime      string `yaml:"mod_time,omitempty"`
}

type yamlWarning struct {
	Path    string `yaml:"path"`
	Message string `yaml:"message"`
}

// Format implements Formatter.
func (*YAMLFormatter) Format(report *Report) ([]byte, error) {
	out := yamlOutput{
		GeneratedAt: report.GeneratedAt.Format("2006-01-02T15:04:05Z07:00"),
		Roots:       report.Roots,
		Worlds:      make([]yamlWorld, 0, len(report.Worlds)),
		Summary: yamlSummary{
			Roots:       report.Summary.Roots,
			DirsVisited: report.Summary.DirsVisited,
			WorldsFound: report.Summary.WorldsFound,
			Warnings:    report.Summary.Warnings,
		},
	}

	for _, w := range report.Worlds {
		yw := yamlWorld{
			Path:         w.Path,
			Name:         w.Name,
			Root:         w.Root,
			LevelDatSize: w.LevelDatSize,
		}
		if !w.ModTime.IsZero() {
			yw.ModTime = w.ModTime.Format("2006-01-02T15:04:05Z07:00")
		}
		out.Worlds = append(out.Worlds, yw)
	}

	for _, warn := range report.Warnings {
		out.Warnings = append(out.Warnings, yamlWarning(warn))
	}

	return yaml.Marshal(out)
}
