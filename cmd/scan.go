package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"worldscout/internal/config"
	"worldscout/internal/filter"
	"worldscout/internal/output"
	"worldscout/internal/roots"
	"worldscout/internal/stats"
	"worldscout/internal/walker"
	"worldscout/internal/world"
)

// Flag variables for the scan command.
var (
	outputFormat   string
	outputFile     string
	concurrency    int
	exhaustive     bool
	followSymlinks bool
	excludes       []string
	showStats      bool
	quiet          bool
	noConfig       bool
)

// scanCmd represents the scan command.
var scanCmd = &cobra.Command{
	Use:   "scan [folder]...",
	Short: "Scan folders for Minecraft worlds",
	Long: `Scan one or more folders for Minecraft save worlds.

With no folders, the platform default locations are searched: the launcher's
.minecraft directory, then the home directory, then - only with --exhaustive -
the whole volume.

Each discovered world path is printed to stdout, one per line, in discovery
order. Warnings about unreadable directories go to stderr and never abort the
scan. Finding zero worlds is a normal outcome and exits 0; only failing to
resolve a single usable root exits non-zero.

Examples:
  worldscout scan                       # Scan default locations
  worldscout scan ~/backups /mnt/drive  # Scan specific folders
  worldscout scan --exhaustive          # Include the full-volume fallback
  worldscout scan --format=json         # JSON report on stdout
  worldscout scan --output=report.yaml  # Write report to file
  worldscout scan -e "**/.git" -e "**/backups"
  worldscout scan --concurrency=8 --stats

Note: --format and --output are mutually exclusive.

Config file (.worldscoutrc.yaml or .worldscoutrc.toml):
  roots: [/mnt/extra-drive]
  exclude: ["**/.git", "**/node_modules"]
  exhaustive: false
  follow_symlinks: false`,
	Args: cobra.ArbitraryArgs,
	Run:  runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)

	// Output options
	scanCmd.Flags().StringVarP(&outputFormat, "format", "f", "",
		"Output format for stdout: json, yaml, toml, markdown, table")
	scanCmd.Flags().StringVarP(&outputFile, "output", "o", "",
		"Write report to file (format inferred from extension: .json, .yaml, .toml, .md, .txt)")

	// Traversal options
	scanCmd.Flags().BoolVar(&exhaustive, "exhaustive", false,
		"Include the volume root in the default search roots")
	scanCmd.Flags().BoolVar(&followSymlinks, "follow-symlinks", false,
		"Descend through directory symlinks (cycle-safe either way)")
	scanCmd.Flags().StringSliceVarP(&excludes, "exclude", "e", nil,
		"Glob patterns for directories to skip, relative to each root (can be repeated)")
	scanCmd.Flags().IntVarP(&concurrency, "concurrency", "c", walker.DefaultConcurrency,
		"Number of roots traversed in parallel")

	// Misc
	scanCmd.Flags().BoolVar(&showStats, "stats", false,
		"Show detailed performance statistics")
	scanCmd.Flags().BoolVarP(&quiet, "quiet", "q", false,
		"Only print world paths, no progress lines")
	scanCmd.Flags().BoolVar(&noConfig, "no-config", false,
		"Skip loading .worldscoutrc config files")
}

// runScan is the main entry point for the scan command.
func runScan(cmd *cobra.Command, args []string) {
	perf := stats.New()
	exitOnError(validateScanFlags(), "Invalid flags")

	cfg := loadScanConfig(cmd)
	useStructuredOutput := outputFormat != ""

	// Phase 1: resolve search roots
	searchRoots := resolveRoots(args, cfg, perf)

	// Phase 2: walk the trees, streaming plain-text results as they come
	w, worlds := walkRoots(searchRoots, cfg, perf, useStructuredOutput)

	// Phase 3: report
	routeOutput(searchRoots, worlds, w, perf, useStructuredOutput)
}

// exitOnError prints an error message and exits if err is not nil.
func exitOnError(err error, message string) {
	if err != nil {
		if message != "" {
			fmt.Fprintf(os.Stderr, "%s: %v\n", message, err)
		} else {
			fmt.Fprintf(os.Stderr, "%v\n", err)
		}
		os.Exit(1)
	}
}

// validateScanFlags checks for invalid flag combinations.
func validateScanFlags() error {
	if outputFormat != "" && outputFile != "" {
		return errors.New("--format and --output are mutually exclusive; " +
			"use --format for stdout output, or --output for file output")
	}

	if outputFormat != "" && !output.IsValidFormat(outputFormat) {
		return fmt.Errorf("invalid format %q; valid formats: %s",
			outputFormat, strings.Join(output.ValidFormats(), ", "))
	}

	return nil
}

// loadScanConfig merges flag values over the config file (if any).
func loadScanConfig(cmd *cobra.Command) *config.Config {
	cfg := &config.Config{
		Exclude:        excludes,
		Exhaustive:     exhaustive,
		FollowSymlinks: followSymlinks,
	}
	// Concurrency stays zero unless the flag was given explicitly.
	// Merge only fills a zero Concurrency, so carrying the flag's default
	// here would shadow the config file's value.
	if cmd.Flags().Changed("concurrency") {
		cfg.Concurrency = concurrency
	}

	if !noConfig {
		fileCfg, err := config.Load()
		if err != nil {
			logger.Warn("ignoring unreadable config file", "err", err)
		} else {
			cfg.Merge(fileCfg)
		}
	}

	if cfg.Concurrency == 0 {
		cfg.Concurrency = walker.DefaultConcurrency
	}
	return cfg
}

// resolveRoots turns CLI arguments plus config extras (or, with neither,
// the platform defaults) into the canonical root list. Every supplied or
// default root being unusable is the one fatal condition.
func resolveRoots(args []string, cfg *config.Config, perf *stats.Stats) []string {
	perf.StartResolve()

	candidates := append(append([]string{}, args...), cfg.Roots...)
	if len(candidates) == 0 {
		candidates = roots.Defaults(cfg.Exhaustive)
	}

	resolved, warnings, err := roots.Resolve(candidates)
	for _, warning := range warnings {
		logger.Warn("skipping root", "path", warning.Path, "err", warning.Err)
	}
	if err != nil {
		exitOnError(err, "Cannot start scan")
	}

	perf.EndResolve(len(resolved))
	return resolved
}

// walkRoots runs the traversal. In plain-text mode world paths are printed
// the moment they are discovered; structured modes collect silently.
func walkRoots(
	searchRoots []string, cfg *config.Config, perf *stats.Stats, useStructuredOutput bool,
) (*walker.Walker, []world.World) {
	excludeFilter, err := filter.New(cfg.Exclude)
	exitOnError(err, "Invalid exclude pattern")

	textMode := !useStructuredOutput && outputFile == ""

	opts := walker.DefaultOptions().
		WithConcurrency(cfg.Concurrency).
		WithFollowSymlinks(cfg.FollowSymlinks).
		WithExclude(excludeFilter).
		WithOnWarning(func(warning walker.Warning) {
			logger.Warn("skipping directory", "path", warning.Path, "err", warning.Err)
		}).
		WithOnRootStart(func(root string) {
			// Announced when a worker picks the root up, not in a batch
			// up front, so the line reflects what is actually being walked.
			if textMode && !quiet {
				fmt.Printf("Walking through %s ...\n", root)
			}
		})

	// Let Ctrl-C stop the walk; whatever was found so far still gets
	// printed and the process exits through the normal path.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	perf.StartWalk()
	w := walker.New(opts)

	var worlds []world.World
	for found := range w.Walk(ctx, searchRoots) {
		worlds = append(worlds, found)
		if textMode {
			fmt.Println(found.Path)
		}
	}

	perf.EndWalk(w.Visited(), w.Emitted(), len(w.Warnings()))
	return w, worlds
}

// routeOutput handles output based on format flags.
func routeOutput(
	searchRoots []string, worlds []world.World, w *walker.Walker,
	perf *stats.Stats, useStructuredOutput bool,
) {
	switch {
	case useStructuredOutput:
		report := buildReport(searchRoots, worlds, w)
		data, err := output.FormatReport(report, output.Format(strings.ToLower(outputFormat)))
		exitOnError(err, "Error formatting report")
		fmt.Println(string(data))
	case outputFile != "":
		report := buildReport(searchRoots, worlds, w)
		err := output.WriteToFile(report, outputFile)
		exitOnError(err, "Error writing report")
		if !quiet {
			fmt.Printf("Report written to %s\n", outputFile)
		}
	default:
		if !quiet {
			printScanSummary(len(worlds), len(w.Warnings()))
		}
	}

	if showStats {
		fmt.Print(statsOutput(perf))
	}
}

// statsOutput renders the performance statistics: JSON when the report
// itself is JSON, so both can be consumed by the same tooling, otherwise
// the human-readable block.
func statsOutput(perf *stats.Stats) string {
	if strings.EqualFold(outputFormat, string(output.FormatJSON)) {
		data, err := json.MarshalIndent(perf.ToJSON(), "", "  ")
		if err == nil {
			return string(data) + "\n"
		}
	}
	return perf.String()
}

// buildReport assembles the output report from the scan results.
// Worlds are sorted by path so concurrent scans produce stable reports.
func buildReport(searchRoots []string, worlds []world.World, w *walker.Walker) *output.Report {
	sorted := make([]world.World, len(worlds))
	copy(sorted, worlds)
	world.SortByPath(sorted)

	warnings := w.Warnings()
	reportWarnings := make([]output.Warning, 0, len(warnings))
	for _, warning := range warnings {
		reportWarnings = append(reportWarnings, output.Warning{
			Path:    warning.Path,
			Message: warning.Err.Error(),
		})
	}

	return &output.Report{
		GeneratedAt: time.Now(),
		Roots:       searchRoots,
		Worlds:      sorted,
		Warnings:    reportWarnings,
		Summary: output.Summary{
			Roots:       len(searchRoots),
			DirsVisited: w.Visited(),
			WorldsFound: len(sorted),
			Warnings:    len(warnings),
		},
	}
}
