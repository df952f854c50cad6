package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"worldscout/internal/filter"
	"worldscout/internal/ui"
	"worldscout/internal/walker"
)

// Flag variables for the interactive command.
var (
	interactiveExhaustive bool
	interactiveFollow     bool
	interactiveExcludes   []string
)

// interactiveCmd represents the interactive command.
var interactiveCmd = &cobra.Command{
	Use:   "interactive [folder]...",
	Short: "Launch interactive TUI for world discovery",
	Long: `Launch an interactive terminal UI that scans for Minecraft worlds.

Watch discoveries stream in live, then browse the results with details for
each world.

Controls:
  ↑/↓ or j/k    Navigate through results
  ?             Toggle help
  q             Quit`,
	Args: cobra.ArbitraryArgs,
	Run: func(_ *cobra.Command, args []string) {
		excludeFilter, err := filter.New(interactiveExcludes)
		exitOnError(err, "Invalid exclude pattern")

		opts := walker.DefaultOptions().
			WithFollowSymlinks(interactiveFollow).
			WithExclude(excludeFilter)

		p := tea.NewProgram(ui.New(args, opts, interactiveExhaustive))
		if _, err := p.Run(); err != nil {
			fmt.Printf("Error running interactive mode: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)

	interactiveCmd.Flags().BoolVar(&interactiveExhaustive, "exhaustive", false,
		"Include the volume root in the default search roots")
	interactiveCmd.Flags().BoolVar(&interactiveFollow, "follow-symlinks", false,
		"Descend through directory symlinks")
	interactiveCmd.Flags().StringSliceVarP(&interactiveExcludes, "exclude", "e", nil,
		"Glob patterns for directories to skip (can be repeated)")
}
