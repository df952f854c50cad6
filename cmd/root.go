package cmd

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// version is set by main.go via SetVersion.
var version = "dev"

// SetVersion sets the version string (called from main).
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// logger writes warnings and progress to stderr so stdout stays clean for
// world paths and structured reports.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "worldscout",
})

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:     "worldscout",
	Short:   "A Minecraft save-world locator",
	Version: version,
	Long: `Worldscout locates Minecraft save worlds on this machine.

A world is any directory that directly contains a level.dat file. Worldscout
walks one or more search roots, tolerates unreadable subtrees and symlink
cycles, and reports every world exactly once even when roots overlap.

Examples:
  worldscout scan                 # Scan the platform default locations
  worldscout scan ~/backups /mnt  # Scan specific folders
  worldscout scan --format=json
  worldscout roots                # Show the default search roots
  worldscout interactive          # Launch interactive TUI`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1) //nolint:revive // deep-exit is acceptable for CLI entry points
	}
}
