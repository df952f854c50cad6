package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"worldscout/internal/roots"
)

// rootsExhaustive mirrors the scan command's --exhaustive flag.
var rootsExhaustive bool

// rootsCmd prints the default search roots for this platform, in order,
// marking the ones that actually exist. Useful for checking what a bare
// `worldscout scan` would cover before running it.
var rootsCmd = &cobra.Command{
	Use:   "roots",
	Short: "Show the default search roots for this platform",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		for _, candidate := range roots.Defaults(rootsExhaustive) {
			canon, err := roots.Canonicalize(candidate)
			if err != nil {
				fmt.Printf("%s (unavailable: %v)\n", candidate, err)
				continue
			}
			fmt.Println(canon)
		}
	},
}

func init() {
	rootCmd.AddCommand(rootsCmd)
	rootsCmd.Flags().BoolVar(&rootsExhaustive, "exhaustive", false,
		"Include the volume root in the list")
}
