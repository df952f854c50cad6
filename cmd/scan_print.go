package cmd

import "fmt"

// printScanSummary prints the end-of-scan line in plain-text mode.
func printScanSummary(worldsFound, warnings int) {
	fmt.Println()
	if worldsFound == 0 {
		fmt.Println("Done. No Minecraft worlds were found.")
	} else {
		fmt.Printf("Done. %d Minecraft world(s) were found.\n", worldsFound)
	}
	if warnings > 0 {
		fmt.Printf("%d director(y/ies) could not be read; see warnings above.\n", warnings)
	}
}
