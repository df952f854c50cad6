package main

import "worldscout/cmd"

// version is set by GoReleaser at build time via ldflags.
var version = "dev"

func main() {
	cmd.SetVersion(version)
	cmd.Execute()
}
