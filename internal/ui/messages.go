package ui

import "worldscout/internal/world"

// RootsResolvedMsg is sent when the search roots have been resolved.
type RootsResolvedMsg struct {
	Err      error
	Roots    []string
	Warnings []string
}

// WorldFoundMsg is sent each time the walker discovers a world.
type WorldFoundMsg struct {
	World world.World
}

// ScanCompleteMsg is sent when every root has been fully traversed.
type ScanCompleteMsg struct{}
