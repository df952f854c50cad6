package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"worldscout/internal/roots"
	"worldscout/internal/walker"
	"worldscout/internal/world"
)

// ResolveRootsCmd returns a command that resolves the search roots.
// With no explicit paths the platform defaults are used.
func ResolveRootsCmd(paths []string, exhaustive bool) tea.Cmd {
	return func() tea.Msg {
		candidates := paths
		if len(candidates) == 0 {
			candidates = roots.Defaults(exhaustive)
		}
		resolved, warnings, err := roots.Resolve(candidates)

		msg := RootsResolvedMsg{Err: err, Roots: resolved}
		for _, w := range warnings {
			msg.Warnings = append(msg.Warnings, w.String())
		}
		return msg
	}
}

// ScanState holds the state needed for a streaming scan.
// This allows the commands to be stateless functions.
type ScanState struct {
	WorldsChan <-chan world.World
	CancelFunc context.CancelFunc
	Walker     *walker.Walker
}

// StartScanCmd initializes the walker and returns the first discovery.
func StartScanCmd(rootDirs []string, opts walker.Options, state *ScanState) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(context.Background())
		state.CancelFunc = cancel

		state.Walker = walker.New(opts)
		state.WorldsChan = state.Walker.Walk(ctx, rootDirs)

		found, ok := <-state.WorldsChan
		if !ok {
			return ScanCompleteMsg{}
		}
		return WorldFoundMsg{World: found}
	}
}

// WaitForNextWorldCmd waits for the next discovery from the channel.
func WaitForNextWorldCmd(state *ScanState) tea.Cmd {
	return func() tea.Msg {
		if state.WorldsChan == nil {
			return ScanCompleteMsg{}
		}

		found, ok := <-state.WorldsChan
		if !ok {
			return ScanCompleteMsg{}
		}
		return WorldFoundMsg{World: found}
	}
}
