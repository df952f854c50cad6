// Package ui implements the interactive terminal interface: a live view of
// the scan as it streams discoveries, followed by a navigable world list.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"worldscout/internal/helpers"
	"worldscout/internal/walker"
	"worldscout/internal/world"
)

type appState int

const (
	stateResolving appState = iota // Resolving search roots
	stateScanning                  // Walking the trees
	stateResults                   // Showing results (list view)
)

// Model is the main application model.
type Model struct {
	// State
	state    appState
	quitting bool
	err      error

	// Inputs
	paths      []string
	exhaustive bool
	opts       walker.Options

	// Data
	roots        []string
	rootWarnings []string
	worlds       []world.World

	// Components
	spinner spinner.Model
	list    list.Model
	help    help.Model
	keys    KeyMap

	// Scan state (for async operations)
	scanState ScanState

	// UI state
	width    int
	height   int
	showHelp bool
}

// New creates a Model that scans the given paths (or, when empty, the
// platform defaults) with the given walker options.
func New(paths []string, opts walker.Options, exhaustive bool) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle()

	delegate := list.NewDefaultDelegate()
	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = "Discovered Worlds"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)

	return Model{
		state:      stateResolving,
		paths:      paths,
		exhaustive: exhaustive,
		opts:       opts,
		spinner:    s,
		list:       l,
		help:       help.New(),
		keys:       DefaultKeyMap(),
	}
}

// Init starts the spinner and kicks off root resolution.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, ResolveRootsCmd(m.paths, m.exhaustive))
}

// Update handles all events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			if m.scanState.CancelFunc != nil {
				m.scanState.CancelFunc()
			}
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
		}
		if m.state == stateResults {
			var cmd tea.Cmd
			m.list, cmd = m.list.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width-4, msg.Height-10)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case RootsResolvedMsg:
		m.rootWarnings = msg.Warnings
		if msg.Err != nil {
			m.err = msg.Err
			m.state = stateResults
			return m, nil
		}
		m.roots = msg.Roots
		m.state = stateScanning
		return m, StartScanCmd(m.roots, m.opts, &m.scanState)

	case WorldFoundMsg:
		m.worlds = append(m.worlds, msg.World)
		return m, WaitForNextWorldCmd(&m.scanState)

	case ScanCompleteMsg:
		m.state = stateResults
		world.SortByPath(m.worlds)
		items := make([]list.Item, 0, len(m.worlds))
		for _, it := range WorldsToItems(m.worlds) {
			items = append(items, it)
		}
		return m, m.list.SetItems(items)
	}

	return m, nil
}

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	s := TitleStyle.Render("Worldscout: Minecraft World Locator")
	s += "\n\n"

	if m.err != nil {
		s += ErrorStyle.Render(fmt.Sprintf("Error: %v", m.err))
		s += "\n"
		for _, w := range m.rootWarnings {
			s += MutedStyle.Render("  "+w) + "\n"
		}
		s += HelpStyle.Render("Press q to quit")
		return s
	}

	switch m.state {
	case stateResolving:
		s += m.spinner.View() + " Resolving search roots..."

	case stateScanning:
		s += m.spinner.View() + fmt.Sprintf(" Scanning %d root(s)...", len(m.roots))
		s += "\n"
		for _, root := range m.roots {
			s += MutedStyle.Render("  "+helpers.AbbreviateHome(root)) + "\n"
		}
		if !m.opts.Exclude.Empty() {
			s += MutedStyle.Render(
				"  excluding: "+strings.Join(m.opts.Exclude.Patterns(), ", ")) + "\n"
		}
		if len(m.worlds) > 0 {
			s += SuccessStyle.Render(fmt.Sprintf("\n  Worlds found: %d", len(m.worlds)))
		}

	case stateResults:
		s += m.renderResults()
	}

	if m.showHelp {
		s += "\n" + m.help.FullHelpView(m.keys.FullHelp())
	} else {
		s += HelpStyle.Render("\nPress q to quit, ? for help")
	}

	return s
}

// renderResults shows the final world list with a detail pane for the
// selected entry.
func (m Model) renderResults() string {
	if len(m.worlds) == 0 {
		s := StatusStyle.Render(fmt.Sprintf("Scanned %d root(s).", len(m.roots))) + "\n\n"
		s += SuccessStyle.Render("No Minecraft worlds found.")
		return s
	}

	s := StatusStyle.Render(fmt.Sprintf(
		"Scanned %d root(s), found %d world(s).", len(m.roots), len(m.worlds)))
	s += "\n\n"
	s += m.list.View()

	if item, ok := m.list.SelectedItem().(WorldItem); ok {
		s += "\n" + item.DetailView()
	}
	return s
}
