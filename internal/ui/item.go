package ui

import (
	"fmt"
	"strings"

	"worldscout/internal/helpers"
	"worldscout/internal/stats"
	"worldscout/internal/world"
)

// WorldItem wraps a world.World to implement the list.Item interface.
type WorldItem struct {
	World world.World
}

// FilterValue returns the string used for list filtering.
// Implements list.Item interface.
func (i WorldItem) FilterValue() string {
	return i.World.Path
}

// Title returns the main display text for the item. Long world names are
// truncated so they cannot push the description off screen.
// Implements list.DefaultItem interface.
func (i WorldItem) Title() string {
	return helpers.TruncateText(i.World.Name, 40)
}

// Description returns secondary text for the item.
// Implements list.DefaultItem interface.
func (i WorldItem) Description() string {
	return helpers.TruncatePathLeft(helpers.AbbreviateHome(i.World.Path), 70)
}

// DetailView returns an expanded detail view for the selected item.
func (i WorldItem) DetailView() string {
	w := i.World
	var b strings.Builder

	b.WriteString("┌─ Details ─────────────────────────────────────────────────────────────\n")
	b.WriteString(fmt.Sprintf("│ %s  %s\n", DetailLabelStyle.Render("Name:"), w.Name))
	b.WriteString(fmt.Sprintf("│ %s  %s\n", DetailLabelStyle.Render("Path:"), w.Path))
	b.WriteString(fmt.Sprintf("│ %s  %s\n", DetailLabelStyle.Render("Found under:"), helpers.AbbreviateHome(w.Root)))
	if w.LevelDatSize > 0 {
		b.WriteString(fmt.Sprintf("│ %s  %s\n",
			DetailLabelStyle.Render("level.dat:"), stats.FormatBytes(uint64(w.LevelDatSize))))
	}
	if !w.ModTime.IsZero() {
		b.WriteString(fmt.Sprintf("│ %s  %s\n",
			DetailLabelStyle.Render("Last modified:"), w.ModTime.Format("2006-01-02 15:04:05")))
	}
	b.WriteString("└────────────────────────────────────────────────────────────────────────\n")

	return b.String()
}

// WorldsToItems converts a slice of worlds to list items.
func WorldsToItems(worlds []world.World) []WorldItem {
	items := make([]WorldItem, len(worlds))
	for i, w := range worlds {
		items[i] = WorldItem{World: w}
	}
	return items
}
