package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fetchedhq/fetched/internal/app"
	"github.com/fetchedhq/fetched/internal/theme"
	"github.com/fetchedhq/fetched/internal/tui"
)

// Collections renders the collections window: either the top-level
// collections or the requests of the drilled-into collection.
//
// The list offset is view state, so rendering scrolls it to keep the
// selection visible.
func Collections(a *app.App, r app.Rect) string {
	th := a.Theme()
	focused := a.FocusedWindow() == app.WindowCollections

	title := "Collections"
	if a.ShowCollectionChildren() {
		title = "Collections / " + a.SelectedCollection()
	}
	lines := []string{th.Title(focused).Render(tui.Truncate(title, r.Width-2))}

	// border (2) + title (1)
	rows := max(r.Height-3, 0)
	list := a.CollectionList()
	list.ScrollTo(rows)

	names := a.Collections()
	if len(names) == 0 {
		lines = append(lines, dimStyle(th).Render(emptyListHint(a.ShowCollectionChildren())))
	}

	selected, ok := list.Selected()
	end := min(list.Offset()+rows, len(names))
	for i := list.Offset(); i < end; i++ {
		isSelected := ok && i == selected
		prefix := "  "
		if isSelected {
			prefix = "> "
		}
		row := tui.PadRight(prefix+names[i], max(r.Width-2, 0))
		lines = append(lines, th.ListItem(isSelected, focused).Render(row))
	}

	return tui.Box(th.Window(focused), r, strings.Join(lines, "\n"))
}

func emptyListHint(drilled bool) string {
	if drilled {
		return "no requests, press a to create"
	}
	return "no collections, press a to create"
}

func dimStyle(th theme.Config) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Color(th.Normal.Border)).Italic(true)
}
