package components

import (
	"github.com/fetchedhq/fetched/internal/app"
	"github.com/fetchedhq/fetched/internal/tui"
	"github.com/fetchedhq/fetched/internal/tui/vim"
)

// InputBar renders the single-line input used by commands, searches and
// prompts. The text starts at the first inner cell, where App.CursorPosition
// expects it.
func InputBar(a *app.App, r app.Rect) string {
	th := a.Theme()
	active := a.InputMode() == vim.ModeControl

	content := ""
	if active {
		content = a.Input()
	}
	return tui.Box(th.Window(active), r, content)
}

// InputLabel describes what the input bar is waiting for.
func InputLabel(a *app.App) string {
	if a.InputMode() != vim.ModeControl {
		return ""
	}
	switch a.InputStrategy() {
	case vim.StrategyPrompt:
		switch a.CurrentOperation() {
		case app.OpCreate:
			if a.ShowCollectionChildren() {
				return "new request name"
			}
			return "new collection name"
		case app.OpDelete:
			if name, ok := a.SelectedName(); ok {
				return "delete " + name + "? (y/n)"
			}
			return "delete? (y/n)"
		default:
			return "prompt"
		}
	case vim.StrategySearch:
		return "/"
	default:
		return ":"
	}
}
