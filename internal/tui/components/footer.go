package components

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/fetchedhq/fetched/internal/app"
	"github.com/fetchedhq/fetched/internal/theme"
	"github.com/fetchedhq/fetched/internal/tui"
	"github.com/fetchedhq/fetched/internal/tui/vim"
)

// Footer renders the mode badge, the input label and the key hints of the
// current mode.
func Footer(a *app.App, keys vim.KeyMap, h help.Model, r app.Rect) string {
	th := a.Theme()
	mode := a.InputMode()

	left := modeBadge(th, mode).Render(mode.String())
	if label := InputLabel(a); label != "" {
		left += " " + lipgloss.NewStyle().Foreground(theme.Color(th.Focus.Border)).Render(label)
	}
	left += " "

	h.Width = max(r.Width-lipgloss.Width(left), 0)
	hints := h.View(vim.ModeHelp{Keys: keys, Mode: mode})

	return tui.Clip(left+hints, r.Width)
}

func modeBadge(th theme.Config, mode vim.Mode) lipgloss.Style {
	style := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	switch mode {
	case vim.ModeInsert:
		return style.Background(lipgloss.Color("214")).Foreground(lipgloss.Color("0"))
	case vim.ModeControl:
		return style.Background(theme.Color(th.Focus.Border)).Foreground(theme.Color(th.Focus.Background))
	default:
		return style.Background(lipgloss.Color("34")).Foreground(lipgloss.Color("255"))
	}
}
