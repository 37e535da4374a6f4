package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fetchedhq/fetched/internal/app"
	"github.com/fetchedhq/fetched/internal/theme"
	"github.com/fetchedhq/fetched/internal/tui"
)

// PopupHint is shown under every popup message.
const PopupHint = "press any key"

// Popup renders a notification centered on an otherwise blank screen and
// returns the region it occupies.
func Popup(th theme.Config, p app.Popup, l tui.Layout) (string, app.Rect) {
	title := popupStyle(p.Type).Render(p.Type.String())
	lines := append([]string{title}, strings.Split(p.Message, "\n")...)
	lines = append(lines, "", lipgloss.NewStyle().Foreground(theme.Color(th.Normal.Border)).Render(PopupHint))

	width := 0
	for _, line := range lines {
		width = max(width, lipgloss.Width(line))
	}
	r := l.Popup(width, len(lines))

	box := tui.Box(
		lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(popupColor(p.Type)).
			Padding(0, 1),
		r,
		strings.Join(lines, "\n"),
	)
	return lipgloss.Place(l.Width, l.Height, lipgloss.Center, lipgloss.Center, box), r
}

func popupStyle(t app.PopupType) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(popupColor(t))
}

func popupColor(t app.PopupType) lipgloss.Color {
	switch t {
	case app.PopupError:
		return lipgloss.Color("160")
	case app.PopupWarning:
		return lipgloss.Color("214")
	default:
		return lipgloss.Color("34")
	}
}
