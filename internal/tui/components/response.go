package components

import (
	"strings"

	"github.com/fetchedhq/fetched/internal/app"
	"github.com/fetchedhq/fetched/internal/tui"
)

// Response renders the response window. Requests are not sent, so each tab
// shows its empty state.
func Response(a *app.App, r app.Rect) string {
	th := a.Theme()
	focused := a.FocusedWindow() == app.WindowResponse

	lines := []string{
		th.Title(focused).Render("Response"),
		TabBar(th, app.ResponseTabNames(), int(a.SelectedResponseTab())),
	}
	switch a.SelectedResponseTab() {
	case app.ResponseTabHeaders:
		lines = append(lines, dimStyle(th).Render("No response headers"))
	default:
		lines = append(lines, dimStyle(th).Render("No response yet"))
	}

	return tui.Box(th.Window(focused), r, strings.Join(lines, "\n"))
}
