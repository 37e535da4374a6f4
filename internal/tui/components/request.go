package components

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fetchedhq/fetched/internal/app"
	"github.com/fetchedhq/fetched/internal/core"
	"github.com/fetchedhq/fetched/internal/theme"
	"github.com/fetchedhq/fetched/internal/tui"
	"github.com/fetchedhq/fetched/internal/tui/vim"
)

// AddLabel is the text of the editor's commit button.
const AddLabel = "Add"

// Request renders the request window: method and URL, the tab bar and the
// content of the selected tab. While editing, the key/value editor is drawn
// right below the tab bar at the regions given by l.Fields().
func Request(a *app.App, l tui.Layout, hl *JSONHighlighter) string {
	th := a.Theme()
	r := l.Request
	focused := a.FocusedWindow() == app.WindowRequest
	width := max(r.Width-2, 0)

	doc := a.RequestData()
	if doc == nil {
		lines := []string{
			th.Title(focused).Render("Request"),
			dimStyle(th).Render("No request selected"),
		}
		return tui.Box(th.Window(focused), r, strings.Join(lines, "\n"))
	}

	lines := []string{
		methodStyle(doc.Method).Render(doc.Method) + " " + tui.Truncate(doc.URL, width-lipgloss.Width(doc.Method)-3),
		TabBar(th, app.RequestTabNames(), int(a.SelectedTab())),
	}

	if a.InputMode() == vim.ModeInsert {
		lines = append(lines, Editor(a, l.Fields()))
	}
	lines = append(lines, requestTabLines(a.SelectedTab(), doc, hl, width)...)

	return tui.Box(th.Window(focused), r, strings.Join(lines, "\n"))
}

// TabBar renders tab labels with the active one highlighted.
func TabBar(th theme.Config, names []string, active int) string {
	tabs := make([]string, 0, len(names))
	for i, name := range names {
		tabs = append(tabs, th.Tab(i == active).Render(name))
	}
	return strings.Join(tabs, " ")
}

func requestTabLines(tab app.RequestTab, doc *core.RequestDocument, hl *JSONHighlighter, width int) []string {
	switch tab {
	case app.TabBody:
		format := DetectBodyFormat(doc.BodyType, doc.Body)
		lines := []string{fmt.Sprintf("Type: %s", format.Upper())}
		body := hl.BodyLines(doc.BodyType, doc.Body)
		if len(body) == 0 {
			return append(lines, "No body defined")
		}
		return append(lines, body...)
	case app.TabQuery:
		return KeyValueLines(doc.QueryParameters, "No query parameters defined", width)
	case app.TabHeaders:
		return KeyValueLines(doc.Headers, "No headers defined", width)
	case app.TabAuth:
		if auth, ok := doc.Headers["Authorization"]; ok {
			scheme, _, _ := strings.Cut(auth, " ")
			return []string{fmt.Sprintf("Scheme: %s", scheme), "Authorization: " + auth}
		}
		return []string{"No authentication configured"}
	default:
		return nil
	}
}

// KeyValueLines renders a map as sorted "key  value" rows.
func KeyValueLines(m map[string]string, empty string, width int) []string {
	if len(m) == 0 {
		return []string{empty}
	}

	keys := make([]string, 0, len(m))
	keyWidth := 0
	for k := range m {
		keys = append(keys, k)
		keyWidth = max(keyWidth, lipgloss.Width(k))
	}
	sort.Strings(keys)
	keyWidth = min(keyWidth, max(width/2, 1))

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, tui.PadRight(k, keyWidth)+"  "+m[k])
	}
	return lines
}

// Editor renders the three editor sub-fields side by side.
func Editor(a *app.App, fields []app.Rect) string {
	th := a.Theme()
	buffer := a.InputBuffer()
	active := a.SubFocusElement()

	boxes := make([]string, 0, len(fields))
	for i, r := range fields {
		style := th.Window(i == active)
		var content string
		switch i {
		case app.FieldAdd:
			content = lipgloss.PlaceHorizontal(max(r.Width-2, 0), lipgloss.Center, th.Tab(i == active).Render(AddLabel))
		default:
			content = buffer[i]
			if i == active {
				content = a.Input()
			}
			if content == "" && i != active {
				content = dimStyle(th).Render(fieldPlaceholder(i))
			}
		}
		boxes = append(boxes, tui.Box(style, r, content))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

func fieldPlaceholder(field int) string {
	if field == app.FieldName {
		return "name"
	}
	return "value"
}

func methodStyle(method string) lipgloss.Style {
	style := lipgloss.NewStyle().Bold(true)

	switch strings.ToUpper(method) {
	case "GET":
		return style.Foreground(lipgloss.Color("34"))
	case "POST":
		return style.Foreground(lipgloss.Color("214"))
	case "PUT":
		return style.Foreground(lipgloss.Color("33"))
	case "PATCH":
		return style.Foreground(lipgloss.Color("141"))
	case "DELETE":
		return style.Foreground(lipgloss.Color("160"))
	default:
		return style.Foreground(lipgloss.Color("245"))
	}
}
