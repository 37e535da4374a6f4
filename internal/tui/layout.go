package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fetchedhq/fetched/internal/app"
	"github.com/mattn/go-runewidth"
)

// Region names recorded on the app after every render.
const (
	RegionCollections = "collections"
	RegionRequest     = "request"
	RegionResponse    = "response"
	RegionInput       = app.RegionInput
	RegionFooter      = "footer"
	RegionPopup       = "popup"
)

// Layout constants
const (
	SidebarPercent = 25
	SidebarMin     = 20
	SidebarMax     = 50
	InputHeight    = 3
	FooterHeight   = 1
	FieldHeight    = 3

	// EditorLineOffset is the number of content lines above the key/value
	// editor in the request window: the method/URL line and the tab bar.
	EditorLineOffset = 2
)

// Layout is the screen split for one terminal size.
type Layout struct {
	Width  int
	Height int

	Collections app.Rect
	Request     app.Rect
	Response    app.Rect
	Input       app.Rect
	Footer      app.Rect
}

// Compute splits a width x height terminal into the main windows:
//
//	[Collections] | [Request ]
//	              | [Response]
//	[Input                   ]
//	[Footer                  ]
func Compute(width, height int) Layout {
	l := Layout{Width: max(width, 0), Height: max(height, 0)}

	mainHeight := max(l.Height-InputHeight-FooterHeight, 0)

	sidebar := l.Width * SidebarPercent / 100
	sidebar = max(sidebar, min(SidebarMin, l.Width))
	sidebar = min(sidebar, SidebarMax)
	right := l.Width - sidebar

	requestHeight := mainHeight / 2
	responseHeight := mainHeight - requestHeight

	l.Collections = app.Rect{X: 0, Y: 0, Width: sidebar, Height: mainHeight}
	l.Request = app.Rect{X: sidebar, Y: 0, Width: right, Height: requestHeight}
	l.Response = app.Rect{X: sidebar, Y: requestHeight, Width: right, Height: responseHeight}
	l.Input = app.Rect{X: 0, Y: mainHeight, Width: l.Width, Height: min(InputHeight, l.Height)}
	l.Footer = app.Rect{X: 0, Y: mainHeight + InputHeight, Width: l.Width, Height: FooterHeight}
	return l
}

// Fields returns the regions of the key/value editor sub-fields, laid out
// side by side inside the request window: name, value and the Add button.
func (l Layout) Fields() []app.Rect {
	inner := max(l.Request.Width-2, 0)
	nameWidth := inner * 2 / 5
	valueWidth := inner * 2 / 5
	addWidth := inner - nameWidth - valueWidth

	x := l.Request.X + 1
	y := l.Request.Y + 1 + EditorLineOffset
	return []app.Rect{
		{X: x, Y: y, Width: nameWidth, Height: FieldHeight},
		{X: x + nameWidth, Y: y, Width: valueWidth, Height: FieldHeight},
		{X: x + nameWidth + valueWidth, Y: y, Width: addWidth, Height: FieldHeight},
	}
}

// Popup returns a centered region for a notification of the given content size.
func (l Layout) Popup(contentWidth, contentHeight int) app.Rect {
	w := min(contentWidth+4, l.Width)
	h := min(contentHeight+2, l.Height)
	return app.Rect{
		X:      max((l.Width-w)/2, 0),
		Y:      max((l.Height-h)/2, 0),
		Width:  w,
		Height: h,
	}
}

// Record stores the computed regions on the app so cursor placement can be
// resolved against the last render.
func (l Layout) Record(a *app.App) {
	a.SetRectangle(RegionCollections, l.Collections)
	a.SetRectangle(RegionRequest, l.Request)
	a.SetRectangle(RegionResponse, l.Response)
	a.SetRectangle(RegionInput, l.Input)
	a.SetRectangle(RegionFooter, l.Footer)
	for i, r := range l.Fields() {
		a.SetRectangle(app.FieldRegion(i), r)
	}
}

// Box renders content inside a bordered block that exactly fills r. Lines
// are clipped to the inner area.
func Box(style lipgloss.Style, r app.Rect, content string) string {
	innerWidth := max(r.Width-2, 0)
	innerHeight := max(r.Height-2, 0)
	if r.Width <= 0 || r.Height <= 0 {
		return ""
	}

	lines := strings.Split(content, "\n")
	if len(lines) > innerHeight {
		lines = lines[:innerHeight]
	}
	for i, line := range lines {
		lines[i] = Clip(line, innerWidth)
	}

	return style.
		Width(innerWidth).
		Height(innerHeight).
		MaxWidth(r.Width).
		MaxHeight(r.Height).
		Render(strings.Join(lines, "\n"))
}

// Clip cuts a possibly styled line to at most width display cells.
func Clip(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(s)
}

// Truncate shortens plain text to width display cells, marking the cut with "...".
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= 3 {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, "...")
}

// PadRight pads plain text with spaces to width display cells.
func PadRight(s string, width int) string {
	s = Truncate(s, width)
	return runewidth.FillRight(s, width)
}
