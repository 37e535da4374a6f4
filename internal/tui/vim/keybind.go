package vim

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds every key binding, grouped by the mode that uses it.
type KeyMap struct {
	// Normal mode
	FocusCollections key.Binding
	FocusRequest     key.Binding
	FocusResponse    key.Binding
	Command          key.Binding
	Search           key.Binding
	Create           key.Binding
	Delete           key.Binding
	Open             key.Binding
	Edit             key.Binding
	Copy             key.Binding
	CopyCurl         key.Binding
	Up               key.Binding
	Down             key.Binding
	Left             key.Binding
	Right            key.Binding

	// Control and insert mode
	Submit      key.Binding
	Cancel      key.Binding
	Backspace   key.Binding
	CursorLeft  key.Binding
	CursorRight key.Binding
	NextField   key.Binding

	// Any mode
	Quit key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		FocusCollections: key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "collections")),
		FocusRequest:     key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "request")),
		FocusResponse:    key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "response")),
		Command:          key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "command")),
		Search:           key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Create:           key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "create")),
		Delete:           key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Open:             key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open in editor")),
		Edit:             key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "edit")),
		Copy:             key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy url")),
		CopyCurl:         key.NewBinding(key.WithKeys("Y"), key.WithHelp("Y", "copy as curl")),
		Up:               key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
		Down:             key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
		Left:             key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/←", "left")),
		Right:            key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l/→", "right")),

		Submit:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		Cancel:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Backspace:   key.NewBinding(key.WithKeys("backspace"), key.WithHelp("⌫", "delete char")),
		CursorLeft:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "cursor left")),
		CursorRight: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "cursor right")),
		NextField:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),

		Quit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// Bindings returns the bindings shown in the footer for a mode.
func (k KeyMap) Bindings(mode Mode) []key.Binding {
	switch mode {
	case ModeNormal:
		return []key.Binding{
			k.FocusCollections, k.FocusRequest, k.FocusResponse,
			k.Up, k.Down, k.Left, k.Right,
			k.Create, k.Delete, k.Open, k.Edit, k.Copy, k.CopyCurl,
			k.Command, k.Search, k.Quit,
		}
	case ModeControl:
		return []key.Binding{k.Submit, k.Cancel, k.Backspace, k.CursorLeft, k.CursorRight, k.Quit}
	case ModeInsert:
		return []key.Binding{k.NextField, k.Submit, k.Cancel, k.Backspace, k.CursorLeft, k.CursorRight, k.Quit}
	default:
		return []key.Binding{k.Quit}
	}
}

// ModeHelp adapts a KeyMap to help.KeyMap for a single mode.
type ModeHelp struct {
	Keys KeyMap
	Mode Mode
}

// ShortHelp implements help.KeyMap.
func (h ModeHelp) ShortHelp() []key.Binding {
	return h.Keys.Bindings(h.Mode)
}

// FullHelp implements help.KeyMap.
func (h ModeHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}
