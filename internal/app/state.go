package app

import (
	"maps"

	"github.com/fetchedhq/fetched/internal/core"
	"github.com/fetchedhq/fetched/internal/tui/vim"
)

// RequestData returns the loaded request document, or nil.
func (a *App) RequestData() *core.RequestDocument {
	return a.requestData
}

// Input returns the text being typed.
func (a *App) Input() string {
	return a.input
}

// CharacterIndex returns the cursor position in characters.
func (a *App) CharacterIndex() int {
	return a.characterIndex
}

// InputMode returns the current input mode.
func (a *App) InputMode() vim.Mode {
	return a.mode.Current()
}

// InputStrategy returns how the input will be interpreted on submit.
func (a *App) InputStrategy() vim.Strategy {
	return a.mode.Strategy()
}

// FocusedWindow returns the window that owns the keyboard.
func (a *App) FocusedWindow() Window {
	return a.focusedWindow
}

// CurrentOperation returns the operation in progress.
func (a *App) CurrentOperation() Operation {
	return a.operation
}

// SubFocusElement returns the active sub-field of the editor.
func (a *App) SubFocusElement() int {
	return a.subFocus
}

// InputBuffer returns a copy of the per-field text.
func (a *App) InputBuffer() map[int]string {
	return maps.Clone(a.inputBuffer)
}

// Collections returns the displayed names.
func (a *App) Collections() []string {
	return append([]string(nil), a.collections...)
}

// CollectionList returns the list selection state.
func (a *App) CollectionList() *ListState {
	return &a.collectionList
}

// SelectedCollection returns the drilled-into collection, or "".
func (a *App) SelectedCollection() string {
	return a.selectedCollection
}

// SelectedRequest returns the name of the loaded request, or "".
func (a *App) SelectedRequest() string {
	return a.selectedRequest
}

// ShowCollectionChildren reports whether the list shows a collection's requests.
func (a *App) ShowCollectionChildren() bool {
	return a.showChildren
}

// SelectedTab returns the active request tab.
func (a *App) SelectedTab() RequestTab {
	return a.selectedTab
}

// SelectedResponseTab returns the active response tab.
func (a *App) SelectedResponseTab() ResponseTab {
	return a.selectedResponseTab
}

// SelectedName returns the name under the list cursor.
func (a *App) SelectedName() (string, bool) {
	i, ok := a.collectionList.Selected()
	if !ok || i < 0 || i >= len(a.collections) {
		return "", false
	}
	return a.collections[i], true
}

// RequestURL returns the URL of the loaded request.
func (a *App) RequestURL() (string, bool) {
	if a.requestData == nil {
		return "", false
	}
	return a.requestData.URL, true
}

// Popup returns the popup state.
func (a *App) Popup() Popup {
	return a.popup
}

// ShowPopup displays a notification.
func (a *App) ShowPopup(msg string, typ PopupType) {
	a.popup = Popup{Visible: true, Message: msg, Type: typ}
	switch typ {
	case PopupError:
		a.logger.Error("popup", "msg", msg)
	case PopupWarning:
		a.logger.Warn("popup", "msg", msg)
	default:
		a.logger.Info("popup", "msg", msg)
	}
}

// DismissPopup hides the notification.
func (a *App) DismissPopup() {
	a.popup = Popup{}
}

// SetRectangle records the screen region computed for name.
func (a *App) SetRectangle(name string, r Rect) {
	a.rectangles[name] = r
}

// Rectangle returns the last region computed for name.
func (a *App) Rectangle(name string) (Rect, bool) {
	r, ok := a.rectangles[name]
	return r, ok
}
