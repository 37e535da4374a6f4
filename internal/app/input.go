package app

import (
	"fmt"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// Region names used to place the cursor.
const (
	RegionInput = "input"
)

// FieldRegion returns the region name of an editor sub-field.
func FieldRegion(field int) string {
	return fmt.Sprintf("field%d", field)
}

// MoveCursorLeft moves the cursor one character left.
func (a *App) MoveCursorLeft() {
	a.characterIndex = a.clampCursor(a.characterIndex - 1)
}

// MoveCursorRight moves the cursor one character right.
func (a *App) MoveCursorRight() {
	a.characterIndex = a.clampCursor(a.characterIndex + 1)
}

// EnterChar inserts r at the cursor and advances it. In insert mode the
// result is mirrored into the active field's buffer entry; typing on the
// commit button does nothing.
func (a *App) EnterChar(r rune) {
	if a.onCommitField() {
		return
	}

	index := a.byteIndex()
	a.input = a.input[:index] + string(r) + a.input[index:]
	a.MoveCursorRight()
	a.mirrorInput()
}

// DeleteChar removes the character before the cursor. It does nothing at
// position 0.
func (a *App) DeleteChar() {
	if a.characterIndex == 0 || a.onCommitField() {
		return
	}

	runes := []rune(a.input)
	current := a.characterIndex
	if current > len(runes) {
		current = len(runes)
	}
	a.input = string(runes[:current-1]) + string(runes[current:])
	a.MoveCursorLeft()
	a.mirrorInput()
}

// ResetCursor moves the cursor to the start.
func (a *App) ResetCursor() {
	a.characterIndex = 0
}

// CursorColumn returns the display width of the text before the cursor.
func (a *App) CursorColumn() int {
	runes := []rune(a.input)
	end := a.clampCursor(a.characterIndex)
	return runewidth.StringWidth(string(runes[:end]))
}

// CursorPosition returns the screen cell of the cursor inside the active
// input region, using the rectangles recorded by the last render. It is not
// ok when the cursor falls outside the region's inner width.
func (a *App) CursorPosition() (x, y int, ok bool) {
	var region string
	switch {
	case a.mode.IsControl():
		region = RegionInput
	case a.mode.IsInsert() && !a.onCommitField():
		region = FieldRegion(a.subFocus)
	default:
		return 0, 0, false
	}

	r, found := a.Rectangle(region)
	if !found {
		return 0, 0, false
	}
	col := a.CursorColumn()
	if col >= r.Width-2 {
		return 0, 0, false
	}
	return r.X + 1 + col, r.Y + 1, true
}

func (a *App) byteIndex() int {
	i := 0
	for index := range a.input {
		if i == a.characterIndex {
			return index
		}
		i++
	}
	return len(a.input)
}

func (a *App) clampCursor(pos int) int {
	return max(0, min(pos, runeCount(a.input)))
}

func (a *App) clearInput() {
	a.input = ""
	a.ResetCursor()
}

func (a *App) clearInputBuffer() {
	a.inputBuffer = make(map[int]string)
}

func (a *App) mirrorInput() {
	if a.mode.IsInsert() {
		a.inputBuffer[a.subFocus] = a.input
	}
}

func (a *App) onCommitField() bool {
	n := a.selectedTab.FieldCount()
	return a.mode.IsInsert() && n > 0 && a.subFocus == n-1
}

// NextField moves to the next editor sub-field, wrapping to the first, and
// restores that field's text into the input.
func (a *App) NextField() error {
	if !a.mode.IsInsert() {
		return fmt.Errorf("%w: next field outside insert mode", ErrUnsupported)
	}
	n := a.selectedTab.FieldCount()
	if n == 0 {
		return fmt.Errorf("%w: %s tab has no fields", ErrUnsupported, a.selectedTab)
	}

	a.subFocus = wrapIncrement(a.subFocus, n)
	a.input = a.inputBuffer[a.subFocus]
	a.characterIndex = runeCount(a.input)
	return nil
}

func runeCount(s string) int {
	return utf8.RuneCountInString(s)
}
