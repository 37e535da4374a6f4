package app

// ListState is the selection and scroll position of a list.
type ListState struct {
	selected     int
	hasSelection bool
	offset       int
}

// Selected returns the selected index, if any.
func (l *ListState) Selected() (int, bool) {
	return l.selected, l.hasSelection
}

// Select selects index i.
func (l *ListState) Select(i int) {
	l.selected = i
	l.hasSelection = true
}

// Clear removes the selection.
func (l *ListState) Clear() {
	l.selected = 0
	l.hasSelection = false
	l.offset = 0
}

// Reset selects the first of n items, or clears the selection if n is 0.
func (l *ListState) Reset(n int) {
	l.offset = 0
	if n <= 0 {
		l.Clear()
		return
	}
	l.Select(0)
}

// Next moves the selection down, wrapping past the end.
func (l *ListState) Next(n int) {
	if n <= 0 {
		l.Clear()
		return
	}
	if !l.hasSelection {
		l.Select(0)
		return
	}
	l.Select(wrapIncrement(l.selected, n))
}

// Previous moves the selection up, wrapping past the start.
func (l *ListState) Previous(n int) {
	if n <= 0 {
		l.Clear()
		return
	}
	if !l.hasSelection {
		l.Select(n - 1)
		return
	}
	l.Select(wrapDecrement(l.selected, n))
}

// Clamp keeps the selection inside a list of n items.
func (l *ListState) Clamp(n int) {
	switch {
	case n <= 0:
		l.Clear()
	case !l.hasSelection:
		l.Select(0)
	case l.selected >= n:
		l.Select(n - 1)
	case l.selected < 0:
		l.Select(0)
	}
}

// Offset returns the index of the first visible row.
func (l *ListState) Offset() int {
	return l.offset
}

// ScrollTo adjusts the offset so the selection is visible in height rows.
func (l *ListState) ScrollTo(height int) {
	if height <= 0 || !l.hasSelection {
		l.offset = 0
		return
	}
	if l.selected < l.offset {
		l.offset = l.selected
	}
	if l.selected >= l.offset+height {
		l.offset = l.selected - height + 1
	}
}

func wrapIncrement(i, n int) int {
	if n <= 0 {
		return 0
	}
	return (i + 1) % n
}

func wrapDecrement(i, n int) int {
	if n <= 0 {
		return 0
	}
	return (i - 1 + n) % n
}
