package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListState(t *testing.T) {
	t.Run("reset selects first item", func(t *testing.T) {
		var l ListState
		l.Reset(3)
		i, ok := l.Selected()
		assert.True(t, ok)
		assert.Equal(t, 0, i)

		l.Reset(0)
		_, ok = l.Selected()
		assert.False(t, ok)
	})

	t.Run("next and previous wrap", func(t *testing.T) {
		var l ListState
		l.Reset(3)

		l.Previous(3)
		i, _ := l.Selected()
		assert.Equal(t, 2, i)

		l.Next(3)
		i, _ = l.Selected()
		assert.Equal(t, 0, i)
	})

	t.Run("motion on empty list clears", func(t *testing.T) {
		var l ListState
		l.Next(0)
		_, ok := l.Selected()
		assert.False(t, ok)
		l.Previous(0)
		_, ok = l.Selected()
		assert.False(t, ok)
	})

	t.Run("clamp pulls selection into range", func(t *testing.T) {
		var l ListState
		l.Select(4)
		l.Clamp(2)
		i, _ := l.Selected()
		assert.Equal(t, 1, i)

		l.Clamp(0)
		_, ok := l.Selected()
		assert.False(t, ok)

		l.Clamp(5)
		i, ok = l.Selected()
		assert.True(t, ok)
		assert.Equal(t, 0, i)
	})

	t.Run("scroll keeps selection visible", func(t *testing.T) {
		var l ListState
		l.Select(7)
		l.ScrollTo(3)
		assert.Equal(t, 5, l.Offset())

		l.Select(2)
		l.ScrollTo(3)
		assert.Equal(t, 2, l.Offset())

		l.ScrollTo(0)
		assert.Equal(t, 0, l.Offset())
	})
}

func TestWrap(t *testing.T) {
	assert.Equal(t, 1, wrapIncrement(0, 3))
	assert.Equal(t, 0, wrapIncrement(2, 3))
	assert.Equal(t, 2, wrapDecrement(0, 3))
	assert.Equal(t, 0, wrapIncrement(5, 0))
	assert.Equal(t, 0, wrapDecrement(5, 0))
}
