package curselect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectionListMoveCursor(t *testing.T) {
	t.Run("down and up step one item", func(t *testing.T) {
		l := newSelectionList(3, nil, false)
		require.Equal(t, 0, l.cursor)

		l.moveCursor(Down)
		assert.Equal(t, 1, l.cursor)
		l.moveCursor(Down)
		assert.Equal(t, 2, l.cursor)
		l.moveCursor(Up)
		assert.Equal(t, 1, l.cursor)
	})

	t.Run("left and right behave like up and down", func(t *testing.T) {
		l := newSelectionList(3, nil, false)

		l.moveCursor(Right)
		assert.Equal(t, 1, l.cursor)
		l.moveCursor(Left)
		assert.Equal(t, 0, l.cursor)
	})

	t.Run("no movement past the ends", func(t *testing.T) {
		l := newSelectionList(2, nil, false)

		l.moveCursor(Up)
		assert.Equal(t, 0, l.cursor)
		l.moveCursor(Down)
		l.moveCursor(Down)
		assert.Equal(t, 1, l.cursor)
	})

	t.Run("disabled items are skipped", func(t *testing.T) {
		l := newSelectionList(4, []int{1, 2}, false)

		l.moveCursor(Down)
		assert.Equal(t, 3, l.cursor)
		l.moveCursor(Up)
		assert.Equal(t, 0, l.cursor)
	})

	t.Run("cursor stays when no enabled item lies in the direction", func(t *testing.T) {
		l := newSelectionList(3, []int{1, 2}, false)

		l.moveCursor(Down)
		assert.Equal(t, 0, l.cursor)
	})

	t.Run("initial cursor lands on first enabled item", func(t *testing.T) {
		l := newSelectionList(3, []int{0}, false)
		assert.Equal(t, 1, l.cursor)
	})

	t.Run("first and last jump to enabled boundaries", func(t *testing.T) {
		l := newSelectionList(5, []int{0, 4}, false)

		l.moveCursor(Last)
		assert.Equal(t, 3, l.cursor)
		l.moveCursor(First)
		assert.Equal(t, 1, l.cursor)
	})

	t.Run("page down moves by page size clamped to range", func(t *testing.T) {
		l := newSelectionList(20, nil, false)
		l.pageSize = 5

		l.moveCursor(PageDown)
		assert.Equal(t, 5, l.cursor)
		l.moveCursor(PageDown)
		l.moveCursor(PageDown)
		l.moveCursor(PageDown)
		assert.Equal(t, 19, l.cursor)
		l.moveCursor(PageUp)
		assert.Equal(t, 14, l.cursor)
	})

	t.Run("page movement settles on an enabled item", func(t *testing.T) {
		// target lands on a disabled item, scan continues downward
		l := newSelectionList(10, []int{5, 6}, false)
		l.pageSize = 5

		l.moveCursor(PageDown)
		assert.Equal(t, 7, l.cursor)
	})

	t.Run("page movement backtracks when the tail is disabled", func(t *testing.T) {
		l := newSelectionList(10, []int{5, 6, 7, 8, 9}, false)
		l.pageSize = 5

		l.moveCursor(PageDown)
		assert.Equal(t, 4, l.cursor)
	})

	t.Run("cursor never lands on a disabled item", func(t *testing.T) {
		l := newSelectionList(12, []int{0, 2, 3, 7, 11}, false)
		moves := []Direction{
			Down, Down, PageDown, Up, First, PageDown, PageDown,
			Last, Up, PageUp, Down, Left, Right, PageUp, First, Last,
		}
		for _, dir := range moves {
			l.moveCursor(dir)
			assert.True(t, l.items[l.cursor].enabled, "cursor on disabled item after %v", dir)
		}
	})

	t.Run("all items disabled leaves cursor in place", func(t *testing.T) {
		l := newSelectionList(3, []int{0, 1, 2}, false)
		for _, dir := range []Direction{Down, Up, PageDown, PageUp, First, Last} {
			l.moveCursor(dir)
			assert.Equal(t, 0, l.cursor)
		}
	})
}

func TestSelectionListActivate(t *testing.T) {
	t.Run("single select is exclusive", func(t *testing.T) {
		l := newSelectionList(3, nil, false)

		l.activate()
		assert.Equal(t, []int{0}, l.selectedIndexes())

		l.moveCursor(Down)
		l.activate()
		assert.Equal(t, []int{1}, l.selectedIndexes())
	})

	t.Run("single select never exceeds one selection", func(t *testing.T) {
		l := newSelectionList(5, []int{2}, false)
		for _, dir := range []Direction{Down, Down, Last, First, Down} {
			l.activate()
			l.moveCursor(dir)
			l.activate()
			assert.Len(t, l.selectedIndexes(), 1)
		}
	})

	t.Run("multi select toggles", func(t *testing.T) {
		l := newSelectionList(3, nil, true)

		l.activate()
		assert.Equal(t, []int{0}, l.selectedIndexes())

		l.moveCursor(Down)
		l.activate()
		assert.Equal(t, []int{0, 1}, l.selectedIndexes())

		l.activate()
		assert.Equal(t, []int{0}, l.selectedIndexes())
	})

	t.Run("multi toggle is its own inverse", func(t *testing.T) {
		l := newSelectionList(4, nil, true)
		l.moveCursor(Down)

		before := l.selectedIndexes()
		l.activate()
		l.activate()
		assert.Equal(t, before, l.selectedIndexes())
	})

	t.Run("disabled item cannot be activated", func(t *testing.T) {
		l := newSelectionList(2, []int{0, 1}, true)

		l.activate()
		assert.Empty(t, l.selectedIndexes())
	})
}

func TestSelectionListVisibleRange(t *testing.T) {
	t.Run("short list shows everything", func(t *testing.T) {
		l := newSelectionList(3, nil, false)
		start, end := l.visibleRange(8)
		assert.Equal(t, 0, start)
		assert.Equal(t, 3, end)
	})

	t.Run("window follows the cursor", func(t *testing.T) {
		l := newSelectionList(20, nil, false)

		start, end := l.visibleRange(5)
		assert.Equal(t, 0, start)
		assert.Equal(t, 5, end)

		l.moveCursor(Last)
		start, end = l.visibleRange(5)
		assert.Equal(t, 15, start)
		assert.Equal(t, 20, end)

		l.moveCursor(First)
		start, _ = l.visibleRange(5)
		assert.Equal(t, 0, start)
	})
}
