package curselect

// item is one entry in a selection list. Labels are resolved when the
// selector is bound to a form, once the effective display function is known.
type item struct {
	label    string
	enabled  bool
	selected bool
}

// selectionList is the navigable core shared by Selector and MultiSelector:
// an ordered item sequence plus a cursor. The cursor always rests on an
// enabled item when at least one exists; navigation skips disabled items and
// is a no-op when no enabled item lies in the requested direction.
type selectionList struct {
	items    []item
	cursor   int
	offset   int // first visible row, maintained by visibleRange
	pageSize int
	multi    bool
}

func newSelectionList(size int, disabled []int, multi bool) *selectionList {
	items := make([]item, size)
	for i := range items {
		items[i].enabled = true
	}
	for _, d := range disabled {
		items[d].enabled = false
	}

	l := &selectionList{items: items, pageSize: defaultPageSize, multi: multi}
	if first := l.firstEnabled(); first >= 0 {
		l.cursor = first
	}
	return l
}

// moveCursor moves to the nearest enabled item in the given direction. Page
// movements jump by pageSize and settle on the nearest enabled item.
func (l *selectionList) moveCursor(dir Direction) {
	switch dir {
	case Up, Left:
		l.step(-1)
	case Down, Right:
		l.step(1)
	case PageUp:
		l.page(-1)
	case PageDown:
		l.page(1)
	case First:
		if i := l.firstEnabled(); i >= 0 {
			l.cursor = i
		}
	case Last:
		if i := l.lastEnabled(); i >= 0 {
			l.cursor = i
		}
	}
}

func (l *selectionList) step(delta int) {
	for i := l.cursor + delta; i >= 0 && i < len(l.items); i += delta {
		if l.items[i].enabled {
			l.cursor = i
			return
		}
	}
}

func (l *selectionList) page(delta int) {
	target := l.cursor + delta*l.pageSize
	target = max(0, min(target, len(l.items)-1))

	// Continue past the target in the move direction first, then backtrack
	// toward the cursor. The cursor itself is enabled whenever any item is,
	// so the backtrack always terminates on a valid position.
	for i := target; i >= 0 && i < len(l.items); i += delta {
		if l.items[i].enabled {
			l.cursor = i
			return
		}
	}
	for i := target - delta; i >= 0 && i < len(l.items); i -= delta {
		if l.items[i].enabled {
			l.cursor = i
			return
		}
	}
}

// activate applies the selection rule at the cursor. Disabled items never
// change state. Single-select clears the previous selection atomically;
// multi-select toggles.
func (l *selectionList) activate() {
	if len(l.items) == 0 {
		return
	}
	cur := &l.items[l.cursor]
	if !cur.enabled {
		return
	}
	if l.multi {
		cur.selected = !cur.selected
		return
	}
	for i := range l.items {
		l.items[i].selected = false
	}
	cur.selected = true
}

func (l *selectionList) selectedIndexes() []int {
	var out []int
	for i := range l.items {
		if l.items[i].selected {
			out = append(out, i)
		}
	}
	return out
}

func (l *selectionList) firstEnabled() int {
	for i := range l.items {
		if l.items[i].enabled {
			return i
		}
	}
	return -1
}

func (l *selectionList) lastEnabled() int {
	for i := len(l.items) - 1; i >= 0; i-- {
		if l.items[i].enabled {
			return i
		}
	}
	return -1
}

func (l *selectionList) hasEnabled() bool { return l.firstEnabled() >= 0 }

// visibleRange returns the half-open window of items to draw, sized to
// visible rows. The window follows the cursor and is otherwise sticky
// between renders.
func (l *selectionList) visibleRange(visible int) (start, end int) {
	if visible >= len(l.items) {
		return 0, len(l.items)
	}
	if l.cursor < l.offset {
		l.offset = l.cursor
	}
	if l.cursor >= l.offset+visible {
		l.offset = l.cursor - visible + 1
	}
	if l.offset+visible > len(l.items) {
		l.offset = len(l.items) - visible
	}
	return l.offset, l.offset + visible
}
