package curselect

// Direction identifies a cursor movement within a selection list. Left and
// Right are equivalent to Up and Down in the single-column layout; they are
// kept distinct for potential multi-column layouts.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
	PageUp
	PageDown
	First
	Last
)

// Command is the abstract input vocabulary the form understands. The key
// router translates raw key presses into Commands; everything past the
// router is terminal-agnostic.
type Command int

const (
	CmdNone Command = iota
	CmdMoveUp
	CmdMoveDown
	CmdMoveLeft
	CmdMoveRight
	CmdPageUp
	CmdPageDown
	CmdFirst
	CmdLast
	CmdFocusNext
	CmdFocusPrev
	CmdActivate
	CmdConfirm
	CmdCancel
)

// direction reports the cursor movement a Command stands for, if any.
func (c Command) direction() (Direction, bool) {
	switch c {
	case CmdMoveUp:
		return Up, true
	case CmdMoveDown:
		return Down, true
	case CmdMoveLeft:
		return Left, true
	case CmdMoveRight:
		return Right, true
	case CmdPageUp:
		return PageUp, true
	case CmdPageDown:
		return PageDown, true
	case CmdFirst:
		return First, true
	case CmdLast:
		return Last, true
	}
	return 0, false
}
