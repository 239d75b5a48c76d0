package curselect

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
)

// KeyMap defines the keybindings the router understands. Every binding maps
// onto one Command; keys matching no binding are dropped.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	First     key.Binding
	Last      key.Binding
	FocusNext key.Binding
	FocusPrev key.Binding
	Activate  key.Binding
	Confirm   key.Binding
	Cancel    key.Binding
}

// DefaultKeyMap returns the standard vi-flavored bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:        key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
		Down:      key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
		Left:      key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/←", "left")),
		Right:     key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l/→", "right")),
		PageUp:    key.NewBinding(key.WithKeys("w", "pgup"), key.WithHelp("w", "page up")),
		PageDown:  key.NewBinding(key.WithKeys("z", "pgdown"), key.WithHelp("z", "page down")),
		First:     key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "first")),
		Last:      key.NewBinding(key.WithKeys("G", "shift+g"), key.WithHelp("G", "last")),
		FocusNext: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next list")),
		FocusPrev: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev list")),
		Activate:  key.NewBinding(key.WithKeys("enter", "space"), key.WithHelp("enter/space", "select")),
		Confirm:   key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "done")),
		Cancel:    key.NewBinding(key.WithKeys("q", "Q", "shift+q"), key.WithHelp("q", "cancel")),
	}
}

// Translate maps a key press onto the Command vocabulary. Unmatched keys
// yield CmdNone; the form loop drops them and waits for the next event.
func (k KeyMap) Translate(msg tea.KeyMsg) Command {
	switch {
	case key.Matches(msg, k.Up):
		return CmdMoveUp
	case key.Matches(msg, k.Down):
		return CmdMoveDown
	case key.Matches(msg, k.Left):
		return CmdMoveLeft
	case key.Matches(msg, k.Right):
		return CmdMoveRight
	case key.Matches(msg, k.PageUp):
		return CmdPageUp
	case key.Matches(msg, k.PageDown):
		return CmdPageDown
	case key.Matches(msg, k.First):
		return CmdFirst
	case key.Matches(msg, k.Last):
		return CmdLast
	case key.Matches(msg, k.FocusNext):
		return CmdFocusNext
	case key.Matches(msg, k.FocusPrev):
		return CmdFocusPrev
	case key.Matches(msg, k.Activate):
		return CmdActivate
	case key.Matches(msg, k.Confirm):
		return CmdConfirm
	case key.Matches(msg, k.Cancel):
		return CmdCancel
	}
	return CmdNone
}

// ShortHelp implements help.KeyMap for the footer line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Up, k.Activate, k.FocusNext, k.Confirm, k.Cancel}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.PageUp, k.PageDown, k.First, k.Last},
		{k.FocusNext, k.FocusPrev},
		{k.Activate, k.Confirm, k.Cancel},
	}
}
