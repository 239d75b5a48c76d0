package curselect

import (
	"strings"

	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/curselect/internal/styles"
)

// formModel drives the interactive loop: render, wait for a key, translate
// it to a Command, apply it to the focused list or the form focus, repeat
// until confirm or cancel.
type formModel struct {
	form      *Form
	focus     int
	confirmed bool
	cancelled bool
	help      help.Model
	width     int
	height    int
}

func newFormModel(f *Form) formModel {
	m := formModel{form: f, help: help.New()}
	// Focus the first field that has something to select.
	for i, fld := range f.fields {
		if fld.sl.hasEnabled() {
			m.focus = i
			break
		}
	}
	return m
}

func (m formModel) Init() tea.Cmd { return nil }

func (m formModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.SetWidth(msg.Width)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m formModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch cmd := m.form.keymap.Translate(msg); cmd {
	case CmdNone:
		return m, nil
	case CmdCancel:
		m.cancelled = true
		return m, tea.Quit
	case CmdConfirm:
		m.confirmed = true
		return m, tea.Quit
	case CmdFocusNext:
		m.focus = m.seekFocus(1)
		return m, nil
	case CmdFocusPrev:
		m.focus = m.seekFocus(-1)
		return m, nil
	case CmdActivate:
		m.focusedList().activate()
		return m, nil
	default:
		if dir, ok := cmd.direction(); ok {
			m.focusedList().moveCursor(dir)
		}
		return m, nil
	}
}

func (m formModel) focusedList() *selectionList {
	return m.form.fields[m.focus].sl
}

// seekFocus walks the field sequence in the given direction, wrapping
// around, and returns the first field with at least one enabled item. When
// no other such field exists the focus stays put.
func (m formModel) seekFocus(delta int) int {
	n := len(m.form.fields)
	for i := 1; i <= n; i++ {
		idx := ((m.focus+delta*i)%n + n) % n
		if m.form.fields[idx].sl.hasEnabled() {
			return idx
		}
	}
	return m.focus
}

func (m formModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

func (m formModel) render() string {
	if m.confirmed || m.cancelled {
		return ""
	}

	var parts []string
	for i, fld := range m.form.fields {
		if i > 0 {
			parts = append(parts, "")
		}
		parts = append(parts, m.renderField(fld, i == m.focus))
	}
	parts = append(parts, "", styles.FormHelpStyle.Render(m.help.View(m.form.keymap)))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m formModel) renderField(fld *Field, focused bool) string {
	titleStyle := styles.FormTitleBlurredStyle
	if focused {
		titleStyle = styles.FormTitleStyle
	}
	label := titleStyle.Render(fld.src.Prompt())

	column := m.renderItems(fld, focused)

	leftMargin := fld.leftMargin()
	onTop := fld.labelOnTop()
	if lipgloss.Width(fld.src.Prompt()) > leftMargin-gutter {
		// A prompt wider than the label column always goes on top.
		onTop = true
	}

	var content string
	if onTop {
		content = lipgloss.JoinVertical(lipgloss.Left,
			label,
			lipgloss.NewStyle().PaddingLeft(leftMargin).Render(column),
		)
	} else {
		labelCol := lipgloss.NewStyle().Width(leftMargin - gutter).Render(label)
		content = lipgloss.JoinHorizontal(lipgloss.Top,
			labelCol,
			strings.Repeat(" ", gutter),
			column,
		)
	}

	borderStyle := styles.FormFieldStyle
	if focused {
		borderStyle = styles.FormFieldFocusedStyle
	}
	return borderStyle.Render(content)
}

func (m formModel) renderItems(fld *Field, focused bool) string {
	sl := fld.sl
	visible := min(len(sl.items), fld.pageSize())
	start, end := sl.visibleRange(visible)

	var lines []string
	if start > 0 {
		lines = append(lines, styles.TextMutedStyle.Render("  …"))
	}
	for i := start; i < end; i++ {
		lines = append(lines, renderItem(sl, i, focused))
	}
	if end < len(sl.items) {
		lines = append(lines, styles.TextMutedStyle.Render("  …"))
	}
	return strings.Join(lines, "\n")
}

func renderItem(sl *selectionList, index int, focused bool) string {
	it := sl.items[index]

	box := "( )"
	mark := "(•)"
	if sl.multi {
		box = "[ ]"
		mark = "[x]"
	}
	if it.selected {
		box = mark
	}

	cursor := "  "
	style := styles.TextForegroundStyle
	switch {
	case focused && index == sl.cursor:
		cursor = "> "
		style = styles.SelectItemCursorStyle
	case !it.enabled:
		style = styles.SelectItemDisabledStyle
	}

	return cursor + style.Render(box+" "+it.label)
}
