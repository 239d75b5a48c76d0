package curselect

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/curselect/pkg/tuitest"
)

// press feeds one message into the model and returns the updated copy.
func press(t *testing.T, m formModel, msg tea.Msg) formModel {
	t.Helper()
	out, _ := m.Update(msg)
	next, ok := out.(formModel)
	require.True(t, ok)
	return next
}

func singleField(t *testing.T, form *Form, name, prompt string, options []string, opts ...Option) {
	t.Helper()
	s, err := NewSelector(prompt, options, opts...)
	require.NoError(t, err)
	require.NoError(t, form.Add(name, s))
}

func multiField(t *testing.T, form *Form, name, prompt string, options []string, opts ...Option) {
	t.Helper()
	m, err := NewMultiSelector(prompt, options, opts...)
	require.NoError(t, err)
	require.NoError(t, form.Add(name, m))
}

func TestFormModelScenarios(t *testing.T) {
	t.Run("single select: move down and activate", func(t *testing.T) {
		form := NewForm(FormConfig{})
		singleField(t, form, "flavor", "Flavor", []string{"Vanilla", "Chocolate", "Strawberry"}, WithDefault(0))

		m := newFormModel(form)
		m = press(t, m, tuitest.KeyPress('j'))
		m = press(t, m, tuitest.KeyEnter())
		m = press(t, m, tuitest.KeyCtrl('d'))

		assert.True(t, m.confirmed)
		assert.Equal(t, map[string]any{"flavor": "Chocolate"}, form.results())
	})

	t.Run("multi select: toggle two items", func(t *testing.T) {
		form := NewForm(FormConfig{})
		multiField(t, form, "toppings", "Toppings", []string{"A", "B", "C"})

		m := newFormModel(form)
		m = press(t, m, tuitest.KeySpace())
		m = press(t, m, tuitest.KeyPress('j'))
		m = press(t, m, tuitest.KeySpace())
		m = press(t, m, tuitest.KeyCtrl('d'))

		assert.True(t, m.confirmed)
		assert.Equal(t, map[string]any{"toppings": []string{"A", "B"}}, form.results())
	})

	t.Run("q cancels regardless of prior navigation", func(t *testing.T) {
		form := NewForm(FormConfig{})
		singleField(t, form, "flavor", "Flavor", []string{"Vanilla", "Chocolate"})

		m := newFormModel(form)
		m = press(t, m, tuitest.KeyPress('j'))
		m = press(t, m, tuitest.KeyPress('q'))

		assert.True(t, m.cancelled)
		assert.False(t, m.confirmed)
	})

	t.Run("unrecognized keys are dropped", func(t *testing.T) {
		form := NewForm(FormConfig{})
		singleField(t, form, "flavor", "Flavor", []string{"Vanilla", "Chocolate"})

		m := newFormModel(form)
		m = press(t, m, tuitest.KeyPress('x'))
		m = press(t, m, tuitest.KeyPress('?'))

		assert.False(t, m.cancelled)
		assert.False(t, m.confirmed)
		assert.Equal(t, 0, m.focusedList().cursor)
	})
}

func TestFormModelFocus(t *testing.T) {
	t.Run("tab cycles focus with wrap-around", func(t *testing.T) {
		form := NewForm(FormConfig{})
		singleField(t, form, "a", "A", []string{"1"})
		singleField(t, form, "b", "B", []string{"2"})
		singleField(t, form, "c", "C", []string{"3"})

		m := newFormModel(form)
		require.Equal(t, 0, m.focus)

		m = press(t, m, tuitest.KeyTab())
		assert.Equal(t, 1, m.focus)
		m = press(t, m, tuitest.KeyTab())
		assert.Equal(t, 2, m.focus)
		m = press(t, m, tuitest.KeyTab())
		assert.Equal(t, 0, m.focus)
	})

	t.Run("shift+tab cycles backward with wrap-around", func(t *testing.T) {
		form := NewForm(FormConfig{})
		singleField(t, form, "a", "A", []string{"1"})
		singleField(t, form, "b", "B", []string{"2"})

		m := newFormModel(form)
		m = press(t, m, tuitest.KeyShiftTab())
		assert.Equal(t, 1, m.focus)
		m = press(t, m, tuitest.KeyShiftTab())
		assert.Equal(t, 0, m.focus)
	})

	t.Run("focus skips fields with no enabled items", func(t *testing.T) {
		form := NewForm(FormConfig{})
		singleField(t, form, "a", "A", []string{"1"})
		singleField(t, form, "b", "B", []string{"2"}, WithDisabled(0))
		singleField(t, form, "c", "C", []string{"3"})

		m := newFormModel(form)
		m = press(t, m, tuitest.KeyTab())
		assert.Equal(t, 2, m.focus)
		m = press(t, m, tuitest.KeyShiftTab())
		assert.Equal(t, 0, m.focus)
	})

	t.Run("initial focus lands on first selectable field", func(t *testing.T) {
		form := NewForm(FormConfig{})
		singleField(t, form, "a", "A", []string{"1"}, WithDisabled(0))
		singleField(t, form, "b", "B", []string{"2"})

		m := newFormModel(form)
		assert.Equal(t, 1, m.focus)
	})

	t.Run("single selectable field keeps focus", func(t *testing.T) {
		form := NewForm(FormConfig{})
		singleField(t, form, "a", "A", []string{"1"})

		m := newFormModel(form)
		m = press(t, m, tuitest.KeyTab())
		assert.Equal(t, 0, m.focus)
	})

	t.Run("navigation only reaches the focused field", func(t *testing.T) {
		form := NewForm(FormConfig{})
		singleField(t, form, "a", "A", []string{"1", "2"})
		singleField(t, form, "b", "B", []string{"3", "4"})

		m := newFormModel(form)
		m = press(t, m, tuitest.KeyTab())
		m = press(t, m, tuitest.KeyPress('j'))

		assert.Equal(t, 0, form.fields[0].sl.cursor)
		assert.Equal(t, 1, form.fields[1].sl.cursor)
	})
}

func TestFormModelView(t *testing.T) {
	t.Run("renders prompts, items, and markers", func(t *testing.T) {
		form := NewForm(FormConfig{})
		singleField(t, form, "flavor", "Flavor", []string{"Vanilla", "Chocolate"}, WithDefault(0))
		multiField(t, form, "toppings", "Toppings", []string{"Nuts"}, WithDefaults(0))

		m := newFormModel(form)
		m = press(t, m, tuitest.WindowSize(80, 24))
		view := tuitest.StripANSI(m.render())

		assert.Contains(t, view, "Flavor")
		assert.Contains(t, view, "Toppings")
		assert.Contains(t, view, "(•) Vanilla")
		assert.Contains(t, view, "( ) Chocolate")
		assert.Contains(t, view, "[x] Nuts")
		assert.Contains(t, view, "> ")
	})

	t.Run("long lists are windowed with overflow markers", func(t *testing.T) {
		options := make([]string, 20)
		for i := range options {
			options[i] = string(rune('a' + i))
		}

		form := NewForm(FormConfig{PageSize: 5})
		singleField(t, form, "pick", "Pick", options)

		m := newFormModel(form)
		view := tuitest.StripANSI(m.render())

		assert.Contains(t, view, "( ) a")
		assert.NotContains(t, view, "( ) t")
		assert.Contains(t, view, "…")
	})

	t.Run("empty view after quit", func(t *testing.T) {
		form := NewForm(FormConfig{})
		singleField(t, form, "a", "A", []string{"1"})

		m := newFormModel(form)
		m = press(t, m, tuitest.KeyPress('q'))
		assert.Empty(t, m.render())
	})
}
