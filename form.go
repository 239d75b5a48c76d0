package curselect

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
)

// Field is the named binding of one selector into a Form. It resolves
// configuration through a layered lookup: field override, then form default,
// then builtin.
type Field struct {
	name string
	src  SelectorField
	sl   *selectionList
	cfg  *fieldConfig
	form *Form
}

// Name returns the field's key in the result map.
func (f *Field) Name() string { return f.name }

func (f *Field) displayFunc() func(any) string {
	if f.cfg.displayFunc != nil {
		return f.cfg.displayFunc
	}
	if f.form.cfg.DisplayFunc != nil {
		return f.form.cfg.DisplayFunc
	}
	return func(v any) string { return fmt.Sprint(v) }
}

func (f *Field) leftMargin() int {
	if f.cfg.leftMargin != nil {
		return *f.cfg.leftMargin
	}
	if f.form.cfg.LeftMargin > 0 {
		return f.form.cfg.LeftMargin
	}
	return defaultLeftMargin
}

func (f *Field) labelOnTop() bool {
	if f.cfg.labelOnTop != nil {
		return *f.cfg.labelOnTop
	}
	return f.form.cfg.LabelOnTop
}

func (f *Field) pageSize() int {
	if f.cfg.pageSize != nil {
		return *f.cfg.pageSize
	}
	if f.form.cfg.PageSize > 0 {
		return f.form.cfg.PageSize
	}
	return defaultPageSize
}

// Form is an ordered collection of named selection lists sharing one focus.
// Insertion order is tab order and vertical layout order.
type Form struct {
	cfg    FormConfig
	keymap KeyMap
	fields []*Field
	names  map[string]struct{}
}

// NewForm creates an empty form with the given form-wide defaults.
func NewForm(cfg FormConfig) *Form {
	km := DefaultKeyMap()
	if cfg.KeyMap != nil {
		km = *cfg.KeyMap
	}
	return &Form{
		cfg:    cfg,
		keymap: km,
		names:  make(map[string]struct{}),
	}
}

// Add appends a field binding the selector under the given name. It fails
// with ErrDuplicateField when the name is already in use.
func (f *Form) Add(name string, sel SelectorField) error {
	if _, ok := f.names[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateField, name)
	}

	fld := &Field{
		name: name,
		src:  sel,
		sl:   sel.list(),
		cfg:  sel.config(),
		form: f,
	}

	// Form defaults are known now; resolve item labels and page size.
	display := fld.displayFunc()
	for i, v := range sel.optionValues() {
		fld.sl.items[i].label = display(v)
	}
	fld.sl.pageSize = fld.pageSize()

	f.names[name] = struct{}{}
	f.fields = append(f.fields, fld)
	return nil
}

// Run presents the form and blocks until the user confirms or cancels. On
// confirm it returns a map from field name to the field's selection; on
// cancel it returns a nil map and a nil error. Terminal setup errors from
// the underlying program are returned as-is; the terminal is restored on
// every exit path.
func (f *Form) Run(ctx context.Context) (map[string]any, error) {
	if len(f.fields) == 0 {
		return nil, ErrEmptyForm
	}

	p := tea.NewProgram(newFormModel(f), tea.WithContext(ctx))
	out, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("run form: %w", err)
	}

	if m, ok := out.(formModel); ok && m.cancelled {
		return nil, nil
	}
	return f.results(), nil
}

// results snapshots every field's derived value, keyed by field name.
func (f *Form) results() map[string]any {
	out := make(map[string]any, len(f.fields))
	for _, fld := range f.fields {
		out[fld.name] = fld.src.result()
	}
	return out
}
