package curselect

import "fmt"

// SelectorField is implemented by Selector and MultiSelector. Form.Add
// accepts either kind; the interface is not implementable outside this
// package.
type SelectorField interface {
	// Prompt returns the display label for the selection list.
	Prompt() string

	list() *selectionList
	config() *fieldConfig
	optionValues() []any
	result() any
}

// Selector is a single-choice selection list with radio-button semantics:
// at most one item is selected at any time, and activating an item
// atomically deselects the previous one.
type Selector[V any] struct {
	prompt string
	values []V
	cfg    fieldConfig
	sl     *selectionList
}

// NewSelector builds a single-choice selection list over the given options.
// It fails with ErrInvalidConfiguration when options is empty, an index
// option is out of range, or a MultiSelector-only option was supplied.
func NewSelector[V any](prompt string, options []V, opts ...Option) (*Selector[V], error) {
	cfg, err := buildConfig(prompt, len(options), opts)
	if err != nil {
		return nil, err
	}
	if cfg.hasDefaults {
		return nil, fmt.Errorf("%w: selector %q: WithDefaults applies to MultiSelector, use WithDefault", ErrInvalidConfiguration, prompt)
	}

	s := &Selector[V]{
		prompt: prompt,
		values: options,
		cfg:    cfg,
		sl:     newSelectionList(len(options), cfg.disabled, false),
	}
	if cfg.defaultIdx != nil {
		// A caller-supplied default may pre-select a disabled item; user
		// actions never can.
		s.sl.items[*cfg.defaultIdx].selected = true
	}
	return s, nil
}

// Prompt returns the display label for the selection list.
func (s *Selector[V]) Prompt() string { return s.prompt }

func (s *Selector[V]) list() *selectionList { return s.sl }
func (s *Selector[V]) config() *fieldConfig { return &s.cfg }

func (s *Selector[V]) optionValues() []any {
	out := make([]any, len(s.values))
	for i, v := range s.values {
		out[i] = v
	}
	return out
}

// result is the selected value, or nil when nothing is selected.
func (s *Selector[V]) result() any {
	for i := range s.sl.items {
		if s.sl.items[i].selected {
			return s.values[i]
		}
	}
	return nil
}

// MultiSelector is a multi-choice selection list with checkbox semantics:
// any subset of enabled items may be selected, and activating an item
// toggles it.
type MultiSelector[V any] struct {
	prompt string
	values []V
	cfg    fieldConfig
	sl     *selectionList
}

// NewMultiSelector builds a multi-choice selection list over the given
// options. It fails with ErrInvalidConfiguration when options is empty, an
// index option is out of range, a default index points at a disabled item,
// or a Selector-only option was supplied.
func NewMultiSelector[V any](prompt string, options []V, opts ...Option) (*MultiSelector[V], error) {
	cfg, err := buildConfig(prompt, len(options), opts)
	if err != nil {
		return nil, err
	}
	if cfg.defaultIdx != nil {
		return nil, fmt.Errorf("%w: selector %q: WithDefault applies to Selector, use WithDefaults", ErrInvalidConfiguration, prompt)
	}

	m := &MultiSelector[V]{
		prompt: prompt,
		values: options,
		cfg:    cfg,
		sl:     newSelectionList(len(options), cfg.disabled, true),
	}
	for _, d := range cfg.defaults {
		if !m.sl.items[d].enabled {
			return nil, fmt.Errorf("%w: selector %q: default index %d is disabled", ErrInvalidConfiguration, prompt, d)
		}
		m.sl.items[d].selected = true
	}
	return m, nil
}

// Prompt returns the display label for the selection list.
func (m *MultiSelector[V]) Prompt() string { return m.prompt }

func (m *MultiSelector[V]) list() *selectionList { return m.sl }
func (m *MultiSelector[V]) config() *fieldConfig { return &m.cfg }

func (m *MultiSelector[V]) optionValues() []any {
	out := make([]any, len(m.values))
	for i, v := range m.values {
		out[i] = v
	}
	return out
}

// result is the slice of selected values in item order. When nothing is
// selected it is nil, unless a default set (possibly empty) was supplied at
// construction, in which case it is an empty slice. This distinguishes "the
// user deselected everything" from "nothing was ever selected".
func (m *MultiSelector[V]) result() any {
	idx := m.sl.selectedIndexes()
	if len(idx) == 0 {
		if !m.cfg.hasDefaults {
			return nil
		}
		return []V{}
	}
	out := make([]V, 0, len(idx))
	for _, i := range idx {
		out = append(out, m.values[i])
	}
	return out
}

// buildConfig applies options and range-checks every index against the
// option count.
func buildConfig(prompt string, size int, opts []Option) (fieldConfig, error) {
	var cfg fieldConfig
	for _, o := range opts {
		o(&cfg)
	}

	if size == 0 {
		return cfg, fmt.Errorf("%w: selector %q has no options", ErrInvalidConfiguration, prompt)
	}
	for _, d := range cfg.disabled {
		if d < 0 || d >= size {
			return cfg, fmt.Errorf("%w: selector %q: disabled index %d out of range [0,%d)", ErrInvalidConfiguration, prompt, d, size)
		}
	}
	if cfg.defaultIdx != nil && (*cfg.defaultIdx < 0 || *cfg.defaultIdx >= size) {
		return cfg, fmt.Errorf("%w: selector %q: default index %d out of range [0,%d)", ErrInvalidConfiguration, prompt, *cfg.defaultIdx, size)
	}
	for _, d := range cfg.defaults {
		if d < 0 || d >= size {
			return cfg, fmt.Errorf("%w: selector %q: default index %d out of range [0,%d)", ErrInvalidConfiguration, prompt, d, size)
		}
	}
	if cfg.pageSize != nil && *cfg.pageSize < 1 {
		return cfg, fmt.Errorf("%w: selector %q: page size must be positive", ErrInvalidConfiguration, prompt)
	}
	if cfg.leftMargin != nil && *cfg.leftMargin < 0 {
		return cfg, fmt.Errorf("%w: selector %q: left margin must be non-negative", ErrInvalidConfiguration, prompt)
	}
	return cfg, nil
}
