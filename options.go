package curselect

// Builtin defaults, applied when neither the selector nor the form sets a
// value. The gutter is the gap between the label column and the item column.
const (
	defaultLeftMargin = 8
	defaultPageSize   = 8
	gutter            = 2
)

// fieldConfig holds per-selector overrides. Unset values inherit from the
// owning form's FormConfig, which in turn falls back to the builtin defaults.
type fieldConfig struct {
	displayFunc func(any) string
	leftMargin  *int
	labelOnTop  *bool
	pageSize    *int
	disabled    []int
	defaultIdx  *int  // Selector only
	defaults    []int // MultiSelector only
	hasDefaults bool  // distinguishes WithDefaults() from no call at all
}

// Option customizes a Selector or MultiSelector at construction time.
type Option func(*fieldConfig)

// WithDisplayFunc overrides how option values are turned into item labels.
func WithDisplayFunc(f func(any) string) Option {
	return func(c *fieldConfig) { c.displayFunc = f }
}

// WithLeftMargin overrides the width of the label column for this selector.
func WithLeftMargin(n int) Option {
	return func(c *fieldConfig) { c.leftMargin = &n }
}

// WithLabelOnTop renders the prompt above the item column instead of beside
// it. A prompt wider than the label column is placed on top regardless.
func WithLabelOnTop(on bool) Option {
	return func(c *fieldConfig) { c.labelOnTop = &on }
}

// WithPageSize overrides how far PageUp/PageDown move the cursor.
func WithPageSize(n int) Option {
	return func(c *fieldConfig) { c.pageSize = &n }
}

// WithDisabled marks the options at the given indexes as not selectable.
// The cursor skips disabled items and activate never changes their state.
func WithDisabled(indexes ...int) Option {
	return func(c *fieldConfig) { c.disabled = append(c.disabled, indexes...) }
}

// WithDefault pre-selects the option at the given index on a Selector. The
// index may point at a disabled item; this is the only way a disabled item
// can end up selected.
func WithDefault(index int) Option {
	return func(c *fieldConfig) { c.defaultIdx = &index }
}

// WithDefaults pre-selects the options at the given indexes on a
// MultiSelector. Calling WithDefaults with no indexes supplies an explicit
// empty default set, which makes an all-deselected result an empty slice
// rather than nil.
func WithDefaults(indexes ...int) Option {
	return func(c *fieldConfig) {
		c.defaults = append(c.defaults, indexes...)
		c.hasDefaults = true
	}
}

// FormConfig sets form-wide defaults that individual selectors may override.
// Zero values fall back to builtin defaults.
type FormConfig struct {
	// DisplayFunc turns option values into item labels. Defaults to
	// fmt.Sprint.
	DisplayFunc func(any) string
	// LeftMargin is the width of the label column. Defaults to 8.
	LeftMargin int
	// LabelOnTop renders every prompt above its item column.
	LabelOnTop bool
	// PageSize is how far PageUp/PageDown move the cursor. Defaults to 8.
	PageSize int
	// KeyMap overrides the default keybindings.
	KeyMap *KeyMap
}
