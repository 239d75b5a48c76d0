package curselect

import "errors"

var (
	// ErrInvalidConfiguration is returned when a Selector or MultiSelector is
	// constructed with an empty option list, an out-of-range default or
	// disabled index, or conflicting options. It is never returned after
	// construction.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrDuplicateField is returned by Form.Add when the field name is
	// already in use.
	ErrDuplicateField = errors.New("duplicate field name")

	// ErrEmptyForm is returned by Form.Run when no fields were added.
	ErrEmptyForm = errors.New("form has no fields")
)
