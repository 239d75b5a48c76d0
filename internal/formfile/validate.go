package formfile

import (
	"fmt"
	"strings"

	"github.com/hay-kot/criterio"
)

// Validate performs structural validation of the definition: names are
// required and unique, types are recognized, index options are in range.
func (d *Definition) Validate() error {
	return criterio.ValidateStruct(
		d.validateFieldNames(),
		d.validateFieldTypes(),
		d.validateIndexes(),
	)
}

func (d *Definition) validateFieldNames() error {
	var errs criterio.FieldErrorsBuilder

	seen := make(map[string]bool, len(d.Fields))
	for i, f := range d.Fields {
		field := fmt.Sprintf("fields[%d].name", i)
		if strings.TrimSpace(f.Name) == "" {
			errs = errs.Append(field, fmt.Errorf("name is required"))
			continue
		}
		if seen[f.Name] {
			errs = errs.Append(field, fmt.Errorf("duplicate name %q", f.Name))
		}
		seen[f.Name] = true
	}
	return errs.ToError()
}

func (d *Definition) validateFieldTypes() error {
	var errs criterio.FieldErrorsBuilder

	for i, f := range d.Fields {
		if f.Type != TypeSelect && f.Type != TypeMultiSelect {
			errs = errs.Append(fmt.Sprintf("fields[%d].type", i),
				fmt.Errorf("must be %q or %q, got %q", TypeSelect, TypeMultiSelect, f.Type))
		}
		if len(f.Options) == 0 {
			errs = errs.Append(fmt.Sprintf("fields[%d].options", i),
				fmt.Errorf("at least one option is required"))
		}
	}
	return errs.ToError()
}

func (d *Definition) validateIndexes() error {
	var errs criterio.FieldErrorsBuilder

	for i, f := range d.Fields {
		n := len(f.Options)
		if f.Default != nil && (*f.Default < 0 || *f.Default >= n) {
			errs = errs.Append(fmt.Sprintf("fields[%d].default", i),
				fmt.Errorf("index %d out of range [0,%d)", *f.Default, n))
		}
		for _, idx := range f.Defaults {
			if idx < 0 || idx >= n {
				errs = errs.Append(fmt.Sprintf("fields[%d].defaults", i),
					fmt.Errorf("index %d out of range [0,%d)", idx, n))
			}
		}
		for _, idx := range f.Disabled {
			if idx < 0 || idx >= n {
				errs = errs.Append(fmt.Sprintf("fields[%d].disabled", i),
					fmt.Errorf("index %d out of range [0,%d)", idx, n))
			}
		}
	}
	return errs.ToError()
}
