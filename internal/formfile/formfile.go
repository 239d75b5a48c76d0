// Package formfile loads YAML form definitions for the demo binary and
// turns them into runnable curselect forms.
package formfile

import (
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/colonyops/curselect"
)

// Field types supported in form definition files.
const (
	TypeSelect      = "select"
	TypeMultiSelect = "multi-select"
)

// Definition is one YAML form definition.
type Definition struct {
	Title      string  `yaml:"title"`
	LeftMargin int     `yaml:"left_margin"`
	LabelOnTop bool    `yaml:"label_on_top"`
	PageSize   int     `yaml:"page_size"`
	Fields     []Field `yaml:"fields"`
}

// Field defines a single selection list in a form definition.
type Field struct {
	Name     string   `yaml:"name"`     // result map key
	Label    string   `yaml:"label"`    // prompt shown next to the list
	Type     string   `yaml:"type"`     // select or multi-select
	Options  []string `yaml:"options"`  // item labels, in display order
	Default  *int     `yaml:"default"`  // select: pre-selected index
	Defaults []int    `yaml:"defaults"` // multi-select: pre-selected indexes
	Disabled []int    `yaml:"disabled"` // indexes that cannot be selected
	PageSize int      `yaml:"page_size"`
}

// Load reads and parses a form definition file.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read form definition: %w", err)
	}

	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parse form definition %s: %w", path, err)
	}

	if err := def.Validate(); err != nil {
		return nil, fmt.Errorf("validate form definition %s: %w", path, err)
	}
	return &def, nil
}

// Discover returns form definition files matching a doublestar glob
// pattern, e.g. "forms/**/*.yaml".
func Discover(pattern string) ([]string, error) {
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", pattern, err)
	}
	return matches, nil
}

// Build constructs a runnable form from the definition. Field-level settings
// override the definition-level ones through the form's layered lookup.
func (d *Definition) Build() (*curselect.Form, error) {
	form := curselect.NewForm(curselect.FormConfig{
		LeftMargin: d.LeftMargin,
		LabelOnTop: d.LabelOnTop,
		PageSize:   d.PageSize,
	})

	for _, f := range d.Fields {
		var opts []curselect.Option
		if len(f.Disabled) > 0 {
			opts = append(opts, curselect.WithDisabled(f.Disabled...))
		}
		if f.PageSize > 0 {
			opts = append(opts, curselect.WithPageSize(f.PageSize))
		}

		var (
			sel curselect.SelectorField
			err error
		)
		switch f.Type {
		case TypeSelect:
			if f.Default != nil {
				opts = append(opts, curselect.WithDefault(*f.Default))
			}
			sel, err = curselect.NewSelector(f.Label, f.Options, opts...)
		case TypeMultiSelect:
			if f.Defaults != nil {
				opts = append(opts, curselect.WithDefaults(f.Defaults...))
			}
			sel, err = curselect.NewMultiSelector(f.Label, f.Options, opts...)
		default:
			return nil, fmt.Errorf("field %q: unknown type %q", f.Name, f.Type)
		}
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f.Name, err)
		}

		if err := form.Add(f.Name, sel); err != nil {
			return nil, err
		}
	}
	return form, nil
}
