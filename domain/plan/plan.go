// Package plan holds the four-field plan a visitor picks in the demo and the
// calculator that turns it into a cost breakdown and a smart analysis.
package plan

import (
	"fmt"
	"slices"
	"sort"
	"strings"
)

// Field names one of the four plan inputs.
type Field string

const (
	FieldRooms  Field = "rooms"
	FieldStyle  Field = "style"
	FieldBudget Field = "budget"
	FieldSize   Field = "size"
)

// FieldSpec describes how a field is presented in the plan form.
type FieldSpec struct {
	Field   Field    `json:"key" yaml:"key"`
	Label   string   `json:"label" yaml:"label"`
	Options []string `json:"options" yaml:"options"`
}

var fieldSpecs = []FieldSpec{
	{
		Field:   FieldRooms,
		Label:   "Number of Rooms",
		Options: []string{"2 Rooms", "3 Rooms", "4 Rooms", "5+ Rooms"},
	},
	{
		Field:   FieldStyle,
		Label:   "Style Preference",
		Options: []string{"Modern", "Traditional", "Minimalist", "Industrial"},
	},
	{
		Field:   FieldBudget,
		Label:   "Budget Range",
		Options: []string{"$50k - $100k", "$100k - $200k", "$200k - $500k", "$500k+"},
	},
	{
		Field:   FieldSize,
		Label:   "House Size",
		Options: []string{"Small (< 1500 sq ft)", "Medium (1500-2500 sq ft)", "Large (2500-4000 sq ft)", "Extra Large (4000+ sq ft)"},
	},
}

// Fields returns the form fields in display order. The returned slice is a
// copy and may be modified by the caller.
func Fields() []FieldSpec {
	out := make([]FieldSpec, len(fieldSpecs))
	for i, spec := range fieldSpecs {
		spec.Options = slices.Clone(spec.Options)
		out[i] = spec
	}
	return out
}

// Spec returns the form spec for a single field.
func Spec(f Field) (FieldSpec, bool) {
	for _, spec := range fieldSpecs {
		if spec.Field == f {
			spec.Options = slices.Clone(spec.Options)
			return spec, true
		}
	}
	return FieldSpec{}, false
}

// ParseField resolves a field name, case-insensitively.
func ParseField(name string) (Field, error) {
	f := Field(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := Spec(f); !ok {
		return "", fmt.Errorf("unknown plan field %q", name)
	}
	return f, nil
}

// Details is the visitor's selection. Each field is either empty or one of the
// options for that field; every combination, including all-empty, is valid
// input to the calculator.
type Details struct {
	Rooms  string `json:"rooms" yaml:"rooms"`
	Style  string `json:"style" yaml:"style"`
	Budget string `json:"budget" yaml:"budget"`
	Size   string `json:"size" yaml:"size"`
}

// Get returns the value of one field.
func (d Details) Get(f Field) string {
	switch f {
	case FieldRooms:
		return d.Rooms
	case FieldStyle:
		return d.Style
	case FieldBudget:
		return d.Budget
	case FieldSize:
		return d.Size
	}
	return ""
}

// Set updates one field. Unknown fields are ignored.
func (d *Details) Set(f Field, value string) {
	switch f {
	case FieldRooms:
		d.Rooms = value
	case FieldStyle:
		d.Style = value
	case FieldBudget:
		d.Budget = value
	case FieldSize:
		d.Size = value
	}
}

// Reset clears all four fields.
func (d *Details) Reset() {
	*d = Details{}
}

// IsEmpty reports whether no field has been chosen.
func (d Details) IsEmpty() bool {
	return d == Details{}
}

// ValidationError lists fields whose value is not in the option catalog.
type ValidationError struct {
	Invalid map[Field]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Invalid))
	for f := range e.Invalid {
		keys = append(keys, string(f))
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%q", k, e.Invalid[Field(k)]))
	}
	return "invalid plan options: " + strings.Join(parts, ", ")
}

// Validate checks every non-empty field against its option list. The
// calculator never calls this; it is for callers that want strict input.
func (d Details) Validate() error {
	invalid := make(map[Field]string)
	for _, spec := range fieldSpecs {
		v := d.Get(spec.Field)
		if v == "" {
			continue
		}
		if !slices.Contains(spec.Options, v) {
			invalid[spec.Field] = v
		}
	}
	if len(invalid) == 0 {
		return nil
	}
	return &ValidationError{Invalid: invalid}
}
