package schema

import (
	"errors"
	"fmt"
)

// Config is the declarative capability configuration for one record type.
// This is the authoritative, human-reviewed declaration surface; Resolve
// turns it into an immutable Schema.
type Config struct {
	// Access enables the read/write pipeline (Get/Fetch/Put/Update/Pop).
	Access bool `yaml:"access"`

	// Coercion selects which fields run a coercion stage on write.
	// Only takes effect when Access is enabled.
	Coercion FieldSelector `yaml:"coercion,omitempty"`

	// Validation selects which fields run a validation stage on write.
	// Only takes effect when Access is enabled.
	Validation FieldSelector `yaml:"validation,omitempty"`

	// Enumerable enables the ordered (field, value) iteration view.
	Enumerable bool `yaml:"enumerable"`

	// Collectable names the single field that receives accumulated
	// elements, or is empty when the capability is off.
	Collectable string `yaml:"collectable,omitempty"`

	// Fields declares the record's field set, in order.
	Fields []FieldDef `yaml:"fields"`

	// Generators maps field names to declarative generator specs.
	// Fields without a spec fall back to a constant generator over the
	// field's default value.
	Generators map[string]GeneratorSpec `yaml:"generators,omitempty"`

	// Coerce and Validate carry the per-field hook functions supplied by
	// the record type's owner. Keys are field names; values are functions
	// in any shape ParseHook recognizes. Programmatic only.
	Coerce   map[string]any `yaml:"-"`
	Validate map[string]any `yaml:"-"`
}

// FieldDef declares one field: its name, default value, and, for the
// collectable target, its container kind.
//
// YAML formats supported:
//   - Simple string: "name"
//   - Full object: {name: bar, default: [], kind: sequence}
type FieldDef struct {
	Name    string `yaml:"name"`
	Default any    `yaml:"default,omitempty"`
	Kind    string `yaml:"kind,omitempty"`
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (f *FieldDef) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err == nil {
		f.Name = s
		return nil
	}

	// Avoid recursing into this method.
	type plain FieldDef

	var p plain
	if err := unmarshal(&p); err == nil {
		*f = FieldDef(p)
		return nil
	}

	return errors.New("expected field name or {name, default, kind} object")
}

// MarshalYAML implements yaml.Marshaler.
func (f FieldDef) MarshalYAML() (any, error) {
	if f.Default == nil && f.Kind == "" {
		return f.Name, nil
	}

	type plain FieldDef

	return plain(f), nil
}

// FieldSelector selects the fields participating in a pipeline stage.
//
// YAML formats supported:
//   - Scalar "none" (or false): no fields
//   - Scalar "all" (or true): every declared field
//   - List of field names: exactly those fields
type FieldSelector struct {
	All    bool
	Fields []string
}

// IsZero returns true if the selector selects nothing.
func (s FieldSelector) IsZero() bool {
	return !s.All && len(s.Fields) == 0
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *FieldSelector) UnmarshalYAML(unmarshal func(any) error) error {
	var b bool
	if err := unmarshal(&b); err == nil {
		*s = FieldSelector{All: b}
		return nil
	}

	var scalar string
	if err := unmarshal(&scalar); err == nil {
		switch scalar {
		case "none", "":
			*s = FieldSelector{}
			return nil
		case "all":
			*s = FieldSelector{All: true}
			return nil
		default:
			return fmt.Errorf("unrecognized selector %q, expected none, all, or a field list", scalar)
		}
	}

	var list []string
	if err := unmarshal(&list); err == nil {
		*s = FieldSelector{Fields: list}
		return nil
	}

	return errors.New("expected none, all, or a list of field names")
}

// MarshalYAML implements yaml.Marshaler.
func (s FieldSelector) MarshalYAML() (any, error) {
	switch {
	case s.All:
		return "all", nil
	case len(s.Fields) > 0:
		return s.Fields, nil
	default:
		return "none", nil
	}
}

// GeneratorSpec is a declarative description of how to produce candidate
// values for one field.
//
// Recognized kinds:
//   - const: always Value
//   - int: integers in [Min, Max]
//   - float: floats in [Min, Max)
//   - string: alphabetic strings up to MaxLen runes
//   - bool: true or false
//   - oneof: uniformly one of Values
//   - uuid: RFC 4122 identifier strings
type GeneratorSpec struct {
	Kind   string  `yaml:"kind"`
	Min    float64 `yaml:"min,omitempty"`
	Max    float64 `yaml:"max,omitempty"`
	MaxLen int     `yaml:"max_len,omitempty"`
	Values []any   `yaml:"values,omitempty"`
	Value  any     `yaml:"value,omitempty"`
}

// specKinds lists the recognized generator spec kinds.
var specKinds = map[string]struct{}{
	"const":  {},
	"int":    {},
	"float":  {},
	"string": {},
	"bool":   {},
	"oneof":  {},
	"uuid":   {},
}

// check reports a reason the spec is malformed, or an empty string.
func (g GeneratorSpec) check() string {
	if _, ok := specKinds[g.Kind]; !ok {
		return fmt.Sprintf("unknown generator kind %q", g.Kind)
	}

	switch g.Kind {
	case "int", "float":
		if g.Min > g.Max {
			return fmt.Sprintf("generator range is inverted: min %v > max %v", g.Min, g.Max)
		}
	case "oneof":
		if len(g.Values) == 0 {
			return "oneof generator needs at least one value"
		}
	case "string":
		if g.MaxLen < 0 {
			return fmt.Sprintf("string generator max_len %d is negative", g.MaxLen)
		}
	}

	return ""
}
