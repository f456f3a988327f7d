package schema

import (
	"fmt"

	"github.com/TwistingTwists/estructura/internal/common"
	"github.com/TwistingTwists/estructura/internal/diagnostic"
)

// Field is one resolved field: its name and default value.
type Field struct {
	Name    string
	Default any
}

// Schema is the resolved, immutable form of a Config. It is computed once
// per record type and carries all per-type variability as data; every record
// operation consults it without mutating it, so concurrent use needs no
// locking.
type Schema struct {
	fields []Field
	index  map[string]int

	access     bool
	enumerable bool

	coerceOn   map[string]struct{}
	validateOn map[string]struct{}
	coerce     map[string]Hook
	validate   map[string]Hook

	target     string
	targetKind ContainerKind

	generators map[string]GeneratorSpec
}

// Resolve validates a Config and builds the Schema. This is a structural,
// fail-fast validation step: every defect is a programming error in the
// declaration, reported before any record value is processed.
func Resolve(cfg Config) (*Schema, error) {
	res := &diagnostic.Diagnostics{}

	s := &Schema{
		index:      map[string]int{},
		access:     cfg.Access,
		enumerable: cfg.Enumerable,
		generators: map[string]GeneratorSpec{},
	}

	if common.IsEmpty(cfg.Fields) {
		res.AddError("no_fields", "config declares no fields", "")
	}

	for _, fd := range cfg.Fields {
		if fd.Name == "" {
			res.AddError("unnamed_field", "field declaration has no name", "")
			continue
		}

		if _, dup := s.index[fd.Name]; dup {
			res.AddError("duplicate_field", fmt.Sprintf("field %q declared twice", fd.Name), fd.Name)
			continue
		}

		s.index[fd.Name] = len(s.fields)
		s.fields = append(s.fields, Field{Name: fd.Name, Default: fd.Default})
	}

	s.coerceOn = resolveSelector(res, "coercion", cfg.Coercion, s)
	s.validateOn = resolveSelector(res, "validation", cfg.Validation, s)

	// Pipeline stages are only reachable through the access view; enabling
	// them without it is a declaration defect, not a combination to ignore.
	if !cfg.Access && !cfg.Coercion.IsZero() {
		res.AddError("coercion_without_access", "coercion is enabled but access is not", "")
	}

	if !cfg.Access && !cfg.Validation.IsZero() {
		res.AddError("validation_without_access", "validation is enabled but access is not", "")
	}

	resolveTarget(res, cfg, s)

	for name, spec := range cfg.Generators {
		if !s.Has(name) {
			res.AddError("generator_unknown_field",
				fmt.Sprintf("generator spec for undeclared field %q", name), name)
			continue
		}

		if reason := spec.check(); reason != "" {
			res.AddError("bad_generator_spec", reason, name)
			continue
		}

		s.generators[name] = spec
	}

	s.coerce = resolveHooks(res, "coerce", cfg.Coerce, s.coerceOn, s)
	s.validate = resolveHooks(res, "validate", cfg.Validate, s.validateOn, s)

	if err := res.Error(); err != nil {
		return nil, fmt.Errorf("invalid record config: %w", err)
	}

	return s, nil
}

// resolveSelector expands a FieldSelector into a membership set.
func resolveSelector(res *diagnostic.Diagnostics, what string, sel FieldSelector, s *Schema) map[string]struct{} {
	on := map[string]struct{}{}

	if sel.All {
		for _, f := range s.fields {
			on[f.Name] = struct{}{}
		}

		return on
	}

	for _, name := range common.Dedup(sel.Fields) {
		if !s.Has(name) {
			res.AddError(what+"_unknown_field",
				fmt.Sprintf("%s list names undeclared field %q", what, name), name)
			continue
		}

		on[name] = struct{}{}
	}

	return on
}

// resolveTarget resolves the collectable declaration, if any.
func resolveTarget(res *diagnostic.Diagnostics, cfg Config, s *Schema) {
	for _, fd := range cfg.Fields {
		if fd.Kind != "" && fd.Name != cfg.Collectable {
			res.AddWarning("kind_ignored",
				fmt.Sprintf("container kind on %q is ignored: it is not the collectable target", fd.Name), fd.Name)
		}
	}

	if cfg.Collectable == "" {
		return
	}

	if !s.Has(cfg.Collectable) {
		res.AddError("unknown_collect_target",
			fmt.Sprintf("collectable target %q is not a declared field", cfg.Collectable), cfg.Collectable)
		return
	}

	s.target = cfg.Collectable
	s.targetKind = KindSequence

	for _, fd := range cfg.Fields {
		if fd.Name != cfg.Collectable || fd.Kind == "" {
			continue
		}

		kind, ok := ParseKind(fd.Kind)
		if !ok {
			res.AddError("bad_container_kind",
				fmt.Sprintf("unrecognized container kind %q", fd.Kind), fd.Name)
			return
		}

		s.targetKind = kind
	}
}

// resolveHooks normalizes the user-supplied hook functions for one stage.
// An enabled field with no hook runs the identity stage, so hooks are
// optional; a hook for an unselected field is almost certainly a typo and
// gets a warning.
func resolveHooks(res *diagnostic.Diagnostics, what string, raw map[string]any, on map[string]struct{}, s *Schema) map[string]Hook {
	hooks := map[string]Hook{}

	for name, fn := range raw {
		if !s.Has(name) {
			res.AddError(what+"_hook_unknown_field",
				fmt.Sprintf("%s hook for undeclared field %q", what, name), name)
			continue
		}

		if _, enabled := on[name]; !enabled {
			res.AddWarning(what+"_hook_unused",
				fmt.Sprintf("%s hook for %q supplied but the field is not selected", what, name), name)
			continue
		}

		hook, err := ParseHook(fn)
		if err != nil {
			res.AddError("bad_hook", fmt.Sprintf("%s hook for %q: %v", what, name, err), name)
			continue
		}

		hooks[name] = hook
	}

	return hooks
}

// Fields returns the declared fields in order.
func (s *Schema) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)

	return out
}

// FieldNames returns the declared field names in order.
func (s *Schema) FieldNames() []string {
	out := make([]string, len(s.fields))
	for i, f := range s.fields {
		out[i] = f.Name
	}

	return out
}

// Len returns the number of declared fields.
func (s *Schema) Len() int {
	return len(s.fields)
}

// Has returns true if name is a declared field.
func (s *Schema) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Default returns the default value for a field and true, or nil and false
// for an undeclared field.
func (s *Schema) Default(name string) (any, bool) {
	i, ok := s.index[name]
	if !ok {
		return nil, false
	}

	return s.fields[i].Default, true
}

// Access reports whether the read/write pipeline is enabled.
func (s *Schema) Access() bool {
	return s.access
}

// Enumerable reports whether the iteration view is enabled.
func (s *Schema) Enumerable() bool {
	return s.enumerable
}

// Coerces reports whether the field runs a coercion stage on write.
func (s *Schema) Coerces(name string) bool {
	_, ok := s.coerceOn[name]
	return ok
}

// Validates reports whether the field runs a validation stage on write.
func (s *Schema) Validates(name string) bool {
	_, ok := s.validateOn[name]
	return ok
}

// CoerceHook returns the coercion hook for a field, if one was supplied.
func (s *Schema) CoerceHook(name string) (Hook, bool) {
	h, ok := s.coerce[name]
	return h, ok
}

// ValidateHook returns the validation hook for a field, if one was supplied.
func (s *Schema) ValidateHook(name string) (Hook, bool) {
	h, ok := s.validate[name]
	return h, ok
}

// Target returns the collectable target field and its container kind, or
// false when the capability is off.
func (s *Schema) Target() (string, ContainerKind, bool) {
	if s.target == "" {
		return "", KindUnknown, false
	}

	return s.target, s.targetKind, true
}

// GeneratorFor returns the declarative generator spec for a field, if any.
func (s *Schema) GeneratorFor(name string) (GeneratorSpec, bool) {
	spec, ok := s.generators[name]
	return spec, ok
}
