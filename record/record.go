package record

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"

	"github.com/TwistingTwists/estructura/schema"
)

// Record is an immutable field-name-to-value mapping matching its Schema's
// field set exactly. The zero value has no schema and rejects every
// operation.
type Record struct {
	schema *schema.Schema
	values map[string]any
}

// New builds a record holding every field's default value.
func New(s *schema.Schema) Record {
	values := make(map[string]any, s.Len())
	for _, f := range s.Fields() {
		values[f.Name] = f.Default
	}

	return Record{schema: s, values: values}
}

// Make builds a record from an explicit value set, bypassing the pipeline.
// The value set must match the schema's field set exactly: no missing, no
// extra fields. This is the fixture path used by the generator composer;
// external input belongs in Put.
func Make(s *schema.Schema, values map[string]any) (Record, error) {
	for name := range values {
		if !s.Has(name) {
			return Record{}, unknownField(name)
		}
	}

	copied := make(map[string]any, s.Len())

	for _, name := range s.FieldNames() {
		v, ok := values[name]
		if !ok {
			return Record{}, fmt.Errorf("missing value for field %q", name)
		}

		copied[name] = v
	}

	return Record{schema: s, values: copied}, nil
}

// Schema returns the schema this record was built against.
func (r Record) Schema() *schema.Schema {
	return r.schema
}

// Get returns the committed value of a field. Reading does not require the
// access capability; only writes route through the pipeline.
func (r Record) Get(field string) (any, error) {
	v, ok := r.values[field]
	if !ok {
		return nil, unknownField(field)
	}

	return v, nil
}

// Fetch is the comma-ok variant of Get.
func (r Record) Fetch(field string) (any, bool) {
	v, ok := r.values[field]
	return v, ok
}

// Put writes a value to a field through the coercion→validation pipeline
// and returns the new record. On any failure the returned record is the
// receiver, unchanged.
func (r Record) Put(field string, value any) (Record, error) {
	if r.schema == nil || !r.schema.Access() {
		return r, ErrAccessDisabled
	}

	if !r.schema.Has(field) {
		return r, unknownField(field)
	}

	committed, err := runPipeline(r.schema, field, value)
	if err != nil {
		return r, err
	}

	next := r.clone()
	next.values[field] = committed

	return next, nil
}

// Update fetches a field, transforms it, and writes the result back through
// the same pipeline as Put.
func (r Record) Update(field string, updater func(any) any) (Record, error) {
	if r.schema == nil || !r.schema.Access() {
		return r, ErrAccessDisabled
	}

	current, err := r.Get(field)
	if err != nil {
		return r, err
	}

	return r.Put(field, updater(current))
}

// Pop reads a field's value and resets the field to its schema default.
// The field set is fixed, so pop means "read, then reset", never removal.
func (r Record) Pop(field string) (any, Record, error) {
	if r.schema == nil || !r.schema.Access() {
		return nil, r, ErrAccessDisabled
	}

	current, err := r.Get(field)
	if err != nil {
		return nil, r, err
	}

	def, _ := r.schema.Default(field)

	next := r.clone()
	next.values[field] = def

	return current, next, nil
}

// Snapshot returns a copy of the record's current values. It is the raw,
// capability-independent view used by collectors and generators.
func (r Record) Snapshot() map[string]any {
	out := make(map[string]any, len(r.values))
	for k, v := range r.values {
		out[k] = v
	}

	return out
}

// Dump returns a spew rendering of the record's values for debugging.
func (r Record) Dump() string {
	return spew.Sdump(r.values)
}

func (r Record) clone() Record {
	return Record{schema: r.schema, values: r.Snapshot()}
}
