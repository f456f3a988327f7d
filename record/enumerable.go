package record

import "iter"

// Pair is one (field, value) element of the enumeration view.
type Pair struct {
	Name  string
	Value any
}

// All returns a finite, restartable sequence of (field, value) pairs in the
// schema's declared order. It reflects committed state only; no coercion or
// validation runs during iteration. A schema without the enumerable
// capability yields nothing.
func (r Record) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		if r.schema == nil || !r.schema.Enumerable() {
			return
		}

		for _, name := range r.schema.FieldNames() {
			if !yield(name, r.values[name]) {
				return
			}
		}
	}
}

// Pairs collects the enumeration into a slice.
func (r Record) Pairs() []Pair {
	var out []Pair
	for name, v := range r.All() {
		out = append(out, Pair{Name: name, Value: v})
	}

	return out
}

// Len counts the enumerated fields.
func (r Record) Len() int {
	n := 0
	for range r.All() {
		n++
	}

	return n
}

// Contains reports whether the enumeration yields the given field.
func (r Record) Contains(field string) bool {
	for name := range r.All() {
		if name == field {
			return true
		}
	}

	return false
}
