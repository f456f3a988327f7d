package collect

import (
	"fmt"
	"reflect"
	"strings"
)

// accumulator is the per-kind capability set: accumulate one element,
// finalize into the target field's new value.
type accumulator interface {
	put(elem any) error
	value() any
}

type seqAcc struct {
	elems []any
}

func (a *seqAcc) put(elem any) error {
	a.elems = append(a.elems, elem)
	return nil
}

func (a *seqAcc) value() any {
	if a.elems == nil {
		return []any{}
	}

	return a.elems
}

type mapAcc struct {
	m map[any]any
}

func (a *mapAcc) put(elem any) error {
	entry, ok := elem.(Entry)
	if !ok {
		return fmt.Errorf("%w: mapping target requires collect.Entry, got %T", ErrTypeMismatch, elem)
	}

	if !hashable(entry.Key) {
		return fmt.Errorf("%w: mapping key %T is not comparable", ErrTypeMismatch, entry.Key)
	}

	a.m[entry.Key] = entry.Value

	return nil
}

func (a *mapAcc) value() any {
	return a.m
}

type setAcc struct {
	m map[any]struct{}
}

func (a *setAcc) put(elem any) error {
	if !hashable(elem) {
		return fmt.Errorf("%w: set element %T is not comparable", ErrTypeMismatch, elem)
	}

	a.m[elem] = struct{}{}

	return nil
}

func (a *setAcc) value() any {
	return a.m
}

type textAcc struct {
	sb strings.Builder
}

func (a *textAcc) put(elem any) error {
	s, ok := elem.(string)
	if !ok {
		return fmt.Errorf("%w: text target requires string fragments, got %T", ErrTypeMismatch, elem)
	}

	a.sb.WriteString(s)

	return nil
}

func (a *textAcc) value() any {
	return a.sb.String()
}

// hashable guards map insertion: a non-comparable dynamic type would panic.
func hashable(v any) bool {
	if v == nil {
		return true
	}

	return reflect.TypeOf(v).Comparable()
}
