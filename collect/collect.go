package collect

import (
	"errors"
	"fmt"
	"iter"

	"github.com/TwistingTwists/estructura/record"
	"github.com/TwistingTwists/estructura/schema"
)

var (
	// ErrNoTarget reports a collect on a schema without a collectable target.
	ErrNoTarget = errors.New("schema declares no collectable target")

	// ErrTypeMismatch reports an element incompatible with the target's
	// container kind. Fatal for the in-progress accumulation.
	ErrTypeMismatch = errors.New("element type mismatches container kind")

	// ErrFinalized reports use of a collector after Finalize.
	ErrFinalized = errors.New("collector already finalized")
)

// Entry is the element shape required by mapping-kind targets.
type Entry struct {
	Key, Value any
}

type halt struct{}

// Halt is the sentinel element a source yields to stop accumulation early.
// The dispatcher finalizes with whatever has been accumulated so far, which
// is how infinite sources terminate.
var Halt any = halt{}

// Collector accumulates elements for one in-progress collect operation.
type Collector struct {
	rec    record.Record
	target string
	acc    accumulator
	failed error
	done   bool
}

// Into resolves the record's collectable target and its container kind and
// returns a collector for one accumulation. The kind dispatch happens here,
// once, not per element.
func Into(r record.Record) (*Collector, error) {
	s := r.Schema()
	if s == nil {
		return nil, ErrNoTarget
	}

	target, kind, ok := s.Target()
	if !ok {
		return nil, ErrNoTarget
	}

	acc := dispatch(kind)
	if acc == nil {
		return nil, fmt.Errorf("no accumulator for container kind %s", kind)
	}

	return &Collector{rec: r, target: target, acc: acc}, nil
}

// Put accumulates one element. A kind mismatch poisons the collector: the
// error sticks and Finalize never runs.
func (c *Collector) Put(elem any) error {
	if c.failed != nil {
		return c.failed
	}

	if c.done {
		return ErrFinalized
	}

	if err := c.acc.put(elem); err != nil {
		c.failed = err
		return err
	}

	return nil
}

// Finalize replaces the target field's prior value with the accumulated
// result and returns the new record. The original record is untouched.
func (c *Collector) Finalize() (record.Record, error) {
	if c.failed != nil {
		return c.rec, c.failed
	}

	if c.done {
		return c.rec, ErrFinalized
	}

	c.done = true

	values := c.rec.Snapshot()
	values[c.target] = c.acc.value()

	return record.Make(c.rec.Schema(), values)
}

// Collect drains src into the record's collectable target and finalizes.
// A Halt element ends accumulation early, keeping infinite sources usable.
func Collect(r record.Record, src iter.Seq[any]) (record.Record, error) {
	c, err := Into(r)
	if err != nil {
		return r, err
	}

	for elem := range src {
		if _, stop := elem.(halt); stop {
			break
		}

		if err := c.Put(elem); err != nil {
			return r, err
		}
	}

	return c.Finalize()
}

// dispatch resolves the accumulator variant for a container kind.
func dispatch(kind schema.ContainerKind) accumulator {
	switch kind {
	case schema.KindSequence:
		return &seqAcc{}
	case schema.KindMapping:
		return &mapAcc{m: map[any]any{}}
	case schema.KindSet:
		return &setAcc{m: map[any]struct{}{}}
	case schema.KindText:
		return &textAcc{}
	default:
		return nil
	}
}
