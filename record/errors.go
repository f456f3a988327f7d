package record

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownField reports access to a field not present in the schema.
	ErrUnknownField = errors.New("unknown field")

	// ErrAccessDisabled reports a write on a record whose schema does not
	// enable the access capability.
	ErrAccessDisabled = errors.New("access capability is not enabled")
)

// Stage identifies which pipeline stage rejected a value.
type Stage int

const (
	StageCoerce Stage = iota
	StageValidate
)

// String returns a human-readable stage name.
func (s Stage) String() string {
	switch s {
	case StageCoerce:
		return "coerce"
	case StageValidate:
		return "validate"
	default:
		return "unknown"
	}
}

// PipelineError reports a value rejected by the coercion or validation
// stage. The record the caller holds is unchanged.
type PipelineError struct {
	Field  string
	Stage  Stage
	Reason error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s stage rejected field %q: %v", e.Stage, e.Field, e.Reason)
}

func (e *PipelineError) Unwrap() error {
	return e.Reason
}

func unknownField(field string) error {
	return fmt.Errorf("%w: %q", ErrUnknownField, field)
}
