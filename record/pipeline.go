package record

import (
	"github.com/TwistingTwists/estructura/schema"
)

// runPipeline runs the per-field stages on an input value and returns the
// value to commit. Order is fixed: coercion first, validation second, so a
// validation hook only ever sees coerced values. A field selected for a
// stage but given no hook runs the identity stage.
func runPipeline(s *schema.Schema, field string, value any) (any, error) {
	v := value

	if s.Coerces(field) {
		if hook, ok := s.CoerceHook(field); ok {
			out, err := hook(v)
			if err != nil {
				return nil, &PipelineError{Field: field, Stage: StageCoerce, Reason: err}
			}

			v = out
		}
	}

	if s.Validates(field) {
		if hook, ok := s.ValidateHook(field); ok {
			out, err := hook(v)
			if err != nil {
				return nil, &PipelineError{Field: field, Stage: StageValidate, Reason: err}
			}

			v = out
		}
	}

	return v, nil
}
