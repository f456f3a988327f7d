// Package generate composes per-field generator descriptions into a
// generator of whole records for property-style tests.
//
// Each field resolves to exactly one description: an explicit override, the
// schema's declarative spec, or the documented fallback of a constant
// generator over the field's default value. The composed generator produces
// a lazy, infinite sequence; restarting it requests a fresh sequence from
// the same descriptions with a fresh random source, so no hidden state
// crosses invocations.
//
// Generated records bypass the validation pipeline: description authors are
// responsible for producing values that already satisfy validation, since
// the pipeline guards external input, not test fixtures.
package generate
