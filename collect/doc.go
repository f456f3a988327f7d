// Package collect accumulates a stream of elements into a record's
// designated collectable target field.
//
// Dispatch over the target's container kind happens once, when accumulation
// begins; afterwards each element only passes the kind's compatibility
// guard. The four kinds and their semantics:
//
//   - Sequence: elements are appended in arrival order, finalized as []any
//   - Mapping: elements must be Entry values; last write wins; map[any]any
//   - Set: duplicates are absorbed without error; map[any]struct{}
//   - Text: elements must be strings, concatenated in arrival order; string
//
// An element incompatible with the kind is a fatal TypeMismatch for that
// accumulation: the collector refuses further work and the record is never
// touched, since finalize is the only point that produces a new record.
// Accumulation state is local to one Collector; concurrent collects on the
// same record cannot observe each other.
package collect
