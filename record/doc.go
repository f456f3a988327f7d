// Package record implements the immutable record value and the capabilities
// that operate on it: the field access view with its coercion→validation
// pipeline, and the ordered enumeration view.
//
// A Record is a field-name-to-value mapping matching its Schema's field set
// exactly. No operation mutates a record in place: every successful write
// returns a new value and every failure returns the original unchanged, so
// records are safe to share across goroutines without locking.
//
// Writes route through the field pipeline: the coercion stage (if the field
// is selected for coercion) runs first, the validation stage second on the
// coerced value, and the commit happens only when both stages accept. The
// pipeline is all-or-nothing per field.
package record
