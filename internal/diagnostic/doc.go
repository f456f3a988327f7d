// Package diagnostic provides structured, coded errors for schema
// configuration validation.
//
// Key capabilities:
//   - Collect every configuration defect in one pass instead of stopping
//     at the first
//   - Stable codes for programmatic matching in tests
//   - Collapse into a single error for the fail-fast setup path
package diagnostic
