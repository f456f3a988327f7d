// Package schema provides the declarative capability configuration for a
// record type, its parsing from YAML, and its resolution into an immutable
// Schema.
//
// A Config declares which structural capabilities a record type carries:
//
//	access: true
//	coercion: [foo]
//	validation: all
//	enumerable: true
//	collectable: bar
//	fields:
//	  - foo
//	  - name: bar
//	    kind: sequence
//	    default: []
//	generators:
//	  foo: {kind: int, min: 0, max: 100}
//
// Resolution happens once per record type and fails fast: every invariant
// violation (collect target not declared, coercion list naming an unknown
// field, coercion enabled without access, malformed generator spec) is a
// configuration defect reported before any record value is processed.
//
// # Key capabilities
//
//   - Flexible YAML shapes: selectors accept "none", "all", or a field list;
//     fields accept a bare name or a {name, default, kind} object
//   - Per-field coercion/validation hooks adapted from several supported
//     function shapes (see ParseHook)
//   - A single collectable target tagged with its container kind
//   - Declarative per-field generator specs with a documented fallback:
//     fields without a spec generate their default value as a constant
package schema
