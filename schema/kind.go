package schema

import "strings"

//go:generate go tool stringer -type=ContainerKind -trimprefix=Kind

// ContainerKind identifies the accumulation semantics of the collectable
// target field.
type ContainerKind int

const (
	KindUnknown ContainerKind = iota
	KindSequence
	KindMapping
	KindSet
	KindText

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// ParseKind maps a configuration string onto a ContainerKind.
// Recognized spellings: "sequence"/"list", "mapping"/"map", "set",
// "text"/"string".
func ParseKind(s string) (ContainerKind, bool) {
	switch strings.ToLower(s) {
	case "sequence", "list":
		return KindSequence, true
	case "mapping", "map":
		return KindMapping, true
	case "set":
		return KindSet, true
	case "text", "string":
		return KindText, true
	default:
		return KindUnknown, false
	}
}
