package generate

import (
	"fmt"
	"iter"
	"math/rand/v2"

	"github.com/TwistingTwists/estructura/record"
	"github.com/TwistingTwists/estructura/schema"
)

type fieldGen struct {
	name string
	desc Desc
}

// Generator produces whole-record candidates with the field order fixed by
// the schema. Build one with Compose; it is immutable and safe to share.
type Generator struct {
	schema *schema.Schema
	fields []fieldGen
}

// Compose resolves one description per field. Resolution order: the
// override for that field, then the schema's declarative spec, then a
// constant generator over the field's default value.
func Compose(s *schema.Schema, overrides map[string]Desc) (*Generator, error) {
	for name := range overrides {
		if !s.Has(name) {
			return nil, fmt.Errorf("generator override for undeclared field %q", name)
		}
	}

	g := &Generator{schema: s}

	for _, f := range s.Fields() {
		var desc Desc

		switch {
		case overrides[f.Name] != nil:
			desc = overrides[f.Name]
		default:
			if spec, ok := s.GeneratorFor(f.Name); ok {
				desc = fromSpec(spec)
			} else {
				desc = Const(f.Default)
			}
		}

		g.fields = append(g.fields, fieldGen{name: f.Name, desc: desc})
	}

	return g, nil
}

// fromSpec maps a declarative spec onto a description. Resolve has already
// rejected malformed specs.
func fromSpec(spec schema.GeneratorSpec) Desc {
	switch spec.Kind {
	case "const":
		return Const(spec.Value)
	case "int":
		return IntRange(int64(spec.Min), int64(spec.Max))
	case "float":
		return FloatRange(spec.Min, spec.Max)
	case "string":
		maxLen := spec.MaxLen
		if maxLen == 0 {
			maxLen = 16
		}

		return Alpha(maxLen)
	case "bool":
		return Bool()
	case "oneof":
		return OneOf(spec.Values...)
	case "uuid":
		return UUID()
	default:
		return Const(spec.Value)
	}
}

// Seq returns an infinite, restartable sequence of record candidates.
// Every invocation builds a fresh random source from the seed, so a restart
// is a fresh sequence, never a resumption of a prior one. Records are built
// through the fixture path and never re-validated.
func (g *Generator) Seq(seed uint64) iter.Seq[record.Record] {
	return func(yield func(record.Record) bool) {
		rng := rand.New(rand.NewPCG(seed, 0x9e3779b97f4a7c15))

		pulls := make([]func() (any, bool), len(g.fields))
		for i, fg := range g.fields {
			next, stop := iter.Pull(fg.desc.Values(rng))
			pulls[i] = next

			defer stop()
		}

		for {
			values := make(map[string]any, len(g.fields))

			for i, fg := range g.fields {
				v, ok := pulls[i]()
				if !ok {
					// A user stream ran dry; the record sequence ends with it.
					return
				}

				values[fg.name] = v
			}

			rec, err := record.Make(g.schema, values)
			if err != nil {
				return
			}

			if !yield(rec) {
				return
			}
		}
	}
}

// Sample draws n records from one fresh sequence.
func (g *Generator) Sample(seed uint64, n int) []record.Record {
	out := make([]record.Record, 0, n)

	for rec := range g.Seq(seed) {
		out = append(out, rec)
		if len(out) == n {
			break
		}
	}

	return out
}
