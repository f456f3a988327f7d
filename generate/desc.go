package generate

import (
	"iter"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/TwistingTwists/estructura/utils"
)

// Desc describes how to produce candidate values for one field.
type Desc interface {
	// Values returns a fresh, lazy, infinite sequence of candidate values
	// drawn from the given random source.
	Values(rng *rand.Rand) iter.Seq[any]
}

type descFunc func(rng *rand.Rand) iter.Seq[any]

func (f descFunc) Values(rng *rand.Rand) iter.Seq[any] {
	return f(rng)
}

// repeat lifts a single-value draw into an infinite sequence.
func repeat(next func(rng *rand.Rand) any) Desc {
	return descFunc(func(rng *rand.Rand) iter.Seq[any] {
		return func(yield func(any) bool) {
			for yield(next(rng)) {
			}
		}
	})
}

// Const always produces v.
func Const(v any) Desc {
	return repeat(func(*rand.Rand) any { return v })
}

// IntRange produces int64 values in [min, max], both inclusive.
func IntRange(min, max int64) Desc {
	min, max = utils.Ordered(min, max)

	return repeat(func(rng *rand.Rand) any {
		return min + rng.Int64N(max-min+1)
	})
}

// FloatRange produces float64 values in [min, max).
func FloatRange(min, max float64) Desc {
	min, max = utils.Ordered(min, max)

	return repeat(func(rng *rand.Rand) any {
		return min + rng.Float64()*(max-min)
	})
}

const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Alpha produces alphabetic strings of up to maxLen runes.
func Alpha(maxLen int) Desc {
	return repeat(func(rng *rand.Rand) any {
		n := rng.IntN(maxLen + 1)
		buf := make([]byte, n)

		for i := range buf {
			buf[i] = alphabet[rng.IntN(len(alphabet))]
		}

		return string(buf)
	})
}

// Bool produces true or false.
func Bool() Desc {
	return repeat(func(rng *rand.Rand) any {
		return rng.Uint64()&1 == 1
	})
}

// OneOf produces a uniform choice among vs. Panics when vs is empty, since
// an empty choice is a programming error in the description.
func OneOf(vs ...any) Desc {
	if len(vs) == 0 {
		panic("oneof description needs at least one value")
	}

	return repeat(func(rng *rand.Rand) any {
		return vs[rng.IntN(len(vs))]
	})
}

// UUID produces RFC 4122 identifier strings. Draws come from the uuid
// package's own entropy, not the sequence's random source, so two fresh
// sequences with the same seed differ in their uuid fields.
func UUID() Desc {
	return repeat(func(*rand.Rand) any {
		return uuid.NewString()
	})
}

// Stream wraps a user-supplied zero-argument primitive: each invocation of
// the composed generator calls fn once for a fresh sequence. A finite
// stream that runs dry ends the whole record sequence.
func Stream(fn func() iter.Seq[any]) Desc {
	return descFunc(func(*rand.Rand) iter.Seq[any] {
		return fn()
	})
}
