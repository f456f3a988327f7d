package record_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TwistingTwists/estructura/record"
	"github.com/TwistingTwists/estructura/schema"
)

func TestAllYieldsDeclaredOrder(t *testing.T) {
	s := scenarioSchema(t)
	r := record.New(s)

	r, err := r.Put("foo", 3)
	require.NoError(t, err)

	var names []string

	for name, v := range r.All() {
		names = append(names, name)

		got, err := r.Get(name)
		require.NoError(t, err)
		assert.Equal(t, got, v)
	}

	assert.Equal(t, s.FieldNames(), names)
}

func TestAllIsRestartable(t *testing.T) {
	r := record.New(scenarioSchema(t))

	first := r.Pairs()
	second := r.Pairs()
	assert.Equal(t, first, second)
}

func TestAllEarlyBreak(t *testing.T) {
	r := record.New(scenarioSchema(t))

	n := 0
	for range r.All() {
		n++
		break
	}

	assert.Equal(t, 1, n)
}

func TestReductions(t *testing.T) {
	r := record.New(scenarioSchema(t))

	assert.Equal(t, 3, r.Len())
	assert.True(t, r.Contains("bar"))
	assert.False(t, r.Contains("baz"))

	pairs := r.Pairs()
	require.Len(t, pairs, 3)
	assert.Equal(t, record.Pair{Name: "foo", Value: 0}, pairs[0])
}

func TestAllWithoutEnumerable(t *testing.T) {
	cfg := schema.Config{
		Access: true,
		Fields: []schema.FieldDef{{Name: "foo", Default: 1}},
	}

	s, err := schema.Resolve(cfg)
	require.NoError(t, err)

	r := record.New(s)

	assert.Zero(t, r.Len())
	assert.Empty(t, r.Pairs())
	assert.False(t, r.Contains("foo"))

	// The field is still readable; only the iteration view is off.
	v, err := r.Get("foo")
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}
