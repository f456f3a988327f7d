package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	yaml := `
access: true
coercion: [foo]
validation: all
enumerable: true
collectable: bar
fields:
  - foo
  - name: bar
    kind: sequence
  - name: note
    default: "n/a"
generators:
  foo: {kind: int, min: 0, max: 100}
  note: {kind: oneof, values: [a, b, c]}
`

	cfg, err := Parse([]byte(yaml))
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.True(t, cfg.Access)
	assert.True(t, cfg.Enumerable)
	assert.Equal(t, "bar", cfg.Collectable)

	assert.False(t, cfg.Coercion.All)
	assert.Equal(t, []string{"foo"}, cfg.Coercion.Fields)
	assert.True(t, cfg.Validation.All)

	require.Len(t, cfg.Fields, 3)
	assert.Equal(t, FieldDef{Name: "foo"}, cfg.Fields[0])
	assert.Equal(t, FieldDef{Name: "bar", Kind: "sequence"}, cfg.Fields[1])
	assert.Equal(t, FieldDef{Name: "note", Default: "n/a"}, cfg.Fields[2])

	require.Len(t, cfg.Generators, 2)
	assert.Equal(t, "int", cfg.Generators["foo"].Kind)
	assert.Equal(t, float64(100), cfg.Generators["foo"].Max)
	assert.Equal(t, []any{"a", "b", "c"}, cfg.Generators["note"].Values)
}

func TestParseSelectorForms(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want FieldSelector
	}{
		{"scalar none", `coercion: none`, FieldSelector{}},
		{"scalar all", `coercion: all`, FieldSelector{All: true}},
		{"bool true", `coercion: true`, FieldSelector{All: true}},
		{"bool false", `coercion: false`, FieldSelector{}},
		{"explicit list", `coercion: [a, b]`, FieldSelector{Fields: []string{"a", "b"}}},
		{"absent", `access: true`, FieldSelector{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.yaml))
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Coercion)
		})
	}
}

func TestParseBadSelector(t *testing.T) {
	_, err := Parse([]byte(`coercion: everything`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unrecognized selector")
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := &Config{
		Access:      true,
		Coercion:    FieldSelector{Fields: []string{"foo"}},
		Validation:  FieldSelector{All: true},
		Enumerable:  true,
		Collectable: "bar",
		Fields: []FieldDef{
			{Name: "foo"},
			{Name: "bar", Kind: "set"},
		},
		Generators: map[string]GeneratorSpec{
			"foo": {Kind: "int", Min: 1, Max: 9},
		},
	}

	data, err := Marshal(cfg)
	require.NoError(t, err)

	back, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(t.TempDir() + "/nope.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}
