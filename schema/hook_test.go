package schema_test

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TwistingTwists/estructura/schema"
)

func upper(s string) string { return strings.ToUpper(s) }

func nonNegative(n int) (int, bool) { return n, n >= 0 }

func ExampleParseHook() {
	hook, _ := schema.ParseHook(strconv.Atoi)
	fmt.Println(hook("42"))

	hook, _ = schema.ParseHook(upper)
	fmt.Println(hook("abc"))

	_, err := schema.ParseHook(42)
	fmt.Println(err)

	// Output:
	// 42 <nil>
	// ABC <nil>
	// provided hook is not a function
}

func TestParseHookShapes(t *testing.T) {
	t.Run("value only", func(t *testing.T) {
		hook, err := schema.ParseHook(upper)
		require.NoError(t, err)

		v, err := hook("go")
		require.NoError(t, err)
		assert.Equal(t, "GO", v)
	})

	t.Run("value and bool", func(t *testing.T) {
		hook, err := schema.ParseHook(nonNegative)
		require.NoError(t, err)

		v, err := hook(7)
		require.NoError(t, err)
		assert.Equal(t, 7, v)

		_, err = hook(-1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "rejected by")
	})

	t.Run("value and error", func(t *testing.T) {
		hook, err := schema.ParseHook(strconv.Atoi)
		require.NoError(t, err)

		v, err := hook("314")
		require.NoError(t, err)
		assert.Equal(t, 314, v)

		_, err = hook("not a number")
		require.Error(t, err)
	})

	t.Run("any shape", func(t *testing.T) {
		hook, err := schema.ParseHook(func(v any) (any, error) {
			if v == nil {
				return nil, errors.New("nil input")
			}
			return v, nil
		})
		require.NoError(t, err)

		v, err := hook([]int{1, 2})
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2}, v)

		_, err = hook(nil)
		require.Error(t, err)
	})
}

func TestParseHookNumericConversion(t *testing.T) {
	hook, err := schema.ParseHook(func(n int64) int64 { return n * 2 })
	require.NoError(t, err)

	v, err := hook(21) // int input converted to int64
	require.NoError(t, err)
	assert.Equal(t, int64(42), v)

	v, err = hook(float64(3))
	require.NoError(t, err)
	assert.Equal(t, int64(6), v)
}

func TestParseHookTypeRejection(t *testing.T) {
	hook, err := schema.ParseHook(upper)
	require.NoError(t, err)

	_, err = hook(42)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expects string, got int")

	_, err = hook(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "got nil")
}

func TestParseHookBadShapes(t *testing.T) {
	tests := []struct {
		name string
		fn   any
		want error
	}{
		{"nil", nil, schema.ErrHookIsNotAFunction},
		{"not a function", "nope", schema.ErrHookIsNotAFunction},
		{"no arguments", func() int { return 0 }, schema.ErrIsNotAHook},
		{"two arguments", func(a, b int) int { return a }, schema.ErrIsNotAHook},
		{"no results", func(int) {}, schema.ErrIsNotAHook},
		{"three results", func(int) (int, bool, error) { return 0, false, nil }, schema.ErrIsNotAHook},
		{"bad second result", func(int) (int, string) { return 0, "" }, schema.ErrIsNotAHook},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := schema.ParseHook(tt.fn)
			require.ErrorIs(t, err, tt.want)
		})
	}
}
