package fieldval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldval"
)

var anyField = fieldval.Field{Name: "value", Type: "any"}

func TestRequired(t *testing.T) {
	t.Parallel()

	check := fieldval.Required()

	t.Run("absent values fail", func(t *testing.T) {
		var nilSlice []int
		var nilPtr *int

		for _, sample := range []any{nil, nilSlice, nilPtr, "", "   ", "\t\n", []string{}, map[string]int{}} {
			v, err := check(anyField, sample)
			require.NoError(t, err)
			assert.False(t, v.Valid, "should reject %#v", sample)
			assert.Equal(t, "field is required", v.Message)
		}
	})

	t.Run("present values pass", func(t *testing.T) {
		for _, sample := range []any{"x", 0, 0.0, false, []int{1}, map[string]int{"a": 1}} {
			v, err := check(anyField, sample)
			require.NoError(t, err)
			assert.True(t, v.Valid, "should accept %#v", sample)
		}
	})
}

func TestCustom(t *testing.T) {
	t.Parallel()

	t.Run("predicate decides the verdict", func(t *testing.T) {
		isEven := fieldval.Custom(func(value any) bool {
			n, ok := value.(int)
			return ok && n%2 == 0
		}, "must be even")

		v, err := isEven(anyField, 4)
		require.NoError(t, err)
		assert.True(t, v.Valid)

		v, err = isEven(anyField, 5)
		require.NoError(t, err)
		assert.False(t, v.Valid)
		assert.Equal(t, "must be even", v.Message)
		assert.Equal(t, "validation.custom", v.Key)
	})

	t.Run("empty message falls back to the generic one", func(t *testing.T) {
		never := fieldval.Custom(func(value any) bool { return false }, "")

		v, err := never(anyField, "anything")
		require.NoError(t, err)
		assert.False(t, v.Valid)
		assert.Equal(t, "is not valid", v.Message)
	})

	t.Run("nil predicate is a configuration error", func(t *testing.T) {
		_, err := fieldval.Custom(nil, "msg")(anyField, "x")
		assert.ErrorIs(t, err, fieldval.ErrNilArgument)
	})
}
