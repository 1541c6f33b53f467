package fieldval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldval"
)

var choiceField = fieldval.Field{Name: "status", Type: "string"}

func TestIn(t *testing.T) {
	t.Parallel()

	t.Run("member passes", func(t *testing.T) {
		v, err := fieldval.In("draft", "published", "archived")(choiceField, "published")
		require.NoError(t, err)
		assert.True(t, v.Valid)
	})

	t.Run("non-member fails", func(t *testing.T) {
		v, err := fieldval.In("draft", "published")(choiceField, "deleted")
		require.NoError(t, err)
		assert.False(t, v.Valid)
		assert.Equal(t, "validation.in", v.Key)
	})

	t.Run("membership uses value equality of the normalized form", func(t *testing.T) {
		// Different numeric widths are the same value.
		v, err := fieldval.In(1, 2, 3)(choiceField, int64(2))
		require.NoError(t, err)
		assert.True(t, v.Valid)

		v, err = fieldval.In(1.0, 2.0)(choiceField, 2)
		require.NoError(t, err)
		assert.True(t, v.Valid)
	})

	t.Run("nil value is simply not contained", func(t *testing.T) {
		v, err := fieldval.In("a", "b")(choiceField, nil)
		require.NoError(t, err)
		assert.False(t, v.Valid)
	})

	t.Run("empty candidate set is a configuration error", func(t *testing.T) {
		_, err := fieldval.In()(choiceField, "x")
		assert.ErrorIs(t, err, fieldval.ErrNilArgument)
	})
}

func TestNotIn(t *testing.T) {
	t.Parallel()

	t.Run("non-member passes", func(t *testing.T) {
		v, err := fieldval.NotIn("admin", "root")(choiceField, "gopher")
		require.NoError(t, err)
		assert.True(t, v.Valid)
	})

	t.Run("member fails", func(t *testing.T) {
		v, err := fieldval.NotIn("admin", "root")(choiceField, "root")
		require.NoError(t, err)
		assert.False(t, v.Valid)
		assert.Equal(t, "validation.not_in", v.Key)
	})

	t.Run("nil value passes", func(t *testing.T) {
		v, err := fieldval.NotIn("admin")(choiceField, nil)
		require.NoError(t, err)
		assert.True(t, v.Valid)
	})
}

func TestEqualTo(t *testing.T) {
	t.Parallel()

	t.Run("equality by value, not identity", func(t *testing.T) {
		v, err := fieldval.EqualTo("confirm")(choiceField, "confirm")
		require.NoError(t, err)
		assert.True(t, v.Valid)

		v, err = fieldval.EqualTo(42)(choiceField, 42.0)
		require.NoError(t, err)
		assert.True(t, v.Valid)

		v, err = fieldval.EqualTo([]int{1, 2})(choiceField, []int{1, 2})
		require.NoError(t, err)
		assert.True(t, v.Valid, "deep equality, not pointer identity")
	})

	t.Run("different values fail", func(t *testing.T) {
		v, err := fieldval.EqualTo("yes")(choiceField, "no")
		require.NoError(t, err)
		assert.False(t, v.Valid)
		assert.Equal(t, "validation.equal_to", v.Key)
	})

	t.Run("nil equals nil only", func(t *testing.T) {
		v, err := fieldval.EqualTo(nil)(choiceField, nil)
		require.NoError(t, err)
		assert.True(t, v.Valid)

		v, err = fieldval.EqualTo(nil)(choiceField, "x")
		require.NoError(t, err)
		assert.False(t, v.Valid)
	})
}

func TestNotEqualTo(t *testing.T) {
	t.Parallel()

	t.Run("different values pass", func(t *testing.T) {
		v, err := fieldval.NotEqualTo("old")(choiceField, "new")
		require.NoError(t, err)
		assert.True(t, v.Valid)
	})

	t.Run("equal values fail", func(t *testing.T) {
		v, err := fieldval.NotEqualTo(7)(choiceField, int32(7))
		require.NoError(t, err)
		assert.False(t, v.Valid)
		assert.Equal(t, "validation.not_equal_to", v.Key)
	})
}
