package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/profiledeck/socialauth/pkg/slug"
)

func TestMake(t *testing.T) {
	t.Parallel()

	t.Run("plain username passes through", func(t *testing.T) {
		assert.Equal(t, "testuser", slug.Make("testuser"))
	})

	t.Run("lowercases and collapses separators", func(t *testing.T) {
		assert.Equal(t, "jane-doe", slug.Make("Jane  Doe"))
	})

	t.Run("folds diacritics", func(t *testing.T) {
		assert.Equal(t, "rene-muller", slug.Make("René Müller"))
	})

	t.Run("strips leading and trailing separators", func(t *testing.T) {
		assert.Equal(t, "abc", slug.Make("__abc__"))
	})

	t.Run("respects max length", func(t *testing.T) {
		assert.Equal(t, "abcde", slug.Make("abcdefgh", slug.MaxLength(5)))
	})

	t.Run("custom separator", func(t *testing.T) {
		assert.Equal(t, "a_b", slug.Make("a b", slug.Separator("_")))
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Equal(t, "", slug.Make("!!!"))
	})
}
