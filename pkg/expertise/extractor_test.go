package expertise_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/profiledeck/socialauth/pkg/expertise"
	"github.com/profiledeck/socialauth/pkg/provider"
)

func TestExtract(t *testing.T) {
	t.Parallel()

	t.Run("matches keywords in bio", func(t *testing.T) {
		tags := expertise.Extract("Python developer into Rust and DevOps", nil)
		assert.Equal(t, []string{"devops", "python", "rust"}, tags)
	})

	t.Run("includes repo languages and descriptions", func(t *testing.T) {
		repos := []provider.Repo{
			{Language: "Go", Description: "kubernetes operator"},
			{Language: "TypeScript", Description: ""},
		}

		tags := expertise.Extract("", repos)
		assert.Equal(t, []string{"go", "kubernetes", "typescript"}, tags)
	})

	t.Run("deduplicates across sources", func(t *testing.T) {
		repos := []provider.Repo{{Language: "Python", Description: "python scripts"}}

		tags := expertise.Extract("python all day", repos)
		assert.Equal(t, []string{"python"}, tags)
	})

	t.Run("case insensitive", func(t *testing.T) {
		tags := expertise.Extract("REACT and Machine Learning", nil)
		assert.Equal(t, []string{"machine learning", "react"}, tags)
	})

	t.Run("no matches yields nil", func(t *testing.T) {
		assert.Nil(t, expertise.Extract("gardening enthusiast", nil))
	})

	t.Run("order independent input", func(t *testing.T) {
		a := expertise.Extract("go rust", []provider.Repo{{Language: "Python"}})
		b := expertise.Extract("rust go", []provider.Repo{{Language: "python"}})
		assert.Equal(t, a, b)
	})
}
