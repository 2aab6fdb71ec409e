package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoriesOrFallback(t *testing.T) {
	t.Run("Stored categories win", func(t *testing.T) {
		stored := []Category{{ID: "fintech", Name: "Fintech", Icon: "💳"}}

		result := CategoriesOrFallback(stored)

		assert.Equal(t, stored, result)
	})

	t.Run("Empty table serves the built-in set", func(t *testing.T) {
		result := CategoriesOrFallback(nil)

		require.Len(t, result, 6)
		ids := make([]string, 0, len(result))
		for _, c := range result {
			ids = append(ids, c.ID)
		}
		assert.Equal(t, []string{"web", "mobile", "ai", "cloud", "ecommerce", "enterprise"}, ids)
	})

	t.Run("Fallback categories carry name and icon", func(t *testing.T) {
		for _, c := range FallbackCategories() {
			assert.NotEmpty(t, c.Name)
			assert.NotEmpty(t, c.Icon)
		}
	})
}
