package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_HasOneCategoryPerServiceStep(t *testing.T) {
	c := Default()
	assert.Equal(t, 9, c.Len())

	seen := map[string]bool{}
	for _, cat := range c.Categories() {
		assert.False(t, seen[cat.ID], "duplicate category %s", cat.ID)
		seen[cat.ID] = true
		assert.NotEmpty(t, cat.Title)
		assert.NotEmpty(t, cat.Options, "category %s has no options", cat.ID)
		for _, o := range cat.Options {
			assert.False(t, o.OneOffCost.IsNegative(), "%s/%s", cat.ID, o.Name)
			assert.False(t, o.MonthlyCost.IsNegative(), "%s/%s", cat.ID, o.Name)
		}
	}
}

func TestLookup(t *testing.T) {
	c := Default()

	o, ok := c.Lookup("design", "Business Website")
	require.True(t, ok)
	assert.Equal(t, "7500", o.OneOffCost.String())

	_, ok = c.Lookup("design", "Nope")
	assert.False(t, ok)
	_, ok = c.Lookup("nope", "Business Website")
	assert.False(t, ok)
}

func TestCategories_ReturnsCopies(t *testing.T) {
	c := Default()
	cats := c.Categories()
	cats[0].Title = "changed"
	cats[0].Options[0].Features[0] = "changed"

	again, ok := c.Category(cats[0].ID)
	require.True(t, ok)
	assert.NotEqual(t, "changed", again.Title)
	assert.NotEqual(t, "changed", again.Options[0].Features[0])
}

func TestOrder(t *testing.T) {
	c := Default()
	assert.Equal(t, 0, c.Order("hosting"))
	assert.Equal(t, -1, c.Order("missing"))
}
