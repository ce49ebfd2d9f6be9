package quote

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quotedesk/backend/internal/domain/catalog"
)

func option(name string, oneOff, monthly int64) *catalog.Option {
	return &catalog.Option{
		Name:        name,
		OneOffCost:  decimal.NewFromInt(oneOff),
		MonthlyCost: decimal.NewFromInt(monthly),
	}
}

func TestSelect_ReplacesPriorChoice(t *testing.T) {
	sel := NewSelection(catalog.Default())
	sel.Select("hosting", option("A", 100, 10))
	sel.Select("hosting", option("B", 200, 20))

	assert.Equal(t, 1, sel.Len())
	got, ok := sel.Get("hosting")
	require.True(t, ok)
	assert.Equal(t, "B", got.Name)
}

func TestSelect_NilClears(t *testing.T) {
	sel := NewSelection(catalog.Default())
	sel.Select("hosting", option("A", 100, 10))
	sel.Select("hosting", nil)

	assert.Equal(t, 0, sel.Len())
	_, ok := sel.Get("hosting")
	assert.False(t, ok)
}

func TestTotals_SumsNonNilSelections(t *testing.T) {
	sel := NewSelection(catalog.Default())
	assert.True(t, sel.Totals().OneOff.IsZero())
	assert.True(t, sel.Totals().Monthly.IsZero())

	sel.Select("hosting", option("A", 100, 10))
	sel.Select("design", option("B", 2500, 0))
	sel.Select("seo", option("C", 1000, 1200))

	tot := sel.Totals()
	assert.Equal(t, "3600", tot.OneOff.String())
	assert.Equal(t, "1210", tot.Monthly.String())

	sel.Select("seo", nil)
	after := sel.Totals()
	assert.True(t, tot.OneOff.Sub(after.OneOff).Equal(decimal.NewFromInt(1000)))
	assert.True(t, tot.Monthly.Sub(after.Monthly).Equal(decimal.NewFromInt(1200)))
}

func TestSelected_CatalogOrder(t *testing.T) {
	sel := NewSelection(catalog.Default())
	sel.Select("it-support", option("X", 1, 0))
	sel.Select("custom", option("Y", 1, 0))
	sel.Select("hosting", option("Z", 1, 0))

	got := sel.Selected()
	require.Len(t, got, 3)
	assert.Equal(t, "hosting", got[0].CategoryID)
	assert.Equal(t, "Web Hosting", got[0].CategoryTitle)
	assert.Equal(t, "it-support", got[1].CategoryID)
	assert.Equal(t, "custom", got[2].CategoryID)
}

func TestSelectionFromNames(t *testing.T) {
	name := "Business Website"
	empty := ""
	sel, err := SelectionFromNames(catalog.Default(), map[string]*string{
		"design": &name,
		"seo":    nil,
		"email":  &empty,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, sel.Len())

	bad := "Nope"
	_, err = SelectionFromNames(catalog.Default(), map[string]*string{"design": &bad})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Nope")
}
