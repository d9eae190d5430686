package list

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mazzuks/meu-menu/pkg/models"
)

func item(name, amount, unit string, purchased bool) models.ShoppingListItem {
	return models.ShoppingListItem{
		ID:        name + "-" + amount,
		Name:      name,
		Amount:    amount,
		Unit:      unit,
		Category:  "Diversos",
		Purchased: purchased,
	}
}

func TestConsolidateMergesSameNormalizedNameAndUnit(t *testing.T) {
	items := []models.ShoppingListItem{
		item("Açúcar", "1", "kg", false),
		item("acucar", "2", "kg", false),
		item("AÇÚCAR cristal 1kg", "3", "kg", false),
	}

	groups := Consolidate(items)
	require.Len(t, groups, 2, "plain açúcar merges; 'açúcar cristal' is a different normalized name")
	assert.InDelta(t, 3.0, groups[0].TotalAmount, 1e-9)
	assert.Len(t, groups[0].Items, 2)
	assert.Equal(t, "Açúcar", groups[0].Name, "first member is the representative")
}

func TestConsolidateSumInvariant(t *testing.T) {
	items := []models.ShoppingListItem{
		item("Tomate", "1.5", "kg", false),
		item("tomate", "2", "kg", false),
		item("Tomate 1kg", "0.25", "kg", false),
	}

	groups := Consolidate(items)
	require.Len(t, groups, 1)
	assert.InDelta(t, 3.75, groups[0].TotalAmount, 1e-9)
}

func TestConsolidateNeverMergesDifferentUnits(t *testing.T) {
	items := []models.ShoppingListItem{
		item("Açúcar", "1", "kg", false),
		item("Açúcar", "500", "g", false),
	}

	groups := Consolidate(items)
	assert.Len(t, groups, 2, "kg and g stay separate, no unit conversion")
}

func TestConsolidatePurchasedANDReduction(t *testing.T) {
	allBought := Consolidate([]models.ShoppingListItem{
		item("Leite", "1", "l", true),
		item("leite", "1", "l", true),
	})
	require.Len(t, allBought, 1)
	assert.True(t, allBought[0].Purchased)

	oneMissing := Consolidate([]models.ShoppingListItem{
		item("Leite", "1", "l", true),
		item("leite", "1", "l", false),
	})
	require.Len(t, oneMissing, 1)
	assert.False(t, oneMissing[0].Purchased)
}

func TestConsolidateUnparseableAmountCountsAsZero(t *testing.T) {
	groups := Consolidate([]models.ShoppingListItem{
		item("Sal", "a gosto", "un", false),
		item("sal", "2", "un", false),
	})
	require.Len(t, groups, 1)
	assert.InDelta(t, 2.0, groups[0].TotalAmount, 1e-9)
}

func TestConsolidateOrderAndEdgeCases(t *testing.T) {
	assert.Empty(t, Consolidate(nil))
	assert.Empty(t, Consolidate([]models.ShoppingListItem{}))

	single := Consolidate([]models.ShoppingListItem{item("Ovo", "12", "un", false)})
	require.Len(t, single, 1)
	assert.InDelta(t, 12.0, single[0].TotalAmount, 1e-9)
	assert.Len(t, single[0].Items, 1)

	groups := Consolidate([]models.ShoppingListItem{
		item("Cebola", "1", "un", false),
		item("Tomate", "2", "kg", false),
		item("cebola", "3", "un", false),
	})
	require.Len(t, groups, 2)
	assert.Equal(t, "Cebola", groups[0].Name, "first appearance order")
	assert.Equal(t, "Tomate", groups[1].Name)
}

func TestFlatten(t *testing.T) {
	groups := Consolidate([]models.ShoppingListItem{
		item("Cebola", "1", "un", true),
		item("cebola", "1.5", "un", false),
	})
	flat := Flatten(groups)
	require.Len(t, flat, 1)
	assert.Equal(t, "2.5", flat[0].Amount)
	assert.False(t, flat[0].Purchased)
	assert.Equal(t, "Cebola", flat[0].Name)
}

func TestIsComplete(t *testing.T) {
	assert.True(t, IsComplete(nil))
	assert.True(t, IsComplete([]models.ShoppingListItem{item("Ovo", "1", "un", true)}))
	assert.False(t, IsComplete([]models.ShoppingListItem{
		item("Ovo", "1", "un", true),
		item("Leite", "1", "l", false),
	}))
}
