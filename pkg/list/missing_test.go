package list

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mazzuks/meu-menu/pkg/models"
)

var pizzaRecipe = models.Recipe{
	ID:   "1",
	Slug: "pizza-margherita",
	Ingredients: []models.Ingredient{
		{ID: "1", Name: "Massa de pizza", Amount: "1", Unit: "unidade"},
		{ID: "2", Name: "Molho de tomate", Amount: "200", Unit: "ml"},
		{ID: "3", Name: "Mussarela", Amount: "200", Unit: "g"},
	},
}

func TestMissingForEmptyRecipes(t *testing.T) {
	stock := []models.StockItem{{Desc: "Tomate", Qtd: 2}}
	assert.Empty(t, MissingFor(nil, stock))
}

func TestMissingForEmptyStockReturnsFullIngredientList(t *testing.T) {
	missing := MissingFor([]models.Recipe{pizzaRecipe}, nil)

	require.Len(t, missing, 3)
	assert.Equal(t, "Massa de pizza", missing[0].Name)
	assert.InDelta(t, 1.0, missing[0].TotalAmount, 1e-9)
	assert.Equal(t, "Molho de tomate", missing[1].Name)
	assert.InDelta(t, 200.0, missing[1].TotalAmount, 1e-9)
	assert.InDelta(t, 200.0, missing[2].TotalAmount, 1e-9)
	for _, m := range missing {
		assert.False(t, m.Purchased)
	}
}

func TestMissingForPartialStock(t *testing.T) {
	stock := []models.StockItem{
		{Desc: "Massa de Pizza", Qtd: 1, Un: "un"},
		{Desc: "Mussarela", Qtd: 50, Un: "g"},
	}

	missing := MissingFor([]models.Recipe{pizzaRecipe}, stock)

	require.Len(t, missing, 2)
	assert.Equal(t, "Molho de tomate", missing[0].Name)
	assert.InDelta(t, 200.0, missing[0].TotalAmount, 1e-9)
	assert.Equal(t, "Mussarela", missing[1].Name)
	assert.InDelta(t, 150.0, missing[1].TotalAmount, 1e-9, "deficit is needed minus available")
}

func TestMissingForMergesAcrossRecipesKeepingRecipeIDs(t *testing.T) {
	other := models.Recipe{
		ID: "2",
		Ingredients: []models.Ingredient{
			{ID: "1", Name: "Mussarela", Amount: "100", Unit: "g"},
		},
	}

	missing := MissingFor([]models.Recipe{pizzaRecipe, other}, nil)

	var mussarela *models.ConsolidatedItem
	for i := range missing {
		if missing[i].Name == "Mussarela" {
			mussarela = &missing[i]
		}
	}
	require.NotNil(t, mussarela)
	assert.InDelta(t, 300.0, mussarela.TotalAmount, 1e-9)
	require.Len(t, mussarela.Items, 2)
	assert.Equal(t, "1", mussarela.Items[0].RecipeID)
	assert.Equal(t, "2", mussarela.Items[1].RecipeID)
}

func TestMissingForUnparseableAmountNeedsOne(t *testing.T) {
	recipe := models.Recipe{
		ID: "3",
		Ingredients: []models.Ingredient{
			{ID: "1", Name: "Sal", Amount: "a gosto", Unit: "un"},
		},
	}

	missing := MissingFor([]models.Recipe{recipe}, nil)
	require.Len(t, missing, 1)
	assert.InDelta(t, 1.0, missing[0].TotalAmount, 1e-9)
}

func TestMissingForSatisfiedStockIsEmpty(t *testing.T) {
	stock := []models.StockItem{
		{Desc: "Massa de Pizza", Qtd: 2},
		{Desc: "Molho de tomate", Qtd: 500},
		{Desc: "Mussarela 500g", Qtd: 500},
	}

	assert.Empty(t, MissingFor([]models.Recipe{pizzaRecipe}, stock))
}

func TestInferCategory(t *testing.T) {
	assert.Equal(t, "Hortifruti", InferCategory("Tomate Italiano"))
	assert.Equal(t, "Laticínios", InferCategory("Queijo minas"))
	assert.Equal(t, "Açougue", InferCategory("Peito de frango"))
	assert.Equal(t, "Mercearia", InferCategory("Arroz branco"))
	assert.Equal(t, "Padaria", InferCategory("Pão francês"))
	assert.Equal(t, "Diversos", InferCategory("Detergente"))
}
