package kitchen

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mazzuks/meu-menu/pkg/models"
)

var pizza = models.Recipe{
	ID:    "1",
	Slug:  "pizza-margherita",
	Title: "Pizza Margherita",
	Ingredients: []models.Ingredient{
		{ID: "1", Name: "Massa de pizza", Amount: "1", Unit: "unidade"},
		{ID: "2", Name: "Molho de tomate", Amount: "200", Unit: "ml"},
		{ID: "3", Name: "Mussarela", Amount: "200", Unit: "g"},
	},
}

func TestApplyRecipeConsumesWholeItem(t *testing.T) {
	stock := []models.StockItem{{ID: "s1", Desc: "Massa de Pizza", Qtd: 1, Un: "un"}}

	debited, updated := ApplyRecipe(pizza, stock)

	assert.Equal(t, 1, debited)
	assert.Empty(t, updated, "quantity reaching zero removes the entry")
}

func TestApplyRecipeDebitsPartially(t *testing.T) {
	stock := []models.StockItem{
		{ID: "s1", Desc: "Massa de Pizza", Qtd: 3, Un: "un"},
		{ID: "s2", Desc: "Mussarela", Qtd: 500, Un: "g"},
	}

	debited, updated := ApplyRecipe(pizza, stock)

	assert.Equal(t, 2, debited, "molho has no match and is skipped")
	require.Len(t, updated, 2)
	assert.InDelta(t, 2.0, updated[0].Qtd, 1e-9)
	assert.InDelta(t, 300.0, updated[1].Qtd, 1e-9)
}

func TestApplyRecipeRecomputesPrecoTotal(t *testing.T) {
	preco := decimal.NewFromFloat(4.50)
	total := decimal.NewFromFloat(13.50)
	stock := []models.StockItem{
		{ID: "s1", Desc: "Massa de Pizza", Qtd: 3, Un: "un", Preco: &preco, PrecoTotal: &total},
	}

	_, updated := ApplyRecipe(pizza, stock)

	require.Len(t, updated, 1)
	require.NotNil(t, updated[0].PrecoTotal)
	assert.True(t, updated[0].PrecoTotal.Equal(decimal.NewFromFloat(9.0)),
		"precoTotal must equal preco times the new quantity, got %s", updated[0].PrecoTotal)
	assert.True(t, updated[0].Preco.Equal(preco), "unit price never changes")
}

func TestApplyRecipeClearsPrecoTotalWithoutPreco(t *testing.T) {
	stale := decimal.NewFromFloat(99)
	stock := []models.StockItem{
		{ID: "s1", Desc: "Massa de Pizza", Qtd: 3, Un: "un", PrecoTotal: &stale},
	}

	_, updated := ApplyRecipe(pizza, stock)

	require.Len(t, updated, 1)
	assert.Nil(t, updated[0].PrecoTotal)
}

func TestApplyRecipeOverdraftRemovesEntry(t *testing.T) {
	stock := []models.StockItem{{ID: "s1", Desc: "Mussarela", Qtd: 150, Un: "g"}}

	debited, updated := ApplyRecipe(pizza, stock)

	assert.Equal(t, 1, debited)
	assert.Empty(t, updated, "debiting 200 from 150 clamps at zero and removes")
}

func TestApplyRecipeUnparseableAmountDebitsOne(t *testing.T) {
	recipe := models.Recipe{
		ID: "2",
		Ingredients: []models.Ingredient{
			{ID: "1", Name: "Sal", Amount: "a gosto", Unit: "un"},
		},
	}
	stock := []models.StockItem{{ID: "s1", Desc: "Sal grosso", Qtd: 5, Un: "un"}}

	debited, updated := ApplyRecipe(recipe, stock)

	assert.Equal(t, 1, debited)
	require.Len(t, updated, 1)
	assert.InDelta(t, 4.0, updated[0].Qtd, 1e-9)
}

func TestApplyRecipeEmptyStock(t *testing.T) {
	debited, updated := ApplyRecipe(pizza, nil)

	assert.Equal(t, 0, debited)
	assert.Empty(t, updated)
}

func TestApplyRecipeDoesNotMutateInput(t *testing.T) {
	stock := []models.StockItem{
		{ID: "s1", Desc: "Massa de Pizza", Qtd: 3, Un: "un"},
		{ID: "s2", Desc: "Mussarela", Qtd: 500, Un: "g"},
	}

	_, _ = ApplyRecipe(pizza, stock)

	assert.InDelta(t, 3.0, stock[0].Qtd, 1e-9)
	assert.InDelta(t, 500.0, stock[1].Qtd, 1e-9)
	assert.Equal(t, "s1", stock[0].ID)
}
