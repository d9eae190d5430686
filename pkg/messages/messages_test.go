package messages

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mazzuks/meu-menu/pkg/models"
)

// All tests run without an OpenAI client, exercising the fixed fallbacks.

func TestFallbacksWithoutClient(t *testing.T) {
	svc := New(nil)

	assert.Contains(t, svc.Welcome(), "Meu Menu")
	assert.Contains(t, svc.EmptyPantry(), "despensa")
	assert.Contains(t, svc.Error("qualquer"), "Ops")
}

func TestPantryContents(t *testing.T) {
	svc := New(nil)

	msg := svc.PantryContents([]models.StockItem{
		{Desc: "Tomate", Qtd: 2.5, Un: "kg"},
		{Desc: "Ovos", Qtd: 12, Un: "un"},
	})

	assert.Contains(t, msg, "Tomate")
	assert.Contains(t, msg, "2.5 kg")
	assert.Contains(t, msg, "12 un")
}

func TestSuggestionsNumbersTitles(t *testing.T) {
	svc := New(nil)

	msg := svc.Suggestions([]string{"Omelete de Queijo", "Salada Caprese"})
	assert.Contains(t, msg, "1. Omelete de Queijo")
	assert.Contains(t, msg, "2. Salada Caprese")
}

func TestRecipeApplied(t *testing.T) {
	svc := New(nil)

	msg := svc.RecipeApplied("Pizza Margherita", 3)
	assert.Contains(t, msg, "Pizza Margherita")
	assert.Contains(t, msg, "3 itens")
}

func TestMissingIngredients(t *testing.T) {
	svc := New(nil)

	complete := svc.MissingIngredients("Pizza Margherita", nil)
	assert.Contains(t, complete, "tudo")

	missing := svc.MissingIngredients("Pizza Margherita", []models.ConsolidatedItem{
		{Name: "Mussarela", Unit: "g", Category: "Laticínios", TotalAmount: 150},
	})
	assert.Contains(t, missing, "Mussarela")
	assert.Contains(t, missing, "150 g")
}

func TestShoppingListFormatting(t *testing.T) {
	svc := New(nil)

	assert.Contains(t, svc.ShoppingList(nil), "vazia")
	assert.Contains(t, svc.ConsolidatedList(nil), "vazia")

	msg := svc.ShoppingList([]models.ShoppingListItem{
		{Name: "Leite", Amount: "1", Unit: "l", Purchased: true},
		{Name: "Ovos", Amount: "12", Unit: "un"},
	})
	assert.Contains(t, msg, "✅ Leite")
	assert.Contains(t, msg, "◻️ Ovos")
}
