package list

import (
	"fmt"
	"strings"

	"github.com/mazzuks/meu-menu/pkg/match"
	"github.com/mazzuks/meu-menu/pkg/models"
	"github.com/mazzuks/meu-menu/pkg/textnorm"
)

// categoryKeywords drives display-category inference for missing items.
// Evaluated in order; first category with a keyword hit wins.
var categoryKeywords = []struct {
	category string
	keywords []string
}{
	{"Hortifruti", []string{"tomate", "cebola", "alface", "pimentão", "abobrinha", "berinjela"}},
	{"Laticínios", []string{"queijo", "leite", "iogurte", "manteiga", "cream cheese"}},
	{"Açougue", []string{"carne", "frango", "peixe", "camarão", "bacon"}},
	{"Mercearia", []string{"arroz", "feijão", "macarrão", "farinha", "açúcar"}},
	{"Padaria", []string{"pão", "biscoito"}},
}

// InferCategory guesses the display category of an ingredient by keyword,
// defaulting to "Diversos".
func InferCategory(name string) string {
	lower := strings.ToLower(name)
	for _, entry := range categoryKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				return entry.category
			}
		}
	}
	return "Diversos"
}

// MissingFor computes the deficit list for a set of recipes against current
// stock. Recipes are processed in input order, ingredients in definition
// order; an unparseable amount needs 1 unit. The result is consolidated, so
// deficits of the same normalized ingredient and unit across recipes merge,
// with each member keeping its own recipeId.
func MissingFor(recipes []models.Recipe, stock []models.StockItem) []models.ConsolidatedItem {
	var missing []models.ShoppingListItem

	for _, recipe := range recipes {
		for _, ingredient := range recipe.Ingredients {
			needed := textnorm.Amount(ingredient.Amount, 1)

			var available float64
			if item, ok := match.FindStockFor(ingredient.Name, stock); ok {
				available = item.Qtd
			}

			if available >= needed {
				continue
			}

			missing = append(missing, models.ShoppingListItem{
				ID:        fmt.Sprintf("missing-%s-%s", recipe.ID, ingredient.ID),
				Name:      ingredient.Name,
				Amount:    textnorm.FormatAmount(needed - available),
				Unit:      ingredient.Unit,
				Category:  InferCategory(ingredient.Name),
				Purchased: false,
				RecipeID:  recipe.ID,
			})
		}
	}

	return Consolidate(missing)
}
