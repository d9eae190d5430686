// Package suggest ranks catalog recipes by how well current pantry stock
// covers their ingredients ("use your leftovers").
package suggest

import (
	"sort"

	"github.com/mazzuks/meu-menu/pkg/match"
	"github.com/mazzuks/meu-menu/pkg/models"
)

type scoredRecipe struct {
	recipe          models.Recipe
	score           int
	matchPercentage float64
}

// ByLeftovers scores every recipe by the number of its ingredients present
// in stock (presence only, quantities are not considered), drops recipes
// with no match, orders by match percentage then absolute score, and caps
// the result at limit. Ties keep input order. Empty stock yields nothing.
func ByLeftovers(stock []models.StockItem, recipes []models.Recipe, limit int) []models.Recipe {
	if len(stock) == 0 {
		return nil
	}

	scored := make([]scoredRecipe, 0, len(recipes))
	for _, recipe := range recipes {
		score := 0
		for _, ingredient := range recipe.Ingredients {
			if _, ok := match.FindStockFor(ingredient.Name, stock); ok {
				score++
			}
		}
		if score == 0 {
			continue
		}

		pct := 0.0
		if len(recipe.Ingredients) > 0 {
			pct = float64(score) / float64(len(recipe.Ingredients))
		}
		scored = append(scored, scoredRecipe{recipe: recipe, score: score, matchPercentage: pct})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].matchPercentage != scored[j].matchPercentage {
			return scored[i].matchPercentage > scored[j].matchPercentage
		}
		return scored[i].score > scored[j].score
	})

	if limit >= 0 && len(scored) > limit {
		scored = scored[:limit]
	}

	result := make([]models.Recipe, 0, len(scored))
	for _, s := range scored {
		result = append(result, s.recipe)
	}
	return result
}
