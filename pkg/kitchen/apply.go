// Package kitchen applies a prepared recipe against pantry stock, debiting
// quantities. This is the single implementation of the debit logic; every
// caller (bot, REST, pantry service) goes through it.
package kitchen

import (
	"github.com/shopspring/decimal"

	"github.com/mazzuks/meu-menu/pkg/match"
	"github.com/mazzuks/meu-menu/pkg/models"
	"github.com/mazzuks/meu-menu/pkg/textnorm"
)

// ApplyRecipe debits a recipe's ingredients from a stock snapshot. The input
// slice is never mutated; the returned slice is a fresh copy. Per ingredient,
// in definition order: the first matching stock entry is debited by the
// parsed amount (1 when unparseable), clamped at zero. An entry reaching
// exactly zero is removed. PrecoTotal is recomputed whenever Preco is set.
// Ingredients without a match are skipped silently. The debited count is the
// number of matched ingredients, not quantities.
func ApplyRecipe(recipe models.Recipe, stock []models.StockItem) (int, []models.StockItem) {
	updated := make([]models.StockItem, len(stock))
	copy(updated, stock)

	debited := 0
	for _, ingredient := range recipe.Ingredients {
		quantity := textnorm.Amount(ingredient.Amount, 1)

		idx := match.IndexOf(ingredient.Name, updated)
		if idx < 0 {
			continue
		}
		debited++

		newQuantity := updated[idx].Qtd - quantity
		if newQuantity <= 0 {
			updated = append(updated[:idx], updated[idx+1:]...)
			continue
		}

		item := updated[idx]
		item.Qtd = newQuantity
		if item.Preco != nil {
			total := item.Preco.Mul(decimal.NewFromFloat(newQuantity))
			item.PrecoTotal = &total
		} else {
			item.PrecoTotal = nil
		}
		updated[idx] = item
	}

	return debited, updated
}
