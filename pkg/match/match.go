// Package match decides whether a pantry entry satisfies a recipe ingredient
// despite naming variation ("tomate" vs "Tomate Italiano Premium 2kg").
package match

import (
	"strings"

	"github.com/mazzuks/meu-menu/pkg/models"
	"github.com/mazzuks/meu-menu/pkg/textnorm"
)

// Matches reports whether a stock description satisfies an ingredient name.
// Both sides are normalized, then checked for containment in either
// direction. Empty normalized strings never match.
func Matches(ingredientName, stockDesc string) bool {
	ingredient := textnorm.Normalize(ingredientName)
	stock := textnorm.Normalize(stockDesc)

	if ingredient == "" || stock == "" {
		return false
	}

	return strings.Contains(stock, ingredient) || strings.Contains(ingredient, stock)
}

// IndexOf returns the index of the first stock entry satisfying the
// ingredient, or -1. First match in list order wins.
func IndexOf(ingredientName string, stock []models.StockItem) int {
	for i, item := range stock {
		if Matches(ingredientName, item.Desc) {
			return i
		}
	}
	return -1
}

// FindStockFor returns the first stock entry satisfying the ingredient.
func FindStockFor(ingredientName string, stock []models.StockItem) (models.StockItem, bool) {
	if i := IndexOf(ingredientName, stock); i >= 0 {
		return stock[i], true
	}
	return models.StockItem{}, false
}
