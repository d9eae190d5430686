// Package list implements the shopping-list intelligence: consolidation of
// duplicate entries and missing-ingredient calculation against the pantry.
package list

import (
	"github.com/mazzuks/meu-menu/pkg/models"
	"github.com/mazzuks/meu-menu/pkg/textnorm"
)

// Consolidate groups list entries by normalized name and literal unit.
// Units are never normalized or converted: "kg" and "g" entries of the same
// ingredient stay separate groups. Group order follows first appearance;
// the first member of each group is its representative for id, name, unit
// and category. Unparseable amounts contribute 0 to the total.
func Consolidate(items []models.ShoppingListItem) []models.ConsolidatedItem {
	byKey := make(map[string]int)
	groups := make([]models.ConsolidatedItem, 0, len(items))

	for _, item := range items {
		key := textnorm.Normalize(item.Name) + "|" + item.Unit

		idx, ok := byKey[key]
		if !ok {
			byKey[key] = len(groups)
			groups = append(groups, models.ConsolidatedItem{
				ID:          item.ID,
				Name:        item.Name,
				Unit:        item.Unit,
				Category:    item.Category,
				TotalAmount: textnorm.Amount(item.Amount, 0),
				Items:       []models.ShoppingListItem{item},
				Purchased:   item.Purchased,
			})
			continue
		}

		groups[idx].TotalAmount += textnorm.Amount(item.Amount, 0)
		groups[idx].Purchased = groups[idx].Purchased && item.Purchased
		groups[idx].Items = append(groups[idx].Items, item)
	}

	return groups
}

// Flatten converts consolidated groups back into plain list items, one per
// group, with the summed amount rendered as text.
func Flatten(groups []models.ConsolidatedItem) []models.ShoppingListItem {
	items := make([]models.ShoppingListItem, 0, len(groups))
	for _, g := range groups {
		var recipeID string
		if len(g.Items) > 0 {
			recipeID = g.Items[0].RecipeID
		}
		items = append(items, models.ShoppingListItem{
			ID:        g.ID,
			Name:      g.Name,
			Amount:    textnorm.FormatAmount(g.TotalAmount),
			Unit:      g.Unit,
			Category:  g.Category,
			Purchased: g.Purchased,
			RecipeID:  recipeID,
		})
	}
	return items
}

// IsComplete reports whether every entry has been purchased. An empty list
// counts as complete.
func IsComplete(items []models.ShoppingListItem) bool {
	for _, item := range items {
		if !item.Purchased {
			return false
		}
	}
	return true
}
