package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Difficulty levels used by the recipe catalog
const (
	DifficultyEasy   = "Fácil"
	DifficultyMedium = "Médio"
	DifficultyHard   = "Difícil"
)

// Ingredient represents a single ingredient of a recipe.
// Amount is numeric-as-text, exactly as the catalog defines it ("200", "1/2").
type Ingredient struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Amount   string `json:"amount"`
	Unit     string `json:"unit"`
	Optional bool   `json:"optional,omitempty"`
}

// Nutrition holds per-serving nutrition facts
type Nutrition struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
}

// Recipe is read-only catalog data; the core never mutates it
type Recipe struct {
	ID           string       `json:"id"`
	Slug         string       `json:"slug"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Image        string       `json:"image,omitempty"`
	PrepTime     int          `json:"prepTime"` // minutes
	Difficulty   string       `json:"difficulty"`
	Servings     int          `json:"servings"`
	Category     string       `json:"category"`
	Tags         []string     `json:"tags,omitempty"`
	Ingredients  []Ingredient `json:"ingredients"`
	Instructions []string     `json:"instructions"`
	Nutrition    *Nutrition   `json:"nutrition,omitempty"`
}

// StockItem is one pantry entry. PrecoTotal must always equal Qtd * Preco
// whenever Preco is present; kitchen.ApplyRecipe re-establishes that after
// every debit.
type StockItem struct {
	ID         string           `json:"id"`
	Desc       string           `json:"desc"`
	Qtd        float64          `json:"qtd"`
	Un         string           `json:"un"`
	Preco      *decimal.Decimal `json:"preco,omitempty"`
	PrecoTotal *decimal.Decimal `json:"precoTotal,omitempty"`
	Categoria  string           `json:"categoria"`
}

// ShoppingListItem is one entry of the shopping list, created by recipe
// expansion, missing-ingredient expansion or manual entry
type ShoppingListItem struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Amount    string `json:"amount"`
	Unit      string `json:"unit"`
	Category  string `json:"category"`
	Purchased bool   `json:"purchased"`
	RecipeID  string `json:"recipeId,omitempty"`
}

// ConsolidatedItem is the derived, non-persisted view of a group of list
// entries sharing the same normalized name and unit. Purchased is the
// AND-reduction over all members.
type ConsolidatedItem struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Unit        string             `json:"unit"`
	Category    string             `json:"category"`
	TotalAmount float64            `json:"totalAmount"`
	Items       []ShoppingListItem `json:"items"`
	Purchased   bool               `json:"purchased"`
}

// Pantry represents the persisted stock of a household
type Pantry struct {
	ID          string      `json:"id"`
	ChatID      int64       `json:"chat_id"`
	Items       []StockItem `json:"items"`
	LastUpdated time.Time   `json:"last_updated"`
}

// ShoppingList represents the persisted shopping list of a household
type ShoppingList struct {
	ID          string             `json:"id"`
	ChatID      int64              `json:"chat_id"`
	Items       []ShoppingListItem `json:"items"`
	LastUpdated time.Time          `json:"last_updated"`
}
