// Package shoppinglist manages the persisted shopping list of each household.
package shoppinglist

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mazzuks/meu-menu/pkg/list"
	"github.com/mazzuks/meu-menu/pkg/logger"
	"github.com/mazzuks/meu-menu/pkg/models"
	"github.com/mazzuks/meu-menu/pkg/storage"
)

// Service provides shopping list functionality
type Service struct {
	store  *storage.Store
	logger *logger.Logger
}

// New creates a new shopping list service
func New(store *storage.Store) *Service {
	return &Service{
		store:  store,
		logger: logger.New(""),
	}
}

func listKey(chatID int64) string {
	return fmt.Sprintf("list:%d", chatID)
}

// Get retrieves the shopping list for a household, creating an empty one if needed
func (s *Service) Get(chatID int64) (*models.ShoppingList, error) {
	key := listKey(chatID)

	var sl models.ShoppingList
	err := s.store.Get(key, &sl)
	if err != nil {
		sl = models.ShoppingList{
			ID:          key,
			ChatID:      chatID,
			Items:       []models.ShoppingListItem{},
			LastUpdated: time.Now(),
		}

		if err := s.store.Set(key, sl); err != nil {
			return nil, fmt.Errorf("failed to create shopping list: %w", err)
		}
	}

	return &sl, nil
}

// Items returns the current entries of a household's list
func (s *Service) Items(chatID int64) ([]models.ShoppingListItem, error) {
	sl, err := s.Get(chatID)
	if err != nil {
		return nil, err
	}
	return sl.Items, nil
}

// Add appends a manual entry, assigning an ID when absent
func (s *Service) Add(chatID int64, item models.ShoppingListItem) error {
	sl, err := s.Get(chatID)
	if err != nil {
		return err
	}

	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	sl.Items = append(sl.Items, item)

	sl.LastUpdated = time.Now()
	return s.store.Set(sl.ID, sl)
}

// AddRecipe expands a recipe's ingredients into list entries tagged with the
// recipe ID, under the default category.
func (s *Service) AddRecipe(chatID int64, recipe models.Recipe) error {
	sl, err := s.Get(chatID)
	if err != nil {
		return err
	}

	for _, ingredient := range recipe.Ingredients {
		sl.Items = append(sl.Items, models.ShoppingListItem{
			ID:        fmt.Sprintf("%s-%s-%s", recipe.ID, ingredient.ID, uuid.NewString()),
			Name:      ingredient.Name,
			Amount:    ingredient.Amount,
			Unit:      ingredient.Unit,
			Category:  "Diversos",
			Purchased: false,
			RecipeID:  recipe.ID,
		})
	}

	sl.LastUpdated = time.Now()
	return s.store.Set(sl.ID, sl)
}

// Remove deletes an entry by ID
func (s *Service) Remove(chatID int64, itemID string) error {
	sl, err := s.Get(chatID)
	if err != nil {
		return err
	}

	kept := sl.Items[:0]
	for _, item := range sl.Items {
		if item.ID != itemID {
			kept = append(kept, item)
		}
	}
	sl.Items = kept

	sl.LastUpdated = time.Now()
	return s.store.Set(sl.ID, sl)
}

// TogglePurchased flips the purchased flag of an entry
func (s *Service) TogglePurchased(chatID int64, itemID string) error {
	sl, err := s.Get(chatID)
	if err != nil {
		return err
	}

	for i, item := range sl.Items {
		if item.ID == itemID {
			sl.Items[i].Purchased = !item.Purchased
			break
		}
	}

	sl.LastUpdated = time.Now()
	return s.store.Set(sl.ID, sl)
}

// Clear empties the list of a household
func (s *Service) Clear(chatID int64) error {
	key := listKey(chatID)

	sl := models.ShoppingList{
		ID:          key,
		ChatID:      chatID,
		Items:       []models.ShoppingListItem{},
		LastUpdated: time.Now(),
	}

	return s.store.Set(key, sl)
}

// Consolidated returns the merged view of the list
func (s *Service) Consolidated(chatID int64) ([]models.ConsolidatedItem, error) {
	items, err := s.Items(chatID)
	if err != nil {
		return nil, err
	}
	return list.Consolidate(items), nil
}

// IsComplete reports whether every entry has been purchased
func (s *Service) IsComplete(chatID int64) (bool, error) {
	items, err := s.Items(chatID)
	if err != nil {
		return false, err
	}
	return list.IsComplete(items), nil
}

// CompleteForRecipes appends the ingredients still missing for the given
// recipes, considering current stock. Returns the entries that were added.
func (s *Service) CompleteForRecipes(chatID int64, recipes []models.Recipe, stock []models.StockItem) ([]models.ShoppingListItem, error) {
	missing := list.Flatten(list.MissingFor(recipes, stock))
	if len(missing) == 0 {
		return nil, nil
	}

	sl, err := s.Get(chatID)
	if err != nil {
		return nil, err
	}

	sl.Items = append(sl.Items, missing...)
	sl.LastUpdated = time.Now()
	if err := s.store.Set(sl.ID, sl); err != nil {
		return nil, fmt.Errorf("failed to persist shopping list: %w", err)
	}

	s.logger.Info("Added %d missing items to shopping list", len(missing))
	return missing, nil
}
