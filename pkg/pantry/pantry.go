// Package pantry manages the persisted stock of each household.
package pantry

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mazzuks/meu-menu/pkg/kitchen"
	"github.com/mazzuks/meu-menu/pkg/logger"
	"github.com/mazzuks/meu-menu/pkg/models"
	"github.com/mazzuks/meu-menu/pkg/storage"
)

// Service provides pantry management functionality
type Service struct {
	store  *storage.Store
	logger *logger.Logger
}

// New creates a new pantry service
func New(store *storage.Store) *Service {
	return &Service{
		store:  store,
		logger: logger.New(""),
	}
}

func pantryKey(chatID int64) string {
	return fmt.Sprintf("pantry:%d", chatID)
}

// Get retrieves the pantry for a household, creating an empty one if needed
func (s *Service) Get(chatID int64) (*models.Pantry, error) {
	key := pantryKey(chatID)

	var pantry models.Pantry
	err := s.store.Get(key, &pantry)
	if err != nil {
		pantry = models.Pantry{
			ID:          key,
			ChatID:      chatID,
			Items:       []models.StockItem{},
			LastUpdated: time.Now(),
		}

		if err := s.store.Set(key, pantry); err != nil {
			return nil, fmt.Errorf("failed to create pantry: %w", err)
		}
	}

	return &pantry, nil
}

// Items returns the current stock of a household
func (s *Service) Items(chatID int64) ([]models.StockItem, error) {
	pantry, err := s.Get(chatID)
	if err != nil {
		return nil, err
	}
	return pantry.Items, nil
}

// AddMany appends stock items, assigning IDs where absent and re-deriving
// precoTotal from qtd and preco so the invariant holds from the start.
func (s *Service) AddMany(chatID int64, items []models.StockItem) error {
	pantry, err := s.Get(chatID)
	if err != nil {
		return err
	}

	for _, item := range items {
		if item.ID == "" {
			item.ID = uuid.NewString()
		}
		if item.Preco != nil {
			total := item.Preco.Mul(decimal.NewFromFloat(item.Qtd))
			item.PrecoTotal = &total
		}
		pantry.Items = append(pantry.Items, item)
	}

	pantry.LastUpdated = time.Now()
	return s.store.Set(pantry.ID, pantry)
}

// Remove deletes a single stock item by ID
func (s *Service) Remove(chatID int64, itemID string) error {
	pantry, err := s.Get(chatID)
	if err != nil {
		return err
	}

	kept := pantry.Items[:0]
	for _, item := range pantry.Items {
		if item.ID != itemID {
			kept = append(kept, item)
		}
	}
	pantry.Items = kept

	pantry.LastUpdated = time.Now()
	return s.store.Set(pantry.ID, pantry)
}

// Clear empties the pantry of a household
func (s *Service) Clear(chatID int64) error {
	key := pantryKey(chatID)

	pantry := models.Pantry{
		ID:          key,
		ChatID:      chatID,
		Items:       []models.StockItem{},
		LastUpdated: time.Now(),
	}

	return s.store.Set(key, pantry)
}

// Apply debits a recipe against the pantry and persists the updated stock.
// Returns how many ingredient lines were debited.
func (s *Service) Apply(chatID int64, recipe models.Recipe) (int, error) {
	pantry, err := s.Get(chatID)
	if err != nil {
		return 0, err
	}

	debited, updated := kitchen.ApplyRecipe(recipe, pantry.Items)
	if debited > 0 {
		s.logger.Info("Recipe %s debited %d stock lines", recipe.Slug, debited)
	}

	pantry.Items = updated
	pantry.LastUpdated = time.Now()
	if err := s.store.Set(pantry.ID, pantry); err != nil {
		return 0, fmt.Errorf("failed to persist pantry: %w", err)
	}

	return debited, nil
}
