// Package catalog serves the recipe catalog: the built-in Portuguese recipes,
// custom recipes persisted per installation, and AI enrichment for dishes the
// catalog doesn't know.
package catalog

import (
	"fmt"
	"strings"

	"github.com/mazzuks/meu-menu/pkg/aliases"
	"github.com/mazzuks/meu-menu/pkg/logger"
	"github.com/mazzuks/meu-menu/pkg/models"
	"github.com/mazzuks/meu-menu/pkg/openai"
	"github.com/mazzuks/meu-menu/pkg/storage"
	"github.com/mazzuks/meu-menu/pkg/textnorm"
)

// Service provides catalog functionality
type Service struct {
	store        *storage.Store
	openaiClient *openai.Client
	resolver     *aliases.Resolver
	logger       *logger.Logger
}

// New creates a new catalog service. The OpenAI client may be nil; lookups
// then serve only built-in and stored recipes.
func New(store *storage.Store, openaiClient *openai.Client) *Service {
	return &Service{
		store:        store,
		openaiClient: openaiClient,
		resolver:     aliases.NewResolver(),
		logger:       logger.New(""),
	}
}

// Recipes returns every recipe: built-ins first, then stored customs.
func (s *Service) Recipes() ([]models.Recipe, error) {
	recipes := make([]models.Recipe, len(builtinRecipes))
	copy(recipes, builtinRecipes)

	keys, err := s.store.List("recipe:")
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}

	for _, key := range keys {
		var recipe models.Recipe
		if err := s.store.Get(key, &recipe); err != nil {
			s.logger.Error("Failed to get recipe %s: %v", key, err)
			continue
		}
		recipes = append(recipes, recipe)
	}

	return recipes, nil
}

// BySlug returns the recipe with the given slug.
func (s *Service) BySlug(slug string) (*models.Recipe, error) {
	for _, recipe := range builtinRecipes {
		if recipe.Slug == slug {
			return &recipe, nil
		}
	}

	var recipe models.Recipe
	if err := s.store.Get("recipe:"+slug, &recipe); err != nil {
		return nil, fmt.Errorf("recipe %q not found: %w", slug, err)
	}
	return &recipe, nil
}

// Search returns recipes whose title, tags or ingredients match the query.
// Ingredient matching goes through the alias resolver, so searching for
// "iogurte" finds recipes that list "yogurte natural".
func (s *Service) Search(query string) ([]models.Recipe, error) {
	recipes, err := s.Recipes()
	if err != nil {
		return nil, err
	}

	normalizedQuery := s.resolver.NormalizeForSearch(query)
	if normalizedQuery == "" {
		return nil, nil
	}

	var found []models.Recipe
	for _, recipe := range recipes {
		if s.recipeMatches(recipe, normalizedQuery) {
			found = append(found, recipe)
		}
	}
	return found, nil
}

func (s *Service) recipeMatches(recipe models.Recipe, normalizedQuery string) bool {
	if strings.Contains(textnorm.Normalize(recipe.Title), normalizedQuery) {
		return true
	}
	for _, tag := range recipe.Tags {
		if strings.Contains(textnorm.Normalize(tag), normalizedQuery) {
			return true
		}
	}
	for _, ingredient := range recipe.Ingredients {
		if strings.Contains(s.resolver.NormalizeForSearch(ingredient.Name), normalizedQuery) {
			return true
		}
	}
	return false
}

// Ensure returns the recipe for a dish name, generating and persisting it
// via the LLM when the catalog doesn't have it.
func (s *Service) Ensure(dishName string) (*models.Recipe, error) {
	slug := Slugify(dishName)

	if recipe, err := s.BySlug(slug); err == nil {
		return recipe, nil
	}

	if s.openaiClient == nil {
		return nil, fmt.Errorf("recipe %q not found and AI enrichment is disabled", dishName)
	}

	recipe, err := s.openaiClient.GetRecipeInfo(dishName)
	if err != nil {
		return nil, fmt.Errorf("failed to generate recipe for %q: %w", dishName, err)
	}

	recipe.ID = slug
	recipe.Slug = slug
	if err := s.store.Set("recipe:"+slug, recipe); err != nil {
		s.logger.Error("Failed to save recipe %s: %v", slug, err)
	}

	return recipe, nil
}

// Slugify derives a URL-safe slug from a dish name.
func Slugify(name string) string {
	normalized := textnorm.Normalize(name)
	return strings.ReplaceAll(normalized, " ", "-")
}
