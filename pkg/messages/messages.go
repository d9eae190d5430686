package messages

import (
	"fmt"
	"strings"

	"github.com/mazzuks/meu-menu/pkg/logger"
	"github.com/mazzuks/meu-menu/pkg/models"
	"github.com/mazzuks/meu-menu/pkg/openai"
)

// Service provides message generation functionality. Every message has a
// fixed Portuguese fallback used whenever the LLM is unavailable.
type Service struct {
	openaiClient *openai.Client
	logger       *logger.Logger
}

// New creates a new message service. A nil client means fallbacks only.
func New(openaiClient *openai.Client) *Service {
	return &Service{
		openaiClient: openaiClient,
		logger:       logger.New(""),
	}
}

func (s *Service) generate(intent string, contextData map[string]interface{}, fallback string) string {
	if s.openaiClient == nil {
		return fallback
	}
	msg, err := s.openaiClient.GenerateChatMessage(intent, contextData)
	if err != nil {
		s.logger.Error("Failed to generate %s message: %v", intent, err)
		return fallback
	}
	return msg
}

// Welcome generates the greeting for /start
func (s *Service) Welcome() string {
	return s.generate("welcome", map[string]interface{}{
		"purpose": "Ajudar a planejar refeições, despensa e lista de compras",
	}, "👋 Bem-vindo ao Meu Menu! Eu cuido da sua despensa, da lista de compras e sugiro receitas com o que você já tem em casa.")
}

// EmptyPantry generates the message for an empty pantry
func (s *Service) EmptyPantry() string {
	return s.generate("empty_pantry", map[string]interface{}{},
		"Sua despensa está vazia! Adicione itens com /despensa.")
}

// PantryContents formats the current stock
func (s *Service) PantryContents(items []models.StockItem) string {
	var b strings.Builder
	b.WriteString("🧺 Sua despensa:\n\n")
	for _, item := range items {
		fmt.Fprintf(&b, "• %s — %s %s\n", item.Desc, trimFloat(item.Qtd), item.Un)
	}
	return b.String()
}

// Suggestions generates the header for leftover-based suggestions
func (s *Service) Suggestions(titles []string) string {
	return s.generate("suggestions", map[string]interface{}{
		"recipes": titles,
	}, "🍽️ Com o que você tem em casa, dá pra fazer:\n"+formatLines(titles))
}

// RecipeApplied confirms a stock debit
func (s *Service) RecipeApplied(title string, debited int) string {
	return s.generate("recipe_applied", map[string]interface{}{
		"recipe":  title,
		"debited": debited,
	}, fmt.Sprintf("✅ %s marcada como feita! %d itens foram descontados da despensa.", title, debited))
}

// MissingIngredients formats the deficit list of a recipe
func (s *Service) MissingIngredients(title string, missing []models.ConsolidatedItem) string {
	if len(missing) == 0 {
		return fmt.Sprintf("🎉 Você tem tudo para fazer %s!", title)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🛒 Para fazer %s ainda falta:\n\n", title)
	for _, item := range missing {
		fmt.Fprintf(&b, "• %s — %s %s (%s)\n", item.Name, trimFloat(item.TotalAmount), item.Unit, item.Category)
	}
	return b.String()
}

// ShoppingList formats the current list
func (s *Service) ShoppingList(items []models.ShoppingListItem) string {
	if len(items) == 0 {
		return "Sua lista de compras está vazia."
	}

	var b strings.Builder
	b.WriteString("📝 Sua lista de compras:\n\n")
	for _, item := range items {
		check := "◻️"
		if item.Purchased {
			check = "✅"
		}
		fmt.Fprintf(&b, "%s %s — %s %s\n", check, item.Name, item.Amount, item.Unit)
	}
	return b.String()
}

// ConsolidatedList formats the merged view of the list
func (s *Service) ConsolidatedList(groups []models.ConsolidatedItem) string {
	if len(groups) == 0 {
		return "Sua lista de compras está vazia."
	}

	var b strings.Builder
	b.WriteString("📝 Lista consolidada:\n\n")
	for _, g := range groups {
		check := "◻️"
		if g.Purchased {
			check = "✅"
		}
		fmt.Fprintf(&b, "%s %s — %s %s (%d itens)\n", check, g.Name, trimFloat(g.TotalAmount), g.Unit, len(g.Items))
	}
	return b.String()
}

// Error generates an apology for a failed operation
func (s *Service) Error(context string) string {
	return s.generate("error", map[string]interface{}{
		"context": context,
	}, "😢 Ops, algo deu errado. Tente de novo mais tarde.")
}

func formatLines(lines []string) string {
	var b strings.Builder
	for i, line := range lines {
		fmt.Fprintf(&b, "%d. %s\n", i+1, line)
	}
	return b.String()
}

func trimFloat(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
