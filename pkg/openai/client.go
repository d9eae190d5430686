package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/mazzuks/meu-menu/pkg/logger"
	"github.com/mazzuks/meu-menu/pkg/models"
)

// Client represents an OpenAI API client
type Client struct {
	client *openai.Client
	model  string
	logger *logger.Logger
}

// New creates a new OpenAI client
func New(apiKey, apiBase, model string) *Client {
	config := openai.DefaultConfig(apiKey)
	if apiBase != "" {
		config.BaseURL = apiBase
	}

	client := openai.NewClientWithConfig(config)
	return &Client{
		client: client,
		model:  model,
		logger: logger.New(""),
	}
}

// recipeInfo is the JSON shape the model is asked to return
type recipeInfo struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	PrepTime    int    `json:"prep_time_minutes"`
	Difficulty  string `json:"difficulty"`
	Servings    int    `json:"servings"`
	Category    string `json:"category"`
	Ingredients []struct {
		Name   string `json:"name"`
		Amount string `json:"amount"`
		Unit   string `json:"unit"`
	} `json:"ingredients"`
	Instructions []string `json:"instructions"`
}

// GetRecipeInfo asks the model for a complete Portuguese recipe for a dish
// the static catalog doesn't know.
func (c *Client) GetRecipeInfo(dishName string) (*models.Recipe, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	prompt := fmt.Sprintf(`
Você é um especialista em culinária. Forneça a receita completa de "%s" em português brasileiro.
Retorne no seguinte formato JSON:
{
  "title": "Nome completo do prato",
  "description": "Descrição breve",
  "prep_time_minutes": 30,
  "difficulty": "Fácil" | "Médio" | "Difícil",
  "servings": 4,
  "category": "Tipo de cozinha",
  "ingredients": [{"name": "ingrediente", "amount": "200", "unit": "g"}, ...],
  "instructions": ["passo 1", "passo 2", ...]
}
Os campos "amount" devem ser numéricos em texto. Retorne apenas o JSON, sem outro texto.
`, dishName)

	c.logger.Info("Requesting recipe info for %s", dishName)
	c.logger.Debug("OpenAI prompt (first 100 chars): %s", truncateString(prompt, 100))

	resp, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: c.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: "Você é um especialista em culinária que fornece receitas precisas em português brasileiro.",
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			Temperature: 0.3,
		},
	)

	if err != nil {
		return nil, fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from OpenAI API")
	}

	content := cleanJSONResponse(resp.Choices[0].Message.Content)
	c.logger.Debug("OpenAI response (first 100 chars): %s", truncateString(content, 100))

	var info recipeInfo
	if err := json.Unmarshal([]byte(content), &info); err != nil {
		c.logger.Error("Failed to parse response: %v, Content: %s", err, content)
		return nil, fmt.Errorf("failed to parse OpenAI response: %w", err)
	}

	recipe := &models.Recipe{
		Title:        info.Title,
		Description:  info.Description,
		PrepTime:     info.PrepTime,
		Difficulty:   info.Difficulty,
		Servings:     info.Servings,
		Category:     info.Category,
		Instructions: info.Instructions,
	}
	for i, ing := range info.Ingredients {
		recipe.Ingredients = append(recipe.Ingredients, models.Ingredient{
			ID:     fmt.Sprintf("%d", i+1),
			Name:   ing.Name,
			Amount: ing.Amount,
			Unit:   ing.Unit,
		})
	}

	c.logger.Info("Successfully got recipe info for: %s", dishName)
	return recipe, nil
}

// stockLine is the JSON shape for parsed pantry entries
type stockLine struct {
	Desc string  `json:"desc"`
	Qtd  float64 `json:"qtd"`
	Un   string  `json:"un"`
}

// ParseStockFromText extracts pantry entries from free text the user sent
// ("2 kg de tomate, uma dúzia de ovos...").
func (c *Client) ParseStockFromText(text string) ([]models.StockItem, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	prompt := fmt.Sprintf(`
Você é um assistente de cozinha. Extraia os itens de despensa do texto abaixo.
Retorne apenas um array JSON, sem outro texto, no formato:
[{"desc": "Tomate", "qtd": 2, "un": "kg"}, {"desc": "Ovos", "qtd": 12, "un": "un"}]

Texto: %s
`, text)

	c.logger.Info("Parsing stock items from text")
	c.logger.Debug("Text to parse (first 100 chars): %s", truncateString(text, 100))

	resp, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: c.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			Temperature: 0.2,
		},
	)

	if err != nil {
		return nil, fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from OpenAI API")
	}

	content := cleanJSONResponse(resp.Choices[0].Message.Content)

	var lines []stockLine
	if err := json.Unmarshal([]byte(content), &lines); err != nil {
		c.logger.Error("Failed to parse response: %v, Content: %s", err, content)
		return nil, fmt.Errorf("failed to parse OpenAI response: %w", err)
	}

	items := make([]models.StockItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, models.StockItem{
			Desc:      line.Desc,
			Qtd:       line.Qtd,
			Un:        line.Un,
			Categoria: "Diversos",
		})
	}
	return items, nil
}

// GenerateChatMessage generates a chat message for a specific intent
func (c *Client) GenerateChatMessage(intent string, contextData map[string]interface{}) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	contextJSON, err := json.Marshal(contextData)
	if err != nil {
		return "", fmt.Errorf("failed to marshal context: %w", err)
	}

	prompt := fmt.Sprintf(`
Você é o assistente de cozinha do app Meu Menu. Gere uma mensagem curta e simpática em português brasileiro para a intenção: "%s".
Use o contexto abaixo para personalizar a mensagem. Mantenha-a concisa, pensada para celular, com emojis apropriados.

Contexto:
%s

Retorne apenas o texto da mensagem, sem explicações.
`, intent, string(contextJSON))

	c.logger.Info("Generating chat message for intent: %s", intent)

	resp, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: c.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			Temperature: 0.7,
		},
	)

	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from OpenAI API")
	}

	return resp.Choices[0].Message.Content, nil
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

// cleanJSONResponse strips the markdown code fences the model sometimes
// wraps JSON in.
func cleanJSONResponse(s string) string {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "```") {
		firstLineEnd := strings.Index(s, "\n")
		if firstLineEnd != -1 {
			s = s[firstLineEnd+1:]
		}

		if strings.HasSuffix(s, "```") {
			s = s[:len(s)-3]
		}

		s = strings.TrimSpace(s)
	}

	return s
}
