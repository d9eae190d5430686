package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Telegram Bot configuration
	BotToken string

	// OpenAI configuration (optional, AI copy falls back to fixed text)
	OpenAIAPIBase string
	OpenAIAPIKey  string
	OpenAIModel   string

	// HTTP API configuration
	HTTPPort int

	// Application configuration
	DataDir         string
	SuggestionLimit int
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	cfg := &Config{}

	// The bot token is only required by cmd/bot; cmd/server runs without it
	cfg.BotToken = os.Getenv("BOT_TOKEN")

	cfg.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	cfg.OpenAIAPIBase = getEnvWithDefault("OPENAI_API_BASE", "https://api.openai.com/v1")
	cfg.OpenAIModel = getEnvWithDefault("OPENAI_MODEL", "gpt-3.5-turbo")

	cfg.DataDir = getEnvWithDefault("DATA_DIR", "./data")

	port, err := strconv.Atoi(getEnvWithDefault("HTTP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_PORT: %w", err)
	}
	cfg.HTTPPort = port

	limit, err := strconv.Atoi(getEnvWithDefault("SUGGESTION_LIMIT", "3"))
	if err != nil {
		return nil, fmt.Errorf("invalid SUGGESTION_LIMIT: %w", err)
	}
	cfg.SuggestionLimit = limit

	// Log configuration with sensitive data redacted
	logCfg := *cfg
	if len(logCfg.BotToken) > 8 {
		logCfg.BotToken = logCfg.BotToken[:8] + "...REDACTED..."
	}
	if len(logCfg.OpenAIAPIKey) > 8 {
		logCfg.OpenAIAPIKey = logCfg.OpenAIAPIKey[:8] + "...REDACTED..."
	}
	log.Printf("Configuration loaded: %+v", logCfg)
	return cfg, nil
}

// getEnvWithDefault returns the value of the environment variable or the default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
