package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mazzuks/meu-menu/pkg/api"
	"github.com/mazzuks/meu-menu/pkg/catalog"
	"github.com/mazzuks/meu-menu/pkg/config"
	"github.com/mazzuks/meu-menu/pkg/logger"
	"github.com/mazzuks/meu-menu/pkg/openai"
	"github.com/mazzuks/meu-menu/pkg/pantry"
	"github.com/mazzuks/meu-menu/pkg/shoppinglist"
	"github.com/mazzuks/meu-menu/pkg/storage"
)

func main() {
	log := logger.Global
	log.Info("Starting Meu Menu API server...")

	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Error("Failed to load configuration: %v", err)
		os.Exit(1)
	}

	store, err := storage.New(cfg.DataDir)
	if err != nil {
		log.Error("Failed to initialize storage: %v", err)
		os.Exit(1)
	}
	defer store.Close()
	store.StartGCRoutine(10 * time.Minute)

	var openaiClient *openai.Client
	if cfg.OpenAIAPIKey != "" {
		openaiClient = openai.New(cfg.OpenAIAPIKey, cfg.OpenAIAPIBase, cfg.OpenAIModel)
	}

	pantryService := pantry.New(store)
	listService := shoppinglist.New(store)
	catalogService := catalog.New(store, openaiClient)

	router := api.NewRouter(pantryService, listService, catalogService, cfg.SuggestionLimit)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Info("Shutting down...")
		store.Close()
		os.Exit(0)
	}()

	log.Info("API listening on port %d", cfg.HTTPPort)
	if err := router.Run(cfg.HTTPPort); err != nil {
		log.Error("HTTP server error: %v", err)
		os.Exit(1)
	}
}
