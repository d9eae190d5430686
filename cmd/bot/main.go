package main

import (
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/mazzuks/meu-menu/pkg/catalog"
	"github.com/mazzuks/meu-menu/pkg/config"
	"github.com/mazzuks/meu-menu/pkg/list"
	"github.com/mazzuks/meu-menu/pkg/logger"
	"github.com/mazzuks/meu-menu/pkg/messages"
	"github.com/mazzuks/meu-menu/pkg/models"
	"github.com/mazzuks/meu-menu/pkg/openai"
	"github.com/mazzuks/meu-menu/pkg/pantry"
	"github.com/mazzuks/meu-menu/pkg/shoppinglist"
	"github.com/mazzuks/meu-menu/pkg/state"
	"github.com/mazzuks/meu-menu/pkg/storage"
	"github.com/mazzuks/meu-menu/pkg/suggest"
	"github.com/mazzuks/meu-menu/pkg/telegram"
)

func main() {
	log := logger.Global
	log.Info("Starting Meu Menu bot...")

	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Error("Failed to load configuration: %v", err)
		os.Exit(1)
	}

	if cfg.BotToken == "" {
		log.Error("BOT_TOKEN environment variable is required")
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
	} else {
		log.Warn("OPENAI_API_KEY not set, AI features disabled")
	}

	pantryService := pantry.New(store)
	listService := shoppinglist.New(store)
	catalogService := catalog.New(store, openaiClient)
	messageService := messages.New(openaiClient)
	stateManager := state.New()

	bot, err := telegram.New(cfg.BotToken)
	if err != nil {
		log.Error("Failed to initialize Telegram bot: %v", err)
		os.Exit(1)
	}

	commandHandlers := map[string]telegram.CommandHandler{
		"start": func(message *tgbotapi.Message) {
			bot.SendMessage(message.Chat.ID, messageService.Welcome())
		},
		"receitas": func(message *tgbotapi.Message) {
			chatID := message.Chat.ID

			recipes, err := catalogService.Recipes()
			if err != nil {
				log.Error("Failed to list recipes: %v", err)
				bot.SendMessage(chatID, messageService.Error("listar receitas"))
				return
			}

			var b strings.Builder
			b.WriteString("📖 Receitas disponíveis:\n\n")
			for _, recipe := range recipes {
				b.WriteString("• " + recipe.Title + " (/preparar " + recipe.Slug + ")\n")
			}
			bot.SendMessage(chatID, b.String())
		},
		"despensa": func(message *tgbotapi.Message) {
			chatID := message.Chat.ID

			items, err := pantryService.Items(chatID)
			if err != nil {
				log.Error("Failed to list pantry: %v", err)
				bot.SendMessage(chatID, messageService.Error("consultar despensa"))
				return
			}

			if len(items) == 0 {
				bot.SendMessage(chatID, messageService.EmptyPantry())
				return
			}
			bot.SendMessage(chatID, messageService.PantryContents(items))
		},
		"adicionar": func(message *tgbotapi.Message) {
			chatID := message.Chat.ID
			stateManager.SetState(chatID, state.StateAddingStock)
			bot.SendMessage(chatID, "🧺 Me envie os itens, um por linha (ex.: \"Tomate 2 kg\"). Quando terminar, mande /pronto.")
		},
		"pronto": func(message *tgbotapi.Message) {
			chatID := message.Chat.ID
			stateManager.ClearState(chatID)
			bot.SendMessage(chatID, "✅ Despensa atualizada! Use /despensa para conferir ou /sugerir para ideias de receitas.")
		},
		"limpar": func(message *tgbotapi.Message) {
			chatID := message.Chat.ID

			if err := pantryService.Clear(chatID); err != nil {
				log.Error("Failed to clear pantry: %v", err)
				bot.SendMessage(chatID, messageService.Error("limpar despensa"))
				return
			}
			bot.SendMessage(chatID, "🧹 Despensa esvaziada.")
		},
		"sugerir": func(message *tgbotapi.Message) {
			chatID := message.Chat.ID

			stock, err := pantryService.Items(chatID)
			if err != nil {
				log.Error("Failed to list pantry: %v", err)
				bot.SendMessage(chatID, messageService.Error("consultar despensa"))
				return
			}

			recipes, err := catalogService.Recipes()
			if err != nil {
				log.Error("Failed to list recipes: %v", err)
				bot.SendMessage(chatID, messageService.Error("listar receitas"))
				return
			}

			suggested := suggest.ByLeftovers(stock, recipes, cfg.SuggestionLimit)
			if len(suggested) == 0 {
				bot.SendMessage(chatID, "😢 Não encontrei receitas que combinem com sua despensa. Adicione mais itens com /adicionar.")
				return
			}

			titles := make([]string, len(suggested))
			for i, recipe := range suggested {
				titles[i] = recipe.Title + " (/preparar " + recipe.Slug + ")"
			}
			bot.SendMessage(chatID, messageService.Suggestions(titles))
		},
		"preparar": func(message *tgbotapi.Message) {
			chatID := message.Chat.ID
			slug := strings.TrimSpace(message.CommandArguments())
			if slug == "" {
				bot.SendMessage(chatID, "Use /preparar <receita>, por exemplo /preparar pizza-margherita.")
				return
			}

			recipe, err := catalogService.BySlug(slug)
			if err != nil {
				bot.SendMessage(chatID, "🤔 Não conheço essa receita. Veja as opções com /receitas.")
				return
			}

			debited, err := pantryService.Apply(chatID, *recipe)
			if err != nil {
				log.Error("Failed to apply recipe: %v", err)
				bot.SendMessage(chatID, messageService.Error("descontar despensa"))
				return
			}
			bot.SendMessage(chatID, messageService.RecipeApplied(recipe.Title, debited))
		},
		"faltando": func(message *tgbotapi.Message) {
			chatID := message.Chat.ID
			slug := strings.TrimSpace(message.CommandArguments())
			if slug == "" {
				bot.SendMessage(chatID, "Use /faltando <receita>, por exemplo /faltando sopa-abobora.")
				return
			}

			recipe, err := catalogService.BySlug(slug)
			if err != nil {
				bot.SendMessage(chatID, "🤔 Não conheço essa receita. Veja as opções com /receitas.")
				return
			}

			stock, err := pantryService.Items(chatID)
			if err != nil {
				log.Error("Failed to list pantry: %v", err)
				bot.SendMessage(chatID, messageService.Error("consultar despensa"))
				return
			}

			missing := list.MissingFor([]models.Recipe{*recipe}, stock)
			bot.SendMessage(chatID, messageService.MissingIngredients(recipe.Title, missing))
		},
		"completar": func(message *tgbotapi.Message) {
			chatID := message.Chat.ID
			slug := strings.TrimSpace(message.CommandArguments())
			if slug == "" {
				bot.SendMessage(chatID, "Use /completar <receita> para adicionar à lista o que falta para ela.")
				return
			}

			recipe, err := catalogService.BySlug(slug)
			if err != nil {
				bot.SendMessage(chatID, "🤔 Não conheço essa receita. Veja as opções com /receitas.")
				return
			}

			stock, err := pantryService.Items(chatID)
			if err != nil {
				log.Error("Failed to list pantry: %v", err)
				bot.SendMessage(chatID, messageService.Error("consultar despensa"))
				return
			}

			added, err := listService.CompleteForRecipes(chatID, []models.Recipe{*recipe}, stock)
			if err != nil {
				log.Error("Failed to complete list: %v", err)
				bot.SendMessage(chatID, messageService.Error("completar lista"))
				return
			}

			if len(added) == 0 {
				bot.SendMessage(chatID, "🎉 Você já tem tudo para essa receita!")
				return
			}

			items, err := listService.Items(chatID)
			if err != nil {
				log.Error("Failed to list shopping list: %v", err)
				bot.SendMessage(chatID, messageService.Error("consultar lista"))
				return
			}
			bot.SendMessage(chatID, messageService.ShoppingList(items))
		},
		"lista": func(message *tgbotapi.Message) {
			chatID := message.Chat.ID

			items, err := listService.Items(chatID)
			if err != nil {
				log.Error("Failed to list shopping list: %v", err)
				bot.SendMessage(chatID, messageService.Error("consultar lista"))
				return
			}
			bot.SendMessage(chatID, messageService.ShoppingList(items))
		},
		"consolidada": func(message *tgbotapi.Message) {
			chatID := message.Chat.ID

			groups, err := listService.Consolidated(chatID)
			if err != nil {
				log.Error("Failed to consolidate list: %v", err)
				bot.SendMessage(chatID, messageService.Error("consolidar lista"))
				return
			}
			bot.SendMessage(chatID, messageService.ConsolidatedList(groups))
		},
	}

	textHandler := func(message *tgbotapi.Message) {
		chatID := message.Chat.ID
		if stateManager.GetState(chatID) != state.StateAddingStock {
			return
		}

		var items []models.StockItem
		if openaiClient != nil {
			parsed, err := openaiClient.ParseStockFromText(message.Text)
			if err != nil {
				log.Error("Failed to parse stock via AI, falling back: %v", err)
			} else {
				items = parsed
			}
		}
		if items == nil {
			items = pantry.ParseItems(message.Text)
		}

		if len(items) == 0 {
			bot.SendMessage(chatID, "Não consegui entender os itens. Tente algo como \"Tomate 2 kg\".")
			return
		}

		if err := pantryService.AddMany(chatID, items); err != nil {
			log.Error("Failed to add stock items: %v", err)
			bot.SendMessage(chatID, messageService.Error("adicionar itens"))
			return
		}

		names := make([]string, len(items))
		for i, item := range items {
			names[i] = item.Desc
		}
		bot.SendMessage(chatID, "✅ Adicionei: "+strings.Join(names, ", ")+". Mande mais itens ou /pronto para terminar.")
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Info("Shutting down...")
		store.Close()
		os.Exit(0)
	}()

	log.Info("Bot is now running. Press CTRL-C to exit.")
	if err := bot.Start(commandHandlers, textHandler); err != nil {
		log.Error("Error running bot: %v", err)
		os.Exit(1)
	}
}
