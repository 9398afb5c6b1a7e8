package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"comet-food-bot/internal/config"
	"comet-food-bot/internal/dialog"
	"comet-food-bot/internal/plan"
	"comet-food-bot/internal/session"
	"comet-food-bot/internal/spoonacular"
	"comet-food-bot/internal/telegram"
)

func main() {
	// 1. Load Configuration (.env is optional, env vars win)
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}
	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Initialize process-scoped state
	plans := plan.NewRegistry()
	sessions := session.NewStore()
	detailCache := spoonacular.NewDetailCache()

	// 3. Initialize Services
	recipeClient := spoonacular.NewClient(cfg, detailCache)
	engine := dialog.NewEngine(plans, recipeClient, sessions)

	// 4. Initialize Telegram Bot
	bot, err := telegram.NewBot(cfg, engine)
	if err != nil {
		log.Fatalf("Failed to initialize Telegram Bot: %v", err)
	}

	// 5. Idle-session sweep, independent of message handling
	sweeper := cron.New()
	if _, err := sweeper.AddFunc("@every 5m", func() {
		if removed := sessions.CleanupIdle(session.IdleTimeout); removed > 0 {
			log.Printf("Cleaned up %d idle conversation(s)", removed)
		}
	}); err != nil {
		log.Fatalf("Failed to schedule session cleanup: %v", err)
	}
	sweeper.Start()
	defer sweeper.Stop()

	// 6. Poll until interrupted
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log.Println("Polling for updates...")
	if err := bot.Run(ctx); err != nil {
		log.Fatalf("Bot stopped: %v", err)
	}
	log.Println("Shutting down")
}
