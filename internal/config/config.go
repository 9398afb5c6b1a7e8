package config

import (
	"fmt"
	"os"
)

// Config holds the configuration for the application.
type Config struct {
	SpoonacularAPIKey  string
	SpoonacularBaseURL string

	// Telegram Config
	TelegramBotToken string
	BotUsername      string
}

const defaultSpoonacularBaseURL = "https://api.spoonacular.com"

// NewFromEnv creates a new Config object from environment variables.
func NewFromEnv() (*Config, error) {
	spoonacularAPIKey := os.Getenv("SPOONACULAR_API_KEY")
	if spoonacularAPIKey == "" {
		return nil, fmt.Errorf("SPOONACULAR_API_KEY environment variable not set")
	}

	telegramBotToken := os.Getenv("TELEGRAM_BOT_TOKEN")
	if telegramBotToken == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN environment variable not set")
	}

	baseURL := os.Getenv("SPOONACULAR_BASE_URL")
	if baseURL == "" {
		baseURL = defaultSpoonacularBaseURL
	}

	botUsername := os.Getenv("BOT_USERNAME")
	if botUsername == "" {
		botUsername = "CometFoodBot"
	}

	return &Config{
		SpoonacularAPIKey:  spoonacularAPIKey,
		SpoonacularBaseURL: baseURL,
		TelegramBotToken:   telegramBotToken,
		BotUsername:        botUsername,
	}, nil
}
