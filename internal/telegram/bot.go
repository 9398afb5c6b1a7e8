// Package telegram binds the dialogue engine to Telegram long polling. It
// owns the addressing rules for group chats and delivers at most one reply
// per inbound message.
package telegram

import (
	"context"
	"fmt"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"comet-food-bot/internal/config"
	"comet-food-bot/internal/dialog"
)

// Bot wraps the Telegram API and the dialogue engine.
type Bot struct {
	api     *tgbotapi.BotAPI
	engine  *dialog.Engine
	mention string
}

// NewBot initializes the Telegram bot API client.
func NewBot(cfg *config.Config, engine *dialog.Engine) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram api: %w", err)
	}

	log.Printf("Authorized on account %s", api.Self.UserName)

	return &Bot{
		api:     api,
		engine:  engine,
		mention: "@" + cfg.BotUsername,
	}, nil
}

// Run starts long polling and blocks until ctx is cancelled. Updates are
// handled sequentially, which keeps messages from the same user ordered.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	defer b.api.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil || update.Message.Text == "" {
				continue
			}
			b.handleMessage(ctx, update.Message)
		}
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	text := msg.Text
	log.Printf("(%d) Received %s chat: <%s>", msg.Chat.ID, msg.Chat.Type, text)

	if msg.Chat.IsGroup() || msg.Chat.IsSuperGroup() {
		stripped, addressed := stripMention(text, b.mention)
		if !addressed {
			// Group chatter not addressed to the bot gets no reply.
			return
		}
		text = stripped
	}

	reply := b.engine.HandleMessage(ctx, msg.From.ID, text)
	if reply == "" {
		return
	}
	log.Printf("(%d) Bot: %s", msg.Chat.ID, reply)

	if _, err := b.api.Send(tgbotapi.NewMessage(msg.Chat.ID, reply)); err != nil {
		log.Printf("Failed to send reply to chat %d: %v", msg.Chat.ID, err)
	}
}

// stripMention removes the bot's mention token from a group message and
// reports whether the message was addressed to the bot at all.
func stripMention(text, mention string) (string, bool) {
	if !strings.Contains(text, mention) {
		return "", false
	}
	return strings.TrimSpace(strings.Replace(text, mention, "", 1)), true
}
