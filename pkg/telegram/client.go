package telegram

import (
	"context"
	"fmt"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/glowdecor/backend/pkg/config"
)

// Client wraps the Telegram Bot API surface the ingestion flow needs.
type Client struct {
	bot   *tgbot.Bot
	token string
}

func New(cfg config.TelegramConfig) (*Client, error) {
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("telegram bot token is required")
	}

	// The webhook receiver never polls, so skip the startup getMe round trip.
	b, err := tgbot.New(cfg.BotToken, tgbot.WithSkipGetMe())
	if err != nil {
		return nil, fmt.Errorf("creating telegram bot: %w", err)
	}

	return &Client{bot: b, token: cfg.BotToken}, nil
}

// SendHTML delivers an HTML-formatted chat message.
func (c *Client) SendHTML(ctx context.Context, chatID int64, text string) error {
	_, err := c.bot.SendMessage(ctx, &tgbot.SendMessageParams{
		ChatID:    chatID,
		Text:      text,
		ParseMode: models.ParseModeHTML,
	})
	return err
}

// FileURL builds the Bot API download URL for a file id.
func (c *Client) FileURL(fileID string) string {
	return fmt.Sprintf("https://api.telegram.org/file/bot%s/%s", c.token, fileID)
}
