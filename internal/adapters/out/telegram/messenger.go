// Package telegram adapts the Telegram Bot API to the Messenger port. Two
// bot identities exist side by side: the staff bot carrying the channel
// log and staff notices, and the customer bot carrying customer notices.
package telegram

import (
	"context"

	"orderdesk/internal/core/ports"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Messenger sends messages through one Telegram bot identity.
type Messenger struct {
	bot *tgbotapi.BotAPI
}

// NewMessenger wraps a connected bot client.
func NewMessenger(bot *tgbotapi.BotAPI) *Messenger {
	return &Messenger{bot: bot}
}

// Send delivers one message with optional inline keyboard rows. The bot
// client has no context support of its own, so the call runs in a
// goroutine and the context bounds how long the caller waits.
func (m *Messenger) Send(ctx context.Context, chatID int64, text string, buttons [][]ports.Button) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if len(buttons) > 0 {
		msg.ReplyMarkup = inlineKeyboard(buttons)
	}

	done := make(chan error, 1)
	go func() {
		_, err := m.bot.Send(msg)
		done <- err
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// inlineKeyboard maps button rows onto Telegram's inline keyboard. A
// button carries either opaque callback data or a URL, never both.
func inlineKeyboard(buttons [][]ports.Button) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(buttons))
	for _, row := range buttons {
		keyboardRow := make([]tgbotapi.InlineKeyboardButton, 0, len(row))
		for _, b := range row {
			if b.URL != "" {
				keyboardRow = append(keyboardRow, tgbotapi.NewInlineKeyboardButtonURL(b.Label, b.URL))
				continue
			}
			keyboardRow = append(keyboardRow, tgbotapi.NewInlineKeyboardButtonData(b.Label, b.Action))
		}
		rows = append(rows, keyboardRow)
	}

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
