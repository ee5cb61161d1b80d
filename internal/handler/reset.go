package handler

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	tg "modebot/internal/telegram"
)

const resetConfirmation = "Memory cleared. Fresh start! ✨"

// handleReset clears the chat's history; the active mode is preserved.
func (h *Handler) handleReset(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID

	h.store.Reset(chatID)

	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        resetConfirmation,
		ParseMode:   models.ParseModeMarkdownV1,
		ReplyMarkup: tg.MainKeyboard(),
	})
	if err != nil {
		slog.Error("send reset confirmation", "chat_id", chatID, "error", err)
	}
}
