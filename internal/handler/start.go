package handler

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"modebot/internal/modes"
	tg "modebot/internal/telegram"
)

const welcomeText = "👋 Hi! I'm your AI assistant.\n" +
	"• Use /reset to clear memory\n" +
	"• Use /mode to change my role (restaurant, fitness, realestate)\n" +
	"Default mode: General ✅"

// handleStart puts the chat back to a fresh state: default mode, empty
// history, persistent keyboard attached to the welcome message.
func (h *Handler) handleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID

	if err := h.store.SetMode(chatID, modes.Default); err != nil {
		slog.Error("reset chat on /start", "chat_id", chatID, "error", err)
		return
	}

	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        welcomeText,
		ParseMode:   models.ParseModeMarkdownV1,
		ReplyMarkup: tg.MainKeyboard(),
	})
	if err != nil {
		slog.Error("send welcome", "chat_id", chatID, "error", err)
	}
}
