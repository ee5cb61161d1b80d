package handler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"modebot/internal/modes"
	tg "modebot/internal/telegram"
)

// handleText treats the message as one conversational turn: the chat service
// records it, asks the completion service for a reply and records that too.
// The reply goes out prefixed with a visible mode label.
func (h *Handler) handleText(ctx context.Context, b *bot.Bot, update *models.Update) {
	msg := update.Message
	chatID := msg.Chat.ID

	reply := h.chat.Converse(ctx, chatID, msg.Text)

	label := modes.Title(h.store.Mode(chatID))
	text := fmt.Sprintf("💬 *[%s Mode]*\n\n%s", label, reply)

	if err := tg.SendMarkdown(ctx, b, chatID, text, tg.MainKeyboard()); err != nil {
		slog.Error("send reply", "chat_id", chatID, "error", err)
	}
}
