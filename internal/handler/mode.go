package handler

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"modebot/internal/modes"
	tg "modebot/internal/telegram"
)

const chooseModeText = "👉 Choose a mode:"

// handleModeMenu shows the mode-selection inline keyboard with the chat's
// active mode check-marked.
func (h *Handler) handleModeMenu(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID

	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        chooseModeText,
		ReplyMarkup: modeKeyboard(h.registry.Names(), h.store.Mode(chatID)),
	})
	if err != nil {
		slog.Error("send mode menu", "chat_id", chatID, "error", err)
	}
}

// handleModeSelect processes a press on a mode-selection button. A payload
// naming an unregistered mode is dropped without touching state or replying.
func (h *Handler) handleModeSelect(ctx context.Context, b *bot.Bot, update *models.Update) {
	cq := update.CallbackQuery
	if cq == nil || cq.Message.Message == nil {
		return
	}
	chatID := cq.Message.Message.Chat.ID
	name := strings.TrimPrefix(cq.Data, "mode:")

	if err := h.store.SetMode(chatID, name); err != nil {
		slog.Warn("ignoring unknown mode selection", "chat_id", chatID, "mode", name)
		return
	}

	if _, err := b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: cq.ID,
		Text:            fmt.Sprintf("Mode set to %s", name),
	}); err != nil {
		slog.Warn("answer mode callback", "chat_id", chatID, "error", err)
	}

	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        fmt.Sprintf("✅ Mode switched to *%s*", modes.Title(name)),
		ParseMode:   models.ParseModeMarkdownV1,
		ReplyMarkup: modeKeyboard(h.registry.Names(), name),
	})
	if err != nil {
		slog.Error("send mode confirmation", "chat_id", chatID, "error", err)
	}
}

// modeKeyboard renders one row per registered mode, in registry order, with a
// checkmark on the active one. Callback payload is "mode:<name>".
func modeKeyboard(names []string, active string) *models.InlineKeyboardMarkup {
	rows := make([][]models.InlineKeyboardButton, 0, len(names))
	for _, name := range names {
		label := modes.Title(name)
		if name == active {
			label = "✅ " + label
		}
		rows = append(rows, tg.ButtonRow(tg.InlineButton(label, "mode:"+name)))
	}
	return tg.InlineKeyboard(rows...)
}
