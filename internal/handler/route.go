package handler

import (
	"context"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	tg "modebot/internal/telegram"
)

const textOnlyNotice = "I can only read text messages for now 😊"

type action int

const (
	actionChat action = iota
	actionStart
	actionReset
	actionModeMenu
)

// routeText classifies message text. Commands match case-insensitively with
// surrounding whitespace trimmed; /mode additionally matches only as an exact
// command, mirroring how the persistent keyboard labels are matched.
func routeText(text string) action {
	cmd := strings.ToLower(strings.TrimSpace(text))
	switch {
	case strings.HasPrefix(cmd, "/start"):
		return actionStart
	case strings.HasPrefix(cmd, "/reset"), cmd == strings.ToLower(tg.ResetButtonLabel):
		return actionReset
	case cmd == "/mode", cmd == strings.ToLower(tg.ModeButtonLabel):
		return actionModeMenu
	default:
		return actionChat
	}
}

// Route is the default update handler: everything not claimed by a registered
// callback handler lands here. Updates without a message payload are
// acknowledged by the transport and need nothing from us.
func (h *Handler) Route(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	msg := update.Message
	chatID := msg.Chat.ID

	tg.Typing(ctx, b, chatID)

	if msg.Text == "" {
		// Photos, stickers, voice notes and the like.
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   textOnlyNotice,
		})
		return
	}

	switch routeText(msg.Text) {
	case actionStart:
		h.handleStart(ctx, b, update)
	case actionReset:
		h.handleReset(ctx, b, update)
	case actionModeMenu:
		h.handleModeMenu(ctx, b, update)
	default:
		h.handleText(ctx, b, update)
	}
}
