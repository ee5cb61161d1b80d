package handler

import (
	"github.com/go-telegram/bot"
)

// Register wires callback handlers on the bot instance. Text messages go
// through Route, installed as the bot's default handler, so that command
// matching stays case-insensitive and keyboard button labels are recognized.
func (h *Handler) Register() {
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "mode:", bot.MatchTypePrefix, h.handleModeSelect)
}
