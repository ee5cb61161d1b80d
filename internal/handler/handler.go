package handler

import (
	"github.com/go-telegram/bot"

	"modebot/internal/modes"
	"modebot/internal/service"
	"modebot/internal/session"
)

// Handler holds all dependencies needed by command, callback and free-text
// handlers.
type Handler struct {
	bot      *bot.Bot
	store    *session.Store
	registry *modes.Registry
	chat     *service.ChatService
}

// Deps contains all dependencies required to construct a Handler.
type Deps struct {
	Bot      *bot.Bot
	Store    *session.Store
	Registry *modes.Registry
	Chat     *service.ChatService
}

// New creates a new Handler from the provided dependencies.
func New(deps Deps) *Handler {
	return &Handler{
		bot:      deps.Bot,
		store:    deps.Store,
		registry: deps.Registry,
		chat:     deps.Chat,
	}
}
