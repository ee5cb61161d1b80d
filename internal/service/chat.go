package service

import (
	"context"
	"log/slog"

	"modebot/internal/domain"
	"modebot/internal/modes"
	"modebot/internal/session"
)

// User-facing fallback replies. FallbackReply covers completion-service
// failures; EmptyReply stands in for a successful call with empty content.
const (
	FallbackReply = "Sorry, I ran into an issue."
	EmptyReply    = "..."
)

// Completer generates text from an ordered message list whose first element
// is the system prompt.
type Completer interface {
	Complete(ctx context.Context, messages []domain.ChatMessage) (string, error)
}

// ChatService runs one conversational turn: record the user message, resolve
// the active persona's system prompt, call the completion service, record and
// return the reply.
type ChatService struct {
	store           *session.Store
	registry        *modes.Registry
	completer       Completer
	persistFallback bool
}

func NewChatService(store *session.Store, registry *modes.Registry, completer Completer, persistFallback bool) *ChatService {
	return &ChatService{
		store:           store,
		registry:        registry,
		completer:       completer,
		persistFallback: persistFallback,
	}
}

// Converse never surfaces completion failures to the caller; they are logged
// and downgraded to FallbackReply. With persistFallback enabled the fallback
// text is recorded as the assistant turn, matching what the user saw.
func (s *ChatService) Converse(ctx context.Context, chatID int64, text string) string {
	s.store.AppendAndTrim(chatID, domain.RoleUser, text)

	prompt := s.registry.PromptFor(s.store.Mode(chatID))
	history := s.store.History(chatID)
	messages := make([]domain.ChatMessage, 0, len(history)+1)
	messages = append(messages, domain.ChatMessage{Role: domain.RoleSystem, Content: prompt})
	messages = append(messages, history...)

	reply, err := s.completer.Complete(ctx, messages)
	fallback := false
	switch {
	case err != nil:
		slog.Error("completion failed", "chat_id", chatID, "error", err)
		reply = FallbackReply
		fallback = true
	case reply == "":
		reply = EmptyReply
		fallback = true
	}

	if !fallback || s.persistFallback {
		s.store.AppendAndTrim(chatID, domain.RoleAssistant, reply)
	}
	return reply
}
