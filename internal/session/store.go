package session

import (
	"sync"

	"modebot/internal/domain"
)

// Store holds per-chat conversation state: an ordered, bounded message
// history and the active persona mode. State lives for the lifetime of the
// process only; a restart starts every chat fresh.
//
// The mutex protects the map itself. Per-chat semantics stay last-write-wins
// when Telegram delivers two updates for the same chat concurrently, which in
// practice it does not.
type Store struct {
	mu          sync.Mutex
	chats       map[int64]*chatState
	maxEntries  int
	defaultMode string
	validMode   func(string) bool
}

type chatState struct {
	history []domain.ChatMessage
	mode    string
}

// NewStore creates a Store keeping at most 2*maxTurns history entries per
// chat. validMode guards SetMode against unregistered mode names.
func NewStore(maxTurns int, defaultMode string, validMode func(string) bool) *Store {
	return &Store{
		chats:       make(map[int64]*chatState),
		maxEntries:  2 * maxTurns,
		defaultMode: defaultMode,
		validMode:   validMode,
	}
}

// History returns a copy of the chat's message history, oldest first.
func (s *Store) History(chatID int64) []domain.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.chats[chatID]
	if st == nil {
		return nil
	}
	out := make([]domain.ChatMessage, len(st.history))
	copy(out, st.history)
	return out
}

// AppendAndTrim adds one entry to the chat's history. When the history grows
// past 2*maxTurns entries only the most recent ones are retained, oldest
// dropped first. This bounds both memory and the context sent upstream.
func (s *Store) AppendAndTrim(chatID int64, role, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.chat(chatID)
	st.history = append(st.history, domain.ChatMessage{Role: role, Content: content})
	if len(st.history) > s.maxEntries {
		trimmed := make([]domain.ChatMessage, s.maxEntries)
		copy(trimmed, st.history[len(st.history)-s.maxEntries:])
		st.history = trimmed
	}
}

// Mode returns the chat's active mode, or the default when unset.
func (s *Store) Mode(chatID int64) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if st := s.chats[chatID]; st != nil && st.mode != "" {
		return st.mode
	}
	return s.defaultMode
}

// SetMode switches the chat to a registered mode and clears its history: the
// persona's system prompt changes, so prior context no longer applies.
// Unregistered names leave the chat untouched.
func (s *Store) SetMode(chatID int64, name string) error {
	if !s.validMode(name) {
		return domain.ErrUnknownMode
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.chat(chatID)
	st.mode = name
	st.history = nil
	return nil
}

// Reset clears the chat's history. The active mode is preserved.
func (s *Store) Reset(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if st := s.chats[chatID]; st != nil {
		st.history = nil
	}
}

func (s *Store) chat(chatID int64) *chatState {
	st := s.chats[chatID]
	if st == nil {
		st = &chatState{}
		s.chats[chatID] = st
	}
	return st
}
