package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path"
	"strings"
	"sync"
	"testing"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modebot/internal/domain"
	"modebot/internal/modes"
	"modebot/internal/service"
	"modebot/internal/session"
)

type stubCompleter struct {
	reply string
	calls int
}

func (s *stubCompleter) Complete(context.Context, []domain.ChatMessage) (string, error) {
	s.calls++
	return s.reply, nil
}

type telegramCall struct {
	method  string
	payload map[string]any
}

// fakeTelegram records every Bot API call and returns minimal success
// responses.
type fakeTelegram struct {
	mu    sync.Mutex
	calls []telegramCall
}

func (f *fakeTelegram) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		method := path.Base(r.URL.Path)
		payload := decodePayload(r)

		f.mu.Lock()
		f.calls = append(f.calls, telegramCall{method: method, payload: payload})
		f.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		if method == "sendMessage" {
			w.Write([]byte(`{"ok":true,"result":{"message_id":1,"date":1,"chat":{"id":7,"type":"private"}}}`))
			return
		}
		w.Write([]byte(`{"ok":true,"result":true}`))
	}
}

// decodePayload flattens a Bot API request body; the client library sends
// multipart form data, with nested values (keyboards) as JSON strings.
func decodePayload(r *http.Request) map[string]any {
	payload := map[string]any{}
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(1 << 20); err == nil {
			for k, v := range r.MultipartForm.Value {
				if len(v) > 0 {
					payload[k] = v[0]
				}
			}
		}
		return payload
	}
	if body, err := io.ReadAll(r.Body); err == nil && len(body) > 0 {
		json.Unmarshal(body, &payload)
	}
	return payload
}

func (f *fakeTelegram) sent(method string) []map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []map[string]any
	for _, c := range f.calls {
		if c.method == method {
			out = append(out, c.payload)
		}
	}
	return out
}

func newFixture(t *testing.T, completer service.Completer) (*Handler, *session.Store, *fakeTelegram) {
	t.Helper()

	fake := &fakeTelegram{}
	srv := httptest.NewServer(fake.handler())
	t.Cleanup(srv.Close)

	registry := modes.NewRegistry()
	store := session.NewStore(10, modes.Default, registry.Valid)
	chat := service.NewChatService(store, registry, completer, true)

	b, err := bot.New("test-token", bot.WithServerURL(srv.URL), bot.WithSkipGetMe())
	require.NoError(t, err)

	h := New(Deps{Bot: b, Store: store, Registry: registry, Chat: chat})
	return h, store, fake
}

func textMessage(chatID int64, text string) *models.Update {
	return &models.Update{
		Message: &models.Message{
			ID:   1,
			Chat: models.Chat{ID: chatID, Type: "private"},
			Text: text,
		},
	}
}

func TestRouteNonTextMessageSendsNotice(t *testing.T) {
	completer := &stubCompleter{reply: "unused"}
	h, store, fake := newFixture(t, completer)

	upd := &models.Update{
		Message: &models.Message{
			ID:    1,
			Chat:  models.Chat{ID: 7, Type: "private"},
			Photo: []models.PhotoSize{{FileID: "f1", FileUniqueID: "u1", Width: 10, Height: 10}},
		},
	}
	h.Route(context.Background(), h.bot, upd)

	require.Len(t, fake.sent("sendChatAction"), 1)
	sent := fake.sent("sendMessage")
	require.Len(t, sent, 1)
	assert.Equal(t, textOnlyNotice, sent[0]["text"])

	// No history mutation, no completion call.
	assert.Empty(t, store.History(7))
	assert.Zero(t, completer.calls)
}

func TestRouteStartResetsChatAndSendsWelcome(t *testing.T) {
	h, store, fake := newFixture(t, &stubCompleter{reply: "unused"})

	require.NoError(t, store.SetMode(7, "fitness"))
	store.AppendAndTrim(7, domain.RoleUser, "old turn")

	h.Route(context.Background(), h.bot, textMessage(7, "/start"))

	assert.Equal(t, modes.Default, store.Mode(7))
	assert.Empty(t, store.History(7))

	sent := fake.sent("sendMessage")
	require.Len(t, sent, 1)
	assert.Equal(t, welcomeText, sent[0]["text"])
	assert.NotNil(t, sent[0]["reply_markup"], "welcome carries the persistent keyboard")
}

func TestModeSelectSwitchesModeAndConfirms(t *testing.T) {
	h, store, fake := newFixture(t, &stubCompleter{reply: "unused"})

	store.AppendAndTrim(7, domain.RoleUser, "old turn")

	upd := &models.Update{
		CallbackQuery: &models.CallbackQuery{
			ID:   "cb1",
			From: models.User{ID: 5},
			Data: "mode:fitness",
			Message: models.MaybeInaccessibleMessage{
				Message: &models.Message{ID: 2, Chat: models.Chat{ID: 7, Type: "private"}},
			},
		},
	}
	h.handleModeSelect(context.Background(), h.bot, upd)

	assert.Equal(t, "fitness", store.Mode(7))
	assert.Empty(t, store.History(7))

	acks := fake.sent("answerCallbackQuery")
	require.Len(t, acks, 1)
	assert.Equal(t, "Mode set to fitness", acks[0]["text"])

	sent := fake.sent("sendMessage")
	require.Len(t, sent, 1)
	assert.Equal(t, "✅ Mode switched to *Fitness*", sent[0]["text"])
	assert.NotNil(t, sent[0]["reply_markup"], "confirmation re-renders the mode keyboard")
}

func TestModeSelectUnknownModeIsSilentlyDropped(t *testing.T) {
	h, store, fake := newFixture(t, &stubCompleter{reply: "unused"})

	require.NoError(t, store.SetMode(7, "restaurant"))
	store.AppendAndTrim(7, domain.RoleUser, "old turn")

	upd := &models.Update{
		CallbackQuery: &models.CallbackQuery{
			ID:   "cb2",
			From: models.User{ID: 5},
			Data: "mode:pirate",
			Message: models.MaybeInaccessibleMessage{
				Message: &models.Message{ID: 2, Chat: models.Chat{ID: 7, Type: "private"}},
			},
		},
	}
	h.handleModeSelect(context.Background(), h.bot, upd)

	assert.Equal(t, "restaurant", store.Mode(7))
	assert.Len(t, store.History(7), 1)
	assert.Empty(t, fake.calls)
}

func TestRouteFreeTextRepliesWithModeLabel(t *testing.T) {
	h, store, fake := newFixture(t, &stubCompleter{reply: "drink more water"})

	require.NoError(t, store.SetMode(7, "fitness"))
	h.Route(context.Background(), h.bot, textMessage(7, "any tips?"))

	sent := fake.sent("sendMessage")
	require.Len(t, sent, 1)
	assert.Equal(t, "💬 *[Fitness Mode]*\n\ndrink more water", sent[0]["text"])
	assert.NotNil(t, sent[0]["reply_markup"])

	history := store.History(7)
	require.Len(t, history, 2)
	assert.Equal(t, "drink more water", history[1].Content)
}
