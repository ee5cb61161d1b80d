package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"modebot/internal/domain"
)

func TestCompleteSendsSystemPromptFirst(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"a reply"}}]}`))
	}))
	defer srv.Close()

	svc := NewCompletionService("test-key", srv.URL, "gpt-4o-mini")
	reply, err := svc.Complete(context.Background(), []domain.ChatMessage{
		{Role: domain.RoleSystem, Content: "be brief"},
		{Role: domain.RoleUser, Content: "hi"},
	})

	require.NoError(t, err)
	require.Equal(t, "a reply", reply)
	require.Equal(t, "gpt-4o-mini", got.Model)
	require.Len(t, got.Messages, 2)
	require.Equal(t, domain.RoleSystem, got.Messages[0].Role)
}

func TestCompleteNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	svc := NewCompletionService("k", srv.URL, "m")
	_, err := svc.Complete(context.Background(), nil)
	require.ErrorIs(t, err, domain.ErrEmptyCompletion)
}

func TestCompleteEmptyContentIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[{"message":{"content":""}}]}`))
	}))
	defer srv.Close()

	svc := NewCompletionService("k", srv.URL, "m")
	reply, err := svc.Complete(context.Background(), nil)
	require.NoError(t, err)
	require.Empty(t, reply)
}

func TestCompleteErrorStatuses(t *testing.T) {
	for _, status := range []int{http.StatusTooManyRequests, http.StatusInternalServerError, http.StatusServiceUnavailable} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		svc := NewCompletionService("k", srv.URL, "m")
		_, err := svc.Complete(context.Background(), nil)
		require.Error(t, err, "status %d must surface as an error", status)
		srv.Close()
	}
}
