package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"modebot/internal/config"
	"modebot/internal/handler"
	"modebot/internal/middleware"
	"modebot/internal/modes"
	"modebot/internal/service"
	"modebot/internal/session"
)

func main() {
	// Setup structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Setup context with graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize per-chat state and services
	registry := modes.NewRegistry()
	store := session.NewStore(config.MaxTurns, modes.Default, registry.Valid)
	completion := service.NewCompletionService(cfg.OpenAIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel)
	chat := service.NewChatService(store, registry, completion, cfg.PersistFallbackReplies)

	// Handler pointer for use in default handler closure
	var h *handler.Handler

	opts := []bot.Option{
		bot.WithMiddlewares(
			middleware.Recover(),
			middleware.Logging(),
		),
		bot.WithDefaultHandler(func(ctx context.Context, b *bot.Bot, update *models.Update) {
			if h == nil {
				return
			}
			h.Route(ctx, b, update)
		}),
	}
	if cfg.WebhookSecret != "" {
		opts = append(opts, bot.WithWebhookSecretToken(cfg.WebhookSecret))
	}

	b, err := bot.New(cfg.BotToken, opts...)
	if err != nil {
		slog.Error("failed to create bot", "error", err)
		os.Exit(1)
	}

	me, err := b.GetMe(ctx)
	if err != nil {
		slog.Error("failed to get bot info", "error", err)
		os.Exit(1)
	}
	slog.Info("bot info retrieved", "id", me.ID, "username", me.Username)

	h = handler.New(handler.Deps{
		Bot:      b,
		Store:    store,
		Registry: registry,
		Chat:     chat,
	})
	h.Register()

	if cfg.WebhookURL != "" {
		runWebhook(ctx, b, cfg, stop)
	} else {
		// Local runs: long polling needs no public endpoint.
		if _, err := b.DeleteWebhook(ctx, &bot.DeleteWebhookParams{
			DropPendingUpdates: cfg.DropPendingUpdates,
		}); err != nil {
			slog.Warn("delete webhook before polling", "error", err)
		}
		slog.Info("starting bot", "mode", "polling", "username", me.Username)
		b.Start(ctx)
	}

	slog.Info("bot stopped gracefully")
}

// runWebhook registers the webhook with Telegram, serves it over HTTP and
// feeds delivered updates into the bot until ctx is canceled. The webhook
// endpoint always acknowledges with 200 so Telegram does not retry.
func runWebhook(ctx context.Context, b *bot.Bot, cfg *config.Config, stop context.CancelFunc) {
	if _, err := b.SetWebhook(ctx, &bot.SetWebhookParams{
		URL:                cfg.WebhookURL,
		SecretToken:        cfg.WebhookSecret,
		DropPendingUpdates: cfg.DropPendingUpdates,
	}); err != nil {
		slog.Error("failed to set webhook", "error", err)
		os.Exit(1)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /webhook", b.WebhookHandler())

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: mux,
	}

	go func() {
		slog.Info("webhook server listening", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("webhook server failed", "error", err)
			stop()
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Warn("webhook server shutdown", "error", err)
		}
	}()

	slog.Info("starting bot", "mode", "webhook", "url", cfg.WebhookURL)
	b.StartWebhook(ctx)
}
