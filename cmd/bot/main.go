package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-telegram/bot"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/collegepyq/pyq-bot/internal/app"
	"github.com/collegepyq/pyq-bot/internal/cache"
	"github.com/collegepyq/pyq-bot/internal/config"
	"github.com/collegepyq/pyq-bot/internal/controller"
	"github.com/collegepyq/pyq-bot/internal/repository"
	"github.com/collegepyq/pyq-bot/internal/service"
	"github.com/collegepyq/pyq-bot/internal/sheets"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		logger.Fatal("Failed to create database pool", zap.Error(err))
	}
	defer pool.Close()

	migrator, err := app.NewMigrator(pool)
	if err != nil {
		logger.Fatal("Failed to create migrator", zap.Error(err))
	}
	if err := migrator.Run(ctx); err != nil {
		logger.Fatal("Failed to apply migrations", zap.Error(err))
	}
	migrator.Close()

	states := service.NewStateService(repository.NewUserStateRepository(pool), logger)

	sheetsClient, err := sheets.NewClient(ctx, cfg.CredentialsFile, cfg.SpreadsheetID, cfg.SheetRange, logger)
	if err != nil {
		logger.Fatal("Failed to create sheets client", zap.Error(err))
	}

	index := cache.New(sheetsClient, cfg.CacheTTL, logger)
	lookup := service.NewLookupService(index, logger)

	ctrl, err := controller.NewBotController(cfg.TelegramToken, lookup, states, cfg.DonationQRPath, logger)
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}
	if err := ctrl.RegisterHandlers(ctx); err != nil {
		logger.Warn("Failed to register command menu", zap.Error(err))
	}

	// Warm the index so the first user does not pay the fetch cost. A
	// failure here is not fatal: the next request retries lazily.
	if err := index.RefreshIfStale(ctx); err != nil {
		logger.Warn("Initial subject index fetch failed", zap.Error(err))
	}

	logger.Info("Starting PYQ bot",
		zap.String("environment", cfg.Environment),
		zap.Bool("webhook", cfg.WebhookURL != ""))

	if cfg.WebhookURL != "" {
		runWebhook(ctx, ctrl.Bot(), cfg, logger)
		return
	}

	ctrl.Start(ctx)
}

// runWebhook registers the webhook with Telegram and serves updates over
// HTTP until the context is cancelled.
func runWebhook(ctx context.Context, b *bot.Bot, cfg *config.Config, logger *zap.Logger) {
	if _, err := b.SetWebhook(ctx, &bot.SetWebhookParams{URL: cfg.WebhookURL}); err != nil {
		logger.Fatal("Failed to set webhook", zap.Error(err))
	}

	go b.StartWebhook(ctx)

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: b.WebhookHandler(),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		srv.Shutdown(shutdownCtx)
	}()

	logger.Info("Serving webhook", zap.String("addr", cfg.ListenAddr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("Webhook server failed", zap.Error(err))
	}
}
