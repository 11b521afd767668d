package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/nmakarov/pickbot/internal/bot"
	"github.com/nmakarov/pickbot/internal/pkg/config"
	"github.com/nmakarov/pickbot/internal/pkg/health"
	"github.com/nmakarov/pickbot/internal/pkg/logging"
	"github.com/nmakarov/pickbot/internal/pkg/oddsapi"
	"github.com/nmakarov/pickbot/internal/pkg/storage"
)

const serviceName = "pickbot"

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "config.yaml", "Path to config file")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if _, err := logging.SetupLogger(&cfg.Logging, serviceName); err != nil {
		log.Fatalf("Failed to setup logger: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid config", "error", err)
		os.Exit(1)
	}

	loc, err := time.LoadLocation(cfg.Display.Timezone)
	if err != nil {
		slog.Error("Invalid display timezone", "zone", cfg.Display.Timezone, "error", err)
		os.Exit(1)
	}

	api, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		slog.Error("Failed to create Telegram bot", "error", err)
		os.Exit(1)
	}
	api.Debug = false
	slog.Info("Authorized on Telegram", "account", api.Self.UserName)

	source := oddsapi.NewClient(&cfg.OddsAPI)

	var cache bot.SnapshotCache
	if cfg.Redis.Addr != "" {
		snapshots, err := storage.NewSnapshotCache(&cfg.Redis)
		if err != nil {
			slog.Error("Failed to connect snapshot cache", "error", err)
			os.Exit(1)
		}
		defer snapshots.Close()
		cache = snapshots
		slog.Info("Snapshot cache enabled", "addr", cfg.Redis.Addr, "ttl", cfg.Redis.SnapshotTTL.Std())
	}

	var prefs bot.PrefsStore
	if cfg.Postgres.DSN != "" {
		prefsStorage, err := storage.NewPostgresPrefsStorage(&cfg.Postgres)
		if err != nil {
			slog.Error("Failed to connect preferences storage", "error", err)
			os.Exit(1)
		}
		defer prefsStorage.Close()
		prefs = prefsStorage
	}

	service := bot.NewService(api, source, cache, prefs, bot.Options{
		DefaultLocation: loc,
		DefaultLeague:   cfg.Display.League,
		ChunkLimit:      cfg.Display.ChunkLimit,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		slog.Info("Received shutdown signal, stopping bot")
		cancel()
	}()

	if cfg.Health.Port > 0 {
		health.Run(ctx, health.AddrFor(cfg.Health.Port), serviceName, cfg.Health.ReadHeaderTimeout.Std())
	}

	switch cfg.Telegram.Mode {
	case "webhook":
		runWebhook(ctx, cfg, service)
	default:
		runPolling(ctx, cfg, api, service)
	}

	slog.Info("Bot stopped")
}

func runPolling(ctx context.Context, cfg *config.Config, api *tgbotapi.BotAPI, service *bot.Service) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = cfg.Telegram.UpdateTimeout

	updates := api.GetUpdatesChan(u)
	slog.Info("Polling for updates", "timeout", cfg.Telegram.UpdateTimeout)

	for {
		select {
		case <-ctx.Done():
			api.StopReceivingUpdates()
			return
		case update := <-updates:
			service.HandleUpdate(ctx, update)
		}
	}
}

func runWebhook(ctx context.Context, cfg *config.Config, service *bot.Service) {
	srv := &http.Server{
		Addr:              cfg.Telegram.WebhookAddr,
		Handler:           service.WebhookHandler(cfg.Telegram.WebhookSecret),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	slog.Info("Webhook server listening", "addr", cfg.Telegram.WebhookAddr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("Webhook server error", "error", err)
		os.Exit(1)
	}
}
