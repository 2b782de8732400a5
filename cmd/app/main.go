package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/greenlegacy-ng/greenlegacy/docs"
	"github.com/greenlegacy-ng/greenlegacy/internal/bootstrap"
	"github.com/greenlegacy-ng/greenlegacy/internal/config"
	"github.com/greenlegacy-ng/greenlegacy/internal/donation"
	"github.com/greenlegacy-ng/greenlegacy/internal/eventlog"
	"github.com/greenlegacy-ng/greenlegacy/internal/server"
	"github.com/greenlegacy-ng/greenlegacy/internal/sse"
	"github.com/greenlegacy-ng/greenlegacy/internal/stats"
	"github.com/greenlegacy-ng/greenlegacy/internal/tree"
)

// @title Green Legacy API
// @version 1.0
// @description Tree planting registry and donation API for the Green Legacy initiative.
// @BasePath /api/v1
// @securityDefinitions.apikey AdminKey
// @in header
// @name X-API-Key
func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		return 1
	}

	if _, err := bootstrap.SetupLogger(cfg, os.Stdout); err != nil {
		slog.Error("Configuration failed", "error", err)
		return 1
	}

	if err := cfg.Validate(); err != nil {
		slog.Error("Configuration failed", "error", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storage, err := bootstrap.InitializeStorage(ctx, cfg)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		return 1
	}

	eventBus, publisher := bootstrap.InitializeEventSystem()

	hub := sse.NewHub()
	hub.Start()

	treeService := tree.NewService(storage.Trees, publisher)
	donationService := donation.NewService(storage.Donations, storage.Dataset.Tiers, publisher, cfg.PaymentCheckoutBaseURL)
	statsService := stats.NewService(storage.Dataset.Stats, storage.Trees, storage.Donations, cfg.StatsCacheTTL)
	eventLogService := eventlog.NewService(storage.EventLog)

	bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus:        eventBus,
		StatsService:    statsService,
		SSEHub:          hub,
		EventLogService: eventLogService,
	})

	pool, sched := bootstrap.InitializeBackgroundJobs(cfg, eventLogService)

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		AdminAPIKey:    cfg.AdminAPIKey,
		TrustedProxies: cfg.TrustedProxies,
		RateLimit:      cfg.RateLimitPerWindow,
		MapAccessToken: cfg.MapAccessToken,
		Version:        cfg.Version,
		Environment:    cfg.Environment,
	}, server.Services{
		Trees:     treeService,
		Donations: donationService,
		Stats:     statsService,
		EventLog:  eventLogService,
		Store:     storage.Pinger,
		Hub:       hub,
	})

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	exitCode := 0
	select {
	case <-ctx.Done():
	case err, ok := <-serverErr:
		if ok {
			slog.Error("Server failed", "error", err)
			exitCode = 1
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:             srv,
		SSEHub:             hub,
		ResilientPublisher: publisher,
		Scheduler:          sched,
		WorkerPool:         pool,
		Storage:            storage,
	})

	return exitCode
}
