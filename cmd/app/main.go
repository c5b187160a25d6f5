package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/Kombinat_Go/internal/bootstrap"
	"github.com/osse101/Kombinat_Go/internal/config"
	"github.com/osse101/Kombinat_Go/internal/identity"
	"github.com/osse101/Kombinat_Go/internal/scheduler"
	"github.com/osse101/Kombinat_Go/internal/server"
	"github.com/osse101/Kombinat_Go/internal/session"
	"github.com/osse101/Kombinat_Go/internal/worker"
)

const (
	workerCount     = 2
	workerQueueSize = 16
	shutdownTimeout = 15 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		log.Fatalf("Environment validation failed: %v", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logFile.Close()

	for _, warning := range warnings {
		slog.Warn(warning)
	}

	storage, err := bootstrap.SetupStorage(cfg)
	if err != nil {
		slog.Error("Failed to set up storage", "error", err)
		os.Exit(1)
	}

	sessions := session.NewService(storage.Progression, cfg.StorageBackend)

	pool := worker.NewPool(workerCount, workerQueueSize)
	pool.Start()

	sched := scheduler.New(pool)
	sched.Schedule(cfg.TickInterval, worker.NewTickJob(sessions))

	// Without a bot token (dev mode only) login falls back to the mock user
	var verifier *identity.Verifier
	if cfg.TelegramBotToken != "" {
		verifier = identity.NewVerifier(cfg.TelegramBotToken, 0)
	}

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, storage.Pinger, sessions, verifier, cfg.DevMode)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:       srv,
		Scheduler:    sched,
		WorkerPool:   pool,
		Sessions:     sessions,
		CloseStorage: storage.Close,
	})
}
