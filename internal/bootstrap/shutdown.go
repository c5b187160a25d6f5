package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/Kombinat_Go/internal/scheduler"
	"github.com/osse101/Kombinat_Go/internal/server"
	"github.com/osse101/Kombinat_Go/internal/session"
	"github.com/osse101/Kombinat_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server       *server.Server
	Scheduler    *scheduler.Scheduler
	WorkerPool   *worker.Pool
	Sessions     session.Service
	CloseStorage func()
}

// GracefulShutdown performs graceful shutdown of all application components.
// It shuts down components in the correct order:
// 1. HTTP server (stop accepting new requests)
// 2. Scheduler and worker pool (stop background ticks)
// 3. Sessions (flush unsaved snapshots to storage)
// 4. Storage (release connections once nothing writes to it)
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if err := components.Server.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
	}

	if components.Scheduler != nil {
		components.Scheduler.Stop()
	}
	if components.WorkerPool != nil {
		components.WorkerPool.Stop()
	}

	slog.Info(LogMsgFlushingSessions)
	if err := components.Sessions.Shutdown(ctx); err != nil {
		slog.Error(LogMsgSessionFlushFailed, "error", err)
	}

	if components.CloseStorage != nil {
		components.CloseStorage()
	}

	slog.Info(LogMsgServerStopped)
}
