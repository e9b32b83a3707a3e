package bootstrap

import (
	"context"
	"log/slog"

	"github.com/tovald/bossraid/internal/event"
	"github.com/tovald/bossraid/internal/scheduler"
	"github.com/tovald/bossraid/internal/server"
	"github.com/tovald/bossraid/internal/sse"
	"github.com/tovald/bossraid/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server             *server.Server
	Scheduler          *scheduler.Scheduler
	ArenaCancel        context.CancelFunc
	WorkerPool         *worker.Pool
	SSEHub             *sse.Hub
	ResilientPublisher *event.ResilientPublisher
}

// GracefulShutdown performs graceful shutdown of all application components.
// It shuts down in dependency order:
// 1. HTTP server (stop accepting new requests)
// 2. Scheduler (stop producing periodic jobs)
// 3. Arena loop (stop accepting combat commands)
// 4. Worker pool (drain pending persistence jobs)
// 5. SSE hub (disconnect streaming clients)
// 6. Event publisher (flush pending events to the dead-letter file)
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if err := components.Server.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
	}

	if components.Scheduler != nil {
		components.Scheduler.Stop()
		slog.Info(LogMsgSchedulerStopped)
	}

	if components.ArenaCancel != nil {
		components.ArenaCancel()
		slog.Info(LogMsgArenaStopped)
	}

	if components.WorkerPool != nil {
		components.WorkerPool.Stop()
		slog.Info(LogMsgWorkerPoolStopped)
	}

	if components.SSEHub != nil {
		components.SSEHub.Stop()
		slog.Info(LogMsgSSEHubStopped)
	}

	// Shutdown resilient publisher last to flush pending events
	slog.Info(LogMsgShuttingDownEventPublisher)
	if err := components.ResilientPublisher.Shutdown(ctx); err != nil {
		slog.Error(LogMsgResilientPublisherFailed, "error", err)
	}

	slog.Info(LogMsgServerStopped)
}
