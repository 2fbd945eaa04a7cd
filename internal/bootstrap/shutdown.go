package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/CrashSite_Go/internal/save"
	"github.com/osse101/CrashSite_Go/internal/server"
	"github.com/osse101/CrashSite_Go/internal/sse"
	"github.com/osse101/CrashSite_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
// Nil entries are skipped.
type ShutdownComponents struct {
	Server        *server.Server
	StopRunner    context.CancelFunc
	RunnerDone    <-chan struct{}
	Production    *worker.ProductionWorker
	Autosave      *worker.AutosaveWorker
	Saver         save.Service
	Hub           *sse.Hub
	Notifications *Notifications
	Journal       *Journal
}

// GracefulShutdown performs graceful shutdown of all application components.
// It shuts down in order:
// 1. HTTP server (stop accepting new requests)
// 2. Game loop and workers (no further state changes)
// 3. Journal maintenance, the final save, then the save store
// 4. SSE clients and the notification publisher (flush pending sends)
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.StopRunner != nil {
		components.StopRunner()
		if components.RunnerDone != nil {
			select {
			case <-components.RunnerDone:
			case <-ctx.Done():
			}
		}
	}

	if components.Production != nil {
		shutdownService(ctx, ServiceNameProduction, components.Production)
	}
	if components.Autosave != nil {
		shutdownService(ctx, ServiceNameAutosave, components.Autosave)
	}

	components.Journal.Stop()

	// Saver shutdown writes the final save and closes the store
	if components.Saver != nil {
		shutdownService(ctx, ServiceNameSave, components.Saver)
	}

	if components.Hub != nil {
		components.Hub.Stop()
	}

	slog.Info(LogMsgShuttingDownEventPublisher)
	components.Notifications.Close(ctx)

	slog.Info(LogMsgServerStopped)
}

type shutdownableService interface {
	Shutdown(context.Context) error
}

func shutdownService(ctx context.Context, name string, service shutdownableService) {
	if err := service.Shutdown(ctx); err != nil {
		slog.Error(name+LogMsgServiceShutdownFailed, "error", err)
	}
}
