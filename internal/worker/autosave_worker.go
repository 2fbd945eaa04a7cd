package worker

import (
	"context"
	"time"

	"github.com/osse101/CrashSite_Go/internal/logger"
	"github.com/osse101/CrashSite_Go/internal/save"
)

// AutosaveWorker saves the game on a fixed interval. A failed save is
// logged and retried on the next tick.
type AutosaveWorker struct {
	BaseWorker
	saver save.Service
}

// NewAutosaveWorker creates an autosave worker
func NewAutosaveWorker(saver save.Service, interval time.Duration) *AutosaveWorker {
	return &AutosaveWorker{
		BaseWorker: newBaseWorker(WorkerNameAutosave, interval),
		saver:      saver,
	}
}

// Start begins saving until ctx is cancelled or Shutdown is called
func (w *AutosaveWorker) Start(ctx context.Context) {
	w.start(ctx, func(ctx context.Context, _ time.Duration) {
		if err := w.saver.Save(ctx); err != nil {
			logger.FromContext(ctx).Warn(LogMsgAutosaveFailed, "error", err)
		}
	})
}

// Shutdown stops the worker and waits for an in-flight save
func (w *AutosaveWorker) Shutdown(ctx context.Context) error {
	return w.shutdownInternal(ctx)
}
