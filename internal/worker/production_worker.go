package worker

import (
	"context"
	"time"

	"github.com/osse101/CrashSite_Go/internal/job"
	"github.com/osse101/CrashSite_Go/internal/logger"
)

// ProductionWorker advances crew jobs on a fixed interval
type ProductionWorker struct {
	BaseWorker
	jobs job.Service
}

// NewProductionWorker creates a production worker
func NewProductionWorker(jobs job.Service, interval time.Duration) *ProductionWorker {
	return &ProductionWorker{
		BaseWorker: newBaseWorker(WorkerNameProduction, interval),
		jobs:       jobs,
	}
}

// Start begins producing until ctx is cancelled or Shutdown is called
func (w *ProductionWorker) Start(ctx context.Context) {
	w.start(ctx, w.produce)
}

func (w *ProductionWorker) produce(ctx context.Context, elapsed time.Duration) {
	if _, err := w.jobs.Produce(ctx, elapsed); err != nil {
		logger.FromContext(ctx).Error(LogMsgProductionFailed, "error", err)
	}
}

// Shutdown stops the worker and waits for the current tick
func (w *ProductionWorker) Shutdown(ctx context.Context) error {
	return w.shutdownInternal(ctx)
}
