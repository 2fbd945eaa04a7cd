package worker

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/CrashSite_Go/internal/logger"
)

// BaseWorker runs a function on a fixed interval until shut down
type BaseWorker struct {
	name     string
	interval time.Duration

	startOnce sync.Once
	stopOnce  sync.Once
	shutdown  chan struct{}
	wg        sync.WaitGroup
}

func newBaseWorker(name string, interval time.Duration) BaseWorker {
	return BaseWorker{
		name:     name,
		interval: interval,
		shutdown: make(chan struct{}),
	}
}

// start launches the ticker loop. fn receives the time since its last call.
func (w *BaseWorker) start(ctx context.Context, fn func(ctx context.Context, elapsed time.Duration)) {
	w.startOnce.Do(func() {
		logger.FromContext(ctx).Info(LogMsgWorkerStarted, "worker", w.name, "interval", w.interval)

		w.wg.Add(1)
		go func() {
			defer w.wg.Done()

			ticker := time.NewTicker(w.interval)
			defer ticker.Stop()
			last := time.Now()

			for {
				select {
				case <-w.shutdown:
					return
				case <-ctx.Done():
					return
				case now := <-ticker.C:
					fn(ctx, now.Sub(last))
					last = now
				}
			}
		}()
	})
}

func (w *BaseWorker) shutdownInternal(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgWorkerShutdown, "worker", w.name)

	w.stopOnce.Do(func() { close(w.shutdown) })

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(LogMsgWorkerShutdownDone, "worker", w.name)
		return nil
	case <-ctx.Done():
		log.Warn(LogMsgWorkerShutdownTimeout, "worker", w.name)
		return ctx.Err()
	}
}
