package bootstrap

import (
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CrashSite_Go/internal/config"
	"github.com/osse101/CrashSite_Go/internal/event"
	"github.com/osse101/CrashSite_Go/internal/eventlog"
	"github.com/osse101/CrashSite_Go/internal/scheduler"
	"github.com/osse101/CrashSite_Go/internal/worker"
)

// Journal records game events in Postgres and prunes them on a schedule
type Journal struct {
	Service   eventlog.Service
	cleanup   *eventlog.CleanupJob
	pool      *worker.Pool
	scheduler *scheduler.Scheduler
}

// InitializeJournal subscribes the event journal to the game bus. The
// retention cleanup runs once started.
func InitializeJournal(bus event.Bus, db *pgxpool.Pool, cfg *config.Config) *Journal {
	svc := eventlog.NewService(eventlog.NewPostgresRepository(db), cfg.SaveSlot)
	if err := svc.Subscribe(bus); err != nil {
		slog.Error(ErrMsgFailedSubscribeJournal, "error", err)
	}

	pool := worker.NewPool(JournalWorkers, JournalQueueSize)
	return &Journal{
		Service:   svc,
		cleanup:   eventlog.NewCleanupJob(svc, cfg.EventRetentionDays),
		pool:      pool,
		scheduler: scheduler.New(pool),
	}
}

// Start begins the periodic cleanup. Safe on nil.
func (j *Journal) Start() {
	if j == nil {
		return
	}
	j.pool.Start()
	j.scheduler.Schedule(JournalCleanupJobName, JournalCleanupInterval, j.cleanup)
}

// Stop halts the schedule and waits for a running cleanup. Safe on nil.
func (j *Journal) Stop() {
	if j == nil {
		return
	}
	j.scheduler.Stop()
	j.pool.Stop()
}
