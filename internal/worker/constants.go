package worker

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// Log messages for the delivery pool
const (
	LogMsgWorkerJobFailed = "Worker job failed"
	LogMsgPoolQueueFull   = "Worker pool queue full, dropping job"
)

// ============================================================================
// Log Messages - Periodic Workers
// ============================================================================

// Log messages shared by ticker driven workers
const (
	LogMsgWorkerStarted         = "Worker started"
	LogMsgWorkerShutdown        = "Shutting down worker"
	LogMsgWorkerShutdownDone    = "Worker shutdown complete"
	LogMsgWorkerShutdownTimeout = "Worker shutdown timeout"
)

// Log messages for the production worker
const (
	LogMsgProductionFailed = "Job production failed"
)

// Log messages for the autosave worker
const (
	LogMsgAutosaveFailed = "Autosave failed"
)

// Worker names used in logs
const (
	WorkerNameProduction = "production worker"
	WorkerNameAutosave   = "autosave worker"
)
