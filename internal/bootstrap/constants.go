package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755
)

// =============================================================================
// Database Pool
// =============================================================================

const (
	DBMaxConnIdleTime = 5 * time.Minute
	DBMaxConnLifetime = 30 * time.Minute
)

// =============================================================================
// Notification Delivery
// =============================================================================

const (
	// NotifyMaxRetries is the number of retry attempts for a failed Discord send
	NotifyMaxRetries = 5

	// NotifyRetryDelay is the base delay between retry attempts (exponential backoff)
	NotifyRetryDelay = 2 * time.Second

	// NotifyWorkers is the number of goroutines delivering notifications
	NotifyWorkers = 2

	// NotifyQueueSize bounds pending notifications; overflow is dropped
	NotifyQueueSize = 64
)

// =============================================================================
// Event Journal
// =============================================================================

const (
	JournalWorkers         = 1
	JournalQueueSize       = 1
	JournalCleanupInterval = 24 * time.Hour
	JournalCleanupJobName  = "eventlog_cleanup"
)

// =============================================================================
// Completion Handlers
// =============================================================================

const (
	// CrewPerLeanTo is the idle crew that moves into each new lean-to
	CrewPerLeanTo = 2
)

// Player-facing log text emitted by completion handlers
const (
	LogTextCrewJoined = "%d survivors join the camp."
)

// =============================================================================
// Startup Messages
// =============================================================================

const (
	LogMsgCatalogLoaded              = "Catalog loaded"
	LogMsgCompletionHandlers         = "Completion handlers registered"
	LogMsgConstructSkipped           = "Construction skipped"
	LogMsgSaveBackendSelected        = "Save backend selected"
	LogMsgSaveDisabled               = "Saving disabled"
	LogMsgGameRestored               = "Saved game restored"
	LogMsgNewGame                    = "No saved game, starting fresh"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgLiveEventsEnabled          = "Live event stream enabled"
	LogMsgNotificationsEnabled       = "Discord notifications enabled"
	LogMsgApplicationReady           = "Application ready"

	ErrMsgFailedLoadCatalog         = "failed to load catalog"
	ErrMsgFailedConnectDatabase     = "failed to connect to database"
	ErrMsgFailedMigrateDatabase     = "failed to migrate database"
	ErrMsgFailedCreateSaveDir       = "failed to create save directory"
	ErrMsgFailedCreateDeadLetterDir = "failed to create dead-letter directory"
	ErrMsgFailedCreatePublisher     = "failed to create resilient publisher"
	ErrMsgFailedCreateSession       = "failed to create discord session"
	ErrMsgFailedRegisterMetrics     = "failed to register metrics collector"
	ErrMsgFailedSubscribeJournal    = "failed to subscribe event journal"
	ErrMsgUnknownSaveBackend        = "unknown save backend"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer         = "Shutting down server..."
	LogMsgShuttingDownEventPublisher = "Shutting down notification publisher..."
	LogMsgServerStopped              = "Server stopped"
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgResilientPublisherFailed   = "Resilient publisher shutdown failed"

	// Names for shutdown logging
	ServiceNameProduction = "production worker"
	ServiceNameAutosave   = "autosave worker"
	ServiceNameSave       = "save"
)

// Shutdown log message format (service name will be prepended)
const (
	LogMsgServiceShutdownFailed = " shutdown failed"
)
