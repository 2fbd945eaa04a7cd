package config

// Save backends
const (
	SaveBackendFile     = "file"
	SaveBackendPostgres = "postgres"
	SaveBackendNone     = "none"
)

// Defaults
const (
	DefaultPort               = 8080
	DefaultTickIntervalMs     = 100
	DefaultProductionInterval = 1000
	DefaultAutosaveSeconds    = 30
	DefaultSavePath           = "data/save.json"
	DefaultSaveSlot           = "default"
	DefaultDeadLetterPath     = "data/notify_deadletter.jsonl"
	DefaultDBMaxConns         = 5
	DefaultEventRetentionDays = 30
)

// Example values from .env.example that must not reach production
const (
	ExampleDBPassword = "change_this_secure_password"
)
