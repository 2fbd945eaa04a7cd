package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Environment string
	ServiceName string
	Version     string
	LogLevel    string
	LogFormat   string
	Port        int

	// HTTP. An empty APIKey leaves the API open (single-player, local).
	APIKey         string
	TrustedProxies []string

	// Game loop
	TickInterval        time.Duration
	ProductionInterval  time.Duration
	AutosaveInterval    time.Duration
	CancelConfirmWindow time.Duration
	MultiplierCacheTTL  time.Duration

	// Persistence
	SaveBackend string
	SavePath    string
	SaveSlot    string
	DBUser      string
	DBPassword  string
	DBHost      string
	DBPort      string
	DBName      string
	DBMaxConns  int

	// Event journal, Postgres backend only
	EventRetentionDays int

	// Discord story notifier, disabled unless both are set
	DiscordToken     string
	DiscordChannelID string
	DeadLetterPath   string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// A missing .env is fine; real env vars still apply
	_ = godotenv.Load()

	cfg := &Config{
		Environment: getEnv("ENVIRONMENT", "dev"),
		ServiceName: getEnv("SERVICE_NAME", "crash-site"),
		Version:     getEnv("VERSION", "dev"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),

		APIKey:         getEnv("API_KEY", ""),
		TrustedProxies: getEnvAsList("TRUSTED_PROXIES"),

		TickInterval:        time.Duration(getEnvAsInt("TICK_INTERVAL_MS", DefaultTickIntervalMs)) * time.Millisecond,
		ProductionInterval:  time.Duration(getEnvAsInt("PRODUCTION_INTERVAL_MS", DefaultProductionInterval)) * time.Millisecond,
		AutosaveInterval:    time.Duration(getEnvAsInt("AUTOSAVE_INTERVAL_SEC", DefaultAutosaveSeconds)) * time.Second,
		CancelConfirmWindow: getEnvAsDuration("CANCEL_CONFIRM_WINDOW", 2*time.Second),
		MultiplierCacheTTL:  getEnvAsDuration("MULTIPLIER_CACHE_TTL", 5*time.Minute),

		SaveBackend: getEnv("SAVE_BACKEND", SaveBackendFile),
		SavePath:    getEnv("SAVE_PATH", DefaultSavePath),
		SaveSlot:    getEnv("SAVE_SLOT", DefaultSaveSlot),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPassword:  getEnv("DB_PASSWORD", "postgres"),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBName:      getEnv("DB_NAME", "crashsite"),
		DBMaxConns:  getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),

		EventRetentionDays: getEnvAsInt("EVENT_RETENTION_DAYS", DefaultEventRetentionDays),

		DiscordToken:     getEnv("DISCORD_TOKEN", ""),
		DiscordChannelID: getEnv("DISCORD_CHANNEL_ID", ""),
		DeadLetterPath:   getEnv("DEAD_LETTER_PATH", DefaultDeadLetterPath),
	}

	port, err := strconv.Atoi(getEnv("PORT", strconv.Itoa(DefaultPort)))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	switch cfg.SaveBackend {
	case SaveBackendFile, SaveBackendPostgres, SaveBackendNone:
	default:
		return nil, fmt.Errorf("invalid SAVE_BACKEND %q: must be one of file, postgres, none", cfg.SaveBackend)
	}

	if cfg.TickInterval <= 0 || cfg.ProductionInterval <= 0 || cfg.AutosaveInterval <= 0 {
		return nil, fmt.Errorf("tick, production and autosave intervals must be positive")
	}

	return cfg, nil
}

// DiscordEnabled reports whether the story notifier should run
func (c *Config) DiscordEnabled() bool {
	return c.DiscordToken != "" && c.DiscordChannelID != ""
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma separated variable, dropping empty entries
func getEnvAsList(key string) []string {
	var out []string
	for _, v := range strings.Split(getEnv(key, ""), ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
