package config

import (
	"fmt"
	"os"
	"strings"
)

// PostgresEnvVars must be set when SAVE_BACKEND=postgres
var PostgresEnvVars = []string{
	"DB_USER",
	"DB_PASSWORD",
	"DB_HOST",
	"DB_PORT",
	"DB_NAME",
}

// ValidateEnv checks the variables the selected backends depend on
func ValidateEnv() error {
	var missing []string

	if os.Getenv("SAVE_BACKEND") == SaveBackendPostgres {
		for _, envVar := range PostgresEnvVars {
			if os.Getenv(envVar) == "" {
				missing = append(missing, envVar)
			}
		}
	}

	token, channel := os.Getenv("DISCORD_TOKEN"), os.Getenv("DISCORD_CHANNEL_ID")
	if token != "" && channel == "" {
		missing = append(missing, "DISCORD_CHANNEL_ID")
	}
	if channel != "" && token == "" {
		missing = append(missing, "DISCORD_TOKEN")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

// ValidateEnvWithWarnings runs ValidateEnv and reports non-fatal issues
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string
	if os.Getenv("SAVE_BACKEND") == SaveBackendPostgres && os.Getenv("DB_PASSWORD") == ExampleDBPassword {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}
	if os.Getenv("SAVE_BACKEND") == SaveBackendNone {
		warnings = append(warnings, "SAVE_BACKEND=none: progress will not be persisted")
	}
	return warnings, nil
}
