package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEnv_FileBackendNeedsNothing(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("SAVE_BACKEND", SaveBackendFile)

	assert.NoError(t, ValidateEnv())
}

func TestValidateEnv_PostgresMissingRequired(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("SAVE_BACKEND", SaveBackendPostgres)
	t.Setenv("DB_USER", "crash")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required environment variables")
	assert.Contains(t, err.Error(), "DB_PASSWORD")
	assert.NotContains(t, err.Error(), "DB_USER")
}

func TestValidateEnv_DiscordPair(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("DISCORD_TOKEN", "token")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DISCORD_CHANNEL_ID")
}

func TestValidateEnvWithWarnings(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("SAVE_BACKEND", SaveBackendPostgres)
	for _, key := range PostgresEnvVars {
		t.Setenv(key, "x")
	}
	t.Setenv("DB_PASSWORD", ExampleDBPassword)

	warnings, err := ValidateEnvWithWarnings()
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "DB_PASSWORD")
}
