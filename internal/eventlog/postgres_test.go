package eventlog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/CrashSite_Go/internal/database"
	"github.com/osse101/CrashSite_Go/internal/domain"
	"github.com/osse101/CrashSite_Go/internal/event"
)

func TestPostgresRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("crashsite"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Skipf("Skipping integration test: postgres container unavailable: %v", err)
	}
	t.Cleanup(func() { _ = pgContainer.Terminate(ctx) })

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := database.NewPool(ctx, connStr, 4, time.Minute, 5*time.Minute)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	require.NoError(t, database.Migrate(ctx, pool))

	bus := event.NewMemoryBus()
	svc := NewService(NewPostgresRepository(pool), "default")
	require.NoError(t, svc.Subscribe(bus))

	require.NoError(t, bus.Publish(ctx, event.NewFlagSetEvent(domain.FlagShelter, "build_lean_to")))
	require.NoError(t, bus.Publish(ctx, event.NewFlagSetEvent(domain.FlagSolarPower, "rig_solar_panel")))

	entries, err := svc.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, string(event.FlagSet), entries[0].EventType)
	assert.Contains(t, string(entries[0].Payload), string(domain.FlagSolarPower), "newest first")

	deleted, err := svc.CleanupOldEvents(ctx, 1)
	require.NoError(t, err)
	assert.Zero(t, deleted, "fresh events are within retention")
}
