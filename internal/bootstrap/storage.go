package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CrashSite_Go/internal/config"
	"github.com/osse101/CrashSite_Go/internal/database"
	"github.com/osse101/CrashSite_Go/internal/save"
)

// Storage is the selected save backend. Store is nil when saving is
// disabled; Pool is nil unless the backend is Postgres.
type Storage struct {
	Store save.Store
	Pool  *pgxpool.Pool
}

// InitializeStorage opens the save backend named by SAVE_BACKEND. For
// Postgres it connects, applies the embedded migrations and hands the pool
// to the store, which closes it on shutdown.
func InitializeStorage(ctx context.Context, cfg *config.Config) (*Storage, error) {
	switch cfg.SaveBackend {
	case config.SaveBackendNone:
		slog.Warn(LogMsgSaveDisabled)
		return &Storage{}, nil

	case config.SaveBackendFile:
		if err := os.MkdirAll(filepath.Dir(cfg.SavePath), DirPermission); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateSaveDir, err)
		}
		slog.Info(LogMsgSaveBackendSelected, "backend", cfg.SaveBackend, "path", cfg.SavePath, "slot", cfg.SaveSlot)
		return &Storage{Store: save.NewFileStore(cfg.SavePath)}, nil

	case config.SaveBackendPostgres:
		pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, DBMaxConnIdleTime, DBMaxConnLifetime)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDatabase, err)
		}
		if err := database.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrateDatabase, err)
		}
		slog.Info(LogMsgSaveBackendSelected, "backend", cfg.SaveBackend, "host", cfg.DBHost, "slot", cfg.SaveSlot)
		return &Storage{Store: save.NewPostgresStore(pool), Pool: pool}, nil
	}

	return nil, fmt.Errorf("%s: %q", ErrMsgUnknownSaveBackend, cfg.SaveBackend)
}
