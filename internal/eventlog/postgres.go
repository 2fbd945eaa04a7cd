package eventlog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a journal backed by the game_events table
func NewPostgresRepository(db *pgxpool.Pool) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) LogEvent(ctx context.Context, slot, eventType, version string, payload []byte) error {
	query := `
		INSERT INTO game_events (slot, event_type, version, payload)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := r.db.Exec(ctx, query, slot, eventType, version, payload); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgInsertEvent, err)
	}
	return nil
}

func (r *postgresRepository) Recent(ctx context.Context, slot string, limit int) ([]Entry, error) {
	query := `
		SELECT game_event_id, slot, event_type, version, payload, created_at
		FROM game_events
		WHERE slot = $1
		ORDER BY created_at DESC, game_event_id DESC
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, slot, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgQueryEvents, err)
	}

	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Entry, error) {
		var e Entry
		err := row.Scan(&e.ID, &e.Slot, &e.EventType, &e.Version, &e.Payload, &e.CreatedAt)
		return e, err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgQueryEvents, err)
	}
	return entries, nil
}

func (r *postgresRepository) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	query := `
		DELETE FROM game_events
		WHERE created_at < NOW() - INTERVAL '1 day' * $1
	`

	result, err := r.db.Exec(ctx, query, retentionDays)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgCleanup, err)
	}
	return result.RowsAffected(), nil
}
