package save

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CrashSite_Go/internal/domain"
	"github.com/osse101/CrashSite_Go/internal/game"
)

// PostgresStore keeps snapshots in the game_saves table and appends every
// save to game_save_history
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore wraps a migrated pool
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (p *PostgresStore) Load(ctx context.Context, slot string) (*game.Snapshot, error) {
	if err := checkSlot(slot); err != nil {
		return nil, err
	}

	var raw []byte
	err := p.pool.QueryRow(ctx, `SELECT state FROM game_saves WHERE slot = $1`, slot).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNoSavedState
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgQuerySaveFailed, err)
	}

	var snap game.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgDecodeSaveFailed, err)
	}
	return &snap, nil
}

func (p *PostgresStore) Save(ctx context.Context, slot string, snap *game.Snapshot) error {
	if err := checkSlot(slot); err != nil {
		return err
	}
	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgEncodeSaveFailed, err)
	}

	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgUpsertSaveFailed, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `
		INSERT INTO game_saves (slot, state, saved_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (slot) DO UPDATE SET state = EXCLUDED.state, saved_at = EXCLUDED.saved_at`,
		slot, raw, snap.SavedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgUpsertSaveFailed, err)
	}
	_, err = tx.Exec(ctx, `INSERT INTO game_save_history (slot, state, saved_at) VALUES ($1, $2, $3)`,
		slot, raw, snap.SavedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgUpsertSaveFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgUpsertSaveFailed, err)
	}
	return nil
}

// History returns how many saves a slot has accumulated
func (p *PostgresStore) History(ctx context.Context, slot string) (int, error) {
	var n int
	err := p.pool.QueryRow(ctx, `SELECT COUNT(*) FROM game_save_history WHERE slot = $1`, slot).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgQuerySaveFailed, err)
	}
	return n, nil
}

// Close releases the pool
func (p *PostgresStore) Close() error {
	p.pool.Close()
	return nil
}
