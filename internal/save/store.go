package save

import (
	"context"
	"fmt"

	"github.com/osse101/CrashSite_Go/internal/domain"
	"github.com/osse101/CrashSite_Go/internal/game"
)

// Store persists snapshots by slot. Load returns domain.ErrNoSavedState
// when the slot has never been written.
type Store interface {
	Load(ctx context.Context, slot string) (*game.Snapshot, error)
	Save(ctx context.Context, slot string, snap *game.Snapshot) error
	Close() error
}

func checkSlot(slot string) error {
	if slot == "" {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgInvalidSlot)
	}
	return nil
}
