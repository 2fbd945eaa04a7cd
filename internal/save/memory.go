package save

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/osse101/CrashSite_Go/internal/domain"
	"github.com/osse101/CrashSite_Go/internal/game"
)

// MemoryStore keeps encoded snapshots in memory. Snapshots are stored as
// JSON so callers never share state with the store.
type MemoryStore struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{slots: make(map[string][]byte)}
}

func (m *MemoryStore) Load(ctx context.Context, slot string) (*game.Snapshot, error) {
	if err := checkSlot(slot); err != nil {
		return nil, err
	}
	m.mu.RLock()
	data, ok := m.slots[slot]
	m.mu.RUnlock()
	if !ok {
		return nil, domain.ErrNoSavedState
	}

	var snap game.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgDecodeSaveFailed, err)
	}
	return &snap, nil
}

func (m *MemoryStore) Save(ctx context.Context, slot string, snap *game.Snapshot) error {
	if err := checkSlot(slot); err != nil {
		return err
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgEncodeSaveFailed, err)
	}
	m.mu.Lock()
	m.slots[slot] = data
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Close() error { return nil }
