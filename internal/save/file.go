package save

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/osse101/CrashSite_Go/internal/domain"
	"github.com/osse101/CrashSite_Go/internal/game"
)

// FileStore keeps every slot in one JSON object on disk. Writes go to a
// temp file in the same directory and are renamed into place.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a store backed by the file at path
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (f *FileStore) Load(ctx context.Context, slot string) (*game.Snapshot, error) {
	if err := checkSlot(slot); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	slots, err := f.readAll()
	if err != nil {
		return nil, err
	}
	raw, ok := slots[slot]
	if !ok {
		return nil, domain.ErrNoSavedState
	}

	var snap game.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgDecodeSaveFailed, err)
	}
	return &snap, nil
}

func (f *FileStore) Save(ctx context.Context, slot string, snap *game.Snapshot) error {
	if err := checkSlot(slot); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	slots, err := f.readAll()
	if err != nil && !errors.Is(err, domain.ErrNoSavedState) {
		// corrupt file: start over
		slots = nil
	}
	if slots == nil {
		slots = make(map[string]json.RawMessage)
	}

	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgEncodeSaveFailed, err)
	}
	slots[slot] = raw

	data, err := json.MarshalIndent(slots, "", "  ")
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgEncodeSaveFailed, err)
	}
	return f.writeAtomic(data)
}

func (f *FileStore) Close() error { return nil }

func (f *FileStore) readAll() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, domain.ErrNoSavedState
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgReadSaveFailed, err)
	}

	var slots map[string]json.RawMessage
	if err := json.Unmarshal(data, &slots); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgDecodeSaveFailed, err)
	}
	return slots, nil
}

func (f *FileStore) writeAtomic(data []byte) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, SaveDirPermissions); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgWriteSaveFailed, err)
	}

	tmp, err := os.CreateTemp(dir, tempFilePattern)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgWriteSaveFailed, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("%s: %w", ErrMsgWriteSaveFailed, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("%s: %w", ErrMsgWriteSaveFailed, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgWriteSaveFailed, err)
	}
	if err := os.Chmod(tmpName, SaveFilePermissions); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgWriteSaveFailed, err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgWriteSaveFailed, err)
	}
	return nil
}
