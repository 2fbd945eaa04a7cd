package eventlog

import (
	"context"
	"encoding/json"
	"time"
)

// Entry is a journaled game event
type Entry struct {
	ID        int64           `json:"id"`
	Slot      string          `json:"slot"`
	EventType string          `json:"event_type"`
	Version   string          `json:"version"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}

// Repository defines the interface for event journal storage
type Repository interface {
	// LogEvent stores an encoded event payload for a save slot
	LogEvent(ctx context.Context, slot, eventType, version string, payload []byte) error

	// Recent returns the newest entries for a slot, newest first
	Recent(ctx context.Context, slot string, limit int) ([]Entry, error)

	// CleanupOldEvents removes events older than the specified number of days
	CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error)
}
