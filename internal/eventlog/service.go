package eventlog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/osse101/CrashSite_Go/internal/event"
	"github.com/osse101/CrashSite_Go/internal/logger"
)

// Service journals game events for one save slot
type Service interface {
	// Subscribe registers the journal on the journaled event types
	Subscribe(bus event.Bus) error

	// Recent returns the newest journal entries for the slot
	Recent(ctx context.Context, limit int) ([]Entry, error)

	// CleanupOldEvents removes events older than the retention period
	CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error)
}

type service struct {
	repo Repository
	slot string
}

// NewService creates a new event journal service
func NewService(repo Repository, slot string) Service {
	return &service{repo: repo, slot: slot}
}

func (s *service) Subscribe(bus event.Bus) error {
	for _, t := range JournaledTypes {
		bus.Subscribe(t, s.handleEvent)
	}
	logger.FromContext(context.Background()).Info(LogMsgJournalEnabled, LogFieldSlot, s.slot, "types", len(JournaledTypes))
	return nil
}

// handleEvent writes one event. Journal failures are logged and swallowed
// so a database hiccup never fails the publish of a game event.
func (s *service) handleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	payload, err := json.Marshal(evt.Payload)
	if err != nil {
		log.Error(LogMsgFailedToLogEvent, LogFieldError, fmt.Errorf("%s: %w", ErrMsgEncodePayload, err), LogFieldType, evt.Type)
		return nil
	}

	if err := s.repo.LogEvent(ctx, s.slot, string(evt.Type), evt.Version, payload); err != nil {
		log.Error(LogMsgFailedToLogEvent, LogFieldError, err, LogFieldType, evt.Type)
		return nil
	}

	log.Debug(LogMsgEventLogged, LogFieldType, evt.Type, LogFieldSlot, s.slot)
	return nil
}

func (s *service) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	if limit > MaxRecentLimit {
		limit = MaxRecentLimit
	}
	return s.repo.Recent(ctx, s.slot, limit)
}

func (s *service) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	return s.repo.CleanupOldEvents(ctx, retentionDays)
}
