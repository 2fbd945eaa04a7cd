package save

import (
	"context"
	"errors"

	"github.com/osse101/CrashSite_Go/internal/domain"
	"github.com/osse101/CrashSite_Go/internal/event"
	"github.com/osse101/CrashSite_Go/internal/game"
	"github.com/osse101/CrashSite_Go/internal/logger"
	"github.com/osse101/CrashSite_Go/internal/metrics"
)

// Service loads and saves the managed game
type Service interface {
	// Load restores the saved game if there is one. Storage failures are
	// logged and treated as no saved state.
	Load(ctx context.Context) bool
	Save(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

type service struct {
	store   Store
	manager *game.Manager
	slot    string
}

// NewService creates a save service for one slot
func NewService(store Store, manager *game.Manager, slot string) Service {
	return &service{store: store, manager: manager, slot: slot}
}

func (s *service) Load(ctx context.Context) bool {
	log := logger.FromContext(ctx)

	snap, err := s.store.Load(ctx, s.slot)
	if errors.Is(err, domain.ErrNoSavedState) {
		log.Info(LogMsgNoSavedState, "slot", s.slot)
		return false
	}
	if err != nil {
		log.Warn(LogMsgLoadFailed, "slot", s.slot, "error", err)
		return false
	}

	s.manager.Restore(snap)
	log.Info(LogMsgGameLoaded, "slot", s.slot, "saved_at", snap.SavedAt)
	return true
}

func (s *service) Save(ctx context.Context) error {
	log := logger.FromContext(ctx)

	snap := s.manager.Snapshot()

	if err := s.store.Save(ctx, s.slot, snap); err != nil {
		metrics.SavesTotal.WithLabelValues(metrics.ResultFailure).Inc()
		log.Error(LogMsgSaveFailed, "slot", s.slot, "error", err)
		return err
	}

	s.manager.Publish(ctx, event.NewGameSavedEvent(s.slot, snap.SavedAt))
	log.Debug(LogMsgGameSaved, "slot", s.slot)
	return nil
}

func (s *service) Shutdown(ctx context.Context) error {
	if err := s.Save(ctx); err != nil {
		return err
	}
	return s.store.Close()
}
