package job

import (
	"context"
	"time"

	"github.com/osse101/CrashSite_Go/internal/domain"
	"github.com/osse101/CrashSite_Go/internal/event"
	"github.com/osse101/CrashSite_Go/internal/game"
	"github.com/osse101/CrashSite_Go/internal/logger"
)

// View is a job as shown to the player
type View struct {
	domain.Job
	Slots      int      `json:"slot_limit"`
	Multiplier float64  `json:"multiplier"`
	Labels     []string `json:"labels,omitempty"`
}

// Service defines the crew job and building operations
type Service interface {
	List(ctx context.Context) []View
	Assign(ctx context.Context, id domain.JobID, n int) error
	Unassign(ctx context.Context, id domain.JobID, n int) error
	Construct(ctx context.Context, id domain.BuildingID) error
	Produce(ctx context.Context, elapsed time.Duration) ([]Output, error)
}

type service struct {
	manager *game.Manager
	rates   RateSource
}

// NewService creates a new job service
func NewService(manager *game.Manager, rates RateSource) Service {
	return &service{manager: manager, rates: rates}
}

func (s *service) List(ctx context.Context) []View {
	var views []View
	s.manager.View(func(st *game.State) {
		for _, j := range st.Jobs() {
			if !j.Unlocked {
				continue
			}
			v := View{Job: *j, Slots: Slots(st, j), Multiplier: 1}
			if s.rates != nil {
				m := s.rates.RateMultiplier(st, j.ID, j.Produces)
				v.Multiplier, v.Labels = m.Value, m.Labels
			}
			views = append(views, v)
		}
	})
	return views
}

func (s *service) Assign(ctx context.Context, id domain.JobID, n int) error {
	err := s.manager.Update(ctx, func(st *game.State) ([]event.Event, error) {
		return Assign(st, id, n)
	})
	if err != nil {
		logger.FromContext(ctx).Debug(LogMsgAssignFailed, "job", id, "count", n, "error", err)
	}
	return err
}

func (s *service) Unassign(ctx context.Context, id domain.JobID, n int) error {
	err := s.manager.Update(ctx, func(st *game.State) ([]event.Event, error) {
		return Unassign(st, id, n)
	})
	if err != nil {
		logger.FromContext(ctx).Debug(LogMsgAssignFailed, "job", id, "count", -n, "error", err)
	}
	return err
}

func (s *service) Construct(ctx context.Context, id domain.BuildingID) error {
	err := s.manager.Update(ctx, func(st *game.State) ([]event.Event, error) {
		return Construct(st, id)
	})
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgConstructFailed, "building", id, "error", err)
	}
	return err
}

func (s *service) Produce(ctx context.Context, elapsed time.Duration) ([]Output, error) {
	var out []Output
	err := s.manager.Update(ctx, func(st *game.State) ([]event.Event, error) {
		var err error
		out, err = Produce(st, s.rates, elapsed.Seconds())
		return nil, err
	})
	if len(out) > 0 {
		logger.FromContext(ctx).Debug(LogMsgProduction, "jobs", len(out))
	}
	return out, err
}
