package progression

import (
	"context"
	"log/slog"

	"github.com/osse101/CrashSite_Go/internal/domain"
	"github.com/osse101/CrashSite_Go/internal/event"
	"github.com/osse101/CrashSite_Go/internal/game"
	"github.com/osse101/CrashSite_Go/internal/logger"
)

// Engine advances action stages and resolves multipliers
type Engine struct {
	handlers *HandlerRegistry
	cache    *MultiplierCache
}

// NewEngine creates an engine. A nil cache computes multipliers on every call.
func NewEngine(handlers *HandlerRegistry, cache *MultiplierCache) *Engine {
	if handlers == nil {
		handlers = NewHandlerRegistry()
	}
	return &Engine{handlers: handlers, cache: cache}
}

// Handlers returns the completion handler registry
func (e *Engine) Handlers() *HandlerRegistry {
	return e.handlers
}

// RewardMultiplier returns the multiplier for an action's reward resource
func (e *Engine) RewardMultiplier(s *game.State, actionID domain.ActionID, resource string) Multiplier {
	if e.cache == nil {
		return ComputeRewardMultiplier(s.Flags, s.Catalog.Effects, actionID, resource)
	}
	return e.cache.Reward(s.Flags, s.Catalog.Effects, actionID, resource)
}

// RateMultiplier returns the multiplier for a job's produced resource
func (e *Engine) RateMultiplier(s *game.State, jobID domain.JobID, resource string) Multiplier {
	if e.cache == nil {
		return ComputeRateMultiplier(s.Flags, s.Catalog.Effects, jobID, resource)
	}
	return e.cache.Rate(s.Flags, s.Catalog.Effects, jobID, resource)
}

// InvalidateMultipliers drops cached multipliers
func (e *Engine) InvalidateMultipliers() {
	if e.cache != nil {
		e.cache.Purge()
	}
}

// Advance finishes the action's current stage: unlocks are applied, the
// stage pointer moves forward (never past the last stage) and the completion
// count grows.
func (e *Engine) Advance(s *game.State, a *domain.Action) ([]event.Event, *domain.Stage, error) {
	stage := a.CurrentStage()
	var events []event.Event

	if stage != nil {
		unlocked, err := ApplyUnlocks(s, a.ID, stage.Unlocks)
		events = append(events, unlocked...)
		if err != nil {
			return events, stage, err
		}
		a.Stage++
		events = append(events, event.NewStageAdvancedEvent(a))
	}
	a.Completions++
	return events, stage, nil
}

// Complete advances the action, runs its completion handlers and triggers
// the finished stage's story and log text
func (e *Engine) Complete(ctx context.Context, s *game.State, a *domain.Action) ([]event.Event, error) {
	events, stage, err := e.Advance(s, a)
	if err != nil {
		return events, err
	}

	events = append(events, e.handlers.Dispatch(ctx, s, a)...)

	for _, evt := range events {
		if evt.Type == event.FlagSet {
			e.InvalidateMultipliers()
			break
		}
	}

	if stage == nil {
		return events, nil
	}
	if stage.LogText != "" {
		events = append(events, s.AddLog(domain.LogLevelInfo, "%s", stage.LogText))
	}
	if stage.Story != "" {
		pages, err := s.Catalog.Story(stage.Story)
		if err != nil {
			logger.FromContext(ctx).Warn(LogMsgStoryMissing, slog.String("story", string(stage.Story)), slog.Any("error", err))
		} else {
			events = append(events, event.NewStoryTriggeredEvent(stage.Story, pages))
		}
	}
	return events, nil
}
