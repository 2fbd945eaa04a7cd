package progression

import (
	"context"
	"sync"

	"github.com/osse101/CrashSite_Go/internal/domain"
	"github.com/osse101/CrashSite_Go/internal/event"
	"github.com/osse101/CrashSite_Go/internal/game"
)

// CompletionHandler runs after an action's stage has advanced. It mutates
// game state and returns domain events; it never talks to presentation code.
type CompletionHandler func(ctx context.Context, s *game.State, a *domain.Action) []event.Event

// HandlerRegistry maps actions to their completion handlers
type HandlerRegistry struct {
	mu       sync.RWMutex
	handlers map[domain.ActionID][]CompletionHandler
}

// NewHandlerRegistry creates an empty registry
func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{handlers: make(map[domain.ActionID][]CompletionHandler)}
}

// Register adds a handler. Handlers run in registration order.
func (r *HandlerRegistry) Register(id domain.ActionID, h CompletionHandler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[id] = append(r.handlers[id], h)
}

// Dispatch runs every handler registered for the action
func (r *HandlerRegistry) Dispatch(ctx context.Context, s *game.State, a *domain.Action) []event.Event {
	r.mu.RLock()
	handlers := r.handlers[a.ID]
	r.mu.RUnlock()

	var events []event.Event
	for _, h := range handlers {
		events = append(events, h(ctx, s, a)...)
	}
	return events
}

// Count returns how many handlers an action has
func (r *HandlerRegistry) Count(id domain.ActionID) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.handlers[id])
}

// SetFlagOnCompletion returns a handler that sets flag every time it runs
func SetFlagOnCompletion(flag domain.Flag) CompletionHandler {
	return func(ctx context.Context, s *game.State, a *domain.Action) []event.Event {
		return s.SetFlag(flag, string(a.ID))
	}
}

// OnFinalStage wraps a handler so it only runs on the completion that
// exhausts the action's stages
func OnFinalStage(h CompletionHandler) CompletionHandler {
	return func(ctx context.Context, s *game.State, a *domain.Action) []event.Event {
		if len(a.Stages) == 0 || a.Stage != len(a.Stages) {
			return nil
		}
		return h(ctx, s, a)
	}
}
