package game

import (
	"context"
	"sync"

	"github.com/osse101/CrashSite_Go/internal/event"
	"github.com/osse101/CrashSite_Go/internal/logger"
)

// UpdateFunc mutates state and returns the events to publish
type UpdateFunc func(s *State) ([]event.Event, error)

// Manager serialises every state mutation behind one mutex. Events returned
// by an update are published after the lock is released, so subscribers may
// call back into the manager.
type Manager struct {
	mu    sync.Mutex
	state *State
	bus   event.Publisher
}

// NewManager wraps a state
func NewManager(state *State, bus event.Publisher) *Manager {
	return &Manager{state: state, bus: bus}
}

// Update runs fn under the lock, then publishes whatever events it returned,
// including on error so rejection log lines still reach subscribers
func (m *Manager) Update(ctx context.Context, fn UpdateFunc) error {
	m.mu.Lock()
	events, err := fn(m.state)
	m.mu.Unlock()

	m.publish(ctx, events)
	return err
}

// View runs fn under the lock without publishing anything
func (m *Manager) View(fn func(s *State)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	fn(m.state)
}

// Snapshot captures the persisted part of the state
func (m *Manager) Snapshot() *Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.Snapshot()
}

// Restore replaces progress with a saved snapshot
func (m *Manager) Restore(snap *Snapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.Restore(snap)
}

// Publish sends events outside any update
func (m *Manager) Publish(ctx context.Context, events ...event.Event) {
	m.publish(ctx, events)
}

func (m *Manager) publish(ctx context.Context, events []event.Event) {
	if m.bus == nil || len(events) == 0 {
		return
	}
	if err := event.PublishAll(ctx, m.bus, events); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "error", err, "events", len(events))
	}
}
