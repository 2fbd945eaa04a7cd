package event

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/CrashSite_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// Game event types
const (
	ActionStarted       Type = domain.EventTypeActionStarted
	ActionRejected      Type = domain.EventTypeActionRejected
	ActionCompleted     Type = domain.EventTypeActionCompleted
	ActionCancelPending Type = domain.EventTypeActionCancelPending
	ActionCancelRevert  Type = domain.EventTypeActionCancelReverted
	ActionCancelled     Type = domain.EventTypeActionCancelled

	StageAdvanced  Type = domain.EventTypeStageAdvanced
	UnlockApplied  Type = domain.EventTypeUnlockApplied
	StoryTriggered Type = domain.EventTypeStoryTriggered
	FlagSet        Type = domain.EventTypeFlagSet

	JobAssigned         Type = domain.EventTypeJobAssigned
	JobUnassigned       Type = domain.EventTypeJobUnassigned
	BuildingConstructed Type = domain.EventTypeBuildingConstructed

	LogMessage Type = domain.EventTypeLogMessage
	GameSaved  Type = domain.EventTypeGameSaved
)

// AllTypes lists every game event type, for subscribers that want everything
var AllTypes = []Type{
	ActionStarted, ActionRejected, ActionCompleted, ActionCancelPending, ActionCancelRevert, ActionCancelled,
	StageAdvanced, UnlockApplied, StoryTriggered, FlagSet,
	JobAssigned, JobUnassigned, BuildingConstructed,
	LogMessage, GameSaved,
}

// Cancellation reasons
const (
	CancelReasonPlayer   = "player"
	CancelReasonDepleted = "depleted"
)

// Typed event payloads

// ActionStartedPayloadV1 is the payload for action.started
type ActionStartedPayloadV1 struct {
	ActionID   domain.ActionID         `json:"action_id"`
	Name       string                  `json:"name"`
	RunID      uuid.UUID               `json:"run_id"`
	Stage      int                     `json:"stage"`
	DurationMs int64                   `json:"duration_ms"`
	Cost       []domain.ResourceAmount `json:"cost,omitempty"`
	StartedAt  time.Time               `json:"started_at"`
}

// ActionRejectedPayloadV1 is the payload for action.rejected
type ActionRejectedPayloadV1 struct {
	ActionID domain.ActionID `json:"action_id"`
	Name     string          `json:"name"`
	Reason   string          `json:"reason"`
}

// ActionCompletedPayloadV1 is the payload for action.completed
type ActionCompletedPayloadV1 struct {
	ActionID    domain.ActionID `json:"action_id"`
	Name        string          `json:"name"`
	RunID       uuid.UUID       `json:"run_id"`
	Stage       int             `json:"stage"`
	Completions int             `json:"completions"`
	Rewards     []domain.Grant  `json:"rewards,omitempty"`
}

// CancelPendingPayloadV1 is the payload for action.cancel_pending
type CancelPendingPayloadV1 struct {
	ActionID  domain.ActionID `json:"action_id"`
	RunID     uuid.UUID       `json:"run_id"`
	ConfirmBy time.Time       `json:"confirm_by"`
}

// CancelRevertedPayloadV1 is the payload for action.cancel_reverted
type CancelRevertedPayloadV1 struct {
	ActionID domain.ActionID `json:"action_id"`
	RunID    uuid.UUID       `json:"run_id"`
}

// ActionCancelledPayloadV1 is the payload for action.cancelled
type ActionCancelledPayloadV1 struct {
	ActionID domain.ActionID `json:"action_id"`
	Name     string          `json:"name"`
	RunID    uuid.UUID       `json:"run_id"`
	Reason   string          `json:"reason"`
	Progress float64         `json:"progress"`
	Refunds  []domain.Refund `json:"refunds,omitempty"`
}

// StageAdvancedPayloadV1 is the payload for stage.advanced
type StageAdvancedPayloadV1 struct {
	ActionID domain.ActionID `json:"action_id"`
	Stage    int             `json:"stage"`
	Total    int             `json:"total"`
}

// UnlockAppliedPayloadV1 is the payload for unlock.applied
type UnlockAppliedPayloadV1 struct {
	Kind   domain.UnlockKind `json:"kind"`
	ID     string            `json:"id"`
	Source domain.ActionID   `json:"source"`
}

// StoryTriggeredPayloadV1 is the payload for story.triggered
type StoryTriggeredPayloadV1 struct {
	Key   domain.StoryKey    `json:"key"`
	Pages []domain.StoryPage `json:"pages"`
}

// FlagSetPayloadV1 is the payload for flag.set
type FlagSetPayloadV1 struct {
	Flag   domain.Flag `json:"flag"`
	Source string      `json:"source"`
}

// JobAssignmentPayloadV1 is the payload for job.assigned and job.unassigned
type JobAssignmentPayloadV1 struct {
	JobID    domain.JobID `json:"job_id"`
	Name     string       `json:"name"`
	Delta    int          `json:"delta"`
	Assigned int          `json:"assigned"`
}

// BuildingConstructedPayloadV1 is the payload for building.constructed
type BuildingConstructedPayloadV1 struct {
	BuildingID domain.BuildingID `json:"building_id"`
	Name       string            `json:"name"`
	Count      int               `json:"count"`
}

// GameSavedPayloadV1 is the payload for game.saved
type GameSavedPayloadV1 struct {
	Slot    string    `json:"slot"`
	SavedAt time.Time `json:"saved_at"`
}

func newEvent(t Type, payload interface{}) Event {
	return Event{Version: EventSchemaVersion, Type: t, Payload: payload}
}

// NewActionStartedEvent creates an action.started event
func NewActionStartedEvent(action *domain.Action, run *domain.ActiveRun) Event {
	return newEvent(ActionStarted, ActionStartedPayloadV1{
		ActionID:   action.ID,
		Name:       action.Name,
		RunID:      run.ID,
		Stage:      run.Plan.Stage,
		DurationMs: run.Plan.Duration.Milliseconds(),
		Cost:       run.Plan.Cost,
		StartedAt:  run.StartedAt,
	})
}

// NewActionRejectedEvent creates an action.rejected event
func NewActionRejectedEvent(id domain.ActionID, name, reason string) Event {
	return newEvent(ActionRejected, ActionRejectedPayloadV1{ActionID: id, Name: name, Reason: reason})
}

// NewActionCompletedEvent creates an action.completed event
func NewActionCompletedEvent(action *domain.Action, run *domain.ActiveRun, rewards []domain.Grant) Event {
	return newEvent(ActionCompleted, ActionCompletedPayloadV1{
		ActionID:    action.ID,
		Name:        action.Name,
		RunID:       run.ID,
		Stage:       run.Plan.Stage,
		Completions: action.Completions,
		Rewards:     rewards,
	})
}

// NewCancelPendingEvent creates an action.cancel_pending event
func NewCancelPendingEvent(run *domain.ActiveRun, confirmBy time.Time) Event {
	return newEvent(ActionCancelPending, CancelPendingPayloadV1{ActionID: run.ActionID, RunID: run.ID, ConfirmBy: confirmBy})
}

// NewCancelRevertedEvent creates an action.cancel_reverted event
func NewCancelRevertedEvent(run *domain.ActiveRun) Event {
	return newEvent(ActionCancelRevert, CancelRevertedPayloadV1{ActionID: run.ActionID, RunID: run.ID})
}

// NewActionCancelledEvent creates an action.cancelled event
func NewActionCancelledEvent(action *domain.Action, run *domain.ActiveRun, reason string, refunds []domain.Refund) Event {
	return newEvent(ActionCancelled, ActionCancelledPayloadV1{
		ActionID: action.ID,
		Name:     action.Name,
		RunID:    run.ID,
		Reason:   reason,
		Progress: run.Progress,
		Refunds:  refunds,
	})
}

// NewStageAdvancedEvent creates a stage.advanced event
func NewStageAdvancedEvent(action *domain.Action) Event {
	return newEvent(StageAdvanced, StageAdvancedPayloadV1{ActionID: action.ID, Stage: action.Stage, Total: len(action.Stages)})
}

// NewUnlockAppliedEvent creates an unlock.applied event
func NewUnlockAppliedEvent(ref domain.UnlockRef, source domain.ActionID) Event {
	return newEvent(UnlockApplied, UnlockAppliedPayloadV1{Kind: ref.Kind, ID: ref.ID, Source: source})
}

// NewStoryTriggeredEvent creates a story.triggered event
func NewStoryTriggeredEvent(key domain.StoryKey, pages []domain.StoryPage) Event {
	return newEvent(StoryTriggered, StoryTriggeredPayloadV1{Key: key, Pages: pages})
}

// NewFlagSetEvent creates a flag.set event
func NewFlagSetEvent(flag domain.Flag, source string) Event {
	return newEvent(FlagSet, FlagSetPayloadV1{Flag: flag, Source: source})
}

// NewJobAssignmentEvent creates a job.assigned event for positive deltas and
// job.unassigned for negative ones
func NewJobAssignmentEvent(job *domain.Job, delta int) Event {
	t := JobAssigned
	if delta < 0 {
		t = JobUnassigned
	}
	return newEvent(t, JobAssignmentPayloadV1{JobID: job.ID, Name: job.Name, Delta: delta, Assigned: job.Assigned})
}

// NewBuildingConstructedEvent creates a building.constructed event
func NewBuildingConstructedEvent(b *domain.Building) Event {
	return newEvent(BuildingConstructed, BuildingConstructedPayloadV1{BuildingID: b.ID, Name: b.Name, Count: b.Count})
}

// NewLogMessageEvent creates a log.message event
func NewLogMessageEvent(entry domain.LogEntry) Event {
	return newEvent(LogMessage, entry)
}

// NewGameSavedEvent creates a game.saved event
func NewGameSavedEvent(slot string, at time.Time) Event {
	return newEvent(GameSaved, GameSavedPayloadV1{Slot: slot, SavedAt: at})
}

// DecodePayload returns the payload as T. In-process events already carry
// the typed struct; anything else goes through a JSON round trip.
func DecodePayload[T any](input interface{}) (T, error) {
	if v, ok := input.(T); ok {
		return v, nil
	}
	var result T
	data, err := json.Marshal(input)
	if err != nil {
		return result, err
	}
	return result, json.Unmarshal(data, &result)
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Publisher publishes events
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Bus defines the interface for an event bus
type Bus interface {
	Publisher
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every subscriber synchronously and joins their errors
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.Type]
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}
	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// SubscribeAll subscribes a handler to every game event type
func SubscribeAll(bus Bus, handler Handler) {
	for _, t := range AllTypes {
		bus.Subscribe(t, handler)
	}
}

// PublishAll publishes every event in order and returns the first error
func PublishAll(ctx context.Context, pub Publisher, events []Event) error {
	var first error
	for _, e := range events {
		if err := pub.Publish(ctx, e); err != nil && first == nil {
			first = err
		}
	}
	return first
}
