package event

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CrashSite_Go/internal/domain"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	handled := false

	bus.Subscribe(StoryTriggered, func(ctx context.Context, e Event) error {
		payload, err := DecodePayload[StoryTriggeredPayloadV1](e.Payload)
		require.NoError(t, err)
		assert.Equal(t, domain.StoryKey("crash_awakening"), payload.Key)
		handled = true
		return nil
	})

	err := bus.Publish(context.Background(), NewStoryTriggeredEvent("crash_awakening", []domain.StoryPage{{Title: "Impact", Text: "..."}}))
	require.NoError(t, err)
	assert.True(t, handled)
}

func TestMemoryBus_PublishMultipleHandlers(t *testing.T) {
	bus := NewMemoryBus()
	count := 0
	handler := func(ctx context.Context, e Event) error {
		count++
		return nil
	}

	bus.Subscribe(FlagSet, handler)
	bus.Subscribe(FlagSet, handler)

	require.NoError(t, bus.Publish(context.Background(), NewFlagSetEvent(domain.FlagShelter, "lean_to")))
	assert.Equal(t, 2, count)
}

func TestMemoryBus_PublishError(t *testing.T) {
	bus := NewMemoryBus()
	calls := 0
	bus.Subscribe(LogMessage, func(ctx context.Context, e Event) error {
		calls++
		return errors.New("handler error")
	})
	bus.Subscribe(LogMessage, func(ctx context.Context, e Event) error {
		calls++
		return nil
	})

	err := bus.Publish(context.Background(), NewLogMessageEvent(domain.LogEntry{Message: "hi"}))
	assert.Error(t, err)
	assert.Equal(t, 2, calls, "a failing handler does not stop the others")
}

func TestMemoryBus_NoSubscribers(t *testing.T) {
	assert.NoError(t, NewMemoryBus().Publish(context.Background(), NewGameSavedEvent("default", time.Now())))
}

func TestSubscribeAll(t *testing.T) {
	bus := NewMemoryBus()
	seen := map[Type]bool{}
	SubscribeAll(bus, func(ctx context.Context, e Event) error {
		seen[e.Type] = true
		return nil
	})

	events := []Event{
		NewFlagSetEvent(domain.FlagShelter, "test"),
		NewGameSavedEvent("default", time.Now()),
	}
	require.NoError(t, PublishAll(context.Background(), bus, events))
	assert.True(t, seen[FlagSet])
	assert.True(t, seen[GameSaved])
}

func TestConstructors(t *testing.T) {
	action := &domain.Action{ID: domain.ActionForageFood, Name: "Forage for Food", Completions: 3, Stages: []domain.Stage{{}}, Stage: 1}
	run := &domain.ActiveRun{
		ID:       uuid.New(),
		ActionID: action.ID,
		Plan:     domain.RunPlan{Stage: 0, Duration: 2 * time.Second},
		Progress: 0.5,
	}

	started := NewActionStartedEvent(action, run)
	assert.Equal(t, EventSchemaVersion, started.Version)
	assert.Equal(t, ActionStarted, started.Type)
	assert.Equal(t, int64(2000), started.Payload.(ActionStartedPayloadV1).DurationMs)

	completed := NewActionCompletedEvent(action, run, []domain.Grant{{Resource: domain.ResourceFoodRations, Amount: 22}})
	assert.Equal(t, 3, completed.Payload.(ActionCompletedPayloadV1).Completions)

	cancelled := NewActionCancelledEvent(action, run, CancelReasonDepleted, nil)
	assert.Equal(t, 0.5, cancelled.Payload.(ActionCancelledPayloadV1).Progress)
	assert.Equal(t, CancelReasonDepleted, cancelled.Payload.(ActionCancelledPayloadV1).Reason)

	stage := NewStageAdvancedEvent(action)
	assert.Equal(t, StageAdvancedPayloadV1{ActionID: action.ID, Stage: 1, Total: 1}, stage.Payload)

	job := &domain.Job{ID: domain.JobForager, Name: "Forager", Assigned: 1}
	assert.Equal(t, JobAssigned, NewJobAssignmentEvent(job, 1).Type)
	assert.Equal(t, JobUnassigned, NewJobAssignmentEvent(job, -1).Type)
}

func TestDecodePayload_FromMap(t *testing.T) {
	raw := map[string]interface{}{"flag": "shelter", "source": "lean_to"}
	payload, err := DecodePayload[FlagSetPayloadV1](raw)
	require.NoError(t, err)
	assert.Equal(t, domain.FlagShelter, payload.Flag)
}

func TestCalculateRetryDelay(t *testing.T) {
	base := 2 * time.Second
	assert.Equal(t, 2*time.Second, CalculateRetryDelay(base, 1))
	assert.Equal(t, 4*time.Second, CalculateRetryDelay(base, 2))
	assert.Equal(t, 16*time.Second, CalculateRetryDelay(base, 4))
	assert.Equal(t, 2*time.Second, CalculateRetryDelay(base, 0))
}
