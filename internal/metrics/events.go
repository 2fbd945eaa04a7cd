package metrics

import (
	"context"

	"github.com/osse101/CrashSite_Go/internal/event"
	"github.com/osse101/CrashSite_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all game events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	event.SubscribeAll(bus, e.HandleEvent)
	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch p := evt.Payload.(type) {
	case event.ActionStartedPayloadV1:
		ActionsStarted.WithLabelValues(string(p.ActionID)).Inc()

	case event.ActionRejectedPayloadV1:
		ActionsRejected.WithLabelValues(string(p.ActionID)).Inc()

	case event.ActionCompletedPayloadV1:
		ActionsCompleted.WithLabelValues(string(p.ActionID)).Inc()
		for _, g := range p.Rewards {
			ResourcesGranted.WithLabelValues(g.Resource).Add(g.Amount)
		}

	case event.ActionCancelledPayloadV1:
		ActionsCancelled.WithLabelValues(string(p.ActionID), p.Reason).Inc()

	case event.StageAdvancedPayloadV1:
		StagesAdvanced.WithLabelValues(string(p.ActionID)).Inc()

	case event.BuildingConstructedPayloadV1:
		BuildingsConstructed.WithLabelValues(string(p.BuildingID)).Inc()

	case event.FlagSetPayloadV1:
		FlagsSet.WithLabelValues(string(p.Flag)).Inc()

	case event.JobAssignmentPayloadV1:
		CrewAssigned.WithLabelValues(string(p.JobID)).Set(float64(p.Assigned))

	case event.GameSavedPayloadV1:
		SavesTotal.WithLabelValues(ResultSuccess).Inc()

	case nil:
		log.Debug(LogMsgUnexpectedPayload, "type", evt.Type)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
