package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/CrashSite_Go/internal/event"
	"github.com/osse101/CrashSite_Go/internal/metrics"
	"github.com/osse101/CrashSite_Go/internal/progression"
	"github.com/osse101/CrashSite_Go/internal/sse"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus event.Bus
	Engine   *progression.Engine
	Hub      *sse.Hub
}

// RegisterEventHandlers sets up the in-process subscribers:
// - Multiplier cache invalidation on flag changes made outside a completion
// - Metrics collector
// - SSE subscriber, when a hub is configured
func RegisterEventHandlers(deps EventHandlerDependencies) error {
	deps.EventBus.Subscribe(event.FlagSet, func(context.Context, event.Event) error {
		deps.Engine.InvalidateMultipliers()
		return nil
	})

	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(deps.EventBus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	if deps.Hub != nil {
		sse.NewSubscriber(deps.Hub, deps.EventBus).Subscribe()
		slog.Info(LogMsgLiveEventsEnabled)
	}

	return nil
}
