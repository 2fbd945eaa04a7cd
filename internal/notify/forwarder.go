package notify

import (
	"context"

	"github.com/osse101/CrashSite_Go/internal/event"
	"github.com/osse101/CrashSite_Go/internal/logger"
	"github.com/osse101/CrashSite_Go/internal/worker"
)

// NotifiedTypes are the game events relayed to the notifier
var NotifiedTypes = []event.Type{event.StoryTriggered, event.ActionCompleted}

// Forward relays the listed event types from the game bus to pub on the
// worker pool, so the game loop never waits on Discord. When the pool queue
// is full the event is dropped.
func Forward(bus event.Bus, pool *worker.Pool, pub event.Publisher, types ...event.Type) {
	if len(types) == 0 {
		types = NotifiedTypes
	}

	relay := func(ctx context.Context, evt event.Event) error {
		ok := pool.TryEnqueue(worker.JobFunc(func(jobCtx context.Context) error {
			return pub.Publish(jobCtx, evt)
		}))
		if !ok {
			logger.FromContext(ctx).Warn(LogMsgForwardDropped, "event_type", evt.Type)
		}
		return nil
	}

	for _, t := range types {
		bus.Subscribe(t, relay)
	}
	logger.FromContext(context.Background()).Info(LogMsgNotificationForwards, "types", types)
}
