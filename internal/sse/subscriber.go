package sse

import (
	"context"
	"log/slog"

	"github.com/osse101/CrashSite_Go/internal/event"
)

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe forwards every game event type to the hub. Payloads are the
// typed V1 structs and are serialised as-is.
func (s *Subscriber) Subscribe() {
	event.SubscribeAll(s.bus, s.forward)
	slog.Info(LogMsgSubscriberReady, "types", len(event.AllTypes))
}

func (s *Subscriber) forward(_ context.Context, evt event.Event) error {
	s.hub.Broadcast(string(evt.Type), evt.Version, evt.Payload)
	slog.Debug(LogMsgEventBroadcast, "event_type", evt.Type)
	return nil
}
