package sse

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/osse101/CrashSite_Go/internal/logger"
)

// Handler streams hub events to the client. ?types=a,b limits the stream to
// the listed event types.
//
//	@Summary		Stream game events
//	@Description	Server-sent events for every game event (action, stage, story, job, log)
//	@Tags			events
//	@Produce		text/event-stream
//	@Param			types	query	string	false	"Comma separated event types"
//	@Success		200
//	@Router			/events [get]
func Handler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, ErrMsgStreamingUnsupported, http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")

		eventTypes := parseTypes(r.URL.Query().Get(QueryParamTypes))

		log := logger.FromContext(r.Context())
		client := hub.Register(eventTypes)
		log.Info(LogMsgClientConnected,
			"client_id", client.ID,
			"filters", eventTypes)

		defer func() {
			hub.Unregister(client.ID)
			log.Info(LogMsgClientDisconnected, "client_id", client.ID)
		}()

		connected := Event{
			ID:        client.ID,
			Type:      EventTypeConnected,
			Timestamp: hub.now().UnixMilli(),
			Payload: map[string]interface{}{
				"client_id": client.ID,
				"filters":   eventTypes,
			},
		}
		if !write(w, flusher, connected) {
			return
		}

		ticker := time.NewTicker(KeepaliveInterval)
		defer ticker.Stop()

		ctx := r.Context()
		for {
			select {
			case <-ctx.Done():
				return

			case evt, ok := <-client.EventChannel:
				if !ok {
					// hub stopped
					return
				}
				if !write(w, flusher, evt) {
					return
				}

			case <-ticker.C:
				keepalive := Event{Type: EventTypeKeepalive, Timestamp: hub.now().UnixMilli()}
				if !write(w, flusher, keepalive) {
					return
				}
			}
		}
	}
}

func write(w http.ResponseWriter, flusher http.Flusher, evt Event) bool {
	msg, err := FormatSSEMessage(evt)
	if err != nil {
		slog.Error(LogMsgWriteError, "event_type", evt.Type, "error", err)
		return true
	}
	if _, err := w.Write(msg); err != nil {
		slog.Warn(LogMsgWriteError, "event_type", evt.Type, "error", err)
		return false
	}
	flusher.Flush()
	return true
}

func parseTypes(param string) []string {
	if param == "" {
		return nil
	}
	var out []string
	for _, t := range strings.Split(param, ",") {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
