package sse

import (
	"net/http"
	"strings"
	"time"

	"github.com/greenlegacy-ng/greenlegacy/internal/logger"
)

// Handler returns an HTTP handler for SSE connections
func Handler(hub *Hub) http.HandlerFunc {
	return handler(hub, KeepaliveInterval)
}

func handler(hub *Hub, keepalive time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "SSE not supported", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.Header().Set("X-Accel-Buffering", "no")

		eventTypes := parseTypes(r.URL.Query().Get("types"))

		client := hub.Register(eventTypes)
		log.Info(LogMsgClientConnected,
			"client_id", client.ID,
			"filters", eventTypes,
			"total_clients", hub.ClientCount())

		defer func() {
			hub.Unregister(client.ID)
			log.Info(LogMsgClientDisconnected, "client_id", client.ID)
		}()

		connectEvent := Event{
			ID:        client.ID,
			Type:      EventTypeConnected,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Payload: map[string]interface{}{
				"clientId": client.ID,
				"filters":  eventTypes,
			},
		}
		if !write(w, flusher, connectEvent) {
			return
		}

		ticker := time.NewTicker(keepalive)
		defer ticker.Stop()

		ctx := r.Context()
		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-client.EventChannel:
				if !ok {
					// Hub is shutting down
					return
				}
				if !write(w, flusher, event) {
					return
				}

			case <-ticker.C:
				keepaliveEvent := Event{
					Type:      EventTypeKeepalive,
					Timestamp: time.Now().UTC().Format(time.RFC3339),
				}
				if !write(w, flusher, keepaliveEvent) {
					return
				}
			}
		}
	}
}

// write reports whether the connection is still usable
func write(w http.ResponseWriter, flusher http.Flusher, event Event) bool {
	msg, err := FormatSSEMessage(event)
	if err != nil {
		logger.Error(LogMsgWriteError, "event_type", event.Type, "error", err)
		return true
	}
	if _, err := w.Write(msg); err != nil {
		logger.Warn(LogMsgWriteError, "event_type", event.Type, "error", err)
		return false
	}
	flusher.Flush()
	return true
}

// parseTypes splits a comma list, dropping blanks
func parseTypes(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
