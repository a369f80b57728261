package handler

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/formation-api/internal/middleware"
	"github.com/noah-isme/formation-api/internal/service"
)

const (
	streamWriteTimeout = 10 * time.Second
	streamPingInterval = 30 * time.Second
)

// EventStreamHandler pushes change events to websocket clients so they can
// invalidate cached lists.
type EventStreamHandler struct {
	feed   service.ChangeFeed
	logger zerolog.Logger
}

// NewEventStreamHandler creates an event stream handler.
func NewEventStreamHandler(feed service.ChangeFeed, logger zerolog.Logger) *EventStreamHandler {
	return &EventStreamHandler{
		feed:   feed,
		logger: logger.With().Str("component", "event_stream_handler").Logger(),
	}
}

// Register binds the websocket upgrade under the provided router group.
func (h *EventStreamHandler) Register(router fiber.Router) {
	router.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	router.Get("/ws", websocket.New(h.stream))
}

func (h *EventStreamHandler) stream(conn *websocket.Conn) {
	resources := make(map[string]struct{})
	for _, resource := range splitAndTrim(conn.Query("resources")) {
		resources[strings.ToLower(resource)] = struct{}{}
	}

	userID, _ := conn.Locals(middleware.LocalUserID).(uint)
	logger := h.logger.With().Uint("user_id", userID).Interface("correlation_id", conn.Locals(middleware.LocalCorrelationID)).Logger()

	events, unsubscribe := h.feed.Subscribe()
	defer unsubscribe()

	// the read loop only exists to notice the client going away
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(streamPingInterval)
	defer ticker.Stop()

	logger.Info().Msg("event stream connected")
	defer logger.Info().Msg("event stream disconnected")

	for {
		select {
		case <-closed:
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			if len(resources) > 0 {
				if _, wanted := resources[event.Resource]; !wanted {
					continue
				}
			}
			_ = conn.SetWriteDeadline(time.Now().Add(streamWriteTimeout))
			if err := conn.WriteJSON(event); err != nil {
				logger.Debug().Err(err).Msg("event stream write failed")
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(streamWriteTimeout))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func splitAndTrim(input string) []string {
	parts := strings.Split(input, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
