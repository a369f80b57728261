package handler_test

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/formation-api/internal/dto"
	"github.com/noah-isme/formation-api/internal/handler"
	"github.com/noah-isme/formation-api/internal/service"
)

func startStreamServer(t *testing.T, feed service.ChangeFeed) string {
	t.Helper()

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	handler.NewEventStreamHandler(feed, zerolog.Nop()).Register(app.Group("/api/events"))

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() { _ = app.Shutdown() })

	return "ws://" + ln.Addr().String() + "/api/events/ws"
}

// keepNotifying publishes until the subscriber has had time to register.
func keepNotifying(ctx context.Context, feed service.ChangeFeed, resources ...string) {
	ticker := time.NewTicker(20 * time.Millisecond)
	defer ticker.Stop()
	for {
		for _, resource := range resources {
			feed.Notify(ctx, resource, dto.ChangeCreated, 1)
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func TestEventStreamDeliversChanges(t *testing.T) {
	feed := service.NewChangeFeed(nil, nil, "", zerolog.Nop())
	url := startStreamServer(t, feed)

	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusSwitchingProtocols, resp.StatusCode)
	defer conn.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go keepNotifying(ctx, feed, "student")

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var event dto.ChangeEvent
	require.NoError(t, conn.ReadJSON(&event))
	require.Equal(t, "student", event.Resource)
	require.Equal(t, dto.ChangeCreated, event.Action)
	require.Equal(t, uint(1), event.EntityID)
	require.NotEmpty(t, event.ID)
}

func TestEventStreamFiltersResources(t *testing.T) {
	feed := service.NewChangeFeed(nil, nil, "", zerolog.Nop())
	url := startStreamServer(t, feed)

	conn, _, err := websocket.DefaultDialer.Dial(url+"?resources=grade", nil)
	require.NoError(t, err)
	defer conn.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go keepNotifying(ctx, feed, "student", "grade")

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	for i := 0; i < 3; i++ {
		var event dto.ChangeEvent
		require.NoError(t, conn.ReadJSON(&event))
		require.Equal(t, "grade", event.Resource)
	}
}

func TestEventStreamRequiresUpgrade(t *testing.T) {
	feed := service.NewChangeFeed(nil, nil, "", zerolog.Nop())
	app := fiber.New()
	handler.NewEventStreamHandler(feed, zerolog.Nop()).Register(app.Group("/api/events"))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/events/ws", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUpgradeRequired, resp.StatusCode)
}
