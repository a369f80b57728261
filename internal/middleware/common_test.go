package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func newCommonApp(cfg Config) *fiber.App {
	app := fiber.New()
	Register(app, cfg)
	app.Get("/echo", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"local":   c.Locals(LocalCorrelationID),
			"context": CorrelationIDFromContext(c.UserContext()),
		})
	})
	return app
}

func TestCORSPreflightAllowsClientHeaders(t *testing.T) {
	app := newCommonApp(Config{AllowOrigins: "https://app.example.com"})

	req := httptest.NewRequest(http.MethodOptions, "/api/auth/seed-test-accounts", nil)
	req.Header.Set(fiber.HeaderOrigin, "https://app.example.com")
	req.Header.Set(fiber.HeaderAccessControlRequestMethod, http.MethodPost)
	req.Header.Set(fiber.HeaderAccessControlRequestHeaders, "x-seed-token, x-correlation-id")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	require.Equal(t, "https://app.example.com", resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))

	allowed := resp.Header.Get(fiber.HeaderAccessControlAllowHeaders)
	require.Contains(t, allowed, HeaderSeedToken)
	require.Contains(t, allowed, HeaderCorrelationID)
	require.Contains(t, allowed, HeaderRequestID)
	require.Contains(t, allowed, fiber.HeaderAuthorization)
}

func TestCorrelationIDReusesRequestID(t *testing.T) {
	app := newCommonApp(Config{})

	req := httptest.NewRequest(http.MethodGet, "/echo", nil)
	req.Header.Set(HeaderRequestID, "req-42")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, "req-42", resp.Header.Get(HeaderCorrelationID))

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "req-42", body["local"])
	require.Equal(t, "req-42", body["context"])
}

func TestCorrelationIDPrefersCorrelationHeaderAndGenerates(t *testing.T) {
	app := newCommonApp(Config{})

	req := httptest.NewRequest(http.MethodGet, "/echo", nil)
	req.Header.Set(HeaderCorrelationID, "corr-1")
	req.Header.Set(HeaderRequestID, "req-1")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, "corr-1", resp.Header.Get(HeaderCorrelationID))

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/echo", nil))
	require.NoError(t, err)
	require.Len(t, resp.Header.Get(HeaderCorrelationID), 36)
}
