package handler_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/formation-api/internal/dto"
	"github.com/noah-isme/formation-api/internal/handler"
	"github.com/noah-isme/formation-api/internal/service"
)

type mockSeedService struct {
	err       error
	lastToken string
}

func (m *mockSeedService) SeedTestAccounts(_ context.Context, token string) (dto.SeedResponse, error) {
	m.lastToken = token
	if m.err != nil {
		return dto.SeedResponse{}, m.err
	}
	return dto.SeedResponse{Accounts: []dto.SeedAccount{
		{Role: service.RoleAdmin, Email: "admin@test.com", Password: "Admin123!"},
	}}, nil
}

func seedRequest(t *testing.T, svc service.SeedService, token string) *http.Response {
	t.Helper()

	app := fiber.New()
	handler.NewSeedHandler(svc, zerolog.New(io.Discard)).Register(app.Group("/api/auth"))

	req := httptest.NewRequest(http.MethodPost, "/api/auth/seed-test-accounts", nil)
	if token != "" {
		req.Header.Set("X-Seed-Token", token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestSeedHandlerTestAccountsSuccess(t *testing.T) {
	svc := &mockSeedService{}
	resp := seedRequest(t, svc, "secret")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var response struct {
		Status  string `json:"status"`
		Success bool   `json:"success"`
		Data    struct {
			Accounts []dto.SeedAccount `json:"accounts"`
		} `json:"data"`
	}
	decodeResponse(t, resp, &response)

	require.Equal(t, "success", response.Status)
	require.True(t, response.Success)
	require.Len(t, response.Data.Accounts, 1)
	require.Equal(t, "admin@test.com", response.Data.Accounts[0].Email)
	require.Equal(t, "secret", svc.lastToken)
}

func TestSeedHandlerErrors(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{name: "disabled", err: service.ErrSeedDisabled, status: fiber.StatusForbidden},
		{name: "unauthorized", err: service.ErrSeedUnauthorized, status: fiber.StatusForbidden},
		{name: "failure", err: errors.New("boom"), status: fiber.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := seedRequest(t, &mockSeedService{err: tc.err}, "")
			require.Equal(t, tc.status, resp.StatusCode)

			var body envelope
			decodeResponse(t, resp, &body)
			require.False(t, body.Success)
			require.NotEmpty(t, body.Message)
		})
	}
}
