package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/formation-api/internal/dto"
	"github.com/noah-isme/formation-api/internal/handler"
	"github.com/noah-isme/formation-api/internal/middleware"
	"github.com/noah-isme/formation-api/internal/service"
)

type stubAuthService struct {
	roles []string
	err   error
}

func (s *stubAuthService) Login(_ context.Context, role string, payload dto.LoginRequest) (dto.LoginResponse, error) {
	s.roles = append(s.roles, role)
	if s.err != nil {
		return dto.LoginResponse{}, s.err
	}
	if err := validator.New().Struct(payload); err != nil {
		return dto.LoginResponse{}, err
	}
	return dto.LoginResponse{Token: "signed", ExpiresAt: time.Now().Add(time.Hour), Role: role, ID: 7, Email: payload.Email}, nil
}

func (s *stubAuthService) IssueToken(uint, string, string) (string, time.Time, error) {
	return "signed", time.Now().Add(time.Hour), nil
}

func newAuthApp(svc service.AuthService, guards ...fiber.Handler) *fiber.App {
	app := fiber.New()
	handler.NewAuthHandler(svc, zerolog.Nop()).Register(app.Group("/api"), guards...)
	return app
}

func TestAuthHandlerLoginPerRole(t *testing.T) {
	svc := &stubAuthService{}
	app := newAuthApp(svc)

	credentials := map[string]string{"email": "admin@test.com", "password": "Admin123!"}
	for path, role := range map[string]string{
		"/api/students/login":          service.RoleStudent,
		"/api/training-requests/login": service.RoleTrainingRequest,
		"/api/admins/login":            service.RoleAdmin,
	} {
		resp, body := doJSON(t, app, http.MethodPost, path, credentials)
		require.Equal(t, fiber.StatusOK, resp.StatusCode, path)

		var login dto.LoginResponse
		require.NoError(t, json.Unmarshal(body.Data, &login))
		require.Equal(t, "signed", login.Token)
		require.Equal(t, role, login.Role)
		require.Equal(t, uint(7), login.ID)
	}
	require.Len(t, svc.roles, 3)
}

func TestAuthHandlerRejectsBadCredentials(t *testing.T) {
	app := newAuthApp(&stubAuthService{err: service.ErrInvalidCredentials})

	resp, body := doJSON(t, app, http.MethodPost, "/api/admins/login", map[string]string{"email": "admin@test.com", "password": "nope"})
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, "invalid email or password", body.Message)
}

func TestAuthHandlerValidationAndFailures(t *testing.T) {
	app := newAuthApp(&stubAuthService{})
	resp, _ := doJSON(t, app, http.MethodPost, "/api/students/login", map[string]string{"email": "nope"})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	app = newAuthApp(&stubAuthService{err: errors.New("database down")})
	resp, body := doJSON(t, app, http.MethodPost, "/api/students/login", map[string]string{"email": "a@b.co", "password": "x"})
	require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	require.JSONEq(t, `"database down"`, string(body.Error))
}

func TestAuthHandlerGuardsRunFirst(t *testing.T) {
	app := newAuthApp(&stubAuthService{}, middleware.RateLimit("login-test", 1, time.Minute))
	credentials := map[string]string{"email": "a@b.co", "password": "secret"}

	resp, _ := doJSON(t, app, http.MethodPost, "/api/admins/login", credentials)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPost, "/api/admins/login", credentials)
	require.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
}
