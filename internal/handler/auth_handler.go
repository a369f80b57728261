package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/formation-api/internal/dto"
	"github.com/noah-isme/formation-api/internal/service"
	"github.com/noah-isme/formation-api/internal/utils"
)

// AuthHandler exposes the login endpoint of every account kind.
type AuthHandler struct {
	service service.AuthService
	logger  zerolog.Logger
}

// NewAuthHandler constructs an auth handler.
func NewAuthHandler(service service.AuthService, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  logger.With().Str("component", "auth_handler").Logger(),
	}
}

// Register wires the login routes. guards run before each login, typically a rate limiter.
func (h *AuthHandler) Register(router fiber.Router, guards ...fiber.Handler) {
	routes := map[string]string{
		"/students/login":          service.RoleStudent,
		"/training-requests/login": service.RoleTrainingRequest,
		"/admins/login":            service.RoleAdmin,
	}
	for path, role := range routes {
		handlers := append(append([]fiber.Handler{}, guards...), h.login(role))
		router.Post(path, handlers...)
	}
}

func (h *AuthHandler) login(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var payload dto.LoginRequest
		if err := c.BodyParser(&payload); err != nil {
			return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
		}

		response, err := h.service.Login(requestContext(c), role, payload)
		if err != nil {
			switch {
			case isValidationError(err):
				return utils.Fail(c, fiber.StatusBadRequest, "validation failed", validationDetails(err))
			case errors.Is(err, service.ErrInvalidCredentials):
				return utils.SendError(c, fiber.StatusUnauthorized, err.Error())
			default:
				requestLogger(h.logger, c).Error().Err(err).Str("role", role).Msg("login failed")
				return utils.Fail(c, fiber.StatusInternalServerError, "login failed", err.Error())
			}
		}

		return utils.SendSuccess(c, "login successful", response)
	}
}
