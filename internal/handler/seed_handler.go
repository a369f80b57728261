package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/formation-api/internal/middleware"
	"github.com/noah-isme/formation-api/internal/service"
	"github.com/noah-isme/formation-api/internal/utils"
)

// SeedHandler exposes tooling endpoints for provisioning test accounts.
type SeedHandler struct {
	service service.SeedService
	logger  zerolog.Logger
}

// NewSeedHandler constructs a seed handler.
func NewSeedHandler(service service.SeedService, logger zerolog.Logger) *SeedHandler {
	return &SeedHandler{
		service: service,
		logger:  logger.With().Str("component", "seed_handler").Logger(),
	}
}

// Register wires seed routes.
func (h *SeedHandler) Register(router fiber.Router) {
	router.Post("/seed-test-accounts", h.testAccounts)
}

func (h *SeedHandler) testAccounts(c *fiber.Ctx) error {
	result, err := h.service.SeedTestAccounts(requestContext(c), c.Get(middleware.HeaderSeedToken))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSeedDisabled):
			return utils.SendError(c, fiber.StatusForbidden, "seeding disabled")
		case errors.Is(err, service.ErrSeedUnauthorized):
			return utils.SendError(c, fiber.StatusForbidden, "invalid token")
		default:
			requestLogger(h.logger, c).Error().Err(err).Msg("seed operation failed")
			return utils.Fail(c, fiber.StatusInternalServerError, "failed to create test accounts", err.Error())
		}
	}

	// the seeding tools read the legacy status field
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "success",
		"success": true,
		"message": "test accounts created",
		"data":    result,
	})
}
