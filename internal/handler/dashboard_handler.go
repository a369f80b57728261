package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/formation-api/internal/service"
	"github.com/noah-isme/formation-api/internal/utils"
)

// DashboardHandler exposes institute-wide counters.
type DashboardHandler struct {
	service service.DashboardService
	logger  zerolog.Logger
}

// NewDashboardHandler constructs a dashboard handler.
func NewDashboardHandler(service service.DashboardService, logger zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{
		service: service,
		logger:  logger.With().Str("component", "dashboard_handler").Logger(),
	}
}

// Register wires dashboard routes.
func (h *DashboardHandler) Register(router fiber.Router) {
	router.Get("", h.summary)
}

func (h *DashboardHandler) summary(c *fiber.Ctx) error {
	response, err := h.service.GetDashboard(requestContext(c))
	if err != nil {
		return respondServiceError(c, h.logger, err, "load dashboard")
	}

	return utils.SendSuccess(c, "dashboard retrieved", response)
}
