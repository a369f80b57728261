package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/formation-api/internal/dto"
	"github.com/noah-isme/formation-api/internal/models"
	"github.com/noah-isme/formation-api/internal/service"
	"github.com/noah-isme/formation-api/internal/utils"
)

// FormationHandler serves formation CRUD and the formation calendar.
type FormationHandler struct {
	*ResourceHandler[models.Formation, dto.FormationCreateRequest, dto.FormationUpdateRequest]
	calendars service.CalendarService
}

// NewFormationHandler constructs a formation handler.
func NewFormationHandler(formations service.FormationService, calendars service.CalendarService, logger zerolog.Logger) *FormationHandler {
	return &FormationHandler{
		ResourceHandler: NewResourceHandler[models.Formation, dto.FormationCreateRequest, dto.FormationUpdateRequest]("formation", formations, logger),
		calendars:       calendars,
	}
}

// Register wires formation routes.
func (h *FormationHandler) Register(router fiber.Router) {
	h.ResourceHandler.Register(router)
	router.Get("/:id/calendar", h.calendar)
}

func (h *FormationHandler) calendar(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	calendar, err := h.calendars.ForFormation(requestContext(c), id)
	if err != nil {
		return respondServiceError(c, h.logger, err, "load formation calendar")
	}

	return utils.SendSuccess(c, "formation calendar retrieved", calendar)
}
