package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/formation-api/internal/dto"
	"github.com/noah-isme/formation-api/internal/models"
	"github.com/noah-isme/formation-api/internal/repository"
	"github.com/noah-isme/formation-api/internal/service"
	"github.com/noah-isme/formation-api/internal/utils"
)

// GradeHandler serves grade CRUD plus aggregate statistics.
type GradeHandler struct {
	*ResourceHandler[models.Grade, dto.GradeCreateRequest, dto.GradeUpdateRequest]
	grades service.GradeService
}

// NewGradeHandler constructs a grade handler.
func NewGradeHandler(grades service.GradeService, logger zerolog.Logger) *GradeHandler {
	return &GradeHandler{
		ResourceHandler: NewResourceHandler[models.Grade, dto.GradeCreateRequest, dto.GradeUpdateRequest]("grade", grades, logger, "student_id", "course_id"),
		grades:          grades,
	}
}

// Register wires the stats route ahead of the CRUD routes.
func (h *GradeHandler) Register(router fiber.Router) {
	router.Get("/stats", h.stats)
	h.ResourceHandler.Register(router)
}

func (h *GradeHandler) stats(c *fiber.Ctx) error {
	studentID, err := parseQueryUint(c, "student_id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid student_id")
	}
	courseID, err := parseQueryUint(c, "course_id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid course_id")
	}

	stats, err := h.grades.Stats(requestContext(c), repository.GradeFilter{StudentID: studentID, CourseID: courseID})
	if err != nil {
		return respondServiceError(c, h.logger, err, "compute grade stats")
	}

	return utils.SendSuccess(c, "grade stats retrieved", stats)
}
