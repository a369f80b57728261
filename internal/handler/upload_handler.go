package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/formation-api/internal/service"
	"github.com/noah-isme/formation-api/internal/utils"
)

// UploadHandler handles student photo and formation image uploads.
type UploadHandler struct {
	service service.UploadService
	logger  zerolog.Logger
}

// NewUploadHandler constructs an upload handler.
func NewUploadHandler(service service.UploadService, logger zerolog.Logger) *UploadHandler {
	return &UploadHandler{
		service: service,
		logger:  logger.With().Str("component", "upload_handler").Logger(),
	}
}

// RegisterStudentRoutes wires the photo upload under the students group.
func (h *UploadHandler) RegisterStudentRoutes(router fiber.Router) {
	router.Post("/:id/photo", h.studentPhoto)
}

// RegisterFormationRoutes wires the image upload under the formations group.
func (h *UploadHandler) RegisterFormationRoutes(router fiber.Router) {
	router.Post("/:id/image", h.formationImage)
}

func (h *UploadHandler) studentPhoto(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}
	file, err := c.FormFile("file")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, service.ErrUploadMissing.Error())
	}

	result, err := h.service.UploadStudentPhoto(requestContext(c), activityActorFromContext(c), id, file)
	if err != nil {
		return h.uploadError(c, err)
	}

	return utils.SendSuccess(c, "upload successful", result)
}

func (h *UploadHandler) formationImage(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}
	file, err := c.FormFile("file")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, service.ErrUploadMissing.Error())
	}

	result, err := h.service.UploadFormationImage(requestContext(c), activityActorFromContext(c), id, file)
	if err != nil {
		return h.uploadError(c, err)
	}

	return utils.SendSuccess(c, "upload successful", result)
}

func (h *UploadHandler) uploadError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrUploadTooLarge):
		return utils.SendError(c, fiber.StatusRequestEntityTooLarge, err.Error())
	case errors.Is(err, service.ErrUploadTypeNotAllowed):
		return utils.SendError(c, fiber.StatusUnsupportedMediaType, err.Error())
	case errors.Is(err, service.ErrUploadMissing):
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrStorageUnavailable):
		return utils.SendError(c, fiber.StatusServiceUnavailable, err.Error())
	default:
		return respondServiceError(c, h.logger, err, "store upload")
	}
}
