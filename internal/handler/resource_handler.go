package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/formation-api/internal/dto"
	"github.com/noah-isme/formation-api/internal/repository"
	"github.com/noah-isme/formation-api/internal/service"
	"github.com/noah-isme/formation-api/internal/utils"
)

// ResourceHandler exposes the CRUD routes of one resource.
type ResourceHandler[T any, C any, U any] struct {
	name    string
	service service.ResourceService[T, C, U]
	filters []string
	logger  zerolog.Logger
}

// NewResourceHandler constructs a handler. filters lists the query parameters
// accepted as equality conditions on list, e.g. "student_id".
func NewResourceHandler[T any, C any, U any](name string, svc service.ResourceService[T, C, U], logger zerolog.Logger, filters ...string) *ResourceHandler[T, C, U] {
	return &ResourceHandler[T, C, U]{
		name:    name,
		service: svc,
		filters: filters,
		logger:  logger.With().Str("component", name+"_handler").Logger(),
	}
}

// Register wires list, get, create, replace, patch and delete routes.
func (h *ResourceHandler[T, C, U]) Register(router fiber.Router) {
	router.Get("", h.List)
	router.Get("/:id", h.Get)
	router.Post("", h.Create)
	router.Put("/:id", h.Replace)
	router.Patch("/:id", h.Update)
	router.Delete("/:id", h.Delete)
}

// List returns every record matching the configured filters.
func (h *ResourceHandler[T, C, U]) List(c *fiber.Ctx) error {
	conditions := make(map[string]interface{}, len(h.filters))
	for _, key := range h.filters {
		value, err := parseQueryUint(c, key)
		if err != nil {
			return utils.SendError(c, fiber.StatusBadRequest, "invalid "+key)
		}
		if value != nil {
			conditions[key] = *value
		}
	}

	items, err := h.service.List(requestContext(c), repository.ListFilter{Conditions: conditions})
	if err != nil {
		return respondServiceError(c, h.logger, err, "list "+h.name+" records")
	}

	return utils.SendSuccess(c, h.name+" records retrieved", items)
}

// Get returns one record.
func (h *ResourceHandler[T, C, U]) Get(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	item, err := h.service.Get(requestContext(c), id)
	if err != nil {
		return respondServiceError(c, h.logger, err, "load "+h.name)
	}

	return utils.SendSuccess(c, h.name+" retrieved", item)
}

// Create inserts a record from the full payload.
func (h *ResourceHandler[T, C, U]) Create(c *fiber.Ctx) error {
	var payload C
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	item, err := h.service.Create(requestContext(c), activityActorFromContext(c), payload)
	if err != nil {
		return respondServiceError(c, h.logger, err, "create "+h.name)
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, h.name+" created", item)
}

// Replace overwrites a record with the full payload.
func (h *ResourceHandler[T, C, U]) Replace(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var payload C
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	item, err := h.service.Replace(requestContext(c), activityActorFromContext(c), id, payload)
	if err != nil {
		return respondServiceError(c, h.logger, err, "replace "+h.name)
	}

	return utils.SendSuccess(c, h.name+" updated", item)
}

// Update applies the fields present in the payload.
func (h *ResourceHandler[T, C, U]) Update(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var payload U
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	item, err := h.service.Update(requestContext(c), activityActorFromContext(c), id, payload)
	if err != nil {
		return respondServiceError(c, h.logger, err, "update "+h.name)
	}

	return utils.SendSuccess(c, h.name+" updated", item)
}

// Delete removes a record.
func (h *ResourceHandler[T, C, U]) Delete(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.service.Delete(requestContext(c), activityActorFromContext(c), id); err != nil {
		return respondServiceError(c, h.logger, err, "delete "+h.name)
	}

	return utils.SendSuccess(c, "deleted successfully", dto.DeleteResponse{ID: id})
}
