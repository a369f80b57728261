package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/formation-api/internal/dto"
	"github.com/noah-isme/formation-api/internal/handler"
	"github.com/noah-isme/formation-api/internal/service"
)

type stubActivityService struct {
	last dto.ActivityListRequest
}

func (s *stubActivityService) Record(context.Context, service.ActivityEntry) (dto.ActivityResponse, error) {
	return dto.ActivityResponse{}, nil
}

func (s *stubActivityService) List(_ context.Context, req dto.ActivityListRequest) (dto.ActivityListResponse, error) {
	s.last = req
	return dto.ActivityListResponse{
		Items:      []dto.ActivityResponse{{ID: 1, Action: "created", EntityType: "student"}},
		Pagination: dto.PaginationMeta{Page: req.Page, PageSize: req.PageSize, TotalItems: 1, TotalPages: 1},
	}, nil
}

func TestActivityHandlerParsesFilters(t *testing.T) {
	svc := &stubActivityService{}
	app := fiber.New()
	handler.NewActivityHandler(svc, zerolog.Nop()).Register(app.Group("/api/activities"))

	resp, body := doJSON(t, app, http.MethodGet, "/api/activities?page=2&page_size=500&actor_id=3&entity_id=8&action=created&entity_type=student&since=2024-05-01T10:00:00Z", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.Equal(t, 2, svc.last.Page)
	require.Equal(t, 200, svc.last.PageSize)
	require.Equal(t, uint(3), svc.last.ActorID)
	require.Equal(t, uint(8), svc.last.EntityID)
	require.Equal(t, "created", svc.last.Action)
	require.NotNil(t, svc.last.Since)
	require.True(t, svc.last.Since.Equal(time.Date(2024, time.May, 1, 10, 0, 0, 0, time.UTC)))

	var items []dto.ActivityResponse
	require.NoError(t, json.Unmarshal(body.Data, &items))
	require.Len(t, items, 1)

	var meta dto.PaginationMeta
	require.NoError(t, json.Unmarshal(body.Meta, &meta))
	require.Equal(t, int64(1), meta.TotalItems)
}

func TestActivityHandlerRejectsInvalidFilters(t *testing.T) {
	app := fiber.New()
	handler.NewActivityHandler(&stubActivityService{}, zerolog.Nop()).Register(app.Group("/api/activities"))

	for _, query := range []string{"page=x", "page_size=y", "actor_id=-1", "entity_id=z", "since=yesterday"} {
		resp, _ := doJSON(t, app, http.MethodGet, "/api/activities?"+query, nil)
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode, query)
	}
}
