package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/formation-api/internal/dto"
	"github.com/noah-isme/formation-api/internal/models"
	"github.com/noah-isme/formation-api/internal/repository"
)

type memoryActivityRepo struct {
	entries []models.ActivityLog
	filters []repository.ActivityLogFilter
}

func (m *memoryActivityRepo) Create(ctx context.Context, entry *models.ActivityLog) error {
	entry.ID = uint(len(m.entries) + 1)
	entry.CreatedAt = time.Now()
	m.entries = append(m.entries, *entry)
	return nil
}

func (m *memoryActivityRepo) List(ctx context.Context, filter repository.ActivityLogFilter) ([]models.ActivityLog, int64, error) {
	m.filters = append(m.filters, filter)
	return append([]models.ActivityLog(nil), m.entries...), int64(len(m.entries)), nil
}

func TestActivityServiceRecordMasksSensitiveMetadata(t *testing.T) {
	repo := &memoryActivityRepo{}
	svc := NewActivityService(repo, testLogger())

	entry, err := svc.Record(context.Background(), ActivityEntry{
		ActorID:    1,
		ActorRole:  "Admin",
		Action:     "Updated",
		EntityType: "Student",
		EntityID:   ptrUint(5),
		Metadata: map[string]interface{}{
			"email":    "student@example.com",
			"password": "secret",
			"field":    "status",
		},
	})
	require.NoError(t, err)
	require.Equal(t, "***", entry.Metadata["email"])
	require.Equal(t, "***", entry.Metadata["password"])
	require.Equal(t, "status", entry.Metadata["field"])
	require.Equal(t, "admin", entry.ActorRole)
	require.Equal(t, "updated", entry.Action)
	require.Equal(t, "student", entry.EntityType)
}

func TestActivityServiceRecordRequiresAction(t *testing.T) {
	svc := NewActivityService(&memoryActivityRepo{}, testLogger())

	_, err := svc.Record(context.Background(), ActivityEntry{EntityType: "student"})
	require.Error(t, err)
}

func TestActivityServiceListBuildsFilterAndPagination(t *testing.T) {
	repo := &memoryActivityRepo{}
	svc := NewActivityService(repo, testLogger())
	for i := 0; i < 3; i++ {
		_, err := svc.Record(context.Background(), ActivityEntry{Action: "created", EntityType: "grade"})
		require.NoError(t, err)
	}

	since := time.Now().Add(-time.Hour)
	result, err := svc.List(context.Background(), dto.ActivityListRequest{
		Page:       1,
		PageSize:   2,
		ActorID:    7,
		EntityType: " Grade ",
		EntityID:   3,
		Since:      &since,
	})
	require.NoError(t, err)
	require.Len(t, result.Items, 3)
	require.Equal(t, 2, result.Pagination.TotalPages)
	require.Equal(t, "system", result.Items[0].ActorRole)

	require.Len(t, repo.filters, 1)
	filter := repo.filters[0]
	require.Equal(t, "grade", filter.EntityType)
	require.NotNil(t, filter.ActorID)
	require.Equal(t, uint(7), *filter.ActorID)
	require.NotNil(t, filter.EntityID)
	require.Equal(t, &since, filter.Since)
}
