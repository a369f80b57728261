package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/noah-isme/formation-api/internal/models"
)

// CalendarRepository provides access to formation calendars.
type CalendarRepository interface {
	CRUDRepository[models.Calendar]
	GetWithEvents(ctx context.Context, id uint) (models.Calendar, error)
	GetByFormation(ctx context.Context, formationID uint) (models.Calendar, error)
	ListWithEvents(ctx context.Context, filter ListFilter) ([]models.Calendar, error)
}

type calendarRepository struct {
	*crudRepository[models.Calendar]
}

// NewCalendarRepository constructs the calendar repository.
func NewCalendarRepository(db *gorm.DB) CalendarRepository {
	return &calendarRepository{crudRepository: newCRUDRepository[models.Calendar](db)}
}

func (r *calendarRepository) GetWithEvents(ctx context.Context, id uint) (models.Calendar, error) {
	return r.firstWithEvents(ctx, "id = ?", id)
}

func (r *calendarRepository) GetByFormation(ctx context.Context, formationID uint) (models.Calendar, error) {
	return r.firstWithEvents(ctx, "formation_id = ?", formationID)
}

func (r *calendarRepository) firstWithEvents(ctx context.Context, query string, arg uint) (models.Calendar, error) {
	var calendar models.Calendar
	err := r.db.WithContext(ctx).
		Preload("Events", func(db *gorm.DB) *gorm.DB {
			return db.Order("date ASC, start_time ASC")
		}).
		Where(query, arg).
		First(&calendar).Error
	if err != nil {
		return models.Calendar{}, err
	}
	if calendar.Events == nil {
		calendar.Events = []models.Event{}
	}
	return calendar, nil
}

// ListWithEvents returns calendars with their ordered events.
func (r *calendarRepository) ListWithEvents(ctx context.Context, filter ListFilter) ([]models.Calendar, error) {
	query := r.db.WithContext(ctx).Preload("Events", func(db *gorm.DB) *gorm.DB {
		return db.Order("date ASC, start_time ASC")
	})
	for column, value := range filter.Conditions {
		query = query.Where(map[string]interface{}{column: value})
	}

	calendars := make([]models.Calendar, 0)
	if err := query.Order("id ASC").Find(&calendars).Error; err != nil {
		return nil, err
	}
	for i := range calendars {
		if calendars[i].Events == nil {
			calendars[i].Events = []models.Event{}
		}
	}
	return calendars, nil
}
