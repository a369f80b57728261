package service

import (
	"context"

	"github.com/noah-isme/formation-api/internal/dto"
	"github.com/noah-isme/formation-api/internal/models"
	"github.com/noah-isme/formation-api/internal/repository"
)

// FormationService manages formations.
type FormationService = ResourceService[models.Formation, dto.FormationCreateRequest, dto.FormationUpdateRequest]

// ScheduleService manages weekly schedule slots.
type ScheduleService = ResourceService[models.Schedule, dto.ScheduleCreateRequest, dto.ScheduleUpdateRequest]

// EventService manages calendar events.
type EventService = ResourceService[models.Event, dto.EventCreateRequest, dto.EventUpdateRequest]

// CalendarService manages formation calendars.
type CalendarService interface {
	ResourceService[models.Calendar, dto.CalendarCreateRequest, dto.CalendarUpdateRequest]
	ForFormation(ctx context.Context, formationID uint) (models.Calendar, error)
}

// NewFormationService constructs the formation service.
func NewFormationService(repo repository.CRUDRepository[models.Formation], deps ResourceDeps) FormationService {
	return newResourceService(repo, resourceHooks[models.Formation, dto.FormationCreateRequest, dto.FormationUpdateRequest]{
		name:   "formation",
		idOf:   func(f models.Formation) uint { return f.ID },
		build:  buildFormation,
		apply:  applyFormation,
		fields: formationFields,
		check: func(_ context.Context, _ uint, formation models.Formation) error {
			return checkFormation(formation)
		},
	}, deps)
}

func buildFormation(payload dto.FormationCreateRequest) (models.Formation, error) {
	start, err := parseDate("start_date", payload.StartDate)
	if err != nil {
		return models.Formation{}, err
	}
	end, err := parseDate("end_date", payload.EndDate)
	if err != nil {
		return models.Formation{}, err
	}

	return models.Formation{
		Name:            sanitizeText(payload.Name),
		Description:     sanitizeOptional(payload.Description),
		Image:           trimOptional(payload.Image),
		AvailableSpots:  payload.AvailableSpots,
		RemainingSpots:  payload.RemainingSpots,
		DurationInHours: payload.DurationInHours,
		StartDate:       start,
		EndDate:         end,
		InstructorID:    payload.InstructorID,
		DepartmentID:    payload.DepartmentID,
	}, nil
}

func applyFormation(formation *models.Formation, payload dto.FormationUpdateRequest) error {
	if payload.Name != nil {
		formation.Name = sanitizeText(*payload.Name)
	}
	if payload.Description != nil {
		formation.Description = sanitizeOptional(payload.Description)
	}
	if payload.Image != nil {
		formation.Image = trimOptional(payload.Image)
	}
	if payload.AvailableSpots != nil {
		formation.AvailableSpots = *payload.AvailableSpots
	}
	if payload.RemainingSpots != nil {
		formation.RemainingSpots = payload.RemainingSpots
	}
	if payload.DurationInHours != nil {
		formation.DurationInHours = *payload.DurationInHours
	}
	if payload.StartDate != nil {
		parsed, err := parseDate("start_date", *payload.StartDate)
		if err != nil {
			return err
		}
		formation.StartDate = parsed
	}
	if payload.EndDate != nil {
		parsed, err := parseDate("end_date", *payload.EndDate)
		if err != nil {
			return err
		}
		formation.EndDate = parsed
	}
	if payload.InstructorID != nil {
		formation.InstructorID = payload.InstructorID
	}
	if payload.DepartmentID != nil {
		formation.DepartmentID = payload.DepartmentID
	}
	return nil
}

func formationFields(formation models.Formation) map[string]interface{} {
	return map[string]interface{}{
		"name":              formation.Name,
		"description":       formation.Description,
		"image":             formation.Image,
		"available_spots":   formation.AvailableSpots,
		"remaining_spots":   formation.RemainingSpots,
		"duration_in_hours": formation.DurationInHours,
		"start_date":        formation.StartDate,
		"end_date":          formation.EndDate,
		"instructor_id":     formation.InstructorID,
		"department_id":     formation.DepartmentID,
	}
}

func checkFormation(formation models.Formation) error {
	if formation.Name == "" {
		return invalidInput("name is empty after sanitization")
	}
	if formation.EndDate.Before(formation.StartDate) {
		return invalidInput("end_date must not be before start_date")
	}
	if formation.RemainingSpots != nil && *formation.RemainingSpots > formation.AvailableSpots {
		return invalidInput("remaining_spots cannot exceed available_spots")
	}
	return nil
}

// NewScheduleService constructs the schedule service.
func NewScheduleService(repo repository.CRUDRepository[models.Schedule], deps ResourceDeps) ScheduleService {
	return newResourceService(repo, resourceHooks[models.Schedule, dto.ScheduleCreateRequest, dto.ScheduleUpdateRequest]{
		name: "schedule",
		idOf: func(s models.Schedule) uint { return s.ID },
		build: func(payload dto.ScheduleCreateRequest) (models.Schedule, error) {
			return models.Schedule{
				DayOfWeek:   payload.DayOfWeek,
				StartTime:   normalizeClock(payload.StartTime),
				EndTime:     normalizeClock(payload.EndTime),
				Location:    sanitizeText(payload.Location),
				FormationID: payload.FormationID,
			}, nil
		},
		apply: func(schedule *models.Schedule, payload dto.ScheduleUpdateRequest) error {
			if payload.DayOfWeek != nil {
				schedule.DayOfWeek = *payload.DayOfWeek
			}
			if payload.StartTime != nil {
				schedule.StartTime = normalizeClock(*payload.StartTime)
			}
			if payload.EndTime != nil {
				schedule.EndTime = normalizeClock(*payload.EndTime)
			}
			if payload.Location != nil {
				schedule.Location = sanitizeText(*payload.Location)
			}
			if payload.FormationID != nil {
				schedule.FormationID = *payload.FormationID
			}
			return nil
		},
		fields: func(schedule models.Schedule) map[string]interface{} {
			return map[string]interface{}{
				"day_of_week":  schedule.DayOfWeek,
				"start_time":   schedule.StartTime,
				"end_time":     schedule.EndTime,
				"location":     schedule.Location,
				"formation_id": schedule.FormationID,
			}
		},
		check: func(_ context.Context, _ uint, schedule models.Schedule) error {
			if !clockOrdered(schedule.StartTime, schedule.EndTime) {
				return invalidInput("start_time must be before end_time")
			}
			return nil
		},
	}, deps)
}

type calendarService struct {
	*resourceService[models.Calendar, dto.CalendarCreateRequest, dto.CalendarUpdateRequest]
	calendars repository.CalendarRepository
}

// NewCalendarService constructs the calendar service.
func NewCalendarService(repo repository.CalendarRepository, deps ResourceDeps) CalendarService {
	base := newResourceService(repository.CRUDRepository[models.Calendar](repo), resourceHooks[models.Calendar, dto.CalendarCreateRequest, dto.CalendarUpdateRequest]{
		name: "calendar",
		idOf: func(c models.Calendar) uint { return c.ID },
		build: func(payload dto.CalendarCreateRequest) (models.Calendar, error) {
			return models.Calendar{FormationID: payload.FormationID, Events: []models.Event{}}, nil
		},
		apply: func(calendar *models.Calendar, payload dto.CalendarUpdateRequest) error {
			if payload.FormationID != nil {
				calendar.FormationID = *payload.FormationID
			}
			return nil
		},
		fields: func(calendar models.Calendar) map[string]interface{} {
			return map[string]interface{}{"formation_id": calendar.FormationID}
		},
		get:  repo.GetWithEvents,
		list: repo.ListWithEvents,
	}, deps)

	return &calendarService{resourceService: base, calendars: repo}
}

func (s *calendarService) ForFormation(ctx context.Context, formationID uint) (models.Calendar, error) {
	calendar, err := s.calendars.GetByFormation(ctx, formationID)
	if err != nil {
		return models.Calendar{}, translateError(err)
	}
	return calendar, nil
}

// NewEventService constructs the calendar event service.
func NewEventService(repo repository.CRUDRepository[models.Event], deps ResourceDeps) EventService {
	return newResourceService(repo, resourceHooks[models.Event, dto.EventCreateRequest, dto.EventUpdateRequest]{
		name: "event",
		idOf: func(e models.Event) uint { return e.ID },
		build: func(payload dto.EventCreateRequest) (models.Event, error) {
			date, err := parseDate("date", payload.Date)
			if err != nil {
				return models.Event{}, err
			}
			return models.Event{
				Title:      sanitizeText(payload.Title),
				Date:       date,
				StartTime:  normalizeClock(payload.StartTime),
				EndTime:    normalizeClock(payload.EndTime),
				CalendarID: payload.CalendarID,
			}, nil
		},
		apply: func(event *models.Event, payload dto.EventUpdateRequest) error {
			if payload.Title != nil {
				event.Title = sanitizeText(*payload.Title)
			}
			if payload.Date != nil {
				parsed, err := parseDate("date", *payload.Date)
				if err != nil {
					return err
				}
				event.Date = parsed
			}
			if payload.StartTime != nil {
				event.StartTime = normalizeClock(*payload.StartTime)
			}
			if payload.EndTime != nil {
				event.EndTime = normalizeClock(*payload.EndTime)
			}
			if payload.CalendarID != nil {
				event.CalendarID = *payload.CalendarID
			}
			return nil
		},
		fields: func(event models.Event) map[string]interface{} {
			return map[string]interface{}{
				"title":       event.Title,
				"date":        event.Date,
				"start_time":  event.StartTime,
				"end_time":    event.EndTime,
				"calendar_id": event.CalendarID,
			}
		},
		check: func(_ context.Context, _ uint, event models.Event) error {
			if event.Title == "" {
				return invalidInput("title is empty after sanitization")
			}
			if !clockOrdered(event.StartTime, event.EndTime) {
				return invalidInput("start_time must be before end_time")
			}
			return nil
		},
	}, deps)
}
