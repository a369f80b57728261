package dto

// FormationCreateRequest captures the payload to create or replace a formation.
type FormationCreateRequest struct {
	Name            string  `json:"name" validate:"required,max=255"`
	Description     *string `json:"description" validate:"omitempty,max=5000"`
	Image           *string `json:"image" validate:"omitempty,url"`
	AvailableSpots  int     `json:"available_spots" validate:"gte=0"`
	RemainingSpots  *int    `json:"remaining_spots" validate:"omitempty,gte=0"`
	DurationInHours int     `json:"duration_in_hours" validate:"required,gt=0"`
	StartDate       string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate         string  `json:"end_date" validate:"required,datetime=2006-01-02"`
	InstructorID    *uint   `json:"instructor_id" validate:"omitempty,gt=0"`
	DepartmentID    *uint   `json:"department_id" validate:"omitempty,gt=0"`
}

// FormationUpdateRequest captures partial formation updates.
type FormationUpdateRequest struct {
	Name            *string `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Description     *string `json:"description,omitempty" validate:"omitempty,max=5000"`
	Image           *string `json:"image,omitempty" validate:"omitempty,url"`
	AvailableSpots  *int    `json:"available_spots,omitempty" validate:"omitempty,gte=0"`
	RemainingSpots  *int    `json:"remaining_spots,omitempty" validate:"omitempty,gte=0"`
	DurationInHours *int    `json:"duration_in_hours,omitempty" validate:"omitempty,gt=0"`
	StartDate       *string `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate         *string `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	InstructorID    *uint   `json:"instructor_id,omitempty" validate:"omitempty,gt=0"`
	DepartmentID    *uint   `json:"department_id,omitempty" validate:"omitempty,gt=0"`
}

// ScheduleCreateRequest captures the payload to create or replace a schedule slot.
type ScheduleCreateRequest struct {
	DayOfWeek   string `json:"day_of_week" validate:"required,oneof=MONDAY TUESDAY WEDNESDAY THURSDAY FRIDAY SATURDAY SUNDAY"`
	StartTime   string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime     string `json:"end_time" validate:"required,datetime=15:04"`
	Location    string `json:"location" validate:"required,max=255"`
	FormationID uint   `json:"formation_id" validate:"required,gt=0"`
}

// ScheduleUpdateRequest captures partial schedule updates.
type ScheduleUpdateRequest struct {
	DayOfWeek   *string `json:"day_of_week,omitempty" validate:"omitempty,oneof=MONDAY TUESDAY WEDNESDAY THURSDAY FRIDAY SATURDAY SUNDAY"`
	StartTime   *string `json:"start_time,omitempty" validate:"omitempty,datetime=15:04"`
	EndTime     *string `json:"end_time,omitempty" validate:"omitempty,datetime=15:04"`
	Location    *string `json:"location,omitempty" validate:"omitempty,min=1,max=255"`
	FormationID *uint   `json:"formation_id,omitempty" validate:"omitempty,gt=0"`
}

// CalendarCreateRequest attaches a calendar to a formation.
type CalendarCreateRequest struct {
	FormationID uint `json:"formation_id" validate:"required,gt=0"`
}

// CalendarUpdateRequest moves a calendar to another formation.
type CalendarUpdateRequest struct {
	FormationID *uint `json:"formation_id,omitempty" validate:"omitempty,gt=0"`
}

// EventCreateRequest captures the payload to create or replace a calendar event.
type EventCreateRequest struct {
	Title      string `json:"title" validate:"required,max=255"`
	Date       string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime  string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime    string `json:"end_time" validate:"required,datetime=15:04"`
	CalendarID uint   `json:"calendar_id" validate:"required,gt=0"`
}

// EventUpdateRequest captures partial event updates.
type EventUpdateRequest struct {
	Title      *string `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Date       *string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	StartTime  *string `json:"start_time,omitempty" validate:"omitempty,datetime=15:04"`
	EndTime    *string `json:"end_time,omitempty" validate:"omitempty,datetime=15:04"`
	CalendarID *uint   `json:"calendar_id,omitempty" validate:"omitempty,gt=0"`
}
