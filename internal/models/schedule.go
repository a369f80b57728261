package models

import "time"

// Weekday values accepted by schedules.
const (
	DayMonday    = "MONDAY"
	DayTuesday   = "TUESDAY"
	DayWednesday = "WEDNESDAY"
	DayThursday  = "THURSDAY"
	DayFriday    = "FRIDAY"
	DaySaturday  = "SATURDAY"
	DaySunday    = "SUNDAY"
)

// Schedule is a recurring weekly session of a formation.
type Schedule struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	DayOfWeek   string    `gorm:"size:16;not null" json:"day_of_week"`
	StartTime   string    `gorm:"size:5;not null" json:"start_time"`
	EndTime     string    `gorm:"size:5;not null" json:"end_time"`
	Location    string    `gorm:"size:255;not null" json:"location"`
	FormationID uint      `gorm:"not null;index" json:"formation_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
