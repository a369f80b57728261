package models

import "time"

// Calendar holds the dated events of a formation. A formation has at most one calendar.
type Calendar struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FormationID uint      `gorm:"not null;uniqueIndex" json:"formation_id"`
	Events      []Event   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"events"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Event is a single dated entry of a calendar.
type Event struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Title      string    `gorm:"size:255;not null" json:"title"`
	Date       time.Time `gorm:"not null" json:"date"`
	StartTime  string    `gorm:"size:5;not null" json:"start_time"`
	EndTime    string    `gorm:"size:5;not null" json:"end_time"`
	CalendarID uint      `gorm:"not null;index" json:"calendar_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
