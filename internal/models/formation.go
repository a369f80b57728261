package models

import "time"

// Formation is a training programme students enroll into.
type Formation struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"size:255;not null" json:"name"`
	Description     *string   `gorm:"type:text" json:"description"`
	Image           *string   `gorm:"size:512" json:"image"`
	AvailableSpots  int       `gorm:"not null" json:"available_spots"`
	RemainingSpots  *int      `json:"remaining_spots"`
	DurationInHours int       `gorm:"not null" json:"duration_in_hours"`
	StartDate       time.Time `gorm:"not null" json:"start_date"`
	EndDate         time.Time `gorm:"not null" json:"end_date"`
	InstructorID    *uint     `gorm:"index" json:"instructor_id"`
	DepartmentID    *uint     `gorm:"index" json:"department_id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	Schedules   []Schedule   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Enrollments []Enrollment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Calendar    *Calendar    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}
