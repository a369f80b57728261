package models

import "time"

const (
	// StudentStatusActive marks a student currently following a formation.
	StudentStatusActive = "ACTIVE"
	// StudentStatusGraduated marks a student that completed their training.
	StudentStatusGraduated = "GRADUATED"
	// StudentStatusDropped marks a student that left the institute.
	StudentStatusDropped = "DROPPED"
)

// Student represents a learner registered at the institute.
type Student struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	FirstName      string    `gorm:"size:120;not null" json:"first_name"`
	LastName       string    `gorm:"size:120;not null" json:"last_name"`
	DateOfBirth    time.Time `gorm:"not null" json:"date_of_birth"`
	Email          string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PhoneNumber    *string   `gorm:"size:32" json:"phone_number"`
	EnrollmentDate time.Time `gorm:"not null" json:"enrollment_date"`
	Status         string    `gorm:"size:16;not null;default:ACTIVE;index" json:"status"`
	Photo          *string   `gorm:"size:512" json:"photo"`
	PasswordHash   string    `gorm:"size:255" json:"-"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Enrollments []Enrollment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Grades      []Grade      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Attendances []Attendance `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

// StudentStatuses lists every accepted student status.
var StudentStatuses = []string{StudentStatusActive, StudentStatusGraduated, StudentStatusDropped}
