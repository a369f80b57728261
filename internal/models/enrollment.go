package models

import "time"

const (
	// EnrollmentStatusActive marks an ongoing enrollment.
	EnrollmentStatusActive = "ACTIVE"
	// EnrollmentStatusCompleted marks a finished enrollment.
	EnrollmentStatusCompleted = "COMPLETED"
	// EnrollmentStatusCancelled marks an enrollment withdrawn before completion.
	EnrollmentStatusCancelled = "CANCELLED"
)

// Enrollment links a student to a formation.
type Enrollment struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	StudentID      uint      `gorm:"not null;index:idx_enrollment_student_formation" json:"student_id"`
	FormationID    uint      `gorm:"not null;index:idx_enrollment_student_formation" json:"formation_id"`
	EnrollmentDate time.Time `gorm:"not null" json:"enrollment_date"`
	Status         string    `gorm:"size:16;not null;default:ACTIVE" json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
