package models

import "time"

const (
	TrainingRequestPending  = "PENDING"
	TrainingRequestApproved = "APPROVED"
	TrainingRequestRejected = "REJECTED"
)

// TrainingRequest is an application submitted by a prospective trainee.
type TrainingRequest struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	FirstName    string    `gorm:"size:120;not null" json:"first_name"`
	LastName     string    `gorm:"size:120;not null" json:"last_name"`
	Email        string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PhoneNumber  *string   `gorm:"size:32" json:"phone_number"`
	FormationID  *uint     `gorm:"index" json:"formation_id"`
	Message      *string   `gorm:"type:text" json:"message"`
	Status       string    `gorm:"size:16;not null;default:PENDING" json:"status"`
	PasswordHash string    `gorm:"size:255" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
