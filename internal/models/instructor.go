package models

import "time"

// Instructor teaches formations and may belong to a department.
type Instructor struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	FirstName      string    `gorm:"size:120;not null" json:"first_name"`
	LastName       string    `gorm:"size:120;not null" json:"last_name"`
	Email          string    `gorm:"size:255;not null;index" json:"email"`
	PhoneNumber    *string   `gorm:"size:32" json:"phone_number"`
	Specialization *string   `gorm:"size:255" json:"specialization"`
	IsSpecialist   bool      `gorm:"not null;default:false" json:"is_specialist"`
	DepartmentID   *uint     `gorm:"index" json:"department_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Formations []Formation `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
}
