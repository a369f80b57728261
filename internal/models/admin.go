package models

import "time"

// Admin is a staff member managing a department.
type Admin struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	FirstName    string    `gorm:"size:120;not null" json:"first_name"`
	LastName     string    `gorm:"size:120;not null" json:"last_name"`
	Email        string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PhoneNumber  string    `gorm:"size:32;not null" json:"phone_number"`
	DepartmentID uint      `gorm:"not null;index" json:"department_id"`
	PasswordHash string    `gorm:"size:255" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
