package models

import "time"

// Course is a subject taught inside a department, optionally tied to a formation.
type Course struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	Description  *string   `gorm:"type:text" json:"description"`
	DepartmentID uint      `gorm:"not null;index" json:"department_id"`
	FormationID  *uint     `gorm:"index" json:"formation_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Grades []Grade `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}
