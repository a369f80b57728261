package models

import "time"

// Department groups instructors, courses and formations.
type Department struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description *string   `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Instructors []Instructor `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
	Courses     []Course     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Formations  []Formation  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
	Admins      []Admin      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}
