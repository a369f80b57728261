package models

import "time"

// PassingGrade is the minimum value counted as a pass.
const PassingGrade = 60

// Grade is a mark obtained by a student for a course.
type Grade struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Value     float64   `gorm:"not null" json:"value"`
	Date      time.Time `gorm:"not null" json:"date"`
	StudentID uint      `gorm:"not null;index" json:"student_id"`
	CourseID  uint      `gorm:"not null;index" json:"course_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
