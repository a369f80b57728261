package dto

// CourseCreateRequest captures the payload to create or replace a course.
type CourseCreateRequest struct {
	Name         string  `json:"name" validate:"required,max=255"`
	Description  *string `json:"description" validate:"omitempty,max=5000"`
	DepartmentID uint    `json:"department_id" validate:"required,gt=0"`
	FormationID  *uint   `json:"formation_id" validate:"omitempty,gt=0"`
}

// CourseUpdateRequest captures partial course updates.
type CourseUpdateRequest struct {
	Name         *string `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Description  *string `json:"description,omitempty" validate:"omitempty,max=5000"`
	DepartmentID *uint   `json:"department_id,omitempty" validate:"omitempty,gt=0"`
	FormationID  *uint   `json:"formation_id,omitempty" validate:"omitempty,gt=0"`
}

// GradeCreateRequest captures the payload to record or replace a grade.
type GradeCreateRequest struct {
	Value     *float64 `json:"value" validate:"required,gte=0,lte=100"`
	Date      string   `json:"date" validate:"required,datetime=2006-01-02"`
	StudentID uint     `json:"student_id" validate:"required,gt=0"`
	CourseID  uint     `json:"course_id" validate:"required,gt=0"`
}

// GradeUpdateRequest captures partial grade updates.
type GradeUpdateRequest struct {
	Value     *float64 `json:"value,omitempty" validate:"omitempty,gte=0,lte=100"`
	Date      *string  `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	StudentID *uint    `json:"student_id,omitempty" validate:"omitempty,gt=0"`
	CourseID  *uint    `json:"course_id,omitempty" validate:"omitempty,gt=0"`
}

// EnrollmentCreateRequest captures the payload to enroll a student into a formation.
type EnrollmentCreateRequest struct {
	StudentID      uint   `json:"student_id" validate:"required,gt=0"`
	FormationID    uint   `json:"formation_id" validate:"required,gt=0"`
	EnrollmentDate string `json:"enrollment_date" validate:"omitempty,datetime=2006-01-02"`
	Status         string `json:"status" validate:"omitempty,oneof=ACTIVE COMPLETED CANCELLED"`
}

// EnrollmentUpdateRequest captures partial enrollment updates.
type EnrollmentUpdateRequest struct {
	StudentID      *uint   `json:"student_id,omitempty" validate:"omitempty,gt=0"`
	FormationID    *uint   `json:"formation_id,omitempty" validate:"omitempty,gt=0"`
	EnrollmentDate *string `json:"enrollment_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Status         *string `json:"status,omitempty" validate:"omitempty,oneof=ACTIVE COMPLETED CANCELLED"`
}

// AttendanceCreateRequest captures the payload to record or replace attendance.
type AttendanceCreateRequest struct {
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	Status    string `json:"status" validate:"required,oneof=PRESENT ABSENT EXCUSED"`
	StudentID uint   `json:"student_id" validate:"required,gt=0"`
}

// AttendanceUpdateRequest captures partial attendance updates.
type AttendanceUpdateRequest struct {
	Date      *string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Status    *string `json:"status,omitempty" validate:"omitempty,oneof=PRESENT ABSENT EXCUSED"`
	StudentID *uint   `json:"student_id,omitempty" validate:"omitempty,gt=0"`
}
