package dto

// StudentCreateRequest captures the payload to register or fully replace a student.
type StudentCreateRequest struct {
	FirstName      string  `json:"first_name" validate:"required,min=1,max=120"`
	LastName       string  `json:"last_name" validate:"required,min=1,max=120"`
	DateOfBirth    string  `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	Email          string  `json:"email" validate:"required,email"`
	PhoneNumber    *string `json:"phone_number" validate:"omitempty,max=32"`
	EnrollmentDate string  `json:"enrollment_date" validate:"required,datetime=2006-01-02"`
	Status         string  `json:"status" validate:"omitempty,oneof=ACTIVE GRADUATED DROPPED"`
	Photo          *string `json:"photo" validate:"omitempty,url"`
	Password       string  `json:"password,omitempty" validate:"omitempty,min=8"`
}

// StudentUpdateRequest captures partial student updates.
type StudentUpdateRequest struct {
	FirstName      *string `json:"first_name,omitempty" validate:"omitempty,min=1,max=120"`
	LastName       *string `json:"last_name,omitempty" validate:"omitempty,min=1,max=120"`
	DateOfBirth    *string `json:"date_of_birth,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Email          *string `json:"email,omitempty" validate:"omitempty,email"`
	PhoneNumber    *string `json:"phone_number,omitempty" validate:"omitempty,max=32"`
	EnrollmentDate *string `json:"enrollment_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Status         *string `json:"status,omitempty" validate:"omitempty,oneof=ACTIVE GRADUATED DROPPED"`
	Photo          *string `json:"photo,omitempty" validate:"omitempty,url"`
	Password       *string `json:"password,omitempty" validate:"omitempty,min=8"`
}
