package dto

// InstructorCreateRequest captures the payload to create or replace an instructor.
type InstructorCreateRequest struct {
	FirstName      string  `json:"first_name" validate:"required,max=120"`
	LastName       string  `json:"last_name" validate:"required,max=120"`
	Email          string  `json:"email" validate:"required,email"`
	PhoneNumber    *string `json:"phone_number" validate:"omitempty,max=32"`
	Specialization *string `json:"specialization" validate:"omitempty,max=255"`
	IsSpecialist   bool    `json:"is_specialist"`
	DepartmentID   *uint   `json:"department_id" validate:"omitempty,gt=0"`
}

// InstructorUpdateRequest captures partial instructor updates.
type InstructorUpdateRequest struct {
	FirstName      *string `json:"first_name,omitempty" validate:"omitempty,min=1,max=120"`
	LastName       *string `json:"last_name,omitempty" validate:"omitempty,min=1,max=120"`
	Email          *string `json:"email,omitempty" validate:"omitempty,email"`
	PhoneNumber    *string `json:"phone_number,omitempty" validate:"omitempty,max=32"`
	Specialization *string `json:"specialization,omitempty" validate:"omitempty,max=255"`
	IsSpecialist   *bool   `json:"is_specialist,omitempty"`
	DepartmentID   *uint   `json:"department_id,omitempty" validate:"omitempty,gt=0"`
}

// AdminCreateRequest captures the payload to create or replace an administrator.
type AdminCreateRequest struct {
	FirstName    string `json:"first_name" validate:"required,max=120"`
	LastName     string `json:"last_name" validate:"required,max=120"`
	Email        string `json:"email" validate:"required,email"`
	PhoneNumber  string `json:"phone_number" validate:"required,max=32"`
	DepartmentID uint   `json:"department_id" validate:"required,gt=0"`
	Password     string `json:"password,omitempty" validate:"omitempty,min=8"`
}

// AdminUpdateRequest captures partial administrator updates.
type AdminUpdateRequest struct {
	FirstName    *string `json:"first_name,omitempty" validate:"omitempty,min=1,max=120"`
	LastName     *string `json:"last_name,omitempty" validate:"omitempty,min=1,max=120"`
	Email        *string `json:"email,omitempty" validate:"omitempty,email"`
	PhoneNumber  *string `json:"phone_number,omitempty" validate:"omitempty,min=1,max=32"`
	DepartmentID *uint   `json:"department_id,omitempty" validate:"omitempty,gt=0"`
	Password     *string `json:"password,omitempty" validate:"omitempty,min=8"`
}

// DepartmentCreateRequest captures the payload to create or replace a department.
type DepartmentCreateRequest struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Description *string `json:"description" validate:"omitempty,max=5000"`
}

// DepartmentUpdateRequest captures partial department updates.
type DepartmentUpdateRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=5000"`
}

// TrainingRequestCreateRequest captures an application to a formation.
type TrainingRequestCreateRequest struct {
	FirstName   string  `json:"first_name" validate:"required,max=120"`
	LastName    string  `json:"last_name" validate:"required,max=120"`
	Email       string  `json:"email" validate:"required,email"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,max=32"`
	FormationID *uint   `json:"formation_id" validate:"omitempty,gt=0"`
	Message     *string `json:"message" validate:"omitempty,max=5000"`
	Status      string  `json:"status" validate:"omitempty,oneof=PENDING APPROVED REJECTED"`
	Password    string  `json:"password,omitempty" validate:"omitempty,min=8"`
}

// TrainingRequestUpdateRequest captures partial training request updates.
type TrainingRequestUpdateRequest struct {
	FirstName   *string `json:"first_name,omitempty" validate:"omitempty,min=1,max=120"`
	LastName    *string `json:"last_name,omitempty" validate:"omitempty,min=1,max=120"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
	PhoneNumber *string `json:"phone_number,omitempty" validate:"omitempty,max=32"`
	FormationID *uint   `json:"formation_id,omitempty" validate:"omitempty,gt=0"`
	Message     *string `json:"message,omitempty" validate:"omitempty,max=5000"`
	Status      *string `json:"status,omitempty" validate:"omitempty,oneof=PENDING APPROVED REJECTED"`
	Password    *string `json:"password,omitempty" validate:"omitempty,min=8"`
}
