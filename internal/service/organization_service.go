package service

import (
	"context"
	"strings"

	"github.com/noah-isme/formation-api/internal/dto"
	"github.com/noah-isme/formation-api/internal/models"
	"github.com/noah-isme/formation-api/internal/repository"
)

// InstructorService manages instructors.
type InstructorService = ResourceService[models.Instructor, dto.InstructorCreateRequest, dto.InstructorUpdateRequest]

// DepartmentService manages departments.
type DepartmentService = ResourceService[models.Department, dto.DepartmentCreateRequest, dto.DepartmentUpdateRequest]

// NewInstructorService constructs the instructor service.
func NewInstructorService(repo repository.CRUDRepository[models.Instructor], deps ResourceDeps) InstructorService {
	return newResourceService(repo, resourceHooks[models.Instructor, dto.InstructorCreateRequest, dto.InstructorUpdateRequest]{
		name: "instructor",
		idOf: func(i models.Instructor) uint { return i.ID },
		build: func(payload dto.InstructorCreateRequest) (models.Instructor, error) {
			return models.Instructor{
				FirstName:      strings.TrimSpace(payload.FirstName),
				LastName:       strings.TrimSpace(payload.LastName),
				Email:          normalizeEmail(payload.Email),
				PhoneNumber:    trimOptional(payload.PhoneNumber),
				Specialization: sanitizeOptional(payload.Specialization),
				IsSpecialist:   payload.IsSpecialist,
				DepartmentID:   payload.DepartmentID,
			}, nil
		},
		apply: func(instructor *models.Instructor, payload dto.InstructorUpdateRequest) error {
			if payload.FirstName != nil {
				instructor.FirstName = strings.TrimSpace(*payload.FirstName)
			}
			if payload.LastName != nil {
				instructor.LastName = strings.TrimSpace(*payload.LastName)
			}
			if payload.Email != nil {
				instructor.Email = normalizeEmail(*payload.Email)
			}
			if payload.PhoneNumber != nil {
				instructor.PhoneNumber = trimOptional(payload.PhoneNumber)
			}
			if payload.Specialization != nil {
				instructor.Specialization = sanitizeOptional(payload.Specialization)
			}
			if payload.IsSpecialist != nil {
				instructor.IsSpecialist = *payload.IsSpecialist
			}
			if payload.DepartmentID != nil {
				instructor.DepartmentID = payload.DepartmentID
			}
			return nil
		},
		fields: func(instructor models.Instructor) map[string]interface{} {
			return map[string]interface{}{
				"first_name":     instructor.FirstName,
				"last_name":      instructor.LastName,
				"email":          instructor.Email,
				"phone_number":   instructor.PhoneNumber,
				"specialization": instructor.Specialization,
				"is_specialist":  instructor.IsSpecialist,
				"department_id":  instructor.DepartmentID,
			}
		},
	}, deps)
}

// NewDepartmentService constructs the department service.
func NewDepartmentService(repo repository.CRUDRepository[models.Department], deps ResourceDeps) DepartmentService {
	return newResourceService(repo, resourceHooks[models.Department, dto.DepartmentCreateRequest, dto.DepartmentUpdateRequest]{
		name: "department",
		idOf: func(d models.Department) uint { return d.ID },
		build: func(payload dto.DepartmentCreateRequest) (models.Department, error) {
			return models.Department{
				Name:        sanitizeText(payload.Name),
				Description: sanitizeOptional(payload.Description),
			}, nil
		},
		apply: func(department *models.Department, payload dto.DepartmentUpdateRequest) error {
			if payload.Name != nil {
				department.Name = sanitizeText(*payload.Name)
			}
			if payload.Description != nil {
				department.Description = sanitizeOptional(payload.Description)
			}
			return nil
		},
		fields: func(department models.Department) map[string]interface{} {
			return map[string]interface{}{
				"name":        department.Name,
				"description": department.Description,
			}
		},
		check: func(_ context.Context, _ uint, department models.Department) error {
			if department.Name == "" {
				return invalidInput("name is empty after sanitization")
			}
			return nil
		},
	}, deps)
}
