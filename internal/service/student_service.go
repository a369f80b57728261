package service

import (
	"strings"

	"github.com/noah-isme/formation-api/internal/dto"
	"github.com/noah-isme/formation-api/internal/models"
	"github.com/noah-isme/formation-api/internal/repository"
)

// StudentService manages student records.
type StudentService = ResourceService[models.Student, dto.StudentCreateRequest, dto.StudentUpdateRequest]

// NewStudentService constructs the student service.
func NewStudentService(repo repository.StudentRepository, deps ResourceDeps) StudentService {
	return newResourceService(repository.CRUDRepository[models.Student](repo), resourceHooks[models.Student, dto.StudentCreateRequest, dto.StudentUpdateRequest]{
		name:   "student",
		idOf:   func(s models.Student) uint { return s.ID },
		build:  buildStudent,
		apply:  applyStudent,
		fields: studentFields,
	}, deps)
}

func buildStudent(payload dto.StudentCreateRequest) (models.Student, error) {
	dateOfBirth, err := parseDate("date_of_birth", payload.DateOfBirth)
	if err != nil {
		return models.Student{}, err
	}
	enrolledOn, err := parseDate("enrollment_date", payload.EnrollmentDate)
	if err != nil {
		return models.Student{}, err
	}

	status := payload.Status
	if status == "" {
		status = models.StudentStatusActive
	}

	student := models.Student{
		FirstName:      strings.TrimSpace(payload.FirstName),
		LastName:       strings.TrimSpace(payload.LastName),
		DateOfBirth:    dateOfBirth,
		Email:          normalizeEmail(payload.Email),
		PhoneNumber:    trimOptional(payload.PhoneNumber),
		EnrollmentDate: enrolledOn,
		Status:         status,
		Photo:          trimOptional(payload.Photo),
	}
	if payload.Password != "" {
		hash, err := hashPassword(payload.Password)
		if err != nil {
			return models.Student{}, err
		}
		student.PasswordHash = hash
	}
	return student, nil
}

func applyStudent(student *models.Student, payload dto.StudentUpdateRequest) error {
	if payload.FirstName != nil {
		student.FirstName = strings.TrimSpace(*payload.FirstName)
	}
	if payload.LastName != nil {
		student.LastName = strings.TrimSpace(*payload.LastName)
	}
	if payload.DateOfBirth != nil {
		parsed, err := parseDate("date_of_birth", *payload.DateOfBirth)
		if err != nil {
			return err
		}
		student.DateOfBirth = parsed
	}
	if payload.Email != nil {
		student.Email = normalizeEmail(*payload.Email)
	}
	if payload.PhoneNumber != nil {
		student.PhoneNumber = trimOptional(payload.PhoneNumber)
	}
	if payload.EnrollmentDate != nil {
		parsed, err := parseDate("enrollment_date", *payload.EnrollmentDate)
		if err != nil {
			return err
		}
		student.EnrollmentDate = parsed
	}
	if payload.Status != nil {
		student.Status = *payload.Status
	}
	if payload.Photo != nil {
		student.Photo = trimOptional(payload.Photo)
	}
	if payload.Password != nil {
		hash, err := hashPassword(*payload.Password)
		if err != nil {
			return err
		}
		student.PasswordHash = hash
	}
	return nil
}

func studentFields(student models.Student) map[string]interface{} {
	fields := map[string]interface{}{
		"first_name":      student.FirstName,
		"last_name":       student.LastName,
		"date_of_birth":   student.DateOfBirth,
		"email":           student.Email,
		"phone_number":    student.PhoneNumber,
		"enrollment_date": student.EnrollmentDate,
		"status":          student.Status,
		"photo":           student.Photo,
	}
	if student.PasswordHash != "" {
		fields["password_hash"] = student.PasswordHash
	}
	return fields
}
