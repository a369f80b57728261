package service

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/noah-isme/formation-api/internal/dto"
	"github.com/noah-isme/formation-api/internal/models"
	"github.com/noah-isme/formation-api/internal/repository"
)

// CourseService manages courses.
type CourseService = ResourceService[models.Course, dto.CourseCreateRequest, dto.CourseUpdateRequest]

// AttendanceService manages attendance records.
type AttendanceService = ResourceService[models.Attendance, dto.AttendanceCreateRequest, dto.AttendanceUpdateRequest]

// EnrollmentService manages enrollments.
type EnrollmentService = ResourceService[models.Enrollment, dto.EnrollmentCreateRequest, dto.EnrollmentUpdateRequest]

// GradeService manages grades and their aggregate statistics.
type GradeService interface {
	ResourceService[models.Grade, dto.GradeCreateRequest, dto.GradeUpdateRequest]
	Stats(ctx context.Context, filter repository.GradeFilter) (dto.GradeStats, error)
}

// NewCourseService constructs the course service.
func NewCourseService(repo repository.CRUDRepository[models.Course], deps ResourceDeps) CourseService {
	return newResourceService(repo, resourceHooks[models.Course, dto.CourseCreateRequest, dto.CourseUpdateRequest]{
		name: "course",
		idOf: func(c models.Course) uint { return c.ID },
		build: func(payload dto.CourseCreateRequest) (models.Course, error) {
			return models.Course{
				Name:         sanitizeText(payload.Name),
				Description:  sanitizeOptional(payload.Description),
				DepartmentID: payload.DepartmentID,
				FormationID:  payload.FormationID,
			}, nil
		},
		apply: func(course *models.Course, payload dto.CourseUpdateRequest) error {
			if payload.Name != nil {
				course.Name = sanitizeText(*payload.Name)
			}
			if payload.Description != nil {
				course.Description = sanitizeOptional(payload.Description)
			}
			if payload.DepartmentID != nil {
				course.DepartmentID = *payload.DepartmentID
			}
			if payload.FormationID != nil {
				course.FormationID = payload.FormationID
			}
			return nil
		},
		fields: func(course models.Course) map[string]interface{} {
			return map[string]interface{}{
				"name":          course.Name,
				"description":   course.Description,
				"department_id": course.DepartmentID,
				"formation_id":  course.FormationID,
			}
		},
		check: func(_ context.Context, _ uint, course models.Course) error {
			if course.Name == "" {
				return invalidInput("name is empty after sanitization")
			}
			return nil
		},
	}, deps)
}

type gradeService struct {
	*resourceService[models.Grade, dto.GradeCreateRequest, dto.GradeUpdateRequest]
	grades repository.GradeRepository
}

// NewGradeService constructs the grade service.
func NewGradeService(repo repository.GradeRepository, deps ResourceDeps) GradeService {
	base := newResourceService(repository.CRUDRepository[models.Grade](repo), resourceHooks[models.Grade, dto.GradeCreateRequest, dto.GradeUpdateRequest]{
		name: "grade",
		idOf: func(g models.Grade) uint { return g.ID },
		build: func(payload dto.GradeCreateRequest) (models.Grade, error) {
			date, err := parseDate("date", payload.Date)
			if err != nil {
				return models.Grade{}, err
			}
			return models.Grade{
				Value:     *payload.Value,
				Date:      date,
				StudentID: payload.StudentID,
				CourseID:  payload.CourseID,
			}, nil
		},
		apply: func(grade *models.Grade, payload dto.GradeUpdateRequest) error {
			if payload.Value != nil {
				grade.Value = *payload.Value
			}
			if payload.Date != nil {
				parsed, err := parseDate("date", *payload.Date)
				if err != nil {
					return err
				}
				grade.Date = parsed
			}
			if payload.StudentID != nil {
				grade.StudentID = *payload.StudentID
			}
			if payload.CourseID != nil {
				grade.CourseID = *payload.CourseID
			}
			return nil
		},
		fields: func(grade models.Grade) map[string]interface{} {
			return map[string]interface{}{
				"value":      grade.Value,
				"date":       grade.Date,
				"student_id": grade.StudentID,
				"course_id":  grade.CourseID,
			}
		},
	}, deps)

	return &gradeService{resourceService: base, grades: repo}
}

func (s *gradeService) Stats(ctx context.Context, filter repository.GradeFilter) (dto.GradeStats, error) {
	values, err := s.grades.Values(ctx, filter)
	if err != nil {
		return dto.GradeStats{}, err
	}
	return dto.ComputeGradeStats(values), nil
}

// NewEnrollmentService constructs the enrollment service. Creation runs the
// reference and single-active-enrollment checks inside one transaction.
func NewEnrollmentService(repo repository.EnrollmentRepository, deps ResourceDeps) EnrollmentService {
	tracer := otel.Tracer("github.com/noah-isme/formation-api/internal/service/enrollment")
	now := time.Now

	return newResourceService(repository.CRUDRepository[models.Enrollment](repo), resourceHooks[models.Enrollment, dto.EnrollmentCreateRequest, dto.EnrollmentUpdateRequest]{
		name: "enrollment",
		idOf: func(e models.Enrollment) uint { return e.ID },
		build: func(payload dto.EnrollmentCreateRequest) (models.Enrollment, error) {
			enrolledOn := now().UTC().Truncate(24 * time.Hour)
			if payload.EnrollmentDate != "" {
				parsed, err := parseDate("enrollment_date", payload.EnrollmentDate)
				if err != nil {
					return models.Enrollment{}, err
				}
				enrolledOn = parsed
			}
			status := payload.Status
			if status == "" {
				status = models.EnrollmentStatusActive
			}
			return models.Enrollment{
				StudentID:      payload.StudentID,
				FormationID:    payload.FormationID,
				EnrollmentDate: enrolledOn,
				Status:         status,
			}, nil
		},
		apply: func(enrollment *models.Enrollment, payload dto.EnrollmentUpdateRequest) error {
			if payload.StudentID != nil {
				enrollment.StudentID = *payload.StudentID
			}
			if payload.FormationID != nil {
				enrollment.FormationID = *payload.FormationID
			}
			if payload.EnrollmentDate != nil {
				parsed, err := parseDate("enrollment_date", *payload.EnrollmentDate)
				if err != nil {
					return err
				}
				enrollment.EnrollmentDate = parsed
			}
			if payload.Status != nil {
				enrollment.Status = *payload.Status
			}
			return nil
		},
		fields: func(enrollment models.Enrollment) map[string]interface{} {
			return map[string]interface{}{
				"student_id":      enrollment.StudentID,
				"formation_id":    enrollment.FormationID,
				"enrollment_date": enrollment.EnrollmentDate,
				"status":          enrollment.Status,
			}
		},
		check: func(ctx context.Context, id uint, enrollment models.Enrollment) error {
			// creation checks run inside the insert transaction
			if id == 0 || enrollment.Status != models.EnrollmentStatusActive {
				return nil
			}
			active, err := repo.HasActive(ctx, enrollment.StudentID, enrollment.FormationID, id)
			if err != nil {
				return err
			}
			if active {
				return ErrActiveEnrollmentExists
			}
			return nil
		},
		create: func(ctx context.Context, enrollment *models.Enrollment) error {
			ctx, span := tracer.Start(ctx, "enrollment.create", trace.WithAttributes(
				attribute.Int("enrollment.student_id", int(enrollment.StudentID)),
				attribute.Int("enrollment.formation_id", int(enrollment.FormationID)),
			))
			defer span.End()

			if err := repo.CreateChecked(ctx, enrollment); err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, "enrollment rejected")
				return err
			}
			span.SetStatus(codes.Ok, "enrolled")
			return nil
		},
	}, deps)
}

// NewAttendanceService constructs the attendance service.
func NewAttendanceService(repo repository.CRUDRepository[models.Attendance], deps ResourceDeps) AttendanceService {
	return newResourceService(repo, resourceHooks[models.Attendance, dto.AttendanceCreateRequest, dto.AttendanceUpdateRequest]{
		name: "attendance",
		idOf: func(a models.Attendance) uint { return a.ID },
		build: func(payload dto.AttendanceCreateRequest) (models.Attendance, error) {
			date, err := parseDate("date", payload.Date)
			if err != nil {
				return models.Attendance{}, err
			}
			return models.Attendance{
				Date:      date,
				Status:    payload.Status,
				StudentID: payload.StudentID,
			}, nil
		},
		apply: func(attendance *models.Attendance, payload dto.AttendanceUpdateRequest) error {
			if payload.Date != nil {
				parsed, err := parseDate("date", *payload.Date)
				if err != nil {
					return err
				}
				attendance.Date = parsed
			}
			if payload.Status != nil {
				attendance.Status = *payload.Status
			}
			if payload.StudentID != nil {
				attendance.StudentID = *payload.StudentID
			}
			return nil
		},
		fields: func(attendance models.Attendance) map[string]interface{} {
			return map[string]interface{}{
				"date":       attendance.Date,
				"status":     attendance.Status,
				"student_id": attendance.StudentID,
			}
		},
	}, deps)
}
