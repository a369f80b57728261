package handler

import (
	"github.com/rs/zerolog"

	"github.com/noah-isme/formation-api/internal/dto"
	"github.com/noah-isme/formation-api/internal/models"
	"github.com/noah-isme/formation-api/internal/service"
)

// Handlers of the resources that only need the CRUD routes.
type (
	StudentHandler         = ResourceHandler[models.Student, dto.StudentCreateRequest, dto.StudentUpdateRequest]
	InstructorHandler      = ResourceHandler[models.Instructor, dto.InstructorCreateRequest, dto.InstructorUpdateRequest]
	DepartmentHandler      = ResourceHandler[models.Department, dto.DepartmentCreateRequest, dto.DepartmentUpdateRequest]
	ScheduleHandler        = ResourceHandler[models.Schedule, dto.ScheduleCreateRequest, dto.ScheduleUpdateRequest]
	CourseHandler          = ResourceHandler[models.Course, dto.CourseCreateRequest, dto.CourseUpdateRequest]
	EnrollmentHandler      = ResourceHandler[models.Enrollment, dto.EnrollmentCreateRequest, dto.EnrollmentUpdateRequest]
	AttendanceHandler      = ResourceHandler[models.Attendance, dto.AttendanceCreateRequest, dto.AttendanceUpdateRequest]
	CalendarHandler        = ResourceHandler[models.Calendar, dto.CalendarCreateRequest, dto.CalendarUpdateRequest]
	EventHandler           = ResourceHandler[models.Event, dto.EventCreateRequest, dto.EventUpdateRequest]
	AdminHandler           = ResourceHandler[models.Admin, dto.AdminCreateRequest, dto.AdminUpdateRequest]
	TrainingRequestHandler = ResourceHandler[models.TrainingRequest, dto.TrainingRequestCreateRequest, dto.TrainingRequestUpdateRequest]
)

func NewStudentHandler(svc service.StudentService, logger zerolog.Logger) *StudentHandler {
	return NewResourceHandler[models.Student, dto.StudentCreateRequest, dto.StudentUpdateRequest]("student", svc, logger)
}

func NewInstructorHandler(svc service.InstructorService, logger zerolog.Logger) *InstructorHandler {
	return NewResourceHandler[models.Instructor, dto.InstructorCreateRequest, dto.InstructorUpdateRequest]("instructor", svc, logger, "department_id")
}

func NewDepartmentHandler(svc service.DepartmentService, logger zerolog.Logger) *DepartmentHandler {
	return NewResourceHandler[models.Department, dto.DepartmentCreateRequest, dto.DepartmentUpdateRequest]("department", svc, logger)
}

func NewScheduleHandler(svc service.ScheduleService, logger zerolog.Logger) *ScheduleHandler {
	return NewResourceHandler[models.Schedule, dto.ScheduleCreateRequest, dto.ScheduleUpdateRequest]("schedule", svc, logger, "formation_id")
}

func NewCourseHandler(svc service.CourseService, logger zerolog.Logger) *CourseHandler {
	return NewResourceHandler[models.Course, dto.CourseCreateRequest, dto.CourseUpdateRequest]("course", svc, logger, "formation_id", "department_id")
}

func NewEnrollmentHandler(svc service.EnrollmentService, logger zerolog.Logger) *EnrollmentHandler {
	return NewResourceHandler[models.Enrollment, dto.EnrollmentCreateRequest, dto.EnrollmentUpdateRequest]("enrollment", svc, logger, "student_id", "formation_id")
}

func NewAttendanceHandler(svc service.AttendanceService, logger zerolog.Logger) *AttendanceHandler {
	return NewResourceHandler[models.Attendance, dto.AttendanceCreateRequest, dto.AttendanceUpdateRequest]("attendance", svc, logger, "student_id")
}

func NewCalendarHandler(svc service.CalendarService, logger zerolog.Logger) *CalendarHandler {
	return NewResourceHandler[models.Calendar, dto.CalendarCreateRequest, dto.CalendarUpdateRequest]("calendar", svc, logger, "formation_id")
}

func NewEventHandler(svc service.EventService, logger zerolog.Logger) *EventHandler {
	return NewResourceHandler[models.Event, dto.EventCreateRequest, dto.EventUpdateRequest]("event", svc, logger, "calendar_id")
}

func NewAdminHandler(svc service.AdminService, logger zerolog.Logger) *AdminHandler {
	return NewResourceHandler[models.Admin, dto.AdminCreateRequest, dto.AdminUpdateRequest]("admin", svc, logger)
}

func NewTrainingRequestHandler(svc service.TrainingRequestService, logger zerolog.Logger) *TrainingRequestHandler {
	return NewResourceHandler[models.TrainingRequest, dto.TrainingRequestCreateRequest, dto.TrainingRequestUpdateRequest]("training_request", svc, logger, "formation_id")
}
