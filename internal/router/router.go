package router

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/noah-isme/formation-api/internal/config"
	"github.com/noah-isme/formation-api/internal/handler"
	"github.com/noah-isme/formation-api/internal/middleware"
	"github.com/noah-isme/formation-api/internal/observability"
	"github.com/noah-isme/formation-api/internal/service"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	AuthHandler            *handler.AuthHandler
	SeedHandler            *handler.SeedHandler
	StudentHandler         *handler.StudentHandler
	InstructorHandler      *handler.InstructorHandler
	FormationHandler       *handler.FormationHandler
	ScheduleHandler        *handler.ScheduleHandler
	DepartmentHandler      *handler.DepartmentHandler
	CourseHandler          *handler.CourseHandler
	GradeHandler           *handler.GradeHandler
	EnrollmentHandler      *handler.EnrollmentHandler
	AttendanceHandler      *handler.AttendanceHandler
	CalendarHandler        *handler.CalendarHandler
	EventHandler           *handler.EventHandler
	AdminHandler           *handler.AdminHandler
	TrainingRequestHandler *handler.TrainingRequestHandler
	UploadHandler          *handler.UploadHandler
	DashboardHandler       *handler.DashboardHandler
	ActivityHandler        *handler.ActivityHandler
	EventStreamHandler     *handler.EventStreamHandler
	HealthProbes           map[string]handler.HealthProbe
	AuthMiddleware         fiber.Handler
}

type registrar interface {
	Register(router fiber.Router)
}

// Register wires the HTTP routes into the fiber application. Public routes are
// registered before the protected groups so they match first.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	app.Get("/metrics", observability.MetricsHandler())

	api := app.Group("/api", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg, deps.HealthProbes))

	if deps.AuthHandler != nil {
		deps.AuthHandler.Register(api, middleware.RateLimit("login", cfg.LoginRateLimit, time.Minute))
	}
	if deps.SeedHandler != nil {
		deps.SeedHandler.Register(api.Group("/auth"))
	}
	if deps.TrainingRequestHandler != nil {
		// the training application form is open to anonymous visitors
		api.Post("/training-requests", deps.TrainingRequestHandler.Create)
	}

	authMiddleware := deps.AuthMiddleware
	if authMiddleware == nil {
		authMiddleware = middleware.AuthGate(cfg.JWTSecret)
	}

	if deps.StudentHandler != nil {
		students := api.Group("/students", authMiddleware)
		if deps.UploadHandler != nil {
			deps.UploadHandler.RegisterStudentRoutes(students)
		}
		deps.StudentHandler.Register(students)
	}
	if deps.FormationHandler != nil {
		formations := api.Group("/formations", authMiddleware)
		if deps.UploadHandler != nil {
			deps.UploadHandler.RegisterFormationRoutes(formations)
		}
		deps.FormationHandler.Register(formations)
	}
	if deps.EventHandler != nil {
		events := api.Group("/events", authMiddleware)
		// the websocket route must precede "/events/:id"
		if deps.EventStreamHandler != nil {
			deps.EventStreamHandler.Register(events)
		}
		deps.EventHandler.Register(events)
	}

	resources := []struct {
		path    string
		handler registrar
		enabled bool
	}{
		{"/instructors", deps.InstructorHandler, deps.InstructorHandler != nil},
		{"/schedules", deps.ScheduleHandler, deps.ScheduleHandler != nil},
		{"/departments", deps.DepartmentHandler, deps.DepartmentHandler != nil},
		{"/courses", deps.CourseHandler, deps.CourseHandler != nil},
		{"/grades", deps.GradeHandler, deps.GradeHandler != nil},
		{"/enrollments", deps.EnrollmentHandler, deps.EnrollmentHandler != nil},
		{"/attendance", deps.AttendanceHandler, deps.AttendanceHandler != nil},
		{"/calendars", deps.CalendarHandler, deps.CalendarHandler != nil},
		{"/admins", deps.AdminHandler, deps.AdminHandler != nil},
		{"/training-requests", deps.TrainingRequestHandler, deps.TrainingRequestHandler != nil},
		{"/dashboard", deps.DashboardHandler, deps.DashboardHandler != nil},
	}
	for _, resource := range resources {
		if !resource.enabled {
			continue
		}
		resource.handler.Register(api.Group(resource.path, authMiddleware))
	}

	if deps.ActivityHandler != nil {
		activities := api.Group("/activities", authMiddleware, middleware.RequireRole(service.RoleAdmin))
		deps.ActivityHandler.Register(activities)
	}
}
