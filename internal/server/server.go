package server

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/noah-isme/formation-api/internal/config"
	"github.com/noah-isme/formation-api/internal/dto"
	"github.com/noah-isme/formation-api/internal/handler"
	"github.com/noah-isme/formation-api/internal/middleware"
	"github.com/noah-isme/formation-api/internal/models"
	"github.com/noah-isme/formation-api/internal/observability"
	"github.com/noah-isme/formation-api/internal/repository"
	"github.com/noah-isme/formation-api/internal/router"
	"github.com/noah-isme/formation-api/internal/service"
)

// Infrastructure carries the connections the API runs on. Redis, NATS and
// Storage are optional.
type Infrastructure struct {
	DB      *gorm.DB
	Redis   *redis.Client
	NATS    *nats.Conn
	Storage service.FileStorage
}

// Server is the assembled HTTP application.
type Server struct {
	App  *fiber.App
	Feed service.ChangeFeed
	Auth service.AuthService
}

// New wires repositories, services and handlers into a fiber application.
func New(cfg config.Config, infra Infrastructure, logger zerolog.Logger) *Server {
	observability.RegisterMetrics()

	db := infra.DB
	validate := validator.New(validator.WithRequiredStructEnabled())

	studentRepo := repository.NewStudentRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	trainingRepo := repository.NewTrainingRequestRepository(db)
	gradeRepo := repository.NewGradeRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)
	calendarRepo := repository.NewCalendarRepository(db)
	activityRepo := repository.NewActivityLogRepository(db)
	instructorRepo := repository.NewCRUDRepository[models.Instructor](db)
	departmentRepo := repository.NewCRUDRepository[models.Department](db)
	formationRepo := repository.NewCRUDRepository[models.Formation](db)
	scheduleRepo := repository.NewCRUDRepository[models.Schedule](db)
	courseRepo := repository.NewCRUDRepository[models.Course](db)
	attendanceRepo := repository.NewCRUDRepository[models.Attendance](db)
	eventRepo := repository.NewCRUDRepository[models.Event](db)

	feed := service.NewChangeFeed(infra.Redis, infra.NATS, cfg.EventsChannel, logger)
	activityService := service.NewActivityService(activityRepo, logger)
	deps := service.ResourceDeps{
		Validator: validate,
		Logger:    logger,
		Recorder:  activityService,
		Notifier:  feed,
	}

	dashboardService := service.NewDashboardService(service.DashboardRepositories{
		Students:         studentRepo,
		Instructors:      instructorRepo,
		Formations:       formationRepo,
		Departments:      departmentRepo,
		Courses:          courseRepo,
		Enrollments:      enrollmentRepo,
		TrainingRequests: trainingRepo,
		Grades:           gradeRepo,
	}, infra.Redis, cfg.DashboardCacheTTL, logger)
	feed.OnChange(func(ctx context.Context, _ dto.ChangeEvent) {
		dashboardService.Invalidate(ctx)
	})

	authService := service.NewAuthService(studentRepo, trainingRepo, adminRepo, cfg.JWTSecret, cfg.JWTTTL, validate, logger)
	seedService := service.NewSeedService(service.SeedRepositories{
		Departments:      departmentRepo,
		Instructors:      instructorRepo,
		Admins:           adminRepo,
		Students:         studentRepo,
		TrainingRequests: trainingRepo,
	}, cfg.SeedEnabled, cfg.SeedToken, logger)
	uploadService := service.NewUploadService(infra.Storage, studentRepo, formationRepo, cfg.UploadMaxMB, deps)
	calendarService := service.NewCalendarService(calendarRepo, deps)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
		BodyLimit:    (cfg.UploadMaxMB + 1) * 1024 * 1024,
	})

	middleware.Register(app, middleware.Config{Logger: &logger, AllowOrigins: cfg.CORSAllowOrigins})
	router.Register(app, cfg, router.Dependencies{
		AuthHandler:            handler.NewAuthHandler(authService, logger),
		SeedHandler:            handler.NewSeedHandler(seedService, logger),
		StudentHandler:         handler.NewStudentHandler(service.NewStudentService(studentRepo, deps), logger),
		InstructorHandler:      handler.NewInstructorHandler(service.NewInstructorService(instructorRepo, deps), logger),
		FormationHandler:       handler.NewFormationHandler(service.NewFormationService(formationRepo, deps), calendarService, logger),
		ScheduleHandler:        handler.NewScheduleHandler(service.NewScheduleService(scheduleRepo, deps), logger),
		DepartmentHandler:      handler.NewDepartmentHandler(service.NewDepartmentService(departmentRepo, deps), logger),
		CourseHandler:          handler.NewCourseHandler(service.NewCourseService(courseRepo, deps), logger),
		GradeHandler:           handler.NewGradeHandler(service.NewGradeService(gradeRepo, deps), logger),
		EnrollmentHandler:      handler.NewEnrollmentHandler(service.NewEnrollmentService(enrollmentRepo, deps), logger),
		AttendanceHandler:      handler.NewAttendanceHandler(service.NewAttendanceService(attendanceRepo, deps), logger),
		CalendarHandler:        handler.NewCalendarHandler(calendarService, logger),
		EventHandler:           handler.NewEventHandler(service.NewEventService(eventRepo, deps), logger),
		AdminHandler:           handler.NewAdminHandler(service.NewAdminService(adminRepo, deps), logger),
		TrainingRequestHandler: handler.NewTrainingRequestHandler(service.NewTrainingRequestService(trainingRepo, deps), logger),
		UploadHandler:          handler.NewUploadHandler(uploadService, logger),
		DashboardHandler:       handler.NewDashboardHandler(dashboardService, logger),
		ActivityHandler:        handler.NewActivityHandler(activityService, logger),
		EventStreamHandler:     handler.NewEventStreamHandler(feed, logger),
		HealthProbes:           healthProbes(infra),
	})

	return &Server{App: app, Feed: feed, Auth: authService}
}

func healthProbes(infra Infrastructure) map[string]handler.HealthProbe {
	probes := map[string]handler.HealthProbe{
		"database": func(ctx context.Context) error {
			sqlDB, err := infra.DB.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}
	if infra.Redis != nil {
		probes["redis"] = func(ctx context.Context) error {
			return infra.Redis.Ping(ctx).Err()
		}
	}
	if infra.NATS != nil {
		probes["nats"] = func(context.Context) error {
			if !infra.NATS.IsConnected() {
				return nats.ErrConnectionClosed
			}
			return nil
		}
	}
	return probes
}
