package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/noah-isme/formation-api/internal/dto"
	"github.com/noah-isme/formation-api/internal/models"
	"github.com/noah-isme/formation-api/internal/repository"
)

var (
	// ErrSeedDisabled indicates the seeding tools are disabled by configuration.
	ErrSeedDisabled = errors.New("seeding is disabled")
	// ErrSeedUnauthorized indicates the provided token is invalid.
	ErrSeedUnauthorized = errors.New("invalid seed token")
)

const seedDepartmentName = "Test Department"

// Fixed credentials of the provisioned test accounts.
var seedAccounts = []dto.SeedAccount{
	{Role: RoleAdmin, Email: "admin@test.com", Password: "Admin123!"},
	{Role: RoleStudent, Email: "student@test.com", Password: "Student123!"},
	{Role: RoleTrainingRequest, Email: "trainee@test.com", Password: "Trainee123!"},
}

// SeedRepositories groups the repositories touched by test-account seeding.
type SeedRepositories struct {
	Departments      repository.CRUDRepository[models.Department]
	Instructors      repository.CRUDRepository[models.Instructor]
	Admins           repository.AdminRepository
	Students         repository.StudentRepository
	TrainingRequests repository.TrainingRequestRepository
}

// SeedService provisions the test accounts used by local and staging environments.
type SeedService interface {
	SeedTestAccounts(ctx context.Context, token string) (dto.SeedResponse, error)
}

type seedService struct {
	repos   SeedRepositories
	enabled bool
	token   string
	logger  zerolog.Logger
	now     func() time.Time
}

// NewSeedService constructs a seeding service.
func NewSeedService(repos SeedRepositories, enabled bool, token string, logger zerolog.Logger) SeedService {
	return &seedService{
		repos:   repos,
		enabled: enabled,
		token:   token,
		logger:  logger.With().Str("component", "seed_service").Logger(),
		now:     time.Now,
	}
}

func (s *seedService) SeedTestAccounts(ctx context.Context, token string) (dto.SeedResponse, error) {
	if !s.enabled {
		return dto.SeedResponse{}, ErrSeedDisabled
	}
	if !s.validateToken(token) {
		return dto.SeedResponse{}, ErrSeedUnauthorized
	}

	department, err := s.ensureDepartment(ctx)
	if err != nil {
		return dto.SeedResponse{}, err
	}
	if err := s.ensureInstructor(ctx, department.ID); err != nil {
		return dto.SeedResponse{}, err
	}

	for _, account := range seedAccounts {
		hash, err := hashPassword(account.Password)
		if err != nil {
			return dto.SeedResponse{}, err
		}

		switch account.Role {
		case RoleAdmin:
			err = s.upsertAdmin(ctx, account.Email, hash, department.ID)
		case RoleStudent:
			err = s.upsertStudent(ctx, account.Email, hash)
		case RoleTrainingRequest:
			err = s.upsertTrainingRequest(ctx, account.Email, hash)
		}
		if err != nil {
			s.logger.Error().Err(err).Str("role", account.Role).Str("email", maskEmailAddress(account.Email)).Msg("failed to seed test account")
			return dto.SeedResponse{}, err
		}
	}

	accounts := make([]dto.SeedAccount, len(seedAccounts))
	copy(accounts, seedAccounts)
	s.logger.Info().Int("accounts", len(accounts)).Msg("test accounts seeded")

	return dto.SeedResponse{Accounts: accounts}, nil
}

func (s *seedService) ensureDepartment(ctx context.Context) (models.Department, error) {
	existing, err := s.repos.Departments.List(ctx, repository.ListFilter{
		Conditions: map[string]interface{}{"name": seedDepartmentName},
	})
	if err != nil {
		return models.Department{}, err
	}
	if len(existing) > 0 {
		return existing[0], nil
	}

	department := models.Department{Name: seedDepartmentName}
	if err := s.repos.Departments.Create(ctx, &department); err != nil {
		return models.Department{}, err
	}
	return department, nil
}

func (s *seedService) ensureInstructor(ctx context.Context, departmentID uint) error {
	const email = "instructor@test.com"
	existing, err := s.repos.Instructors.List(ctx, repository.ListFilter{
		Conditions: map[string]interface{}{"email": email},
	})
	if err != nil || len(existing) > 0 {
		return err
	}

	instructor := models.Instructor{
		FirstName:    "Test",
		LastName:     "Instructor",
		Email:        email,
		DepartmentID: &departmentID,
	}
	return s.repos.Instructors.Create(ctx, &instructor)
}

func (s *seedService) upsertAdmin(ctx context.Context, email, hash string, departmentID uint) error {
	admin, err := s.repos.Admins.FindByEmail(ctx, email)
	switch {
	case err == nil:
		_, err = s.repos.Admins.Update(ctx, admin.ID, map[string]interface{}{"password_hash": hash})
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return s.repos.Admins.Create(ctx, &models.Admin{
			FirstName:    "Test",
			LastName:     "Admin",
			Email:        email,
			PhoneNumber:  "0000000000",
			DepartmentID: departmentID,
			PasswordHash: hash,
		})
	default:
		return err
	}
}

func (s *seedService) upsertStudent(ctx context.Context, email, hash string) error {
	student, err := s.repos.Students.FindByEmail(ctx, email)
	switch {
	case err == nil:
		_, err = s.repos.Students.Update(ctx, student.ID, map[string]interface{}{"password_hash": hash})
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		today := s.now().UTC().Truncate(24 * time.Hour)
		return s.repos.Students.Create(ctx, &models.Student{
			FirstName:      "Test",
			LastName:       "Student",
			DateOfBirth:    time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC),
			Email:          email,
			EnrollmentDate: today,
			Status:         models.StudentStatusActive,
			PasswordHash:   hash,
		})
	default:
		return err
	}
}

func (s *seedService) upsertTrainingRequest(ctx context.Context, email, hash string) error {
	request, err := s.repos.TrainingRequests.FindByEmail(ctx, email)
	switch {
	case err == nil:
		_, err = s.repos.TrainingRequests.Update(ctx, request.ID, map[string]interface{}{"password_hash": hash})
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return s.repos.TrainingRequests.Create(ctx, &models.TrainingRequest{
			FirstName:    "Test",
			LastName:     "Trainee",
			Email:        email,
			Status:       models.TrainingRequestPending,
			PasswordHash: hash,
		})
	default:
		return err
	}
}

// validateToken accepts any caller when no token is configured.
func (s *seedService) validateToken(token string) bool {
	expected := strings.TrimSpace(s.token)
	if expected == "" {
		return true
	}
	return subtle.ConstantTimeCompare([]byte(expected), []byte(strings.TrimSpace(token))) == 1
}
