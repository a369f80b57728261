package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/noah-isme/formation-api/internal/dto"
	"github.com/noah-isme/formation-api/internal/models"
	"github.com/noah-isme/formation-api/internal/observability"
	"github.com/noah-isme/formation-api/internal/repository"
)

const dashboardCacheKey = "dashboard:summary"

// DashboardRepositories groups the repositories aggregated by the dashboard.
type DashboardRepositories struct {
	Students         repository.StudentRepository
	Instructors      repository.CRUDRepository[models.Instructor]
	Formations       repository.CRUDRepository[models.Formation]
	Departments      repository.CRUDRepository[models.Department]
	Courses          repository.CRUDRepository[models.Course]
	Enrollments      repository.EnrollmentRepository
	TrainingRequests repository.TrainingRequestRepository
	Grades           repository.GradeRepository
}

// DashboardService produces institute-wide counters.
type DashboardService interface {
	GetDashboard(ctx context.Context) (dto.DashboardResponse, error)
	Invalidate(ctx context.Context)
}

type dashboardService struct {
	repos    DashboardRepositories
	cache    *redis.Client
	cacheTTL time.Duration
	logger   zerolog.Logger
	now      func() time.Time
}

// NewDashboardService builds the dashboard aggregator. A nil cache disables caching.
func NewDashboardService(repos DashboardRepositories, cache *redis.Client, ttl time.Duration, logger zerolog.Logger) DashboardService {
	return &dashboardService{
		repos:    repos,
		cache:    cache,
		cacheTTL: ttl,
		logger:   logger.With().Str("component", "dashboard_service").Logger(),
		now:      time.Now,
	}
}

func (s *dashboardService) GetDashboard(ctx context.Context) (dto.DashboardResponse, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, dashboardCacheKey).Result(); err == nil {
			var response dto.DashboardResponse
			if unmarshalErr := json.Unmarshal([]byte(cached), &response); unmarshalErr == nil {
				observability.DashboardCache().WithLabelValues("hit").Inc()
				response.CacheHit = true
				return response, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			s.logger.Warn().Err(err).Msg("failed to read dashboard cache")
		}
	}
	observability.DashboardCache().WithLabelValues("miss").Inc()

	response, err := s.aggregate(ctx)
	if err != nil {
		return dto.DashboardResponse{}, err
	}

	if s.cache != nil {
		payload, err := json.Marshal(response)
		if err == nil {
			if err := s.cache.Set(ctx, dashboardCacheKey, payload, s.cacheTTL).Err(); err != nil {
				s.logger.Warn().Err(err).Msg("failed to store dashboard cache")
			}
		}
	}

	return response, nil
}

func (s *dashboardService) Invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, dashboardCacheKey).Err(); err != nil {
		s.logger.Warn().Err(err).Msg("failed to invalidate dashboard cache")
	}
}

func (s *dashboardService) aggregate(ctx context.Context) (dto.DashboardResponse, error) {
	byStatus, err := s.repos.Students.CountByStatus(ctx)
	if err != nil {
		return dto.DashboardResponse{}, err
	}

	response := dto.DashboardResponse{
		StudentsByStatus: byStatus,
		GeneratedAt:      s.now().UTC(),
	}
	for _, total := range byStatus {
		response.Students += total
	}

	counts := []struct {
		target *int64
		count  func() (int64, error)
	}{
		{&response.Instructors, func() (int64, error) { return s.repos.Instructors.Count(ctx, nil) }},
		{&response.Formations, func() (int64, error) { return s.repos.Formations.Count(ctx, nil) }},
		{&response.Departments, func() (int64, error) { return s.repos.Departments.Count(ctx, nil) }},
		{&response.Courses, func() (int64, error) { return s.repos.Courses.Count(ctx, nil) }},
		{&response.ActiveEnrollment, func() (int64, error) {
			return s.repos.Enrollments.Count(ctx, map[string]interface{}{"status": models.EnrollmentStatusActive})
		}},
		{&response.PendingRequests, func() (int64, error) {
			return s.repos.TrainingRequests.Count(ctx, map[string]interface{}{"status": models.TrainingRequestPending})
		}},
	}
	for _, item := range counts {
		total, err := item.count()
		if err != nil {
			return dto.DashboardResponse{}, err
		}
		*item.target = total
	}

	values, err := s.repos.Grades.Values(ctx, repository.GradeFilter{})
	if err != nil {
		return dto.DashboardResponse{}, err
	}
	response.Grades = dto.ComputeGradeStats(values)

	return response, nil
}
