package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/noah-isme/formation-api/internal/dto"
	"github.com/noah-isme/formation-api/internal/observability"
	"github.com/noah-isme/formation-api/internal/repository"
)

// Account kinds able to log in.
const (
	RoleStudent         = "student"
	RoleTrainingRequest = "training_request"
	RoleAdmin           = "admin"
)

var (
	// ErrInvalidCredentials indicates the email or password did not match.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrUnknownRole indicates a login was attempted for an unsupported account kind.
	ErrUnknownRole = errors.New("unknown account role")
)

// TokenClaims are embedded in every issued access token.
type TokenClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// AuthService authenticates accounts and issues access tokens.
type AuthService interface {
	Login(ctx context.Context, role string, payload dto.LoginRequest) (dto.LoginResponse, error)
	IssueToken(id uint, email, role string) (string, time.Time, error)
}

type credentials struct {
	id           uint
	email        string
	passwordHash string
}

type credentialLookup func(ctx context.Context, email string) (credentials, error)

type authService struct {
	lookups   map[string]credentialLookup
	secret    []byte
	ttl       time.Duration
	validator *validator.Validate
	logger    zerolog.Logger
	tracer    trace.Tracer
	now       func() time.Time
}

// NewAuthService constructs the authentication service.
func NewAuthService(students repository.StudentRepository, requests repository.TrainingRequestRepository, admins repository.AdminRepository, secret string, ttl time.Duration, validate *validator.Validate, logger zerolog.Logger) AuthService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return &authService{
		lookups: map[string]credentialLookup{
			RoleStudent: func(ctx context.Context, email string) (credentials, error) {
				student, err := students.FindByEmail(ctx, email)
				return credentials{id: student.ID, email: student.Email, passwordHash: student.PasswordHash}, err
			},
			RoleTrainingRequest: func(ctx context.Context, email string) (credentials, error) {
				request, err := requests.FindByEmail(ctx, email)
				return credentials{id: request.ID, email: request.Email, passwordHash: request.PasswordHash}, err
			},
			RoleAdmin: func(ctx context.Context, email string) (credentials, error) {
				admin, err := admins.FindByEmail(ctx, email)
				return credentials{id: admin.ID, email: admin.Email, passwordHash: admin.PasswordHash}, err
			},
		},
		secret:    []byte(secret),
		ttl:       ttl,
		validator: validate,
		logger:    logger.With().Str("component", "auth_service").Logger(),
		tracer:    otel.Tracer("github.com/noah-isme/formation-api/internal/service/auth"),
		now:       time.Now,
	}
}

func (s *authService) Login(ctx context.Context, role string, payload dto.LoginRequest) (dto.LoginResponse, error) {
	ctx, span := s.tracer.Start(ctx, "auth.login", trace.WithAttributes(attribute.String("auth.role", role)))
	defer span.End()

	if err := s.validator.Struct(payload); err != nil {
		return dto.LoginResponse{}, err
	}

	lookup, ok := s.lookups[role]
	if !ok {
		span.SetStatus(codes.Error, "unknown role")
		return dto.LoginResponse{}, ErrUnknownRole
	}

	account, err := lookup(ctx, normalizeEmail(payload.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			observability.LoginAttempts().WithLabelValues(role, "unknown_email").Inc()
			s.logger.Info().Str("role", role).Str("email", maskEmailAddress(payload.Email)).Msg("login for unknown account")
			span.SetStatus(codes.Error, "invalid credentials")
			return dto.LoginResponse{}, ErrInvalidCredentials
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "lookup failed")
		return dto.LoginResponse{}, err
	}

	if !checkPassword(account.passwordHash, payload.Password) {
		observability.LoginAttempts().WithLabelValues(role, "bad_password").Inc()
		s.logger.Info().Str("role", role).Uint("account_id", account.id).Msg("rejected login attempt")
		span.SetStatus(codes.Error, "invalid credentials")
		return dto.LoginResponse{}, ErrInvalidCredentials
	}

	token, expiresAt, err := s.IssueToken(account.id, account.email, role)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "token signing failed")
		return dto.LoginResponse{}, err
	}

	observability.LoginAttempts().WithLabelValues(role, "success").Inc()
	span.SetStatus(codes.Ok, "authenticated")

	return dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Role:      role,
		ID:        account.id,
		Email:     account.email,
	}, nil
}

func (s *authService) IssueToken(id uint, email, role string) (string, time.Time, error) {
	if len(s.secret) == 0 {
		return "", time.Time{}, fmt.Errorf("jwt secret is not configured")
	}

	issuedAt := s.now().UTC()
	expiresAt := issuedAt.Add(s.ttl)
	claims := TokenClaims{
		Email: email,
		Role:  strings.ToLower(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(id), 10),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}
