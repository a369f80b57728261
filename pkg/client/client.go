// Package client is a typed HTTP client for the formation API. It unwraps the
// response envelope, memoizes reads and reports mutation outcomes to a Notifier.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/noah-isme/formation-api/internal/dto"
	"github.com/noah-isme/formation-api/internal/models"
)

// DefaultTimeout is applied to the underlying HTTP client unless overridden.
const DefaultTimeout = 15 * time.Second

// Client talks to the API. It is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
	notifier   Notifier
	cache      *QueryCache
	seedToken  string

	mu    sync.RWMutex
	token string

	Students         *Resource[models.Student, dto.StudentCreateRequest, dto.StudentUpdateRequest]
	Instructors      *Resource[models.Instructor, dto.InstructorCreateRequest, dto.InstructorUpdateRequest]
	Formations       *Resource[models.Formation, dto.FormationCreateRequest, dto.FormationUpdateRequest]
	Schedules        *Resource[models.Schedule, dto.ScheduleCreateRequest, dto.ScheduleUpdateRequest]
	Departments      *Resource[models.Department, dto.DepartmentCreateRequest, dto.DepartmentUpdateRequest]
	Courses          *Resource[models.Course, dto.CourseCreateRequest, dto.CourseUpdateRequest]
	Grades           *Resource[models.Grade, dto.GradeCreateRequest, dto.GradeUpdateRequest]
	Enrollments      *Resource[models.Enrollment, dto.EnrollmentCreateRequest, dto.EnrollmentUpdateRequest]
	Attendance       *Resource[models.Attendance, dto.AttendanceCreateRequest, dto.AttendanceUpdateRequest]
	Calendars        *Resource[models.Calendar, dto.CalendarCreateRequest, dto.CalendarUpdateRequest]
	Events           *Resource[models.Event, dto.EventCreateRequest, dto.EventUpdateRequest]
	Admins           *Resource[models.Admin, dto.AdminCreateRequest, dto.AdminUpdateRequest]
	TrainingRequests *Resource[models.TrainingRequest, dto.TrainingRequestCreateRequest, dto.TrainingRequestUpdateRequest]
}

// Option customizes a Client.
type Option func(*Client)

// WithToken sets the raw token sent in the Authorization header.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithLogger sets the logger used for failed calls.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithNotifier sets the sink for mutation outcome messages.
func WithNotifier(notifier Notifier) Option {
	return func(c *Client) {
		if notifier != nil {
			c.notifier = notifier
		}
	}
}

// WithCache enables read memoization with the provided cache.
func WithCache(cache *QueryCache) Option {
	return func(c *Client) { c.cache = cache }
}

// WithSeedToken sets the X-Seed-Token header sent when seeding test accounts.
func WithSeedToken(token string) Option {
	return func(c *Client) { c.seedToken = token }
}

// New creates a client for the API rooted at baseURL, e.g. "http://localhost:8080".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
		logger:     zerolog.Nop(),
		notifier:   nopNotifier{},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With().Str("component", "api_client").Logger()

	c.Students = newResource[models.Student, dto.StudentCreateRequest, dto.StudentUpdateRequest](c, "students", "student")
	c.Instructors = newResource[models.Instructor, dto.InstructorCreateRequest, dto.InstructorUpdateRequest](c, "instructors", "instructor")
	c.Formations = newResource[models.Formation, dto.FormationCreateRequest, dto.FormationUpdateRequest](c, "formations", "formation")
	c.Schedules = newResource[models.Schedule, dto.ScheduleCreateRequest, dto.ScheduleUpdateRequest](c, "schedules", "schedule")
	c.Departments = newResource[models.Department, dto.DepartmentCreateRequest, dto.DepartmentUpdateRequest](c, "departments", "department")
	c.Courses = newResource[models.Course, dto.CourseCreateRequest, dto.CourseUpdateRequest](c, "courses", "course")
	c.Grades = newResource[models.Grade, dto.GradeCreateRequest, dto.GradeUpdateRequest](c, "grades", "grade")
	c.Enrollments = newResource[models.Enrollment, dto.EnrollmentCreateRequest, dto.EnrollmentUpdateRequest](c, "enrollments", "enrollment")
	c.Attendance = newResource[models.Attendance, dto.AttendanceCreateRequest, dto.AttendanceUpdateRequest](c, "attendance", "attendance")
	c.Calendars = newResource[models.Calendar, dto.CalendarCreateRequest, dto.CalendarUpdateRequest](c, "calendars", "calendar")
	c.Events = newResource[models.Event, dto.EventCreateRequest, dto.EventUpdateRequest](c, "events", "event")
	c.Admins = newResource[models.Admin, dto.AdminCreateRequest, dto.AdminUpdateRequest](c, "admins", "admin")
	c.TrainingRequests = newResource[models.TrainingRequest, dto.TrainingRequestCreateRequest, dto.TrainingRequestUpdateRequest](c, "training-requests", "training request")

	return c
}

// SetToken replaces the Authorization token for subsequent calls.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// Token returns the current Authorization token.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Cache returns the query cache, nil when memoization is disabled.
func (c *Client) Cache() *QueryCache {
	return c.cache
}

// envelope mirrors the API response body.
type envelope struct {
	Success bool            `json:"success"`
	Status  string          `json:"status,omitempty"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
	Meta    json.RawMessage `json:"meta,omitempty"`
	Error   json.RawMessage `json:"error,omitempty"`
}

// do issues one JSON request against path (relative to /api) and decodes the
// envelope data into out when out is non-nil.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body interface{}, out interface{}, headers ...http.Header) error {
	var (
		reader      io.Reader
		contentType string
	)
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
		contentType = "application/json"
	}

	endpoint := path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	return c.send(ctx, method, endpoint, reader, contentType, out, headers...)
}

// doRaw sends a pre-encoded body such as a multipart form.
func (c *Client) doRaw(ctx context.Context, method, path string, body io.Reader, contentType string, out interface{}) error {
	return c.send(ctx, method, path, body, contentType, out)
}

func (c *Client) send(ctx context.Context, method, path string, body io.Reader, contentType string, out interface{}, headers ...http.Header) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/api"+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", token)
	}
	for _, extra := range headers {
		for key, values := range extra {
			for _, value := range values {
				req.Header.Add(key, value)
			}
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newAPIError(resp.StatusCode, env)
	}
	if decodeErr != nil {
		return fmt.Errorf("decode response: %w", decodeErr)
	}
	if out == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode data: %w", err)
	}
	return nil
}

func newAPIError(status int, env envelope) *APIError {
	var detail string
	if len(env.Error) > 0 {
		_ = json.Unmarshal(env.Error, &detail)
	}

	apiErr := &APIError{Status: status, Message: env.Message, Detail: detail}
	if apiErr.Message == "" {
		apiErr.Message = detail
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(status)
	}
	if apiErr.Detail == apiErr.Message {
		apiErr.Detail = ""
	}
	return apiErr
}
