package server_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/noah-isme/formation-api/internal/config"
	"github.com/noah-isme/formation-api/internal/database"
	"github.com/noah-isme/formation-api/internal/dto"
	"github.com/noah-isme/formation-api/internal/middleware"
	"github.com/noah-isme/formation-api/internal/server"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   json.RawMessage `json:"error"`
}

type harness struct {
	t   *testing.T
	srv *server.Server
}

func newHarness(t *testing.T, redisClient *redis.Client) *harness {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	cfg := config.Config{
		AppName:           "Formation API",
		AppEnv:            "test",
		JWTSecret:         "integration-secret",
		JWTTTL:            time.Hour,
		DashboardCacheTTL: time.Minute,
		SeedEnabled:       true,
		UploadMaxMB:       1,
		EventsChannel:     "formation-test",
		LoginRateLimit:    100,
	}

	srv := server.New(cfg, server.Infrastructure{DB: db, Redis: redisClient}, zerolog.Nop())
	return &harness{t: t, srv: srv}
}

func (h *harness) do(method, path, token string, body interface{}) (int, envelope) {
	h.t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(h.t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	resp, err := h.srv.App.Test(req, -1)
	require.NoError(h.t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(h.t, err)

	var decoded envelope
	require.NoError(h.t, json.Unmarshal(raw, &decoded), string(raw))
	return resp.StatusCode, decoded
}

func (h *harness) login(role, path, email, password string) string {
	h.t.Helper()

	status, body := h.do(http.MethodPost, path, "", map[string]string{"email": email, "password": password})
	require.Equal(h.t, http.StatusOK, status, string(body.Error))

	var login dto.LoginResponse
	require.NoError(h.t, json.Unmarshal(body.Data, &login))
	require.Equal(h.t, role, login.Role)
	require.NotEmpty(h.t, login.Token)
	return login.Token
}

func (h *harness) adminToken() string {
	h.t.Helper()

	status, _ := h.do(http.MethodPost, "/api/auth/seed-test-accounts", "", nil)
	require.Equal(h.t, http.StatusOK, status)
	return h.login("admin", "/api/admins/login", "admin@test.com", "Admin123!")
}

func (h *harness) create(token, path string, payload map[string]interface{}) map[string]interface{} {
	h.t.Helper()

	status, body := h.do(http.MethodPost, path, token, payload)
	require.Equal(h.t, http.StatusCreated, status, "%s: %s %s", path, body.Message, string(body.Error))

	var created map[string]interface{}
	require.NoError(h.t, json.Unmarshal(body.Data, &created))
	require.NotZero(h.t, created["id"])
	return created
}

func idOf(record map[string]interface{}) uint {
	return uint(record["id"].(float64))
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	h := newHarness(t, nil)

	status, body := h.do(http.MethodGet, "/api/students", "", nil)
	require.Equal(t, http.StatusUnauthorized, status)
	require.Equal(t, middleware.MessageNoToken, body.Message)

	status, body = h.do(http.MethodGet, "/api/students", "not.a.token", nil)
	require.Equal(t, http.StatusUnauthorized, status)
	require.Equal(t, middleware.MessageInvalidToken, body.Message)

	status, _ = h.do(http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, status)

	token := h.adminToken()
	status, _ = h.do(http.MethodGet, "/api/students", token, nil)
	require.Equal(t, http.StatusOK, status)

	status, _ = h.do(http.MethodGet, "/api/students", "Bearer "+token, nil)
	require.Equal(t, http.StatusOK, status)
}

func TestEveryResourceRoundTrips(t *testing.T) {
	h := newHarness(t, nil)
	token := h.adminToken()

	department := h.create(token, "/api/departments", map[string]interface{}{"name": "Computer Science"})
	departmentID := idOf(department)

	instructor := h.create(token, "/api/instructors", map[string]interface{}{
		"first_name": "Barbara", "last_name": "Liskov", "email": "barbara@example.com", "department_id": departmentID,
	})
	formation := h.create(token, "/api/formations", map[string]interface{}{
		"name": "Distributed Systems", "available_spots": 20, "duration_in_hours": 40,
		"start_date": "2024-09-01", "end_date": "2024-12-20",
		"instructor_id": idOf(instructor), "department_id": departmentID,
	})
	formationID := idOf(formation)
	calendar := h.create(token, "/api/calendars", map[string]interface{}{"formation_id": formationID})
	student := h.create(token, "/api/students", map[string]interface{}{
		"first_name": "Ada", "last_name": "Lovelace", "date_of_birth": "1990-12-10",
		"email": "ada@example.com", "enrollment_date": "2024-09-01", "password": "Student123!",
	})
	course := h.create(token, "/api/courses", map[string]interface{}{
		"name": "Consensus", "department_id": departmentID, "formation_id": formationID,
	})

	cases := []struct {
		path    string
		payload map[string]interface{}
	}{
		{"/api/schedules", map[string]interface{}{"day_of_week": "MONDAY", "start_time": "09:00", "end_time": "12:00", "location": "Room 1", "formation_id": formationID}},
		{"/api/events", map[string]interface{}{"title": "Kickoff", "date": "2024-09-02", "start_time": "10:00", "end_time": "11:00", "calendar_id": idOf(calendar)}},
		{"/api/grades", map[string]interface{}{"value": 88.5, "date": "2024-10-01", "student_id": idOf(student), "course_id": idOf(course)}},
		{"/api/enrollments", map[string]interface{}{"student_id": idOf(student), "formation_id": formationID, "enrollment_date": "2024-09-01", "status": "ACTIVE"}},
		{"/api/attendance", map[string]interface{}{"date": "2024-09-02", "status": "PRESENT", "student_id": idOf(student)}},
		{"/api/admins", map[string]interface{}{"first_name": "Root", "last_name": "User", "email": "root@example.com", "phone_number": "555-0100", "department_id": departmentID}},
		{"/api/training-requests", map[string]interface{}{"first_name": "Tim", "last_name": "Berners", "email": "tim@example.com", "formation_id": formationID}},
	}

	for _, tc := range cases {
		created := h.create(token, tc.path, tc.payload)

		status, body := h.do(http.MethodGet, fmt.Sprintf("%s/%d", tc.path, idOf(created)), token, nil)
		require.Equal(t, http.StatusOK, status, tc.path)

		var fetched map[string]interface{}
		require.NoError(t, json.Unmarshal(body.Data, &fetched))
		for key, want := range tc.payload {
			got := fetched[key]
			switch value := want.(type) {
			case string:
				require.Contains(t, fmt.Sprint(got), value, "%s.%s", tc.path, key)
			case uint:
				require.EqualValues(t, value, got, "%s.%s", tc.path, key)
			case int:
				require.EqualValues(t, value, got, "%s.%s", tc.path, key)
			default:
				require.Equal(t, value, got, "%s.%s", tc.path, key)
			}
		}

		status, _ = h.do(http.MethodDelete, fmt.Sprintf("%s/%d", tc.path, idOf(created)), token, nil)
		require.Equal(t, http.StatusOK, status, tc.path)
		status, _ = h.do(http.MethodGet, fmt.Sprintf("%s/%d", tc.path, idOf(created)), token, nil)
		require.Equal(t, http.StatusNotFound, status, tc.path)
	}

	status, body := h.do(http.MethodGet, fmt.Sprintf("/api/formations/%d/calendar", formationID), token, nil)
	require.Equal(t, http.StatusOK, status)
	require.Contains(t, string(body.Data), `"events":[]`)
}

func TestAdminListGrowsAfterCreate(t *testing.T) {
	h := newHarness(t, nil)
	token := h.adminToken()

	count := func() int {
		status, body := h.do(http.MethodGet, "/api/admins", token, nil)
		require.Equal(t, http.StatusOK, status)
		var admins []map[string]interface{}
		require.NoError(t, json.Unmarshal(body.Data, &admins))
		return len(admins)
	}

	before := count()
	department := h.create(token, "/api/departments", map[string]interface{}{"name": "Operations"})
	h.create(token, "/api/admins", map[string]interface{}{
		"first_name": "Second", "last_name": "Admin", "email": "second@example.com",
		"phone_number": "555-0101", "department_id": idOf(department), "password": "Second123!",
	})
	require.Equal(t, before+1, count())

	h.login("admin", "/api/admins/login", "second@example.com", "Second123!")
}

func TestPublicTrainingRequestAndRoleChecks(t *testing.T) {
	h := newHarness(t, nil)

	status, body := h.do(http.MethodPost, "/api/training-requests", "", map[string]interface{}{
		"first_name": "Walk", "last_name": "In", "email": "walkin@example.com", "password": "WalkIn123!",
	})
	require.Equal(t, http.StatusCreated, status, body.Message)

	status, _ = h.do(http.MethodGet, "/api/training-requests", "", nil)
	require.Equal(t, http.StatusUnauthorized, status)

	traineeToken := h.login("training_request", "/api/training-requests/login", "walkin@example.com", "WalkIn123!")
	status, _ = h.do(http.MethodGet, "/api/activities", traineeToken, nil)
	require.Equal(t, http.StatusForbidden, status)

	status, body = h.do(http.MethodPost, "/api/students/login", "", map[string]string{"email": "walkin@example.com", "password": "WalkIn123!"})
	require.Equal(t, http.StatusUnauthorized, status)
	require.Equal(t, "invalid email or password", body.Message)

	adminToken := h.adminToken()
	status, body = h.do(http.MethodGet, "/api/activities?entity_type=training_request", adminToken, nil)
	require.Equal(t, http.StatusOK, status)

	var entries []dto.ActivityResponse
	require.NoError(t, json.Unmarshal(body.Data, &entries))
	require.Len(t, entries, 1)
	require.Equal(t, dto.ChangeCreated, entries[0].Action)
}

func TestDashboardCacheInvalidatedByMutations(t *testing.T) {
	mini := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mini.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	h := newHarness(t, client)
	token := h.adminToken()

	read := func() dto.DashboardResponse {
		status, body := h.do(http.MethodGet, "/api/dashboard", token, nil)
		require.Equal(t, http.StatusOK, status)
		var dashboard dto.DashboardResponse
		require.NoError(t, json.Unmarshal(body.Data, &dashboard))
		return dashboard
	}

	first := read()
	require.False(t, first.CacheHit)
	require.True(t, read().CacheHit)

	h.create(token, "/api/departments", map[string]interface{}{"name": "Mathematics"})

	after := read()
	require.False(t, after.CacheHit)
	require.Equal(t, first.Departments+1, after.Departments)
}

func TestMetricsEndpoint(t *testing.T) {
	h := newHarness(t, nil)

	resp, err := h.srv.App.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}
