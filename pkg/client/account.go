package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"github.com/noah-isme/formation-api/internal/dto"
	"github.com/noah-isme/formation-api/internal/models"
)

// Account selects the login endpoint.
type Account string

// Account types with a login route.
const (
	AccountAdmin           Account = "admins"
	AccountStudent         Account = "students"
	AccountTrainingRequest Account = "training-requests"
)

// Login authenticates and stores the returned token on the client.
func (c *Client) Login(ctx context.Context, account Account, email, password string) (dto.LoginResponse, error) {
	var response dto.LoginResponse
	payload := dto.LoginRequest{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/"+string(account)+"/login", nil, payload, &response); err != nil {
		c.logger.Error().Err(err).Str("account", string(account)).Msg("login failed")
		return response, err
	}

	c.SetToken(response.Token)
	return response, nil
}

// Dashboard loads the institute-wide counters.
func (c *Client) Dashboard(ctx context.Context) (dto.DashboardResponse, error) {
	response, err := Fetch(ctx, c.cache, "dashboard", func(ctx context.Context) (dto.DashboardResponse, error) {
		var response dto.DashboardResponse
		err := c.do(ctx, http.MethodGet, "/dashboard", nil, nil, &response)
		return response, err
	})
	if err != nil {
		c.logger.Error().Err(err).Msg("failed to load dashboard")
	}
	return response, err
}

// GradeStats asks the API to aggregate grades, optionally narrowed with
// Where("student_id", id) or Where("course_id", id).
func (c *Client) GradeStats(ctx context.Context, filters ...Filter) (dto.GradeStats, error) {
	query := url.Values{}
	for _, filter := range filters {
		filter(query)
	}

	var stats dto.GradeStats
	if err := c.do(ctx, http.MethodGet, "/grades/stats", query, nil, &stats); err != nil {
		c.logger.Error().Err(err).Msg("failed to load grade stats")
		return stats, err
	}
	return stats, nil
}

// ComputeGradeStats aggregates an already fetched grade list.
func ComputeGradeStats(grades []models.Grade) dto.GradeStats {
	values := make([]float64, 0, len(grades))
	for _, grade := range grades {
		values = append(values, grade.Value)
	}
	return dto.ComputeGradeStats(values)
}

// FormationCalendar loads the calendar of a formation with its events.
func (c *Client) FormationCalendar(ctx context.Context, formationID uint) (models.Calendar, error) {
	var calendar models.Calendar
	path := "/formations/" + strconv.FormatUint(uint64(formationID), 10) + "/calendar"
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &calendar); err != nil {
		c.logger.Error().Err(err).Uint("formation_id", formationID).Msg("failed to load formation calendar")
		return calendar, err
	}
	return calendar, nil
}

// UploadStudentPhoto stores a student photo and returns the resulting URL.
func (c *Client) UploadStudentPhoto(ctx context.Context, studentID uint, filename string, content io.Reader) (dto.UploadResponse, error) {
	response, err := c.upload(ctx, "/students/"+strconv.FormatUint(uint64(studentID), 10)+"/photo", filename, content)
	if err == nil {
		c.cache.Invalidate("students")
	}
	return response, err
}

// UploadFormationImage stores a formation image and returns the resulting URL.
func (c *Client) UploadFormationImage(ctx context.Context, formationID uint, filename string, content io.Reader) (dto.UploadResponse, error) {
	response, err := c.upload(ctx, "/formations/"+strconv.FormatUint(uint64(formationID), 10)+"/image", filename, content)
	if err == nil {
		c.cache.Invalidate("formations")
	}
	return response, err
}

func (c *Client) upload(ctx context.Context, path, filename string, content io.Reader) (dto.UploadResponse, error) {
	var response dto.UploadResponse

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return response, fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return response, fmt.Errorf("copy upload: %w", err)
	}
	if err := writer.Close(); err != nil {
		return response, fmt.Errorf("close multipart: %w", err)
	}

	err = c.doRaw(ctx, http.MethodPost, path, &body, writer.FormDataContentType(), &response)
	if err != nil {
		c.logger.Error().Err(err).Str("path", path).Msg("upload failed")
		c.notifier.Error("Upload failed: " + errorText(err))
		return response, err
	}
	c.notifier.Success("Upload complete")
	return response, nil
}
