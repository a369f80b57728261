package handler_test

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/formation-api/internal/dto"
	"github.com/noah-isme/formation-api/internal/handler"
	"github.com/noah-isme/formation-api/internal/service"
)

type stubUploadService struct {
	err      error
	target   string
	targetID uint
	fileName string
}

func (s *stubUploadService) UploadStudentPhoto(_ context.Context, _ service.ActivityActor, id uint, file *multipart.FileHeader) (dto.UploadResponse, error) {
	return s.record("student", id, file)
}

func (s *stubUploadService) UploadFormationImage(_ context.Context, _ service.ActivityActor, id uint, file *multipart.FileHeader) (dto.UploadResponse, error) {
	return s.record("formation", id, file)
}

func (s *stubUploadService) record(target string, id uint, file *multipart.FileHeader) (dto.UploadResponse, error) {
	s.target = target
	s.targetID = id
	s.fileName = file.Filename
	if s.err != nil {
		return dto.UploadResponse{}, s.err
	}
	return dto.UploadResponse{URL: "https://cdn.example.com/" + file.Filename, MimeType: "image/png", SizeBytes: file.Size}, nil
}

func newUploadApp(svc service.UploadService) *fiber.App {
	app := fiber.New()
	uploads := handler.NewUploadHandler(svc, zerolog.Nop())
	uploads.RegisterStudentRoutes(app.Group("/api/students"))
	uploads.RegisterFormationRoutes(app.Group("/api/formations"))
	return app
}

func multipartRequest(t *testing.T, path, field string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if field != "" {
		part, err := writer.CreateFormFile(field, "avatar.png")
		require.NoError(t, err)
		_, err = part.Write([]byte("\x89PNG\r\n\x1a\nrest"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestUploadHandlerStoresStudentPhotoAndFormationImage(t *testing.T) {
	svc := &stubUploadService{}
	app := newUploadApp(svc)

	resp, err := app.Test(multipartRequest(t, "/api/students/4/photo", "file"))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data dto.UploadResponse `json:"data"`
	}
	decodeResponse(t, resp, &body)
	require.Equal(t, "https://cdn.example.com/avatar.png", body.Data.URL)
	require.Equal(t, "student", svc.target)
	require.Equal(t, uint(4), svc.targetID)

	resp, err = app.Test(multipartRequest(t, "/api/formations/9/image", "file"))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, "formation", svc.target)
	require.Equal(t, uint(9), svc.targetID)
}

func TestUploadHandlerMissingFile(t *testing.T) {
	svc := &stubUploadService{}
	app := newUploadApp(svc)

	resp, err := app.Test(multipartRequest(t, "/api/students/4/photo", ""))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	require.Empty(t, svc.target)

	resp, err = app.Test(multipartRequest(t, "/api/students/abc/photo", "file"))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUploadHandlerErrorMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{err: service.ErrUploadTooLarge, status: fiber.StatusRequestEntityTooLarge},
		{err: service.ErrUploadTypeNotAllowed, status: fiber.StatusUnsupportedMediaType},
		{err: service.ErrStorageUnavailable, status: fiber.StatusServiceUnavailable},
		{err: service.ErrNotFound, status: fiber.StatusNotFound},
		{err: errors.New("cloud exploded"), status: fiber.StatusInternalServerError},
	}

	for _, tc := range cases {
		app := newUploadApp(&stubUploadService{err: tc.err})
		resp, err := app.Test(multipartRequest(t, "/api/formations/1/image", "file"))
		require.NoError(t, err)
		require.Equal(t, tc.status, resp.StatusCode, tc.err.Error())
	}
}
