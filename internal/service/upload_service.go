package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/noah-isme/formation-api/internal/dto"
	"github.com/noah-isme/formation-api/internal/models"
	"github.com/noah-isme/formation-api/internal/observability"
	"github.com/noah-isme/formation-api/internal/repository"
)

var (
	// ErrUploadTooLarge indicates the payload exceeded the configured limit.
	ErrUploadTooLarge = errors.New("file exceeds maximum allowed size")
	// ErrUploadTypeNotAllowed indicates the MIME type is not permitted.
	ErrUploadTypeNotAllowed = errors.New("file type not allowed")
	// ErrUploadMissing indicates the request carried no file.
	ErrUploadMissing = errors.New("file is required")
	// ErrStorageUnavailable indicates no storage backend is configured.
	ErrStorageUnavailable = errors.New("file storage is not configured")
)

var allowedImageTypes = map[string]struct{}{
	"image/png":  {},
	"image/jpeg": {},
	"image/gif":  {},
	"image/webp": {},
}

// FileStorage abstracts upload destinations. key is a slash separated path
// such as "students/12/avatar.png".
type FileStorage interface {
	Upload(ctx context.Context, key string, reader io.Reader) (string, error)
}

// UploadService validates images and attaches them to students and formations.
type UploadService interface {
	UploadStudentPhoto(ctx context.Context, actor ActivityActor, studentID uint, file *multipart.FileHeader) (dto.UploadResponse, error)
	UploadFormationImage(ctx context.Context, actor ActivityActor, formationID uint, file *multipart.FileHeader) (dto.UploadResponse, error)
}

type uploadService struct {
	storage    FileStorage
	students   repository.StudentRepository
	formations repository.CRUDRepository[models.Formation]
	recorder   ActivityRecorder
	notifier   ChangeNotifier
	logger     zerolog.Logger
	maxSize    int64
	tracer     trace.Tracer
}

// NewUploadService constructs an upload service. A nil storage rejects every upload.
func NewUploadService(storage FileStorage, students repository.StudentRepository, formations repository.CRUDRepository[models.Formation], maxSizeMB int, deps ResourceDeps) UploadService {
	if maxSizeMB <= 0 {
		maxSizeMB = 5
	}
	return &uploadService{
		storage:    storage,
		students:   students,
		formations: formations,
		recorder:   deps.Recorder,
		notifier:   deps.Notifier,
		logger:     deps.Logger.With().Str("component", "upload_service").Logger(),
		maxSize:    int64(maxSizeMB) * 1024 * 1024,
		tracer:     otel.Tracer("github.com/noah-isme/formation-api/internal/service/upload"),
	}
}

func (s *uploadService) UploadStudentPhoto(ctx context.Context, actor ActivityActor, studentID uint, file *multipart.FileHeader) (dto.UploadResponse, error) {
	if _, err := s.students.GetByID(ctx, studentID); err != nil {
		return dto.UploadResponse{}, translateError(err)
	}

	response, err := s.store(ctx, fmt.Sprintf("students/%d", studentID), file)
	if err != nil {
		return dto.UploadResponse{}, err
	}

	if _, err := s.students.Update(ctx, studentID, map[string]interface{}{"photo": response.URL}); err != nil {
		return dto.UploadResponse{}, translateError(err)
	}

	s.afterUpload(ctx, actor, "student", studentID, response)
	return response, nil
}

func (s *uploadService) UploadFormationImage(ctx context.Context, actor ActivityActor, formationID uint, file *multipart.FileHeader) (dto.UploadResponse, error) {
	if _, err := s.formations.GetByID(ctx, formationID); err != nil {
		return dto.UploadResponse{}, translateError(err)
	}

	response, err := s.store(ctx, fmt.Sprintf("formations/%d", formationID), file)
	if err != nil {
		return dto.UploadResponse{}, err
	}

	if _, err := s.formations.Update(ctx, formationID, map[string]interface{}{"image": response.URL}); err != nil {
		return dto.UploadResponse{}, translateError(err)
	}

	s.afterUpload(ctx, actor, "formation", formationID, response)
	return response, nil
}

func (s *uploadService) store(ctx context.Context, prefix string, file *multipart.FileHeader) (dto.UploadResponse, error) {
	ctx, span := s.tracer.Start(ctx, "upload.store")
	defer span.End()

	span.SetAttributes(
		attribute.Int64("upload.max_bytes", s.maxSize),
		attribute.String("upload.prefix", prefix),
	)

	start := time.Now()
	defer func() {
		observability.UploadLatency().Observe(time.Since(start).Seconds())
	}()

	if s.storage == nil {
		span.SetStatus(codes.Error, "storage unavailable")
		return dto.UploadResponse{}, ErrStorageUnavailable
	}
	if file == nil {
		span.SetStatus(codes.Error, "validation failed")
		return dto.UploadResponse{}, ErrUploadMissing
	}
	span.SetAttributes(attribute.String("upload.original_name", strings.TrimSpace(file.Filename)))

	if file.Size > s.maxSize {
		observability.UploadRejected().WithLabelValues("size").Inc()
		span.RecordError(ErrUploadTooLarge)
		span.SetStatus(codes.Error, "payload too large")
		return dto.UploadResponse{}, ErrUploadTooLarge
	}

	handle, err := file.Open()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "open failed")
		return dto.UploadResponse{}, err
	}
	defer handle.Close()

	buf := bytes.NewBuffer(nil)
	if _, err := io.Copy(buf, io.LimitReader(handle, s.maxSize+1)); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "read failed")
		return dto.UploadResponse{}, err
	}
	if int64(buf.Len()) > s.maxSize {
		observability.UploadRejected().WithLabelValues("size").Inc()
		span.RecordError(ErrUploadTooLarge)
		span.SetStatus(codes.Error, "payload too large")
		return dto.UploadResponse{}, ErrUploadTooLarge
	}

	detected := mimetype.Detect(buf.Bytes())
	mime := strings.ToLower(detected.String())
	if idx := strings.Index(mime, ";"); idx >= 0 {
		mime = mime[:idx]
	}
	span.SetAttributes(attribute.String("upload.detected_mime", mime))
	if _, ok := allowedImageTypes[mime]; !ok {
		observability.UploadRejected().WithLabelValues("type").Inc()
		span.RecordError(ErrUploadTypeNotAllowed)
		span.SetStatus(codes.Error, "type not allowed")
		return dto.UploadResponse{}, ErrUploadTypeNotAllowed
	}

	key := prefix + "/" + sanitizeFileName(file.Filename, detected.Extension())
	url, err := s.storage.Upload(ctx, key, bytes.NewReader(buf.Bytes()))
	if err != nil {
		observability.UploadRejected().WithLabelValues("storage").Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, "storage failed")
		s.logger.Error().Err(err).Str("key", key).Msg("failed to store upload")
		return dto.UploadResponse{}, err
	}

	observability.UploadRequests().WithLabelValues(mime).Inc()
	span.SetStatus(codes.Ok, "stored")

	return dto.UploadResponse{
		URL:       url,
		MimeType:  mime,
		SizeBytes: int64(buf.Len()),
	}, nil
}

func (s *uploadService) afterUpload(ctx context.Context, actor ActivityActor, resource string, id uint, response dto.UploadResponse) {
	observability.Mutations().WithLabelValues(resource, dto.ChangeUpdated).Inc()
	if s.recorder != nil {
		entityID := id
		_, err := s.recorder.Record(ctx, ActivityEntry{
			ActorID:    actor.ID,
			ActorRole:  actor.Role,
			Action:     "uploaded",
			EntityType: resource,
			EntityID:   &entityID,
			Metadata:   map[string]interface{}{"url": response.URL, "mime_type": response.MimeType},
		})
		if err != nil {
			s.logger.Warn().Err(err).Msg("failed to record upload activity")
		}
	}
	if s.notifier != nil {
		s.notifier.Notify(ctx, resource, dto.ChangeUpdated, id)
	}
}

// sanitizeFileName lowercases the base name, replaces unsafe runes and
// forces the extension matching the detected content.
func sanitizeFileName(name, ext string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	base = strings.ToLower(base)
	base = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			return r
		}
		return '-'
	}, base)
	base = strings.Trim(base, "-")
	if base == "" {
		base = fmt.Sprintf("upload-%d", time.Now().Unix())
	}
	if ext == "" {
		ext = strings.ToLower(filepath.Ext(name))
	}
	return base + ext
}
