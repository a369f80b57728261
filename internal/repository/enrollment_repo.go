package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/noah-isme/formation-api/internal/models"
)

var (
	// ErrActiveEnrollmentExists indicates the student already holds an active enrollment in the formation.
	ErrActiveEnrollmentExists = errors.New("active enrollment already exists")
	// ErrMissingReference indicates a referenced student or formation does not exist.
	ErrMissingReference = errors.New("referenced record does not exist")
)

// EnrollmentRepository provides access to enrollments.
type EnrollmentRepository interface {
	CRUDRepository[models.Enrollment]
	CreateChecked(ctx context.Context, enrollment *models.Enrollment) error
	HasActive(ctx context.Context, studentID, formationID, excludeID uint) (bool, error)
}

type enrollmentRepository struct {
	*crudRepository[models.Enrollment]
}

// NewEnrollmentRepository constructs the enrollment repository.
func NewEnrollmentRepository(db *gorm.DB) EnrollmentRepository {
	return &enrollmentRepository{crudRepository: newCRUDRepository[models.Enrollment](db)}
}

// CreateChecked inserts the enrollment after verifying its references and the
// single-active-enrollment rule inside one transaction.
func (r *enrollmentRepository) CreateChecked(ctx context.Context, enrollment *models.Enrollment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureExists(tx, &models.Student{}, enrollment.StudentID); err != nil {
			return err
		}
		if err := ensureExists(tx, &models.Formation{}, enrollment.FormationID); err != nil {
			return err
		}

		if enrollment.Status == models.EnrollmentStatusActive {
			active, err := countActive(tx, enrollment.StudentID, enrollment.FormationID, 0)
			if err != nil {
				return err
			}
			if active > 0 {
				return ErrActiveEnrollmentExists
			}
		}

		return tx.Create(enrollment).Error
	})
}

func (r *enrollmentRepository) HasActive(ctx context.Context, studentID, formationID, excludeID uint) (bool, error) {
	active, err := countActive(r.db.WithContext(ctx), studentID, formationID, excludeID)
	if err != nil {
		return false, err
	}
	return active > 0, nil
}

func countActive(db *gorm.DB, studentID, formationID, excludeID uint) (int64, error) {
	query := db.Model(&models.Enrollment{}).
		Where("student_id = ? AND formation_id = ? AND status = ?", studentID, formationID, models.EnrollmentStatusActive)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func ensureExists(db *gorm.DB, model interface{}, id uint) error {
	var total int64
	if err := db.Model(model).Where("id = ?", id).Count(&total).Error; err != nil {
		return err
	}
	if total == 0 {
		return ErrMissingReference
	}
	return nil
}
