package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/noah-isme/formation-api/internal/models"
)

// StudentRepository provides access to student records.
type StudentRepository interface {
	CRUDRepository[models.Student]
	FindByEmail(ctx context.Context, email string) (models.Student, error)
	CountByStatus(ctx context.Context) (map[string]int64, error)
}

type studentRepository struct {
	*crudRepository[models.Student]
}

// NewStudentRepository constructs a student repository.
func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{crudRepository: newCRUDRepository[models.Student](db)}
}

func (r *studentRepository) FindByEmail(ctx context.Context, email string) (models.Student, error) {
	var student models.Student
	err := r.db.WithContext(ctx).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&student).Error
	if err != nil {
		return models.Student{}, err
	}

	return student, nil
}

func (r *studentRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	type row struct {
		Status string
		Total  int64
	}

	var rows []row
	err := r.db.WithContext(ctx).Model(&models.Student{}).
		Select("status, COUNT(*) AS total").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(models.StudentStatuses))
	for _, status := range models.StudentStatuses {
		counts[status] = 0
	}
	for _, item := range rows {
		counts[item.Status] = item.Total
	}
	return counts, nil
}
