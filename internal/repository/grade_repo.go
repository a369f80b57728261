package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/noah-isme/formation-api/internal/models"
)

// GradeFilter narrows grade aggregations.
type GradeFilter struct {
	StudentID *uint
	CourseID  *uint
}

// GradeRepository provides access to grades.
type GradeRepository interface {
	CRUDRepository[models.Grade]
	Values(ctx context.Context, filter GradeFilter) ([]float64, error)
}

type gradeRepository struct {
	*crudRepository[models.Grade]
}

// NewGradeRepository constructs the grade repository.
func NewGradeRepository(db *gorm.DB) GradeRepository {
	return &gradeRepository{crudRepository: newCRUDRepository[models.Grade](db)}
}

func (r *gradeRepository) Values(ctx context.Context, filter GradeFilter) ([]float64, error) {
	query := r.db.WithContext(ctx).Model(&models.Grade{})
	if filter.StudentID != nil {
		query = query.Where("student_id = ?", *filter.StudentID)
	}
	if filter.CourseID != nil {
		query = query.Where("course_id = ?", *filter.CourseID)
	}

	values := make([]float64, 0)
	if err := query.Order("id ASC").Pluck("value", &values).Error; err != nil {
		return nil, err
	}
	return values, nil
}
