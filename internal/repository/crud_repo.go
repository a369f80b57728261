package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ListFilter narrows list queries to exact column matches.
type ListFilter struct {
	Conditions map[string]interface{}
	Order      string
}

// CRUDRepository exposes the persistence operations every resource supports.
type CRUDRepository[T any] interface {
	List(ctx context.Context, filter ListFilter) ([]T, error)
	GetByID(ctx context.Context, id uint) (T, error)
	Create(ctx context.Context, entity *T) error
	Save(ctx context.Context, entity *T) error
	Update(ctx context.Context, id uint, updates map[string]interface{}) (T, error)
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context, conditions map[string]interface{}) (int64, error)
}

type crudRepository[T any] struct {
	db *gorm.DB
}

// NewCRUDRepository constructs a repository over the model type T.
func NewCRUDRepository[T any](db *gorm.DB) CRUDRepository[T] {
	return newCRUDRepository[T](db)
}

func newCRUDRepository[T any](db *gorm.DB) *crudRepository[T] {
	return &crudRepository[T]{db: db}
}

func (r *crudRepository[T]) List(ctx context.Context, filter ListFilter) ([]T, error) {
	query := r.db.WithContext(ctx).Model(new(T))
	for column, value := range filter.Conditions {
		query = query.Where(map[string]interface{}{column: value})
	}

	order := filter.Order
	if order == "" {
		order = "id ASC"
	}

	items := make([]T, 0)
	if err := query.Order(order).Find(&items).Error; err != nil {
		return nil, err
	}

	return items, nil
}

func (r *crudRepository[T]) GetByID(ctx context.Context, id uint) (T, error) {
	var entity T
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&entity).Error; err != nil {
		var zero T
		return zero, err
	}

	return entity, nil
}

func (r *crudRepository[T]) Create(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(entity).Error
}

func (r *crudRepository[T]) Save(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(entity).Error
}

func (r *crudRepository[T]) Update(ctx context.Context, id uint, updates map[string]interface{}) (T, error) {
	var zero T
	if _, err := r.GetByID(ctx, id); err != nil {
		return zero, err
	}

	if len(updates) > 0 {
		if err := r.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Updates(updates).Error; err != nil {
			return zero, err
		}
	}

	return r.GetByID(ctx, id)
}

func (r *crudRepository[T]) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *crudRepository[T]) Count(ctx context.Context, conditions map[string]interface{}) (int64, error) {
	query := r.db.WithContext(ctx).Model(new(T))
	if len(conditions) > 0 {
		query = query.Where(conditions)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
