package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/noah-isme/formation-api/internal/models"
)

// AdminRepository provides access to administrator accounts.
type AdminRepository interface {
	CRUDRepository[models.Admin]
	FindByEmail(ctx context.Context, email string) (models.Admin, error)
}

type adminRepository struct {
	*crudRepository[models.Admin]
}

// NewAdminRepository constructs the admin repository.
func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{crudRepository: newCRUDRepository[models.Admin](db)}
}

func (r *adminRepository) FindByEmail(ctx context.Context, email string) (models.Admin, error) {
	var admin models.Admin
	if err := byEmail(r.db.WithContext(ctx), email).First(&admin).Error; err != nil {
		return models.Admin{}, err
	}
	return admin, nil
}

// TrainingRequestRepository provides access to training applications.
type TrainingRequestRepository interface {
	CRUDRepository[models.TrainingRequest]
	FindByEmail(ctx context.Context, email string) (models.TrainingRequest, error)
}

type trainingRequestRepository struct {
	*crudRepository[models.TrainingRequest]
}

// NewTrainingRequestRepository constructs the training request repository.
func NewTrainingRequestRepository(db *gorm.DB) TrainingRequestRepository {
	return &trainingRequestRepository{crudRepository: newCRUDRepository[models.TrainingRequest](db)}
}

func (r *trainingRequestRepository) FindByEmail(ctx context.Context, email string) (models.TrainingRequest, error) {
	var request models.TrainingRequest
	if err := byEmail(r.db.WithContext(ctx), email).First(&request).Error; err != nil {
		return models.TrainingRequest{}, err
	}
	return request, nil
}

func byEmail(db *gorm.DB, email string) *gorm.DB {
	return db.Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email)))
}
