package service

import (
	"strings"

	"github.com/noah-isme/formation-api/internal/dto"
	"github.com/noah-isme/formation-api/internal/models"
	"github.com/noah-isme/formation-api/internal/repository"
)

// AdminService manages administrator accounts.
type AdminService = ResourceService[models.Admin, dto.AdminCreateRequest, dto.AdminUpdateRequest]

// TrainingRequestService manages training applications.
type TrainingRequestService = ResourceService[models.TrainingRequest, dto.TrainingRequestCreateRequest, dto.TrainingRequestUpdateRequest]

// NewAdminService constructs the admin service.
func NewAdminService(repo repository.AdminRepository, deps ResourceDeps) AdminService {
	return newResourceService(repository.CRUDRepository[models.Admin](repo), resourceHooks[models.Admin, dto.AdminCreateRequest, dto.AdminUpdateRequest]{
		name: "admin",
		idOf: func(a models.Admin) uint { return a.ID },
		build: func(payload dto.AdminCreateRequest) (models.Admin, error) {
			admin := models.Admin{
				FirstName:    strings.TrimSpace(payload.FirstName),
				LastName:     strings.TrimSpace(payload.LastName),
				Email:        normalizeEmail(payload.Email),
				PhoneNumber:  strings.TrimSpace(payload.PhoneNumber),
				DepartmentID: payload.DepartmentID,
			}
			if payload.Password != "" {
				hash, err := hashPassword(payload.Password)
				if err != nil {
					return models.Admin{}, err
				}
				admin.PasswordHash = hash
			}
			return admin, nil
		},
		apply: func(admin *models.Admin, payload dto.AdminUpdateRequest) error {
			if payload.FirstName != nil {
				admin.FirstName = strings.TrimSpace(*payload.FirstName)
			}
			if payload.LastName != nil {
				admin.LastName = strings.TrimSpace(*payload.LastName)
			}
			if payload.Email != nil {
				admin.Email = normalizeEmail(*payload.Email)
			}
			if payload.PhoneNumber != nil {
				admin.PhoneNumber = strings.TrimSpace(*payload.PhoneNumber)
			}
			if payload.DepartmentID != nil {
				admin.DepartmentID = *payload.DepartmentID
			}
			if payload.Password != nil {
				hash, err := hashPassword(*payload.Password)
				if err != nil {
					return err
				}
				admin.PasswordHash = hash
			}
			return nil
		},
		fields: func(admin models.Admin) map[string]interface{} {
			fields := map[string]interface{}{
				"first_name":    admin.FirstName,
				"last_name":     admin.LastName,
				"email":         admin.Email,
				"phone_number":  admin.PhoneNumber,
				"department_id": admin.DepartmentID,
			}
			if admin.PasswordHash != "" {
				fields["password_hash"] = admin.PasswordHash
			}
			return fields
		},
	}, deps)
}

// NewTrainingRequestService constructs the training request service.
func NewTrainingRequestService(repo repository.TrainingRequestRepository, deps ResourceDeps) TrainingRequestService {
	return newResourceService(repository.CRUDRepository[models.TrainingRequest](repo), resourceHooks[models.TrainingRequest, dto.TrainingRequestCreateRequest, dto.TrainingRequestUpdateRequest]{
		name: "training_request",
		idOf: func(r models.TrainingRequest) uint { return r.ID },
		build: func(payload dto.TrainingRequestCreateRequest) (models.TrainingRequest, error) {
			status := payload.Status
			if status == "" {
				status = models.TrainingRequestPending
			}
			request := models.TrainingRequest{
				FirstName:   strings.TrimSpace(payload.FirstName),
				LastName:    strings.TrimSpace(payload.LastName),
				Email:       normalizeEmail(payload.Email),
				PhoneNumber: trimOptional(payload.PhoneNumber),
				FormationID: payload.FormationID,
				Message:     sanitizeOptional(payload.Message),
				Status:      status,
			}
			if payload.Password != "" {
				hash, err := hashPassword(payload.Password)
				if err != nil {
					return models.TrainingRequest{}, err
				}
				request.PasswordHash = hash
			}
			return request, nil
		},
		apply: func(request *models.TrainingRequest, payload dto.TrainingRequestUpdateRequest) error {
			if payload.FirstName != nil {
				request.FirstName = strings.TrimSpace(*payload.FirstName)
			}
			if payload.LastName != nil {
				request.LastName = strings.TrimSpace(*payload.LastName)
			}
			if payload.Email != nil {
				request.Email = normalizeEmail(*payload.Email)
			}
			if payload.PhoneNumber != nil {
				request.PhoneNumber = trimOptional(payload.PhoneNumber)
			}
			if payload.FormationID != nil {
				request.FormationID = payload.FormationID
			}
			if payload.Message != nil {
				request.Message = sanitizeOptional(payload.Message)
			}
			if payload.Status != nil {
				request.Status = *payload.Status
			}
			if payload.Password != nil {
				hash, err := hashPassword(*payload.Password)
				if err != nil {
					return err
				}
				request.PasswordHash = hash
			}
			return nil
		},
		fields: func(request models.TrainingRequest) map[string]interface{} {
			fields := map[string]interface{}{
				"first_name":   request.FirstName,
				"last_name":    request.LastName,
				"email":        request.Email,
				"phone_number": request.PhoneNumber,
				"formation_id": request.FormationID,
				"message":      request.Message,
				"status":       request.Status,
			}
			if request.PasswordHash != "" {
				fields["password_hash"] = request.PasswordHash
			}
			return fields
		},
	}, deps)
}
