package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/noah-isme/formation-api/internal/repository"
)

var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate indicates a unique constraint was violated.
	ErrDuplicate = errors.New("resource already exists")
	// ErrInvalidInput indicates the payload passed validation but breaks a domain rule.
	ErrInvalidInput = errors.New("invalid input")
	// ErrActiveEnrollmentExists indicates the student already follows the formation.
	ErrActiveEnrollmentExists = errors.New("student already has an active enrollment in this formation")
)

func invalidInput(message string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, message)
}

// translateError maps persistence errors onto the service sentinels.
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	case errors.Is(err, gorm.ErrForeignKeyViolated), errors.Is(err, repository.ErrMissingReference):
		return invalidInput("referenced record does not exist")
	case errors.Is(err, repository.ErrActiveEnrollmentExists):
		return ErrActiveEnrollmentExists
	default:
		return err
	}
}
