package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/mhaefliger/grocery/pkg/domain"
)

// MapGormErrorToDomain converts GORM errors to domain errors so callers never
// depend on the persistence technology. It walks the unwrap chain because GORM
// wraps the driver errors it surfaces.
func MapGormErrorToDomain(err error) error {
	if err == nil {
		return nil
	}

	currentErr := err
	for currentErr != nil {
		switch {
		case errors.Is(currentErr, gorm.ErrDuplicatedKey):
			return domain.ErrAlreadyExists
		case errors.Is(currentErr, gorm.ErrRecordNotFound):
			return domain.ErrNotFound
		}
		currentErr = errors.Unwrap(currentErr)
	}

	// Unmapped storage errors propagate unchanged.
	return err
}
