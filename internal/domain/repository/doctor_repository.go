package repository

import (
	"context"

	"go-doctor-directory/internal/domain/entity"
)

// DoctorRepository provides the normalized doctor list.
// Implementations return *entity.FetchError when the upstream list is unavailable.
type DoctorRepository interface {
	FindAll(ctx context.Context) ([]entity.Doctor, error)
}

// DoctorCacheInvalidator is implemented by repositories that keep a copy of the list.
// Invalidate drops it so the next FindAll reaches the provider.
type DoctorCacheInvalidator interface {
	Invalidate(ctx context.Context) error
}
