package repository

import (
	"context"

	"go-doctor-directory/internal/domain/entity"
)

// ProviderSource fetches raw provider records from the external directory feed
type ProviderSource interface {
	FetchProviders(ctx context.Context) ([]entity.ProviderRecord, error)
}
