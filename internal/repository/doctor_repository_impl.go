package repository

import (
	"context"

	"go-doctor-directory/internal/converter"
	"go-doctor-directory/internal/domain/entity"
	domainRepo "go-doctor-directory/internal/domain/repository"
)

type doctorRepository struct {
	source domainRepo.ProviderSource
}

// NewDoctorRepository returns a repository that fetches raw providers from source
// and normalizes them on every call.
func NewDoctorRepository(source domainRepo.ProviderSource) domainRepo.DoctorRepository {
	return &doctorRepository{source: source}
}

func (r *doctorRepository) FindAll(ctx context.Context) ([]entity.Doctor, error) {
	records, err := r.source.FetchProviders(ctx)
	if err != nil {
		return nil, err
	}
	return converter.ProviderRecordsToDoctors(records), nil
}
