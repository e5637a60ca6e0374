package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go-doctor-directory/internal/converter"
	"go-doctor-directory/internal/delivery/dto"
	"go-doctor-directory/internal/domain/entity"
	"go-doctor-directory/internal/domain/repository"
	"go-doctor-directory/internal/observability/metrics"
	"go-doctor-directory/internal/service"

	"github.com/sirupsen/logrus"
)

var (
	ErrDoctorNotFound       = errors.New("doctor not found")
	ErrDirectoryLoading     = errors.New("doctors are still loading")
	ErrDirectoryUnavailable = errors.New("failed to fetch doctors")
	ErrLoadSuperseded       = errors.New("doctor load superseded by a newer load")
)

type DoctorDirectoryUsecase interface {
	Load(ctx context.Context) error
	Reload(ctx context.Context) error
	Status(ctx context.Context) *dto.DirectoryStatusResponse
	SearchDoctors(ctx context.Context, filter entity.DoctorFilter) (*dto.DoctorListResponse, error)
	ApplyFilterChange(ctx context.Context, filter entity.DoctorFilter, update entity.FilterUpdate) (*dto.DoctorListResponse, error)
	GetSpecialties(ctx context.Context) (*dto.SpecialtyListResponse, error)
	GetSuggestions(ctx context.Context, query string) (*dto.SuggestionResponse, error)
	GetDoctor(ctx context.Context, doctorID int) (*dto.DoctorResponse, error)
	FindDoctor(ctx context.Context, doctorID int) (*entity.Doctor, error)
}

type doctorDirectoryUsecase struct {
	log        *logrus.Logger
	doctorRepo repository.DoctorRepository
	metrics    *metrics.DirectoryMetrics

	mu         sync.RWMutex
	status     entity.DirectoryStatus
	doctors    []entity.Doctor
	lastErr    error
	generation uint64
	cancel     context.CancelFunc
}

func NewDoctorDirectoryUsecase(
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	m *metrics.DirectoryMetrics,
) DoctorDirectoryUsecase {
	return &doctorDirectoryUsecase{
		log:        log,
		doctorRepo: doctorRepo,
		metrics:    m,
		status:     entity.DirectoryIdle,
	}
}

// Load fetches the doctor list and replaces the loaded one.
//
// A Load started while another is in flight cancels the older one; the older
// call returns ErrLoadSuperseded and its result is discarded. A failed first
// load leaves the directory empty, a failed reload keeps the previous list but
// marks the directory as failed until the next successful load. A load
// cancelled by its caller is not a fetch failure: the previous state is
// restored and ctx's error is returned.
func (u *doctorDirectoryUsecase) Load(ctx context.Context) error {
	loadCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	u.mu.Lock()
	if u.cancel != nil {
		u.cancel()
	}
	prevStatus, prevErr := u.status, u.lastErr
	if prevStatus == entity.DirectoryLoading {
		// the load that set it was just cancelled above
		prevStatus, prevErr = u.settledStatus(), nil
	}
	u.generation++
	gen := u.generation
	u.cancel = cancel
	u.status = entity.DirectoryLoading
	u.lastErr = nil
	u.mu.Unlock()

	doctors, err := u.doctorRepo.FindAll(loadCtx)

	u.mu.Lock()
	defer u.mu.Unlock()

	if gen != u.generation {
		return ErrLoadSuperseded
	}
	u.cancel = nil

	if err != nil && errors.Is(ctx.Err(), context.Canceled) {
		u.log.Warnf("Doctor load abandoned by caller: %v", ctx.Err())
		u.status = prevStatus
		u.lastErr = prevErr
		return ctx.Err()
	}

	if err != nil {
		u.log.Warnf("Failed to load doctors: %+v", err)
		u.status = entity.DirectoryFailed
		u.lastErr = err
		return fmt.Errorf("%w: %w", ErrDirectoryUnavailable, err)
	}

	u.doctors = doctors
	u.status = entity.DirectoryReady
	u.metrics.SetDoctorsLoaded(len(doctors))
	u.log.Infof("Doctor directory loaded: %d doctors", len(doctors))
	return nil
}

// Reload is the retry action. It drops any cached copy of the list before loading
// so the provider is always asked again.
func (u *doctorDirectoryUsecase) Reload(ctx context.Context) error {
	if invalidator, ok := u.doctorRepo.(repository.DoctorCacheInvalidator); ok {
		if err := invalidator.Invalidate(ctx); err != nil {
			u.log.Warnf("Reloading without cache invalidation: %+v", err)
		}
	}
	return u.Load(ctx)
}

func (u *doctorDirectoryUsecase) Status(ctx context.Context) *dto.DirectoryStatusResponse {
	u.mu.RLock()
	defer u.mu.RUnlock()

	resp := &dto.DirectoryStatusResponse{
		Status: string(u.status),
		Total:  len(u.doctors),
	}
	if u.lastErr != nil {
		resp.LastError = u.lastErr.Error()
	}
	return resp
}

func (u *doctorDirectoryUsecase) SearchDoctors(ctx context.Context, filter entity.DoctorFilter) (*dto.DoctorListResponse, error) {
	doctors, err := u.snapshot()
	if err != nil {
		return nil, err
	}

	results := service.FilterDoctors(doctors, filter)

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(results),
		Total:   len(results),
		Filter:  converter.FilterToDTO(filter),
		Query:   converter.FilterToQuery(filter).Encode(),
	}, nil
}

func (u *doctorDirectoryUsecase) ApplyFilterChange(ctx context.Context, filter entity.DoctorFilter, update entity.FilterUpdate) (*dto.DoctorListResponse, error) {
	return u.SearchDoctors(ctx, update.Apply(filter))
}

func (u *doctorDirectoryUsecase) GetSpecialties(ctx context.Context) (*dto.SpecialtyListResponse, error) {
	doctors, err := u.snapshot()
	if err != nil {
		return nil, err
	}

	specialties := service.GetAllSpecialties(doctors)

	return &dto.SpecialtyListResponse{
		Specialties: specialties,
		Total:       len(specialties),
	}, nil
}

func (u *doctorDirectoryUsecase) GetSuggestions(ctx context.Context, query string) (*dto.SuggestionResponse, error) {
	doctors, err := u.snapshot()
	if err != nil {
		return nil, err
	}

	return &dto.SuggestionResponse{
		Query:       query,
		Suggestions: service.SuggestDoctorNames(doctors, query),
	}, nil
}

func (u *doctorDirectoryUsecase) GetDoctor(ctx context.Context, doctorID int) (*dto.DoctorResponse, error) {
	doctor, err := u.FindDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorDirectoryUsecase) FindDoctor(ctx context.Context, doctorID int) (*entity.Doctor, error) {
	doctors, err := u.snapshot()
	if err != nil {
		return nil, err
	}

	for i := range doctors {
		if doctors[i].ID == doctorID {
			doctor := doctors[i]
			return &doctor, nil
		}
	}
	return nil, ErrDoctorNotFound
}

// settledStatus is the status to fall back to when no load is in flight
func (u *doctorDirectoryUsecase) settledStatus() entity.DirectoryStatus {
	if u.doctors != nil {
		return entity.DirectoryReady
	}
	return entity.DirectoryIdle
}

// snapshot returns the loaded list, or why it cannot be served yet.
// The returned slice is shared and must not be modified.
func (u *doctorDirectoryUsecase) snapshot() ([]entity.Doctor, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	switch u.status {
	case entity.DirectoryReady:
		return u.doctors, nil
	case entity.DirectoryFailed:
		return nil, fmt.Errorf("%w: %w", ErrDirectoryUnavailable, u.lastErr)
	default:
		return nil, ErrDirectoryLoading
	}
}
