package repository

import (
	"context"
	"errors"
	"time"

	"go-doctor-directory/internal/domain/entity"
	domainRepo "go-doctor-directory/internal/domain/repository"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const RedisDoctorListKey = "directory:doctors"

type cachedDoctorRepository struct {
	next        domainRepo.DoctorRepository
	redisClient *redis.Client
	ttl         time.Duration
	log         *logrus.Logger
}

// NewCachedDoctorRepository keeps the normalized list in Redis for ttl.
// Redis failures are logged and fall through to next.
func NewCachedDoctorRepository(next domainRepo.DoctorRepository, redisClient *redis.Client, ttl time.Duration, log *logrus.Logger) domainRepo.DoctorRepository {
	return &cachedDoctorRepository{
		next:        next,
		redisClient: redisClient,
		ttl:         ttl,
		log:         log,
	}
}

func (r *cachedDoctorRepository) FindAll(ctx context.Context) ([]entity.Doctor, error) {
	cached, err := r.redisClient.Get(ctx, RedisDoctorListKey).Bytes()
	switch {
	case err == nil:
		var doctors []entity.Doctor
		if err := json.Unmarshal(cached, &doctors); err == nil {
			r.log.Debugf("Loaded %d doctors from cache", len(doctors))
			return doctors, nil
		}
		r.log.Warnf("Discarding unreadable doctor cache entry: %+v", err)
	case !errors.Is(err, redis.Nil):
		r.log.Warnf("Failed to read doctor cache: %+v", err)
	}

	doctors, err := r.next.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(doctors)
	if err != nil {
		r.log.Warnf("Failed to encode doctor cache entry: %+v", err)
		return doctors, nil
	}
	if err := r.redisClient.Set(ctx, RedisDoctorListKey, payload, r.ttl).Err(); err != nil {
		r.log.Warnf("Failed to write doctor cache: %+v", err)
	}

	return doctors, nil
}

func (r *cachedDoctorRepository) Invalidate(ctx context.Context) error {
	if err := r.redisClient.Del(ctx, RedisDoctorListKey).Err(); err != nil {
		r.log.Warnf("Failed to invalidate doctor cache: %+v", err)
		return err
	}
	return nil
}
