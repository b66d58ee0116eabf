// File: services/business/business.go
package business

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	businessRepo "meetly/database/repository/business"
	"meetly/models"
	"meetly/services/catalog"
	"meetly/services/scheduling"
	"meetly/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const businessCacheTTL = 5 * time.Minute

// BusinessService covers what the scheduling core needs from businesses:
// declaring the weekly schedule and deleting with a full cascade.
type BusinessService interface {
	GetByID(ctx context.Context, id string) (*models.Business, error)
	SetOpeningHours(ctx context.Context, id string, hours []models.OpeningHours) (*models.Business, error)
	Delete(ctx context.Context, id string) error
}

type DefaultBusinessService struct {
	Repo      businessRepo.BusinessRepository
	Catalog   catalog.CatalogService
	Scheduler scheduling.MeetingScheduler

	// Cache is optional; when set, business documents are served
	// read-through with invalidation on every write.
	Cache *redis.Client
}

func cacheKey(id string) string {
	return "business:" + id
}

func (s *DefaultBusinessService) cached(ctx context.Context, id string) *models.Business {
	if s.Cache == nil {
		return nil
	}
	data, err := s.Cache.Get(ctx, cacheKey(id)).Bytes()
	if err != nil {
		return nil
	}
	var b models.Business
	if err := json.Unmarshal(data, &b); err != nil {
		return nil
	}
	return &b
}

func (s *DefaultBusinessService) cache(ctx context.Context, b *models.Business) {
	if s.Cache == nil {
		return
	}
	data, err := json.Marshal(b)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, cacheKey(b.ID), data, businessCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache business", zap.String("business_id", b.ID), zap.Error(err))
	}
}

func (s *DefaultBusinessService) invalidate(ctx context.Context, id string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, cacheKey(id)).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate business cache", zap.String("business_id", id), zap.Error(err))
	}
}

func requireID(id string) error {
	if id == "" {
		return utils.ErrMissingFields()
	}
	if _, err := uuid.Parse(id); err != nil {
		return utils.ErrValidation("malformed id")
	}
	return nil
}

func (s *DefaultBusinessService) GetByID(ctx context.Context, id string) (*models.Business, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	if b := s.cached(ctx, id); b != nil {
		return b, nil
	}
	b, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, businessRepo.ErrNotFound) {
			return nil, utils.ErrNotFound("business not found")
		}
		return nil, utils.ErrDatabase(err)
	}
	s.cache(ctx, b)
	return b, nil
}

// SetOpeningHours validates and replaces the weekly schedule.
func (s *DefaultBusinessService) SetOpeningHours(ctx context.Context, id string, hours []models.OpeningHours) (*models.Business, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	if err := scheduling.ValidateOpeningHours(hours); err != nil {
		return nil, err
	}
	updated, err := s.Repo.UpdateOpeningHours(ctx, id, hours)
	if err != nil {
		if errors.Is(err, businessRepo.ErrNotFound) {
			return nil, utils.ErrNotFound("business not found")
		}
		return nil, utils.ErrDatabase(err)
	}
	s.invalidate(ctx, id)
	return updated, nil
}

// Delete removes a business and cascades to its services and meetings.
func (s *DefaultBusinessService) Delete(ctx context.Context, id string) error {
	if err := requireID(id); err != nil {
		return err
	}
	if err := s.Repo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, businessRepo.ErrNotFound) {
			return utils.ErrNotFound("business not found")
		}
		return utils.ErrDatabase(err)
	}
	s.invalidate(ctx, id)
	if err := s.Catalog.DeleteByBusinessID(ctx, id); err != nil {
		return err
	}
	return s.Scheduler.DeleteByBusinessID(ctx, id)
}
