// File: services/catalog/catalog.go
package catalog

import (
	"context"
	"errors"

	serviceRepo "meetly/database/repository/service"
	"meetly/models"
	"meetly/services/scheduling"
	"meetly/utils"

	"github.com/google/uuid"
)

// CatalogService exposes the service lookups the scheduler depends on, plus
// deletion with its meeting cascade. General service CRUD lives elsewhere.
type CatalogService interface {
	GetByID(ctx context.Context, id string) (*models.Service, error)
	Delete(ctx context.Context, id string) error
	DeleteByBusinessID(ctx context.Context, businessID string) error
}

type DefaultCatalogService struct {
	Repo      serviceRepo.ServiceRepository
	Scheduler scheduling.MeetingScheduler
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

// GetByID returns the service; its duration and owning business drive
// meeting interval construction.
func (s *DefaultCatalogService) GetByID(ctx context.Context, id string) (*models.Service, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	service, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrNotFound) {
			return nil, utils.ErrNotFound("service not found")
		}
		return nil, utils.ErrDatabase(err)
	}
	return service, nil
}

// Delete removes a service and cascades to every meeting booked against it.
func (s *DefaultCatalogService) Delete(ctx context.Context, id string) error {
	if err := requireID(id); err != nil {
		return err
	}
	if err := s.Repo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, serviceRepo.ErrNotFound) {
			return utils.ErrNotFound("service not found")
		}
		return utils.ErrDatabase(err)
	}
	return s.Scheduler.DeleteByServiceID(ctx, id)
}

// DeleteByBusinessID removes every service owned by a business; part of the
// business-deletion cascade.
func (s *DefaultCatalogService) DeleteByBusinessID(ctx context.Context, businessID string) error {
	if err := requireID(businessID); err != nil {
		return err
	}
	if err := s.Repo.DeleteByBusinessID(ctx, businessID); err != nil {
		return utils.ErrDatabase(err)
	}
	return nil
}
