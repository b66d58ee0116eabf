// File: database/repository/service/interface.go
package serviceRepo

import (
	"context"

	"meetly/models"
)

type ServiceRepository interface {
	Find(ctx context.Context) ([]models.Service, error)
	GetByID(ctx context.Context, id string) (*models.Service, error)
	Create(ctx context.Context, service *models.Service) error
	DeleteByID(ctx context.Context, id string) error
	DeleteByBusinessID(ctx context.Context, businessID string) error
}
