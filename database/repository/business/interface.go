// File: database/repository/business/interface.go
package businessRepo

import (
	"context"

	"meetly/models"
)

type BusinessRepository interface {
	GetByID(ctx context.Context, id string) (*models.Business, error)
	Create(ctx context.Context, business *models.Business) error
	UpdateOpeningHours(ctx context.Context, id string, hours []models.OpeningHours) (*models.Business, error)
	DeleteByID(ctx context.Context, id string) error
}
