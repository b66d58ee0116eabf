// File: services/scheduling/errors.go
package scheduling

import (
	"errors"

	businessRepo "meetly/database/repository/business"
	meetingRepo "meetly/database/repository/meeting"
	serviceRepo "meetly/database/repository/service"
	"meetly/utils"

	"github.com/google/uuid"
)

// requireID enforces the store's id-format rule before any query is issued:
// absent ids are a missing-field error, malformed ids a validation error.
func requireID(id string) error {
	if id == "" {
		return utils.ErrMissingFields()
	}
	if _, err := uuid.Parse(id); err != nil {
		return utils.ErrValidation("malformed id")
	}
	return nil
}

// asDomainError translates repository failures into the domain taxonomy.
// Missing documents become NotFound; anything else is masked as a generic
// database error.
func asDomainError(err error) error {
	switch {
	case errors.Is(err, meetingRepo.ErrNotFound):
		return utils.ErrNotFound("meeting not found")
	case errors.Is(err, serviceRepo.ErrNotFound):
		return utils.ErrNotFound("service not found")
	case errors.Is(err, businessRepo.ErrNotFound):
		return utils.ErrNotFound("business not found")
	default:
		return utils.ErrDatabase(err)
	}
}
