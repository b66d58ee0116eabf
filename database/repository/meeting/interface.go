// File: database/repository/meeting/interface.go
package meetingRepo

import (
	"context"
	"time"

	"meetly/models"
)

// MeetingFilter narrows bulk queries and deletes by foreign key. Zero-value
// fields are ignored.
type MeetingFilter struct {
	BusinessID string
	ServiceID  string
	UserID     string
}

type MeetingRepository interface {
	Find(ctx context.Context, filter MeetingFilter) ([]models.Meeting, error)
	FindByID(ctx context.Context, id string) (*models.Meeting, error)
	FindOverlapping(ctx context.Context, businessID string, candidate models.Interval) ([]models.Meeting, error)
	Create(ctx context.Context, meeting *models.Meeting) error
	UpdateDatesByID(ctx context.Context, id string, start, end time.Time) (*models.Meeting, error)
	DeleteByID(ctx context.Context, id string) error
	DeleteMany(ctx context.Context, filter MeetingFilter) error
}
