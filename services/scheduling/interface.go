// File: services/scheduling/interface.go
package scheduling

import (
	"context"
	"time"

	"meetly/models"
)

// MeetingScheduler is the orchestrator for the meeting lifecycle. Every
// write revalidates opening hours and overlap before touching the store;
// validation failures leave no record.
type MeetingScheduler interface {
	Get(ctx context.Context) ([]models.Meeting, error)
	GetByID(ctx context.Context, id string) (*models.Meeting, error)
	GetByBusinessID(ctx context.Context, businessID string) ([]models.Meeting, error)
	GetByServiceID(ctx context.Context, serviceID string) ([]models.Meeting, error)
	Create(ctx context.Context, serviceID string, startDate time.Time, userID string) (*models.MeetingResponse, error)
	Update(ctx context.Context, meetingID string, newStart time.Time) (*models.MeetingResponse, error)
	Delete(ctx context.Context, meetingID string) error
	DeleteByServiceID(ctx context.Context, serviceID string) error
	DeleteByBusinessID(ctx context.Context, businessID string) error
}

// Locker serializes the overlap-check-then-write sequence per business. An
// implementation returns a release func for the acquired lock.
type Locker interface {
	Acquire(ctx context.Context, businessID string) (func(), error)
}

// ReminderScheduler enqueues a reminder for a freshly booked meeting.
// Best-effort: failures must not fail the booking.
type ReminderScheduler interface {
	ScheduleReminder(ctx context.Context, meeting *models.Meeting) error
}
