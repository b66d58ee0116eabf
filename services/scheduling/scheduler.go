// File: services/scheduling/scheduler.go
package scheduling

import (
	"context"
	"time"

	businessRepo "meetly/database/repository/business"
	meetingRepo "meetly/database/repository/meeting"
	serviceRepo "meetly/database/repository/service"
	"meetly/models"
	"meetly/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultMeetingScheduler implements MeetingScheduler against the injected
// repositories.
type DefaultMeetingScheduler struct {
	Meetings   meetingRepo.MeetingRepository
	Services   serviceRepo.ServiceRepository
	Businesses businessRepo.BusinessRepository

	// Locker is optional. When set, Create and Update hold a per-business
	// lock across the overlap check and the write; when unset (or when
	// acquisition fails) the check-then-write window is unguarded.
	Locker Locker

	// Reminders is optional; reminder enqueue failures are logged, never
	// surfaced.
	Reminders ReminderScheduler

	// Location is the business-local timezone for weekday derivation and
	// time-of-day extraction. Defaults to UTC.
	Location *time.Location
}

func (s *DefaultMeetingScheduler) location() *time.Location {
	if s.Location == nil {
		return time.UTC
	}
	return s.Location
}

// lock acquires the per-business scheduling lock if a Locker is configured.
// Acquisition failure degrades to the unlocked path with a warning rather
// than failing the request.
func (s *DefaultMeetingScheduler) lock(ctx context.Context, businessID string) func() {
	if s.Locker == nil {
		return func() {}
	}
	release, err := s.Locker.Acquire(ctx, businessID)
	if err != nil {
		utils.GetLogger().Warn("scheduling lock unavailable, proceeding unlocked",
			zap.String("business_id", businessID), zap.Error(err))
		return func() {}
	}
	return release
}

// Get returns all meetings.
func (s *DefaultMeetingScheduler) Get(ctx context.Context) ([]models.Meeting, error) {
	meetings, err := s.Meetings.Find(ctx, meetingRepo.MeetingFilter{})
	if err != nil {
		return nil, asDomainError(err)
	}
	return meetings, nil
}

// GetByID returns a single meeting.
func (s *DefaultMeetingScheduler) GetByID(ctx context.Context, id string) (*models.Meeting, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	meeting, err := s.Meetings.FindByID(ctx, id)
	if err != nil {
		return nil, asDomainError(err)
	}
	return meeting, nil
}

// GetByBusinessID returns all meetings booked against a business.
func (s *DefaultMeetingScheduler) GetByBusinessID(ctx context.Context, businessID string) ([]models.Meeting, error) {
	if err := requireID(businessID); err != nil {
		return nil, err
	}
	meetings, err := s.Meetings.Find(ctx, meetingRepo.MeetingFilter{BusinessID: businessID})
	if err != nil {
		return nil, asDomainError(err)
	}
	return meetings, nil
}

// GetByServiceID returns all meetings referencing a service.
func (s *DefaultMeetingScheduler) GetByServiceID(ctx context.Context, serviceID string) ([]models.Meeting, error) {
	if err := requireID(serviceID); err != nil {
		return nil, err
	}
	meetings, err := s.Meetings.Find(ctx, meetingRepo.MeetingFilter{ServiceID: serviceID})
	if err != nil {
		return nil, asDomainError(err)
	}
	return meetings, nil
}

// Create books a meeting for the given service starting at startDate. The
// interval is derived from the service's duration, checked against the
// owning business's opening hours, then against every existing meeting of
// that business. Any overlap rejects the booking.
func (s *DefaultMeetingScheduler) Create(ctx context.Context, serviceID string, startDate time.Time, userID string) (*models.MeetingResponse, error) {
	if serviceID == "" || startDate.IsZero() {
		return nil, utils.ErrMissingFields()
	}
	if err := requireID(serviceID); err != nil {
		return nil, err
	}

	service, err := s.Services.GetByID(ctx, serviceID)
	if err != nil {
		return nil, asDomainError(err)
	}

	candidate, err := BuildInterval(startDate, service.TimeInMinutes)
	if err != nil {
		return nil, err
	}

	business, err := s.Businesses.GetByID(ctx, service.BusinessID)
	if err != nil {
		return nil, asDomainError(err)
	}
	if err := WithinOpeningHours(business.OpeningHours, candidate, s.location()); err != nil {
		return nil, err
	}

	release := s.lock(ctx, service.BusinessID)
	defer release()

	existing, err := s.Meetings.FindOverlapping(ctx, service.BusinessID, candidate)
	if err != nil {
		return nil, asDomainError(err)
	}
	if len(existing) > 0 {
		return nil, utils.ErrDataAlreadyExists("requested time overlaps an existing meeting")
	}

	meeting := &models.Meeting{
		ID:         uuid.New().String(),
		ServiceID:  serviceID,
		BusinessID: service.BusinessID,
		UserID:     userID,
		StartDate:  candidate.Start,
		EndDate:    candidate.End,
		CreatedAt:  time.Now(),
	}
	if err := s.Meetings.Create(ctx, meeting); err != nil {
		return nil, asDomainError(err)
	}

	if s.Reminders != nil {
		if err := s.Reminders.ScheduleReminder(ctx, meeting); err != nil {
			utils.GetLogger().Warn("failed to schedule reminder",
				zap.String("meeting_id", meeting.ID), zap.Error(err))
		}
	}

	resp := models.ToMeetingResponse(meeting)
	return &resp, nil
}

// Update moves an existing meeting to a new start. The original duration is
// preserved from the stored end-start difference, so a later change to the
// service's duration never resizes booked meetings. The meeting trivially
// overlaps itself before it moves; only overlaps with a different meeting id
// count as conflicts.
func (s *DefaultMeetingScheduler) Update(ctx context.Context, meetingID string, newStart time.Time) (*models.MeetingResponse, error) {
	if err := requireID(meetingID); err != nil {
		return nil, err
	}
	if newStart.IsZero() {
		return nil, utils.ErrValidation("invalid start date")
	}

	meeting, err := s.Meetings.FindByID(ctx, meetingID)
	if err != nil {
		return nil, asDomainError(err)
	}

	durationMinutes := int(meeting.EndDate.Sub(meeting.StartDate) / time.Minute)
	candidate, err := BuildInterval(newStart, durationMinutes)
	if err != nil {
		return nil, err
	}

	business, err := s.Businesses.GetByID(ctx, meeting.BusinessID)
	if err != nil {
		return nil, asDomainError(err)
	}
	if err := WithinOpeningHours(business.OpeningHours, candidate, s.location()); err != nil {
		return nil, err
	}

	release := s.lock(ctx, meeting.BusinessID)
	defer release()

	existing, err := s.Meetings.FindOverlapping(ctx, meeting.BusinessID, candidate)
	if err != nil {
		return nil, asDomainError(err)
	}
	for _, other := range existing {
		if other.ID != meeting.ID {
			return nil, utils.ErrDataAlreadyExists("requested time overlaps an existing meeting")
		}
	}

	updated, err := s.Meetings.UpdateDatesByID(ctx, meetingID, candidate.Start, candidate.End)
	if err != nil {
		return nil, asDomainError(err)
	}

	resp := models.ToMeetingResponse(updated)
	return &resp, nil
}

// Delete removes a single meeting.
func (s *DefaultMeetingScheduler) Delete(ctx context.Context, meetingID string) error {
	if err := requireID(meetingID); err != nil {
		return err
	}
	if _, err := s.Meetings.FindByID(ctx, meetingID); err != nil {
		return asDomainError(err)
	}
	if err := s.Meetings.DeleteByID(ctx, meetingID); err != nil {
		return asDomainError(err)
	}
	return nil
}

// DeleteByServiceID bulk-removes every meeting referencing the service.
// Used by the cascade when a service is deleted; zero matches is fine.
func (s *DefaultMeetingScheduler) DeleteByServiceID(ctx context.Context, serviceID string) error {
	if err := requireID(serviceID); err != nil {
		return err
	}
	if err := s.Meetings.DeleteMany(ctx, meetingRepo.MeetingFilter{ServiceID: serviceID}); err != nil {
		return asDomainError(err)
	}
	return nil
}

// DeleteByBusinessID bulk-removes every meeting referencing the business.
// Used by the cascade when a business is deleted; zero matches is fine.
func (s *DefaultMeetingScheduler) DeleteByBusinessID(ctx context.Context, businessID string) error {
	if err := requireID(businessID); err != nil {
		return err
	}
	if err := s.Meetings.DeleteMany(ctx, meetingRepo.MeetingFilter{BusinessID: businessID}); err != nil {
		return asDomainError(err)
	}
	return nil
}
