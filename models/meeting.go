package models

import "time"

// Meeting represents a booked meeting record.
type Meeting struct {
	ID         string    `bson:"id" json:"id"`                   // Unique meeting identifier (UUID)
	ServiceID  string    `bson:"service_id" json:"service_id"`   // Service being booked
	BusinessID string    `bson:"business_id" json:"business_id"` // Denormalized from the service at creation time
	UserID     string    `bson:"user_id" json:"user_id"`         // User who booked the meeting
	StartDate  time.Time `bson:"start_date" json:"start_date"`   // Meeting start instant
	EndDate    time.Time `bson:"end_date" json:"end_date"`       // Meeting end instant (exclusive)
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`   // Timestamp when the meeting was created
}

// MeetingResponse is the lean projection returned to clients.
type MeetingResponse struct {
	ID        string    `json:"id"`
	ServiceID string    `json:"serviceId"`
	Date      time.Time `json:"date"`
}

// ToMeetingResponse projects a persisted meeting to its response shape.
func ToMeetingResponse(m *Meeting) MeetingResponse {
	return MeetingResponse{
		ID:        m.ID,
		ServiceID: m.ServiceID,
		Date:      m.StartDate,
	}
}
