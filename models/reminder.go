package models

import "time"

// ReminderPayload is the task body for a meeting reminder.
type ReminderPayload struct {
	MeetingID  string    `json:"meeting_id"`
	ServiceID  string    `json:"service_id"`
	BusinessID string    `json:"business_id"`
	UserID     string    `json:"user_id"`
	StartDate  time.Time `json:"start_date"`
}
