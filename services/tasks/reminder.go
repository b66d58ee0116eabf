package tasks

import (
	"context"
	"encoding/json"
	"time"

	"meetly/config"
	"meetly/models"

	"github.com/hibiken/asynq"
)

const TypeSendReminder = "reminder:send"

func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// AsynqReminderScheduler enqueues reminder tasks for booked meetings.
type AsynqReminderScheduler struct {
	Client *asynq.Client
	Lead   time.Duration
}

func NewAsynqReminderScheduler() *AsynqReminderScheduler {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	return &AsynqReminderScheduler{
		Client: client,
		Lead:   time.Duration(config.AppConfig.ReminderLeadMinutes) * time.Minute,
	}
}

// ScheduleReminder enqueues a reminder to fire ahead of the meeting start.
// Meetings starting too soon for the lead window get no reminder.
func (s *AsynqReminderScheduler) ScheduleReminder(ctx context.Context, meeting *models.Meeting) error {
	fireAt := meeting.StartDate.Add(-s.Lead)
	if fireAt.Before(time.Now()) {
		return nil
	}

	payload := models.ReminderPayload{
		MeetingID:  meeting.ID,
		ServiceID:  meeting.ServiceID,
		BusinessID: meeting.BusinessID,
		UserID:     meeting.UserID,
		StartDate:  meeting.StartDate,
	}
	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return err
	}
	_, err = s.Client.EnqueueContext(ctx, task, opts...)
	return err
}
