package jobs

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskTypeSendEmail is the task type for sending transactional emails.
	TaskTypeSendEmail = "mail:send"
)

// SendEmailPayload describes the information required to send an email.
type SendEmailPayload struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// NewSendEmailTask constructs an Asynq task.
func NewSendEmailTask(payload SendEmailPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskTypeSendEmail, data), nil
}

// NewUserConfirmationTask builds the registration confirmation email task.
func NewUserConfirmationTask(email, username string) (*asynq.Task, error) {
	return NewSendEmailTask(SendEmailPayload{
		To:      email,
		Subject: "Confirm your account",
		Body: fmt.Sprintf(
			"Hello %s,\r\n\r\nWelcome to Simple Twitter. Confirm your account to start posting.\r\n",
			username),
	})
}

// NewSendEmailHandler returns the Asynq handler for TaskTypeSendEmail backed
// by the given sender.
func NewSendEmailHandler(sender EmailSender) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload SendEmailPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return asynq.SkipRetry
		}
		return sender.Send(ctx, payload.To, payload.Subject, payload.Body)
	}
}
