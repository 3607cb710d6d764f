package model

import (
	"math"
	"time"
)

// ReviewJob is one queue row: a single order's pending or completed
// review-email workflow.
type ReviewJob struct {
	ID        int64      `json:"id"`
	OrderID   string     `json:"order_id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	CreatedAt time.Time  `json:"created_at"`
	SendAfter time.Time  `json:"send_after"`
	Canceled  bool       `json:"canceled"`
	SentAt    *time.Time `json:"sent_at"`
	LastError *string    `json:"last_error"`

	ProviderMessageID *string `json:"provider_message_id"`

	HasInteraction        bool       `json:"has_interaction"`
	ReminderSentAt        *time.Time `json:"reminder_sent_at"`
	ReminderCount         int        `json:"reminder_count"`
	ReminderBlockedReason *string    `json:"reminder_blocked_reason"`
}

// Status is the derived state of a job. It is never stored; both the admin
// listing and the selectors derive it from the row fields through
// DeriveStatus so the two cannot drift apart.
type Status string

const (
	StatusCanceled      Status = "canceled"
	StatusError         Status = "error"
	StatusSentWithError Status = "sent-with-error"
	StatusSent          Status = "sent"
	StatusDue           Status = "due"
	StatusScheduled     Status = "scheduled"
)

// Valid reports whether s is one of the known derived statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusCanceled, StatusError, StatusSentWithError, StatusSent, StatusDue, StatusScheduled:
		return true
	}
	return false
}

// DeriveStatus computes the derived status of a job at the given time.
func DeriveStatus(j ReviewJob, now time.Time) Status {
	switch {
	case j.Canceled:
		return StatusCanceled
	case j.LastError != nil && j.SentAt == nil:
		return StatusError
	case j.LastError != nil && j.SentAt != nil:
		return StatusSentWithError
	case j.SentAt != nil:
		return StatusSent
	case !j.SendAfter.After(now):
		return StatusDue
	default:
		return StatusScheduled
	}
}

// DaysBetween returns the fractional number of days from start to end.
// A zero start or end yields +Inf, so callers treating the result as a
// dwell time will never consider such a row inside the reminder window.
func DaysBetween(start, end time.Time) float64 {
	if start.IsZero() || end.IsZero() {
		return math.Inf(1)
	}
	return end.Sub(start).Hours() / 24
}
