package queue

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/simonnirfalk/review-mails/internal/model"
)

// Timestamps are stored as RFC3339 UTC text. SQLite's datetime functions
// accept the format directly and the strings sort chronologically, so the
// selectors can compare them without conversion.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func parseTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	// CURRENT_TIMESTAMP default on legacy rows
	t, err := time.ParseInLocation(time.DateTime, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	return t, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJob(row rowScanner) (model.ReviewJob, error) {
	var (
		j                 model.ReviewJob
		name              sql.NullString
		createdAt         string
		sendAfter         string
		sentAt            sql.NullString
		lastError         sql.NullString
		providerMessageID sql.NullString
		reminderSentAt    sql.NullString
		blockedReason     sql.NullString
	)

	err := row.Scan(
		&j.ID, &j.OrderID, &j.Email, &name, &createdAt, &sendAfter, &j.Canceled,
		&sentAt, &lastError, &providerMessageID, &j.HasInteraction,
		&reminderSentAt, &j.ReminderCount, &blockedReason,
	)
	if err != nil {
		return model.ReviewJob{}, err
	}

	j.Name = name.String

	if j.CreatedAt, err = parseTime(createdAt); err != nil {
		return model.ReviewJob{}, err
	}
	if j.SendAfter, err = parseTime(sendAfter); err != nil {
		return model.ReviewJob{}, err
	}
	if j.SentAt, err = parseNullTime(sentAt); err != nil {
		return model.ReviewJob{}, err
	}
	if j.ReminderSentAt, err = parseNullTime(reminderSentAt); err != nil {
		return model.ReviewJob{}, err
	}

	j.LastError = stringPtr(lastError)
	j.ProviderMessageID = stringPtr(providerMessageID)
	j.ReminderBlockedReason = stringPtr(blockedReason)

	return j, nil
}

func collectJobs(rows *sql.Rows) ([]model.ReviewJob, error) {
	var jobs []model.ReviewJob
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("scan job row: %w", err)
		}
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return jobs, nil
}

func parseNullTime(s sql.NullString) (*time.Time, error) {
	if !s.Valid {
		return nil, nil
	}
	t, err := parseTime(s.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func stringPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}
