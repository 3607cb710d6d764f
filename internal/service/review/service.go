// Package review implements the job lifecycle around the queue store:
// creation from order events, first sends, reminders, admin mutations.
package review

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/zlog"

	"github.com/simonnirfalk/review-mails/internal/mailer"
	"github.com/simonnirfalk/review-mails/internal/metrics"
	"github.com/simonnirfalk/review-mails/internal/model"
	"github.com/simonnirfalk/review-mails/internal/repository/queue"
	"github.com/simonnirfalk/review-mails/pkg/dandomain"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/review/mock.go -package=mocks
type jobRepo interface {
	InsertJob(ctx context.Context, in queue.JobInput) error
	MarkSent(ctx context.Context, orderID string, sentAt time.Time) error
	MarkError(ctx context.Context, orderID string, message string) error
	MarkCanceled(ctx context.Context, orderID string) error
	MarkUncanceled(ctx context.Context, orderID string) error
	MarkReminderSent(ctx context.Context, id int64, sentAt time.Time) error
	MarkInteraction(ctx context.Context, id int64, reason string) error
	SetProviderMessageID(ctx context.Context, orderID string, messageID string) error
	DueJobs(ctx context.Context, now time.Time) ([]model.ReviewJob, error)
	ReminderCandidates(ctx context.Context, now time.Time, minDays float64) ([]model.ReviewJob, error)
	GetJobByOrderID(ctx context.Context, orderID string) (model.ReviewJob, error)
	ListJobs(ctx context.Context) ([]model.ReviewJob, error)
}

type reviewMailer interface {
	SendReview(ctx context.Context, req mailer.SendRequest) (string, error)
}

type orderFetcher interface {
	OrderByID(ctx context.Context, orderID string) (*dandomain.Order, error)
}

// Service wires the queue store, the mailer and the commerce client.
type Service struct {
	repo      jobRepo
	mailer    reviewMailer
	orders    orderFetcher
	delayDays int
}

// NewService creates a review service. delayDays is how long after the order
// event the first mail goes out.
func NewService(repo jobRepo, m reviewMailer, orders orderFetcher, delayDays int) *Service {
	return &Service{repo: repo, mailer: m, orders: orders, delayDays: delayDays}
}

// QueueFromOrderEvent resolves an order id against the shop and queues a
// review job for it. Unknown orders and orders without an email are skipped
// with a log line, not treated as failures; webhooks retry on real errors
// only.
func (s *Service) QueueFromOrderEvent(ctx context.Context, orderID string) error {
	order, err := s.orders.OrderByID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("fetch order %s: %w", orderID, err)
	}
	if order == nil {
		zlog.Logger.Warn().Str("order_id", orderID).Msg("order not found via graphql")
		return nil
	}

	return s.QueueOrder(ctx, order)
}

// QueueOrder creates a queue row for an already-fetched order. Insertion is
// idempotent per order id, so replays of the same webhook are harmless.
func (s *Service) QueueOrder(ctx context.Context, order *dandomain.Order) error {
	email := order.Email()
	if email == "" {
		zlog.Logger.Warn().Str("order_id", order.ID).Msg("no email on order, skipping queue insert")
		return nil
	}

	createdAt := order.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	in := queue.JobInput{
		OrderID:   order.ID,
		Email:     email,
		Name:      order.RecipientName(),
		CreatedAt: createdAt,
		SendAfter: createdAt.Add(time.Duration(s.delayDays) * 24 * time.Hour),
	}

	if err := s.repo.InsertJob(ctx, in); err != nil {
		return fmt.Errorf("queue job for order %s: %w", order.ID, err)
	}

	metrics.JobsQueuedTotal.Inc()
	zlog.Logger.Info().Str("order_id", order.ID).Str("email", email).Msg("queued review mail")
	return nil
}

// DueJobs returns the current first-send batch.
func (s *Service) DueJobs(ctx context.Context, now time.Time) ([]model.ReviewJob, error) {
	return s.repo.DueJobs(ctx, now)
}

// ReminderCandidates returns the raw reminder batch; the scheduler applies
// the max-days and allow-list gates on top.
func (s *Service) ReminderCandidates(ctx context.Context, now time.Time, minDays float64) ([]model.ReviewJob, error) {
	return s.repo.ReminderCandidates(ctx, now, minDays)
}

// SendFirst attempts the first mail for a due job and records the outcome.
// A send failure is recorded on the row and returned; the caller decides
// whether to keep going with its batch.
func (s *Service) SendFirst(ctx context.Context, job model.ReviewJob) error {
	msgID, err := s.mailer.SendReview(ctx, mailer.SendRequest{
		ToEmail: job.Email,
		ToName:  job.Name,
		JobID:   job.ID,
	})
	if err != nil {
		metrics.MailErrorsTotal.WithLabelValues("first").Inc()
		if markErr := s.repo.MarkError(ctx, job.OrderID, err.Error()); markErr != nil {
			zlog.Logger.Error().Err(markErr).Str("order_id", job.OrderID).Msg("failed to record send error")
		}
		return fmt.Errorf("send review mail for order %s: %w", job.OrderID, err)
	}

	if err := s.repo.MarkSent(ctx, job.OrderID, time.Now()); err != nil {
		return fmt.Errorf("mark job sent for order %s: %w", job.OrderID, err)
	}

	if msgID != "" {
		if err := s.repo.SetProviderMessageID(ctx, job.OrderID, msgID); err != nil {
			zlog.Logger.Warn().Err(err).Str("order_id", job.OrderID).Msg("failed to store provider message id")
		}
	}

	metrics.MailsSentTotal.WithLabelValues("first").Inc()
	return nil
}

// SendReminder attempts the single follow-up mail. Reminder failures are
// not recorded on the row: last_error belongs to the first-send lifecycle,
// and an unmarked row is simply retried on a later tick while it stays in
// the window.
func (s *Service) SendReminder(ctx context.Context, job model.ReviewJob) error {
	_, err := s.mailer.SendReview(ctx, mailer.SendRequest{
		ToEmail:    job.Email,
		ToName:     job.Name,
		JobID:      job.ID,
		IsReminder: true,
	})
	if err != nil {
		metrics.MailErrorsTotal.WithLabelValues("reminder").Inc()
		return fmt.Errorf("send reminder for order %s: %w", job.OrderID, err)
	}

	if err := s.repo.MarkReminderSent(ctx, job.ID, time.Now()); err != nil {
		return fmt.Errorf("mark reminder sent for order %s: %w", job.OrderID, err)
	}

	metrics.MailsSentTotal.WithLabelValues("reminder").Inc()
	return nil
}

// Resend sends the review mail for an order immediately, bypassing
// send_after, any prior sent_at and the canceled flag, and records the
// outcome like a first send. The bypasses are intentional: this is the
// operator's manual override, and canceling is reversible through Uncancel
// while a suppressed resend would have no escape hatch.
func (s *Service) Resend(ctx context.Context, orderID string) error {
	job, err := s.repo.GetJobByOrderID(ctx, orderID)
	if err != nil {
		return err
	}

	return s.SendFirst(ctx, job)
}

// Cancel excludes the job from all future sending.
func (s *Service) Cancel(ctx context.Context, orderID string) error {
	return s.repo.MarkCanceled(ctx, orderID)
}

// Uncancel resets the canceled flag.
func (s *Service) Uncancel(ctx context.Context, orderID string) error {
	return s.repo.MarkUncanceled(ctx, orderID)
}

// RecordInteraction flags recipient engagement, suppressing the reminder.
func (s *Service) RecordInteraction(ctx context.Context, id int64, reason string) error {
	return s.repo.MarkInteraction(ctx, id, reason)
}

// ListJobs returns all jobs, optionally filtered by derived status.
func (s *Service) ListJobs(ctx context.Context, status model.Status, now time.Time) ([]model.ReviewJob, error) {
	jobs, err := s.repo.ListJobs(ctx)
	if err != nil {
		return nil, err
	}
	if status == "" {
		return jobs, nil
	}

	filtered := make([]model.ReviewJob, 0, len(jobs))
	for _, j := range jobs {
		if model.DeriveStatus(j, now) == status {
			filtered = append(filtered, j)
		}
	}
	return filtered, nil
}
