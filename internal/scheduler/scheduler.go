// Package scheduler drives the queue: a fixed-interval tick that runs the
// first-send phase and then the reminder phase over the current batches.
package scheduler

import (
	"context"
	"strings"
	"time"

	"github.com/wb-go/wbf/zlog"

	"github.com/simonnirfalk/review-mails/internal/metrics"
	"github.com/simonnirfalk/review-mails/internal/model"
)

//go:generate mockgen -source=scheduler.go -destination=../mocks/scheduler/mock.go -package=mocks
type reviewService interface {
	DueJobs(ctx context.Context, now time.Time) ([]model.ReviewJob, error)
	ReminderCandidates(ctx context.Context, now time.Time, minDays float64) ([]model.ReviewJob, error)
	SendFirst(ctx context.Context, job model.ReviewJob) error
	SendReminder(ctx context.Context, job model.ReviewJob) error
}

// Config holds the scheduling and reminder-window settings.
type Config struct {
	Interval time.Duration

	ReminderMinDays float64
	ReminderMaxDays float64

	// AllowlistEnabled restricts reminders to the listed addresses while the
	// reminder flow is being rolled out. An empty list restricts nothing, and
	// first sends are never restricted.
	AllowlistEnabled bool
	Allowlist        []string
}

// Scheduler is the single timer loop of the process.
type Scheduler struct {
	service   reviewService
	cfg       Config
	allowlist map[string]struct{}
}

func New(service reviewService, cfg Config) *Scheduler {
	if cfg.Interval <= 0 {
		cfg.Interval = time.Minute
	}

	allowlist := make(map[string]struct{}, len(cfg.Allowlist))
	for _, e := range cfg.Allowlist {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			allowlist[e] = struct{}{}
		}
	}

	return &Scheduler{service: service, cfg: cfg, allowlist: allowlist}
}

// Run ticks until the context is canceled. A failed tick never stops the
// loop; the next interval retries everything still eligible.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	zlog.Logger.Info().Dur("interval", s.cfg.Interval).Msg("scheduler started")

	for {
		select {
		case <-ctx.Done():
			zlog.Logger.Info().Msg("scheduler stopped")
			return
		case <-ticker.C:
			s.Tick(ctx, time.Now())
		}
	}
}

// Tick runs one iteration: first sends, then reminders. A top-level failure
// in the first-send phase skips the reminder phase for this tick only.
func (s *Scheduler) Tick(ctx context.Context, now time.Time) {
	if err := s.sendDue(ctx, now); err != nil {
		zlog.Logger.Error().Err(err).Msg("first-send phase failed, skipping reminders this tick")
		metrics.SchedulerTicksTotal.WithLabelValues("error").Inc()
		return
	}

	s.sendReminders(ctx, now)
	metrics.SchedulerTicksTotal.WithLabelValues("ok").Inc()
}

func (s *Scheduler) sendDue(ctx context.Context, now time.Time) error {
	jobs, err := s.service.DueJobs(ctx, now)
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		return nil
	}

	zlog.Logger.Info().Int("count", len(jobs)).Msg("sending first review mails")

	for _, job := range jobs {
		// Row failures are recorded by the service; the rest of the batch
		// still gets its turn.
		if err := s.service.SendFirst(ctx, job); err != nil {
			zlog.Logger.Error().Err(err).Str("order_id", job.OrderID).Msg("first send failed")
		}
	}

	return nil
}

func (s *Scheduler) sendReminders(ctx context.Context, now time.Time) {
	candidates, err := s.service.ReminderCandidates(ctx, now, s.cfg.ReminderMinDays)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("reminder phase failed")
		return
	}
	if len(candidates) == 0 {
		return
	}

	zlog.Logger.Info().
		Int("candidates", len(candidates)).
		Float64("min_days", s.cfg.ReminderMinDays).
		Float64("max_days", s.cfg.ReminderMaxDays).
		Bool("allowlist_enabled", s.cfg.AllowlistEnabled).
		Msg("found reminder candidates")

	for _, job := range candidates {
		var sentAt time.Time
		if job.SentAt != nil {
			sentAt = *job.SentAt
		}

		// Same day arithmetic as the min-days SQL gate, so the two bounds
		// of the window cannot skew.
		days := model.DaysBetween(sentAt, now)
		if days > s.cfg.ReminderMaxDays {
			zlog.Logger.Info().Int64("id", job.ID).Str("email", job.Email).Float64("days", days).
				Msg("reminder window passed, skipping")
			continue
		}

		if !s.reminderAllowed(job.Email) {
			zlog.Logger.Info().Int64("id", job.ID).Str("email", job.Email).
				Msg("reminder skipped by allowlist")
			continue
		}

		if err := s.service.SendReminder(ctx, job); err != nil {
			// reminder_sent_at and reminder_count stay untouched, so the
			// row is retried while it remains inside the window.
			zlog.Logger.Error().Err(err).Str("order_id", job.OrderID).Msg("reminder send failed")
		}
	}
}

// reminderAllowed gates reminders on the rollout allow-list. A disabled or
// empty list passes everyone; only a non-empty list restricts.
func (s *Scheduler) reminderAllowed(email string) bool {
	if !s.cfg.AllowlistEnabled || len(s.allowlist) == 0 {
		return true
	}
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" {
		return false
	}
	_, ok := s.allowlist[normalized]
	return ok
}
