// Package queue is the persistent review-mail queue: one SQLite row per
// order, status implied by column combinations (see model.DeriveStatus).
// Rows are never deleted; they stay behind as an audit trail.
package queue

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/simonnirfalk/review-mails/internal/model"
)

var ErrJobNotFound = errors.New("review job not found")

// maxErrorLen bounds the stored last_error message.
const maxErrorLen = 500

// batchLimit caps both selectors; earliest-due rows win when exceeded.
const batchLimit = 100

const schema = `
CREATE TABLE IF NOT EXISTS review_queue (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  order_id TEXT NOT NULL UNIQUE,
  email TEXT NOT NULL,
  name TEXT,
  created_at TEXT NOT NULL,
  send_after TEXT NOT NULL,
  canceled INTEGER NOT NULL DEFAULT 0,
  sent_at TEXT,
  last_error TEXT
);

CREATE INDEX IF NOT EXISTS idx_review_queue_send_after ON review_queue(send_after);
CREATE INDEX IF NOT EXISTS idx_review_queue_email ON review_queue(email);
`

const jobColumns = `id, order_id, email, name, created_at, send_after, canceled, sent_at, last_error,
	provider_message_id, has_interaction, reminder_sent_at, reminder_count, reminder_blocked_reason`

// Repository provides access to the review_queue table.
type Repository struct {
	db *sql.DB
}

// NewRepository wraps an already-open database handle. Schema setup is the
// caller's problem; tests use this with mock handles.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Open opens (or creates) the queue database at path, enables WAL mode and
// runs schema setup plus column migrations.
func Open(path string) (*Repository, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	r := &Repository{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return r, nil
}

// migrate adds the reminder and interaction columns to databases created
// before they existed. This is the only multi-statement transaction in the
// system; everything at runtime is single-row, single-statement.
func (r *Repository) migrate() error {
	columns := []struct {
		name string
		ddl  string
	}{
		{"provider_message_id", `ALTER TABLE review_queue ADD COLUMN provider_message_id TEXT`},
		{"has_interaction", `ALTER TABLE review_queue ADD COLUMN has_interaction INTEGER NOT NULL DEFAULT 0`},
		{"reminder_sent_at", `ALTER TABLE review_queue ADD COLUMN reminder_sent_at TEXT`},
		{"reminder_count", `ALTER TABLE review_queue ADD COLUMN reminder_count INTEGER NOT NULL DEFAULT 0`},
		{"reminder_blocked_reason", `ALTER TABLE review_queue ADD COLUMN reminder_blocked_reason TEXT`},
	}

	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, c := range columns {
		var count int
		err := tx.QueryRow(`SELECT COUNT(*) FROM pragma_table_info('review_queue') WHERE name = ?`, c.name).Scan(&count)
		if err != nil {
			return fmt.Errorf("check column %s: %w", c.name, err)
		}
		if count > 0 {
			continue
		}
		if _, err := tx.Exec(c.ddl); err != nil {
			return fmt.Errorf("add column %s: %w", c.name, err)
		}
	}

	return tx.Commit()
}

func (r *Repository) Close() error {
	return r.db.Close()
}

// Ping verifies the store is reachable. Used by the health endpoint.
func (r *Repository) Ping(ctx context.Context) error {
	var one int
	if err := r.db.QueryRowContext(ctx, `SELECT 1`).Scan(&one); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	return nil
}

// JobInput holds the fields captured at creation time. Email and name are
// never refreshed from the source system afterward.
type JobInput struct {
	OrderID   string
	Email     string
	Name      string
	CreatedAt time.Time
	SendAfter time.Time
}

// InsertJob creates a queue row for an order. A row with the same order_id
// already present makes this a silent no-op, so duplicate webhook deliveries
// are replay-safe.
func (r *Repository) InsertJob(ctx context.Context, in JobInput) error {
	query := `
		INSERT OR IGNORE INTO review_queue (order_id, email, name, created_at, send_after, canceled)
		VALUES (?, ?, ?, ?, ?, 0);
    `

	_, err := r.db.ExecContext(ctx, query,
		in.OrderID, in.Email, in.Name, formatTime(in.CreatedAt), formatTime(in.SendAfter))
	if err != nil {
		return fmt.Errorf("failed to insert job: %w", err)
	}

	return nil
}

// MarkSent records a confirmed first send and clears last_error. Calling it
// twice simply re-sets the same fields.
func (r *Repository) MarkSent(ctx context.Context, orderID string, sentAt time.Time) error {
	query := `
		UPDATE review_queue
		SET sent_at = ?, last_error = NULL
		WHERE order_id = ?;
    `

	res, err := r.db.ExecContext(ctx, query, formatTime(sentAt), orderID)
	if err != nil {
		return fmt.Errorf("failed to mark job sent: %w", err)
	}

	return requireRow(res)
}

// MarkError records the most recent first-send failure. It never touches
// sent_at; a later successful send clears the message again.
func (r *Repository) MarkError(ctx context.Context, orderID string, message string) error {
	if runes := []rune(message); len(runes) > maxErrorLen {
		message = string(runes[:maxErrorLen])
	}

	query := `
		UPDATE review_queue
		SET last_error = ?
		WHERE order_id = ?;
    `

	res, err := r.db.ExecContext(ctx, query, message, orderID)
	if err != nil {
		return fmt.Errorf("failed to mark job error: %w", err)
	}

	return requireRow(res)
}

// MarkCanceled excludes the job from both selectors permanently. No other
// field is touched: a sent job can still be canceled, which only prevents a
// future reminder.
func (r *Repository) MarkCanceled(ctx context.Context, orderID string) error {
	return r.setCanceled(ctx, orderID, 1)
}

// MarkUncanceled is the administrative reset of the canceled flag.
func (r *Repository) MarkUncanceled(ctx context.Context, orderID string) error {
	return r.setCanceled(ctx, orderID, 0)
}

func (r *Repository) setCanceled(ctx context.Context, orderID string, v int) error {
	query := `
		UPDATE review_queue
		SET canceled = ?
		WHERE order_id = ?;
    `

	res, err := r.db.ExecContext(ctx, query, v, orderID)
	if err != nil {
		return fmt.Errorf("failed to set canceled flag: %w", err)
	}

	return requireRow(res)
}

// MarkReminderSent records the single follow-up send. reminder_count only
// ever increases.
func (r *Repository) MarkReminderSent(ctx context.Context, id int64, sentAt time.Time) error {
	query := `
		UPDATE review_queue
		SET reminder_sent_at = ?, reminder_count = reminder_count + 1
		WHERE id = ?;
    `

	res, err := r.db.ExecContext(ctx, query, formatTime(sentAt), id)
	if err != nil {
		return fmt.Errorf("failed to mark reminder sent: %w", err)
	}

	return requireRow(res)
}

// MarkInteraction flags that the recipient already engaged, suppressing any
// future reminder. The blocked reason is first-write-wins.
func (r *Repository) MarkInteraction(ctx context.Context, id int64, reason string) error {
	query := `
		UPDATE review_queue
		SET has_interaction = 1,
		    reminder_blocked_reason = COALESCE(reminder_blocked_reason, ?)
		WHERE id = ?;
    `

	res, err := r.db.ExecContext(ctx, query, nullString(reason), id)
	if err != nil {
		return fmt.Errorf("failed to mark interaction: %w", err)
	}

	return requireRow(res)
}

// SetProviderMessageID stores the mail provider's message id for a job, for
// correlation with provider-side logs and engagement webhooks.
func (r *Repository) SetProviderMessageID(ctx context.Context, orderID string, messageID string) error {
	query := `
		UPDATE review_queue
		SET provider_message_id = ?
		WHERE order_id = ?;
    `

	res, err := r.db.ExecContext(ctx, query, messageID, orderID)
	if err != nil {
		return fmt.Errorf("failed to set provider message id: %w", err)
	}

	return requireRow(res)
}

// DueJobs returns up to 100 jobs whose send time has arrived, earliest-due
// first. Rows are not claimed or locked: if the process dies between the
// provider accepting a send and MarkSent, the row is returned again on the
// next poll. Delivery is at-least-once; a duplicate send is possible in that
// window.
func (r *Repository) DueJobs(ctx context.Context, now time.Time) ([]model.ReviewJob, error) {
	query := `
		SELECT ` + jobColumns + `
		FROM review_queue
		WHERE canceled = 0
		  AND sent_at IS NULL
		  AND send_after <= ?
		ORDER BY send_after ASC
		LIMIT ` + fmt.Sprint(batchLimit) + `;
    `

	rows, err := r.db.QueryContext(ctx, query, formatTime(now))
	if err != nil {
		return nil, fmt.Errorf("failed to select due jobs: %w", err)
	}
	defer rows.Close()

	return collectJobs(rows)
}

// ReminderCandidates returns up to 100 sent, uncanceled jobs without
// interaction or a prior reminder whose first mail is at least minDays old,
// ordered by sent_at ascending. The maximum-days bound is deliberately NOT
// part of this query; the scheduler applies it with the same day arithmetic
// so the two bounds cannot skew.
func (r *Repository) ReminderCandidates(ctx context.Context, now time.Time, minDays float64) ([]model.ReviewJob, error) {
	query := `
		SELECT ` + jobColumns + `
		FROM review_queue
		WHERE sent_at IS NOT NULL
		  AND canceled = 0
		  AND has_interaction = 0
		  AND reminder_count = 0
		  AND reminder_sent_at IS NULL
		  AND (julianday(?) - julianday(sent_at)) >= ?
		ORDER BY sent_at ASC
		LIMIT ` + fmt.Sprint(batchLimit) + `;
    `

	rows, err := r.db.QueryContext(ctx, query, formatTime(now), minDays)
	if err != nil {
		return nil, fmt.Errorf("failed to select reminder candidates: %w", err)
	}
	defer rows.Close()

	return collectJobs(rows)
}

// GetJobByOrderID retrieves a single job by its external order identifier.
func (r *Repository) GetJobByOrderID(ctx context.Context, orderID string) (model.ReviewJob, error) {
	query := `
		SELECT ` + jobColumns + `
		FROM review_queue
		WHERE order_id = ?;
    `

	j, err := scanJob(r.db.QueryRowContext(ctx, query, orderID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.ReviewJob{}, ErrJobNotFound
		}
		return model.ReviewJob{}, fmt.Errorf("failed to get job: %w", err)
	}

	return j, nil
}

// ListJobs returns every row, newest order first. Used by the admin listing.
func (r *Repository) ListJobs(ctx context.Context) ([]model.ReviewJob, error) {
	query := `
		SELECT ` + jobColumns + `
		FROM review_queue
		ORDER BY created_at DESC;
    `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	return collectJobs(rows)
}

func requireRow(res sql.Result) error {
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return ErrJobNotFound
	}
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
