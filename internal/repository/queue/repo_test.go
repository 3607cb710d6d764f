package queue

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestRepo(t *testing.T) *Repository {
	t.Helper()

	repo, err := Open(filepath.Join(t.TempDir(), "queue.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	return repo
}

func insertTestJob(t *testing.T, repo *Repository, orderID string, sendAfter time.Time) {
	t.Helper()

	err := repo.InsertJob(context.Background(), JobInput{
		OrderID:   orderID,
		Email:     orderID + "@example.com",
		Name:      "Test Buyer",
		CreatedAt: sendAfter.Add(-14 * 24 * time.Hour),
		SendAfter: sendAfter,
	})
	require.NoError(t, err)
}

func TestOpen_MigrationIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "queue.sqlite")

	repo, err := Open(path)
	require.NoError(t, err)
	insertTestJob(t, repo, "order-1", time.Now())
	require.NoError(t, repo.Close())

	// Reopening the same file must not fail on already-added columns.
	repo, err = Open(path)
	require.NoError(t, err)
	defer repo.Close()

	job, err := repo.GetJobByOrderID(context.Background(), "order-1")
	require.NoError(t, err)
	assert.Equal(t, "order-1", job.OrderID)
	assert.Equal(t, 0, job.ReminderCount)
}

func TestInsertJob_IdempotentPerOrder(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	first := JobInput{
		OrderID:   "order-1",
		Email:     "first@example.com",
		Name:      "First",
		CreatedAt: now,
		SendAfter: now.Add(14 * 24 * time.Hour),
	}
	require.NoError(t, repo.InsertJob(ctx, first))

	// A replayed webhook with different details must not overwrite the row.
	second := first
	second.Email = "second@example.com"
	second.Name = "Second"
	require.NoError(t, repo.InsertJob(ctx, second))

	job, err := repo.GetJobByOrderID(ctx, "order-1")
	require.NoError(t, err)
	assert.Equal(t, "first@example.com", job.Email)
	assert.Equal(t, "First", job.Name)

	jobs, err := repo.ListJobs(ctx)
	require.NoError(t, err)
	assert.Len(t, jobs, 1)
}

func TestDueJobs_SelectsAndOrders(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	insertTestJob(t, repo, "due-later", now.Add(-time.Hour))
	insertTestJob(t, repo, "due-earlier", now.Add(-2*time.Hour))
	insertTestJob(t, repo, "due-exact", now)
	insertTestJob(t, repo, "not-yet", now.Add(time.Hour))
	insertTestJob(t, repo, "canceled", now.Add(-time.Hour))
	insertTestJob(t, repo, "already-sent", now.Add(-time.Hour))

	require.NoError(t, repo.MarkCanceled(ctx, "canceled"))
	require.NoError(t, repo.MarkSent(ctx, "already-sent", now))

	jobs, err := repo.DueJobs(ctx, now)
	require.NoError(t, err)

	ids := make([]string, 0, len(jobs))
	for _, j := range jobs {
		ids = append(ids, j.OrderID)
	}
	assert.Equal(t, []string{"due-earlier", "due-later", "due-exact"}, ids)
}

func TestDueJobs_NotClaimedBetweenPolls(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	insertTestJob(t, repo, "order-1", now.Add(-time.Hour))

	// Selecting does not claim; only MarkSent removes the row from the batch.
	jobs, err := repo.DueJobs(ctx, now)
	require.NoError(t, err)
	require.Len(t, jobs, 1)

	jobs, err = repo.DueJobs(ctx, now)
	require.NoError(t, err)
	require.Len(t, jobs, 1)

	require.NoError(t, repo.MarkSent(ctx, "order-1", now))

	jobs, err = repo.DueJobs(ctx, now)
	require.NoError(t, err)
	assert.Empty(t, jobs)
}

func TestMarkSent_ClearsLastError(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	insertTestJob(t, repo, "order-1", now)
	require.NoError(t, repo.MarkError(ctx, "order-1", "mandrill: rejected"))

	job, err := repo.GetJobByOrderID(ctx, "order-1")
	require.NoError(t, err)
	require.NotNil(t, job.LastError)
	assert.Equal(t, "mandrill: rejected", *job.LastError)
	assert.Nil(t, job.SentAt)

	require.NoError(t, repo.MarkSent(ctx, "order-1", now))

	job, err = repo.GetJobByOrderID(ctx, "order-1")
	require.NoError(t, err)
	assert.Nil(t, job.LastError)
	require.NotNil(t, job.SentAt)
	assert.True(t, job.SentAt.Equal(now))
}

func TestMarkError_TruncatesLongMessages(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	insertTestJob(t, repo, "order-1", now)

	// Multi-byte runes, so byte truncation would split a character.
	long := strings.Repeat("æ", 600)
	require.NoError(t, repo.MarkError(ctx, "order-1", long))

	job, err := repo.GetJobByOrderID(ctx, "order-1")
	require.NoError(t, err)
	require.NotNil(t, job.LastError)
	assert.Equal(t, strings.Repeat("æ", 500), *job.LastError)
}

func TestMutations_UnknownOrder(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()
	now := time.Now()

	assert.ErrorIs(t, repo.MarkSent(ctx, "nope", now), ErrJobNotFound)
	assert.ErrorIs(t, repo.MarkError(ctx, "nope", "boom"), ErrJobNotFound)
	assert.ErrorIs(t, repo.MarkCanceled(ctx, "nope"), ErrJobNotFound)
	assert.ErrorIs(t, repo.MarkUncanceled(ctx, "nope"), ErrJobNotFound)
	assert.ErrorIs(t, repo.MarkReminderSent(ctx, 42, now), ErrJobNotFound)
	assert.ErrorIs(t, repo.MarkInteraction(ctx, 42, "clicked"), ErrJobNotFound)
	assert.ErrorIs(t, repo.SetProviderMessageID(ctx, "nope", "abc"), ErrJobNotFound)

	_, err := repo.GetJobByOrderID(ctx, "nope")
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestCancelUncancel_Roundtrip(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	insertTestJob(t, repo, "order-1", now.Add(-time.Hour))

	require.NoError(t, repo.MarkCanceled(ctx, "order-1"))
	jobs, err := repo.DueJobs(ctx, now)
	require.NoError(t, err)
	assert.Empty(t, jobs)

	require.NoError(t, repo.MarkUncanceled(ctx, "order-1"))
	jobs, err = repo.DueJobs(ctx, now)
	require.NoError(t, err)
	assert.Len(t, jobs, 1)
}

func TestReminderCandidates_Eligibility(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	sentLongAgo := now.Add(-10 * 24 * time.Hour)
	sentRecently := now.Add(-2 * 24 * time.Hour)

	setup := func(orderID string, sentAt time.Time) {
		insertTestJob(t, repo, orderID, sentAt.Add(-time.Hour))
		require.NoError(t, repo.MarkSent(ctx, orderID, sentAt))
	}

	setup("eligible-older", now.Add(-12*24*time.Hour))
	setup("eligible", sentLongAgo)
	setup("too-recent", sentRecently)
	setup("interacted", sentLongAgo)
	setup("reminded", sentLongAgo)
	setup("canceled-after-sent", sentLongAgo)
	insertTestJob(t, repo, "never-sent", now.Add(-20*24*time.Hour))

	interacted, err := repo.GetJobByOrderID(ctx, "interacted")
	require.NoError(t, err)
	require.NoError(t, repo.MarkInteraction(ctx, interacted.ID, "clicked"))

	reminded, err := repo.GetJobByOrderID(ctx, "reminded")
	require.NoError(t, err)
	require.NoError(t, repo.MarkReminderSent(ctx, reminded.ID, now))

	// A cancellation that lands after the first send still blocks the
	// reminder; it is the only lever left for that row.
	require.NoError(t, repo.MarkCanceled(ctx, "canceled-after-sent"))

	jobs, err := repo.ReminderCandidates(ctx, now, 7)
	require.NoError(t, err)

	ids := make([]string, 0, len(jobs))
	for _, j := range jobs {
		ids = append(ids, j.OrderID)
	}
	assert.Equal(t, []string{"eligible-older", "eligible"}, ids)
}

func TestReminderCandidates_MinDaysBoundary(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	insertTestJob(t, repo, "order-1", now.Add(-8*24*time.Hour))
	require.NoError(t, repo.MarkSent(ctx, "order-1", now.Add(-7*24*time.Hour-time.Hour)))

	jobs, err := repo.ReminderCandidates(ctx, now, 7)
	require.NoError(t, err)
	assert.Len(t, jobs, 1)

	jobs, err = repo.ReminderCandidates(ctx, now, 7.5)
	require.NoError(t, err)
	assert.Empty(t, jobs)
}

func TestMarkReminderSent_IncrementsCount(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	insertTestJob(t, repo, "order-1", now.Add(-10*24*time.Hour))
	require.NoError(t, repo.MarkSent(ctx, "order-1", now.Add(-8*24*time.Hour)))

	job, err := repo.GetJobByOrderID(ctx, "order-1")
	require.NoError(t, err)
	require.NoError(t, repo.MarkReminderSent(ctx, job.ID, now))

	job, err = repo.GetJobByOrderID(ctx, "order-1")
	require.NoError(t, err)
	assert.Equal(t, 1, job.ReminderCount)
	require.NotNil(t, job.ReminderSentAt)
	assert.True(t, job.ReminderSentAt.Equal(now))

	jobs, err := repo.ReminderCandidates(ctx, now, 7)
	require.NoError(t, err)
	assert.Empty(t, jobs)
}

func TestMarkInteraction_FirstReasonWins(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	insertTestJob(t, repo, "order-1", now)
	job, err := repo.GetJobByOrderID(ctx, "order-1")
	require.NoError(t, err)

	require.NoError(t, repo.MarkInteraction(ctx, job.ID, "clicked"))
	require.NoError(t, repo.MarkInteraction(ctx, job.ID, "complained"))

	job, err = repo.GetJobByOrderID(ctx, "order-1")
	require.NoError(t, err)
	assert.True(t, job.HasInteraction)
	require.NotNil(t, job.ReminderBlockedReason)
	assert.Equal(t, "clicked", *job.ReminderBlockedReason)
}

func TestSetProviderMessageID(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	insertTestJob(t, repo, "order-1", now)
	require.NoError(t, repo.SetProviderMessageID(ctx, "order-1", "msg-123"))

	job, err := repo.GetJobByOrderID(ctx, "order-1")
	require.NoError(t, err)
	require.NotNil(t, job.ProviderMessageID)
	assert.Equal(t, "msg-123", *job.ProviderMessageID)
}

func TestMarkSent_RowsAffectedError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("UPDATE review_queue").
		WillReturnResult(sqlmock.NewErrorResult(assert.AnError))

	// A driver that cannot report affected rows is an error, not a missing job.
	repo := NewRepository(db)
	err = repo.MarkSent(context.Background(), "order-1", time.Now())
	assert.ErrorIs(t, err, assert.AnError)
	assert.NotErrorIs(t, err, ErrJobNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDueJobs_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT").WillReturnError(assert.AnError)

	repo := NewRepository(db)
	_, err = repo.DueJobs(context.Background(), time.Now())
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
