package review

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonnirfalk/review-mails/internal/mailer"
	mocks "github.com/simonnirfalk/review-mails/internal/mocks/service/review"
	"github.com/simonnirfalk/review-mails/internal/model"
	"github.com/simonnirfalk/review-mails/internal/repository/queue"
	"github.com/simonnirfalk/review-mails/pkg/dandomain"
)

func setupService(t *testing.T) (*Service, *mocks.MockjobRepo, *mocks.MockreviewMailer, *mocks.MockorderFetcher) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockjobRepo(ctrl)
	mailerMock := mocks.NewMockreviewMailer(ctrl)
	ordersMock := mocks.NewMockorderFetcher(ctrl)

	svc := NewService(repoMock, mailerMock, ordersMock, 14)
	return svc, repoMock, mailerMock, ordersMock
}

func TestService_QueueFromOrderEvent(t *testing.T) {
	svc, repoMock, _, ordersMock := setupService(t)

	createdAt := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	order := &dandomain.Order{
		ID:        "order-1",
		CreatedAt: createdAt,
		Customer: &dandomain.Customer{
			BillingAddress: &dandomain.Address{Email: "buyer@example.com", FirstName: "Jens", LastName: "Hansen"},
		},
	}

	ordersMock.EXPECT().OrderByID(gomock.Any(), "order-1").Return(order, nil)
	repoMock.EXPECT().InsertJob(gomock.Any(), queue.JobInput{
		OrderID:   "order-1",
		Email:     "buyer@example.com",
		Name:      "Jens Hansen",
		CreatedAt: createdAt,
		SendAfter: createdAt.Add(14 * 24 * time.Hour),
	}).Return(nil)

	err := svc.QueueFromOrderEvent(context.Background(), "order-1")
	assert.NoError(t, err)
}

func TestService_QueueFromOrderEvent_UnknownOrder(t *testing.T) {
	svc, _, _, ordersMock := setupService(t)

	// A webhook for an order the shop no longer returns is not a failure;
	// retrying the webhook would never help.
	ordersMock.EXPECT().OrderByID(gomock.Any(), "gone").Return(nil, nil)

	err := svc.QueueFromOrderEvent(context.Background(), "gone")
	assert.NoError(t, err)
}

func TestService_QueueFromOrderEvent_FetchError(t *testing.T) {
	svc, _, _, ordersMock := setupService(t)

	ordersMock.EXPECT().OrderByID(gomock.Any(), "order-1").Return(nil, assert.AnError)

	err := svc.QueueFromOrderEvent(context.Background(), "order-1")
	assert.Error(t, err)
}

func TestService_QueueOrder_SkipsMissingEmail(t *testing.T) {
	svc, _, _, _ := setupService(t)

	order := &dandomain.Order{ID: "order-1", CreatedAt: time.Now()}

	// No InsertJob expectation: the order is skipped entirely.
	err := svc.QueueOrder(context.Background(), order)
	assert.NoError(t, err)
}

func TestService_SendFirst_Success(t *testing.T) {
	svc, repoMock, mailerMock, _ := setupService(t)

	job := model.ReviewJob{ID: 7, OrderID: "order-1", Email: "buyer@example.com", Name: "Jens"}

	mailerMock.EXPECT().SendReview(gomock.Any(), mailer.SendRequest{
		ToEmail: "buyer@example.com",
		ToName:  "Jens",
		JobID:   7,
	}).Return("msg-123", nil)
	repoMock.EXPECT().MarkSent(gomock.Any(), "order-1", gomock.Any()).Return(nil)
	repoMock.EXPECT().SetProviderMessageID(gomock.Any(), "order-1", "msg-123").Return(nil)

	err := svc.SendFirst(context.Background(), job)
	assert.NoError(t, err)
}

func TestService_SendFirst_NoMessageID(t *testing.T) {
	svc, repoMock, mailerMock, _ := setupService(t)

	job := model.ReviewJob{ID: 7, OrderID: "order-1", Email: "buyer@example.com"}

	mailerMock.EXPECT().SendReview(gomock.Any(), gomock.Any()).Return("", nil)
	repoMock.EXPECT().MarkSent(gomock.Any(), "order-1", gomock.Any()).Return(nil)

	err := svc.SendFirst(context.Background(), job)
	assert.NoError(t, err)
}

func TestService_SendFirst_RecordsFailure(t *testing.T) {
	svc, repoMock, mailerMock, _ := setupService(t)

	job := model.ReviewJob{ID: 7, OrderID: "order-1", Email: "buyer@example.com"}

	mailerMock.EXPECT().SendReview(gomock.Any(), gomock.Any()).Return("", assert.AnError)
	repoMock.EXPECT().MarkError(gomock.Any(), "order-1", assert.AnError.Error()).Return(nil)

	err := svc.SendFirst(context.Background(), job)
	assert.Error(t, err)
}

func TestService_SendReminder_Success(t *testing.T) {
	svc, repoMock, mailerMock, _ := setupService(t)

	job := model.ReviewJob{ID: 7, OrderID: "order-1", Email: "buyer@example.com", Name: "Jens"}

	mailerMock.EXPECT().SendReview(gomock.Any(), mailer.SendRequest{
		ToEmail:    "buyer@example.com",
		ToName:     "Jens",
		JobID:      7,
		IsReminder: true,
	}).Return("msg-456", nil)
	repoMock.EXPECT().MarkReminderSent(gomock.Any(), int64(7), gomock.Any()).Return(nil)

	err := svc.SendReminder(context.Background(), job)
	assert.NoError(t, err)
}

func TestService_SendReminder_FailureLeavesRowUntouched(t *testing.T) {
	svc, _, mailerMock, _ := setupService(t)

	job := model.ReviewJob{ID: 7, OrderID: "order-1", Email: "buyer@example.com"}

	// No MarkError expectation: last_error belongs to the first send, and the
	// unmarked row gets retried on a later tick.
	mailerMock.EXPECT().SendReview(gomock.Any(), gomock.Any()).Return("", assert.AnError)

	err := svc.SendReminder(context.Background(), job)
	assert.Error(t, err)
}

func TestService_Resend(t *testing.T) {
	svc, repoMock, mailerMock, _ := setupService(t)

	sentAt := time.Now().Add(-48 * time.Hour)
	job := model.ReviewJob{ID: 7, OrderID: "order-1", Email: "buyer@example.com", SentAt: &sentAt}

	repoMock.EXPECT().GetJobByOrderID(gomock.Any(), "order-1").Return(job, nil)
	mailerMock.EXPECT().SendReview(gomock.Any(), gomock.Any()).Return("msg-789", nil)
	repoMock.EXPECT().MarkSent(gomock.Any(), "order-1", gomock.Any()).Return(nil)
	repoMock.EXPECT().SetProviderMessageID(gomock.Any(), "order-1", "msg-789").Return(nil)

	err := svc.Resend(context.Background(), "order-1")
	assert.NoError(t, err)
}

func TestService_Resend_CanceledJob(t *testing.T) {
	svc, repoMock, mailerMock, _ := setupService(t)

	// The admin force-path deliberately ignores the canceled flag.
	job := model.ReviewJob{ID: 7, OrderID: "order-1", Email: "buyer@example.com", Canceled: true}

	repoMock.EXPECT().GetJobByOrderID(gomock.Any(), "order-1").Return(job, nil)
	mailerMock.EXPECT().SendReview(gomock.Any(), gomock.Any()).Return("msg-1", nil)
	repoMock.EXPECT().MarkSent(gomock.Any(), "order-1", gomock.Any()).Return(nil)
	repoMock.EXPECT().SetProviderMessageID(gomock.Any(), "order-1", "msg-1").Return(nil)

	err := svc.Resend(context.Background(), "order-1")
	assert.NoError(t, err)
}

func TestService_Resend_NotFound(t *testing.T) {
	svc, repoMock, _, _ := setupService(t)

	repoMock.EXPECT().GetJobByOrderID(gomock.Any(), "gone").Return(model.ReviewJob{}, queue.ErrJobNotFound)

	err := svc.Resend(context.Background(), "gone")
	assert.ErrorIs(t, err, queue.ErrJobNotFound)
}

func TestService_ListJobs_FiltersByStatus(t *testing.T) {
	svc, repoMock, _, _ := setupService(t)

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	sentAt := now.Add(-24 * time.Hour)

	jobs := []model.ReviewJob{
		{ID: 1, OrderID: "sent", SentAt: &sentAt},
		{ID: 2, OrderID: "canceled", Canceled: true},
		{ID: 3, OrderID: "scheduled", SendAfter: now.Add(time.Hour)},
	}

	repoMock.EXPECT().ListJobs(gomock.Any()).Return(jobs, nil).Times(2)

	all, err := svc.ListJobs(context.Background(), "", now)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	sent, err := svc.ListJobs(context.Background(), model.StatusSent, now)
	require.NoError(t, err)
	require.Len(t, sent, 1)
	assert.Equal(t, "sent", sent[0].OrderID)
}
