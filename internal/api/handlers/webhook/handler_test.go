package webhook

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	mocks "github.com/simonnirfalk/review-mails/internal/mocks/api/handlers/webhook"
	"github.com/simonnirfalk/review-mails/internal/repository/queue"
)

func setupHandler(t *testing.T) (*Handler, *mocks.MockreviewService, *mocks.MockpayloadArchive) {
	ctrl := gomock.NewController(t)
	serviceMock := mocks.NewMockreviewService(ctrl)
	archiveMock := mocks.NewMockpayloadArchive(ctrl)
	handler := NewHandler(serviceMock, validator.New(), archiveMock)
	return handler, serviceMock, archiveMock
}

func postContext(t *testing.T, path, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	return c, w
}

func TestHandler_OrderCreated_Success(t *testing.T) {
	handler, serviceMock, archiveMock := setupHandler(t)

	queued := make(chan struct{})
	archiveMock.EXPECT().Save("order-created", gomock.Any(), gomock.Any())
	serviceMock.EXPECT().
		QueueFromOrderEvent(gomock.Any(), "order-1").
		DoAndReturn(func(any, any) error {
			close(queued)
			return nil
		})

	c, w := postContext(t, "/webhooks/dandomain/order-created", `{"id": "order-1"}`)
	handler.OrderCreated(c)

	// The webhook is acknowledged before the queue insert runs.
	assert.Equal(t, http.StatusOK, w.Code)

	select {
	case <-queued:
	case <-time.After(2 * time.Second):
		t.Fatal("queue insert never ran")
	}
}

func TestHandler_OrderCreated_AlternateIDKeys(t *testing.T) {
	handler, serviceMock, archiveMock := setupHandler(t)

	queued := make(chan struct{})
	archiveMock.EXPECT().Save("order-created", gomock.Any(), gomock.Any())
	serviceMock.EXPECT().
		QueueFromOrderEvent(gomock.Any(), "order-2").
		DoAndReturn(func(any, any) error {
			close(queued)
			return nil
		})

	c, w := postContext(t, "/webhooks/dandomain/order-created", `{"orderId": "order-2"}`)
	handler.OrderCreated(c)

	assert.Equal(t, http.StatusOK, w.Code)

	select {
	case <-queued:
	case <-time.After(2 * time.Second):
		t.Fatal("queue insert never ran")
	}
}

func TestHandler_OrderCreated_MissingID(t *testing.T) {
	handler, _, archiveMock := setupHandler(t)

	// The payload is archived even when it turns out to be unusable.
	archiveMock.EXPECT().Save("order-created", gomock.Any(), gomock.Any())

	c, w := postContext(t, "/webhooks/dandomain/order-created", `{"foo": "bar"}`)
	handler.OrderCreated(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_OrderCreated_InvalidJSON(t *testing.T) {
	handler, _, archiveMock := setupHandler(t)

	archiveMock.EXPECT().Save("order-created", gomock.Any(), gomock.Any())

	c, w := postContext(t, "/webhooks/dandomain/order-created", `{not json`)
	handler.OrderCreated(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_OrderUpdated_Cancellation(t *testing.T) {
	handler, serviceMock, archiveMock := setupHandler(t)

	archiveMock.EXPECT().Save("order-updated", gomock.Any(), gomock.Any())
	serviceMock.EXPECT().Cancel(gomock.Any(), "order-1").Return(nil)

	c, w := postContext(t, "/webhooks/dandomain/order-updated", `{"id": "order-1"}`)
	c.Request.Header.Set("X-Webhook-Topic", "orders/cancelled")
	handler.OrderUpdated(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_OrderUpdated_CancellationForUnknownOrder(t *testing.T) {
	handler, serviceMock, archiveMock := setupHandler(t)

	archiveMock.EXPECT().Save("order-updated", gomock.Any(), gomock.Any())
	serviceMock.EXPECT().Cancel(gomock.Any(), "order-1").Return(queue.ErrJobNotFound)

	c, w := postContext(t, "/webhooks/dandomain/order-updated", `{"id": "order-1"}`)
	c.Request.Header.Set("X-Webhook-Topic", "orders/cancelled")
	handler.OrderUpdated(c)

	// Still acknowledged: the shop must not retry this delivery.
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_OrderUpdated_OtherTopicIgnored(t *testing.T) {
	handler, _, archiveMock := setupHandler(t)

	// No Cancel expectation: only the cancellation topic acts on the job.
	archiveMock.EXPECT().Save("order-updated", gomock.Any(), gomock.Any())

	c, w := postContext(t, "/webhooks/dandomain/order-updated", `{"id": "order-1"}`)
	c.Request.Header.Set("X-Webhook-Topic", "orders/updated")
	handler.OrderUpdated(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_Engagement_Success(t *testing.T) {
	handler, serviceMock, _ := setupHandler(t)

	serviceMock.EXPECT().RecordInteraction(gomock.Any(), int64(42), "clicked").Return(nil)

	c, w := postContext(t, "/webhooks/engagement", `{"job_id": 42, "reason": "clicked"}`)
	handler.Engagement(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_Engagement_MissingJobID(t *testing.T) {
	handler, _, _ := setupHandler(t)

	c, w := postContext(t, "/webhooks/engagement", `{"reason": "clicked"}`)
	handler.Engagement(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Engagement_JobNotFound(t *testing.T) {
	handler, serviceMock, _ := setupHandler(t)

	serviceMock.EXPECT().RecordInteraction(gomock.Any(), int64(42), "").Return(queue.ErrJobNotFound)

	c, w := postContext(t, "/webhooks/engagement", `{"job_id": 42}`)
	handler.Engagement(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
