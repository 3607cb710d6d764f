package admin

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mocks "github.com/simonnirfalk/review-mails/internal/mocks/api/handlers/admin"
	"github.com/simonnirfalk/review-mails/internal/model"
	"github.com/simonnirfalk/review-mails/internal/repository/queue"
)

func setupHandler(t *testing.T) (*Handler, *mocks.MockreviewService) {
	ctrl := gomock.NewController(t)
	serviceMock := mocks.NewMockreviewService(ctrl)
	return NewHandler(serviceMock), serviceMock
}

func getContext(t *testing.T, path string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, path, nil)
	return c, w
}

func mutateContext(t *testing.T, orderID string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/admin/jobs/"+orderID+"/x", nil)
	c.Params = gin.Params{{Key: "orderID", Value: orderID}}
	return c, w
}

func TestHandler_List(t *testing.T) {
	handler, serviceMock := setupHandler(t)

	sentAt := time.Now().Add(-24 * time.Hour)
	jobs := []model.ReviewJob{
		{ID: 1, OrderID: "order-1", Email: "a@example.com", SentAt: &sentAt},
		{ID: 2, OrderID: "order-2", Email: "b@example.com", Canceled: true},
	}

	serviceMock.EXPECT().ListJobs(gomock.Any(), model.Status(""), gomock.Any()).Return(jobs, nil)

	c, w := getContext(t, "/admin/jobs")
	handler.List(c)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		OK   bool `json:"ok"`
		Data []struct {
			OrderID string `json:"order_id"`
			Status  string `json:"status"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "sent", resp.Data[0].Status)
	assert.Equal(t, "canceled", resp.Data[1].Status)
}

func TestHandler_List_StatusFilter(t *testing.T) {
	handler, serviceMock := setupHandler(t)

	serviceMock.EXPECT().ListJobs(gomock.Any(), model.StatusDue, gomock.Any()).Return(nil, nil)

	c, w := getContext(t, "/admin/jobs?status=due")
	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_List_UnknownStatus(t *testing.T) {
	handler, _ := setupHandler(t)

	c, w := getContext(t, "/admin/jobs?status=pending")
	handler.List(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Cancel(t *testing.T) {
	handler, serviceMock := setupHandler(t)

	serviceMock.EXPECT().Cancel(gomock.Any(), "order-1").Return(nil)

	c, w := mutateContext(t, "order-1")
	handler.Cancel(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_Uncancel(t *testing.T) {
	handler, serviceMock := setupHandler(t)

	serviceMock.EXPECT().Uncancel(gomock.Any(), "order-1").Return(nil)

	c, w := mutateContext(t, "order-1")
	handler.Uncancel(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_Resend(t *testing.T) {
	handler, serviceMock := setupHandler(t)

	serviceMock.EXPECT().Resend(gomock.Any(), "order-1").Return(nil)

	c, w := mutateContext(t, "order-1")
	handler.Resend(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_Mutate_NotFound(t *testing.T) {
	handler, serviceMock := setupHandler(t)

	serviceMock.EXPECT().Cancel(gomock.Any(), "gone").Return(queue.ErrJobNotFound)

	c, w := mutateContext(t, "gone")
	handler.Cancel(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_Mutate_ServiceError(t *testing.T) {
	handler, serviceMock := setupHandler(t)

	serviceMock.EXPECT().Resend(gomock.Any(), "order-1").Return(assert.AnError)

	c, w := mutateContext(t, "order-1")
	handler.Resend(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
