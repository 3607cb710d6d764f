// Package admin exposes the queue inspection and force-mutation endpoints.
package admin

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/simonnirfalk/review-mails/internal/api/respond"
	"github.com/simonnirfalk/review-mails/internal/model"
	"github.com/simonnirfalk/review-mails/internal/repository/queue"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/admin/mock.go -package=mocks
type reviewService interface {
	ListJobs(ctx context.Context, status model.Status, now time.Time) ([]model.ReviewJob, error)
	Cancel(ctx context.Context, orderID string) error
	Uncancel(ctx context.Context, orderID string) error
	Resend(ctx context.Context, orderID string) error
}

type Handler struct {
	service reviewService
}

func NewHandler(s reviewService) *Handler {
	return &Handler{service: s}
}

// jobView is a queue row plus its derived status, as shown in the listing.
type jobView struct {
	model.ReviewJob
	Status model.Status `json:"status"`
}

// List returns every job, optionally filtered with ?status=.
func (h *Handler) List(c *ginext.Context) {
	now := time.Now()

	status := model.Status(c.Query("status"))
	if status != "" && !status.Valid() {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("unknown status %q", status))
		return
	}

	jobs, err := h.service.ListJobs(c.Request.Context(), status, now)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to list jobs")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	views := make([]jobView, 0, len(jobs))
	for _, j := range jobs {
		views = append(views, jobView{ReviewJob: j, Status: model.DeriveStatus(j, now)})
	}

	respond.OK(c.Writer, views)
}

// Cancel force-cancels a job.
func (h *Handler) Cancel(c *ginext.Context) {
	h.mutate(c, "cancel", h.service.Cancel)
}

// Uncancel resets the canceled flag.
func (h *Handler) Uncancel(c *ginext.Context) {
	h.mutate(c, "uncancel", h.service.Uncancel)
}

// Resend sends the review mail immediately, bypassing send_after, and
// records the outcome.
func (h *Handler) Resend(c *ginext.Context) {
	h.mutate(c, "resend", h.service.Resend)
}

func (h *Handler) mutate(c *ginext.Context, action string, fn func(context.Context, string) error) {
	orderID := c.Param("orderID")
	if orderID == "" {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("missing order id"))
		return
	}

	err := fn(c.Request.Context(), orderID)
	if err != nil {
		if errors.Is(err, queue.ErrJobNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("job not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("order_id", orderID).Str("action", action).Msg("admin mutation failed")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("%s failed: %s", action, err.Error()))
		return
	}

	respond.OK(c.Writer, map[string]string{"order_id": orderID, "action": action})
}
