// Package webhook receives order events from the shop and engagement
// signals from the mail provider.
package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/simonnirfalk/review-mails/internal/api/dto"
	"github.com/simonnirfalk/review-mails/internal/api/respond"
	"github.com/simonnirfalk/review-mails/internal/repository/queue"
)

// topicCancelled is the header value the shop sends for cancellations.
const topicCancelled = "orders/cancelled"

// queueTimeout bounds the background order fetch + insert after the webhook
// has already been acknowledged.
const queueTimeout = time.Minute

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/webhook/mock.go -package=mocks
type reviewService interface {
	QueueFromOrderEvent(ctx context.Context, orderID string) error
	Cancel(ctx context.Context, orderID string) error
	RecordInteraction(ctx context.Context, id int64, reason string) error
}

type payloadArchive interface {
	Save(kind string, req *http.Request, rawBody []byte)
}

type Handler struct {
	service   reviewService
	validator *validator.Validate
	archive   payloadArchive
}

func NewHandler(s reviewService, v *validator.Validate, a payloadArchive) *Handler {
	return &Handler{service: s, validator: v, archive: a}
}

// OrderCreated acknowledges the webhook immediately and queues the review
// job in the background: the shop drops webhooks that take more than a few
// seconds to answer, and the order fetch goes through its GraphQL API.
func (h *Handler) OrderCreated(c *ginext.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("failed to read body"))
		return
	}
	h.archive.Save("order-created", c.Request, raw)

	var req dto.OrderEventRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode order-created payload")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	orderID := req.ResolvedOrderID()
	if orderID == "" {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("missing id in payload"))
		return
	}

	respond.OK(c.Writer, map[string]string{"received": orderID})

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), queueTimeout)
		defer cancel()

		if err := h.service.QueueFromOrderEvent(ctx, orderID); err != nil {
			zlog.Logger.Error().Err(err).Str("order_id", orderID).Msg("failed to process order-created")
		}
	}()
}

// OrderUpdated cancels the review job when the update is a cancellation;
// every other update is acknowledged and ignored.
func (h *Handler) OrderUpdated(c *ginext.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("failed to read body"))
		return
	}
	h.archive.Save("order-updated", c.Request, raw)

	var req dto.OrderEventRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode order-updated payload")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	topic := c.GetHeader("X-Webhook-Topic")
	orderID := req.ResolvedOrderID()

	if topic == topicCancelled && orderID != "" {
		err := h.service.Cancel(c.Request.Context(), orderID)
		switch {
		case errors.Is(err, queue.ErrJobNotFound):
			zlog.Logger.Info().Str("order_id", orderID).Msg("cancellation for unknown order, nothing to do")
		case err != nil:
			zlog.Logger.Error().Err(err).Str("order_id", orderID).Msg("failed to cancel review job")
		default:
			zlog.Logger.Info().Str("order_id", orderID).Str("topic", topic).Msg("order cancelled, review job marked as canceled")
		}
	} else {
		zlog.Logger.Info().Str("order_id", orderID).Str("topic", topic).Msg("order-updated webhook received, no cancellation action")
	}

	respond.OK(c.Writer, nil)
}

// Engagement records that the recipient already engaged (click, complaint),
// which suppresses the reminder for that job.
func (h *Handler) Engagement(c *ginext.Context) {
	var req dto.EngagementRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode engagement payload")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate engagement payload")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	err := h.service.RecordInteraction(c.Request.Context(), req.JobID, req.Reason)
	if err != nil {
		if errors.Is(err, queue.ErrJobNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("job not found"))
			return
		}

		zlog.Logger.Error().Err(err).Int64("job_id", req.JobID).Msg("failed to record interaction")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, nil)
}
