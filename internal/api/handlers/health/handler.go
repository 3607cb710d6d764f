package health

import (
	"context"
	"net/http"

	"github.com/wb-go/wbf/ginext"

	"github.com/simonnirfalk/review-mails/internal/api/respond"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	store pinger
}

func NewHandler(store pinger) *Handler {
	return &Handler{store: store}
}

// Check answers ok when the queue store is reachable.
func (h *Handler) Check(c *ginext.Context) {
	if err := h.store.Ping(c.Request.Context()); err != nil {
		respond.Fail(c.Writer, http.StatusInternalServerError, err)
		return
	}

	respond.OK(c.Writer, nil)
}
