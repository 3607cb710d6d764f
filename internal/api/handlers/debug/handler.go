// Package debug holds probe routes for the shop integration. They are only
// mounted when dandomain.debug is enabled in config.
package debug

import (
	"context"
	"fmt"
	"net/http"

	"github.com/wb-go/wbf/ginext"

	"github.com/simonnirfalk/review-mails/internal/api/respond"
	"github.com/simonnirfalk/review-mails/pkg/dandomain"
)

type tokenSource interface {
	Token(ctx context.Context) (string, error)
}

type orderFetcher interface {
	OrderByID(ctx context.Context, orderID string) (*dandomain.Order, error)
}

type Handler struct {
	auth   tokenSource
	orders orderFetcher
}

func NewHandler(auth tokenSource, orders orderFetcher) *Handler {
	return &Handler{auth: auth, orders: orders}
}

// OAuth probes the token endpoint. Only a prefix of the token is returned.
func (h *Handler) OAuth(c *ginext.Context) {
	token, err := h.auth.Token(c.Request.Context())
	if err != nil {
		respond.Fail(c.Writer, http.StatusInternalServerError, err)
		return
	}

	if len(token) > 20 {
		token = token[:20] + "..."
	}
	respond.OK(c.Writer, map[string]string{"token": token})
}

// Order fetches an order through the GraphQL client.
func (h *Handler) Order(c *ginext.Context) {
	id := c.Query("id")
	if id == "" {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("missing ?id="))
		return
	}

	order, err := h.orders.OrderByID(c.Request.Context(), id)
	if err != nil {
		respond.Fail(c.Writer, http.StatusInternalServerError, err)
		return
	}

	respond.OK(c.Writer, order)
}
