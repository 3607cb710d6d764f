package dto

import "strings"

// OrderEventRequest is the webhook payload for order events. The shop has
// sent the order id under different keys over time, so all three spellings
// are accepted.
type OrderEventRequest struct {
	ID           string `json:"id"`
	OrderID      string `json:"orderId"`
	OrderIDSnake string `json:"order_id"`
}

// ResolvedOrderID returns the first non-empty order id variant, trimmed.
func (r OrderEventRequest) ResolvedOrderID() string {
	for _, v := range []string{r.ID, r.OrderID, r.OrderIDSnake} {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}

// EngagementRequest marks that a recipient already engaged with a review
// mail, suppressing the reminder.
type EngagementRequest struct {
	JobID  int64  `json:"job_id" validate:"required"`
	Reason string `json:"reason"`
}
