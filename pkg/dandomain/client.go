// Package dandomain is a small client for the DanDomain webshop GraphQL API:
// OAuth2 token handling plus the two order queries the review mailer needs.
package dandomain

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"
)

// Client talks to the shop's GraphQL endpoint.
type Client struct {
	gqlURL   string
	auth     *Auth
	client   *http.Client
	strategy retry.Strategy
}

// NewClient creates a GraphQL client using the given token source.
func NewClient(gqlURL string, auth *Auth, strategy retry.Strategy) *Client {
	return &Client{
		gqlURL:   gqlURL,
		auth:     auth,
		client:   &http.Client{Timeout: 30 * time.Second},
		strategy: strategy,
	}
}

// Address is a billing or shipping address on an order's customer.
type Address struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// Customer carries the two addresses an email can be resolved from.
type Customer struct {
	BillingAddress  *Address `json:"billingAddress"`
	ShippingAddress *Address `json:"shippingAddress"`
}

// Order is the subset of the shop's order type the mailer consumes.
type Order struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	Status    struct {
		ID int `json:"id"`
	} `json:"status"`
	Customer *Customer `json:"customer"`
}

// Email resolves the recipient address, preferring the billing address.
// Empty when the order carries no address at all.
func (o *Order) Email() string {
	if o.Customer == nil {
		return ""
	}
	if a := o.Customer.BillingAddress; a != nil && a.Email != "" {
		return strings.TrimSpace(a.Email)
	}
	if a := o.Customer.ShippingAddress; a != nil && a.Email != "" {
		return strings.TrimSpace(a.Email)
	}
	return ""
}

// RecipientName joins the billing first and last name.
func (o *Order) RecipientName() string {
	if o.Customer == nil || o.Customer.BillingAddress == nil {
		return ""
	}
	parts := make([]string, 0, 2)
	for _, p := range []string{o.Customer.BillingAddress.FirstName, o.Customer.BillingAddress.LastName} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type graphqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// post executes one GraphQL request, retrying per the configured strategy.
func (c *Client) post(ctx context.Context, query string, variables map[string]any) (json.RawMessage, error) {
	var data json.RawMessage

	err := retry.Do(func() error {
		token, err := c.auth.Token(ctx)
		if err != nil {
			return fmt.Errorf("get access token: %w", err)
		}

		body, err := json.Marshal(graphqlRequest{Query: query, Variables: variables})
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.gqlURL, bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("Accept", "application/json")
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.client.Do(req)
		if err != nil {
			return fmt.Errorf("graphql request: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusUnauthorized {
			// Token may have been revoked server-side before its expiry.
			c.auth.Invalidate()
			return fmt.Errorf("graphql HTTP %d", resp.StatusCode)
		}
		if resp.StatusCode >= http.StatusBadRequest {
			zlog.Logger.Error().Int("status", resp.StatusCode).Msg("graphql request failed")
			return fmt.Errorf("graphql HTTP %d", resp.StatusCode)
		}

		var gr graphqlResponse
		if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		if len(gr.Errors) > 0 {
			return fmt.Errorf("graphql errors: %s", gr.Errors[0].Message)
		}

		data = gr.Data
		return nil
	}, c.strategy)

	if err != nil {
		return nil, err
	}
	return data, nil
}

const orderByIDQuery = `
    query GetOrder($id: ID!) {
      orderById(id: $id) {
        id
        createdAt
        status { id }
        customer {
          billingAddress { firstName lastName email }
          shippingAddress { firstName lastName email }
        }
      }
    }`

// OrderByID fetches a single order. A nil order with nil error means the shop
// does not know the id.
func (c *Client) OrderByID(ctx context.Context, orderID string) (*Order, error) {
	data, err := c.post(ctx, orderByIDQuery, map[string]any{"id": orderID})
	if err != nil {
		return nil, err
	}

	var out struct {
		OrderByID *Order `json:"orderById"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decode order: %w", err)
	}

	return out.OrderByID, nil
}

const ordersSinceQuery = `
    query OrdersSince($limit: Int!, $page: Int!, $from: String!) {
      orders(
        pagination: { limit: $limit, page: $page }
        order: { field: id, direction: DESC }
        search: [
          { field: createdAt, comparator: GREATER_THAN, value: $from }
        ]
      ) {
        data {
          id
          createdAt
          status { id }
          customer {
            billingAddress { firstName lastName email }
            shippingAddress { firstName lastName email }
          }
        }
      }
    }`

// OrdersCreatedSince pages through all orders created after the given time.
// Used by the queue rebuild command.
func (c *Client) OrdersCreatedSince(ctx context.Context, since time.Time) ([]Order, error) {
	const pageSize = 50

	var all []Order
	for page := 1; ; page++ {
		data, err := c.post(ctx, ordersSinceQuery, map[string]any{
			"limit": pageSize,
			"page":  page,
			"from":  since.UTC().Format(time.RFC3339),
		})
		if err != nil {
			return nil, err
		}

		var out struct {
			Orders struct {
				Data []Order `json:"data"`
			} `json:"orders"`
		}
		if err := json.Unmarshal(data, &out); err != nil {
			return nil, fmt.Errorf("decode orders page %d: %w", page, err)
		}

		all = append(all, out.Orders.Data...)
		if len(out.Orders.Data) < pageSize {
			return all, nil
		}
	}
}
