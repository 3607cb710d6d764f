// Package mandrill provides a minimal client for the Mailchimp Transactional
// (Mandrill) messages API, covering only what the review mailer needs:
// synchronous sends with per-recipient status.
package mandrill

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultBaseURL = "https://mandrillapp.com/api/1.0"

// Client represents a Mandrill API client.
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewClient creates a new Mandrill client with the given API key.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// NewClientWithBaseURL is used by tests to point the client at a fake server.
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	c := NewClient(apiKey)
	c.baseURL = baseURL
	return c
}

// Recipient is a single "to" entry of a message.
type Recipient struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Type  string `json:"type"`
}

// Message is the Mandrill message payload.
type Message struct {
	FromEmail          string            `json:"from_email"`
	FromName           string            `json:"from_name,omitempty"`
	Subject            string            `json:"subject"`
	To                 []Recipient       `json:"to"`
	HTML               string            `json:"html"`
	AutoText           bool              `json:"auto_text"`
	PreserveRecipients bool              `json:"preserve_recipients"`
	Headers            map[string]string `json:"headers,omitempty"`
	Tags               []string          `json:"tags,omitempty"`
	TrackOpens         bool              `json:"track_opens"`
	TrackClicks        bool              `json:"track_clicks"`
	Metadata           map[string]string `json:"metadata,omitempty"`
}

// SendResult is the per-recipient outcome of a send. Status is one of
// sent, queued, scheduled, rejected or invalid.
type SendResult struct {
	Email        string `json:"email"`
	Status       string `json:"status"`
	RejectReason string `json:"reject_reason"`
	ID           string `json:"_id"`
}

// Accepted reports whether the provider took responsibility for delivery.
func (r SendResult) Accepted() bool {
	switch r.Status {
	case "sent", "queued", "scheduled":
		return true
	}
	return false
}

type sendRequest struct {
	Key     string  `json:"key"`
	Message Message `json:"message"`
	Async   bool    `json:"async"`
}

// SendMessage sends a message with async=false so the response carries the
// immediate per-recipient status.
func (c *Client) SendMessage(ctx context.Context, msg Message) ([]SendResult, error) {
	url := c.baseURL + "/messages/send"

	body, err := json.Marshal(sendRequest{Key: c.apiKey, Message: msg, Async: false})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Name    string `json:"name"`
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Message != "" {
			return nil, fmt.Errorf("mandrill API error: %s: %s", apiErr.Name, apiErr.Message)
		}
		return nil, fmt.Errorf("mandrill API error: %s", resp.Status)
	}

	var results []SendResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return results, nil
}
