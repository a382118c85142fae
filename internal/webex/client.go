package webex

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"webex_gacha/internal/metrics"
)

// APIError is a non-success response from the Webex messages API. It keeps the
// status and response body so failures can be diagnosed from logs alone.
type APIError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("webex %s: status %d: %s", e.Op, e.StatusCode, e.Body)
}

// Client is a Webex messages API client.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a Webex client. baseURL is the messages endpoint
// (https://webexapis.com/v1/messages); every call is bounded by timeout.
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Message is a Webex message body.
type Message struct {
	ID          string `json:"id"`
	RoomID      string `json:"roomId"`
	PersonEmail string `json:"personEmail"`
	Text        string `json:"text"`
}

// GetMessage fetches the full message body for a message id. Plain-message
// webhooks only carry the id, so the command text comes from this lookup.
func (c *Client) GetMessage(ctx context.Context, id string) (*Message, error) {
	url := fmt.Sprintf("%s/%s", c.baseURL, id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.GatewayErrors.WithLabelValues("get_message").Inc()
		return nil, fmt.Errorf("get message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.GatewayErrors.WithLabelValues("get_message").Inc()
		body, _ := io.ReadAll(resp.Body)
		return nil, &APIError{Op: "get_message", StatusCode: resp.StatusCode, Body: string(body)}
	}

	var msg Message
	if err := json.NewDecoder(resp.Body).Decode(&msg); err != nil {
		return nil, fmt.Errorf("decode message: %w", err)
	}
	return &msg, nil
}

// SendText posts a plain text message to a room.
func (c *Client) SendText(ctx context.Context, roomID, text string) error {
	return c.post(ctx, "send_message", map[string]any{
		"roomId": roomID,
		"text":   text,
	})
}

// SendCard posts an adaptive card to a room. fallback is the markdown shown by
// clients that cannot render cards.
func (c *Client) SendCard(ctx context.Context, roomID string, card Card, fallback string) error {
	return c.post(ctx, "send_card", map[string]any{
		"roomId":   roomID,
		"markdown": fallback,
		"attachments": []map[string]any{
			{"contentType": CardContentType, "content": card},
		},
	})
}

func (c *Client) post(ctx context.Context, op string, payload map[string]any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.GatewayErrors.WithLabelValues(op).Inc()
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.GatewayErrors.WithLabelValues(op).Inc()
		respBody, _ := io.ReadAll(resp.Body)
		return &APIError{Op: op, StatusCode: resp.StatusCode, Body: string(respBody)}
	}
	return nil
}
