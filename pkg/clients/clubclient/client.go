// Package clubclient is the HTTP client for the club's activity-booking
// backend. The backend is the single source of truth: every mutating call
// here is an intent, and callers re-fetch the affected records afterwards
// instead of assuming success.
package clubclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/marcus-sonestedt/t13activityweb-cli/internal/config"
)

// Client talks JSON over HTTP to the activity-booking backend
type Client struct {
	baseURL    string
	apiToken   string
	csrfToken  string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a backend client from the loaded configuration
func NewClient(cfg *config.Config, logger *zap.Logger) *Client {
	return &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		apiToken:  cfg.APIToken,
		csrfToken: cfg.CSRFToken,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeoutSeconds) * time.Second,
		},
		logger: logger,
	}
}

// Page is the backend's list envelope
type Page[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// HasNext reports whether another page follows this one
func (p *Page[T]) HasNext() bool {
	return p.Next != nil && *p.Next != ""
}

// do performs one request round-trip. A non-2xx response comes back as an
// *APIError carrying the backend's error text. Context cancellation is
// surfaced as the context's own error so callers that initiated the abort
// can recognize and swallow it.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	requestID := uuid.New().String()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Token "+c.apiToken)
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method != http.MethodGet {
		// The backend requires the CSRF token on every mutating call
		req.Header.Set("X-CSRFToken", c.csrfToken)
	}

	c.logger.Debug("Sending request",
		zap.String("method", method),
		zap.String("path", path),
		zap.String("request_id", requestID))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("failed to read response body: %w", err)
	}

	c.logger.Debug("Received response",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.String("request_id", requestID))

	if resp.StatusCode >= 300 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(respBody)),
		}
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("failed to decode response body: %w", err)
		}
	}

	return nil
}
