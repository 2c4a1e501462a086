// Package api implements the REST client for the storefront backend. All
// stores mirror state through it; it implements model.Backend.
package api

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

	"github.com/parvecare/storefront/internal/logger"
	"github.com/parvecare/storefront/internal/model"
)

// TokenSource supplies the current session token, empty when anonymous.
type TokenSource interface {
	Token() string
}

// Internal adapter interface to enable mocking without a live backend.
type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

var _ model.Backend = (*Client)(nil)

// Client talks to the storefront backend over HTTP/JSON.
type Client struct {
	http    httpDoer
	baseURL string
	tokens  TokenSource
	logger  *logger.Logger
}

// NewClient creates a backend client. baseURL is the API root, e.g.
// "https://api.example.com/api".
func NewClient(baseURL string, timeout time.Duration, tokens TokenSource, logger *logger.Logger) *Client {
	return &Client{
		http:    &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
		logger:  logger,
	}
}

// Error is a non-2xx backend response with its message preserved.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend returned %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("backend returned %d", e.Status)
}

type errorBody struct {
	Message string `json:"message"`
}

// do performs one request/response cycle. body and out are optional; authed
// requests carry the bearer token when one is present. Every request gets a
// request ID for log correlation with the backend.
func (c *Client) do(ctx context.Context, method, path string, body, out any, authed bool) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		if tok := c.tokens.Token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	c.logger.Debug("api: sending request",
		"method", method,
		"path", path,
		"request_id", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		io.Copy(io.Discard, resp.Body)
		return model.ErrUnauthorized
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := &Error{Status: resp.StatusCode}
		var eb errorBody
		if err := json.NewDecoder(resp.Body).Decode(&eb); err == nil {
			apiErr.Message = eb.Message
		}
		c.logger.Debug("api: request failed",
			"method", method,
			"path", path,
			"request_id", requestID,
			"status", resp.StatusCode)
		return apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	} else {
		io.Copy(io.Discard, resp.Body)
	}

	return nil
}
