// Package apiclient is the single choke point for outbound calls to the
// SplitMacha API. It attaches the bearer token, logs every call, and
// classifies failures into the fixed error taxonomy.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/splitmacha/splitmacha/internal/session"
)

const defaultTimeout = 30 * time.Second

// Client wraps an http.Client with session-aware request handling.
// It reads the token from the session store on every call rather than caching
// it, so a logout or token refresh is picked up immediately.
type Client struct {
	http     *http.Client
	baseURL  string
	sessions session.Store
	logger   *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout overrides the default 30s request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithHTTPClient substitutes the underlying http.Client (tests).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// New creates a Client talking to baseURL, reading auth state from sessions.
func New(baseURL string, sessions session.Store, logger *slog.Logger, opts ...Option) *Client {
	c := &Client{
		http:     &http.Client{Timeout: defaultTimeout},
		baseURL:  baseURL,
		sessions: sessions,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get performs a GET request and decodes the response into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post performs a POST request with a JSON body and decodes the response into out.
func (c *Client) Post(ctx context.Context, path string, in, out any) error {
	return c.do(ctx, http.MethodPost, path, in, out)
}

// Put performs a PUT request with a JSON body and decodes the response into out.
func (c *Client) Put(ctx context.Context, path string, in, out any) error {
	return c.do(ctx, http.MethodPut, path, in, out)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	// Token is read fresh on every call. A stale in-memory copy could outlive
	// a logout racing with this request.
	sess, ok, err := c.sessions.LoadSession(ctx)
	switch {
	case err != nil:
		c.logger.Warn("Session read failed, sending request unauthenticated",
			"method", method, "path", path, "error", err)
	case ok:
		req.Header.Set("Authorization", "Bearer "+sess.Token)
	}

	start := time.Now()
	c.logger.Debug("API request", "method", method, "path", path)

	resp, err := c.http.Do(req)
	if err != nil {
		// No response received: a network-level failure, not a server one.
		c.logger.Warn("API network error", "method", method, "path", path, "error", err)
		return &Error{Category: NetworkError, Message: "Network error: no response received"}
	}
	defer resp.Body.Close()

	c.logger.Debug("API response",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode >= 400 {
		return c.classifyFailure(ctx, method, path, resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response body: %w", err)
		}
	}
	return nil
}

func (c *Client) classifyFailure(ctx context.Context, method, path string, resp *http.Response) error {
	var body errorBody
	// Body decode is best effort; an empty or malformed body falls back to
	// status text.
	_ = json.NewDecoder(resp.Body).Decode(&body)

	category := Classify(resp.StatusCode)
	apiErr := &Error{
		Category: category,
		Status:   resp.StatusCode,
		Message:  messageFrom(body, resp.StatusCode),
	}

	c.logger.Warn("API error",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"category", category,
		"message", apiErr.Message,
	)

	// Unauthorized is the one category with a forced side effect: the local
	// session is cleared no matter which call tripped it.
	if category == Unauthorized {
		if err := c.sessions.ClearSession(ctx); err != nil {
			c.logger.Error("Failed to clear session after 401", "error", err)
		}
	}

	return apiErr
}
