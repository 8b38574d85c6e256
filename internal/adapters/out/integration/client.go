// Package integration provides HTTP clients for the Orders and Identity
// services. Calls are bounded by a timeout and never retried.
package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"logistics/internal/pkg/requestid"
)

// DefaultTimeout bounds every call when Config.Timeout is zero.
const DefaultTimeout = 10 * time.Second

// Config holds the settings of one external service client.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// client is the transport shared by the service clients.
type client struct {
	service    string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

func newClient(service string, cfg Config, logger *slog.Logger) client {
	if logger == nil {
		logger = slog.Default()
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	return client{
		service: service,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger.With("component", service+"-client"),
	}
}

// getJSON performs a GET and decodes a 200 body into out. Other statuses are
// returned without decoding so callers can interpret them.
func (c client) getJSON(ctx context.Context, op, path string, query url.Values, out any) (int, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, c.fail(op, fmt.Errorf("create request: %w", err))
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, c.fail(op, fmt.Errorf("send request: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return resp.StatusCode, nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, c.fail(op, fmt.Errorf("decode response: %w", err))
	}
	return resp.StatusCode, nil
}

// Ping checks that the service answers HTTP at all. Any status counts as
// reachable.
func (c client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return c.fail("ping", fmt.Errorf("create request: %w", err))
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.fail("ping", fmt.Errorf("send request: %w", err))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.Body.Close()
}

// Name returns the service name used in logs and errors.
func (c client) Name() string {
	return c.service
}

func (c client) setHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/json")
	if id := requestid.FromContext(req.Context()); id != "" {
		req.Header.Set(requestid.Header, id)
	}
}

func (c client) fail(op string, cause error) error {
	return &Error{Service: c.service, Op: op, Cause: cause}
}
