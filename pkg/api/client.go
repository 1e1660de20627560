// Package api is the HTTP client for the summarization backend.
//
// Every response body is checked against an embedded JSON schema before it is turned into
// the typed results of this package, so the rest of the program never sees an arbitrary
// JSON shape. Errors returned by the client methods are transport errors: the server was
// unreachable or did not answer with the expected JSON. A well-formed `success: false`
// answer is not an error; it comes back as the Failure variant of the result.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Exported variables.
var (
	// ErrSchema marks a JSON body that does not have the documented shape.
	ErrSchema = errors.New("response failed schema check")
	// ErrTransport marks every error returned by Client methods.
	ErrTransport = errors.New("transport error")
)

// Endpoint paths of the backend contract.
const (
	PathSummarize      = "/api/summarize"
	PathAnalytics      = "/api/analytics"
	PathAnalyticsReset = "/api/analytics/reset"
	PathHealth         = "/api/health"
	PathBatch          = "/api/batch-summarize"
)

// DefaultTimeout bounds a whole request including reading the body.
const DefaultTimeout = 30 * time.Second

// RequestIDHeader carries a per-request id that also appears in the debug log.
const RequestIDHeader = "X-Request-ID"

const maxBodyBytes = 8 << 20

// Client talks to the summarization server.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
	validator  *validator
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the request timeout of the default HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient builds a client for the server at baseURL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	v, err := newValidator()
	if err != nil {
		return nil, err
	}

	c := &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
		logger:     slog.New(slog.DiscardHandler),
		validator:  v,
	}

	for _, opt := range opts {
		opt(c)
	}

	c.logger = c.logger.With("component", "api.client")

	return c, nil
}

// BaseURL returns the server address the client was built with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Summarize issues POST /api/summarize.
func (c *Client) Summarize(ctx context.Context, req SummarizeRequest) (SummarizeResult, error) {
	body, err := c.do(ctx, http.MethodPost, PathSummarize, req)
	if err != nil {
		return SummarizeResult{}, err
	}

	result, err := c.decodeSummarize(body)
	if err != nil {
		return SummarizeResult{}, transportError(err)
	}

	return result, nil
}

// Analytics issues GET /api/analytics. A `success: false` answer, or one without stats,
// is reported as an error since the overlay has nothing to show for it.
func (c *Client) Analytics(ctx context.Context) (AnalyticsSnapshot, error) {
	body, err := c.do(ctx, http.MethodGet, PathAnalytics, nil)
	if err != nil {
		return AnalyticsSnapshot{}, err
	}

	if err := check(c.validator.analytics, "analytics", body); err != nil {
		return AnalyticsSnapshot{}, transportError(err)
	}

	var wire analyticsWire
	if err := json.Unmarshal(body, &wire); err != nil {
		return AnalyticsSnapshot{}, transportError(fmt.Errorf("decode analytics response: %w", err))
	}

	if !wire.Success || wire.Stats == nil {
		return AnalyticsSnapshot{}, fmt.Errorf("analytics unavailable: %s", wire.Message)
	}

	return wire.Stats.snapshot(), nil
}

// ResetAnalytics issues POST /api/analytics/reset.
func (c *Client) ResetAnalytics(ctx context.Context) error {
	body, err := c.do(ctx, http.MethodPost, PathAnalyticsReset, struct{}{})
	if err != nil {
		return err
	}

	var wire struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &wire); err != nil {
		return transportError(fmt.Errorf("decode reset response: %w", err))
	}

	if !wire.Success {
		return fmt.Errorf("analytics reset rejected: %s", wire.Message)
	}

	return nil
}

// Health issues GET /api/health.
func (c *Client) Health(ctx context.Context) (Health, error) {
	body, err := c.do(ctx, http.MethodGet, PathHealth, nil)
	if err != nil {
		return Health{}, err
	}

	var health Health
	if err := json.Unmarshal(body, &health); err != nil {
		return Health{}, transportError(fmt.Errorf("decode health response: %w", err))
	}

	return health, nil
}

// BatchSummarize issues POST /api/batch-summarize. Callers keep batches at or below
// MaxBatchSize; the server rejects larger ones with a Failure.
func (c *Client) BatchSummarize(ctx context.Context, req BatchRequest) (BatchResult, error) {
	body, err := c.do(ctx, http.MethodPost, PathBatch, req)
	if err != nil {
		return BatchResult{}, err
	}

	if err := check(c.validator.batch, "batch", body); err != nil {
		return BatchResult{}, transportError(err)
	}

	var wire batchWire
	if err := json.Unmarshal(body, &wire); err != nil {
		return BatchResult{}, transportError(fmt.Errorf("decode batch response: %w", err))
	}

	if !wire.Success {
		return BatchResult{Failure: &Failure{Message: wire.Message}}, nil
	}

	items := make([]BatchItem, 0, len(wire.Results))
	for i, raw := range wire.Results {
		result, err := c.decodeSummarize(raw)
		if err != nil {
			return BatchResult{}, transportError(fmt.Errorf("batch result %d: %w", i, err))
		}

		items = append(items, BatchItem{Index: i, Result: result})
	}

	return BatchResult{Total: wire.Total, Processed: wire.Processed, Items: items}, nil
}

func (c *Client) decodeSummarize(body []byte) (SummarizeResult, error) {
	if err := check(c.validator.summarize, "summarize", body); err != nil {
		return SummarizeResult{}, err
	}

	var wire summarizeWire
	if err := json.Unmarshal(body, &wire); err != nil {
		return SummarizeResult{}, fmt.Errorf("decode summarize response: %w", err)
	}

	return wire.result(), nil
}

// do sends the request and returns the raw body. The status code is not inspected: the
// server reports application failures as JSON bodies on 4xx and 5xx responses too.
func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var reader io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode %s request: %w", path, err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, transportError(fmt.Errorf("build %s request: %w", path, err))
	}

	requestID := uuid.NewString()
	req.Header.Set(RequestIDHeader, requestID)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("request failed", "method", method, "path", path, "request_id", requestID, "error", err)
		return nil, transportError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, transportError(fmt.Errorf("read %s response: %w", path, err))
	}

	c.logger.Debug("request complete",
		"method", method,
		"path", path,
		"request_id", requestID,
		"status", resp.StatusCode,
		"bytes", len(body),
		"elapsed", time.Since(start),
	)

	return body, nil
}

func transportError(err error) error {
	return fmt.Errorf("%w: %w", ErrTransport, err)
}
