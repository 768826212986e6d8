package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrymomot/goodform/pkg/logger"
)

// maxResponseSize caps the decoded response body.
const maxResponseSize = 1 << 20

// Client performs remote validation round trips against one endpoint.
// Safe for concurrent use.
type Client struct {
	baseURL string
	client  *http.Client
	opts    *clientOptions
}

// NewClient validates baseURL and returns a client for it. baseURL may carry
// its own query string; batch parameters are appended to it.
func NewClient(baseURL string, opts ...ClientOption) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("%w: URL is required", ErrInvalidURL)
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: only http and https schemes are supported", ErrInvalidURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("%w: host is required", ErrInvalidURL)
	}

	options := defaultClientOptions()
	for _, opt := range opts {
		opt(options)
	}

	client := options.httpClient
	if client == nil {
		client = &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		}
	}

	return &Client{baseURL: baseURL, client: client, opts: options}, nil
}

// Check sends b as one GET request and returns the decoded verdicts.
// An empty batch is not sent.
func (c *Client) Check(ctx context.Context, b Batch) (Results, error) {
	if b.IsEmpty() {
		return Results{}, nil
	}

	start := time.Now()
	results, err := c.check(ctx, b)
	if c.opts.metrics != nil {
		c.opts.metrics.observe(results, b.Len(), time.Since(start), err)
	}
	return results, err
}

func (c *Client) check(ctx context.Context, b Batch) (Results, error) {
	if c.opts.breaker != nil && !c.opts.breaker.Allow() {
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, ErrCircuitOpen)
	}

	endpoint := c.endpoint(b.Query())

	var lastErr error
	for attempt := 0; attempt <= c.opts.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, fmt.Errorf("%w: %w", ErrRequestFailed, ctx.Err())
			case <-time.After(c.opts.backoff.NextInterval(attempt)):
			}
		}

		started := time.Now()
		results, status, err := c.attempt(ctx, endpoint, b.ID)
		c.report(Attempt{BatchID: b.ID, Number: attempt + 1, StatusCode: status, Err: err}, started)

		if c.opts.breaker != nil {
			if err == nil {
				c.opts.breaker.RecordSuccess()
			} else {
				c.opts.breaker.RecordFailure()
			}
		}

		if err == nil {
			return results, nil
		}
		lastErr = err

		if isPermanent(status) || errors.Is(err, ErrInvalidResponse) {
			return nil, fmt.Errorf("%w: %w: %w", ErrRequestFailed, ErrPermanentFailure, err)
		}
	}

	return nil, fmt.Errorf("%w after %d attempts: %w", ErrRequestFailed, c.opts.maxRetries+1, lastErr)
}

func (c *Client) endpoint(query string) string {
	if query == "" {
		return c.baseURL
	}
	sep := "?"
	if strings.Contains(c.baseURL, "?") {
		sep = "&"
	}
	return c.baseURL + sep + query
}

func (c *Client) attempt(ctx context.Context, endpoint, batchID string) (Results, int, error) {
	reqCtx := ctx
	if c.opts.timeout > 0 {
		var cancel context.CancelFunc
		reqCtx, cancel = context.WithTimeout(ctx, c.opts.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}

	// Content-Type is meaningless on a GET but servers of this protocol expect it.
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "goodform-remote/1.0")
	if batchID != "" {
		req.Header.Set("X-Batch-ID", batchID)
	}
	for k, v := range c.opts.headers {
		req.Header.Set(k, v)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		if errors.Is(reqCtx.Err(), context.DeadlineExceeded) {
			return nil, 0, fmt.Errorf("%w: %w", ErrTimeout, err)
		}
		return nil, 0, err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := strings.ReplaceAll(string(body), "\n", " ")
		if len(msg) > 200 {
			msg = msg[:200] + "..."
		}
		return nil, resp.StatusCode, fmt.Errorf("endpoint returned status %d: %s", resp.StatusCode, msg)
	}

	results := Results{}
	if len(strings.TrimSpace(string(body))) == 0 {
		return results, resp.StatusCode, nil
	}
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, resp.StatusCode, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}

	return results, resp.StatusCode, nil
}

func (c *Client) report(a Attempt, started time.Time) {
	a.Duration = time.Since(started)
	if a.Err != nil && c.opts.logger != nil {
		c.opts.logger.Debug("remote validation attempt failed",
			logger.BatchID(a.BatchID),
			logger.Attempt(a.Number),
			slog.Int("status", a.StatusCode),
			logger.Error(a.Err),
		)
	}
	if c.opts.onAttempt != nil {
		c.opts.onAttempt(a)
	}
}

// isPermanent reports whether a status will not change on retry.
func isPermanent(status int) bool {
	if status < 400 || status >= 500 {
		return false
	}
	switch status {
	case http.StatusRequestTimeout, http.StatusTooEarly, http.StatusTooManyRequests:
		return false
	}
	return true
}
