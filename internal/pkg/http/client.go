package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"strings"
	"time"

	"github.com/piresc/evoting/internal/pkg/circuitbreaker"
	"github.com/piresc/evoting/internal/pkg/logger"
)

// DefaultTimeout for outbound requests
const DefaultTimeout = 15 * time.Second

// maxBodyBytes caps how much of a response body is read
const maxBodyBytes = 1 << 20

// HTTPError is returned for 5xx responses so the breaker counts them
type HTTPError struct {
	StatusCode int
	Body       []byte
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("upstream returned status %d", e.StatusCode)
}

// BearerClient sends JSON requests authenticated with a bearer secret
type BearerClient struct {
	client  *nethttp.Client
	baseURL string
	secret  string
	breaker *circuitbreaker.CircuitBreaker
}

// NewBearerClient creates a client with a bounded timeout and a circuit breaker
func NewBearerClient(baseURL, secret string, timeout time.Duration, breaker *circuitbreaker.CircuitBreaker) *BearerClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &BearerClient{
		client:  &nethttp.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
		secret:  secret,
		breaker: breaker,
	}
}

// Response is a fully read upstream response
type Response struct {
	StatusCode int
	Body       []byte
}

// Get performs an authenticated GET
func (c *BearerClient) Get(ctx context.Context, path string) (*Response, error) {
	return c.do(ctx, nethttp.MethodGet, path, nil)
}

// Post performs an authenticated POST with a JSON body
func (c *BearerClient) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.do(ctx, nethttp.MethodPost, path, body)
}

func (c *BearerClient) do(ctx context.Context, method, path string, body interface{}) (*Response, error) {
	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		payload = bytes.NewReader(raw)
	}

	req, err := nethttp.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secret)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	var out *Response
	call := func(ctx context.Context) error {
		start := time.Now()
		resp, err := c.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
		if err != nil {
			return fmt.Errorf("failed to read response body: %w", err)
		}

		logger.Debug("Upstream call",
			logger.String("method", method),
			logger.String("path", path),
			logger.Int("status", resp.StatusCode),
			logger.Duration("latency", time.Since(start)))

		out = &Response{StatusCode: resp.StatusCode, Body: raw}
		if resp.StatusCode >= 500 {
			return &HTTPError{StatusCode: resp.StatusCode, Body: raw}
		}
		return nil
	}

	if c.breaker != nil {
		err = c.breaker.Execute(ctx, call)
	} else {
		err = call(ctx)
	}
	if err != nil {
		return out, err
	}
	return out, nil
}
