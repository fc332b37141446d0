package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	nethttp "net/http"
	"net/url"
	"strings"
	"time"

	"github.com/alshuail/authnotify/internal/pkg/circuitbreaker"
	"github.com/alshuail/authnotify/internal/pkg/logger"
	"github.com/alshuail/authnotify/internal/pkg/retry"
)

const (
	// DefaultTimeout bounds a single HTTP exchange
	DefaultTimeout = 10 * time.Second
	// maxResponseBody caps how much of a provider reply is read
	maxResponseBody = 1 << 20
)

// HTTPError is a non-2xx provider reply
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("provider returned HTTP %d", e.StatusCode)
}

// Rejected reports a 4xx other than 429: the request itself is wrong and retrying will not help
func (e *HTTPError) Rejected() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500 && e.StatusCode != nethttp.StatusTooManyRequests
}

// StatusOf extracts the provider status code from err, or 0
func StatusOf(err error) int {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode
	}
	return 0
}

// IsRejected reports whether err is a provider rejection of the request
func IsRejected(err error) bool {
	var httpErr *HTTPError
	return errors.As(err, &httpErr) && httpErr.Rejected()
}

// Response is a successful provider reply
type Response struct {
	StatusCode int
	Header     nethttp.Header
	Body       []byte
}

// DecodeJSON unmarshals the reply body into v
func (r *Response) DecodeJSON(v interface{}) error {
	if len(r.Body) == 0 {
		return nil
	}
	return json.Unmarshal(r.Body, v)
}

// ProviderClient calls third-party delivery providers through a per-provider circuit
// breaker and an exponential retrier. 5xx, 429 and network failures are retried;
// other 4xx replies fail at once.
type ProviderClient struct {
	client   *nethttp.Client
	retrier  *retry.Retrier
	breakers *circuitbreaker.Manager
	logger   *logger.ZapLogger
}

// ProviderClientConfig tunes the provider client
type ProviderClientConfig struct {
	Timeout    time.Duration
	MaxRetries int
	BaseDelay  time.Duration
}

// NewProviderClient creates a provider client
func NewProviderClient(cfg ProviderClientConfig, log *logger.ZapLogger) *ProviderClient {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if log == nil {
		log = logger.GetGlobalLogger()
	}

	retryConfig := retry.DefaultConfig()
	retryConfig.MaxRetries = cfg.MaxRetries
	if cfg.BaseDelay > 0 {
		retryConfig.BaseDelay = cfg.BaseDelay
	}

	return &ProviderClient{
		client:   &nethttp.Client{Timeout: cfg.Timeout},
		retrier:  retry.New(retryConfig, log),
		breakers: circuitbreaker.NewManager(log),
		logger:   log,
	}
}

// PostJSON sends body as JSON to endpoint on behalf of provider
func (c *ProviderClient) PostJSON(ctx context.Context, provider, endpoint string, headers map[string]string, body interface{}) (*Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	return c.do(ctx, provider, func(ctx context.Context) (*nethttp.Request, error) {
		req, err := nethttp.NewRequestWithContext(ctx, nethttp.MethodPost, endpoint, bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")
		setHeaders(req, headers)
		return req, nil
	})
}

// PostForm sends form as application/x-www-form-urlencoded to endpoint
func (c *ProviderClient) PostForm(ctx context.Context, provider, endpoint string, headers map[string]string, form url.Values) (*Response, error) {
	encoded := form.Encode()

	return c.do(ctx, provider, func(ctx context.Context) (*nethttp.Request, error) {
		req, err := nethttp.NewRequestWithContext(ctx, nethttp.MethodPost, endpoint, strings.NewReader(encoded))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		setHeaders(req, headers)
		return req, nil
	})
}

// BreakerStats exposes the state of every provider circuit
func (c *ProviderClient) BreakerStats() map[string]circuitbreaker.Stats {
	return c.breakers.GetStats()
}

func setHeaders(req *nethttp.Request, headers map[string]string) {
	for key, value := range headers {
		req.Header.Set(key, value)
	}
}

func (c *ProviderClient) do(ctx context.Context, provider string, build func(context.Context) (*nethttp.Request, error)) (*Response, error) {
	var result *Response

	err := c.breakers.Execute(ctx, provider, func(ctx context.Context) error {
		return c.retrier.Execute(ctx, func(ctx context.Context) error {
			req, err := build(ctx)
			if err != nil {
				return retry.Permanent(err)
			}

			resp, err := c.client.Do(req)
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
			if err != nil {
				return fmt.Errorf("failed to read provider response: %w", err)
			}

			if resp.StatusCode >= 300 {
				httpErr := &HTTPError{StatusCode: resp.StatusCode, Body: string(body)}
				if httpErr.Rejected() {
					return retry.Permanent(httpErr)
				}
				return httpErr
			}

			result = &Response{
				StatusCode: resp.StatusCode,
				Header:     resp.Header,
				Body:       body,
			}
			return nil
		})
	})
	if err != nil {
		c.logger.Debug("Provider call failed",
			logger.String("provider", provider),
			logger.Int("status", StatusOf(err)),
			logger.Err(err))
		return nil, err
	}

	return result, nil
}
