package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/singleflight"

	"github.com/riskibarqy/sunday-dashboard/internal/platform/logging"
	"github.com/riskibarqy/sunday-dashboard/internal/platform/resilience"
	"github.com/riskibarqy/sunday-dashboard/internal/usecase"
)

const maxBodyBytes = 32 << 20

var errTransient = crerr.New("provider transient failure")

// StatusError is a non-retryable upstream status.
type StatusError struct {
	Provider string
	Code     int
	Body     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s status=%d body=%s", e.Provider, e.Code, e.Body)
}

type Config struct {
	Name           string
	HTTPClient     *http.Client
	BaseURL        string
	Timeout        time.Duration
	MaxRetries     int
	Backoff        time.Duration
	UserAgent      string
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
	Clock          clockwork.Clock
}

// Client issues GET requests against one JSON API with retries, a breaker and request collapsing.
type Client struct {
	name           string
	httpClient     *http.Client
	baseURL        string
	maxRetries     int
	backoff        time.Duration
	userAgent      string
	logger         *logging.Logger
	clock          clockwork.Clock
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         singleflight.Group
}

func New(cfg Config) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	clock := cfg.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 15 * time.Second
	}

	backoff := cfg.Backoff
	if backoff <= 0 {
		backoff = time.Second
	}

	name := strings.TrimSpace(cfg.Name)
	if name == "" {
		name = "provider"
	}

	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)
	breaker := resilience.NewCircuitBreaker(name, breakerCfg,
		resilience.WithClock(clock),
		resilience.WithStateChange(func(name string, from, to resilience.CircuitState) {
			logger.Warn("provider circuit breaker state changed", "provider", name, "from", from, "to", to)
		}),
	)

	return &Client{
		name:           name,
		httpClient:     httpClient,
		baseURL:        strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		maxRetries:     max(cfg.MaxRetries, 0),
		backoff:        backoff,
		userAgent:      cfg.UserAgent,
		logger:         logger,
		clock:          clock,
		breaker:        breaker,
		circuitEnabled: breakerCfg.Enabled,
	}
}

func (c *Client) Breaker() *resilience.CircuitBreaker {
	return c.breaker
}

// GetJSON fetches path and decodes the body into target.
func (c *Client) GetJSON(ctx context.Context, path string, query url.Values, target any) error {
	raw, err := c.get(ctx, path, query)
	if err != nil {
		return err
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return crerr.Wrapf(err, "decode %s payload", c.name)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "provider circuit breaker rejected request", "provider", c.name, "state", c.breaker.State())
			return nil, fmt.Errorf("%w: %s is temporarily unavailable", usecase.ErrDependencyUnavailable, c.name)
		}
	}

	fullURL := c.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	out, err, shared := c.flight.Do(fullURL, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, fullURL)
		if c.circuitEnabled {
			switch {
			case reqErr == nil:
				c.breaker.RecordSuccess()
			case IsTransient(reqErr):
				c.breaker.RecordFailure()
			default:
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if shared {
		c.logger.DebugContext(ctx, "provider request collapsed", "provider", c.name, "path", path)
	}
	if err != nil {
		if IsTransient(err) {
			return nil, fmt.Errorf("%w: %s: %v", usecase.ErrDependencyUnavailable, c.name, err)
		}
		return nil, err
	}

	raw, ok := out.([]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected response payload type %T", out)
	}
	return raw, nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, crerr.Wrap(err, "build request")
		}
		req.Header.Set("Accept", "application/json")
		if c.userAgent != "" {
			req.Header.Set("User-Agent", c.userAgent)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = crerr.Mark(crerr.Wrap(err, "send request"), errTransient)
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
			_ = resp.Body.Close()
			switch {
			case readErr != nil:
				lastErr = crerr.Mark(crerr.Wrap(readErr, "read response body"), errTransient)
			case resp.StatusCode >= 200 && resp.StatusCode < 300:
				return raw, nil
			case isRetryableStatus(resp.StatusCode):
				lastErr = crerr.Mark(&StatusError{Provider: c.name, Code: resp.StatusCode, Body: abbreviateBody(raw)}, errTransient)
			default:
				return nil, &StatusError{Provider: c.name, Code: resp.StatusCode, Body: abbreviateBody(raw)}
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * c.backoff
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-c.clock.After(backoff):
		}
	}

	if lastErr == nil {
		lastErr = crerr.Mark(crerr.New("provider request failed"), errTransient)
	}
	c.logger.WarnContext(ctx, "provider request failed", "provider", c.name, "url", fullURL, "error", lastErr)
	return nil, lastErr
}

// IsTransient reports whether err came from a retryable upstream failure.
func IsTransient(err error) bool {
	return crerr.Is(err, errTransient)
}

// StatusCode extracts the upstream status from err, or 0.
func StatusCode(err error) int {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Code
	}
	return 0
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
