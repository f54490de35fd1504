// Package fetcher wraps HTTP GET with a durable content cache and retry.
// Every remote lookup in the pipeline routes through a single shared Client
// so the cache and connection pool are reused across concurrent enrichments.
package fetcher

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/hiravi/volt-parser/internal/cache"
	"github.com/hiravi/volt-parser/internal/resilience"
)

const (
	defaultUserAgent = "volt-parser/0.4 (+https://github.com/hiravi/volt-parser)"
	defaultTimeout   = 15 * time.Second
	defaultHostRate  = rate.Limit(10)
)

// Client performs cached, rate-limited, retried JSON GETs. Each remote host
// gets its own rate limiter and circuit breaker.
type Client struct {
	http      *http.Client
	store     cache.Store
	userAgent string
	retry     resilience.Config
	breaker   resilience.BreakerConfig
	hostRate  rate.Limit

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	breakers map[string]*resilience.Breaker
}

// Option configures the Client.
type Option func(*Client)

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithHTTPClient overrides the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithRetry overrides the retry policy.
func WithRetry(cfg resilience.Config) Option {
	return func(c *Client) {
		c.retry = cfg
	}
}

// WithHostRate overrides the per-host request rate limit.
func WithHostRate(limit rate.Limit) Option {
	return func(c *Client) {
		c.hostRate = limit
	}
}

// WithBreaker overrides the per-host circuit breaker policy.
func WithBreaker(cfg resilience.BreakerConfig) Option {
	return func(c *Client) {
		c.breaker = cfg
	}
}

// New creates a Client over the given cache store. The store may be shared
// across goroutines; the Client itself is safe for concurrent use.
func New(store cache.Store, opts ...Option) *Client {
	c := &Client{
		http: &http.Client{
			Timeout: defaultTimeout,
			Transport: &http.Transport{
				MaxIdleConnsPerHost: 20,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		store:     store,
		userAgent: defaultUserAgent,
		retry:     resilience.DefaultConfig(),
		breaker:   resilience.DefaultBreakerConfig(),
		hostRate:  defaultHostRate,
		limiters:  map[string]*rate.Limiter{},
		breakers:  map[string]*resilience.Breaker{},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// FetchJSON returns the JSON body for rawURL, serving from cache when
// possible. On a miss it issues a GET with the fixed header set; transport
// errors and non-200 statuses become FetchError and are retried with
// exponential backoff, while invalid JSON becomes DecodeError and surfaces
// immediately. A host whose breaker is open fails fast with ErrBreakerOpen.
// Successful bodies are written back to the cache under rawURL.
func (c *Client) FetchJSON(ctx context.Context, rawURL string) (json.RawMessage, error) {
	if cached, ok, err := c.store.Get(ctx, rawURL); err != nil {
		zap.L().Warn("cache read failed", zap.String("url", rawURL), zap.Error(err))
	} else if ok {
		return cached, nil
	}

	cfg := c.retry
	cfg.ShouldRetry = IsFetchError
	if cfg.OnRetry == nil {
		cfg.OnRetry = resilience.Logger("fetcher", "get")
	}

	br := c.hostBreaker(rawURL)
	body, err := resilience.Do(ctx, cfg, func(ctx context.Context) ([]byte, error) {
		return resilience.Guard(ctx, br, func(ctx context.Context) ([]byte, error) {
			return c.get(ctx, rawURL)
		})
	})
	if err != nil {
		return nil, err
	}

	if !json.Valid(body) {
		return nil, &DecodeError{URL: rawURL, Err: errInvalidJSON}
	}

	if err := c.store.Set(ctx, rawURL, body); err != nil {
		zap.L().Warn("cache write failed", zap.String("url", rawURL), zap.Error(err))
	}

	return body, nil
}

func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	if err := c.limiter(rawURL).Wait(ctx); err != nil {
		return nil, &FetchError{URL: rawURL, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &FetchError{URL: rawURL, Err: err}
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &FetchError{URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, &FetchError{URL: rawURL, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{URL: rawURL, Err: err}
	}
	return body, nil
}

func (c *Client) limiter(rawURL string) *rate.Limiter {
	host := hostOf(rawURL)

	c.mu.Lock()
	defer c.mu.Unlock()
	lim, ok := c.limiters[host]
	if !ok {
		burst := 1
		if c.hostRate != rate.Inf {
			if b := int(c.hostRate); b > burst {
				burst = b
			}
		}
		lim = rate.NewLimiter(c.hostRate, burst)
		c.limiters[host] = lim
	}
	return lim
}

func (c *Client) hostBreaker(rawURL string) *resilience.Breaker {
	host := hostOf(rawURL)

	c.mu.Lock()
	defer c.mu.Unlock()
	br, ok := c.breakers[host]
	if !ok {
		br = resilience.NewBreaker(c.breaker)
		c.breakers[host] = br
	}
	return br
}

func hostOf(rawURL string) string {
	if u, err := url.Parse(rawURL); err == nil {
		return u.Host
	}
	return ""
}
