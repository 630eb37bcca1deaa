package requests

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"gohoops/pkg/config"
	"gohoops/pkg/messages"
)

// BaseURL of the stats API.
const BaseURL = "https://stats.nba.com/stats"

// How long a cached response stays valid.
const cacheTTL = 6 * time.Hour

// The stats API rejects requests without browser-looking headers.
var defaultHeaders = map[string]string{
	"User-Agent":      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
	"Accept":          "application/json, text/plain, */*",
	"Accept-Language": "en-US,en;q=0.9",
	"Connection":      "keep-alive",
	"Referer":         "https://www.nba.com/",
}

// FetchError is returned once every attempt against a endpoint failed.
type FetchError struct {
	Endpoint string
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf(messages.RequestFailedMsg+": %v", e.Endpoint, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// ResponseCache caches raw response bodies between invocations.
// Satisfied by the redis client, nil disables caching.
type ResponseCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

// Client issues rate limited, retried GET requests against the stats API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *RateLimiter
	maxRetries int
	retryDelay time.Duration
	cache      ResponseCache
}

// NewClient builds the client from the passed configuration.
// The cache may be nil.
func NewClient(cfg config.ClientConfiguration, cache ResponseCache) *Client {
	return &Client{
		baseURL:    BaseURL,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    NewRateLimiter(cfg.RateLimit),
		maxRetries: cfg.MaxRetries,
		retryDelay: cfg.RateLimit,
		cache:      cache,
	}
}

// WithBaseURL points the client at a different host. Used by the tests.
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = baseURL
	return c
}

// Get fetches one endpoint, retrying failed calls up to the configured
// maximum. The delay before each retry grows linearly in the attempt
// number. After the last failure the error surfaces as a FetchError.
func (c *Client) Get(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	cacheKey := c.cacheKey(endpoint, params)

	// Serve from the cache when a previous run already fetched this.
	if c.cache != nil {
		if cached, err := c.cache.Get(ctx, cacheKey); err == nil && cached != "" {
			return []byte(cached), nil
		}
	}

	var lastErr error
	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		if attempt > 1 {
			time.Sleep(c.retryDelay * time.Duration(attempt-1))
		}

		// Fixed delay before every outbound call.
		c.limiter.Wait()

		body, err := c.do(ctx, endpoint, params)
		if err == nil {
			if c.cache != nil {
				// Cache failures only cost a refetch next run.
				c.cache.Set(ctx, cacheKey, string(body), cacheTTL)
			}
			return body, nil
		}

		lastErr = err
	}

	return nil, &FetchError{Endpoint: endpoint, Err: lastErr}
}

// do runs a single attempt.
func (c *Client) do(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	requestURL := fmt.Sprintf("%s/%s?%s", c.baseURL, endpoint, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, err
	}

	for key, value := range defaultHeaders {
		req.Header.Set(key, value)
	}

	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf(messages.BadStatusCodeMsg, resp.StatusCode, endpoint)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return body, nil
}

// cacheKey builds a stable key from the endpoint and its parameters.
func (c *Client) cacheKey(endpoint string, params url.Values) string {
	// Encode sorts the parameters by key.
	return "nba:" + endpoint + "?" + params.Encode()
}
