package weather

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/ardnew/alarmclock/errcode"
)

// Default client settings.
const (
	DefaultBaseURL = "http://api.openweathermap.org/data/2.5"
	DefaultTimeout = 10 * time.Second
)

// Fetcher returns the raw current-weather response.
type Fetcher interface {
	Fetch(ctx context.Context) ([]byte, error)
}

// ClientConfig configures Client. Zero BaseURL and Timeout take the defaults
// above. A zero MinSpace leaves requests unlimited.
type ClientConfig struct {
	BaseURL  string
	Location string // OpenWeatherMap query, e.g. "London,ca"
	Token    string // OpenWeatherMap appid
	Timeout  time.Duration
	MinSpace time.Duration // minimum time between requests, 0 for none
}

// Client fetches current weather from OpenWeatherMap. With a positive
// MinSpace, requests are spaced by a rate limiter.
type Client struct {
	url        string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient returns a Client for config.
func NewClient(config ClientConfig) *Client {
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.Timeout == 0 {
		config.Timeout = DefaultTimeout
	}

	params := url.Values{}
	params.Add("q", config.Location)
	params.Add("appid", config.Token)

	return &Client{
		url:        strings.TrimRight(config.BaseURL, "/") + "/weather?" + params.Encode(),
		httpClient: &http.Client{Timeout: config.Timeout},
		limiter:    newLimiter(config.MinSpace),
	}
}

func newLimiter(space time.Duration) *rate.Limiter {
	if space <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Every(space), 1)
}

// URL returns the request URL, which includes the API token.
func (c *Client) URL() string { return c.url }

// Fetch waits for the limiter, if any, performs the request and returns the body.
// Every failure is a network error.
func (c *Client) Fetch(ctx context.Context) ([]byte, error) {
	const op = "weather fetch"

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, errcode.Wrap(errcode.Network, op, fmt.Errorf("rate limit wait canceled: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, errcode.Wrap(errcode.Network, op, fmt.Errorf("create request: %w", err))
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errcode.Wrap(errcode.Network, op, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errcode.Wrap(errcode.Network, op, fmt.Errorf("read response body: %w", err))
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &errcode.E{C: errcode.Network, Op: op,
			Msg: fmt.Sprintf("API error (status %d): %s", resp.StatusCode, strings.TrimSpace(string(body)))}
	}
	return body, nil
}
