package timesvc

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ardnew/alarmclock/errcode"
)

// DefaultWorldTimeURL is the public WorldTimeAPI time zone endpoint.
const DefaultWorldTimeURL = "http://worldtimeapi.org/api/timezone"

// WorldTime asks an HTTP time zone API for the local time of an IANA
// location such as "America/Toronto".
type WorldTime struct {
	baseURL    string
	httpClient *http.Client
}

// NewWorldTime returns a client for baseURL (DefaultWorldTimeURL if empty).
func NewWorldTime(baseURL string, timeout time.Duration) *WorldTime {
	if baseURL == "" {
		baseURL = DefaultWorldTimeURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &WorldTime{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FetchWallClock returns the current time at location, in that location's
// UTC offset.
func (w *WorldTime) FetchWallClock(ctx context.Context, location string) (time.Time, error) {
	const op = "worldtime"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, w.baseURL+"/"+location, nil)
	if err != nil {
		return time.Time{}, errcode.Wrap(errcode.Network, op, fmt.Errorf("create request: %w", err))
	}
	resp, err := w.httpClient.Do(req)
	if err != nil {
		return time.Time{}, errcode.Wrap(errcode.Network, op, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return time.Time{}, errcode.Wrap(errcode.Network, op, fmt.Errorf("read response body: %w", err))
	}
	if resp.StatusCode != http.StatusOK {
		return time.Time{}, &errcode.E{C: errcode.Network, Op: op,
			Msg: fmt.Sprintf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))}
	}
	return parseWorldTime(body)
}

func parseWorldTime(body []byte) (time.Time, error) {
	const op = "worldtime parse"

	var response struct {
		Datetime string `json:"datetime"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return time.Time{}, errcode.Wrap(errcode.Format, op, err)
	}
	if response.Datetime == "" {
		return time.Time{}, errcode.New(errcode.Format, op, "missing datetime")
	}
	t, err := time.Parse(time.RFC3339Nano, response.Datetime)
	if err != nil {
		return time.Time{}, errcode.Wrap(errcode.Format, op, err)
	}
	return t, nil
}
