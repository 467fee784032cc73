// Package timesvc implements the remote time services the clock syncs
// against: an HTTP time zone API and plain NTP.
package timesvc

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"github.com/ardnew/alarmclock/errcode"
)

// Service fetches the authoritative current time for a location.
type Service interface {
	FetchWallClock(ctx context.Context, location string) (time.Time, error)
}

// RateLimited wraps a Service so that calls are spaced at least every apart.
// A call made too early waits for its turn; the wait counts as part of the
// (blocking) network call. A non-positive every never waits.
type RateLimited struct {
	svc     Service
	limiter *rate.Limiter
}

// NewRateLimited returns svc limited to one call per every, with no burst.
func NewRateLimited(svc Service, every time.Duration) *RateLimited {
	limit := rate.Inf
	if every > 0 {
		limit = rate.Every(every)
	}
	return &RateLimited{svc: svc, limiter: rate.NewLimiter(limit, 1)}
}

// FetchWallClock waits for the limiter and forwards to the wrapped service.
func (r *RateLimited) FetchWallClock(ctx context.Context, location string) (time.Time, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return time.Time{}, errcode.Wrap(errcode.Network, "time rate limit", err)
	}
	return r.svc.FetchWallClock(ctx, location)
}

var (
	_ Service = (*RateLimited)(nil)
	_ Service = (*WorldTime)(nil)
	_ Service = (*NTP)(nil)
)
