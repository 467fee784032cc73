// Package timesync refreshes the wall clock from the network on a schedule.
package timesync

import (
	"context"
	"time"

	"github.com/ardnew/alarmclock/schedule"
)

// DefaultInterval is how often the wall clock is re-synchronized.
const DefaultInterval = time.Hour

// Clock is the part of clock.Source that Sync drives.
type Clock interface {
	Sync(ctx context.Context, location string) error
}

// Sync calls Clock.Sync once per interval, and on the first tick.
type Sync struct {
	clock    Clock
	location string
	timer    *schedule.Timer
}

// New returns a Sync for location. A zero interval means DefaultInterval.
func New(clock Clock, location string, interval time.Duration) *Sync {
	if interval == 0 {
		interval = DefaultInterval
	}
	return &Sync{clock: clock, location: location, timer: schedule.New(interval)}
}

// Tick syncs the clock if the interval has elapsed. A failed sync leaves the
// timer alone so the next tick tries again.
func (s *Sync) Tick(ctx context.Context, now time.Duration) error {
	if !s.timer.Due(now) {
		return nil
	}
	if err := s.clock.Sync(ctx, s.location); err != nil {
		return err
	}
	s.timer.MarkFired(now)
	return nil
}

// Timer exposes the schedule, mainly for inspection.
func (s *Sync) Timer() *schedule.Timer { return s.timer }
