// Package clock keeps the device's monotonic and wall-clock time.
package clock

import (
	"context"
	"time"

	"github.com/ardnew/alarmclock/errcode"
	"github.com/ardnew/alarmclock/model"
)

// Service fetches the authoritative current time for a location.
// timesvc provides the implementations.
type Service interface {
	FetchWallClock(ctx context.Context, location string) (time.Time, error)
}

// Source is the clock every component reads. Wall time is the last synced
// time advanced by the monotonic time elapsed since that sync, so the clock
// drifts with the oscillator between syncs.
type Source struct {
	svc   Service
	now   func() time.Time
	start time.Time

	synced   bool
	base     time.Time     // wall time received at the last sync
	baseMono time.Duration // Mono() at the last sync
}

// New returns a Source using the platform clock.
func New(svc Service) *Source {
	return NewWithClock(svc, time.Now)
}

// NewWithClock returns a Source reading the platform clock from now.
func NewWithClock(svc Service, now func() time.Time) *Source {
	return &Source{svc: svc, now: now, start: now()}
}

// Mono returns the time elapsed since the Source was created. It never
// decreases.
func (s *Source) Mono() time.Duration {
	d := s.now().Sub(s.start)
	if d < 0 {
		return 0
	}
	return d
}

// Wall returns the current local wall-clock time. Before the first
// successful sync it is the platform clock.
func (s *Source) Wall() time.Time {
	if !s.synced {
		return s.now()
	}
	return s.base.Add(s.Mono() - s.baseMono)
}

// TimeOfDay returns the hour and minute of Wall.
func (s *Source) TimeOfDay() model.TimeOfDay {
	return model.TimeOfDayOf(s.Wall())
}

// Synced reports whether Sync has ever succeeded.
func (s *Source) Synced() bool { return s.synced }

// Sync replaces the wall-clock base with the service's time for location.
// On failure the base is left alone and a network error is returned.
func (s *Source) Sync(ctx context.Context, location string) error {
	t, err := s.svc.FetchWallClock(ctx, location)
	if err != nil {
		if errcode.Of(err) == errcode.Error {
			err = errcode.Wrap(errcode.Network, "time sync", err)
		}
		return err
	}
	s.base, s.baseMono, s.synced = t, s.Mono(), true
	return nil
}
