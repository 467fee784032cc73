// Package schedule implements the interval check shared by every periodic
// job in the main loop.
package schedule

import "time"

// Timer decides when a periodic job is due. Times are monotonic offsets as
// returned by clock.Source.Mono.
//
// The zero Timer has never fired, so its first Due check is always true.
type Timer struct {
	Interval time.Duration

	last  time.Duration
	fired bool
}

// New returns a Timer that fires once per interval.
func New(interval time.Duration) *Timer {
	return &Timer{Interval: interval}
}

// Due reports whether the job should run at now. It does not modify t.
// The elapsed time must exceed the interval; equality is not yet due.
func (t *Timer) Due(now time.Duration) bool {
	return isExpired(t.fired, now, t.last, t.Interval)
}

// MarkFired records that the job ran at now.
func (t *Timer) MarkFired(now time.Duration) {
	t.last, t.fired = now, true
}

// Reset forgets the last fire, making the timer due again.
func (t *Timer) Reset() {
	t.last, t.fired = 0, false
}

// LastFired returns the time of the last fire and whether there was one.
func (t *Timer) LastFired() (time.Duration, bool) {
	return t.last, t.fired
}

func isExpired(fired bool, at, since, span time.Duration) bool {
	return !fired || at-since > span
}
