package schedule

import (
	"testing"
	"time"
)

func TestTimerDueBeforeFirstFire(t *testing.T) {
	var zero Timer
	if !zero.Due(0) {
		t.Fatal("zero timer should be due")
	}
	tm := New(time.Hour)
	if !tm.Due(5 * time.Second) {
		t.Fatal("new timer should be due on first check")
	}
	if _, ok := tm.LastFired(); ok {
		t.Fatal("new timer should not report a last fire")
	}
}

func TestTimerStrictBoundary(t *testing.T) {
	const interval = 600 * time.Second
	tm := New(interval)
	start := 42 * time.Second
	tm.MarkFired(start)

	cases := []struct {
		now  time.Duration
		want bool
	}{
		{start, false},
		{start + time.Second, false},
		{start + interval - time.Nanosecond, false},
		{start + interval, false},
		{start + interval + time.Nanosecond, true},
		{start + 2*interval, true},
	}
	for _, c := range cases {
		if got := tm.Due(c.now); got != c.want {
			t.Fatalf("Due(%v) = %v, want %v", c.now, got, c.want)
		}
	}
}

func TestTimerDueDoesNotMutate(t *testing.T) {
	tm := New(time.Second)
	for i := 0; i < 3; i++ {
		if !tm.Due(time.Duration(i)) {
			t.Fatalf("check %d: expected due until marked", i)
		}
	}
	tm.MarkFired(10 * time.Second)
	tm.MarkFired(10 * time.Second)
	if last, ok := tm.LastFired(); !ok || last != 10*time.Second {
		t.Fatalf("LastFired = %v, %v", last, ok)
	}
	tm.Reset()
	if !tm.Due(10 * time.Second) {
		t.Fatal("reset timer should be due")
	}
}
