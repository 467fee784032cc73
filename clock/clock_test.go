package clock

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ardnew/alarmclock/errcode"
	"github.com/ardnew/alarmclock/model"
)

type fakeService struct {
	t     time.Time
	err   error
	calls int
	loc   string
}

func (f *fakeService) FetchWallClock(_ context.Context, location string) (time.Time, error) {
	f.calls++
	f.loc = location
	return f.t, f.err
}

func TestSourceMonoAndWallBeforeSync(t *testing.T) {
	now := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	s := NewWithClock(&fakeService{}, clock)

	if s.Mono() != 0 {
		t.Fatalf("Mono at start = %v", s.Mono())
	}
	now = now.Add(90 * time.Second)
	if s.Mono() != 90*time.Second {
		t.Fatalf("Mono = %v", s.Mono())
	}
	if !s.Wall().Equal(now) {
		t.Fatalf("unsynced Wall = %v, want platform time", s.Wall())
	}
	if s.Synced() {
		t.Fatal("should not be synced")
	}
}

func TestSourceSyncResetsWallBase(t *testing.T) {
	now := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	zone := time.FixedZone("EST", -5*60*60)
	svc := &fakeService{t: time.Date(2026, 3, 14, 20, 56, 30, 0, zone)}
	s := NewWithClock(svc, clock)

	now = now.Add(10 * time.Second)
	if err := s.Sync(context.Background(), "America/Toronto"); err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if svc.loc != "America/Toronto" {
		t.Fatalf("location = %q", svc.loc)
	}
	if got := s.TimeOfDay(); got != (model.TimeOfDay{Hour: 20, Minute: 56}) {
		t.Fatalf("TimeOfDay = %v", got)
	}

	now = now.Add(45 * time.Second)
	if got := s.TimeOfDay(); got != (model.TimeOfDay{Hour: 20, Minute: 57}) {
		t.Fatalf("TimeOfDay after 45s = %v", got)
	}
	if _, off := s.Wall().Zone(); off != -5*60*60 {
		t.Fatalf("zone offset = %d", off)
	}
}

func TestSourceSyncFailureKeepsBase(t *testing.T) {
	now := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	svc := &fakeService{t: time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)}
	s := NewWithClock(svc, clock)
	if err := s.Sync(context.Background(), "UTC"); err != nil {
		t.Fatalf("Sync: %v", err)
	}

	svc.err = errors.New("no route to host")
	now = now.Add(time.Minute)
	err := s.Sync(context.Background(), "UTC")
	if errcode.Of(err) != errcode.Network {
		t.Fatalf("err = %v, want network kind", err)
	}
	if got := s.TimeOfDay(); got != (model.TimeOfDay{Hour: 8, Minute: 1}) {
		t.Fatalf("TimeOfDay after failed sync = %v", got)
	}
}
