package touch

import (
	"testing"

	"github.com/ardnew/alarmclock/hal"
)

type stopCounter struct{ n int }

func (s *stopCounter) Stop() { s.n++ }

type lines []string

func (l *lines) WriteLineString(s string) { *l = append(*l, s) }

func TestContainsEdgesInclusive(t *testing.T) {
	r := Region{Left: 0, Top: 50, Right: 80, Bottom: 120}
	in := []hal.TouchPoint{{X: 0, Y: 50}, {X: 80, Y: 120}, {X: 0, Y: 120}, {X: 80, Y: 50}, {X: 40, Y: 90}}
	out := []hal.TouchPoint{{X: 81, Y: 90}, {X: 40, Y: 49}, {X: 40, Y: 121}, {X: -1, Y: 60}}
	for _, p := range in {
		if !r.Contains(p) {
			t.Fatalf("%v should be inside", p)
		}
	}
	for _, p := range out {
		if r.Contains(p) {
			t.Fatalf("%v should be outside", p)
		}
	}
}

func TestNoTouchDoesNothing(t *testing.T) {
	s := &stopCounter{}
	d := New(s, &lines{}, DefaultRegions(&lines{})...)
	if got := d.Dispatch(hal.TouchPoint{X: 10, Y: 60}, false); got != "" || s.n != 0 {
		t.Fatalf("got %q, stops %d", got, s.n)
	}
}

func TestAnyTouchStopsAlarm(t *testing.T) {
	s := &stopCounter{}
	log := &lines{}
	d := New(s, log, DefaultRegions(log)...)

	if got := d.Dispatch(hal.TouchPoint{X: 300, Y: 10}, true); got != "" {
		t.Fatalf("outside touch handled by %q", got)
	}
	if s.n != 1 {
		t.Fatalf("stops = %d, want 1", s.n)
	}
	if len(*log) != 0 {
		t.Fatalf("log = %q", *log)
	}

	if got := d.Dispatch(hal.TouchPoint{X: 80, Y: 220}, true); got != "poke" {
		t.Fatalf("got %q, want poke", got)
	}
	if s.n != 2 || len(*log) != 1 || (*log)[0] != "info: touch poke at 80,220" {
		t.Fatalf("stops=%d log=%q", s.n, *log)
	}
}

func TestFirstRegionWins(t *testing.T) {
	var order []string
	action := func(name string) func(hal.TouchPoint) {
		return func(hal.TouchPoint) { order = append(order, name) }
	}
	d := New(&stopCounter{}, &lines{},
		Region{Left: 0, Top: 0, Right: 100, Bottom: 100, Name: "a", Action: action("a")},
		Region{Left: 50, Top: 50, Right: 150, Bottom: 150, Name: "b", Action: action("b")},
	)

	if got := d.Dispatch(hal.TouchPoint{X: 75, Y: 75}, true); got != "a" {
		t.Fatalf("overlap handled by %q", got)
	}
	if got := d.Dispatch(hal.TouchPoint{X: 120, Y: 120}, true); got != "b" {
		t.Fatalf("got %q", got)
	}
	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Fatalf("actions ran %v", order)
	}
}
