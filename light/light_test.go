package light

import (
	"errors"
	"testing"

	"github.com/ardnew/alarmclock/model"
)

type fakePresenter struct {
	levels      []float64
	backgrounds []string
	err         error
}

func (p *fakePresenter) SetBackground(name string) error {
	p.backgrounds = append(p.backgrounds, name)
	return p.err
}

func (p *fakePresenter) SetBacklight(level float64) { p.levels = append(p.levels, level) }

type lines []string

func (l *lines) WriteLineString(s string) { *l = append(*l, s) }

func TestNext(t *testing.T) {
	cases := []struct {
		raw     int
		current model.LightMode
		want    model.LightMode
	}{
		{500, model.LightDay, model.LightNight},
		{1000, model.LightDay, model.LightNight},
		{1001, model.LightDay, model.LightDay},
		{1500, model.LightDay, model.LightDay},
		{1500, model.LightNight, model.LightNight},
		{1999, model.LightNight, model.LightNight},
		{2000, model.LightNight, model.LightDay},
		{65535, model.LightNight, model.LightDay},
	}
	for _, c := range cases {
		if got := Next(c.raw, c.current, Config{}); got != c.want {
			t.Fatalf("Next(%d, %v) = %v, want %v", c.raw, c.current, got, c.want)
		}
	}
}

func TestUpdateAppliesOnChangeOnly(t *testing.T) {
	p := &fakePresenter{}
	s := New(Config{}, p, &lines{})

	if got := s.Update(3000, false); got != model.LightDay {
		t.Fatalf("mode = %v", got)
	}
	if len(p.levels) != 0 || len(p.backgrounds) != 0 {
		t.Fatalf("unchanged mode applied visuals: %v %v", p.levels, p.backgrounds)
	}

	if got := s.Update(500, false); got != model.LightNight {
		t.Fatalf("mode = %v", got)
	}
	if len(p.levels) != 1 || p.levels[0] != DefaultNightBrightness || p.backgrounds[0] != DefaultNightBackground {
		t.Fatalf("night visuals: %v %v", p.levels, p.backgrounds)
	}

	// dead band and repeated readings do nothing
	for _, raw := range []int{500, 1500, 1999} {
		s.Update(raw, false)
	}
	if len(p.levels) != 1 {
		t.Fatalf("repeated updates applied visuals %d times", len(p.levels))
	}

	s.Update(2500, false)
	if s.Mode() != model.LightDay || p.levels[1] != DefaultDayBrightness || p.backgrounds[1] != DefaultDayBackground {
		t.Fatalf("day visuals: %v %v", p.levels, p.backgrounds)
	}
}

func TestForceInDeadBandKeepsMode(t *testing.T) {
	p := &fakePresenter{}
	s := New(Config{}, p, &lines{})

	if got := s.Update(1500, true); got != model.LightDay {
		t.Fatalf("mode = %v, want initial day", got)
	}
	if len(p.levels) != 1 || p.levels[0] != DefaultDayBrightness || p.backgrounds[0] != DefaultDayBackground {
		t.Fatalf("forced visuals: %v %v", p.levels, p.backgrounds)
	}
}

func TestCustomThresholdsAndBackgroundError(t *testing.T) {
	p := &fakePresenter{err: errors.New("night.bmp: file does not exist")}
	log := &lines{}
	s := New(Config{NightBelow: 10, DayAbove: 20, NightBrightness: 0.2, NightBackground: "night.bmp"}, p, log)

	if got := s.Update(15, false); got != model.LightDay {
		t.Fatalf("mode = %v", got)
	}
	if got := s.Update(10, false); got != model.LightNight {
		t.Fatalf("mode = %v", got)
	}
	if p.levels[0] != 0.2 || p.backgrounds[0] != "night.bmp" {
		t.Fatalf("visuals: %v %v", p.levels, p.backgrounds)
	}
	want := lines{"info: light night", "error: night.bmp: file does not exist"}
	if len(*log) != 2 || (*log)[0] != want[0] || (*log)[1] != want[1] {
		t.Fatalf("log = %q", *log)
	}
}
