package alarm

import (
	"testing"
	"time"

	"github.com/ardnew/alarmclock/model"
)

type recorder struct{ played []string }

func (r *recorder) Play(name string) { r.played = append(r.played, name) }

type lines []string

func (l *lines) WriteLineString(s string) { *l = append(*l, s) }

func newController(audio *recorder) *Controller {
	return New(Config{Time: model.AlarmConfig{Hour: 7, Minute: 30}}, audio, &lines{})
}

func TestIdleUntilAlarmMinute(t *testing.T) {
	c := newController(&recorder{})
	for _, tod := range []model.TimeOfDay{{Hour: 7, Minute: 29}, {Hour: 19, Minute: 30}, {}} {
		if got := c.Tick(time.Second, tod); got != model.AlarmIdle {
			t.Fatalf("Tick(%v) = %v, want idle", tod, got)
		}
	}
	if _, ok := c.SoundingSince(); ok {
		t.Fatal("SoundingSince reported sounding while idle")
	}
}

func TestStartsAtAlarmMinuteAndRetriggers(t *testing.T) {
	audio := &recorder{}
	c := newController(audio)
	at := model.TimeOfDay{Hour: 7, Minute: 30}

	start := 100 * time.Second
	if got := c.Tick(start, at); got != model.AlarmSounding {
		t.Fatalf("Tick = %v, want sounding", got)
	}
	if since, ok := c.SoundingSince(); !ok || since != start {
		t.Fatalf("SoundingSince = %v, %v", since, ok)
	}
	if len(audio.played) != 0 {
		t.Fatalf("played at start: %v", audio.played)
	}

	c.Tick(start+DefaultRetrigger, at) // not strictly past the interval
	if len(audio.played) != 0 {
		t.Fatalf("played early: %v", audio.played)
	}
	c.Tick(start+DefaultRetrigger+time.Millisecond, at)
	if len(audio.played) != 1 || audio.played[0] != DefaultSound {
		t.Fatalf("played = %v", audio.played)
	}

	// the minute passing does not stop the alarm
	later := model.TimeOfDay{Hour: 7, Minute: 45}
	if got := c.Tick(start+time.Hour, later); got != model.AlarmSounding {
		t.Fatalf("Tick = %v, want still sounding", got)
	}
	if len(audio.played) != 2 {
		t.Fatalf("played = %v", audio.played)
	}
}

func TestStopWithinMinuteDoesNotRestart(t *testing.T) {
	audio := &recorder{}
	c := newController(audio)
	at := model.TimeOfDay{Hour: 7, Minute: 30}

	c.Tick(0, at)
	c.Stop()
	if c.State() != model.AlarmIdle {
		t.Fatalf("state = %v after Stop", c.State())
	}
	if _, ok := c.SoundingSince(); ok {
		t.Fatal("SoundingSince after Stop")
	}
	for now := time.Second; now < time.Minute; now += time.Second {
		if got := c.Tick(now, at); got != model.AlarmIdle {
			t.Fatalf("restarted at %v", now)
		}
	}
	if len(audio.played) != 0 {
		t.Fatalf("played after stop: %v", audio.played)
	}

	// next day
	c.Tick(time.Minute, model.TimeOfDay{Hour: 7, Minute: 31})
	if got := c.Tick(24*time.Hour, at); got != model.AlarmSounding {
		t.Fatalf("Tick next day = %v, want sounding", got)
	}
}

func TestStopIdleIsNoop(t *testing.T) {
	log := &lines{}
	c := New(Config{}, &recorder{}, log)
	c.Stop()
	if c.State() != model.AlarmIdle || len(*log) != 0 {
		t.Fatalf("state=%v log=%q", c.State(), *log)
	}
	if c.Config().Retrigger != DefaultRetrigger || c.Config().Sound != DefaultSound {
		t.Fatalf("defaults = %+v", c.Config())
	}
}
