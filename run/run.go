// Package run drives every component of the clock from a single cooperative
// loop.
package run

import (
	"context"
	"time"

	"github.com/ardnew/alarmclock/display"
	"github.com/ardnew/alarmclock/hal"
	"github.com/ardnew/alarmclock/model"
	"github.com/ardnew/alarmclock/schedule"
)

// Default constants for Loop configuration.
const (
	DefaultDisplayInterval = time.Second
	DefaultPace            = 10 * time.Millisecond
)

// Clock is the part of clock.Source the loop reads.
type Clock interface {
	Mono() time.Duration
	Wall() time.Time
}

// TimeSync is implemented by timesync.Sync.
type TimeSync interface {
	Tick(ctx context.Context, now time.Duration) error
}

// WeatherSync is implemented by weather.Sync.
type WeatherSync interface {
	Tick(ctx context.Context, now time.Duration) (*model.WeatherSnapshot, error)
}

// Presenter is the part of display.Presenter the loop writes to.
type Presenter interface {
	SetText(r display.Region, s string)
	Draw()
}

// LightSwitch is implemented by light.Switch.
type LightSwitch interface {
	Update(raw int, force bool) model.LightMode
}

// Alarm is implemented by alarm.Controller.
type Alarm interface {
	Tick(now time.Duration, tod model.TimeOfDay) model.AlarmState
}

// TouchDispatcher is implemented by touch.Dispatcher.
type TouchDispatcher interface {
	Dispatch(p hal.TouchPoint, ok bool) string
}

// Config wires the components into a Loop. Zero DisplayInterval and Pace
// take their Default value.
type Config struct {
	Clock     Clock
	TimeSync  TimeSync
	Weather   WeatherSync
	Presenter Presenter
	Light     LightSwitch
	Alarm     Alarm
	Touch     TouchDispatcher

	AlarmTime model.AlarmConfig

	Touchscreen hal.TouchSource
	LightSensor hal.LightSensor
	Logger      hal.Logger

	DisplayInterval time.Duration
	Pace            time.Duration
}

// Loop runs one iteration of every component per Tick.
type Loop struct {
	cfg     Config
	display *schedule.Timer
	ticks   uint64
}

// New returns a Loop for the given components.
func New(cfg Config) *Loop {
	if cfg.DisplayInterval == 0 {
		cfg.DisplayInterval = DefaultDisplayInterval
	}
	if cfg.Pace == 0 {
		cfg.Pace = DefaultPace
	}
	return &Loop{cfg: cfg, display: schedule.New(cfg.DisplayInterval)}
}

// Start draws the first frame: the alarm time, and the light mode applied
// unconditionally.
func (l *Loop) Start() {
	l.cfg.Presenter.SetText(display.RegionAlarm, l.cfg.AlarmTime.String())
	l.cfg.Light.Update(l.cfg.LightSensor.Read(), true)
	l.cfg.Presenter.Draw()
}

// Tick runs one iteration. Touch input is handled before anything that can
// block on the network. A time or weather sync error is returned at once and
// the rest of the iteration is skipped.
func (l *Loop) Tick(ctx context.Context) error {
	l.ticks++
	now := l.cfg.Clock.Mono()

	l.cfg.Touch.Dispatch(l.cfg.Touchscreen.Poll())

	if err := l.cfg.TimeSync.Tick(ctx, now); err != nil {
		return err
	}
	if _, err := l.cfg.Weather.Tick(ctx, now); err != nil {
		return err
	}

	tod := model.TimeOfDayOf(l.cfg.Clock.Wall())
	if l.display.Due(now) {
		l.cfg.Presenter.SetText(display.RegionTime, tod.String())
		l.display.MarkFired(now)
	}

	l.cfg.Light.Update(l.cfg.LightSensor.Read(), false)
	l.cfg.Alarm.Tick(now, tod)
	return nil
}

// Step runs Tick and logs its error. Only a cancelled context is returned.
func (l *Loop) Step(ctx context.Context) error {
	if err := l.Tick(ctx); err != nil && ctx.Err() == nil {
		l.cfg.Logger.WriteLineString("error: " + err.Error())
	}
	return ctx.Err()
}

// Run starts the loop and ticks until ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	l.Start()
	for {
		if err := l.Step(ctx); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(l.cfg.Pace):
		}
	}
}

// Ticks returns how many iterations have started.
func (l *Loop) Ticks() uint64 { return l.ticks }
