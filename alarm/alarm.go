// Package alarm implements the two-state alarm: idle until the configured
// minute, then sounding until stopped by a touch.
package alarm

import (
	"time"

	"github.com/ardnew/alarmclock/hal"
	"github.com/ardnew/alarmclock/model"
	"github.com/ardnew/alarmclock/schedule"
)

// Default constants for Controller configuration.
const (
	DefaultRetrigger = 5 * time.Second
	DefaultSound     = "computer-alert20.wav"
)

// Config selects when the alarm sounds and what it plays.
type Config struct {
	Time      model.AlarmConfig
	Retrigger time.Duration // pause between repeats of Sound
	Sound     string
}

// Controller is the alarm state machine. It is driven by Tick once per loop
// iteration and stopped by Stop.
type Controller struct {
	cfg    Config
	audio  hal.AudioPlayer
	logger hal.Logger

	state     model.AlarmState
	startedAt time.Duration
	retrigger *schedule.Timer

	// set when the alarm starts, cleared once the minute has passed, so the
	// alarm starts only once per matching minute
	latched bool
}

// New returns an idle Controller. Zero Retrigger and empty Sound take their
// Default values.
func New(cfg Config, audio hal.AudioPlayer, logger hal.Logger) *Controller {
	if cfg.Retrigger == 0 {
		cfg.Retrigger = DefaultRetrigger
	}
	if cfg.Sound == "" {
		cfg.Sound = DefaultSound
	}
	return &Controller{
		cfg:       cfg,
		audio:     audio,
		logger:    logger,
		retrigger: schedule.New(cfg.Retrigger),
	}
}

// Tick advances the state machine. now is the monotonic time and tod the
// wall-clock time of day, both read once for the current loop iteration.
func (c *Controller) Tick(now time.Duration, tod model.TimeOfDay) model.AlarmState {
	match := tod.MinuteOfDay() == c.cfg.Time.MinuteOfDay()
	if !match {
		c.latched = false
	}

	switch c.state {
	case model.AlarmIdle:
		if match && !c.latched {
			c.state = model.AlarmSounding
			c.startedAt = now
			c.retrigger.MarkFired(now)
			c.latched = true
			c.logger.WriteLineString("info: alarm sounding at " + tod.String())
		}

	case model.AlarmSounding:
		if c.retrigger.Due(now) {
			c.audio.Play(c.cfg.Sound)
			c.retrigger.MarkFired(now)
		}
	}
	return c.state
}

// Stop silences a sounding alarm. It does nothing when idle.
func (c *Controller) Stop() {
	if c.state != model.AlarmSounding {
		return
	}
	c.state = model.AlarmIdle
	c.startedAt = 0
	c.retrigger.Reset()
	c.logger.WriteLineString("info: alarm stopped")
}

// State returns the current state.
func (c *Controller) State() model.AlarmState { return c.state }

// SoundingSince returns when the alarm started, if it is sounding.
func (c *Controller) SoundingSince() (time.Duration, bool) {
	return c.startedAt, c.state == model.AlarmSounding
}

// Config returns the configuration in effect.
func (c *Controller) Config() Config { return c.cfg }
