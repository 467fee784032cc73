// Package light switches the clock between day and night mode from the
// ambient light sensor.
package light

import (
	"github.com/ardnew/alarmclock/hal"
	"github.com/ardnew/alarmclock/model"
)

// Default constants for Switch configuration. Readings are on the sensor's
// 16-bit scale.
const (
	DefaultNightBelow      = 1000
	DefaultDayAbove        = 2000
	DefaultNightBrightness = 0.01
	DefaultDayBrightness   = 1.0
	DefaultDayBackground   = "main_background_day.bmp"
	DefaultNightBackground = "main_background_night.bmp"
)

// Config holds the thresholds and the visuals of each mode. Zero fields take
// their Default value.
type Config struct {
	NightBelow      int // at or below: night
	DayAbove        int // at or above: day
	NightBrightness float64
	DayBrightness   float64
	DayBackground   string
	NightBackground string
}

func (c Config) withDefaults() Config {
	if c.NightBelow == 0 {
		c.NightBelow = DefaultNightBelow
	}
	if c.DayAbove == 0 {
		c.DayAbove = DefaultDayAbove
	}
	if c.NightBrightness == 0 {
		c.NightBrightness = DefaultNightBrightness
	}
	if c.DayBrightness == 0 {
		c.DayBrightness = DefaultDayBrightness
	}
	if c.DayBackground == "" {
		c.DayBackground = DefaultDayBackground
	}
	if c.NightBackground == "" {
		c.NightBackground = DefaultNightBackground
	}
	return c
}

// Presenter is the part of display.Presenter that Switch drives.
type Presenter interface {
	SetBackground(name string) error
	SetBacklight(level float64)
}

// Switch tracks the light mode and applies its visuals on a change.
type Switch struct {
	cfg       Config
	presenter Presenter
	logger    hal.Logger
	mode      model.LightMode
}

// New returns a Switch in day mode.
func New(cfg Config, presenter Presenter, logger hal.Logger) *Switch {
	return &Switch{
		cfg:       cfg.withDefaults(),
		presenter: presenter,
		logger:    logger,
		mode:      model.LightDay,
	}
}

// Next returns the mode for a raw reading. Between the two thresholds the
// current mode is kept.
func Next(raw int, current model.LightMode, cfg Config) model.LightMode {
	cfg = cfg.withDefaults()
	switch {
	case raw <= cfg.NightBelow:
		return model.LightNight
	case raw >= cfg.DayAbove:
		return model.LightDay
	}
	return current
}

// Update moves to the mode for raw. The backlight and background are set
// only when the mode changes, or always when force is set.
func (s *Switch) Update(raw int, force bool) model.LightMode {
	next := Next(raw, s.mode, s.cfg)
	if next == s.mode && !force {
		return s.mode
	}
	if next != s.mode {
		s.logger.WriteLineString("info: light " + next.String())
	}
	s.mode = next
	s.apply()
	return s.mode
}

// Mode returns the current mode.
func (s *Switch) Mode() model.LightMode { return s.mode }

func (s *Switch) apply() {
	level, background := s.cfg.DayBrightness, s.cfg.DayBackground
	if s.mode == model.LightNight {
		level, background = s.cfg.NightBrightness, s.cfg.NightBackground
	}
	s.presenter.SetBacklight(level)
	if err := s.presenter.SetBackground(background); err != nil {
		s.logger.WriteLineString("error: " + err.Error())
	}
}
