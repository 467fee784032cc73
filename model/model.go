// Package model defines the plain data shared by the clock's components.
//
// Nothing in this package is global: every value is owned by exactly one
// component and passed to the others by the main loop.
package model

import (
	"fmt"
	"strings"
	"time"
)

// TimeOfDay is a wall-clock hour and minute, snapshotted once per tick.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// TimeOfDayOf returns the hour and minute of t in t's own location.
func TimeOfDayOf(t time.Time) TimeOfDay {
	h, m, _ := t.Clock()
	return TimeOfDay{Hour: h, Minute: m}
}

// MinuteOfDay returns the number of minutes since midnight.
func (t TimeOfDay) MinuteOfDay() int { return t.Hour*60 + t.Minute }

// String formats t for the time text region.
func (t TimeOfDay) String() string { return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute) }

// AlarmConfig is the time of day the alarm sounds. It is fixed at startup.
type AlarmConfig struct {
	Hour   int
	Minute int
}

// MinuteOfDay returns the number of minutes since midnight.
func (a AlarmConfig) MinuteOfDay() int { return a.Hour*60 + a.Minute }

// Valid reports whether the hour and minute are on a 24-hour clock.
func (a AlarmConfig) Valid() bool {
	return a.Hour >= 0 && a.Hour <= 23 && a.Minute >= 0 && a.Minute <= 59
}

// String formats a for the alarm text region.
func (a AlarmConfig) String() string { return fmt.Sprintf("%2d:%02d", a.Hour, a.Minute) }

// AlarmState represents the current position of the alarm state machine.
type AlarmState uint8

// Constants defining each possible AlarmState.
const (
	AlarmIdle AlarmState = iota
	AlarmSounding
)

func (s AlarmState) String() string {
	switch s {
	case AlarmIdle:
		return "idle"
	case AlarmSounding:
		return "sounding"
	}
	return "unknown"
}

// LightMode is the display mode derived from the ambient light level.
type LightMode uint8

// Constants defining each possible LightMode.
const (
	LightDay LightMode = iota
	LightNight
)

func (m LightMode) String() string {
	switch m {
	case LightDay:
		return "day"
	case LightNight:
		return "night"
	}
	return "unknown"
}

// Units selects the temperature display unit.
type Units uint8

// Constants defining each supported temperature unit.
const (
	Celsius Units = iota
	Fahrenheit
)

// Suffix returns the single letter printed after a temperature.
func (u Units) Suffix() string {
	if u == Fahrenheit {
		return "F"
	}
	return "C"
}

func (u Units) String() string {
	if u == Fahrenheit {
		return "fahrenheit"
	}
	return "celsius"
}

// ParseUnits accepts "c", "celsius", "f" or "fahrenheit" in any case.
func ParseUnits(s string) (Units, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "c", "celsius", "celcius":
		return Celsius, nil
	case "f", "fahrenheit":
		return Fahrenheit, nil
	}
	return Celsius, fmt.Errorf("unknown temperature units %q", s)
}

// WeatherSnapshot is the most recent successfully fetched weather.
type WeatherSnapshot struct {
	Icon        string
	Temperature string
}
