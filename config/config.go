// Package config collects every setting the clock reads at startup. Nothing
// is reconfigured while the loop runs.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ardnew/alarmclock/alarm"
	"github.com/ardnew/alarmclock/light"
	"github.com/ardnew/alarmclock/model"
	"github.com/ardnew/alarmclock/run"
	"github.com/ardnew/alarmclock/timesvc"
	"github.com/ardnew/alarmclock/timesync"
	"github.com/ardnew/alarmclock/weather"
)

// Time sources selectable with TimeSource.
const (
	TimeSourceWorldTime = "worldtime"
	TimeSourceNTP       = "ntp"
)

// Default constants for Config.
const (
	DefaultAlarmHour       = 20
	DefaultAlarmMinute     = 57
	DefaultTimeZone        = "America/Toronto"
	DefaultWeatherLocation = "London,ca"
	DefaultTimeSource      = TimeSourceWorldTime
)

// Config is the complete startup configuration.
type Config struct {
	Alarm model.AlarmConfig
	Units model.Units

	TimeZone        string // IANA zone passed to the time service
	WeatherLocation string // OpenWeatherMap "q" parameter
	WeatherToken    string // OpenWeatherMap appid

	TimeSource   string // TimeSourceWorldTime or TimeSourceNTP
	WorldTimeURL string
	NTPServers   []string
	WeatherURL   string

	TimeSyncInterval time.Duration
	WeatherInterval  time.Duration
	DisplayInterval  time.Duration
	AlarmRetrigger   time.Duration
	NetworkTimeout   time.Duration
	FetchMinSpace    time.Duration // least time between outbound calls to one service, 0 for none

	Light light.Config
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		Alarm:            model.AlarmConfig{Hour: DefaultAlarmHour, Minute: DefaultAlarmMinute},
		Units:            model.Celsius,
		TimeZone:         DefaultTimeZone,
		WeatherLocation:  DefaultWeatherLocation,
		TimeSource:       DefaultTimeSource,
		WorldTimeURL:     timesvc.DefaultWorldTimeURL,
		NTPServers:       timesvc.DefaultServer,
		WeatherURL:       weather.DefaultBaseURL,
		TimeSyncInterval: timesync.DefaultInterval,
		WeatherInterval:  weather.DefaultInterval,
		DisplayInterval:  run.DefaultDisplayInterval,
		AlarmRetrigger:   alarm.DefaultRetrigger,
		NetworkTimeout:   weather.DefaultTimeout,
		Light: light.Config{
			NightBelow:      light.DefaultNightBelow,
			DayAbove:        light.DefaultDayAbove,
			NightBrightness: light.DefaultNightBrightness,
			DayBrightness:   light.DefaultDayBrightness,
			DayBackground:   light.DefaultDayBackground,
			NightBackground: light.DefaultNightBackground,
		},
	}
}

// ErrNoToken is returned by Validate when no weather token is configured.
var ErrNoToken = errors.New("no OpenWeatherMap token configured")

// Validate reports the first setting that cannot work.
func (c Config) Validate() error {
	if !c.Alarm.Valid() {
		return fmt.Errorf("alarm time %d:%02d is not on a 24-hour clock", c.Alarm.Hour, c.Alarm.Minute)
	}
	if c.WeatherToken == "" {
		return ErrNoToken
	}
	if c.WeatherLocation == "" {
		return errors.New("no weather location configured")
	}
	if c.TimeZone == "" {
		return errors.New("no time zone configured")
	}
	switch c.TimeSource {
	case TimeSourceWorldTime, TimeSourceNTP:
	default:
		return fmt.Errorf("unknown time source %q", c.TimeSource)
	}
	if c.Light.NightBelow >= c.Light.DayAbove {
		return fmt.Errorf("light thresholds overlap: night at or below %d, day at or above %d",
			c.Light.NightBelow, c.Light.DayAbove)
	}
	for name, d := range map[string]time.Duration{
		"time sync interval": c.TimeSyncInterval,
		"weather interval":   c.WeatherInterval,
		"display interval":   c.DisplayInterval,
		"alarm retrigger":    c.AlarmRetrigger,
		"network timeout":    c.NetworkTimeout,
	} {
		if d <= 0 {
			return fmt.Errorf("%s must be positive, got %v", name, d)
		}
	}
	if c.FetchMinSpace < 0 {
		return fmt.Errorf("fetch min space must not be negative, got %v", c.FetchMinSpace)
	}
	return nil
}

// ParseAlarm reads an alarm time written as "H:MM" or "HH:MM".
func ParseAlarm(s string) (model.AlarmConfig, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return model.AlarmConfig{}, fmt.Errorf("alarm time %q: want HH:MM", s)
	}
	h, err := strconv.Atoi(hh)
	if err != nil {
		return model.AlarmConfig{}, fmt.Errorf("alarm time %q: %w", s, err)
	}
	m, err := strconv.Atoi(mm)
	if err != nil || len(mm) != 2 {
		return model.AlarmConfig{}, fmt.Errorf("alarm time %q: want two minute digits", s)
	}
	a := model.AlarmConfig{Hour: h, Minute: m}
	if !a.Valid() {
		return model.AlarmConfig{}, fmt.Errorf("alarm time %q is not on a 24-hour clock", s)
	}
	return a, nil
}
