//go:build tinygo

package config

import "github.com/ardnew/alarmclock/model"

// Set at link time, e.g.
//
//	tinygo flash -target pyportal -ldflags \
//	  "-X github.com/ardnew/alarmclock/config.weatherToken=..."
var (
	weatherToken    string
	units           string
	alarm           string
	timeZone        string
	weatherLocation string
)

// Linked returns the defaults overridden by the values set at link time.
func Linked() (Config, error) {
	cfg := Default()
	cfg.WeatherToken = weatherToken
	if units != "" {
		u, err := model.ParseUnits(units)
		if err != nil {
			return cfg, err
		}
		cfg.Units = u
	}
	if alarm != "" {
		a, err := ParseAlarm(alarm)
		if err != nil {
			return cfg, err
		}
		cfg.Alarm = a
	}
	if timeZone != "" {
		cfg.TimeZone = timeZone
	}
	if weatherLocation != "" {
		cfg.WeatherLocation = weatherLocation
	}
	return cfg, nil
}
