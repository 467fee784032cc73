package config

import (
	"errors"
	"testing"
	"time"

	"github.com/ardnew/alarmclock/model"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Alarm != (model.AlarmConfig{Hour: 20, Minute: 57}) {
		t.Fatalf("alarm = %v", cfg.Alarm)
	}
	if cfg.TimeSyncInterval != time.Hour || cfg.WeatherInterval != 10*time.Minute {
		t.Fatalf("intervals = %v, %v", cfg.TimeSyncInterval, cfg.WeatherInterval)
	}
	if cfg.AlarmRetrigger != 5*time.Second || cfg.DisplayInterval != time.Second {
		t.Fatalf("retrigger = %v, display = %v", cfg.AlarmRetrigger, cfg.DisplayInterval)
	}
	if cfg.Light.NightBelow != 1000 || cfg.Light.DayAbove != 2000 {
		t.Fatalf("light = %+v", cfg.Light)
	}
	if cfg.Units != model.Celsius || cfg.TimeSource != TimeSourceWorldTime {
		t.Fatalf("units = %v, source = %q", cfg.Units, cfg.TimeSource)
	}
	if cfg.FetchMinSpace != 0 {
		t.Fatalf("fetch min space = %v, want no limit", cfg.FetchMinSpace)
	}
	if err := cfg.Validate(); !errors.Is(err, ErrNoToken) {
		t.Fatalf("Validate without token = %v", err)
	}
	cfg.WeatherToken = "token"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"alarm hour":      func(c *Config) { c.Alarm.Hour = 24 },
		"alarm minute":    func(c *Config) { c.Alarm.Minute = -1 },
		"time source":     func(c *Config) { c.TimeSource = "sundial" },
		"light overlap":   func(c *Config) { c.Light.NightBelow = 2000 },
		"zero interval":   func(c *Config) { c.WeatherInterval = 0 },
		"no location":     func(c *Config) { c.WeatherLocation = "" },
		"no time zone":    func(c *Config) { c.TimeZone = "" },
		"negative period": func(c *Config) { c.AlarmRetrigger = -time.Second },
		"negative space":  func(c *Config) { c.FetchMinSpace = -time.Millisecond },
	}
	for name, mod := range cases {
		cfg := Default()
		cfg.WeatherToken = "token"
		mod(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("%s: Validate succeeded", name)
		}
	}
}

func TestParseAlarm(t *testing.T) {
	good := map[string]model.AlarmConfig{
		"7:30":   {Hour: 7, Minute: 30},
		"07:05":  {Hour: 7, Minute: 5},
		" 0:00 ": {},
		"23:59":  {Hour: 23, Minute: 59},
	}
	for in, want := range good {
		got, err := ParseAlarm(in)
		if err != nil || got != want {
			t.Fatalf("ParseAlarm(%q) = %v, %v", in, got, err)
		}
	}
	for _, in := range []string{"", "730", "7:3", "24:00", "12:60", "a:30", "7:3x"} {
		if _, err := ParseAlarm(in); err == nil {
			t.Fatalf("ParseAlarm(%q) succeeded", in)
		}
	}
}
