//go:build !tinygo

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/ardnew/alarmclock/model"
)

// Environment variables read on the host. Both may also come from a .env
// file.
const (
	EnvWeatherToken = "OPENWEATHER_TOKEN"
	EnvUnits        = "ALARMCLOCK_UNITS"
	EnvAlarm        = "ALARMCLOCK_ALARM"
)

// DefaultEnvFile is read if no other env file is named. It may be missing.
const DefaultEnvFile = ".env"

type yamlConfig struct {
	Alarm           string   `yaml:"alarm"`
	Units           string   `yaml:"units"`
	TimeZone        string   `yaml:"time_zone"`
	WeatherLocation string   `yaml:"weather_location"`
	TimeSource      string   `yaml:"time_source"`
	WorldTimeURL    string   `yaml:"worldtime_url"`
	NTPServers      []string `yaml:"ntp_servers"`
	WeatherURL      string   `yaml:"weather_url"`

	TimeSyncMinutes       int `yaml:"time_sync_minutes"`
	WeatherMinutes        int `yaml:"weather_minutes"`
	DisplaySeconds        int `yaml:"display_seconds"`
	AlarmRetriggerSeconds int `yaml:"alarm_retrigger_seconds"`
	NetworkTimeoutSeconds int `yaml:"network_timeout_seconds"`

	Light struct {
		NightBelow      int     `yaml:"night_below"`
		DayAbove        int     `yaml:"day_above"`
		NightBrightness float64 `yaml:"night_brightness"`
		DayBrightness   float64 `yaml:"day_brightness"`
	} `yaml:"light"`
}

// Load returns the defaults overridden by the YAML file at path and then by
// the environment. A missing file is not an error; an empty path skips it.
// envFiles are loaded into the environment first without replacing variables
// already set; with none given, DefaultEnvFile is tried.
func Load(path string, envFiles ...string) (Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("read config file: %w", err)
		default:
			if err := applyYAML(&cfg, raw); err != nil {
				return cfg, err
			}
		}
	}

	if err := loadEnvFiles(envFiles); err != nil {
		return cfg, err
	}
	if err := applyEnv(&cfg, os.Getenv); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadEnvFiles(files []string) error {
	if len(files) == 0 {
		if err := godotenv.Load(DefaultEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", DefaultEnvFile, err)
		}
		return nil
	}
	if err := godotenv.Load(files...); err != nil {
		return fmt.Errorf("load env: %w", err)
	}
	return nil
}

func applyYAML(cfg *Config, raw []byte) error {
	var file yamlConfig
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return fmt.Errorf("parse config yaml: %w", err)
	}

	if file.Alarm != "" {
		a, err := ParseAlarm(file.Alarm)
		if err != nil {
			return err
		}
		cfg.Alarm = a
	}
	if file.Units != "" {
		u, err := model.ParseUnits(file.Units)
		if err != nil {
			return err
		}
		cfg.Units = u
	}
	if file.TimeZone != "" {
		cfg.TimeZone = file.TimeZone
	}
	if file.WeatherLocation != "" {
		cfg.WeatherLocation = file.WeatherLocation
	}
	if file.TimeSource != "" {
		cfg.TimeSource = file.TimeSource
	}
	if file.WorldTimeURL != "" {
		cfg.WorldTimeURL = file.WorldTimeURL
	}
	if len(file.NTPServers) > 0 {
		cfg.NTPServers = file.NTPServers
	}
	if file.WeatherURL != "" {
		cfg.WeatherURL = file.WeatherURL
	}

	if file.TimeSyncMinutes > 0 {
		cfg.TimeSyncInterval = time.Duration(file.TimeSyncMinutes) * time.Minute
	}
	if file.WeatherMinutes > 0 {
		cfg.WeatherInterval = time.Duration(file.WeatherMinutes) * time.Minute
	}
	if file.DisplaySeconds > 0 {
		cfg.DisplayInterval = time.Duration(file.DisplaySeconds) * time.Second
	}
	if file.AlarmRetriggerSeconds > 0 {
		cfg.AlarmRetrigger = time.Duration(file.AlarmRetriggerSeconds) * time.Second
	}
	if file.NetworkTimeoutSeconds > 0 {
		cfg.NetworkTimeout = time.Duration(file.NetworkTimeoutSeconds) * time.Second
	}

	if l := file.Light; l.NightBelow > 0 && l.DayAbove > l.NightBelow && l.DayAbove <= 0xFFFF {
		cfg.Light.NightBelow, cfg.Light.DayAbove = l.NightBelow, l.DayAbove
	}
	if b := file.Light.NightBrightness; b > 0 && b <= 1 {
		cfg.Light.NightBrightness = b
	}
	if b := file.Light.DayBrightness; b > 0 && b <= 1 {
		cfg.Light.DayBrightness = b
	}
	return nil
}

func applyEnv(cfg *Config, getenv func(string) string) error {
	if v := getenv(EnvWeatherToken); v != "" {
		cfg.WeatherToken = v
	}
	if v := getenv(EnvUnits); v != "" {
		u, err := model.ParseUnits(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvUnits, err)
		}
		cfg.Units = u
	}
	if v := getenv(EnvAlarm); v != "" {
		a, err := ParseAlarm(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvAlarm, err)
		}
		cfg.Alarm = a
	}
	return nil
}
