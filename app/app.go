// Package app builds the clock from a configuration and a HAL. Both the
// device and the desktop host start here.
package app

import (
	"io/fs"

	"github.com/ardnew/alarmclock/alarm"
	"github.com/ardnew/alarmclock/clock"
	"github.com/ardnew/alarmclock/config"
	"github.com/ardnew/alarmclock/display"
	"github.com/ardnew/alarmclock/hal"
	"github.com/ardnew/alarmclock/light"
	"github.com/ardnew/alarmclock/run"
	"github.com/ardnew/alarmclock/timesvc"
	"github.com/ardnew/alarmclock/timesync"
	"github.com/ardnew/alarmclock/touch"
	"github.com/ardnew/alarmclock/weather"
)

// App holds the wired components.
type App struct {
	Loop      *run.Loop
	Clock     *clock.Source
	Presenter *display.Presenter
	Light     *light.Switch
	Alarm     *alarm.Controller
	Weather   *weather.Sync
	TimeSync  *timesync.Sync
	Touch     *touch.Dispatcher
}

// New validates cfg and wires every component to h. Bitmaps are read from
// assets.
func New(cfg config.Config, h hal.HAL, assets fs.FS) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger := h.Logger()

	clk := clock.New(timesvc.NewRateLimited(timeService(cfg), cfg.FetchMinSpace))

	presenter := display.New(h.Display(), h.Backlight(), assets, display.DefaultLayout())

	fetcher := weather.NewClient(weather.ClientConfig{
		BaseURL:  cfg.WeatherURL,
		Location: cfg.WeatherLocation,
		Token:    cfg.WeatherToken,
		Timeout:  cfg.NetworkTimeout,
		MinSpace: cfg.FetchMinSpace,
	})

	a := &App{
		Clock:     clk,
		Presenter: presenter,
		Light:     light.New(cfg.Light, presenter, logger),
		Alarm: alarm.New(alarm.Config{
			Time:      cfg.Alarm,
			Retrigger: cfg.AlarmRetrigger,
		}, h.Audio(), logger),
		Weather:  weather.New(fetcher, presenter, cfg.Units, cfg.WeatherInterval, logger),
		TimeSync: timesync.New(clk, cfg.TimeZone, cfg.TimeSyncInterval),
	}
	a.Touch = touch.New(a.Alarm, logger, touch.DefaultRegions(logger)...)

	a.Loop = run.New(run.Config{
		Clock:           clk,
		TimeSync:        a.TimeSync,
		Weather:         a.Weather,
		Presenter:       presenter,
		Light:           a.Light,
		Alarm:           a.Alarm,
		Touch:           a.Touch,
		AlarmTime:       cfg.Alarm,
		Touchscreen:     h.Touch(),
		LightSensor:     h.Light(),
		Logger:          logger,
		DisplayInterval: cfg.DisplayInterval,
	})
	return a, nil
}

func timeService(cfg config.Config) timesvc.Service {
	if cfg.TimeSource == config.TimeSourceNTP {
		return timesvc.NewNTP(timesvc.NTPConfig{
			Server:  cfg.NTPServers,
			Timeout: cfg.NetworkTimeout,
		})
	}
	return timesvc.NewWorldTime(cfg.WorldTimeURL, cfg.NetworkTimeout)
}
