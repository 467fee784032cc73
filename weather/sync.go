package weather

import (
	"context"
	"time"

	"github.com/ardnew/alarmclock/display"
	"github.com/ardnew/alarmclock/hal"
	"github.com/ardnew/alarmclock/model"
	"github.com/ardnew/alarmclock/schedule"
)

// DefaultInterval is how often the weather is refreshed.
const DefaultInterval = 10 * time.Minute

// Presenter is the part of display.Presenter that Sync drives.
type Presenter interface {
	SetIcon(name string) error
	SetText(region display.Region, s string)
}

// Sync refreshes the weather once per interval, and on the first tick.
type Sync struct {
	fetch     Fetcher
	presenter Presenter
	units     model.Units
	logger    hal.Logger
	timer     *schedule.Timer

	snapshot model.WeatherSnapshot
	have     bool
}

// New returns a Sync. A zero interval means DefaultInterval.
func New(fetch Fetcher, presenter Presenter, units model.Units, interval time.Duration, logger hal.Logger) *Sync {
	if interval == 0 {
		interval = DefaultInterval
	}
	return &Sync{
		fetch:     fetch,
		presenter: presenter,
		units:     units,
		logger:    logger,
		timer:     schedule.New(interval),
	}
}

// Tick fetches and displays the weather if the interval has elapsed. It
// returns nil, nil when nothing was due. On a network or format error the
// timer is not advanced, so the next tick retries, and the previous snapshot
// stays on screen.
func (s *Sync) Tick(ctx context.Context, now time.Duration) (*model.WeatherSnapshot, error) {
	if !s.timer.Due(now) {
		return nil, nil
	}

	body, err := s.fetch.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	report, err := Parse(body)
	if err != nil {
		return nil, err
	}

	snap := model.WeatherSnapshot{
		Icon:        report.Icon,
		Temperature: FormatTemperature(report.Kelvin, s.units),
	}
	s.timer.MarkFired(now)
	s.snapshot, s.have = snap, true

	if err := s.presenter.SetIcon(IconFile(snap.Icon)); err != nil {
		s.logger.WriteLineString("error: weather icon: " + err.Error())
	}
	s.presenter.SetText(display.RegionTemperature, snap.Temperature)
	s.logger.WriteLineString("info: weather " + snap.Icon + " " + snap.Temperature)

	return &snap, nil
}

// Snapshot returns the last successfully fetched weather, if any.
func (s *Sync) Snapshot() (model.WeatherSnapshot, bool) { return s.snapshot, s.have }

// Timer exposes the schedule, mainly for inspection.
func (s *Sync) Timer() *schedule.Timer { return s.timer }
