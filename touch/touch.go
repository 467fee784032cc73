// Package touch routes screen touches: every touch silences the alarm, then
// the first region containing the point handles it.
package touch

import (
	"strconv"

	"github.com/ardnew/alarmclock/hal"
)

// Region is a rectangle of the screen with an action. All four edges are
// inside the region.
type Region struct {
	Left, Top, Right, Bottom int16
	Name                     string
	Action                   func(p hal.TouchPoint)
}

// Contains reports whether p lies inside r, edges included.
func (r Region) Contains(p hal.TouchPoint) bool {
	return r.Left <= p.X && p.X <= r.Right && r.Top <= p.Y && p.Y <= r.Bottom
}

// Stopper is the part of alarm.Controller that a touch drives.
type Stopper interface {
	Stop()
}

// Dispatcher hit-tests touches against an ordered list of regions.
type Dispatcher struct {
	stopper Stopper
	regions []Region
	logger  hal.Logger
}

// New returns a Dispatcher. Regions are tested in the given order.
func New(stopper Stopper, logger hal.Logger, regions ...Region) *Dispatcher {
	return &Dispatcher{stopper: stopper, regions: regions, logger: logger}
}

// DefaultRegions returns the settings and poke buttons at the left edge of the
// face. Neither does more than log the touch.
func DefaultRegions(logger hal.Logger) []Region {
	stub := func(name string) func(hal.TouchPoint) {
		return func(p hal.TouchPoint) {
			logger.WriteLineString("info: touch " + name + " at " +
				strconv.Itoa(int(p.X)) + "," + strconv.Itoa(int(p.Y)))
		}
	}
	return []Region{
		{Left: 0, Top: 50, Right: 80, Bottom: 120, Name: "settings", Action: stub("settings")},
		{Left: 0, Top: 155, Right: 80, Bottom: 220, Name: "poke", Action: stub("poke")},
	}
}

// Dispatch handles the result of one touch poll. It returns the name of the
// region that handled the touch, or "" if none did.
func (d *Dispatcher) Dispatch(p hal.TouchPoint, ok bool) string {
	if !ok {
		return ""
	}
	d.stopper.Stop()
	for _, r := range d.regions {
		if r.Contains(p) {
			if r.Action != nil {
				r.Action(p)
			}
			return r.Name
		}
	}
	return ""
}

// Regions returns the regions in dispatch order.
func (d *Dispatcher) Regions() []Region { return d.regions }
