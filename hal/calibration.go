package hal

import "github.com/ardnew/alarmclock/internal/mathx"

// Calibration maps raw resistive readings (16-bit, of which the top 10 bits
// are significant) onto the rotated panel. The raw X axis runs along the
// panel's short side, so the axes are swapped.
type Calibration struct {
	XMin, XMax int // raw X giving screen Y = 0 and Y = Height-1
	YMin, YMax int // raw Y giving screen X = 0 and X = Width-1
	Width      int
	Height     int
	Pressure   int // raw Z must exceed this to count as a touch
}

// DefaultCalibration was measured on a PyPortal in landscape.
var DefaultCalibration = Calibration{
	XMin: 750, XMax: 325,
	YMin: 840, YMax: 240,
	Width: 320, Height: 240,
	Pressure: 100,
}

// Apply converts one raw reading into a touch, if it was pressed hard enough.
func (c Calibration) Apply(rawX, rawY, rawZ int) (TouchPoint, bool) {
	if rawZ>>6 <= c.Pressure {
		return TouchPoint{}, false
	}
	x := mathx.Map(rawY>>6, c.YMin, c.YMax, 0, c.Width-1)
	y := mathx.Map(rawX>>6, c.XMin, c.XMax, 0, c.Height-1)
	return TouchPoint{X: int16(x), Y: int16(y)}, true
}
