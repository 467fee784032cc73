// Package hal describes the hardware the clock talks to and provides one
// implementation per target: the PyPortal under TinyGo, and a framebuffer
// simulator on a desktop host.
package hal

import (
	"errors"

	"tinygo.org/x/drivers"
)

var ErrNotImplemented = errors.New("not implemented")

// ErrShortBitmap is returned when bitmap data holds fewer than w*h pixels.
var ErrShortBitmap = errors.New("bitmap data shorter than w*h pixels")

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
}

// Display is the pixel surface the presenter draws onto.
type Display interface {
	drivers.Displayer
}

// BitmapDrawer is implemented by displays that accept a whole RGB565
// (big-endian) block at once, which is much faster than SetPixel.
type BitmapDrawer interface {
	DrawRGBBitmap8(x, y int16, data []uint8, w, h int16) error
}

// Backlight sets the display brightness, 0 (off) to 1 (full).
type Backlight interface {
	SetBrightness(level float64)
}

// TouchPoint is a touch position in display coordinates.
type TouchPoint struct {
	X, Y int16
}

// TouchSource yields the current touch, if any. It never blocks.
type TouchSource interface {
	Poll() (TouchPoint, bool)
}

// LightSensor yields the raw ambient light reading (16-bit scale). It never
// blocks.
type LightSensor interface {
	Read() int
}

// AudioPlayer starts playing a named sound asset and returns immediately.
type AudioPlayer interface {
	Play(name string)
}

// HAL provides the only contact point between the clock and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Backlight() Backlight
	Touch() TouchSource
	Light() LightSensor
	Audio() AudioPlayer
}
