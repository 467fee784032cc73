//go:build !tinygo

package hal

import (
	"io/fs"
	"log"
	"os"
	"sync"

	"github.com/ardnew/alarmclock/internal/mathx"
)

// Host display geometry, matching the PyPortal panel in landscape.
const (
	HostWidth  = 320
	HostHeight = 240
)

// HostConfig selects the simulated peripherals.
type HostConfig struct {
	Assets fs.FS // sound assets for the audio player
	Light  int   // initial simulated light reading
}

// Host is the desktop implementation of HAL.
type Host struct {
	logger *hostLogger
	fb     *Framebuffer
	touch  *hostTouch
	light  *SimLight
	audio  AudioPlayer
}

// New returns a host HAL implementation.
func New(cfg HostConfig) *Host {
	logger := &hostLogger{l: log.New(os.Stdout, "", log.LstdFlags)}
	return &Host{
		logger: logger,
		fb:     NewFramebuffer(HostWidth, HostHeight),
		touch:  &hostTouch{},
		light:  NewSimLight(cfg.Light),
		audio:  newHostAudio(cfg.Assets, logger),
	}
}

func (h *Host) Logger() Logger            { return h.logger }
func (h *Host) Display() Display          { return h.fb }
func (h *Host) Backlight() Backlight      { return h.fb }
func (h *Host) Touch() TouchSource        { return h.touch }
func (h *Host) Light() LightSensor        { return h.light }
func (h *Host) Audio() AudioPlayer        { return h.audio }
func (h *Host) Framebuffer() *Framebuffer { return h.fb }
func (h *Host) SimLight() *SimLight       { return h.light }

type hostLogger struct {
	l *log.Logger
}

func (l *hostLogger) WriteLineString(s string) { l.l.Println(s) }

// hostTouch holds the pointer state reported by the window.
type hostTouch struct {
	mu      sync.Mutex
	pressed bool
	p       TouchPoint
}

func (t *hostTouch) Poll() (TouchPoint, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.p, t.pressed
}

func (t *hostTouch) set(p TouchPoint, pressed bool) {
	t.mu.Lock()
	t.p, t.pressed = p, pressed
	t.mu.Unlock()
}

// Light readings use the 16-bit scale of the PyPortal ADC.
const (
	SimLightMax  = 0xFFFF
	SimLightStep = 250
)

// SimLight is a light sensor whose reading is set by the user.
type SimLight struct {
	mu sync.Mutex
	v  int
}

// NewSimLight returns a sensor reading v.
func NewSimLight(v int) *SimLight {
	return &SimLight{v: mathx.Clamp(v, 0, SimLightMax)}
}

func (s *SimLight) Read() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v
}

// Step adds delta to the reading, clamped to the sensor range, and returns
// the new reading.
func (s *SimLight) Step(delta int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v = mathx.Clamp(s.v+delta, 0, SimLightMax)
	return s.v
}
