// Package wifi associates the board's WiFi coprocessor with a known access
// point before the main loop starts.
package wifi

import (
	"errors"
	"time"

	"github.com/ardnew/alarmclock/hal"
	"github.com/ardnew/alarmclock/wifi/network"
)

var (
	ErrNoAccessPoints = errors.New("no access points configured")
	ErrConnectToAP    = errors.New("failed to connect to access point")
)

// Backoff controls how often each access point is tried.
type Backoff struct {
	Attempts int
	Base     time.Duration // first pause; doubled after every failure
	Sleep    func(time.Duration)
}

// DefaultBackoff tries every access point four times, pausing 250ms, 500ms
// and 1s between tries.
var DefaultBackoff = Backoff{Attempts: 4, Base: 250 * time.Millisecond, Sleep: time.Sleep}

// Join tries each access point in order and returns the first one connect
// succeeds with.
func Join(aps []network.AP, connect func(network.AP) error, b Backoff, logger hal.Logger) (network.AP, error) {
	if len(aps) == 0 {
		return network.AP{}, ErrNoAccessPoints
	}
	if b.Attempts < 1 {
		b.Attempts = 1
	}
	if b.Sleep == nil {
		b.Sleep = time.Sleep
	}
	for _, ap := range aps {
		pause := b.Base
		for attempt := 1; attempt <= b.Attempts; attempt++ {
			err := connect(ap)
			if err == nil {
				logger.WriteLineString("info: wifi joined " + ap.SSID)
				return ap, nil
			}
			logger.WriteLineString("error: " + ap.SSID + ": " + err.Error())
			if attempt < b.Attempts {
				b.Sleep(pause)
				pause <<= 1
			}
		}
	}
	return network.AP{}, ErrConnectToAP
}
