//go:build tinygo

package wifi

import (
	"tinygo.org/x/drivers/netlink"
	"tinygo.org/x/drivers/netlink/probe"

	"github.com/ardnew/alarmclock/hal"
	"github.com/ardnew/alarmclock/wifi/network"
)

// WiFi wraps the board's network link. Once connected, the standard net
// and net/http packages route through it.
type WiFi struct {
	link   netlink.Netlinker
	logger hal.Logger
}

// New probes the WiFi coprocessor wired to the board and installs it as the
// network device.
func New(logger hal.Logger) *WiFi {
	link, _ := probe.Probe()
	return &WiFi{link: link, logger: logger}
}

// Connect joins the first reachable access point in aps.
func (w *WiFi) Connect(aps []network.AP) (network.AP, error) {
	return Join(aps, w.connect, DefaultBackoff, w.logger)
}

func (w *WiFi) connect(ap network.AP) error {
	return w.link.NetConnect(&netlink.ConnectParams{
		Ssid:       ap.SSID,
		Passphrase: ap.Pass,
		Retries:    1, // Join does its own retrying
	})
}

// Disconnect drops the access point association.
func (w *WiFi) Disconnect() {
	w.link.NetDisconnect()
}
