package timesvc

import (
	"context"
	"errors"
	"net"
	"strconv"
	"time"

	"github.com/ardnew/alarmclock/errcode"
)

var DefaultServer = []string{"us.pool.ntp.org", "time.google.com"}

const (
	DefaultRemotePort = 123
	DefaultTZOffset   = -5 * 60 * 60 // EST(-5)
	DefaultTimeout    = 2 * time.Second
	DefaultLeapSmear  = false // ** only if using Google NTP (time.google.com) **
)

var (
	ErrReadDatagramSize = errors.New("received unexpected NTP datagram size")
	ErrReadNoResponse   = errors.New("timeout waiting for NTP datagram reply")
)

type NTPConfig struct {
	Server     []string
	RemotePort int
	TZOffset   int           // seconds east of UTC, used when the location is not known
	Timeout    time.Duration // how long to wait for a reply
	LeapSmear  bool          // https://developers.google.com/time/faq#libit
}

// NTP queries an NTP server over UDP. Each failed request moves on to the
// next configured server.
type NTP struct {
	config   NTPConfig
	retry    uint
	datagram datagram
}

const datagramSize = 48

type datagram []uint8

func NewNTP(config NTPConfig) *NTP {

	if len(config.Server) == 0 {
		config.Server = DefaultServer
		config.LeapSmear = DefaultLeapSmear
	}
	if config.RemotePort == 0 {
		config.RemotePort = DefaultRemotePort
	}
	if config.TZOffset == 0 {
		config.TZOffset = DefaultTZOffset
	}
	if config.Timeout == 0 {
		config.Timeout = DefaultTimeout
	}

	return &NTP{
		config:   config,
		datagram: make(datagram, datagramSize),
	}
}

// FetchWallClock returns the server's time in location. When the location
// database is unavailable (as on a microcontroller), the configured fixed
// offset is used instead.
func (n *NTP) FetchWallClock(ctx context.Context, location string) (time.Time, error) {
	const op = "ntp"

	host := n.config.Server[n.retry%uint(len(n.config.Server))]
	addr := net.JoinHostPort(host, strconv.Itoa(n.config.RemotePort))

	var d net.Dialer
	conn, err := d.DialContext(ctx, "udp", addr)
	if err != nil {
		n.retry++
		return time.Time{}, errcode.Wrap(errcode.Network, op, err)
	}
	defer conn.Close()

	curr, err := n.request(conn)
	if err != nil {
		n.retry++
		return time.Time{}, errcode.Wrap(errcode.Network, op, err)
	}
	return curr.In(n.locale(location)), nil
}

func (n *NTP) locale(location string) *time.Location {
	if location != "" {
		if loc, err := time.LoadLocation(location); err == nil {
			return loc
		}
	}
	return time.FixedZone("localtime", n.config.TZOffset)
}

func (n *NTP) request(conn net.Conn) (time.Time, error) {
	if err := n.write(conn); nil != err {
		return time.Time{}, err
	}
	if err := n.read(conn); nil != err {
		return time.Time{}, err
	}
	return n.datagram.parse(), nil
}

func (n *NTP) write(conn net.Conn) error {
	n.datagram.request(n.config.LeapSmear)
	_, err := conn.Write(n.datagram)
	return err
}

func (n *NTP) read(conn net.Conn) error {
	// clear the datagram buffer
	n.datagram.reset()
	if err := conn.SetReadDeadline(time.Now().Add(n.config.Timeout)); nil != err {
		return err
	}
	c, err := conn.Read(n.datagram)
	if nil != err {
		var ne net.Error
		if errors.As(err, &ne) && ne.Timeout() {
			return ErrReadNoResponse
		}
		return err
	}
	if c != datagramSize {
		return ErrReadDatagramSize
	}
	return nil
}

func (d datagram) reset() {
	for i := range d {
		d[i] = 0 // zeroize the buffer
	}
}

// request fills d with a client-mode NTP request.
func (d datagram) request(leapSmear bool) {
	d.reset()
	d[0] = 0b00100011 // LI, Version, Mode
	if !leapSmear {
		// set LI to alarm (clock not sync'd) if server does not leap smear:
		d[0] |= 0b11000000
	}
	d[1] = 0    // Stratum, or type of clock
	d[2] = 6    // Polling Interval
	d[3] = 0xEC // Peer Clock Precision
	// 8 bytes of zero for Root Delay & Root Dispersion
	d[12] = 49
	d[13] = 0x4E
	d[14] = 49
	d[15] = 52
}

// parse returns the transmit timestamp (seconds) of a reply.
func (d datagram) parse() time.Time {
	const seventyYears = 2208988800
	t := uint32(d[40])<<24 | uint32(d[41])<<16 |
		uint32(d[42])<<8 | uint32(d[43])
	return time.Unix(int64(t)-seventyYears, 0)
}
