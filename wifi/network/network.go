// Package network lists the access points the clock may join.
package network

import "strings"

// AP is one access point's credentials.
type AP struct {
	SSID string
	Pass string
}

// Set at link time, e.g.
//
//	-X 'github.com/ardnew/alarmclock/wifi/network.accessPoints=home=secret;shop=hunter2'
var accessPoints string

// Network is the ordered list of known access points.
var Network = Parse(accessPoints)

// Parse reads a list of "ssid=passphrase" pairs separated by ';'. The SSID
// ends at the first '='; a pair without '=' is an open network.
func Parse(s string) []AP {
	var aps []AP
	for _, pair := range strings.Split(s, ";") {
		if strings.TrimSpace(pair) == "" {
			continue
		}
		ssid, pass, _ := strings.Cut(pair, "=")
		aps = append(aps, AP{SSID: ssid, Pass: pass})
	}
	return aps
}
