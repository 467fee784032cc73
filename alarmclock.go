//go:build tinygo

package main

import (
	"context"
	"time"

	"github.com/ardnew/alarmclock/app"
	"github.com/ardnew/alarmclock/assets"
	"github.com/ardnew/alarmclock/config"
	"github.com/ardnew/alarmclock/hal"
	"github.com/ardnew/alarmclock/wifi"
	"github.com/ardnew/alarmclock/wifi/network"
)

func main() {
	h := hal.New(assets.FS)
	logger := h.Logger()

	cfg, err := config.Linked()
	if err != nil {
		halt(logger, err)
	}
	// join the network before anything tries to use it
	w := wifi.New(logger)
	if _, err := w.Connect(network.Network); err != nil {
		halt(logger, err)
	}
	a, err := app.New(cfg, h, assets.FS)
	if err != nil {
		w.Disconnect()
		halt(logger, err)
	}
	a.Loop.Run(context.Background())
}

func halt(logger hal.Logger, err error) {
	for {
		logger.WriteLineString("error: " + err.Error())
		time.Sleep(time.Second)
	}
}
