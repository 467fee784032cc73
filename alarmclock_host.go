//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"os/signal"

	"github.com/ardnew/alarmclock/app"
	"github.com/ardnew/alarmclock/assets"
	"github.com/ardnew/alarmclock/config"
	"github.com/ardnew/alarmclock/hal"
)

func main() {
	var (
		headless   hal.HeadlessConfig
		configPath string
		envPath    string
		assetsDir  string
		lightLevel int
	)
	flag.StringVar(&configPath, "config", "alarmclock.yaml", "YAML configuration file (missing is fine).")
	flag.StringVar(&envPath, "env", "", "Env file with OPENWEATHER_TOKEN (default .env, missing is fine).")
	flag.BoolVar(&headless.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&headless.Hz, "hz", 100, "Tick rate in headless mode.")
	flag.Uint64Var(&headless.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.IntVar(&lightLevel, "light", 3000, "Initial simulated light sensor reading (0-65535).")
	flag.StringVar(&assetsDir, "assets", "", "Read bitmaps and sounds from this directory instead of the embedded set.")
	flag.Parse()

	if err := run(headless, configPath, envPath, assetsDir, lightLevel); err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(headless hal.HeadlessConfig, configPath, envPath, assetsDir string, lightLevel int) error {
	var envFiles []string
	if envPath != "" {
		envFiles = append(envFiles, envPath)
	}
	cfg, err := config.Load(configPath, envFiles...)
	if err != nil {
		return err
	}

	var fsys fs.FS = assets.FS
	if assetsDir != "" {
		fsys = os.DirFS(assetsDir)
	}

	h := hal.New(hal.HostConfig{Assets: fsys, Light: lightLevel})
	a, err := app.New(cfg, h, fsys)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a.Loop.Start()
	if headless.Enabled {
		return hal.RunHeadless(ctx, a.Loop.Step, headless)
	}
	return hal.RunWindow(ctx, h, a.Loop.Step)
}
