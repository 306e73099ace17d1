//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"unitcircle/explorer"
	"unitcircle/hal"
)

func main() {
	var cfg hal.HeadlessConfig
	var startAngle int
	flag.BoolVar(&cfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.IntVar(&startAngle, "angle", 45, "Initial angle in degrees (0-360).")
	flag.Parse()

	newApp := func(h hal.HAL) func() error {
		e := explorer.New(h, explorer.Config{StartAngle: startAngle})
		return e.Step
	}

	if cfg.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, cfg); err != nil {
			if err == context.Canceled || errors.Is(err, explorer.ErrQuit) {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(newApp); err != nil {
		if errors.Is(err, explorer.ErrQuit) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
