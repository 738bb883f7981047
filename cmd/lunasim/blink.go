package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/northvolt/go-lunasoc/hal"
	"github.com/northvolt/go-lunasoc/internal/blink"
	"github.com/northvolt/go-lunasoc/pac"
	"github.com/northvolt/go-lunasoc/sim"
	"github.com/peterbourgon/ff/v3/ffcli"
)

type blinkConfig struct {
	rootConfig *rootConfig
	out        io.Writer
	err        io.Writer
	steps      int
	interval   time.Duration
	step       uint
	gpio       string
}

func (c *blinkConfig) Exec(ctx context.Context, _ []string) error {
	if c.rootConfig.verbose {
		fmt.Fprintln(c.err, "blink")
	}

	pins, err := openPins(c.gpio)
	if err != nil {
		return err
	}
	debug := newLogger(c.rootConfig.verbose)

	cfg := sim.DefaultConfig()
	cfg.Clock = c.rootConfig.clock
	cfg.TimerStep = uint32(c.step)
	cfg.Output = c.out
	cfg.OnLeds = func(v uint32) {
		if debug != nil {
			debug.Printf("leds %06b", v)
		}
		if err := mirrorLeds(pins, v); err != nil && debug != nil {
			debug.Printf("gpio: %v", err)
		}
	}

	soc := sim.New(cfg)
	p, err := soc.Take()
	if err != nil {
		return err
	}

	var serial hal.SerialPort = hal.NewSerial(p.UART0)
	if debug != nil {
		serial = hal.NewDebugSerial("uart0", debug, serial)
	}
	timer := hal.NewTimer(p.TIMER0, soc.Sysclk())
	leds := hal.NewLeds(p.LEDS, pac.NumLeds)

	logger := log.New(hal.CRLF(serial), "INFO  ", 0)
	logger.Printf("Peripherals initialized, entering main loop.")

	loop := blink.New(leds, timer, logger, uint32(c.interval/time.Millisecond))
	for i := 0; c.steps <= 0 || i < c.steps; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		loop.Step()
	}
	return nil
}

func newBlinkCmd(rootConfig *rootConfig, out io.Writer, err io.Writer) *ffcli.Command {
	cfg := blinkConfig{
		rootConfig: rootConfig,
		out:        out,
		err:        err,
	}

	fs := flag.NewFlagSet("lunasim blink", flag.ExitOnError)
	fs.IntVar(&cfg.steps, "n", 0, "number of LED steps to run, 0 runs until interrupted")
	fs.DurationVar(&cfg.interval, "interval", 100*time.Millisecond, "delay between LED steps")
	fs.UintVar(&cfg.step, "step", uint(sim.DefaultConfig().TimerStep), "timer ticks per register poll")
	fs.StringVar(&cfg.gpio, "gpio", "", "comma separated host GPIO pins mirroring LED0, LED1, ...")
	rootConfig.registerFlags(fs)

	return &ffcli.Command{
		Name:       "blink",
		ShortUsage: "blink [-n steps] [-gpio GPIO17,GPIO27]",
		ShortHelp:  "Runs the LED demo firmware on the simulated SoC.",
		FlagSet:    fs,
		Exec:       cfg.Exec,
	}
}
