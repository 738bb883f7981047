package main

import (
	"context"
	"flag"

	"github.com/northvolt/go-lunasoc/pac"
	"github.com/peterbourgon/ff/v3/ffcli"
	"periph.io/x/conn/v3/physic"
)

type rootConfig struct {
	verbose bool
	clock   physic.Frequency
}

func (c *rootConfig) registerFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.verbose, "v", false, "log register level driver activity to stderr")
	fs.Var(&c.clock, "clock", "system clock frequency, eg 60MHz")
}

func (c *rootConfig) Exec(context.Context, []string) error {
	return flag.ErrHelp
}

func newRootCmd() (*ffcli.Command, *rootConfig) {
	cfg := rootConfig{clock: pac.Sysclk()}

	fs := flag.NewFlagSet("lunasim", flag.ExitOnError)
	cfg.registerFlags(fs)

	return addLongHelp(&ffcli.Command{
		Name:       "lunasim",
		ShortUsage: "lunasim [flags] <subcommand>",
		ShortHelp:  "Runs the LUNA SoC drivers on a simulated SoC.",
		FlagSet:    fs,
		Exec:       cfg.Exec,
	}), &cfg
}

var lunasimLongHelp = `

SIMULATION
Peripherals are simulated at register level. Simulated time advances with
register polls, not with wall clock time: each poll of the timer counts it
down by -step ticks and the transmit FIFO drains after one poll.

  LEDS    0xf0000000
  UART0   0xf0000300
  TIMER0  0xf0000500`
