package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/northvolt/go-lunasoc/hal"
	"github.com/peterbourgon/ff/v3/ffcli"
)

type ticksConfig struct {
	rootConfig *rootConfig
	out        io.Writer
	err        io.Writer
}

func (c *ticksConfig) Exec(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("lunasim: missing duration")
	}

	clk := c.rootConfig.clock
	if c.rootConfig.verbose {
		fmt.Fprintln(c.err, "ticks at", clk)
	}

	for _, arg := range args {
		d, err := time.ParseDuration(arg)
		if err != nil {
			return err
		}
		if d < 0 {
			d = 0
		}
		ticks := hal.Ticks(uint64(d), clk, hal.PerNanosecond)
		fmt.Fprintf(c.out, "%s\t%d", d, ticks)
		if ticks > math.MaxUint32 {
			fmt.Fprintf(c.out, "\t(%d countdowns)", (ticks+math.MaxUint32-1)/math.MaxUint32)
		}
		fmt.Fprintln(c.out)
	}
	return nil
}

func newTicksCmd(rootConfig *rootConfig, out io.Writer, err io.Writer) *ffcli.Command {
	cfg := ticksConfig{
		rootConfig: rootConfig,
		out:        out,
		err:        err,
	}

	fs := flag.NewFlagSet("lunasim ticks", flag.ExitOnError)
	rootConfig.registerFlags(fs)

	return &ffcli.Command{
		Name:       "ticks",
		ShortUsage: "ticks [-clock 60MHz] <duration>...",
		ShortHelp:  "Prints the countdown value a delay loads into the timer.",
		FlagSet:    fs,
		Exec:       cfg.Exec,
	}
}
