/*
lunasim runs the LUNA SoC drivers against a simulated SoC.

It executes the same driver code the firmware runs, with the peripheral
registers replaced by the models in package sim. UART0 output is written to
stdout.
*/
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/golang/glog"
	"github.com/peterbourgon/ff/v3/ffcli"
)

func main() {
	var (
		in  = os.Stdin
		out = os.Stdout
		err = os.Stderr
	)

	rootCmd, cfg := newRootCmd()
	rootCmd.Subcommands = []*ffcli.Command{
		newBlinkCmd(cfg, out, err),
		newEchoCmd(cfg, in, out, err),
		newTicksCmd(cfg, out, err),
	}

	ctx, cancel := context.WithCancel(context.Background())

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go func() {
		var num = 0
		for range c {
			num += 1
			if num >= 3 {
				os.Exit(1)
			} else {
				cancel()
			}
		}
	}()

	err1 := rootCmd.ParseAndRun(ctx, os.Args[1:])
	glog.Flush()
	if err1 != nil {
		if !errors.Is(err1, context.Canceled) {
			msg := strings.TrimPrefix(err1.Error(), "lunasim: ")
			fmt.Fprintf(os.Stderr, "%s: %s\n", rootCmd.Name, msg)
			os.Exit(1)
		} else if cfg.verbose {
			fmt.Fprintf(os.Stderr, "%s: cancelled\n", rootCmd.Name)
		}
	}
}
