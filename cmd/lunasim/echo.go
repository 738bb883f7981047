package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/northvolt/go-lunasoc/hal"
	"github.com/northvolt/go-lunasoc/sim"
	"github.com/peterbourgon/ff/v3/ffcli"
)

type echoConfig struct {
	rootConfig *rootConfig
	in         io.Reader
	out        io.Writer
	err        io.Writer
}

// uartFeeder delivers everything written to it to the UART's receive FIFO.
type uartFeeder struct {
	u *sim.UART
}

func (f uartFeeder) Write(p []byte) (int, error) {
	f.u.Feed(p)
	return len(p), nil
}

func (c *echoConfig) Exec(ctx context.Context, _ []string) error {
	cfg := sim.DefaultConfig()
	cfg.Clock = c.rootConfig.clock
	cfg.Output = c.out

	p, err := sim.New(cfg).Take()
	if err != nil {
		return err
	}

	var serial hal.SerialPort = hal.NewSerial(p.UART0)
	if c.rootConfig.verbose {
		serial = hal.NewDebugSerial("uart0", newLogger(true), serial)
	}

	fed := make(chan error, 1)
	go func() {
		_, err := io.Copy(uartFeeder{p.UART0}, c.in)
		fed <- err
	}()

	var (
		w   = hal.CRLF(serial)
		n   int
		eof bool
	)
	for {
		b, err := serial.ReadByte()
		if err == nil {
			if _, err = w.Write([]byte{b}); err != nil {
				return err
			}
			n++
			continue
		}
		if !errors.Is(err, hal.ErrWouldBlock) {
			return err
		}
		if eof {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-fed:
			if err != nil {
				return err
			}
			eof = true
		case <-time.After(time.Millisecond):
		}
	}

	if c.rootConfig.verbose {
		fmt.Fprintln(c.err, "echoed", n)
	}
	return nil
}

func newEchoCmd(rootConfig *rootConfig, in io.Reader, out io.Writer, err io.Writer) *ffcli.Command {
	cfg := echoConfig{
		rootConfig: rootConfig,
		in:         in,
		out:        out,
		err:        err,
	}

	fs := flag.NewFlagSet("lunasim echo", flag.ExitOnError)
	rootConfig.registerFlags(fs)

	return &ffcli.Command{
		Name:       "echo",
		ShortUsage: "echo < input",
		ShortHelp:  "Receives stdin on UART0 and transmits it back to stdout.",
		FlagSet:    fs,
		Exec:       cfg.Exec,
	}
}
