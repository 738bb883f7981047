package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/golang/glog"
	"github.com/northvolt/go-lunasoc/hal"
	"github.com/peterbourgon/ff/v3/ffcli"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

// glogLogger sends hal debug messages to glog.
type glogLogger struct{}

func (glogLogger) Printf(format string, args ...interface{}) {
	glog.InfoDepth(1, fmt.Sprintf(format, args...))
}

func newLogger(verbose bool) hal.Logger {
	if verbose {
		_ = flag.Set("logtostderr", "true")
		return glogLogger{}
	} else {
		return nil
	}
}

// openPins opens the comma separated host GPIO pins in list.
func openPins(list string) ([]gpio.PinOut, error) {
	if list == "" {
		return nil, nil
	}
	if _, err := host.Init(); err != nil {
		return nil, err
	}

	var pins []gpio.PinOut
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		p := gpioreg.ByName(name)
		if p == nil {
			return nil, fmt.Errorf("lunasim: unknown gpio %q", name)
		}
		pins = append(pins, p)
	}
	return pins, nil
}

// mirrorLeds drives pins[i] with bit i of v.
func mirrorLeds(pins []gpio.PinOut, v uint32) error {
	for i, p := range pins {
		if err := p.Out(gpio.Level(v&(1<<i) != 0)); err != nil {
			return fmt.Errorf("lunasim: %s: %w", p, err)
		}
	}
	return nil
}

func addLongHelp(cmd *ffcli.Command) *ffcli.Command {
	if cmd.LongHelp == "" {
		cmd.LongHelp = cmd.ShortHelp
	}

	cmd.LongHelp += lunasimLongHelp

	return cmd
}
