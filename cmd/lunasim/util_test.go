package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/northvolt/go-lunasoc/hal"
	"github.com/northvolt/go-lunasoc/sim"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
)

func TestTicks(t *testing.T) {
	testCases := []struct {
		name string
		clk  physic.Frequency
		args []string
		want string
	}{
		{"100ms at 12MHz", 12 * physic.MegaHertz, []string{"100ms"}, "100ms\t1200000\n"},
		{"truncated", 60 * physic.MegaHertz, []string{"10ns"}, "10ns\t0\n"},
		{"negative", 60 * physic.MegaHertz, []string{"-1s"}, "0s\t0\n"},
		{"many", 1 * physic.MegaHertz, []string{"1us", "1s"}, "1µs\t1\n1s\t1000000\n"},
		{"chunked", 60 * physic.MegaHertz, []string{"2m"}, "2m0s\t7200000000\t(2 countdowns)\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			c := ticksConfig{rootConfig: &rootConfig{clock: tc.clk}, out: &out}
			if err := c.Exec(context.Background(), tc.args); err != nil {
				t.Fatal(err)
			}
			if out.String() != tc.want {
				t.Errorf("got %q, want %q", out.String(), tc.want)
			}
		})
	}
}

func TestTicksErrors(t *testing.T) {
	c := ticksConfig{rootConfig: &rootConfig{clock: physic.MegaHertz}, out: &bytes.Buffer{}}
	if err := c.Exec(context.Background(), nil); err == nil {
		t.Error("missing duration accepted")
	}
	if err := c.Exec(context.Background(), []string{"soon"}); err == nil {
		t.Error("invalid duration accepted")
	}
}

func TestBlink(t *testing.T) {
	var out bytes.Buffer
	c := blinkConfig{
		rootConfig: &rootConfig{clock: 60 * physic.MegaHertz},
		out:        &out,
		steps:      8,
		interval:   100_000_000,
		step:       1000,
	}
	if err := c.Exec(context.Background(), nil); err != nil {
		t.Fatal(err)
	}

	want := "INFO  Peripherals initialized, entering main loop.\r\n" +
		"INFO  left: 3\r\n" +
		"INFO  right: 7\r\n"
	if out.String() != want {
		t.Errorf("got %q, want %q", out.String(), want)
	}
}

func TestBlinkCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := blinkConfig{
		rootConfig: &rootConfig{clock: 60 * physic.MegaHertz},
		out:        &bytes.Buffer{},
		step:       1000,
	}
	if err := c.Exec(ctx, nil); err != context.Canceled {
		t.Errorf("got %v, want %v", err, context.Canceled)
	}
}

func TestEcho(t *testing.T) {
	var out bytes.Buffer
	c := echoConfig{
		rootConfig: &rootConfig{clock: 60 * physic.MegaHertz},
		in:         strings.NewReader("left\nright\n"),
		out:        &out,
	}
	if err := c.Exec(context.Background(), nil); err != nil {
		t.Fatal(err)
	}
	if want := "left\r\nright\r\n"; out.String() != want {
		t.Errorf("got %q, want %q", out.String(), want)
	}
}

func TestMirrorLeds(t *testing.T) {
	l := sim.NewLeds(3, nil)
	bank := hal.NewLeds(l, 3)
	pins := []gpio.PinOut{bank.Pin(0), bank.Pin(1), bank.Pin(2)}

	if err := mirrorLeds(pins, 0b101); err != nil {
		t.Fatal(err)
	}
	if got := l.String(); got != "#.#" {
		t.Errorf("got %s, want #.#", got)
	}
	if err := mirrorLeds(nil, 0b111); err != nil {
		t.Error(err)
	}
}

func TestOpenPinsEmpty(t *testing.T) {
	pins, err := openPins("")
	if err != nil || pins != nil {
		t.Errorf("got (%v, %v)", pins, err)
	}
}
