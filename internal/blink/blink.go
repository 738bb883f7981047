// Package blink implements the LED ping-pong demo run by the firmware and by
// lunasim.
package blink

import "github.com/northvolt/go-lunasoc/hal"

const (
	leftmost  = 0b110000
	rightmost = 0b000011
)

// Leds is the LED bank the loop drives.
type Leds interface {
	Set(mask uint32)
}

// Loop moves a pair of lit LEDs back and forth, one position per interval,
// and logs every change of direction.
type Loop struct {
	leds     Leds
	delay    hal.Delayer
	log      hal.Logger
	interval uint32

	state uint32
	right bool
	count int
}

// New returns a Loop waiting intervalMs between steps.
func New(leds Leds, delay hal.Delayer, log hal.Logger, intervalMs uint32) *Loop {
	if log == nil {
		log = nopLogger{}
	}
	return &Loop{
		leds:     leds,
		delay:    delay,
		log:      log,
		interval: intervalMs,
		state:    leftmost,
		right:    true,
	}
}

// Step waits one interval, moves the LEDs by one position and returns the
// new LED state.
func (l *Loop) Step() uint32 {
	l.delay.DelayMs(l.interval)

	if l.right {
		l.state >>= 1
		if l.state == rightmost {
			l.right = false
			l.log.Printf("left: %d", l.count)
		}
	} else {
		l.state <<= 1
		if l.state == leftmost {
			l.right = true
			l.log.Printf("right: %d", l.count)
		}
	}

	l.leds.Set(l.state)
	l.count++
	return l.state
}

// Run steps n times, or forever if n <= 0.
func (l *Loop) Run(n int) {
	for i := 0; n <= 0 || i < n; i++ {
		l.Step()
	}
}

type nopLogger struct{}

func (nopLogger) Printf(string, ...interface{}) {}
