// Package lunasoc binds the hal drivers to the LUNA SoC.
//
// Application code acquires all peripherals with a single call to Take and
// then uses the drivers directly:
//
//	board, err := lunasoc.Take()
//	if err != nil {
//		panic(err)
//	}
//	board.Timer0.DelayMs(100)
//	board.Serial0.WriteString("hello\r\n")
package lunasoc

import (
	"github.com/northvolt/go-lunasoc/hal"
	"github.com/northvolt/go-lunasoc/pac"
)

// Drivers bound to the SoC's register blocks.
type (
	Serial0 = hal.Serial[*pac.UART]
	Timer0  = hal.Timer[*pac.Timer]
	Leds    = hal.Leds[*pac.Leds]
)

// Board holds a driver for every peripheral of the SoC.
type Board struct {
	Serial0 *Serial0
	Timer0  *Timer0
	Leds    *Leds
}

// Take acquires the SoC's peripherals and wraps them in drivers. The timer
// counts at pac.Sysclk.
//
// Take succeeds once per process and returns pac.ErrTaken afterwards.
func Take() (*Board, error) {
	p, err := pac.Take()
	if err != nil {
		return nil, err
	}
	return &Board{
		Serial0: hal.NewSerial(p.UART0),
		Timer0:  hal.NewTimer(p.TIMER0, pac.Sysclk()),
		Leds:    hal.NewLeds(p.LEDS, pac.NumLeds),
	}, nil
}
