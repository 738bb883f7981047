package pac

import (
	"unsafe"

	"periph.io/x/conn/v3/physic"
)

const (
	csrBase    uintptr = 0xf000_0000
	LedsBase           = csrBase + 0x000
	UART0Base          = csrBase + 0x300
	TIMER0Base         = csrBase + 0x500
)

// Frequency of the sync clock domain the CPU and all peripherals run on.
const sysclk = 60 * physic.MegaHertz

// Peripherals holds the register blocks of all peripherals on the SoC.
type Peripherals struct {
	LEDS   *Leds
	UART0  *UART
	TIMER0 *Timer
}

var peripherals = NewToken(&Peripherals{
	LEDS:   (*Leds)(unsafe.Pointer(LedsBase)),
	UART0:  (*UART)(unsafe.Pointer(UART0Base)),
	TIMER0: (*Timer)(unsafe.Pointer(TIMER0Base)),
})

// Take returns the SoC's peripherals. It succeeds once per process and
// returns ErrTaken afterwards.
func Take() (*Peripherals, error) {
	return peripherals.Take()
}

// Steal returns the SoC's peripherals even if they were already taken.
func Steal() *Peripherals {
	return peripherals.Steal()
}

// Sysclk returns the system clock frequency.
//
// The clock tree is fixed by the gateware, so this never changes at runtime.
func Sysclk() physic.Frequency {
	return sysclk
}
