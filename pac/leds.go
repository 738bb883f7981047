package pac

import "github.com/northvolt/go-lunasoc/mmio"

// NumLeds is the number of user LEDs wired to the Leds block.
const NumLeds = 6

// Leds is the register block driving the user LEDs, one bit per LED.
type Leds struct {
	Output mmio.U32
}

func (r *Leds) LoadOutput() uint32 {
	return r.Output.Load()
}

func (r *Leds) StoreOutput(v uint32) {
	r.Output.Store(v & (1<<NumLeds - 1))
}
