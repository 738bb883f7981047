package sim

import (
	"io"

	"periph.io/x/conn/v3/physic"
)

// Config is the configuration of a simulated SoC.
type Config struct {
	// Clock is the frequency reported for the system clock.
	Clock physic.Frequency
	// TxLatency is the number of status polls the transmit FIFO stays full
	// after each write.
	TxLatency int
	// TimerStep is the number of ticks the timer counts down per poll.
	TimerStep uint32
	// Output receives every byte the UART transmits. May be nil.
	Output io.Writer
	// OnLeds is called with the new LED state on every write to the LED
	// output register. May be nil.
	OnLeds func(v uint32)
}

// DefaultConfig returns the configuration of the LUNA SoC's sync domain.
func DefaultConfig() Config {
	return Config{
		Clock:     60 * physic.MegaHertz,
		TxLatency: 1,
		TimerStep: 1000,
	}
}
