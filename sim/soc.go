package sim

import (
	"github.com/northvolt/go-lunasoc/pac"
	"periph.io/x/conn/v3/physic"
)

// Peripherals holds the simulated register blocks, mirroring
// pac.Peripherals.
type Peripherals struct {
	LEDS   *Leds
	UART0  *UART
	TIMER0 *Timer
}

// SoC is a simulated LUNA SoC.
type SoC struct {
	clk physic.Frequency
	tok *pac.Token[*Peripherals]
}

// New returns a simulated SoC configured by cfg.
func New(cfg Config) *SoC {
	return &SoC{
		clk: cfg.Clock,
		tok: pac.NewToken(&Peripherals{
			LEDS:   NewLeds(pac.NumLeds, cfg.OnLeds),
			UART0:  NewUART(cfg.TxLatency, cfg.Output),
			TIMER0: NewTimer(cfg.TimerStep),
		}),
	}
}

// Take returns the SoC's peripherals once; later calls return pac.ErrTaken.
func (s *SoC) Take() (*Peripherals, error) {
	return s.tok.Take()
}

// Sysclk returns the configured system clock.
func (s *SoC) Sysclk() physic.Frequency {
	return s.clk
}
