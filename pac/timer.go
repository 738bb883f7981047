package pac

import "github.com/northvolt/go-lunasoc/mmio"

// TimerControl is the bit set of the timer's control register.
type TimerControl uint32

const (
	TimerEnable   TimerControl = 1 << iota
	TimerPeriodic              // reload counter from Reload on reaching zero
)

// TIMER0 events
const (
	EventTimeout Event = 1 << iota // counter reached zero
)

// Timer is the register block of the countdown timer.
type Timer struct {
	Control mmio.R32[TimerControl]
	Reload  mmio.U32
	Counter mmio.U32 // counts down once per sysclk cycle while enabled

	EvStatus  mmio.R32[Event]
	EvPending mmio.R32[Event] // write 1 to clear
	EvEnable  mmio.R32[Event]
}

func (r *Timer) Enable() {
	r.Control.SetBits(TimerEnable)
}

func (r *Timer) Disable() {
	r.Control.ClearBits(TimerEnable)
}

// SetReload sets the reload value. Zero selects one-shot mode.
func (r *Timer) SetReload(v uint32) {
	r.Reload.Store(v)
	if v == 0 {
		r.Control.ClearBits(TimerPeriodic)
	} else {
		r.Control.SetBits(TimerPeriodic)
	}
}

func (r *Timer) SetCounter(v uint32) {
	r.Counter.Store(v)
}

func (r *Timer) LoadCounter() uint32 {
	return r.Counter.Load()
}

// Elapsed reports whether the countdown reached zero.
func (r *Timer) Elapsed() bool {
	return r.EvStatus.LoadBits(EventTimeout) != 0
}

func (r *Timer) SetEventEnable(on bool) {
	if on {
		r.EvEnable.SetBits(EventTimeout)
	} else {
		r.EvEnable.ClearBits(EventTimeout)
	}
}

func (r *Timer) EventPending() bool {
	return r.EvPending.LoadBits(EventTimeout) != 0
}

func (r *Timer) ClearEventPending() {
	r.EvPending.Store(EventTimeout)
}
