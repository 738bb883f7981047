package hal

import (
	"math"
	"time"

	"periph.io/x/conn/v3/physic"
)

// TimerRegisters is the register block of a 32-bit countdown timer.
type TimerRegisters interface {
	Enable()
	Disable()
	// SetReload sets the value loaded on reaching zero; 0 means one-shot.
	SetReload(v uint32)
	SetCounter(v uint32)
	LoadCounter() uint32
	// Elapsed reports whether the counter reached zero.
	Elapsed() bool
	SetEventEnable(on bool)
	EventPending() bool
	ClearEventPending()
}

// Timer provides blocking delays on a countdown timer.
//
// The clock passed to NewTimer must be the frequency the timer actually
// counts at. A wrong value silently scales every delay.
type Timer[R TimerRegisters] struct {
	regs R
	clk  physic.Frequency
}

// NewTimer returns a Timer driving regs, counting at clk.
func NewTimer[R TimerRegisters](regs R, clk physic.Frequency) *Timer[R] {
	return &Timer[R]{regs: regs, clk: clk}
}

// Clock returns the frequency the timer counts at.
func (t *Timer[R]) Clock() physic.Frequency {
	return t.clk
}

func (t *Timer[R]) DelayMs(ms uint32) {
	t.DelayTicks(Ticks(ms, t.clk, PerMillisecond))
}

func (t *Timer[R]) DelayUs(us uint32) {
	t.DelayTicks(Ticks(us, t.clk, PerMicrosecond))
}

func (t *Timer[R]) DelayNs(ns uint32) {
	t.DelayTicks(Ticks(ns, t.clk, PerNanosecond))
}

// Delay blocks for d, rounded down to whole timer ticks. Non-positive
// durations return after a zero countdown.
func (t *Timer[R]) Delay(d time.Duration) {
	t.DelayTicks(t.Ticks(d))
}

// Ticks returns the countdown value Delay loads for d.
func (t *Timer[R]) Ticks(d time.Duration) uint64 {
	if d <= 0 {
		return 0
	}
	return Ticks(uint64(d), t.clk, PerNanosecond)
}

// DelayTicks blocks for n timer ticks. Counts that do not fit the 32-bit
// counter are run as consecutive countdowns.
func (t *Timer[R]) DelayTicks(n uint64) {
	for {
		c := min(n, math.MaxUint32)
		t.countdown(uint32(c))
		n -= c
		if n == 0 {
			return
		}
	}
}

func (t *Timer[R]) countdown(ticks uint32) {
	t.regs.Disable()
	t.regs.SetReload(0)
	t.regs.SetCounter(ticks)
	t.regs.Enable()
	for !t.regs.Elapsed() {
	}
}

func (t *Timer[R]) Enable() {
	t.regs.Enable()
}

func (t *Timer[R]) Disable() {
	t.regs.Disable()
}

// SetTimeout starts the timer in periodic mode, raising the timeout event
// every d.
func (t *Timer[R]) SetTimeout(d time.Duration) {
	ticks := uint32(min(t.Ticks(d), math.MaxUint32))
	t.regs.Disable()
	t.regs.SetReload(ticks)
	t.regs.SetCounter(ticks)
	t.regs.Enable()
}

// Counter returns the current counter value.
func (t *Timer[R]) Counter() uint32 {
	return t.regs.LoadCounter()
}

// Listen enables the timeout event.
func (t *Timer[R]) Listen() {
	t.regs.SetEventEnable(true)
}

// Unlisten disables the timeout event.
func (t *Timer[R]) Unlisten() {
	t.regs.SetEventEnable(false)
}

// IsPending reports whether a timeout event is pending.
func (t *Timer[R]) IsPending() bool {
	return t.regs.EventPending()
}

func (t *Timer[R]) ClearPending() {
	t.regs.ClearEventPending()
}
