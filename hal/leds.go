package hal

import (
	"errors"
	"strconv"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
)

// ErrPWM is returned by LED.PWM; the LED block only drives static levels.
var ErrPWM = errors.New("hal: pwm not supported")

// LedRegisters is a register block with one output bit per LED.
type LedRegisters interface {
	LoadOutput() uint32
	StoreOutput(v uint32)
}

// Leds drives a bank of LEDs.
type Leds[R LedRegisters] struct {
	regs R
	n    int
}

// NewLeds returns a driver for the first n LEDs of regs.
func NewLeds[R LedRegisters](regs R, n int) *Leds[R] {
	return &Leds[R]{regs: regs, n: n}
}

// Set lights the LEDs whose bits are set in mask.
func (l *Leds[R]) Set(mask uint32) {
	l.regs.StoreOutput(mask & l.mask())
}

func (l *Leds[R]) Get() uint32 {
	return l.regs.LoadOutput() & l.mask()
}

func (l *Leds[R]) Len() int {
	return l.n
}

// Pin returns LED i as a gpio.PinOut, or nil if there is no such LED.
func (l *Leds[R]) Pin(i int) *LED[R] {
	if i < 0 || i >= l.n {
		return nil
	}
	return &LED[R]{leds: l, n: i}
}

func (l *Leds[R]) mask() uint32 {
	return 1<<l.n - 1
}

// LED is a single LED of a bank.
type LED[R LedRegisters] struct {
	leds *Leds[R]
	n    int
}

var _ gpio.PinOut = (*LED[LedRegisters])(nil)

func (p *LED[R]) String() string {
	return p.Name()
}

func (p *LED[R]) Name() string {
	return "LED" + strconv.Itoa(p.n)
}

func (p *LED[R]) Number() int {
	return p.n
}

func (p *LED[R]) Function() string {
	return "Out/" + p.level().String()
}

// Halt implements conn.Resource. The LED keeps its level.
func (p *LED[R]) Halt() error {
	return nil
}

// Out implements gpio.PinOut.
func (p *LED[R]) Out(l gpio.Level) error {
	bit := uint32(1) << p.n
	v := p.leds.regs.LoadOutput()
	if l {
		v |= bit
	} else {
		v &^= bit
	}
	p.leds.regs.StoreOutput(v)
	return nil
}

// PWM implements gpio.PinOut.
func (p *LED[R]) PWM(duty gpio.Duty, f physic.Frequency) error {
	return ErrPWM
}

func (p *LED[R]) level() gpio.Level {
	return p.leds.regs.LoadOutput()&(1<<p.n) != 0
}
