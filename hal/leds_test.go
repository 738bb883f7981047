package hal

import (
	"errors"
	"testing"

	"periph.io/x/conn/v3/gpio"
)

type ledRegs struct {
	out    uint32
	stores int
}

func (r *ledRegs) LoadOutput() uint32 { return r.out }

func (r *ledRegs) StoreOutput(v uint32) {
	r.out = v
	r.stores++
}

func TestLedsSet(t *testing.T) {
	r := &ledRegs{}
	l := NewLeds(r, 6)

	l.Set(0b1111_0000)
	if r.out != 0b11_0000 {
		t.Errorf("output %#b, want %#b", r.out, 0b11_0000)
	}
	if l.Get() != 0b11_0000 {
		t.Errorf("get %#b", l.Get())
	}
	if l.Len() != 6 {
		t.Errorf("len %d", l.Len())
	}
}

func TestLEDPin(t *testing.T) {
	r := &ledRegs{out: 0b000011}
	l := NewLeds(r, 6)

	if l.Pin(6) != nil || l.Pin(-1) != nil {
		t.Fatal("out of range pin returned")
	}

	var p gpio.PinOut = l.Pin(4)
	if p.Name() != "LED4" || p.Number() != 4 || p.String() != "LED4" {
		t.Errorf("got %s %d", p.Name(), p.Number())
	}

	if err := p.Out(gpio.High); err != nil {
		t.Fatal(err)
	}
	if r.out != 0b010011 {
		t.Errorf("output %#b, want %#b", r.out, 0b010011)
	}
	if p.Function() != "Out/High" {
		t.Errorf("function %q", p.Function())
	}

	_ = l.Pin(0).Out(gpio.Low)
	if r.out != 0b010010 {
		t.Errorf("output %#b, want %#b", r.out, 0b010010)
	}

	if err := p.PWM(gpio.DutyHalf, 0); !errors.Is(err, ErrPWM) {
		t.Errorf("got %v, want %v", err, ErrPWM)
	}
	if err := p.Halt(); err != nil {
		t.Error(err)
	}
}
