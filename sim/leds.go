package sim

import "sync"

// Leds is a simulated LED output register.
type Leds struct {
	mu       sync.Mutex
	n        int
	out      uint32
	onChange func(v uint32)
}

// NewLeds returns a bank of n LEDs. onChange, if not nil, is called with
// the new output value on every store.
func NewLeds(n int, onChange func(v uint32)) *Leds {
	return &Leds{n: n, onChange: onChange}
}

func (l *Leds) LoadOutput() uint32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.out
}

func (l *Leds) StoreOutput(v uint32) {
	l.mu.Lock()
	l.out = v & (1<<l.n - 1)
	v, f := l.out, l.onChange
	l.mu.Unlock()

	if f != nil {
		f(v)
	}
}

// String renders the LEDs with the highest LED first, '#' for lit.
func (l *Leds) String() string {
	v := l.LoadOutput()
	b := make([]byte, l.n)
	for i := range b {
		if v&(1<<(l.n-1-i)) != 0 {
			b[i] = '#'
		} else {
			b[i] = '.'
		}
	}
	return string(b)
}
