package lunasoc

import (
	"errors"
	"testing"

	"github.com/northvolt/go-lunasoc/hal"
	"github.com/northvolt/go-lunasoc/pac"
)

var (
	_ hal.SerialPort = (*Serial0)(nil)
	_ hal.Delayer    = (*Timer0)(nil)
)

func TestTake(t *testing.T) {
	b, err := Take()
	if err != nil {
		t.Fatal(err)
	}
	if b.Serial0 == nil || b.Timer0 == nil || b.Leds == nil {
		t.Fatal("missing driver")
	}
	if b.Timer0.Clock() != pac.Sysclk() {
		t.Errorf("timer clock %s, want %s", b.Timer0.Clock(), pac.Sysclk())
	}
	if b.Leds.Len() != pac.NumLeds {
		t.Errorf("%d leds, want %d", b.Leds.Len(), pac.NumLeds)
	}

	if _, err := Take(); !errors.Is(err, pac.ErrTaken) {
		t.Errorf("got %v, want %v", err, pac.ErrTaken)
	}
}
