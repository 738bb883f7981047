package mmio

import (
	"testing"
	"unsafe"
)

type flags uint32

const (
	flagA flags = 1 << iota
	flagB
	flagC
)

type block struct {
	data   U32
	status R32[flags]
}

func TestU32(t *testing.T) {
	var b block

	b.data.Store(0xdead_beef)
	if got := b.data.Load(); got != 0xdead_beef {
		t.Errorf("got %#x, want %#x", got, 0xdead_beef)
	}
	if got := b.data.LoadBits(0xffff); got != 0xbeef {
		t.Errorf("got %#x, want %#x", got, 0xbeef)
	}

	b.data.StoreBits(0xff00, 0x1234)
	if got := b.data.Load(); got != 0xdead_12ef {
		t.Errorf("got %#x, want %#x", got, 0xdead_12ef)
	}

	b.data.ClearBits(0xffff_0000)
	b.data.SetBits(0x1_0000)
	if got := b.data.Load(); got != 0x1_12ef {
		t.Errorf("got %#x, want %#x", got, 0x1_12ef)
	}
}

func TestR32(t *testing.T) {
	var b block

	b.status.SetBits(flagA | flagC)
	if got := b.status.LoadBits(flagC); got != flagC {
		t.Errorf("got %#x, want %#x", got, flagC)
	}
	if got := b.status.LoadBits(flagB); got != 0 {
		t.Errorf("got %#x, want 0", got)
	}

	b.status.ClearBits(flagA)
	if got := b.status.Load(); got != flagC {
		t.Errorf("got %#x, want %#x", got, flagC)
	}

	b.status.StoreBits(flagB|flagC, flagB)
	if got := b.status.Load(); got != flagB {
		t.Errorf("got %#x, want %#x", got, flagB)
	}
}

func TestLayout(t *testing.T) {
	var b block
	if unsafe.Sizeof(b.data) != 4 || unsafe.Sizeof(b.status) != 4 {
		t.Fatal("registers must be 32 bits wide")
	}
	if b.status.Addr()-b.data.Addr() != 4 {
		t.Errorf("status at offset %d, want 4", b.status.Addr()-b.data.Addr())
	}
}
