package hal

import (
	"fmt"

	"periph.io/x/conn/v3"
)

// UARTRegisters is the register block of a serial transceiver.
type UARTRegisters interface {
	// TxFull reports whether the transmit FIFO is full.
	TxFull() bool
	WriteTxData(b byte)
	// RxEmpty reports whether the receive FIFO is empty.
	RxEmpty() bool
	// ReadRxData pops one byte from the receive FIFO.
	ReadRxData() byte
}

// Serial drives a serial transceiver by polling its status flags.
//
// Serial keeps no state of its own. It owns its register block for its whole
// lifetime and is not safe for concurrent use.
type Serial[R UARTRegisters] struct {
	regs R
}

// NewSerial returns a Serial driving regs.
func NewSerial[R UARTRegisters](regs R) *Serial[R] {
	return &Serial[R]{regs: regs}
}

// WriteByte waits until the transmit FIFO has room and queues b.
//
// It never returns an error; a transmitter that never drains blocks forever.
func (s *Serial[R]) WriteByte(b byte) error {
	for s.regs.TxFull() {
	}
	s.regs.WriteTxData(b)
	return nil
}

// ReadByte returns the next received byte, or ErrWouldBlock if the receive
// FIFO is empty. A would-block result leaves the FIFO untouched.
func (s *Serial[R]) ReadByte() (byte, error) {
	if s.regs.RxEmpty() {
		return 0, ErrWouldBlock
	}
	return s.regs.ReadRxData(), nil
}

// Write writes p byte by byte with WriteByte. It is not atomic: bytes are
// on the wire as soon as each one is queued.
func (s *Serial[R]) Write(p []byte) (int, error) {
	for _, b := range p {
		_ = s.WriteByte(b)
	}
	return len(p), nil
}

func (s *Serial[R]) WriteString(str string) (int, error) {
	for i := 0; i < len(str); i++ {
		_ = s.WriteByte(str[i])
	}
	return len(str), nil
}

// Flush waits until the transmit FIFO is no longer full.
func (s *Serial[R]) Flush() error {
	for s.regs.TxFull() {
	}
	return nil
}

// Tx writes w and then blocks until len(r) bytes were received.
//
// This implements conn.Conn.
func (s *Serial[R]) Tx(w, r []byte) error {
	if _, err := s.Write(w); err != nil {
		return err
	}
	for i := range r {
		b, err := Block(s.ReadByte)
		if err != nil {
			return err
		}
		r[i] = b
	}
	return nil
}

// Duplex implements conn.Conn.
func (s *Serial[R]) Duplex() conn.Duplex {
	return conn.Full
}

func (s *Serial[R]) String() string {
	if st, ok := any(s.regs).(fmt.Stringer); ok {
		return st.String()
	}
	return "serial"
}
