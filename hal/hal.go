package hal

import (
	"errors"
	"io"
)

// ErrWouldBlock is returned by non-blocking operations that cannot make
// progress yet. The caller decides whether and when to retry.
var ErrWouldBlock = errors.New("hal: would block")

// SerialPort is a byte-oriented serial transceiver.
type SerialPort interface {
	io.ByteReader
	io.ByteWriter
	io.Writer
	// Flush blocks until the transmitter accepts more data.
	Flush() error
}

// Delayer blocks the caller for a given time.
type Delayer interface {
	DelayNs(ns uint32)
	DelayUs(us uint32)
	DelayMs(ms uint32)
}

// Block calls f until it returns something other than ErrWouldBlock.
//
//	b, err := hal.Block(serial.ReadByte)
func Block[T any](f func() (T, error)) (T, error) {
	for {
		v, err := f()
		if !errors.Is(err, ErrWouldBlock) {
			return v, err
		}
	}
}

type crlfWriter struct {
	w io.ByteWriter
}

// CRLF returns a writer that writes '\r' in front of every '\n'.
func CRLF(w io.ByteWriter) io.Writer {
	return crlfWriter{w}
}

func (c crlfWriter) Write(p []byte) (n int, err error) {
	for _, b := range p {
		if b == '\n' {
			if err = c.w.WriteByte('\r'); err != nil {
				return
			}
		}
		if err = c.w.WriteByte(b); err != nil {
			return
		}
		n++
	}
	return
}
