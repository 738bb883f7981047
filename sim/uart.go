package sim

import (
	"io"
	"sync"
)

// UARTStats counts register accesses of a simulated UART.
type UARTStats struct {
	StatusReads int // TxFull and RxEmpty
	RxReads     int // ReadRxData
	TxWrites    int // WriteTxData
}

// UART is a simulated serial transceiver with a one-entry transmit FIFO and
// an unbounded receive FIFO.
//
// UART is safe for concurrent use, so a test can feed it while a driver
// polls it.
type UART struct {
	mu      sync.Mutex
	latency int
	busy    int
	out     io.Writer
	tx      []byte
	rx      []byte
	stats   UARTStats
}

// NewUART returns a UART whose transmit FIFO stays full for latency status
// polls after every write. Transmitted bytes are copied to out if not nil.
func NewUART(latency int, out io.Writer) *UART {
	return &UART{latency: latency, out: out}
}

func (u *UART) TxFull() bool {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.stats.StatusReads++
	if u.busy > 0 {
		u.busy--
		return true
	}
	return false
}

func (u *UART) WriteTxData(b byte) {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.stats.TxWrites++
	u.tx = append(u.tx, b)
	u.busy = u.latency
	if u.out != nil {
		_, _ = u.out.Write([]byte{b})
	}
}

func (u *UART) RxEmpty() bool {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.stats.StatusReads++
	return len(u.rx) == 0
}

// ReadRxData pops the receive FIFO. Reading an empty FIFO returns 0.
func (u *UART) ReadRxData() byte {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.stats.RxReads++
	if len(u.rx) == 0 {
		return 0
	}
	b := u.rx[0]
	u.rx = u.rx[1:]
	return b
}

// Feed queues p in the receive FIFO, as if it arrived on the wire.
func (u *UART) Feed(p []byte) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.rx = append(u.rx, p...)
}

// Transmitted returns a copy of all bytes written to the transmit register.
func (u *UART) Transmitted() []byte {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]byte(nil), u.tx...)
}

func (u *UART) Stats() UARTStats {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.stats
}

func (u *UART) String() string {
	return "sim-uart"
}
