package pac

import (
	"strconv"

	"github.com/northvolt/go-lunasoc/mmio"
	"periph.io/x/conn/v3/physic"
)

// Event is the bit set of the ev_status, ev_pending and ev_enable registers.
type Event uint32

// UART0 events
const (
	EventRxAvail Event = 1 << iota // receive FIFO not empty
	EventTxReady                   // transmit FIFO not full
)

// UART is the register block of the serial transceiver.
type UART struct {
	Control mmio.U32 // bit 0 enables the transceiver
	Divisor mmio.U32 // sysclk cycles per bit
	RxData  mmio.U32
	RxAvail mmio.U32 // bit 0 set while the receive FIFO holds data
	RxErr   mmio.U32
	TxData  mmio.U32
	TxReady mmio.U32 // bit 0 set while the transmit FIFO accepts data

	EvStatus  mmio.R32[Event]
	EvPending mmio.R32[Event] // write 1 to clear
	EvEnable  mmio.R32[Event]
}

func (r *UART) TxFull() bool {
	return r.TxReady.LoadBits(1) == 0
}

func (r *UART) WriteTxData(b byte) {
	r.TxData.Store(uint32(b))
}

func (r *UART) RxEmpty() bool {
	return r.RxAvail.LoadBits(1) == 0
}

func (r *UART) ReadRxData() byte {
	return byte(r.RxData.Load())
}

// SetDivisor configures the baud rate as sysclk/baud cycles per bit.
func (r *UART) SetDivisor(baud uint32) {
	r.Divisor.Store(uint32(sysclk/physic.Hertz) / baud)
}

func (r *UART) String() string {
	return "uart@0x" + strconv.FormatUint(uint64(r.Control.Addr()), 16)
}
