package hal

import (
	"math"
	"math/bits"

	"golang.org/x/exp/constraints"
	"periph.io/x/conn/v3/physic"
)

// Denominators converting a count of some time unit into seconds.
const (
	PerSecond      uint64 = 1
	PerMillisecond uint64 = 1e3
	PerMicrosecond uint64 = 1e6
	PerNanosecond  uint64 = 1e9
)

// Ticks returns the number of clk periods in n time units, where per is the
// number of units in a second:
//
//	ticks = floor(n * clk / per)
//
// Sub-hertz parts of clk are ignored. The product is computed in 128 bits, a
// result that does not fit 64 bits saturates.
func Ticks[T constraints.Unsigned](n T, clk physic.Frequency, per uint64) uint64 {
	if clk <= 0 || per == 0 {
		return 0
	}
	hz := uint64(clk / physic.Hertz)
	hi, lo := bits.Mul64(uint64(n), hz)
	if hi >= per {
		return math.MaxUint64
	}
	q, _ := bits.Div64(hi, lo, per)
	return q
}
