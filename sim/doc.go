// Package sim simulates the LUNA SoC peripherals at register level.
//
// The simulated register blocks provide the same accessors as the ones in
// package pac, so the hal drivers run on them unchanged. Hardware time
// advances with register polls rather than with a clock: every status read
// is one step of the simulated peripheral.
package sim
