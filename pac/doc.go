// Package pac is the peripheral-access layer of the LUNA SoC.
//
// It defines the register blocks of the SoC's peripherals, places them at
// their bus addresses and hands out ownership of them exactly once. Registers
// are exposed both as raw mmio fields and as the named accessors the hal
// drivers are written against.
//
// Accessing the register blocks on anything but the SoC itself faults. Host
// code uses package sim instead.
//
// # Memory map
//
//	0xf000_0000  LEDS    output
//	0xf000_0300  UART0   115200 8N1 serial transceiver
//	0xf000_0500  TIMER0  32-bit countdown timer
package pac
