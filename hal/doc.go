// Package hal provides blocking drivers for the LUNA SoC peripherals.
//
// The drivers are generic over the register block they wrap, so one driver
// serves every chip whose peripheral-access layer provides the accessors
// listed in UARTRegisters, TimerRegisters and LedRegisters. A chip binds a
// driver to its registers with a type alias:
//
//	type Serial0 = hal.Serial[*pac.UART]
//	type Timer0 = hal.Timer[*pac.Timer]
//
// All waiting is done by spinning on a status flag. There are no timeouts:
// a peripheral that never becomes ready hangs the caller.
package hal
