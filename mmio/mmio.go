// Package mmio provides access to memory-mapped peripheral registers.
//
// Registers are laid out as struct fields and placed over a fixed bus address
// by the peripheral-access layer. Every Load and Store is a single volatile
// 32-bit access; the compiler may neither elide nor merge them.
package mmio

import "unsafe"

// T32 is the set of types a 32-bit register can hold.
type T32 interface {
	~int32 | ~uint32
}

// U32 is a 32-bit register holding a plain value.
type U32 struct {
	r uint32
}

func (r *U32) Load() uint32 {
	return load(&r.r)
}

func (r *U32) Store(v uint32) {
	store(&r.r, v)
}

// LoadBits returns the bits of the register selected by mask.
func (r *U32) LoadBits(mask uint32) uint32 {
	return r.Load() & mask
}

// StoreBits replaces the bits selected by mask with bits. This is a
// read-modify-write and is not atomic with respect to the hardware.
func (r *U32) StoreBits(mask, bits uint32) {
	r.Store(r.Load()&^mask | bits&mask)
}

func (r *U32) SetBits(mask uint32) {
	r.Store(r.Load() | mask)
}

func (r *U32) ClearBits(mask uint32) {
	r.Store(r.Load() &^ mask)
}

func (r *U32) Addr() uintptr {
	return uintptr(unsafe.Pointer(r))
}

// R32 is a 32-bit register holding bit flags or an enumeration of type T.
type R32[T T32] struct {
	r uint32
}

func (r *R32[T]) Load() T {
	return T(load(&r.r))
}

func (r *R32[T]) Store(v T) {
	store(&r.r, uint32(v))
}

func (r *R32[T]) LoadBits(mask T) T {
	return r.Load() & mask
}

func (r *R32[T]) StoreBits(mask, bits T) {
	r.Store(r.Load()&^mask | bits&mask)
}

func (r *R32[T]) SetBits(mask T) {
	r.Store(r.Load() | mask)
}

func (r *R32[T]) ClearBits(mask T) {
	r.Store(r.Load() &^ mask)
}

func (r *R32[T]) Addr() uintptr {
	return uintptr(unsafe.Pointer(r))
}
