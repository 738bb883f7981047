//go:build !tinygo

package mmio

import "sync/atomic"

// Atomic accesses are never reordered or elided by the gc compiler, which is
// all that is required from a volatile access.

func load(p *uint32) uint32 {
	return atomic.LoadUint32(p)
}

func store(p *uint32, v uint32) {
	atomic.StoreUint32(p, v)
}
