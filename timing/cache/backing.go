package cache

import "github.com/Eltaras202/mipspipe-sim/emu"

// MemoryBacking adapts emu.Memory to the BackingStore interface the cache
// fills from and writes back to.
type MemoryBacking struct {
	memory *emu.Memory
}

// NewMemoryBacking creates a new MemoryBacking adapter.
func NewMemoryBacking(memory *emu.Memory) *MemoryBacking {
	return &MemoryBacking{memory: memory}
}

// Read32 reads one aligned 32-bit word from the backing memory.
func (m *MemoryBacking) Read32(addr uint32) uint32 {
	return m.memory.Read32(addr)
}

// Write32 writes one aligned 32-bit word to the backing memory.
func (m *MemoryBacking) Write32(addr uint32, value uint32) {
	m.memory.Write32(addr, value)
}
