package emu

// Memory is the flat, word-addressable backing store that sits behind both
// caches. Per spec this is an external collaborator — only 4-byte-aligned
// 32-bit word reads/writes are required of it — but the simulator needs a
// concrete implementation to run anything, so it is modeled as a sparse
// byte-addressed map, grown lazily. cache.MemoryBacking reaches it only
// through Read32/Write32.
type Memory struct {
	bytes map[uint32]byte
}

// NewMemory creates an empty flat memory.
func NewMemory() *Memory {
	return &Memory{bytes: make(map[uint32]byte)}
}

// Read8 reads a single byte. Unwritten addresses read as zero.
func (m *Memory) Read8(addr uint32) uint8 {
	return m.bytes[addr]
}

// Write8 writes a single byte.
func (m *Memory) Write8(addr uint32, value uint8) {
	m.bytes[addr] = value
}

// Read32 reads a 32-bit little-endian word. The address need not be
// aligned; callers that require alignment (the caches) enforce it
// themselves.
func (m *Memory) Read32(addr uint32) uint32 {
	var v uint32
	for i := uint32(0); i < 4; i++ {
		v |= uint32(m.Read8(addr+i)) << (8 * i)
	}
	return v
}

// Write32 writes a 32-bit little-endian word.
func (m *Memory) Write32(addr uint32, value uint32) {
	for i := uint32(0); i < 4; i++ {
		m.Write8(addr+i, uint8(value>>(8*i)))
	}
}
