package loader

import "github.com/Eltaras202/mipspipe-sim/emu"

// LoadIntoMemory copies every segment's file contents into mem at its
// virtual address, byte by byte. Bytes beyond len(Data) up to MemSize (the
// BSS tail) are left as the zero value Memory already reads unwritten
// addresses as, so nothing needs to be written for them explicitly.
func (prog *Program) LoadIntoMemory(mem *emu.Memory) {
	for _, seg := range prog.Segments {
		for i, b := range seg.Data {
			mem.Write8(seg.VirtAddr+uint32(i), b)
		}
	}
}
