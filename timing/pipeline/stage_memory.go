package pipeline

import (
	"github.com/Eltaras202/mipspipe-sim/emu"
	"github.com/Eltaras202/mipspipe-sim/insts"
)

// stageMemory is the Memory stage: perform the data-cache access for any
// load/store, including the read-modify-write two-cache-access sequence a
// sub-word store needs. A miss on either access sets dcacheStall and
// returns with memOp left in place, so the whole access (including the
// read half of a store) restarts cleanly once the stall clears.
func (p *Pipeline) stageMemory() {
	if p.memOp == nil {
		return
	}

	op := p.memOp

	var word uint32
	if op.IsMem {
		alignedAddr := op.MemAddr &^ 3

		if op.MemWrite {
			var storeWord uint32
			switch op.Decoded.Op {
			case insts.OpSW:
				storeWord = op.MemValue
			case insts.OpSH:
				hit, existing := p.dcache.Access(alignedAddr, false, 0)
				if !hit {
					p.dcacheStall = p.dcache.Config().MissPenalty
					return
				}
				storeWord = emu.MergeHalf(existing, op.MemAddr, op.MemValue)
			case insts.OpSB:
				hit, existing := p.dcache.Access(alignedAddr, false, 0)
				if !hit {
					p.dcacheStall = p.dcache.Config().MissPenalty
					return
				}
				storeWord = emu.MergeByte(existing, op.MemAddr, op.MemValue)
			}

			hit, _ := p.dcache.Access(alignedAddr, true, storeWord)
			if !hit {
				p.dcacheStall = p.dcache.Config().MissPenalty
				return
			}
		} else {
			hit, loaded := p.dcache.Access(alignedAddr, false, 0)
			if !hit {
				p.dcacheStall = p.dcache.Config().MissPenalty
				return
			}
			word = loaded
		}
	}

	switch op.Decoded.Op {
	case insts.OpLW:
		op.RegDstValueReady = true
		op.RegDstValue = word
	case insts.OpLH:
		op.RegDstValueReady = true
		op.RegDstValue = emu.ExtractHalf(word, op.MemAddr, true)
	case insts.OpLHU:
		op.RegDstValueReady = true
		op.RegDstValue = emu.ExtractHalf(word, op.MemAddr, false)
	case insts.OpLB:
		op.RegDstValueReady = true
		op.RegDstValue = emu.ExtractByte(word, op.MemAddr, true)
	case insts.OpLBU:
		op.RegDstValueReady = true
		op.RegDstValue = emu.ExtractByte(word, op.MemAddr, false)
	}

	p.memOp = nil
	p.wbOp = op
}
