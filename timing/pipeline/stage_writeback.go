package pipeline

import (
	"github.com/Eltaras202/mipspipe-sim/emu"
	"github.com/Eltaras202/mipspipe-sim/insts"
)

// stageWriteback is the Write-Back stage: commit the op's result to the
// register file and, for a SYSCALL with $v0==10, halt the simulator. It
// runs first in the per-tick sweep so the ordinary (non-bypassed) register
// read in execute already observes this tick's newest commit.
func (p *Pipeline) stageWriteback() {
	if p.wbOp == nil {
		return
	}

	op := p.wbOp
	p.wbOp = nil

	if op.RegDst != noReg && op.RegDst != 0 {
		p.regs.WriteReg(op.RegDst, op.RegDstValue)
	}

	if op.Decoded.Op == insts.OpSYSCALL {
		if result := emu.HandleSyscall(op.RegSrc1Value); result.Halt {
			p.PC = op.PC
			p.halted = true
		}
	}

	p.stat.InstructionsRetired++
}
