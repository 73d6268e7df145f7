package pipeline

import (
	"github.com/Eltaras202/mipspipe-sim/emu"
	"github.com/Eltaras202/mipspipe-sim/insts"
)

// stageExecute is the Execute stage: resolve each source register through
// the bypass network (forward from a still-in-flight result, or read the
// architectural register file), run the ALU/shift/multiply/divide/branch
// logic, and trigger branch recovery for anything resolved here.
//
// The multiplier/divider stall counter ticks down unconditionally, even if
// this stage is about to stall or return for lack of work, matching the
// reference controller's independent treatment of that latency.
func (p *Pipeline) stageExecute() {
	if p.multiplierStall > 0 {
		p.multiplierStall--
	}

	if p.memOp != nil {
		return
	}
	if p.executeOp == nil {
		return
	}

	op := p.executeOp

	stall := false
	if op.RegSrc1 != noReg {
		op.RegSrc1Value, stall = p.resolveSource(op.RegSrc1)
	}
	if op.RegSrc2 != noReg {
		var stall2 bool
		op.RegSrc2Value, stall2 = p.resolveSource(op.RegSrc2)
		stall = stall || stall2
	}
	if stall {
		return
	}

	if !p.executeALU(op) {
		// MFHI/MTHI/MFLO/MTLO waiting on the multiplier; leave op in place.
		return
	}

	if op.BranchTaken {
		p.recover(3, op.BranchDest)
	}

	p.executeOp = nil
	p.memOp = op
}

// resolveSource reads one source register, forwarding from the
// memory-input or write-back-input slot when either holds the value as its
// destination. By the time execute runs this tick, memory has already run
// (the controller sweeps write-back, memory, execute in that order), so a
// non-nil memory-input slot here means memory itself stalled on a cache
// miss this tick and its result is not ready; a populated write-back-input
// slot holds whatever memory just produced, already ready.
func (p *Pipeline) resolveSource(reg int) (value uint32, stall bool) {
	if reg == 0 {
		return 0, false
	}
	if p.memOp != nil && p.memOp.RegDst == reg {
		if !p.memOp.RegDstValueReady {
			return 0, true
		}
		return p.memOp.RegDstValue, false
	}
	if p.wbOp != nil && p.wbOp.RegDst == reg {
		return p.wbOp.RegDstValue, false
	}
	return p.regs.ReadReg(reg), false
}

// executeALU dispatches the decoded op's ALU/shift/multiply/divide/branch
// logic. It returns false only for MFHI/MTHI/MFLO/MTLO still waiting on an
// in-flight multiply/divide, signaling the caller to stall rather than
// advance the op downstream.
func (p *Pipeline) executeALU(op *Op) bool {
	inst := op.Decoded

	switch inst.Op {
	case insts.OpSLL:
		op.RegDstValueReady = true
		op.RegDstValue = emu.Sll(op.RegSrc2Value, op.Shamt)
	case insts.OpSLLV:
		op.RegDstValueReady = true
		op.RegDstValue = emu.Sll(op.RegSrc2Value, op.RegSrc1Value)
	case insts.OpSRL:
		op.RegDstValueReady = true
		op.RegDstValue = emu.Srl(op.RegSrc2Value, op.Shamt)
	case insts.OpSRLV:
		op.RegDstValueReady = true
		op.RegDstValue = emu.Srl(op.RegSrc2Value, op.RegSrc1Value)
	case insts.OpSRA:
		op.RegDstValueReady = true
		op.RegDstValue = emu.Sra(op.RegSrc2Value, op.Shamt)
	case insts.OpSRAV:
		op.RegDstValueReady = true
		op.RegDstValue = emu.Sra(op.RegSrc2Value, op.RegSrc1Value)

	case insts.OpJR, insts.OpJALR:
		op.RegDstValueReady = true
		op.RegDstValue = op.PC + 4
		op.BranchDest = op.RegSrc1Value
		op.BranchTaken = true

	case insts.OpMULT:
		r := emu.Mult(op.RegSrc1Value, op.RegSrc2Value)
		p.regs.HI, p.regs.LO = r.HI, r.LO
		p.multiplierStall = p.latency.MultStall
	case insts.OpMULTU:
		r := emu.Multu(op.RegSrc1Value, op.RegSrc2Value)
		p.regs.HI, p.regs.LO = r.HI, r.LO
		p.multiplierStall = p.latency.MultStall
	case insts.OpDIV:
		r := emu.Div(op.RegSrc1Value, op.RegSrc2Value)
		p.regs.HI, p.regs.LO = r.HI, r.LO
		p.multiplierStall = p.latency.DivStall
	case insts.OpDIVU:
		r := emu.Divu(op.RegSrc1Value, op.RegSrc2Value)
		p.regs.HI, p.regs.LO = r.HI, r.LO
		p.multiplierStall = p.latency.DivStall

	case insts.OpMFHI:
		if p.multiplierStall > 0 {
			return false
		}
		op.RegDstValueReady = true
		op.RegDstValue = p.regs.HI
	case insts.OpMTHI:
		if p.multiplierStall > 0 {
			return false
		}
		p.regs.HI = op.RegSrc1Value
	case insts.OpMFLO:
		if p.multiplierStall > 0 {
			return false
		}
		op.RegDstValueReady = true
		op.RegDstValue = p.regs.LO
	case insts.OpMTLO:
		if p.multiplierStall > 0 {
			return false
		}
		p.regs.LO = op.RegSrc1Value

	case insts.OpADD, insts.OpADDU:
		op.RegDstValueReady = true
		op.RegDstValue = emu.Add(op.RegSrc1Value, op.RegSrc2Value)
	case insts.OpSUB, insts.OpSUBU:
		op.RegDstValueReady = true
		op.RegDstValue = emu.Sub(op.RegSrc1Value, op.RegSrc2Value)
	case insts.OpAND:
		op.RegDstValueReady = true
		op.RegDstValue = emu.And(op.RegSrc1Value, op.RegSrc2Value)
	case insts.OpOR:
		op.RegDstValueReady = true
		op.RegDstValue = emu.Or(op.RegSrc1Value, op.RegSrc2Value)
	case insts.OpNOR:
		op.RegDstValueReady = true
		op.RegDstValue = emu.Nor(op.RegSrc1Value, op.RegSrc2Value)
	case insts.OpXOR:
		op.RegDstValueReady = true
		op.RegDstValue = emu.Xor(op.RegSrc1Value, op.RegSrc2Value)
	case insts.OpSLT:
		op.RegDstValueReady = true
		op.RegDstValue = emu.Slt(op.RegSrc1Value, op.RegSrc2Value)
	case insts.OpSLTU:
		op.RegDstValueReady = true
		op.RegDstValue = emu.Sltu(op.RegSrc1Value, op.RegSrc2Value)

	case insts.OpBLTZ, insts.OpBLTZAL:
		if emu.Bltz(op.RegSrc1Value) {
			op.BranchTaken = true
		}
	case insts.OpBGEZ, insts.OpBGEZAL:
		if emu.Bgez(op.RegSrc1Value) {
			op.BranchTaken = true
		}

	case insts.OpBEQ:
		if emu.Beq(op.RegSrc1Value, op.RegSrc2Value) {
			op.BranchTaken = true
		}
	case insts.OpBNE:
		if emu.Bne(op.RegSrc1Value, op.RegSrc2Value) {
			op.BranchTaken = true
		}
	case insts.OpBLEZ:
		if emu.Blez(op.RegSrc1Value) {
			op.BranchTaken = true
		}
	case insts.OpBGTZ:
		if emu.Bgtz(op.RegSrc1Value) {
			op.BranchTaken = true
		}

	case insts.OpADDI, insts.OpADDIU:
		op.RegDstValueReady = true
		op.RegDstValue = emu.AddImm(op.RegSrc1Value, op.SeImm16)
	case insts.OpSLTI:
		op.RegDstValueReady = true
		op.RegDstValue = emu.SltImm(op.RegSrc1Value, op.SeImm16)
	case insts.OpSLTIU:
		op.RegDstValueReady = true
		op.RegDstValue = emu.SltiuImm(op.RegSrc1Value, op.SeImm16)
	case insts.OpANDI:
		op.RegDstValueReady = true
		op.RegDstValue = emu.AndImm(op.RegSrc1Value, op.Imm16)
	case insts.OpORI:
		op.RegDstValueReady = true
		op.RegDstValue = emu.OrImm(op.RegSrc1Value, op.Imm16)
	case insts.OpXORI:
		op.RegDstValueReady = true
		op.RegDstValue = emu.XorImm(op.RegSrc1Value, op.Imm16)
	case insts.OpLUI:
		op.RegDstValueReady = true
		op.RegDstValue = emu.Lui(op.Imm16)

	case insts.OpLW, insts.OpLH, insts.OpLHU, insts.OpLB, insts.OpLBU:
		op.MemAddr = emu.AddImm(op.RegSrc1Value, op.SeImm16)

	case insts.OpSW, insts.OpSH, insts.OpSB:
		op.MemAddr = emu.AddImm(op.RegSrc1Value, op.SeImm16)
		op.MemValue = op.RegSrc2Value
	}

	return true
}
