package pipeline

import "github.com/Eltaras202/mipspipe-sim/insts"

// stageDecode is the Decode stage: split the instruction word into its
// register/immediate/branch-target fields and classify it. Register reads
// are deferred to execute, where they are resolved together with the
// bypass network.
func (p *Pipeline) stageDecode() {
	if p.executeOp != nil {
		return
	}
	if p.decodeOp == nil {
		return
	}

	op := p.decodeOp
	p.decodeOp = nil

	inst := p.decoder.Decode(op.Instruction)
	op.Decoded = inst
	op.Opcode = inst.Opcode
	op.Subop = inst.Funct
	op.Imm16 = uint32(inst.Imm16)
	op.SeImm16 = inst.SeImm16
	op.Shamt = uint32(inst.Shamt)

	switch inst.Op {
	case insts.OpSYSCALL:
		op.RegSrc1 = 2 // v0
		op.RegSrc2 = 3 // v1

	case insts.OpJR, insts.OpJALR:
		op.RegSrc1 = inst.Rs
		op.RegSrc2 = inst.Rt
		op.RegDst = inst.Rd
		op.IsBranch = true
		op.BranchCond = false

	case insts.OpSLL, insts.OpSRL, insts.OpSRA, insts.OpSLLV, insts.OpSRLV, insts.OpSRAV,
		insts.OpMFHI, insts.OpMTHI, insts.OpMFLO, insts.OpMTLO,
		insts.OpMULT, insts.OpMULTU, insts.OpDIV, insts.OpDIVU,
		insts.OpADD, insts.OpADDU, insts.OpSUB, insts.OpSUBU,
		insts.OpAND, insts.OpOR, insts.OpNOR, insts.OpXOR, insts.OpSLT, insts.OpSLTU:
		op.RegSrc1 = inst.Rs
		op.RegSrc2 = inst.Rt
		op.RegDst = inst.Rd

	case insts.OpBLTZ, insts.OpBGEZ, insts.OpBLTZAL, insts.OpBGEZAL:
		op.IsBranch = true
		op.RegSrc1 = inst.Rs
		op.RegSrc2 = inst.Rt
		op.BranchCond = true
		op.BranchDest = op.PC + 4 + (inst.SeImm16 << 2)
		op.Subop = uint8(inst.Rt)
		if inst.Op == insts.OpBLTZAL || inst.Op == insts.OpBGEZAL {
			op.RegDst = 31
			op.RegDstValue = op.PC + 4
			op.RegDstValueReady = true
		}

	case insts.OpJAL:
		op.RegDst = 31
		op.RegDstValue = op.PC + 4
		op.RegDstValueReady = true
		op.BranchTaken = true
		fallthrough
	case insts.OpJ:
		op.IsBranch = true
		op.BranchCond = false
		op.BranchTaken = true
		op.BranchDest = (op.PC & 0xF0000000) | (inst.Target << 2)

	case insts.OpBEQ, insts.OpBNE, insts.OpBLEZ, insts.OpBGTZ:
		op.IsBranch = true
		op.BranchCond = true
		op.BranchDest = op.PC + 4 + (inst.SeImm16 << 2)
		op.RegSrc1 = inst.Rs
		op.RegSrc2 = inst.Rt

	case insts.OpADDI, insts.OpADDIU, insts.OpSLTI, insts.OpSLTIU,
		insts.OpANDI, insts.OpORI, insts.OpXORI, insts.OpLUI:
		op.RegSrc1 = inst.Rs
		op.RegDst = inst.Rt

	case insts.OpLW, insts.OpLH, insts.OpLHU, insts.OpLB, insts.OpLBU:
		op.IsMem = true
		op.RegSrc1 = inst.Rs
		op.MemWrite = false
		op.RegDst = inst.Rt

	case insts.OpSW, insts.OpSH, insts.OpSB:
		op.IsMem = true
		op.RegSrc1 = inst.Rs
		op.MemWrite = true
		op.RegSrc2 = inst.Rt
	}

	p.executeOp = op
}
