package pipeline

import "github.com/Eltaras202/mipspipe-sim/insts"

// noReg is the sentinel used for "this op has no such register", matching
// pipe.c's reg_src1/reg_src2/reg_dst == -1 convention.
const noReg = -1

// Op is the single mutable instruction record that moves through the
// pipeline's four named slots (decode-input, execute-input, memory-input,
// write-back-input) by pointer. A stage owns the Op exclusively while it
// sits in that stage's input slot; moving it downstream is a pointer
// assignment plus clearing the upstream slot, never a copy.
type Op struct {
	PC          uint32
	Instruction uint32
	Decoded     *insts.Instruction

	Opcode uint8
	Subop  uint8
	Imm16  uint32
	SeImm16 uint32
	Shamt   uint32

	RegSrc1, RegSrc2 int
	RegSrc1Value     uint32
	RegSrc2Value     uint32

	RegDst           int
	RegDstValue      uint32
	RegDstValueReady bool

	IsMem     bool
	MemAddr   uint32
	MemWrite  bool
	MemValue  uint32

	IsBranch     bool
	BranchCond   bool
	BranchTaken  bool
	BranchDest   uint32
}

// newOp creates an Op with the same zero-value conventions pipe.c's fetch
// stage establishes: no source/dest registers until decode fills them in.
func newOp(pc, instruction uint32) *Op {
	return &Op{
		PC:          pc,
		Instruction: instruction,
		RegSrc1:     noReg,
		RegSrc2:     noReg,
		RegDst:      noReg,
	}
}
