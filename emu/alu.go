package emu

// The functions below implement the MIPS integer arithmetic, logical, shift and compare
// operations used by the execute stage. Every function is a pure
// transformation on its operands; register file and HI/LO state changes for
// MULT/DIV live on the execute stage itself (they interact with the
// multiplier-stall counter, which is pipeline timing state, not ALU state).

// Add computes rs+rt with unsigned wraparound (ADD and ADDU behave
// identically in this model; overflow is not trapped).
func Add(rs, rt uint32) uint32 { return rs + rt }

// Sub computes rs-rt with unsigned wraparound (SUB and SUBU behave
// identically in this model).
func Sub(rs, rt uint32) uint32 { return rs - rt }

// And computes the bitwise AND of rs and rt.
func And(rs, rt uint32) uint32 { return rs & rt }

// Or computes the bitwise OR of rs and rt.
func Or(rs, rt uint32) uint32 { return rs | rt }

// Nor computes the bitwise NOR of rs and rt.
func Nor(rs, rt uint32) uint32 { return ^(rs | rt) }

// Xor computes the bitwise XOR of rs and rt.
func Xor(rs, rt uint32) uint32 { return rs ^ rt }

// Slt computes the signed set-less-than: 1 if rs < rt, else 0.
func Slt(rs, rt uint32) uint32 {
	if int32(rs) < int32(rt) {
		return 1
	}
	return 0
}

// Sltu computes the unsigned set-less-than: 1 if rs < rt, else 0.
func Sltu(rs, rt uint32) uint32 {
	if rs < rt {
		return 1
	}
	return 0
}

// Sll performs a logical left shift by shamt (0-31).
func Sll(rt, shamt uint32) uint32 { return rt << (shamt & 0x1F) }

// Srl performs a logical right shift by shamt (0-31).
func Srl(rt, shamt uint32) uint32 { return rt >> (shamt & 0x1F) }

// Sra performs an arithmetic (sign-extending) right shift by shamt (0-31).
func Sra(rt, shamt uint32) uint32 { return uint32(int32(rt) >> (shamt & 0x1F)) }

// AddImm computes rs+seImm16, a sign-extended-immediate add (ADDI/ADDIU).
func AddImm(rs, seImm16 uint32) uint32 { return rs + seImm16 }

// SltImm computes the signed set-less-than-immediate (SLTI).
func SltImm(rs, seImm16 uint32) uint32 {
	if int32(rs) < int32(seImm16) {
		return 1
	}
	return 0
}

// SltiuImm computes the unsigned set-less-than-immediate (SLTIU). The
// immediate is sign-extended before the unsigned compare, matching pipe.c's
// (uint32_t)se_imm16 cast.
func SltiuImm(rs, seImm16 uint32) uint32 {
	if rs < seImm16 {
		return 1
	}
	return 0
}

// AndImm computes rs AND the zero-extended immediate (ANDI).
func AndImm(rs, imm16 uint32) uint32 { return rs & imm16 }

// OrImm computes rs OR the zero-extended immediate (ORI).
func OrImm(rs, imm16 uint32) uint32 { return rs | imm16 }

// XorImm computes rs XOR the zero-extended immediate (XORI).
func XorImm(rs, imm16 uint32) uint32 { return rs ^ imm16 }

// Lui places the 16-bit immediate into the upper half of a word (LUI).
func Lui(imm16 uint32) uint32 { return imm16 << 16 }

// MultResult holds the 64-bit product of a MULT/MULTU split into halves.
type MultResult struct {
	HI, LO uint32
}

// Mult computes the signed 64-bit product of rs and rt.
func Mult(rs, rt uint32) MultResult {
	v := uint64(int64(int32(rs)) * int64(int32(rt)))
	return MultResult{HI: uint32(v >> 32), LO: uint32(v)}
}

// Multu computes the unsigned 64-bit product of rs and rt.
func Multu(rs, rt uint32) MultResult {
	v := uint64(rs) * uint64(rt)
	return MultResult{HI: uint32(v >> 32), LO: uint32(v)}
}

// DivResult holds the quotient (LO) and remainder (HI) of a DIV/DIVU.
type DivResult struct {
	HI, LO uint32
}

// Div computes the signed quotient/remainder of rs/rt. Division by zero
// yields HI=LO=0 rather than trapping.
func Div(rs, rt uint32) DivResult {
	if rt == 0 {
		return DivResult{}
	}
	a, b := int32(rs), int32(rt)
	return DivResult{HI: uint32(a % b), LO: uint32(a / b)}
}

// Divu computes the unsigned quotient/remainder of rs/rt. Division by zero
// yields HI=LO=0 rather than trapping.
func Divu(rs, rt uint32) DivResult {
	if rt == 0 {
		return DivResult{}
	}
	return DivResult{HI: rs % rt, LO: rs / rt}
}
