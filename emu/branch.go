package emu

// The functions below evaluate the MIPS conditional-branch family (BEQ, BNE, BLEZ,
// BGTZ, BLTZ, BGEZ, BLTZAL, BGEZAL). rs and rt are the raw register contents
// involved in the comparison; rt is ignored by the single-operand forms.

// Beq reports whether rs == rt (BEQ).
func Beq(rs, rt uint32) bool { return rs == rt }

// Bne reports whether rs != rt (BNE).
func Bne(rs, rt uint32) bool { return rs != rt }

// Blez reports whether rs <= 0, signed (BLEZ).
func Blez(rs uint32) bool { return int32(rs) <= 0 }

// Bgtz reports whether rs > 0, signed (BGTZ).
func Bgtz(rs uint32) bool { return int32(rs) > 0 }

// Bltz reports whether rs < 0, signed (BLTZ and BLTZAL share this test; the
// AL variant additionally links R31, which the decode/execute stages handle
// since it is a register-file side effect, not a condition).
func Bltz(rs uint32) bool { return int32(rs) < 0 }

// Bgez reports whether rs >= 0, signed (BGEZ and BGEZAL share this test).
func Bgez(rs uint32) bool { return int32(rs) >= 0 }
