package insts_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Eltaras202/mipspipe-sim/insts"
)

var _ = Describe("Decoder", func() {
	var decoder *insts.Decoder

	BeforeEach(func() {
		decoder = insts.NewDecoder()
	})

	Describe("SPECIAL family", func() {
		// ADD $t2, $t0, $t1 -> rs=8, rt=9, rd=10, funct=0x20
		It("should decode ADD $t2, $t0, $t1", func() {
			inst := decoder.Decode(0x01095020)

			Expect(inst.Op).To(Equal(insts.OpADD))
			Expect(inst.Rs).To(Equal(8))
			Expect(inst.Rt).To(Equal(9))
			Expect(inst.Rd).To(Equal(10))
		})

		// SLL $t0, $t1, 4 -> rt=9, rd=8, shamt=4, funct=0x00
		It("should decode SLL $t0, $t1, 4", func() {
			inst := decoder.Decode(0x00094100)

			Expect(inst.Op).To(Equal(insts.OpSLL))
			Expect(inst.Rt).To(Equal(9))
			Expect(inst.Rd).To(Equal(8))
			Expect(inst.Shamt).To(Equal(uint8(4)))
		})

		// JR $ra -> rs=31, funct=0x08
		It("should decode JR $ra", func() {
			inst := decoder.Decode(0x03E00008)

			Expect(inst.Op).To(Equal(insts.OpJR))
			Expect(inst.Rs).To(Equal(31))
		})

		// SYSCALL -> funct=0x0C
		It("should decode SYSCALL", func() {
			inst := decoder.Decode(0x0000000C)

			Expect(inst.Op).To(Equal(insts.OpSYSCALL))
		})

		// MULT $t0, $t1 -> rs=8, rt=9, funct=0x18
		It("should decode MULT $t0, $t1", func() {
			inst := decoder.Decode(0x01090018)

			Expect(inst.Op).To(Equal(insts.OpMULT))
			Expect(inst.Rs).To(Equal(8))
			Expect(inst.Rt).To(Equal(9))
		})

		// MFLO $t2 -> rd=10, funct=0x12
		It("should decode MFLO $t2", func() {
			inst := decoder.Decode(0x00005012)

			Expect(inst.Op).To(Equal(insts.OpMFLO))
			Expect(inst.Rd).To(Equal(10))
		})

		// An unrecognized funct decodes as OpUnknown rather than panicking.
		It("should decode an unassigned funct as OpUnknown", func() {
			inst := decoder.Decode(0x0000003F)

			Expect(inst.Op).To(Equal(insts.OpUnknown))
		})
	})

	Describe("REGIMM family", func() {
		// BLTZ $t0, 4 -> opcode=1, rs=8, rt=0
		It("should decode BLTZ $t0, 4", func() {
			inst := decoder.Decode(0x05000004)

			Expect(inst.Op).To(Equal(insts.OpBLTZ))
			Expect(inst.Rs).To(Equal(8))
		})

		// BGEZAL $t0, 4 -> opcode=1, rs=8, rt=0x11
		It("should decode BGEZAL $t0, 4", func() {
			inst := decoder.Decode(0x05110004)

			Expect(inst.Op).To(Equal(insts.OpBGEZAL))
			Expect(inst.Rs).To(Equal(8))
		})
	})

	Describe("Jump family", func() {
		// J 0x100 -> opcode=2, target=0x40
		It("should decode J and expose the raw target field", func() {
			inst := decoder.Decode(0x08000040)

			Expect(inst.Op).To(Equal(insts.OpJ))
			Expect(inst.Target).To(Equal(uint32(0x40)))
		})

		// JAL 0x100 -> opcode=3, target=0x40
		It("should decode JAL", func() {
			inst := decoder.Decode(0x0C000040)

			Expect(inst.Op).To(Equal(insts.OpJAL))
			Expect(inst.Target).To(Equal(uint32(0x40)))
		})
	})

	Describe("Branch family", func() {
		// BEQ $t0, $t1, -1 -> opcode=4, rs=8, rt=9, imm16=0xFFFF
		It("should decode BEQ with a negative offset, sign-extended", func() {
			inst := decoder.Decode(0x1109FFFF)

			Expect(inst.Op).To(Equal(insts.OpBEQ))
			Expect(inst.Rs).To(Equal(8))
			Expect(inst.Rt).To(Equal(9))
			Expect(inst.SeImm16).To(Equal(uint32(0xFFFFFFFF)))
		})

		// BNE $t0, $zero, 5 -> opcode=5, rs=8, rt=0, imm16=5
		It("should decode BNE with a positive offset", func() {
			inst := decoder.Decode(0x15000005)

			Expect(inst.Op).To(Equal(insts.OpBNE))
			Expect(inst.SeImm16).To(Equal(uint32(5)))
		})
	})

	Describe("Immediate ALU family", func() {
		// ADDIU $t0, $zero, 5 -> opcode=9, rs=0, rt=8, imm16=5
		It("should decode ADDIU with a zero-extended positive immediate", func() {
			inst := decoder.Decode(0x24080005)

			Expect(inst.Op).To(Equal(insts.OpADDIU))
			Expect(inst.Rt).To(Equal(8))
			Expect(inst.Imm16).To(Equal(uint16(5)))
			Expect(inst.SeImm16).To(Equal(uint32(5)))
		})

		// ADDIU $t0, $zero, -1 -> imm16=0xFFFF, sign-extends to 0xFFFFFFFF
		It("should sign-extend a negative immediate", func() {
			inst := decoder.Decode(0x2408FFFF)

			Expect(inst.Op).To(Equal(insts.OpADDIU))
			Expect(inst.Imm16).To(Equal(uint16(0xFFFF)))
			Expect(inst.SeImm16).To(Equal(uint32(0xFFFFFFFF)))
		})

		// ANDI $t0, $t1, 0xFF -> opcode=0xC, zero-extended immediate
		It("should zero-extend ANDI's immediate regardless of sign bit", func() {
			inst := decoder.Decode(0x312800FF)

			Expect(inst.Op).To(Equal(insts.OpANDI))
			Expect(inst.Imm16).To(Equal(uint16(0xFF)))
		})

		// LUI $t0, 0x1234 -> opcode=0xF, rt=8, imm16=0x1234
		It("should decode LUI", func() {
			inst := decoder.Decode(0x3C081234)

			Expect(inst.Op).To(Equal(insts.OpLUI))
			Expect(inst.Rt).To(Equal(8))
			Expect(inst.Imm16).To(Equal(uint16(0x1234)))
		})
	})

	Describe("Load/Store family", func() {
		// LW $t0, 4($a0) -> opcode=0x23, rs=4, rt=8, imm16=4
		It("should decode LW", func() {
			inst := decoder.Decode(0x8C880004)

			Expect(inst.Op).To(Equal(insts.OpLW))
			Expect(inst.Rs).To(Equal(4))
			Expect(inst.Rt).To(Equal(8))
			Expect(inst.SeImm16).To(Equal(uint32(4)))
		})

		// LB $t0, 0($a0) -> opcode=0x20
		It("should decode LB", func() {
			inst := decoder.Decode(0x80880000)

			Expect(inst.Op).To(Equal(insts.OpLB))
		})

		// LHU $t0, 0($a0) -> opcode=0x25
		It("should decode LHU", func() {
			inst := decoder.Decode(0x94880000)

			Expect(inst.Op).To(Equal(insts.OpLHU))
		})

		// SW $t0, 4($a0) -> opcode=0x2B
		It("should decode SW", func() {
			inst := decoder.Decode(0xAC880004)

			Expect(inst.Op).To(Equal(insts.OpSW))
			Expect(inst.Rs).To(Equal(4))
			Expect(inst.Rt).To(Equal(8))
		})

		// SH $t0, 2($a0) -> opcode=0x29
		It("should decode SH", func() {
			inst := decoder.Decode(0xA4880002)

			Expect(inst.Op).To(Equal(insts.OpSH))
		})
	})

	Describe("unrecognized opcodes", func() {
		It("should decode a reserved opcode as OpUnknown", func() {
			inst := decoder.Decode(0x7C000000)

			Expect(inst.Op).To(Equal(insts.OpUnknown))
		})
	})
})
