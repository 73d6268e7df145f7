package insts

// Op identifies a decoded MIPS-subset mnemonic.
type Op uint8

// MIPS-subset mnemonics. Grouped by encoding family to match the primary
// opcode/funct/rt tables below.
const (
	OpUnknown Op = iota

	// SPECIAL (opcode 0x00), dispatched on funct.
	OpSLL
	OpSRL
	OpSRA
	OpSLLV
	OpSRLV
	OpSRAV
	OpJR
	OpJALR
	OpSYSCALL
	OpMFHI
	OpMTHI
	OpMFLO
	OpMTLO
	OpMULT
	OpMULTU
	OpDIV
	OpDIVU
	OpADD
	OpADDU
	OpSUB
	OpSUBU
	OpAND
	OpOR
	OpNOR
	OpXOR
	OpSLT
	OpSLTU

	// REGIMM (opcode 0x01), dispatched on rt.
	OpBLTZ
	OpBGEZ
	OpBLTZAL
	OpBGEZAL

	// Jump family.
	OpJ
	OpJAL

	// Branch family.
	OpBEQ
	OpBNE
	OpBLEZ
	OpBGTZ

	// Immediate ALU family.
	OpADDI
	OpADDIU
	OpSLTI
	OpSLTIU
	OpANDI
	OpORI
	OpXORI
	OpLUI

	// Load family.
	OpLB
	OpLH
	OpLW
	OpLBU
	OpLHU

	// Store family.
	OpSB
	OpSH
	OpSW
)

// Primary opcode field values (bits [31:26]).
const (
	opcodeSPECIAL = 0x00
	opcodeREGIMM  = 0x01
	opcodeJ       = 0x02
	opcodeJAL     = 0x03
	opcodeBEQ     = 0x04
	opcodeBNE     = 0x05
	opcodeBLEZ    = 0x06
	opcodeBGTZ    = 0x07
	opcodeADDI    = 0x08
	opcodeADDIU   = 0x09
	opcodeSLTI    = 0x0A
	opcodeSLTIU   = 0x0B
	opcodeANDI    = 0x0C
	opcodeORI     = 0x0D
	opcodeXORI    = 0x0E
	opcodeLUI     = 0x0F
	opcodeLB      = 0x20
	opcodeLH      = 0x21
	opcodeLW      = 0x23
	opcodeLBU     = 0x24
	opcodeLHU     = 0x25
	opcodeSB      = 0x28
	opcodeSH      = 0x29
	opcodeSW      = 0x2B
)

// SPECIAL funct field values (bits [5:0]).
const (
	functSLL     = 0x00
	functSRL     = 0x02
	functSRA     = 0x03
	functSLLV    = 0x04
	functSRLV    = 0x06
	functSRAV    = 0x07
	functJR      = 0x08
	functJALR    = 0x09
	functSYSCALL = 0x0C
	functMFHI    = 0x10
	functMTHI    = 0x11
	functMFLO    = 0x12
	functMTLO    = 0x13
	functMULT    = 0x18
	functMULTU   = 0x19
	functDIV     = 0x1A
	functDIVU    = 0x1B
	functADD     = 0x20
	functADDU    = 0x21
	functSUB     = 0x22
	functSUBU    = 0x23
	functAND     = 0x24
	functOR      = 0x25
	functXOR     = 0x26
	functNOR     = 0x27
	functSLT     = 0x2A
	functSLTU    = 0x2B
)

// REGIMM rt field values (bits [20:16]).
const (
	rtBLTZ   = 0x00
	rtBGEZ   = 0x01
	rtBLTZAL = 0x10
	rtBGEZAL = 0x11
)

// Instruction is the bitfield decomposition of one 32-bit MIPS-subset
// instruction word, plus the mnemonic it was classified as.
type Instruction struct {
	Raw uint32
	Op  Op

	Opcode uint8 // bits [31:26]
	Funct  uint8 // bits [5:0], meaningful only for Opcode==SPECIAL

	Rs int // bits [25:21]
	Rt int // bits [20:16]
	Rd int // bits [15:11]

	Shamt uint8 // bits [10:6]

	Imm16   uint16 // bits [15:0], zero-extended
	SeImm16 uint32 // bits [15:0], sign-extended to 32 bits

	// Target is the raw 26-bit jump target field (bits [25:0]), still
	// needing the <<2 shift and upper-4-bits-of-PC splice the decode
	// stage applies once it knows the instruction's own PC.
	Target uint32
}

// Decoder decodes MIPS-subset instruction words.
type Decoder struct{}

// NewDecoder creates a new MIPS-subset instruction decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode decodes a 32-bit MIPS-subset instruction word.
func (d *Decoder) Decode(word uint32) *Instruction {
	inst := &Instruction{
		Raw:    word,
		Opcode: uint8((word >> 26) & 0x3F),
		Rs:     int((word >> 21) & 0x1F),
		Rt:     int((word >> 16) & 0x1F),
		Rd:     int((word >> 11) & 0x1F),
		Shamt:  uint8((word >> 6) & 0x1F),
		Funct:  uint8(word & 0x3F),
		Imm16:  uint16(word & 0xFFFF),
		Target: word & 0x3FFFFFF,
	}

	imm16 := word & 0xFFFF
	if imm16&0x8000 != 0 {
		inst.SeImm16 = imm16 | 0xFFFF0000
	} else {
		inst.SeImm16 = imm16
	}

	switch inst.Opcode {
	case opcodeSPECIAL:
		inst.Op = decodeSpecial(inst.Funct)
	case opcodeREGIMM:
		inst.Op = decodeRegimm(uint8(inst.Rt))
	case opcodeJ:
		inst.Op = OpJ
	case opcodeJAL:
		inst.Op = OpJAL
	case opcodeBEQ:
		inst.Op = OpBEQ
	case opcodeBNE:
		inst.Op = OpBNE
	case opcodeBLEZ:
		inst.Op = OpBLEZ
	case opcodeBGTZ:
		inst.Op = OpBGTZ
	case opcodeADDI:
		inst.Op = OpADDI
	case opcodeADDIU:
		inst.Op = OpADDIU
	case opcodeSLTI:
		inst.Op = OpSLTI
	case opcodeSLTIU:
		inst.Op = OpSLTIU
	case opcodeANDI:
		inst.Op = OpANDI
	case opcodeORI:
		inst.Op = OpORI
	case opcodeXORI:
		inst.Op = OpXORI
	case opcodeLUI:
		inst.Op = OpLUI
	case opcodeLB:
		inst.Op = OpLB
	case opcodeLH:
		inst.Op = OpLH
	case opcodeLW:
		inst.Op = OpLW
	case opcodeLBU:
		inst.Op = OpLBU
	case opcodeLHU:
		inst.Op = OpLHU
	case opcodeSB:
		inst.Op = OpSB
	case opcodeSH:
		inst.Op = OpSH
	case opcodeSW:
		inst.Op = OpSW
	default:
		inst.Op = OpUnknown
	}

	return inst
}

func decodeSpecial(funct uint8) Op {
	switch funct {
	case functSLL:
		return OpSLL
	case functSRL:
		return OpSRL
	case functSRA:
		return OpSRA
	case functSLLV:
		return OpSLLV
	case functSRLV:
		return OpSRLV
	case functSRAV:
		return OpSRAV
	case functJR:
		return OpJR
	case functJALR:
		return OpJALR
	case functSYSCALL:
		return OpSYSCALL
	case functMFHI:
		return OpMFHI
	case functMTHI:
		return OpMTHI
	case functMFLO:
		return OpMFLO
	case functMTLO:
		return OpMTLO
	case functMULT:
		return OpMULT
	case functMULTU:
		return OpMULTU
	case functDIV:
		return OpDIV
	case functDIVU:
		return OpDIVU
	case functADD:
		return OpADD
	case functADDU:
		return OpADDU
	case functSUB:
		return OpSUB
	case functSUBU:
		return OpSUBU
	case functAND:
		return OpAND
	case functOR:
		return OpOR
	case functXOR:
		return OpXOR
	case functNOR:
		return OpNOR
	case functSLT:
		return OpSLT
	case functSLTU:
		return OpSLTU
	default:
		return OpUnknown
	}
}

func decodeRegimm(rt uint8) Op {
	switch rt {
	case rtBLTZ:
		return OpBLTZ
	case rtBGEZ:
		return OpBGEZ
	case rtBLTZAL:
		return OpBLTZAL
	case rtBGEZAL:
		return OpBGEZAL
	default:
		return OpUnknown
	}
}
