// Package insts provides MIPS-subset instruction definitions and decoding.
//
// It decodes the 32-bit instruction word into its raw bitfields (opcode,
// register numbers, shift amount, immediate, jump target) and classifies
// the word with a mnemonic constant. It does not interpret the instruction
// (branch/memory/ALU semantics live in the pipeline decode and execute
// stages); it only exposes what the fixed MIPS encoding says is there.
//
// Usage:
//
//	d := insts.NewDecoder()
//	inst := d.Decode(0x20080005) // ADDI $t0, $zero, 5
//	fmt.Printf("Op: %v, Rt: %d, Imm16: %#x\n", inst.Op, inst.Rt, inst.Imm16)
package insts
