// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
)

const (
	CODE_BITS = 24 // Bits in an instruction word.

	REG_COUNT   = 16  // Number of general purpose registers.
	MEMORY_SIZE = 256 // Bytes of memory.

	REG_LENGTH  = 2  // Register receiving the length of a string read.
	REG_POINTER = 15 // Pointer register for read and ldri.
)

// CodeOp is an opcode.
type CodeOp int

//go:generate go tool stringer -linecomment -type=CodeOp
const (
	OP_NOP   = CodeOp(0)  // nop
	OP_LD    = CodeOp(1)  // ld
	OP_ST    = CodeOp(2)  // st
	OP_ADD   = CodeOp(3)  // add
	OP_MOV   = CodeOp(4)  // mov
	OP_LDRI  = CodeOp(5)  // ldri
	OP_LABEL = CodeOp(6)  // label
	OP_AND   = CodeOp(7)  // and
	OP_OR    = CodeOp(8)  // or
	OP_INC   = CodeOp(9)  // inc
	OP_DEC   = CodeOp(10) // dec
	OP_PRINT = CodeOp(11) // print
	OP_LDI   = CodeOp(12) // ldi
	OP_STI   = CodeOp(13) // sti
	OP_LOOP  = CodeOp(14) // loop
	OP_READ  = CodeOp(15) // read
)

// Valid returns true if the opcode has an operation assigned.
func (op CodeOp) Valid() bool {
	return op >= OP_NOP && op <= OP_READ
}

// CodeCond is a loop condition code.
type CodeCond int

//go:generate go tool stringer -linecomment -type=CodeCond
const (
	COND_ZERO     = CodeCond(0) // zero
	COND_NEGATIVE = CodeCond(1) // negative
	COND_POSITIVE = CodeCond(2) // positive
)

// PRINT_DECIMAL in the r2 field selects decimal output for print.
const PRINT_DECIMAL = 1

// Code is a single 24-bit instruction word.
//
// The first bit of the program text is the most significant bit:
//
//	23..20  opcode
//	19..16  r1
//	15..12  r2
//	11..8   padding
//	 7..0   imm8
//
// Memory addressing opcodes read r1 and r2 together as one 8-bit address.
type Code uint32

// MakeCode creates an instruction from its register fields.
func MakeCode(op CodeOp, r1, r2 int, imm8 uint8) Code {
	return Code(((uint32(op) & 0xf) << 20) |
		((uint32(r1) & 0xf) << 16) |
		((uint32(r2) & 0xf) << 12) |
		uint32(imm8))
}

// MakeCodeAddress creates a memory addressing instruction.
func MakeCodeAddress(op CodeOp, address uint8, imm8 uint8) Code {
	return MakeCode(op, int(address>>4), int(address&0xf), imm8)
}

// MakeCodeLoop creates a conditional jump to a label.
func MakeCodeLoop(cond CodeCond, reg int, label uint8) Code {
	return MakeCode(OP_LOOP, int(cond), reg, label)
}

// Op returns the opcode.
func (code Code) Op() CodeOp {
	return CodeOp((uint32(code) >> 20) & 0xf)
}

// R1 returns the first register field.
func (code Code) R1() int {
	return int((uint32(code) >> 16) & 0xf)
}

// R2 returns the second register field.
func (code Code) R2() int {
	return int((uint32(code) >> 12) & 0xf)
}

// Pad returns the unused padding field.
func (code Code) Pad() int {
	return int((uint32(code) >> 8) & 0xf)
}

// Imm8 returns the 8-bit immediate.
func (code Code) Imm8() uint8 {
	return uint8(code)
}

// Address returns the r1 and r2 fields as a single memory address.
func (code Code) Address() uint8 {
	return uint8(uint32(code) >> 12)
}

// Cond returns the r1 field as a loop condition.
func (code Code) Cond() CodeCond {
	return CodeCond(code.R1())
}

// String returns the assembly language representation of this instruction.
func (code Code) String() (out string) {
	op := code.Op()

	switch op {
	case OP_NOP:
		out = op.String()
	case OP_MOV, OP_ADD, OP_AND, OP_OR:
		out = fmt.Sprintf("%v r%d r%d", op, code.R1(), code.R2())
	case OP_LDRI:
		out = fmt.Sprintf("%v r%d [r%d]", op, code.R1(), REG_POINTER)
	case OP_INC, OP_DEC:
		out = fmt.Sprintf("%v r%d", op, code.R1())
	case OP_LD:
		out = fmt.Sprintf("%v r%d [0x%02x]", op, code.R1(), code.Address())
	case OP_ST:
		out = fmt.Sprintf("%v [0x%02x] r%d", op, code.Address(), code.R1())
	case OP_STI:
		out = fmt.Sprintf("%v [0x%02x] 0x%02x", op, code.Address(), code.Imm8())
	case OP_LDI:
		out = fmt.Sprintf("%v r%d 0x%02x", op, code.R1(), code.Imm8())
	case OP_PRINT:
		mode := "char"
		if code.R2() == PRINT_DECIMAL {
			mode = "dec"
		}
		out = fmt.Sprintf("%v r%d %v", op, code.R1(), mode)
	case OP_LABEL:
		out = fmt.Sprintf("%v @%d", op, code.Imm8())
	case OP_LOOP:
		out = fmt.Sprintf("%v %v r%d @%d", op, code.Cond(), code.R2(), code.Imm8())
	case OP_READ:
		out = fmt.Sprintf("%v [r%d]", op, REG_POINTER)
	default:
		out = fmt.Sprintf("??? 0x%06x", uint32(code))
	}

	return
}
