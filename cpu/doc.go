// Package cpu implements the processor of the bitvm system.
//
// The CPU consists of a program counter, sixteen 8-bit registers (r0-r15),
// 256 bytes of memory, and a label table. Instructions are fixed 24-bit
// words holding a 4-bit opcode, two 4-bit register fields, and an 8-bit
// immediate. Memory addressing opcodes treat the two register fields as
// a single 8-bit address.
//
// Labels are recorded as they execute; a conditional loop to a label that
// has not yet been recorded jumps to itself.
package cpu
