package cpu

import (
	"fmt"
	"io"
	"strings"

	bitio "github.com/ezrec/bitvm/io"
)

// Program is an ordered list of instruction words.
type Program struct {
	Codes []Code
}

// LoadProgram reads a program text. Only '0' and '1' characters are
// significant; they are taken in order, 24 to a word.
// A trailing word with fewer than 24 bits is rejected with ErrWordShort.
func LoadProgram(r io.Reader) (prog *Program, err error) {
	text, err := io.ReadAll(r)
	if err != nil {
		return
	}

	rom := &bitio.Rom{Text: text}

	prog = &Program{}
	for word, count := range bitio.ReceiveAsWord(rom.Receive(), CODE_BITS) {
		if count != CODE_BITS {
			err = ErrSyntax{Word: len(prog.Codes), Bits: count, Err: ErrWordShort}
			prog = nil
			return
		}
		prog.Codes = append(prog.Codes, Code(word))
	}

	return
}

// Debug returns the disassembly of the instruction at pc, or the empty
// string if pc is outside the program.
func (prog *Program) Debug(pc int) (text string) {
	if pc < 0 || pc >= len(prog.Codes) {
		return
	}

	return prog.Codes[pc].String()
}

// Binary returns the program as text, one word per line.
func (prog *Program) Binary() string {
	var sb strings.Builder
	for _, code := range prog.Codes {
		fmt.Fprintf(&sb, "%024b\n", uint32(code))
	}

	return sb.String()
}

// Listing returns a disassembly of the whole program.
func (prog *Program) Listing() string {
	var sb strings.Builder
	for pc, code := range prog.Codes {
		fmt.Fprintf(&sb, "%03d: %024b  %v\n", pc, uint32(code), code)
	}

	return sb.String()
}
