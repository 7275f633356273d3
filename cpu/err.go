package cpu

import (
	"errors"

	"github.com/ezrec/bitvm/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrPcEmpty       = errors.New(f("pc empty"))
	ErrOpcodeUnknown = errors.New(f("unknown opcode"))
	ErrOpcodeRead    = errors.New(f("read"))

	// Program load errors
	ErrWordShort = errors.New(f("instruction word short"))
)

// ErrOpcode wraps an error raised while executing a specific instruction.
type ErrOpcode Code

func (eo ErrOpcode) Error() string {
	return f("bad opcode 0x%06x %v", uint32(eo), Code(eo).String())
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

// ErrSyntax reports a malformed instruction word in the program text.
type ErrSyntax struct {
	Word int // Index of the word in the program.
	Bits int // Number of bits found for the word.
	Err  error
}

func (err ErrSyntax) Error() string {
	return f("word %d has %d bits: %v", err.Word, err.Bits, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
