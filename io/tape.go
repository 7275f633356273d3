package io

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// Tape provides line oriented console I/O.
// It wraps an io.Reader for input and io.Writer for output.
type Tape struct {
	Input  io.Reader
	Output io.Writer

	reader *bufio.Reader
}

var _ Host = (*Tape)(nil)

// Rewind drops any buffered input. Call it after replacing Input.
func (tc *Tape) Rewind() {
	tc.reader = nil
}

// ReadLine returns the next line from the input, with any trailing
// "\n" or "\r\n" removed. A final line without a terminator is returned
// as-is; once the input is exhausted ErrInputEmpty is returned.
func (tc *Tape) ReadLine() (line string, err error) {
	if tc.Input == nil {
		err = ErrInputEmpty
		return
	}

	if tc.reader == nil {
		tc.reader = bufio.NewReader(tc.Input)
	}

	line, err = tc.reader.ReadString('\n')
	if errors.Is(err, io.EOF) {
		if len(line) == 0 {
			err = ErrInputEmpty
			return
		}
		err = nil
	}
	if err != nil {
		return
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	return
}

// Emit writes the text to the output, unbuffered.
func (tc *Tape) Emit(text string, newline bool) (err error) {
	if tc.Output == nil {
		err = ErrOutputEmpty
		return
	}

	if newline {
		text += "\n"
	}

	_, err = io.WriteString(tc.Output, text)
	return
}
