// Package io provides the host side of the bitvm machine: the line based
// console used by read and print, and the bit source used to load program
// text.
package io

// Host defines the interface between the machine and its console.
// The machine requests one line per read instruction, and emits text
// without any buffering or framing of its own.
type Host interface {
	// ReadLine returns the next line of input, without its terminator.
	ReadLine() (line string, err error)
	// Emit writes text to the output, optionally followed by a newline.
	Emit(text string, newline bool) error
}
