package io

import (
	"iter"
)

// ReceiveAsWord returns an iterator that packs bits into words of the
// requested width, MSB first. Each word is yielded with the number of bits
// it received; only a trailing partial word has fewer than width bits.
func ReceiveAsWord(bits iter.Seq[bool], width int) iter.Seq2[uint32, int] {
	return func(yield func(value uint32, count int) bool) {
		var n int
		var value uint32
		for bit := range bits {
			value <<= 1
			if bit {
				value |= 1
			}
			n++
			if n == width {
				if !yield(value, n) {
					return
				}
				value = 0
				n = 0
			}
		}
		if n != 0 {
			yield(value, n)
		}
	}
}
