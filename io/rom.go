package io

import (
	"iter"
)

// Rom is a read-only program text.
type Rom struct {
	Text []byte
}

// Receive returns an iterator that yields one bit for every '0' or '1'
// in the text. All other characters are ignored.
func (rc *Rom) Receive() iter.Seq[bool] {
	return func(yield func(value bool) bool) {
		for _, ch := range rc.Text {
			switch ch {
			case '0':
				if !yield(false) {
					return
				}
			case '1':
				if !yield(true) {
					return
				}
			}
		}
	}
}
