package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabels_Lookup(t *testing.T) {
	assert := assert.New(t)

	l := &Labels{}
	assert.Equal(0, l.Len())
	assert.Equal(42, l.Lookup(1, 42))

	l.Record(1, 7)
	assert.Equal(7, l.Lookup(1, 42))
	assert.Equal(42, l.Lookup(2, 42))
	assert.Equal(1, l.Len())
}

func TestLabels_Record_Overwrite(t *testing.T) {
	assert := assert.New(t)

	l := &Labels{}
	l.Record(0xff, 1)
	l.Record(0xff, 9)
	assert.Equal(9, l.Lookup(0xff, -1))
	assert.Equal(1, l.Len())
}

func TestLabels_Reset(t *testing.T) {
	assert := assert.New(t)

	l := &Labels{}
	l.Reset()
	assert.Equal(0, l.Len())

	l.Record(1, 1)
	l.Record(2, 2)
	l.Reset()
	assert.Equal(0, l.Len())
	assert.Equal(-1, l.Lookup(1, -1))
}

func TestLabels_Prescan(t *testing.T) {
	assert := assert.New(t)

	l := &Labels{}
	l.Prescan([]Code{
		MakeCode(OP_LABEL, 0, 0, 1),
		MakeCode(OP_NOP, 0, 0, 2),
		MakeCode(OP_LABEL, 0, 0, 2),
		MakeCode(OP_LABEL, 0, 0, 1),
	})

	assert.Equal(2, l.Len())
	assert.Equal(3, l.Lookup(1, -1))
	assert.Equal(2, l.Lookup(2, -1))
}
