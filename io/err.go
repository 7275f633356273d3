package io

import (
	"errors"

	"github.com/ezrec/bitvm/translate"
)

var f = translate.From

var (
	// Host errors
	ErrInputEmpty  = errors.New(f("input empty"))
	ErrOutputEmpty = errors.New(f("no output attached"))
)
