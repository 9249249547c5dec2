package rom

import (
	"errors"

	"github.com/agatti/disholtek/translate"
)

var f = translate.From

var (
	// Image load errors
	ErrNotAFile  = errors.New(f("not a file"))
	ErrNoCode    = errors.New(f("does not contain any code"))
	ErrUnaligned = errors.New(f("not word-aligned"))
	ErrTooBig    = errors.New(f("too big to fit in the MCU code memory"))
)

// ErrImage reports a code image that could not be loaded.
type ErrImage struct {
	Path string
	Err  error
}

func (err *ErrImage) Error() string {
	return f("%v %v", err.Path, err.Err)
}

func (err *ErrImage) Unwrap() error {
	return err.Err
}
