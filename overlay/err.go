package overlay

import (
	"github.com/agatti/disholtek/translate"
)

var f = translate.From

// ErrSymbolTable names a script global that is not an address dict.
type ErrSymbolTable string

func (err ErrSymbolTable) Error() string {
	return f("%v is not a symbol dict", string(err))
}

// ErrSymbolAddress names a dict key that is not an address in range.
type ErrSymbolAddress string

func (err ErrSymbolAddress) Error() string {
	return f("%v is not an address in range", string(err))
}

// ErrSymbolName names a dict value that is not a usable symbol name.
type ErrSymbolName string

func (err ErrSymbolName) Error() string {
	return f("%v is not a symbol name", string(err))
}

// ErrScript reports a symbol script that could not be used.
type ErrScript struct {
	Path string
	Err  error
}

func (err *ErrScript) Error() string {
	return f("%v %v", err.Path, err.Err)
}

func (err *ErrScript) Unwrap() error {
	return err.Err
}
