package gray

import (
	"errors"

	"github.com/ezrec/griter/translate"
)

var f = translate.From

var (
	// Construction errors
	ErrInvalidAlphabet = errors.New(f("alphabet invalid"))
	ErrInvalidCode     = errors.New(f("code invalid"))
)

// ErrAlphabet reports the symbols of a rejected alphabet.
type ErrAlphabet string

func (err ErrAlphabet) Error() string {
	return f("alphabet %q must be two distinct symbols", string(err))
}

func (err ErrAlphabet) Unwrap() error {
	return ErrInvalidAlphabet
}

// ErrSymbol reports a code symbol outside of the alphabet.
type ErrSymbol struct {
	Index  int
	Symbol rune
}

func (err ErrSymbol) Error() string {
	return f("symbol %q at index %d not in alphabet", err.Symbol, err.Index)
}

func (err ErrSymbol) Unwrap() error {
	return ErrInvalidCode
}
