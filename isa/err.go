package isa

import (
	"errors"

	"github.com/MaXin-noob/principles-of-Computer/translate"
)

var f = translate.From

var (
	// Encoding errors
	ErrMnemonicUnknown  = errors.New(f("mnemonic unknown"))
	ErrRegisterInvalid  = errors.New(f("register invalid"))
	ErrOperandInvalid   = errors.New(f("operand invalid"))
	ErrModeInvalid      = errors.New(f("addressing mode invalid"))
	ErrImmediateInvalid = errors.New(f("immediate invalid"))
	ErrImmediateRange   = errors.New(f("immediate exceeds 8 bits"))
	ErrOpcodeExtraArgs  = errors.New(f("excessive arguments"))
)

// ErrEncoding reports a tokenized line that could not be encoded.
type ErrEncoding struct {
	Index    int    // Index of the line in the encoded sequence.
	Mnemonic string // Mnemonic as given.
	Err      error
}

func (err *ErrEncoding) Error() string {
	return f("instruction %d '%v' %v", err.Index, err.Mnemonic, err.Err)
}

func (err *ErrEncoding) Unwrap() error {
	return err.Err
}

func (err *ErrEncoding) Is(target error) (ok bool) {
	_, ok = target.(*ErrEncoding)
	return
}
