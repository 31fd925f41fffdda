package cpu

import (
	"errors"

	"github.com/MaXin-noob/principles-of-Computer/isa"
	"github.com/MaXin-noob/principles-of-Computer/microcode"
	"github.com/MaXin-noob/principles-of-Computer/translate"
)

var f = translate.From

var (
	ErrProgramExhausted = errors.New(f("program exhausted"))
	ErrMicroLoop        = errors.New(f("micro-sequence did not terminate"))
)

// ErrMicroAddress is a control store address that has no micro-order.
type ErrMicroAddress microcode.Address

func (err ErrMicroAddress) Error() string {
	return f("micro-order %v missing", microcode.Address(err))
}

// ErrInstruction identifies the instruction word that failed to run.
type ErrInstruction isa.Word

func (err ErrInstruction) Error() string {
	return f("instruction 0x%04x (%v)", uint16(err), isa.Word(err).String())
}

func (err ErrInstruction) Is(target error) (ok bool) {
	_, ok = target.(ErrInstruction)
	return
}
