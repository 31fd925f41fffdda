package microcode

import (
	"errors"

	"github.com/MaXin-noob/principles-of-Computer/isa"
	"github.com/MaXin-noob/principles-of-Computer/translate"
)

var f = translate.From

var (
	ErrUnimplementedOpcode = errors.New(f("unimplemented opcode"))
)

// ErrUnimplemented reports an instruction word with no control store mapping.
type ErrUnimplemented isa.Word

func (err ErrUnimplemented) Error() string {
	word := isa.Word(err)
	return f("no micro-program for 0x%04x (%v %v, %v)", uint16(word), word.Opcode(), word.Dst().Mode, word.Src().Mode)
}

func (err ErrUnimplemented) Is(target error) (ok bool) {
	if target == ErrUnimplementedOpcode {
		return true
	}
	_, ok = target.(ErrUnimplemented)
	return
}
