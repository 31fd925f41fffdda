package microcode

import (
	"fmt"

	"github.com/MaXin-noob/principles-of-Computer/isa"
)

const (
	ind = isa.MODE_INDIRECT
	inc = isa.MODE_AUTOINC
	def = isa.MODE_DEFERRED
	idx = isa.MODE_INDEXED
)

// pla maps each instruction form to the start of its micro-sequence.
// Adding an instruction variant is an edit to this table.
var pla = map[isa.Form]Address{
	{Op: isa.OP_NOP}: 0o010,
	{Op: isa.OP_LDI}: 0o020,
	{Op: isa.OP_LD}:  0o030,

	{Op: isa.OP_MOV}:                     0o040,
	{Op: isa.OP_MOV, Src: ind}:           0o043,
	{Op: isa.OP_MOV, Dst: ind}:           0o046,
	{Op: isa.OP_MOV, Dst: ind, Src: ind}: 0o052,

	{Op: isa.OP_ADD}:                     0o100,
	{Op: isa.OP_ADD, Src: ind}:           0o104,
	{Op: isa.OP_ADD, Dst: ind}:           0o113,
	{Op: isa.OP_ADD, Dst: ind, Src: ind}: 0o117,

	{Op: isa.OP_SUB}:                     0o200,
	{Op: isa.OP_SUB, Src: ind}:           0o204,
	{Op: isa.OP_SUB, Dst: ind}:           0o213,
	{Op: isa.OP_SUB, Dst: ind, Src: ind}: 0o217,

	{Op: isa.OP_AND}:                     0o300,
	{Op: isa.OP_AND, Src: ind}:           0o304,
	{Op: isa.OP_AND, Dst: ind}:           0o313,
	{Op: isa.OP_AND, Dst: ind, Src: ind}: 0o317,

	{Op: isa.OP_INC}:                       0o400,
	{Op: isa.OP_INC, Dst: ind}:             0o403,
	{Op: isa.OP_INC, Dst: ind | inc}:       0o411,
	{Op: isa.OP_INC, Dst: def | ind}:       0o420,
	{Op: isa.OP_INC, Dst: def | ind | inc}: 0o423,
	{Op: isa.OP_INC, Dst: idx}:             0o426,

	{Op: isa.OP_DEC}:                       0o500,
	{Op: isa.OP_DEC, Dst: ind}:             0o503,
	{Op: isa.OP_DEC, Dst: ind | inc}:       0o511,
	{Op: isa.OP_DEC, Dst: def | ind}:       0o520,
	{Op: isa.OP_DEC, Dst: def | ind | inc}: 0o523,
	{Op: isa.OP_DEC, Dst: idx}:             0o526,

	{Op: isa.OP_JMP}:           0o600,
	{Op: isa.OP_JMP, Dst: ind}: 0o601,
	{Op: isa.OP_JC}:            0o610,
	{Op: isa.OP_JC, Dst: ind}:  0o611,
}

func init() {
	for form, addr := range pla {
		if _, ok := store[addr]; !ok {
			panic(fmt.Sprintf("pla: %v maps to missing address %v", form, addr))
		}
	}
}

// Decode returns the control store address where the instruction specific
// micro-sequence for 'word' begins.
func Decode(word isa.Word) (addr Address, err error) {
	addr, ok := pla[word.Form()]
	if !ok {
		err = ErrUnimplemented(word)
		return
	}

	return
}
