package isa

import (
	"fmt"
	"iter"
	"slices"
)

// Form is one supported (opcode, addressing mode) combination.
type Form struct {
	Op  Opcode
	Dst Mode
	Src Mode
}

func (form Form) String() string {
	return fmt.Sprintf("%v %v, %v", form.Op, form.Dst, form.Src)
}

var (
	directOnly   = []Mode{MODE_DIRECT}
	directOrOnce = []Mode{MODE_DIRECT, MODE_INDIRECT}
	singleModes  = []Mode{
		MODE_DIRECT,
		MODE_INDIRECT,
		MODE_INDIRECT | MODE_AUTOINC,
		MODE_DEFERRED | MODE_INDIRECT,
		MODE_DEFERRED | MODE_INDIRECT | MODE_AUTOINC,
		MODE_INDEXED,
	}
)

// opcodeModes lists the addressing modes each opcode accepts.
var opcodeModes = []struct {
	Op  Opcode
	Dst []Mode
	Src []Mode
}{
	{OP_NOP, directOnly, directOnly},
	{OP_ADD, directOrOnce, directOrOnce},
	{OP_SUB, directOrOnce, directOrOnce},
	{OP_AND, directOrOnce, directOrOnce},
	{OP_JMP, directOrOnce, directOnly},
	{OP_JC, directOrOnce, directOnly},
	{OP_LD, directOnly, directOnly},
	{OP_MOV, directOrOnce, directOrOnce},
	{OP_INC, singleModes, directOnly},
	{OP_DEC, singleModes, directOnly},
	{OP_LDI, directOnly, directOnly},
}

var forms []Form

func init() {
	for _, entry := range opcodeModes {
		for _, dst := range entry.Dst {
			for _, src := range entry.Src {
				forms = append(forms, Form{Op: entry.Op, Dst: dst, Src: src})
			}
		}
	}
}

// Forms iterates over every form the encoder can produce.
func Forms() iter.Seq[Form] {
	return slices.Values(forms)
}

// Supports returns true if the form is part of the instruction set.
func Supports(form Form) bool {
	return slices.Contains(forms, form)
}
