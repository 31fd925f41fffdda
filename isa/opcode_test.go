package isa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWordFields(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		word Word
		op   Opcode
		dst  Operand
		src  Operand
		imm  uint8
		text string
	}){
		{0x0000, OP_NOP, Operand{}, Operand{}, 0, "NOP"},
		{0xe0a0, OP_LDI, Operand{Reg: 0}, Operand{}, 0x0a, "LDI R0, 0A"},
		{0xeff7, OP_LDI, Operand{Reg: 7}, Operand{}, 0xff, "LDI R7, FF"},
		{0x1001, OP_ADD, Operand{Reg: 0}, Operand{Reg: 1}, 0, "ADD R0, R1"},
		{0x10ab, OP_ADD, Operand{Reg: 2, Mode: MODE_INDIRECT}, Operand{Reg: 3, Mode: MODE_INDIRECT}, 0, "ADD (R2), (R3)"},
		{0xa081, OP_MOV, Operand{Reg: 1}, Operand{Reg: 2}, 0, "MOV R1, R2"},
		{0xa281, OP_MOV, Operand{Reg: 1}, Operand{Reg: 2, Mode: MODE_INDIRECT}, 0, "MOV R1, (R2)"},
		{0xb01b, OP_INC, Operand{Reg: 3, Mode: MODE_INDIRECT | MODE_AUTOINC}, Operand{}, 0, "INC (R3)+"},
		{0xb02b, OP_INC, Operand{Reg: 3, Mode: MODE_DEFERRED | MODE_INDIRECT}, Operand{}, 0, "INC @(R3)"},
		{0xb043, OP_INC, Operand{Reg: 3, Mode: MODE_INDEXED}, Operand{}, 0, "INC [R3]"},
		{0x900d, OP_LD, Operand{Reg: 5}, Operand{}, 0, "LD R5"},
		{0x3000, Opcode(3), Operand{}, Operand{}, 0, "??? 0x3000"},
	}

	for _, entry := range table {
		assert.Equal(entry.op, entry.word.Opcode(), entry.text)
		assert.Equal(entry.dst, entry.word.Dst(), entry.text)
		assert.Equal(entry.src, entry.word.Src(), entry.text)
		assert.Equal(entry.imm, entry.word.Immediate(), entry.text)
		assert.Equal(entry.text, entry.word.String())
	}
}

func TestWordBits(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("1110 0000 1010 0000", Word(0xe0a0).Bits())
	assert.Equal("0000 0000 0000 0000", Word(0).Bits())
}

func TestOpcodeString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("JC", OP_JC.String())
	assert.Equal("LDI", OP_LDI.String())
	assert.Equal("Opcode(12)", Opcode(12).String())
	assert.Equal("single", OP_INC.Class().String())
	assert.Equal(CLASS_INVALID, Opcode(0xf).Class())
}

func TestModeString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("Rn", MODE_DIRECT.String())
	assert.Equal("(Rn)", MODE_INDIRECT.String())
	assert.Equal("(Rn)+", (MODE_INDIRECT | MODE_AUTOINC).String())
	assert.Equal("@(Rn)+", (MODE_DEFERRED | MODE_INDIRECT | MODE_AUTOINC).String())
	assert.Equal("[Rn]", MODE_INDEXED.String())
	assert.False(MODE_DIRECT.Memory())
	assert.True(MODE_INDEXED.Memory())
}

func TestForms(t *testing.T) {
	assert := assert.New(t)

	assert.True(Supports(Form{Op: OP_ADD, Dst: MODE_INDIRECT, Src: MODE_DIRECT}))
	assert.True(Supports(Form{Op: OP_INC, Dst: MODE_INDEXED}))
	assert.False(Supports(Form{Op: OP_ADD, Dst: MODE_INDEXED}))
	assert.False(Supports(Form{Op: OP_LDI, Dst: MODE_INDIRECT}))
	assert.False(Supports(Form{Op: Opcode(3)}))

	count := 0
	for form := range Forms() {
		count++
		assert.NotEqual(CLASS_INVALID, form.Op.Class(), form.String())
	}
	// NOP, LD, LDI: 1 each; ADD, SUB, AND, MOV: 4 each; INC, DEC: 6 each; JMP, JC: 2 each.
	assert.Equal(3+16+12+4, count)
}
