package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MaXin-noob/principles-of-Computer/isa"
)

func TestProgramFetch(t *testing.T) {
	assert := assert.New(t)

	prog := NewProgram([]isa.Word{0xe0a0, 0x1001, 0x0000})

	table := [](struct {
		pc   isa.Word
		word isa.Word
		ok   bool
	}){
		{PC_BASE, 0xe0a0, true},
		{PC_BASE + 2, 0x1001, true},
		{PC_BASE + 4, 0x0000, true},
		{PC_BASE + 6, 0, false},
		{PC_BASE + 1, 0, false},
		{PC_BASE - 2, 0, false},
		{0, 0, false},
	}

	for _, entry := range table {
		word, ok := prog.Fetch(entry.pc)
		assert.Equal(entry.ok, ok, "%04x", entry.pc)
		assert.Equal(entry.word, word, "%04x", entry.pc)
	}
}

func TestProgramCodes(t *testing.T) {
	assert := assert.New(t)

	words := []isa.Word{0xe0a0, 0x1001, 0x0000}
	prog := NewProgram(words)
	words[0] = 0xffff

	var pcs []isa.Word
	for pc, word := range prog.Codes() {
		pcs = append(pcs, pc)
		index, ok := prog.Index(pc)
		assert.True(ok)
		assert.Equal(prog.Words[index], word)
	}

	assert.Equal([]isa.Word{0x1000, 0x1002, 0x1004}, pcs)
	assert.Equal(isa.Word(0xe0a0), prog.Words[0])
}

func TestMemory(t *testing.T) {
	assert := assert.New(t)

	var mem Memory
	assert.Equal(DEFAULT_VALUE, mem.Read(0x10))
	assert.Equal(0, mem.Len())

	mem.Write(0x12, 0x34)
	mem.Write(0x10, 0x56)
	assert.Equal(isa.Word(0x34), mem.Read(0x12))
	assert.Equal(2, mem.Len())

	cells := mem.Clone()
	mem.Write(0x12, 0x99)
	assert.Equal(isa.Word(0x34), cells[0x12])

	mem.Reset()
	assert.Equal(0, mem.Len())
	assert.Equal(map[isa.Word]isa.Word{}, mem.Clone())
}

func TestRegisterFile(t *testing.T) {
	assert := assert.New(t)

	var regs RegisterFile
	regs.R[3] = 0x33
	regs.MAR = 0x44
	regs.Reset()
	assert.Equal(PC_BASE, regs.PC)
	assert.Equal(DEFAULT_VALUE, regs.R[3])
	assert.Equal(DEFAULT_VALUE, regs.MAR)

	for _, name := range registerNames {
		_, ok := regs.Register(name)
		assert.True(ok, name)
	}
	_, ok := regs.Register("XR")
	assert.False(ok)

	regs.IMDR = 0xabcd
	value, ok := regs.Register("imdr")
	assert.True(ok)
	assert.Equal(isa.Word(0xabcd), value)
}
