package cpu

import (
	"iter"
	"slices"

	"github.com/MaXin-noob/principles-of-Computer/isa"
)

// Program is the instruction memory image, loaded at PC_BASE.
type Program struct {
	Words []isa.Word
}

// NewProgram copies 'words' into a program image.
func NewProgram(words []isa.Word) (prog *Program) {
	prog = &Program{
		Words: slices.Clone(words),
	}

	return
}

// Index converts a program counter to a word index.
func (prog *Program) Index(pc isa.Word) (index int, ok bool) {
	if pc < PC_BASE || (pc-PC_BASE)%WORD_SIZE != 0 {
		return
	}

	index = int((pc - PC_BASE) / WORD_SIZE)
	ok = index < len(prog.Words)
	return
}

// Fetch returns the instruction word at 'pc'.
func (prog *Program) Fetch(pc isa.Word) (word isa.Word, ok bool) {
	index, ok := prog.Index(pc)
	if !ok {
		return
	}

	word = prog.Words[index]
	return
}

// Codes iterates the program as (pc, word) pairs.
func (prog *Program) Codes() iter.Seq2[isa.Word, isa.Word] {
	return func(yield func(pc isa.Word, word isa.Word) bool) {
		for n, word := range prog.Words {
			if !yield(PC_BASE+isa.Word(n)*WORD_SIZE, word) {
				return
			}
		}
	}
}
