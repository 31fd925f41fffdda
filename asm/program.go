package asm

import (
	"fmt"
	"strings"

	"github.com/MaXin-noob/principles-of-Computer/cpu"
	"github.com/MaXin-noob/principles-of-Computer/isa"
)

// Statement is one assembled source line.
type Statement struct {
	LineNo int      // Source line number.
	PC     isa.Word // Address of the word once loaded.
	Text   string   // Source text, comment removed.
	Line   isa.Line // Tokenized line passed to the encoder.
	Word   isa.Word // Encoded instruction.
}

// Program is an assembled program.
type Program struct {
	Statements []Statement
}

// Words returns the encoded instruction words, in load order.
func (prog *Program) Words() (words []isa.Word) {
	words = make([]isa.Word, 0, len(prog.Statements))
	for _, stmt := range prog.Statements {
		words = append(words, stmt.Word)
	}

	return
}

// Debug returns the statement loaded at 'pc', or nil.
func (prog *Program) Debug(pc isa.Word) (stmt *Statement) {
	for n := range prog.Statements {
		if prog.Statements[n].PC == pc {
			stmt = &prog.Statements[n]
			break
		}
	}

	return
}

// Listing returns the program as an assembler listing.
func (prog *Program) Listing() string {
	var sb strings.Builder
	for _, stmt := range prog.Statements {
		fmt.Fprintf(&sb, "%04X: %04X  %v  %4d  %v\n",
			uint16(stmt.PC), uint16(stmt.Word), stmt.Word.Bits(), stmt.LineNo, stmt.Text)
	}

	return sb.String()
}

// pcOf is the load address of the n'th statement.
func pcOf(n int) isa.Word {
	return cpu.PC_BASE + isa.Word(n)*cpu.WORD_SIZE
}
