package cpu

import (
	"fmt"
	"strings"

	"github.com/MaXin-noob/principles-of-Computer/isa"
)

const (
	PC_BASE       = isa.Word(4096) // Address of the first program word.
	WORD_SIZE     = isa.Word(2)    // Bytes per word; PC and autoinc step.
	DEFAULT_VALUE = isa.Word(0)    // Value of reset registers and unwritten memory.
	REGISTERS     = 8              // General purpose registers R0-R7.
)

// RegisterFile is the architectural and internal register state.
type RegisterFile struct {
	R    [REGISTERS]isa.Word // General purpose registers.
	PC   isa.Word            // Program counter.
	BUS  isa.Word            // Last value driven on the internal bus.
	SR   isa.Word            // Source operand latch.
	DR   isa.Word            // Destination operand latch.
	MAR  isa.Word            // Data memory address register.
	MDR  isa.Word            // Data memory data register.
	IMAR isa.Word            // Instruction memory address register.
	IMDR isa.Word            // Instruction memory data register.
	IR   isa.Word            // Instruction register.

	Carry bool // Set by ADD overflow and SUB borrow.
}

// registerNames lists the named registers, in dump order.
var registerNames = []string{
	"R0", "R1", "R2", "R3", "R4", "R5", "R6", "R7",
	"PC", "BUS", "SR", "DR", "MAR", "MDR", "IMAR", "IMDR", "IR",
}

// Reset restores every register to its power-on value.
func (regs *RegisterFile) Reset() {
	*regs = RegisterFile{}
	for _, name := range registerNames {
		*regs.pointer(name) = DEFAULT_VALUE
	}
	regs.PC = PC_BASE
}

// pointer returns the storage of a named register.
func (regs *RegisterFile) pointer(name string) (reg *isa.Word) {
	switch strings.ToUpper(name) {
	case "PC":
		reg = &regs.PC
	case "BUS":
		reg = &regs.BUS
	case "SR":
		reg = &regs.SR
	case "DR":
		reg = &regs.DR
	case "MAR":
		reg = &regs.MAR
	case "MDR":
		reg = &regs.MDR
	case "IMAR":
		reg = &regs.IMAR
	case "IMDR":
		reg = &regs.IMDR
	case "IR":
		reg = &regs.IR
	default:
		index, err := isa.ParseRegister(name)
		if err == nil {
			reg = &regs.R[index]
		}
	}
	return
}

// Register returns the value of a register by name, such as "R3" or "MAR".
func (regs RegisterFile) Register(name string) (value isa.Word, ok bool) {
	reg := regs.pointer(name)
	if reg == nil {
		return
	}

	value = *reg
	ok = true
	return
}

// String returns a register dump, one register per line.
func (regs RegisterFile) String() (text string) {
	for _, name := range registerNames {
		value, _ := regs.Register(name)
		text += fmt.Sprintf("% 5s: %04X\n", name, uint16(value))
	}

	carry := "0"
	if regs.Carry {
		carry = "1"
	}
	text += fmt.Sprintf("% 5s: %v\n", "C", carry)

	return
}
