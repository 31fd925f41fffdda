package isa

import (
	"fmt"
	"strings"
)

// Word is a single 16-bit instruction or data word.
type Word uint16

// Opcode is the top four bits of an instruction word.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_NOP = Opcode(0x0) // NOP
	OP_ADD = Opcode(0x1) // ADD
	OP_SUB = Opcode(0x2) // SUB
	OP_AND = Opcode(0x4) // AND
	OP_JMP = Opcode(0x7) // JMP
	OP_JC  = Opcode(0x8) // JC
	OP_LD  = Opcode(0x9) // LD
	OP_MOV = Opcode(0xa) // MOV
	OP_INC = Opcode(0xb) // INC
	OP_DEC = Opcode(0xd) // DEC
	OP_LDI = Opcode(0xe) // LDI
)

// Class is the field layout family of an opcode.
type Class int

//go:generate go tool stringer -linecomment -type=Class
const (
	CLASS_INVALID   = Class(0) // invalid
	CLASS_NONE      = Class(1) // none
	CLASS_DUAL      = Class(2) // dual
	CLASS_MOVE      = Class(3) // move
	CLASS_SINGLE    = Class(4) // single
	CLASS_LOAD      = Class(5) // load
	CLASS_IMMEDIATE = Class(6) // immediate
)

var opcodeClass = map[Opcode]Class{
	OP_NOP: CLASS_NONE,
	OP_ADD: CLASS_DUAL,
	OP_SUB: CLASS_DUAL,
	OP_AND: CLASS_DUAL,
	OP_JMP: CLASS_SINGLE,
	OP_JC:  CLASS_SINGLE,
	OP_LD:  CLASS_LOAD,
	OP_MOV: CLASS_MOVE,
	OP_INC: CLASS_SINGLE,
	OP_DEC: CLASS_SINGLE,
	OP_LDI: CLASS_IMMEDIATE,
}

// Class returns the layout class of the opcode, or CLASS_INVALID.
func (op Opcode) Class() Class {
	return opcodeClass[op]
}

// Mode is a set of addressing-mode flags for one operand.
type Mode uint8

const (
	MODE_DIRECT   = Mode(0)      // Rn
	MODE_INDIRECT = Mode(1 << 0) // (Rn)
	MODE_AUTOINC  = Mode(1 << 1) // (Rn)+
	MODE_DEFERRED = Mode(1 << 2) // @(Rn)
	MODE_INDEXED  = Mode(1 << 3) // [Rn]
)

// Memory reports whether the operand refers to a memory cell.
func (m Mode) Memory() bool {
	return m != MODE_DIRECT
}

// String returns the operand syntax of the mode, using 'n' as the register.
func (m Mode) String() string {
	return Operand{Mode: m}.format("Rn")
}

// slot is a contiguous run of bits in an instruction word.
type slot struct {
	Shift uint
	Width uint
}

func (s slot) mask() Word {
	return Word((1<<s.Width)-1) << s.Shift
}

func (s slot) get(w Word) uint16 {
	return uint16((w & s.mask()) >> s.Shift)
}

func (s slot) put(w Word, value uint16) Word {
	return (w &^ s.mask()) | ((Word(value) << s.Shift) & s.mask())
}

// layout is the field placement of a class.
type layout struct {
	Dst      slot
	Src      slot
	Imm      slot
	DstModes map[Mode]uint // Mode flag to bit position.
	SrcModes map[Mode]uint
}

var classLayout = map[Class]layout{
	CLASS_NONE: {},
	CLASS_DUAL: {
		Dst:      slot{Shift: 4, Width: 3},
		Src:      slot{Shift: 0, Width: 3},
		DstModes: map[Mode]uint{MODE_INDIRECT: 7},
		SrcModes: map[Mode]uint{MODE_INDIRECT: 3},
	},
	CLASS_MOVE: {
		Dst:      slot{Shift: 0, Width: 3},
		Src:      slot{Shift: 6, Width: 3},
		DstModes: map[Mode]uint{MODE_INDIRECT: 3},
		SrcModes: map[Mode]uint{MODE_INDIRECT: 9},
	},
	CLASS_SINGLE: {
		Dst: slot{Shift: 0, Width: 3},
		DstModes: map[Mode]uint{
			MODE_INDIRECT: 3,
			MODE_AUTOINC:  4,
			MODE_DEFERRED: 5,
			MODE_INDEXED:  6,
		},
	},
	CLASS_LOAD: {
		Dst: slot{Shift: 0, Width: 3},
	},
	CLASS_IMMEDIATE: {
		Dst: slot{Shift: 0, Width: 3},
		Imm: slot{Shift: 4, Width: 8},
	},
}

func modeBits(slots map[Mode]uint, mode Mode) (bits Word, ok bool) {
	for flag := MODE_INDIRECT; flag <= MODE_INDEXED; flag <<= 1 {
		if mode&flag == 0 {
			continue
		}
		pos, has := slots[flag]
		if !has {
			return
		}
		bits |= 1 << pos
	}

	ok = true
	return
}

func modeOf(slots map[Mode]uint, w Word) (mode Mode) {
	for flag, pos := range slots {
		if w&(1<<pos) != 0 {
			mode |= flag
		}
	}
	return
}

// Operand is a decoded register operand with its addressing mode.
type Operand struct {
	Reg  uint8
	Mode Mode
}

func (op Operand) format(reg string) (text string) {
	text = reg
	switch {
	case op.Mode&MODE_INDEXED != 0:
		text = "[" + text + "]"
	case op.Mode&MODE_AUTOINC != 0:
		text = "(" + text + ")+"
	case op.Mode&MODE_INDIRECT != 0:
		text = "(" + text + ")"
	}
	if op.Mode&MODE_DEFERRED != 0 {
		text = "@" + text
	}
	return
}

// String returns the assembly syntax of the operand.
func (op Operand) String() string {
	return op.format(fmt.Sprintf("R%d", op.Reg))
}

// Opcode returns the opcode field.
func (w Word) Opcode() Opcode {
	return Opcode((w >> 12) & 0xf)
}

// Class returns the layout class of the word's opcode.
func (w Word) Class() Class {
	return w.Opcode().Class()
}

// Dst decodes the destination operand.
func (w Word) Dst() (op Operand) {
	lay := classLayout[w.Class()]
	op.Reg = uint8(lay.Dst.get(w))
	op.Mode = modeOf(lay.DstModes, w)
	return
}

// Src decodes the source operand.
func (w Word) Src() (op Operand) {
	lay := classLayout[w.Class()]
	op.Reg = uint8(lay.Src.get(w))
	op.Mode = modeOf(lay.SrcModes, w)
	return
}

// Immediate decodes the 8-bit immediate of an immediate-load word.
func (w Word) Immediate() uint8 {
	return uint8(classLayout[w.Class()].Imm.get(w))
}

// Form returns the opcode and addressing modes of the word.
func (w Word) Form() Form {
	return Form{Op: w.Opcode(), Dst: w.Dst().Mode, Src: w.Src().Mode}
}

// Bits returns the word as four space separated nibbles of binary.
func (w Word) Bits() string {
	text := fmt.Sprintf("%016b", uint16(w))
	return strings.Join([]string{text[0:4], text[4:8], text[8:12], text[12:16]}, " ")
}

// String disassembles the word.
func (w Word) String() (text string) {
	op := w.Opcode()
	switch w.Class() {
	case CLASS_NONE:
		text = op.String()
	case CLASS_DUAL, CLASS_MOVE:
		text = fmt.Sprintf("%v %v, %v", op, w.Dst(), w.Src())
	case CLASS_SINGLE, CLASS_LOAD:
		text = fmt.Sprintf("%v %v", op, w.Dst())
	case CLASS_IMMEDIATE:
		text = fmt.Sprintf("%v %v, %02X", op, w.Dst(), w.Immediate())
	default:
		text = fmt.Sprintf("??? 0x%04x", uint16(w))
	}
	return
}
