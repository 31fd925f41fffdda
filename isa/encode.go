package isa

import (
	"errors"
	"strconv"
	"strings"
)

// Line is one tokenized assembly line: a mnemonic and up to two operands.
type Line struct {
	Mnemonic string
	Operands []string
}

// String returns the line in canonical assembly syntax.
func (line Line) String() string {
	if len(line.Operands) == 0 {
		return line.Mnemonic
	}
	return line.Mnemonic + " " + strings.Join(line.Operands, ", ")
}

// ParseRegister parses a register name, R0 to R7.
func ParseRegister(text string) (reg uint8, err error) {
	text = strings.ToUpper(strings.TrimSpace(text))
	if len(text) != 2 || text[0] != 'R' || text[1] < '0' || text[1] > '7' {
		err = ErrRegisterInvalid
		return
	}

	reg = text[1] - '0'
	return
}

// ParseOperand parses an operand and its addressing markers:
// Rn, (Rn), (Rn)+, @(Rn), @(Rn)+ and [Rn].
func ParseOperand(text string) (op Operand, err error) {
	word := strings.ToUpper(strings.TrimSpace(text))

	if strings.HasPrefix(word, "@") {
		op.Mode |= MODE_DEFERRED
		word = word[1:]
	}

	switch {
	case strings.HasPrefix(word, "(") && strings.HasSuffix(word, ")+"):
		op.Mode |= MODE_INDIRECT | MODE_AUTOINC
		word = word[1 : len(word)-2]
	case strings.HasPrefix(word, "(") && strings.HasSuffix(word, ")"):
		op.Mode |= MODE_INDIRECT
		word = word[1 : len(word)-1]
	case strings.HasPrefix(word, "[") && strings.HasSuffix(word, "]"):
		op.Mode |= MODE_INDEXED
		word = word[1 : len(word)-1]
	}

	op.Reg, err = ParseRegister(word)
	if err != nil && strings.ContainsAny(text, "()[]@+") {
		err = errors.Join(ErrOperandInvalid, err)
	}

	return
}

// ParseImmediate parses a hexadecimal byte, with or without a 0x prefix.
func ParseImmediate(text string) (value uint8, err error) {
	word := strings.ToUpper(strings.TrimSpace(text))
	word = strings.TrimPrefix(word, "0X")
	if len(word) == 0 {
		err = ErrImmediateInvalid
		return
	}

	v64, err := strconv.ParseUint(word, 16, 64)
	switch {
	case errors.Is(err, strconv.ErrRange):
		err = ErrImmediateRange
		return
	case err != nil:
		err = ErrImmediateInvalid
		return
	case v64 > 0xff:
		err = ErrImmediateRange
		return
	}

	value = uint8(v64)
	return
}

// putOperand places a register operand into its slot and sets its mode bits.
func putOperand(word Word, s slot, modes map[Mode]uint, text string) (out Word, mode Mode, err error) {
	op, err := ParseOperand(text)
	if err != nil {
		return
	}

	bits, ok := modeBits(modes, op.Mode)
	if !ok {
		err = ErrModeInvalid
		return
	}

	mode = op.Mode
	out = s.put(word, uint16(op.Reg)) | bits
	return
}

// Encode turns one tokenized line into an instruction word.
//
// Missing trailing operands leave their slots zero, so a bare mnemonic
// yields its template with every placeholder cleared.
func Encode(line Line) (word Word, err error) {
	mnemonic := strings.ToUpper(strings.TrimSpace(line.Mnemonic))

	defer func() {
		if err != nil {
			word = 0
			err = &ErrEncoding{Mnemonic: line.Mnemonic, Err: err}
		}
	}()

	entry, ok := Lookup(mnemonic)
	if !ok {
		err = ErrMnemonicUnknown
		return
	}

	lay := entry.layout
	need := 0
	if lay.Dst.Width != 0 {
		need++
	}
	if lay.Src.Width != 0 || lay.Imm.Width != 0 {
		need++
	}
	if len(line.Operands) > need {
		err = ErrOpcodeExtraArgs
		return
	}

	word = entry.Fixed
	form := Form{Op: entry.Opcode}

	if len(line.Operands) > 0 {
		word, form.Dst, err = putOperand(word, lay.Dst, lay.DstModes, line.Operands[0])
		if err != nil {
			return
		}
	}

	if len(line.Operands) > 1 {
		if lay.Imm.Width != 0 {
			var imm uint8
			imm, err = ParseImmediate(line.Operands[1])
			if err != nil {
				return
			}
			word = lay.Imm.put(word, uint16(imm))
		} else {
			word, form.Src, err = putOperand(word, lay.Src, lay.SrcModes, line.Operands[1])
			if err != nil {
				return
			}
		}
	}

	if !Supports(form) {
		err = ErrModeInvalid
		return
	}

	return
}

// EncodeAll encodes a sequence of lines, one word per line. It stops at the
// first line that fails; the error's Index identifies that line.
func EncodeAll(lines []Line) (words []Word, err error) {
	words = make([]Word, 0, len(lines))
	for n, line := range lines {
		var word Word
		word, err = Encode(line)
		if err != nil {
			var enc *ErrEncoding
			if errors.As(err, &enc) {
				enc.Index = n
			}
			words = nil
			return
		}
		words = append(words, word)
	}

	return
}
