package isa

import (
	"fmt"
	"iter"
	"strconv"
	"strings"

	"github.com/MaXin-noob/principles-of-Computer/internal"
)

// TEMPLATE_WIDTH is the length of every instruction template.
const TEMPLATE_WIDTH = 16

// instructionSet is the raw mnemonic table, in definition order. NEC appears
// twice; the later entry shadows the earlier one.
var instructionSet = [][2]string{
	{"ADD", "000100000ddd0sss"},
	{"SUB", "001000000ddd0sss"},
	{"AND", "010000000ddd0sss"},
	{"INC", "1011000000000ddd"},
	{"DEC", "1101000000000ddd"},
	{"NEC", "1011000000000ddd"},
	{"JMP", "0111000000000ddd"},
	{"NEC", "1000000000000ddd"},
	{"JC", "1000000000000ddd"},
	{"MOV", "1010000sss000ddd"},
	{"LDI", "1110xxxxxxxx0ddd"},
	{"LD", "1001000000001ddd"},
	{"NOP", "0000000000000000"},
}

// Entry is a parsed instruction set template.
type Entry struct {
	Mnemonic string
	Template string
	Opcode   Opcode
	Class    Class
	Fixed    Word // Literal one bits of the template.

	layout layout
}

var table map[string]Entry

func init() {
	table = make(map[string]Entry, len(instructionSet))
	for _, raw := range instructionSet {
		entry, err := parseTemplate(raw[0], raw[1])
		if err != nil {
			panic(err)
		}
		table[entry.Mnemonic] = entry
	}
}

// runOf finds the placeholder run of 'ch' in a template.
func runOf(template string, ch byte) (s slot, err error) {
	first := strings.IndexByte(template, ch)
	if first < 0 {
		return
	}
	last := strings.LastIndexByte(template, ch)
	if strings.Count(template[first:last+1], string(ch)) != last-first+1 {
		err = fmt.Errorf("%v: '%c' run is not contiguous", template, ch)
		return
	}
	s = slot{Shift: uint(TEMPLATE_WIDTH - 1 - last), Width: uint(last - first + 1)}
	return
}

func parseTemplate(mnemonic, template string) (entry Entry, err error) {
	if len(template) != TEMPLATE_WIDTH {
		err = fmt.Errorf("%v: template %q is %d wide", mnemonic, template, len(template))
		return
	}

	var fixed []byte
	for _, ch := range []byte(template) {
		switch ch {
		case '0', '1':
			fixed = append(fixed, ch)
		case 'd', 's', 'x':
			fixed = append(fixed, '0')
		default:
			err = fmt.Errorf("%v: template %q has '%c'", mnemonic, template, ch)
			return
		}
	}
	value, err := strconv.ParseUint(string(fixed), 2, 16)
	if err != nil {
		return
	}

	entry = Entry{
		Mnemonic: mnemonic,
		Template: template,
		Fixed:    Word(value),
	}
	entry.Opcode = entry.Fixed.Opcode()
	entry.Class = entry.Opcode.Class()
	entry.layout = classLayout[entry.Class]

	// The placeholder runs must sit exactly where the class expects them.
	for _, run := range []struct {
		ch   byte
		want slot
	}{
		{'d', entry.layout.Dst},
		{'s', entry.layout.Src},
		{'x', entry.layout.Imm},
	} {
		var got slot
		got, err = runOf(template, run.ch)
		if err != nil {
			return
		}
		if got != run.want {
			err = fmt.Errorf("%v: '%c' run %+v, class %v expects %+v", mnemonic, run.ch, got, entry.Class, run.want)
			return
		}
	}

	return
}

// Lookup finds the table entry for a mnemonic.
func Lookup(mnemonic string) (entry Entry, ok bool) {
	entry, ok = table[strings.ToUpper(mnemonic)]
	return
}

// Entries iterates the instruction set table in mnemonic order.
func Entries() iter.Seq2[string, Entry] {
	return internal.SortedAll(table)
}
