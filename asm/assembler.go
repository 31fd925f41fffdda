// Copyright 2025, MaXin-noob (github.com/MaXin-noob/principles-of-Computer)

package asm

import (
	"bufio"
	"fmt"
	"io"
	"maps"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/k0kubun/pp/v3"
	"github.com/sirupsen/logrus"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/MaXin-noob/principles-of-Computer/cpu"
	"github.com/MaXin-noob/principles-of-Computer/isa"
)

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO":    "0",
	"PC_BASE":   fmt.Sprintf("%X", uint16(cpu.PC_BASE)),
	"WORD_SIZE": fmt.Sprintf("%X", uint16(cpu.WORD_SIZE)),
}

var (
	reExpression = regexp.MustCompile(`\$\([^\$]*\)`)
	reIdentifier = regexp.MustCompile(`\b[A-Z_][A-Z0-9_]*\b`)
	reName       = regexp.MustCompile(`\b[A-Za-z_][A-Za-z0-9_]*\b`)
)

// Assembler is a single pass assembler for the teaching CPU.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.

	predefine map[string]string
	Equate    map[string]string // Map of equates.
}

// Predefine defines an equate before any source is parsed.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{}
	}
	asm.predefine[strings.ToUpper(equ)] = value
}

// valueOf returns the integer value of a hexadecimal word.
func valueOf(word string) (value uint64, err error) {
	word = strings.TrimPrefix(strings.ToUpper(word), "0X")
	return strconv.ParseUint(word, 16, 16)
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value uint64, err error) {
	thread := starlark.Thread{Name: "asm"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		v, _err := valueOf(str)
		if _err != nil {
			// Register aliases and other non-numeric equates.
			continue
		}
		pred[key] = starlark.MakeUint64(v)
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Uint64()
	if !ok || value > 0xffff {
		err = ErrParseExpression(expr)
		return
	}

	return
}

// parseLine expands a single source line and splits it into a mnemonic
// and its operands. Directives are consumed and yield an empty line.
func (asm *Assembler) parseLine(text string, lineno int) (line isa.Line, err error) {
	asm.Equate["LINENO"] = fmt.Sprintf("%X", lineno)

	text = reExpression.ReplaceAllStringFunc(text, func(str string) string {
		// Equate names are case-insensitive; Starlark keywords are not.
		expr := reName.ReplaceAllStringFunc(str[2:len(str)-1], func(name string) string {
			if _, ok := asm.Equate[strings.ToUpper(name)]; ok {
				return strings.ToUpper(name)
			}
			return name
		})
		value, _err := asm.parenEval(expr)
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%X", value)
	})
	if err != nil {
		return
	}

	text = strings.Join(strings.Fields(strings.ToUpper(text)), " ")
	mnemonic, rest, _ := strings.Cut(text, " ")

	// .equ CONST VALUE
	if mnemonic == ".EQU" {
		words := strings.Fields(rest)
		if len(words) != 2 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[0]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[0]] = words[1]
		return
	}
	if strings.HasPrefix(mnemonic, ".") {
		err = ErrDirective
		return
	}

	line.Mnemonic = mnemonic
	rest = strings.TrimSpace(rest)
	if len(rest) == 0 {
		return
	}

	for _, operand := range strings.Split(rest, ",") {
		operand = reIdentifier.ReplaceAllStringFunc(strings.TrimSpace(operand), func(word string) string {
			equate, ok := asm.Equate[word]
			if ok {
				return equate
			}
			return word
		})
		line.Operands = append(line.Operands, operand)
	}

	return
}

// Parse parses an input stream into an encoded Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			prog = nil
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	prog = &Program{}
	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			logrus.WithField("line", lineno).Debug(text)
		}

		text_comment := strings.Split(text, ";")
		line = strings.TrimSpace(text_comment[0])
		if len(line) == 0 {
			continue
		}

		var tokens isa.Line
		tokens, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}
		if len(tokens.Mnemonic) == 0 {
			continue
		}

		var word isa.Word
		word, err = isa.Encode(tokens)
		if err != nil {
			return
		}

		stmt := Statement{
			LineNo: lineno,
			PC:     pcOf(len(prog.Statements)),
			Text:   line,
			Line:   tokens,
			Word:   word,
		}
		if asm.Verbose {
			pp.Fprintf(os.Stderr, "adding %v\n", stmt)
		}
		prog.Statements = append(prog.Statements, stmt)
	}

	err = scanner.Err()
	return
}
