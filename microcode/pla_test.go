package microcode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MaXin-noob/principles-of-Computer/isa"
)

func TestPlaTotal(t *testing.T) {
	assert := assert.New(t)

	count := 0
	for form := range isa.Forms() {
		count++
		addr, ok := pla[form]
		if !assert.True(ok, form.String()) {
			continue
		}
		_, ok = Lookup(addr)
		assert.True(ok, form.String())
	}

	assert.Equal(len(pla), count)
}

func TestDecode(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		line string
		addr Address
	}){
		{"NOP", 0o010},
		{"LDI R0, 0A", 0o020},
		{"LD R5", 0o030},
		{"MOV R1, R2", 0o040},
		{"MOV R1, (R2)", 0o043},
		{"MOV (R1), R2", 0o046},
		{"MOV (R1), (R2)", 0o052},
		{"ADD R0, R1", 0o100},
		{"SUB (R0), (R1)", 0o217},
		{"AND R0, (R1)", 0o304},
		{"INC (R3)+", 0o411},
		{"DEC @(R3)", 0o520},
		{"INC @(R3)+", 0o423},
		{"DEC [R4]", 0o526},
		{"JMP (R2)", 0o601},
		{"JC R2", 0o610},
		{"NEC (R2)", 0o611},
	}

	for _, entry := range table {
		mnemonic, rest, _ := strings.Cut(entry.line, " ")
		line := isa.Line{Mnemonic: mnemonic}
		if rest != "" {
			for _, op := range strings.Split(rest, ",") {
				line.Operands = append(line.Operands, strings.TrimSpace(op))
			}
		}
		word, err := isa.Encode(line)
		if !assert.NoError(err, entry.line) {
			continue
		}
		addr, err := Decode(word)
		assert.NoError(err, entry.line)
		assert.Equal(entry.addr, addr, entry.line)
	}
}

func TestDecodeUnimplemented(t *testing.T) {
	assert := assert.New(t)

	for _, word := range []isa.Word{0x3000, 0x5123, 0x6fff, 0xc000, 0xf00f, 0xb010} {
		_, err := Decode(word)
		assert.ErrorIs(err, ErrUnimplementedOpcode, word.Bits())
		assert.ErrorIs(err, ErrUnimplemented(0))
		assert.Equal(ErrUnimplemented(word), err)
	}
}

func FuzzDecode(f *testing.F) {
	f.Add(uint16(0x0000))
	f.Add(uint16(0xe0a0))
	f.Add(uint16(0x3000))
	f.Add(uint16(0xb07b))

	f.Fuzz(func(t *testing.T, raw uint16) {
		assert := assert.New(t)

		word := isa.Word(raw)
		addr, err := Decode(word)
		if err != nil {
			assert.ErrorIs(err, ErrUnimplementedOpcode)
			assert.False(isa.Supports(word.Form()))
			return
		}

		assert.True(isa.Supports(word.Form()))
		_, ok := Lookup(addr)
		assert.True(ok)
	})
}
