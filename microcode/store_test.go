package microcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoreParsed(t *testing.T) {
	assert := assert.New(t)

	count := 0
	for addr, entry := range Entries() {
		count++
		assert.Equal(addr, entry.Address)
		assert.NotEmpty(entry.Description, addr.String())
		if entry.Test == TEST_SEQUENTIAL {
			_, ok := Lookup(entry.Next)
			assert.True(ok, addr.String())
		}
	}

	assert.Equal(len(controlStore), count)
}

func TestStoreFetch(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		addr        Address
		description string
		signals     Signal
		test        Test
		next        Address
	}){
		{0o000, "PC->IMAR, IREAD", SIG_PC_OUT | SIG_IMAR_IN | SIG_IREAD, TEST_SEQUENTIAL, 0o001},
		{0o001, "PC+2->PC", SIG_PC_OUT | SIG_PC_IN | SIG_ADD_WORD, TEST_SEQUENTIAL, 0o002},
		{0o002, "IMDR->IR", SIG_IMDR_OUT | SIG_IR_IN, TEST_DECODE, 0},
	}

	for _, entry := range table {
		got, ok := Lookup(entry.addr)
		if !assert.True(ok, entry.addr.String()) {
			continue
		}
		assert.Equal(entry.description, got.Description)
		assert.Equal(entry.signals, got.Signals, got.Signals.String())
		assert.Equal(entry.test, got.Test)
		if entry.test == TEST_SEQUENTIAL {
			assert.Equal(entry.next, got.Next)
		}
	}
}

func TestStoreTerminals(t *testing.T) {
	assert := assert.New(t)

	// Each instruction's final micro-order ends the sequence.
	for _, addr := range []Address{0o010, 0o021, 0o031, 0o042, 0o051, 0o103, 0o112, 0o402, 0o410, 0o417, 0o600, 0o603, 0o610, 0o613} {
		entry, ok := Lookup(addr)
		assert.True(ok, addr.String())
		assert.Equal(TEST_TERMINAL, entry.Test, addr.String())
	}

	_, ok := Lookup(0o777)
	assert.False(ok)
}

func TestParseEntry(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		code   string
		vector string
		ok     bool
	}){
		{"000", "10011000000000000000000000001", true},
		{"021", "00000000011000000000000011000", true},
		{"21", "00000000011000000000000011000", false},
		{"08x", "00000000011000000000000011000", false},
		{"021", "0000000001100000000000001100", false},
		{"021", "0000000001100000000000002x000", false},
		{"021", "00000000011000000000000010000", false},
		{"021", "00000000011000000000000000089", false},
	}

	for _, entry := range table {
		_, err := parseEntry(entry.code, entry.vector, "test")
		if entry.ok {
			assert.NoError(err, entry.code+" "+entry.vector)
		} else {
			assert.Error(err, entry.code+" "+entry.vector)
		}
	}
}

func TestAddressString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("000", FETCH.String())
	assert.Equal("017", Address(0o17).String())
	assert.Equal("613", Address(0o613).String())
}

func TestEntryString(t *testing.T) {
	assert := assert.New(t)

	fetch, _ := Lookup(0o001)
	assert.Equal("001: PC+2->PC         seq -> 002", fetch.String())

	done, _ := Lookup(0o010)
	assert.Equal("010: NOP              end", done.String())
}

func TestSignalString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("-", Signal(0).String())
	assert.Equal("PCout IMARin IREAD", (SIG_PC_OUT | SIG_IMAR_IN | SIG_IREAD).String())
	assert.Equal("ALU +R0", (SIG_INDEX | SIG_ALU).String())
	assert.True((SIG_REG_OUT | SIG_SEL_DST).Has(SIG_SEL_DST))
	assert.False(SIG_REG_OUT.Has(SIG_REG_OUT | SIG_SEL_DST))
}
