package microcode

import (
	"fmt"
	"iter"
	"strconv"

	"github.com/MaXin-noob/principles-of-Computer/internal"
)

// Address is a control store address.
type Address uint16

// String returns the three digit octal address code.
func (addr Address) String() string {
	return fmt.Sprintf("%03o", uint16(addr))
}

// Test is the sequencing outcome of a micro-order.
type Test int

//go:generate go tool stringer -linecomment -type=Test
const (
	TEST_SEQUENTIAL = Test(0b00) // seq
	TEST_DECODE     = Test(0b01) // decode
	TEST_TERMINAL   = Test(0b11) // end
)

const (
	FETCH        = Address(0o000) // Start of the common fetch sequence.
	VECTOR_WIDTH = SIGNAL_WIDTH + 2 + 3
)

// Entry is a parsed control store micro-order.
type Entry struct {
	Address     Address
	Signals     Signal
	Test        Test
	Next        Address // Only meaningful for TEST_SEQUENTIAL.
	Description string
}

func (entry Entry) String() string {
	if entry.Test == TEST_SEQUENTIAL {
		return fmt.Sprintf("%v: %-16v %v -> %v", entry.Address, entry.Description, entry.Test, entry.Next)
	}
	return fmt.Sprintf("%v: %-16v %v", entry.Address, entry.Description, entry.Test)
}

// controlStore is the raw micro-program. Vectors are 24 signal bits in
// Signal order, a 2 bit test field, and a 3 digit octal next address.
var controlStore = []struct {
	Address     string
	Vector      string
	Description string
}{
	// Fetch
	{"000", "10011000000000000000000000001", "PC->IMAR, IREAD"},
	{"001", "11100000000000000000000000002", "PC+2->PC"},
	{"002", "00000110000000000000000001000", "IMDR->IR"},
	// NOP
	{"010", "00000000000000000000000011000", "NOP"},
	// LDI Rd, imm
	{"020", "00000001000000000000000000021", "IR(IMM)->BUS"},
	{"021", "00000000011000000000000011000", "BUS->Rd"},
	// LD Rd
	{"030", "00000000000000000010000000031", "MDR->BUS"},
	{"031", "00000000011000000000000011000", "BUS->Rd"},
	// MOV Rd, Rs
	{"040", "00000000100110000000000000041", "Rs->SR"},
	{"041", "00000000000001000000000000042", "SR->BUS"},
	{"042", "00000000011000000000000011000", "BUS->Rd"},
	// MOV Rd, (Rs)
	{"043", "00000000100100001000000000044", "Rs->MAR"},
	{"044", "00000000000000000001000000045", "READ"},
	{"045", "00000000000010000010000000041", "MDR->SR"},
	// MOV (Rd), Rs
	{"046", "00000000100110000000000000047", "Rs->SR"},
	{"047", "00000000101000001000000000050", "Rd->MAR"},
	{"050", "00000000000001000100000000051", "SR->MDR"},
	{"051", "00000000000000000000100011000", "WRITE"},
	// MOV (Rd), (Rs)
	{"052", "00000000100100001000000000053", "Rs->MAR"},
	{"053", "00000000000000000001000000054", "READ"},
	{"054", "00000000000010000010000000047", "MDR->SR"},
	// ADD Rd, Rs
	{"100", "00000000100110000000000000101", "Rs->SR"},
	{"101", "00000000101000100000000000102", "Rd->DR"},
	{"102", "00000000000001010000010000103", "DR+SR->BUS"},
	{"103", "00000000010100000000000011000", "BUS->Rs"},
	// ADD Rd, (Rs)
	{"104", "00000000100100001000000000105", "Rs->MAR"},
	{"105", "00000000000000000001000000106", "READ"},
	{"106", "00000000000010000010000000107", "MDR->SR"},
	{"107", "00000000101000100000000000110", "Rd->DR"},
	{"110", "00000000000001010000010000111", "DR+SR->BUS"},
	{"111", "00000000000000000100000000112", "BUS->MDR"},
	{"112", "00000000000000000000100011000", "WRITE"},
	// ADD (Rd), Rs
	{"113", "00000000101000001000000000114", "Rd->MAR"},
	{"114", "00000000000000000001000000115", "READ"},
	{"115", "00000000000000100010000000116", "MDR->DR"},
	{"116", "00000000100110000000000000102", "Rs->SR"},
	// ADD (Rd), (Rs)
	{"117", "00000000101000001000000000120", "Rd->MAR"},
	{"120", "00000000000000000001000000121", "READ"},
	{"121", "00000000000000100010000000122", "MDR->DR"},
	{"122", "00000000100100001000000000123", "Rs->MAR"},
	{"123", "00000000000000000001000000124", "READ"},
	{"124", "00000000000010000010000000110", "MDR->SR"},
	// SUB Rd, Rs
	{"200", "00000000100110000000000000201", "Rs->SR"},
	{"201", "00000000101000100000000000202", "Rd->DR"},
	{"202", "00000000000001010000010000203", "DR-SR->BUS"},
	{"203", "00000000010100000000000011000", "BUS->Rs"},
	// SUB Rd, (Rs)
	{"204", "00000000100100001000000000205", "Rs->MAR"},
	{"205", "00000000000000000001000000206", "READ"},
	{"206", "00000000000010000010000000207", "MDR->SR"},
	{"207", "00000000101000100000000000210", "Rd->DR"},
	{"210", "00000000000001010000010000211", "DR-SR->BUS"},
	{"211", "00000000000000000100000000212", "BUS->MDR"},
	{"212", "00000000000000000000100011000", "WRITE"},
	// SUB (Rd), Rs
	{"213", "00000000101000001000000000214", "Rd->MAR"},
	{"214", "00000000000000000001000000215", "READ"},
	{"215", "00000000000000100010000000216", "MDR->DR"},
	{"216", "00000000100110000000000000202", "Rs->SR"},
	// SUB (Rd), (Rs)
	{"217", "00000000101000001000000000220", "Rd->MAR"},
	{"220", "00000000000000000001000000221", "READ"},
	{"221", "00000000000000100010000000222", "MDR->DR"},
	{"222", "00000000100100001000000000223", "Rs->MAR"},
	{"223", "00000000000000000001000000224", "READ"},
	{"224", "00000000000010000010000000210", "MDR->SR"},
	// AND Rd, Rs
	{"300", "00000000100110000000000000301", "Rs->SR"},
	{"301", "00000000101000100000000000302", "Rd->DR"},
	{"302", "00000000000001010000010000303", "DR^SR->BUS"},
	{"303", "00000000010100000000000011000", "BUS->Rs"},
	// AND Rd, (Rs)
	{"304", "00000000100100001000000000305", "Rs->MAR"},
	{"305", "00000000000000000001000000306", "READ"},
	{"306", "00000000000010000010000000307", "MDR->SR"},
	{"307", "00000000101000100000000000310", "Rd->DR"},
	{"310", "00000000000001010000010000311", "DR^SR->BUS"},
	{"311", "00000000000000000100000000312", "BUS->MDR"},
	{"312", "00000000000000000000100011000", "WRITE"},
	// AND (Rd), Rs
	{"313", "00000000101000001000000000314", "Rd->MAR"},
	{"314", "00000000000000000001000000315", "READ"},
	{"315", "00000000000000100010000000316", "MDR->DR"},
	{"316", "00000000100110000000000000302", "Rs->SR"},
	// AND (Rd), (Rs)
	{"317", "00000000101000001000000000320", "Rd->MAR"},
	{"320", "00000000000000000001000000321", "READ"},
	{"321", "00000000000000100010000000322", "MDR->DR"},
	{"322", "00000000100100001000000000323", "Rs->MAR"},
	{"323", "00000000000000000001000000324", "READ"},
	{"324", "00000000000010000010000000310", "MDR->SR"},
	// INC Rd
	{"400", "00000000101000100000000000401", "Rd->DR"},
	{"401", "00000000000000010000010000402", "DR+1->BUS"},
	{"402", "00000000011000000000000011000", "BUS->Rd"},
	// INC (Rd)
	{"403", "00000000101000001000000000404", "Rd->MAR"},
	{"404", "00000000000000000001000000405", "READ"},
	{"405", "00000000000000100010000000406", "MDR->DR"},
	{"406", "00000000000000010000010000407", "DR+1->BUS"},
	{"407", "00000000000000000100000000410", "BUS->MDR"},
	{"410", "00000000000000000000100011000", "WRITE"},
	// INC (Rd)+
	{"411", "00000000101000001000000000412", "Rd->MAR"},
	{"412", "00000000000000000001000000413", "READ"},
	{"413", "00000000000000100010000000414", "MDR->DR"},
	{"414", "00000000000000010000010000415", "DR+1->BUS"},
	{"415", "00000000000000000100000000416", "BUS->MDR"},
	{"416", "00000000000000000000100000417", "WRITE"},
	{"417", "00100000111000000000000011000", "Rd+2->Rd"},
	// INC @(Rd)
	{"420", "00000000101000001000000000421", "Rd->MAR"},
	{"421", "00000000000000000001000000422", "READ"},
	{"422", "00000000000000001010000000404", "MDR->MAR"},
	// INC @(Rd)+
	{"423", "00000000101000001000000000424", "Rd->MAR"},
	{"424", "00000000000000000001000000425", "READ"},
	{"425", "00000000000000001010000000412", "MDR->MAR"},
	// INC [Rd]
	{"426", "00000000101000100000000000427", "Rd->DR"},
	{"427", "00000000000000011000011000404", "DR+R0->MAR"},
	// DEC Rd
	{"500", "00000000101000100000000000501", "Rd->DR"},
	{"501", "00000000000000010000010000502", "DR-1->BUS"},
	{"502", "00000000011000000000000011000", "BUS->Rd"},
	// DEC (Rd)
	{"503", "00000000101000001000000000504", "Rd->MAR"},
	{"504", "00000000000000000001000000505", "READ"},
	{"505", "00000000000000100010000000506", "MDR->DR"},
	{"506", "00000000000000010000010000507", "DR-1->BUS"},
	{"507", "00000000000000000100000000510", "BUS->MDR"},
	{"510", "00000000000000000000100011000", "WRITE"},
	// DEC (Rd)+
	{"511", "00000000101000001000000000512", "Rd->MAR"},
	{"512", "00000000000000000001000000513", "READ"},
	{"513", "00000000000000100010000000514", "MDR->DR"},
	{"514", "00000000000000010000010000515", "DR-1->BUS"},
	{"515", "00000000000000000100000000516", "BUS->MDR"},
	{"516", "00000000000000000000100000517", "WRITE"},
	{"517", "00100000111000000000000011000", "Rd+2->Rd"},
	// DEC @(Rd)
	{"520", "00000000101000001000000000521", "Rd->MAR"},
	{"521", "00000000000000000001000000522", "READ"},
	{"522", "00000000000000001010000000504", "MDR->MAR"},
	// DEC @(Rd)+
	{"523", "00000000101000001000000000524", "Rd->MAR"},
	{"524", "00000000000000000001000000525", "READ"},
	{"525", "00000000000000001010000000512", "MDR->MAR"},
	// DEC [Rd]
	{"526", "00000000101000100000000000527", "Rd->DR"},
	{"527", "00000000000000011000011000504", "DR+R0->MAR"},
	// JMP Rd
	{"600", "01000000101000000000000011000", "Rd->PC"},
	// JMP (Rd)
	{"601", "00000000101000001000000000602", "Rd->MAR"},
	{"602", "00000000000000000001000000603", "READ"},
	{"603", "01000000000000000010000011000", "MDR->PC"},
	// JC Rd
	{"610", "01000000101000000000000111000", "if C: Rd->PC"},
	// JC (Rd)
	{"611", "00000000101000001000000000612", "Rd->MAR"},
	{"612", "00000000000000000001000000613", "READ"},
	{"613", "01000000000000000010000111000", "if C: MDR->PC"},
}

var store = mustParseStore()

func mustParseStore() map[Address]Entry {
	parsed, err := parseStore()
	if err != nil {
		panic(err)
	}
	return parsed
}

func parseEntry(code, vector, description string) (entry Entry, err error) {
	addr, err := strconv.ParseUint(code, 8, 16)
	if err != nil || len(code) != 3 {
		err = fmt.Errorf("control store address %q invalid", code)
		return
	}
	if len(vector) != VECTOR_WIDTH {
		err = fmt.Errorf("control store %v: vector is %d wide", code, len(vector))
		return
	}

	signals, err := strconv.ParseUint(vector[:SIGNAL_WIDTH], 2, SIGNAL_WIDTH)
	if err != nil {
		err = fmt.Errorf("control store %v: signals: %w", code, err)
		return
	}

	entry = Entry{
		Address:     Address(addr),
		Signals:     Signal(signals),
		Description: description,
	}

	switch vector[SIGNAL_WIDTH : SIGNAL_WIDTH+2] {
	case "00":
		entry.Test = TEST_SEQUENTIAL
	case "01":
		entry.Test = TEST_DECODE
	case "11":
		entry.Test = TEST_TERMINAL
	default:
		err = fmt.Errorf("control store %v: test field %q invalid", code, vector[SIGNAL_WIDTH:SIGNAL_WIDTH+2])
		return
	}

	next, err := strconv.ParseUint(vector[SIGNAL_WIDTH+2:], 8, 16)
	if err != nil {
		err = fmt.Errorf("control store %v: next address: %w", code, err)
		return
	}
	entry.Next = Address(next)

	return
}

func parseStore() (parsed map[Address]Entry, err error) {
	parsed = make(map[Address]Entry, len(controlStore))
	for _, raw := range controlStore {
		var entry Entry
		entry, err = parseEntry(raw.Address, raw.Vector, raw.Description)
		if err != nil {
			return
		}
		if _, dup := parsed[entry.Address]; dup {
			err = fmt.Errorf("control store %v: duplicated", entry.Address)
			return
		}
		parsed[entry.Address] = entry
	}

	for _, entry := range parsed {
		if entry.Test != TEST_SEQUENTIAL {
			continue
		}
		if _, ok := parsed[entry.Next]; !ok {
			err = fmt.Errorf("control store %v: next %v missing", entry.Address, entry.Next)
			return
		}
	}

	return
}

// Lookup returns the micro-order at an address.
func Lookup(addr Address) (entry Entry, ok bool) {
	entry, ok = store[addr]
	return
}

// Entries iterates the control store in address order.
func Entries() iter.Seq2[Address, Entry] {
	return internal.SortedAll(store)
}
