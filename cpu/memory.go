package cpu

import (
	"iter"
	"maps"

	"github.com/MaXin-noob/principles-of-Computer/internal"
	"github.com/MaXin-noob/principles-of-Computer/isa"
)

// Memory is a sparse, word addressed data memory.
// Cells exist only once written.
type Memory struct {
	cells map[isa.Word]isa.Word
}

// Read returns the cell at 'addr', or DEFAULT_VALUE if it was never written.
func (mem *Memory) Read(addr isa.Word) (value isa.Word) {
	value, ok := mem.cells[addr]
	if !ok {
		value = DEFAULT_VALUE
	}
	return
}

// Write stores a cell.
func (mem *Memory) Write(addr isa.Word, value isa.Word) {
	if mem.cells == nil {
		mem.cells = make(map[isa.Word]isa.Word)
	}
	mem.cells[addr] = value
}

// Len returns the number of written cells.
func (mem *Memory) Len() int {
	return len(mem.cells)
}

// Reset forgets every cell.
func (mem *Memory) Reset() {
	mem.cells = nil
}

// Cells iterates the written cells in address order.
func (mem *Memory) Cells() iter.Seq2[isa.Word, isa.Word] {
	return internal.SortedAll(mem.cells)
}

// Clone returns an independent copy of the memory contents.
func (mem *Memory) Clone() (cells map[isa.Word]isa.Word) {
	cells = maps.Clone(mem.cells)
	if cells == nil {
		cells = map[isa.Word]isa.Word{}
	}
	return
}
