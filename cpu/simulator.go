// Copyright 2025, MaXin-noob (github.com/MaXin-noob/principles-of-Computer)

package cpu

import (
	"errors"
	"fmt"
	"iter"

	"github.com/sirupsen/logrus"

	"github.com/MaXin-noob/principles-of-Computer/isa"
	"github.com/MaXin-noob/principles-of-Computer/microcode"
)

// MICRO_STEP_LIMIT bounds the micro-orders visited by one instruction.
const MICRO_STEP_LIMIT = 64

// Simulator is the simulation context for the microprogrammed CPU.
type Simulator struct {
	Verbose bool // Set to enable verbose logging.

	Ticks int // Instructions executed since reset.

	regs    RegisterFile
	mem     Memory
	program *Program
}

// Snapshot is an independent copy of the machine state.
type Snapshot struct {
	Registers RegisterFile
	Memory    map[isa.Word]isa.Word
}

// NewSimulator creates a simulator in its reset state.
func NewSimulator() (sim *Simulator) {
	sim = &Simulator{}
	sim.Reset()

	return
}

// Reset restores registers and memory to their defaults.
// A loaded program is kept.
func (sim *Simulator) Reset() {
	if sim.Verbose {
		logrus.Debug("cpu: reset")
	}

	sim.regs.Reset()
	sim.mem.Reset()
	sim.Ticks = 0
	if sim.program == nil {
		sim.program = &Program{}
	}
}

// Load installs a program in instruction memory, word i at PC_BASE + 2*i,
// and points PC at its first word.
func (sim *Simulator) Load(words []isa.Word) {
	sim.program = NewProgram(words)
	sim.regs.PC = PC_BASE

	if sim.Verbose {
		logrus.WithField("words", len(words)).Debug("cpu: load")
	}
}

// Program returns the loaded instruction memory image.
func (sim *Simulator) Program() *Program {
	return sim.program
}

// Registers returns a copy of the register file.
func (sim *Simulator) Registers() RegisterFile {
	return sim.regs
}

// Register returns a register by name.
func (sim *Simulator) Register(name string) (value isa.Word, ok bool) {
	return sim.regs.Register(name)
}

// Peek reads a data memory cell.
func (sim *Simulator) Peek(addr isa.Word) isa.Word {
	return sim.mem.Read(addr)
}

// Poke writes a data memory cell.
func (sim *Simulator) Poke(addr isa.Word, value isa.Word) {
	sim.mem.Write(addr, value)
}

// Cells iterates the written data memory cells in address order.
func (sim *Simulator) Cells() iter.Seq2[isa.Word, isa.Word] {
	return sim.mem.Cells()
}

// Snapshot copies the machine state.
func (sim *Simulator) Snapshot() Snapshot {
	return Snapshot{
		Registers: sim.regs,
		Memory:    sim.mem.Clone(),
	}
}

// String returns the register dump followed by the written memory cells.
func (sim *Simulator) String() (text string) {
	text = sim.regs.String()
	for addr, value := range sim.mem.Cells() {
		text += fmt.Sprintf("[%04X]: %04X\n", uint16(addr), uint16(value))
	}

	return
}

// Step fetches the instruction at PC from the loaded program and runs it.
func (sim *Simulator) Step() (trace []string, err error) {
	word, ok := sim.program.Fetch(sim.regs.PC)
	if !ok {
		err = ErrProgramExhausted
		return
	}

	return sim.Run(word)
}

// Run executes one instruction word to completion and returns the
// descriptions of the micro-orders it walked.
func (sim *Simulator) Run(word isa.Word) (trace []string, err error) {
	defer func() {
		if err != nil {
			trace = nil
			err = errors.Join(ErrInstruction(word), err)
		}
	}()

	trace, err = sim.walk(word)
	if err != nil {
		return
	}

	if sim.Verbose {
		logrus.WithFields(logrus.Fields{
			"pc":   fmt.Sprintf("%04X", uint16(sim.regs.PC)),
			"word": fmt.Sprintf("%04X", uint16(word)),
			"op":   word.String(),
		}).Debug("cpu: run")
	}

	sim.fetch(word)
	sim.execute(word)
	sim.Ticks++

	return
}

// walk follows the control store from the fetch sequence to the end of the
// micro-sequence for 'word'.
func (sim *Simulator) walk(word isa.Word) (trace []string, err error) {
	phase := PHASE_FETCH
	addr := microcode.FETCH

	for range MICRO_STEP_LIMIT {
		entry, ok := microcode.Lookup(addr)
		if !ok {
			err = ErrMicroAddress(addr)
			return
		}

		trace = append(trace, entry.Description)
		if sim.Verbose {
			logrus.WithFields(logrus.Fields{
				"addr":    addr.String(),
				"phase":   phase.String(),
				"signals": entry.Signals.String(),
			}).Debug(entry.Description)
		}

		switch entry.Test {
		case microcode.TEST_SEQUENTIAL:
			addr = entry.Next
		case microcode.TEST_DECODE:
			phase = PHASE_DECODE
			addr, err = microcode.Decode(word)
			if err != nil {
				return
			}
			phase = PHASE_SEQUENCE
		case microcode.TEST_TERMINAL:
			if sim.Verbose {
				logrus.WithField("phase", PHASE_DONE.String()).Debug("cpu: sequence end")
			}
			return
		}
	}

	err = ErrMicroLoop
	return
}
