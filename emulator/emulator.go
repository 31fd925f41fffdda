// Copyright 2025, MaXin-noob (github.com/MaXin-noob/principles-of-Computer)

package emulator

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"maps"

	"github.com/sirupsen/logrus"

	"github.com/MaXin-noob/principles-of-Computer/asm"
	"github.com/MaXin-noob/principles-of-Computer/cpu"
	"github.com/MaXin-noob/principles-of-Computer/internal"
)

const (
	STEP_LIMIT = 4096 // Default instruction budget of Run.
)

var _cpu_defines = map[string]string{
	"DEFAULT_VALUE":    fmt.Sprintf("%X", uint16(cpu.DEFAULT_VALUE)),
	"MICRO_STEP_LIMIT": fmt.Sprintf("%X", cpu.MICRO_STEP_LIMIT),
	"REGISTERS":        fmt.Sprintf("%X", cpu.REGISTERS),
}

var _emulator_defines = map[string]string{
	"STEP_LIMIT": fmt.Sprintf("%X", STEP_LIMIT),
}

// Emulator state. Simulator + the assembled program it runs.
type Emulator struct {
	Verbose        bool         // If set, enables verbose logging.
	*cpu.Simulator              // Reference to the CPU simulation.
	Program        *asm.Program // Reference to the currently running program listing.

	Trace io.Writer // If set, receives the micro-order trace of every instruction.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Simulator: cpu.NewSimulator(),
		Program:   &asm.Program{},
	}

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		maps.All(_cpu_defines),
	)
}

// Reset the machine state, and load the program.
func (emu *Emulator) Reset() (err error) {
	emu.Simulator.Verbose = emu.Verbose
	emu.Simulator.Reset()
	emu.Simulator.Load(emu.Program.Words())

	return
}

// Statement returns the statement at the current program counter, or nil.
func (emu *Emulator) Statement() *asm.Statement {
	return emu.Program.Debug(emu.Simulator.Registers().PC)
}

// LineNo returns the current line number for the executing instruction.
func (emu *Emulator) LineNo() int {
	stmt := emu.Statement()
	if stmt == nil {
		return 0
	}

	return stmt.LineNo
}

// Tick executes a single instruction.
func (emu *Emulator) Tick() (trace []string, done bool, err error) {
	// Set CPU verbosity
	emu.Simulator.Verbose = emu.Verbose

	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Err: err}
		}
	}()

	trace, err = emu.Simulator.Step()
	if errors.Is(err, cpu.ErrProgramExhausted) {
		err = nil
		done = true
		return
	}
	if err != nil {
		return
	}

	if emu.Trace != nil {
		regs := emu.Simulator.Registers()
		fmt.Fprintf(emu.Trace, "%04X: %v\n", uint16(regs.IMAR), regs.IR)
		for _, desc := range trace {
			fmt.Fprintf(emu.Trace, "\t%v\n", desc)
		}
	}

	return
}

// Run ticks until the program is exhausted, or 'limit' instructions have run.
func (emu *Emulator) Run(limit int) (steps int, err error) {
	for steps < limit {
		var done bool
		_, done, err = emu.Tick()
		if err != nil || done {
			return
		}
		steps++
	}

	// The budget ran out exactly as the program finished.
	if _, ok := emu.Simulator.Program().Fetch(emu.Simulator.Registers().PC); !ok {
		return
	}

	if emu.Verbose {
		logrus.WithField("steps", steps).Debug("emulator: step limit")
	}

	err = &ErrRuntime{LineNo: emu.LineNo(), Err: ErrStepLimit}
	return
}
