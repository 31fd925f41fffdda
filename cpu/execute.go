package cpu

import (
	"github.com/MaXin-noob/principles-of-Computer/isa"
)

// location is a resolved operand: a general purpose register or a data
// memory cell.
type location struct {
	memory bool
	addr   isa.Word // Memory address, or register index.
}

// resolve computes the effective location of an operand.
func (sim *Simulator) resolve(op isa.Operand) (loc location) {
	regs := &sim.regs
	reg := regs.R[op.Reg]

	switch {
	case op.Mode == isa.MODE_DIRECT:
		loc.addr = isa.Word(op.Reg)
	case op.Mode&isa.MODE_INDEXED != 0:
		loc = location{memory: true, addr: reg + regs.R[0]}
	case op.Mode&isa.MODE_DEFERRED != 0:
		loc = location{memory: true, addr: sim.mem.Read(reg)}
	default:
		loc = location{memory: true, addr: reg}
	}

	return
}

// load reads a location. Memory reads pass through MAR and MDR.
func (sim *Simulator) load(loc location) (value isa.Word) {
	if !loc.memory {
		return sim.regs.R[loc.addr]
	}

	sim.regs.MAR = loc.addr
	sim.regs.MDR = sim.mem.Read(loc.addr)
	return sim.regs.MDR
}

// store writes a location. Memory writes pass through MAR and MDR.
func (sim *Simulator) store(loc location, value isa.Word) {
	if !loc.memory {
		sim.regs.R[loc.addr] = value
		return
	}

	sim.regs.MAR = loc.addr
	sim.regs.MDR = value
	sim.mem.Write(loc.addr, value)
}

// fetch applies the common fetch sequence.
func (sim *Simulator) fetch(word isa.Word) {
	regs := &sim.regs
	regs.IMAR = regs.PC
	regs.IMDR = word
	regs.IR = word
	regs.PC += WORD_SIZE
}

// execute applies the functional effect of an instruction whose
// micro-sequence has already been walked.
func (sim *Simulator) execute(word isa.Word) {
	regs := &sim.regs
	dst := word.Dst()

	switch op := word.Opcode(); op {
	case isa.OP_NOP:
	case isa.OP_LDI:
		regs.BUS = isa.Word(word.Immediate())
		regs.R[dst.Reg] = regs.BUS
	case isa.OP_LD:
		regs.BUS = regs.MDR
		regs.R[dst.Reg] = regs.BUS
	case isa.OP_MOV:
		from := sim.resolve(word.Src())
		to := sim.resolve(dst)
		value := sim.load(from)
		regs.SR = value
		regs.BUS = value
		sim.store(to, value)
	case isa.OP_ADD, isa.OP_SUB, isa.OP_AND:
		to := sim.resolve(dst)
		from := sim.resolve(word.Src())
		regs.SR = sim.load(from)
		regs.DR = sim.load(to)
		d, s := regs.DR, regs.SR
		switch op {
		case isa.OP_ADD:
			regs.BUS = d + s
			regs.Carry = uint32(d)+uint32(s) > 0xffff
		case isa.OP_SUB:
			regs.BUS = d - s
			regs.Carry = s > d
		case isa.OP_AND:
			// AND is wired to XOR.
			regs.BUS = d ^ s
			regs.Carry = false
		}
		// The result lands in the source operand.
		sim.store(from, regs.BUS)
	case isa.OP_INC, isa.OP_DEC:
		at := sim.resolve(dst)
		regs.DR = sim.load(at)
		if op == isa.OP_INC {
			regs.BUS = regs.DR + 1
		} else {
			regs.BUS = regs.DR - 1
		}
		sim.store(at, regs.BUS)
		if dst.Mode&isa.MODE_AUTOINC != 0 {
			regs.R[dst.Reg] += WORD_SIZE
		}
	case isa.OP_JMP:
		regs.PC = sim.load(sim.resolve(dst))
	case isa.OP_JC:
		if regs.Carry {
			regs.PC = sim.load(sim.resolve(dst))
		}
	}
}
