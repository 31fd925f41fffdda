package microcode

import (
	"strings"
)

// Signal is a set of control lines asserted by one micro-order.
type Signal uint32

// SIGNAL_WIDTH is the number of control lines in a micro-order.
const SIGNAL_WIDTH = 24

// Control lines, in vector order (most significant first).
const (
	SIG_PC_OUT   = Signal(1 << (SIGNAL_WIDTH - 1 - iota)) // PCout
	SIG_PC_IN                                             // PCin
	SIG_ADD_WORD                                          // +2
	SIG_IMAR_IN                                           // IMARin
	SIG_IREAD                                             // IREAD
	SIG_IMDR_OUT                                          // IMDRout
	SIG_IR_IN                                             // IRin
	SIG_IMM_OUT                                           // IMMout
	SIG_REG_OUT                                           // Rout
	SIG_REG_IN                                            // Rin
	SIG_SEL_DST                                           // Rd
	SIG_SEL_SRC                                           // Rs
	SIG_SR_IN                                             // SRin
	SIG_SR_OUT                                            // SRout
	SIG_DR_IN                                             // DRin
	SIG_DR_OUT                                            // DRout
	SIG_MAR_IN                                            // MARin
	SIG_MDR_IN                                            // MDRin
	SIG_MDR_OUT                                           // MDRout
	SIG_READ                                              // READ
	SIG_WRITE                                             // WRITE
	SIG_ALU                                               // ALU
	SIG_INDEX                                             // +R0
	SIG_COND                                              // ifC
)

var signalNames = [SIGNAL_WIDTH]string{
	"PCout", "PCin", "+2", "IMARin", "IREAD", "IMDRout", "IRin", "IMMout",
	"Rout", "Rin", "Rd", "Rs", "SRin", "SRout", "DRin", "DRout",
	"MARin", "MDRin", "MDRout", "READ", "WRITE", "ALU", "+R0", "ifC",
}

// Has returns true if all of the lines in 'lines' are asserted.
func (sig Signal) Has(lines Signal) bool {
	return sig&lines == lines
}

// String lists the asserted lines, in vector order.
func (sig Signal) String() string {
	var names []string
	for n, name := range signalNames {
		if sig.Has(1 << (SIGNAL_WIDTH - 1 - n)) {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, " ")
}
