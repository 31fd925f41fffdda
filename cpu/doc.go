// Package cpu implements the execution engine of the microprogrammed CPU.
//
// The machine model is a RegisterFile (eight general purpose registers, the
// program counter, the internal bus and the SR, DR, MAR, MDR, IMAR, IMDR and IR
// latches, plus a carry flag) and a sparse word addressed data Memory. Programs
// live in a separate instruction memory starting at PC_BASE.
//
// Each instruction runs in two halves. First the control store is walked from
// the fetch sequence, through the PLA, to the end of the instruction's
// micro-sequence; the descriptions of the visited micro-orders form the trace.
// Only when the walk succeeds are the architectural effects applied, so a
// failed instruction leaves the machine untouched.
package cpu
