// Package microcode holds the control store and the PLA decoder of the CPU.
//
// The control store is a table of micro-orders, addressed by three digit
// octal codes. Each raw entry is a 29 symbol vector: 24 control signal bits,
// a 2 bit test field, and a 3 digit next address. The table is parsed once at
// start-up into typed Entry records.
//
// Every instruction begins with the common fetch sequence at FETCH. Its last
// entry defers to Decode, the PLA, which maps the instruction word's opcode and
// addressing modes to the start of the instruction specific sequence.
package microcode
