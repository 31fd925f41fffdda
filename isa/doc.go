// Package isa defines the 16-bit instruction set of the teaching CPU.
//
// Every instruction is a single 16-bit word. The top four bits select the
// opcode, and the opcode's class fixes where the register, addressing-mode
// and immediate fields live in the remaining twelve bits. The instruction set
// table maps each mnemonic to a 16 character template of literal bits and
// placeholder runs; Encode substitutes tokenized operands into the template.
//
// Two quirks of the instruction table are kept as-is: NEC is defined twice and
// the later definition (identical to JC) wins, and AND is executed as XOR by the
// cpu package.
package isa
