// Package asm turns assembly source text into encoded programs.
//
// Source is line oriented. A ';' starts a comment, blank lines are skipped,
// and the text is case folded. Inside $(...) only equate names are folded. Each statement is a
// mnemonic followed by comma separated operands:
//
//	.equ PTR R3
//	.equ COUNT 0A
//	    LDI PTR, 20       ; pointer
//	    LDI R0, $(COUNT * 2)
//	    INC (PTR)+
//
// Equate values are hexadecimal, like the immediate operands they usually
// stand for. $(...) evaluates a Starlark expression with every equate
// predefined as an integer, and substitutes the result as hex. Starlark
// keywords such as 'if' and 'else' keep their case.
package asm
