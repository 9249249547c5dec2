// Package isa implements the Holtek BS83B08A-3 instruction set tables and
// the instruction decoder.
//
// Every instruction occupies one 16-bit word. A word is classified by
// matching it against a fixed sequence of opcode groups, each described by a
// selector mask/mark pair and a per-group table of opcode patterns. The
// groups are tried in a fixed priority order because their selector masks
// overlap; a word that matches no group decodes to an explicit invalid
// instruction rather than an error.
package isa
