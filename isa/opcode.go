// Copyright 2016, Alessandro Gatti

package isa

// Format is the operand layout category of a decoded instruction.
type Format int

//go:generate go tool stringer -linecomment -type=Format
const (
	FORMAT_SPECIAL = Format(0) // special
	FORMAT_M2A     = Format(1) // m2a
	FORMAT_A2M     = Format(2) // a2m
	FORMAT_LITERAL = Format(3) // literal
	FORMAT_ADDRESS = Format(4) // address
	FORMAT_BIT     = Format(5) // bit
	FORMAT_MEMORY  = Format(6) // memory
	FORMAT_INVALID = Format(7) // invalid
)

// opdef is one opcode pattern: the operand format and the mnemonic.
type opdef struct {
	format Format
	name   string
}

// Control instructions with no operands.
const (
	SPECIAL_MASK = uint16(0xFFF8)
	SPECIAL_MARK = uint16(0x0000)
	SPECIAL_LIST = uint16(0x0007)
)

var specialOpcodes = map[uint16]opdef{
	0x0000: {FORMAT_SPECIAL, "NOP"},
	0x0001: {FORMAT_SPECIAL, "CLR WDT1"},
	0x0002: {FORMAT_SPECIAL, "HALT"},
	0x0003: {FORMAT_SPECIAL, "RET"},
	0x0004: {FORMAT_SPECIAL, "RETI"},
	0x0005: {FORMAT_SPECIAL, "CLR WDT2"},
}

// Single-bit set/clear/test instructions. Bit 14 is left out of the
// selector mask, it carries the memory operand's high-bank flag.
const (
	BIT_MASK = uint16(0xB000)
	BIT_MARK = uint16(0x3000)
	BIT_LIST = uint16(0x3C00)
)

var bitOpcodes = map[uint16]opdef{
	0x3000: {FORMAT_BIT, "SET"},
	0x3400: {FORMAT_BIT, "CLR"},
	0x3800: {FORMAT_BIT, "SNZ"},
	0x3C00: {FORMAT_BIT, "SZ"},
}

// Jump and call instructions carrying an 11-bit code address.
const (
	ADDRESS_MASK = uint16(0xF000)
	ADDRESS_MARK = uint16(0x2000)
	ADDRESS_LIST = uint16(0xF800)
)

var addressOpcodes = map[uint16]opdef{
	0x2000: {FORMAT_ADDRESS, "CALL"},
	0x2800: {FORMAT_ADDRESS, "JMP"},
}

// ALU and memory-transfer instructions with a fixed opcode field. Unlike
// the other groups there is no selector mark; the masked word is looked up
// directly.
const OTHER_MASK = uint16(0x9F80)

var otherOpcodes = map[uint16]opdef{
	0x0080: {FORMAT_M2A, "MOV"},
	0x0100: {FORMAT_MEMORY, "CPLA"},
	0x0180: {FORMAT_MEMORY, "CPL"},
	0x0200: {FORMAT_A2M, "SUB"},
	0x0280: {FORMAT_A2M, "SUBM"},
	0x0300: {FORMAT_A2M, "ADD"},
	0x0380: {FORMAT_A2M, "ADDM"},
	0x0400: {FORMAT_A2M, "XOR"},
	0x0480: {FORMAT_A2M, "XORM"},
	0x0500: {FORMAT_A2M, "OR"},
	0x0580: {FORMAT_A2M, "ORM"},
	0x0600: {FORMAT_A2M, "AND"},
	0x0680: {FORMAT_A2M, "ANDM"},
	0x0700: {FORMAT_A2M, "MOV"},
	0x1000: {FORMAT_MEMORY, "SZA"},
	0x1080: {FORMAT_MEMORY, "SZ"},
	0x1100: {FORMAT_MEMORY, "SWAPA"},
	0x1180: {FORMAT_MEMORY, "SWAP"},
	0x1200: {FORMAT_A2M, "SBC"},
	0x1280: {FORMAT_A2M, "SBCM"},
	0x1300: {FORMAT_A2M, "ADC"},
	0x1380: {FORMAT_A2M, "ADCM"},
	0x1400: {FORMAT_MEMORY, "INCA"},
	0x1480: {FORMAT_MEMORY, "INC"},
	0x1500: {FORMAT_MEMORY, "DECA"},
	0x1580: {FORMAT_MEMORY, "DEC"},
	0x1600: {FORMAT_MEMORY, "SIZA"},
	0x1680: {FORMAT_MEMORY, "SIZ"},
	0x1700: {FORMAT_MEMORY, "SDZA"},
	0x1780: {FORMAT_MEMORY, "SDZ"},
	0x1800: {FORMAT_MEMORY, "RLA"},
	0x1880: {FORMAT_MEMORY, "RL"},
	0x1900: {FORMAT_MEMORY, "RRA"},
	0x1980: {FORMAT_MEMORY, "RR"},
	0x1A00: {FORMAT_MEMORY, "RLCA"},
	0x1A80: {FORMAT_MEMORY, "RLC"},
	0x1B00: {FORMAT_MEMORY, "RRCA"},
	0x1B80: {FORMAT_MEMORY, "RRC"},
	0x1D00: {FORMAT_MEMORY, "TABRDC"},
	0x1D80: {FORMAT_MEMORY, "TABRDL"},
	0x1E80: {FORMAT_MEMORY, "DAA"},
	0x1F00: {FORMAT_MEMORY, "CLR"},
	0x1F80: {FORMAT_MEMORY, "SET"},
}

// Accumulator instructions with an 8-bit immediate.
const (
	LITERAL_MASK = uint16(0x8800)
	LITERAL_MARK = uint16(0x0800)
	LITERAL_LIST = uint16(0x0F00)
)

var literalOpcodes = map[uint16]opdef{
	0x0900: {FORMAT_LITERAL, "RET"},
	0x0A00: {FORMAT_LITERAL, "SUB"},
	0x0B00: {FORMAT_LITERAL, "ADD"},
	0x0C00: {FORMAT_LITERAL, "XOR"},
	0x0D00: {FORMAT_LITERAL, "OR"},
	0x0E00: {FORMAT_LITERAL, "AND"},
	0x0F00: {FORMAT_LITERAL, "MOV"},
}

// Memory-to-accumulator move. The opcode group table already carries this
// pattern, so the group matcher reaches it first; this entry is kept to
// mirror the documented encoding sheet.
const (
	M2A_MASK = uint16(0x9F80)
	M2A_MARK = uint16(0x0080)
	M2A_LIST = uint16(0x1F80)
)

var m2aOpcodes = map[uint16]opdef{
	0x0080: {FORMAT_M2A, "MOV"},
}
