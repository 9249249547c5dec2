// Copyright 2016, Alessandro Gatti

package isa

import (
	"fmt"
)

// Code address space limits. One 16-bit word per address.
const (
	CODE_ADDRESS_START = uint16(0x0000)
	CODE_ADDRESS_END   = uint16(0x07FF)
)

// Instruction is the decoded view of one code word.
type Instruction struct {
	Address uint16 // Code address the word was fetched from.
	Word    uint16 // Raw instruction word.
	Format  Format // Operand layout category.
	Name    string // Mnemonic. Empty only for FORMAT_INVALID.
	First   uint16 // First operand. Meaning depends on Format.
	Second  uint16 // Bit index. Only meaningful for FORMAT_BIT.
}

// DataAddress extracts the memory operand from an instruction word: a 7-bit
// offset plus a high-bank flag in bit 14.
func DataAddress(word uint16) (address uint16) {
	address = word & 0x7F
	if word&(1<<14) != 0 {
		address += 0x80
	}

	return
}

// BitIndex extracts the 3-bit bit-operand field from an instruction word.
func BitIndex(word uint16) uint16 {
	return (word >> 7) & 0x7
}

// newInstruction builds an Instruction for one decoded opcode pattern. The
// opcode tables are fixed, so a pattern with a bad format or a missing
// mnemonic is a corrupt table and a programming error.
func newInstruction(address, word uint16, op opdef) (inst Instruction) {
	if address > CODE_ADDRESS_END {
		panic(fmt.Sprintf("isa: address 0x%04X out of range", address))
	}
	if op.format != FORMAT_INVALID && op.name == "" {
		panic(fmt.Sprintf("isa: opcode 0x%04X has no mnemonic", word))
	}

	inst = Instruction{
		Address: address,
		Word:    word,
		Format:  op.format,
		Name:    op.name,
	}

	switch op.format {
	case FORMAT_SPECIAL, FORMAT_INVALID:
	case FORMAT_M2A, FORMAT_A2M, FORMAT_MEMORY:
		inst.First = DataAddress(word)
	case FORMAT_LITERAL:
		inst.First = word & 0xFF
	case FORMAT_ADDRESS:
		inst.First = word & 0x7FF
	case FORMAT_BIT:
		inst.First = DataAddress(word)
		inst.Second = BitIndex(word)
	default:
		panic(fmt.Sprintf("isa: opcode 0x%04X has format %v", word, op.format))
	}

	return
}

// Decode classifies one code word. The opcode groups are matched in
// priority order; their selector masks overlap, so the order is load
// bearing. A word that matches no group decodes to FORMAT_INVALID, never
// an error.
func Decode(address, word uint16) Instruction {
	if word&SPECIAL_MASK == SPECIAL_MARK {
		if op, ok := specialOpcodes[word&SPECIAL_LIST]; ok {
			return newInstruction(address, word, op)
		}
	}

	if word&BIT_MASK == BIT_MARK {
		if op, ok := bitOpcodes[word&BIT_LIST]; ok {
			return newInstruction(address, word, op)
		}
	}

	if word&ADDRESS_MASK == ADDRESS_MARK {
		if op, ok := addressOpcodes[word&ADDRESS_LIST]; ok {
			return newInstruction(address, word, op)
		}
	}

	if op, ok := otherOpcodes[word&OTHER_MASK]; ok {
		return newInstruction(address, word, op)
	}

	if word&LITERAL_MASK == LITERAL_MARK {
		if op, ok := literalOpcodes[word&LITERAL_LIST]; ok {
			return newInstruction(address, word, op)
		}
	}

	if word&M2A_MASK == M2A_MARK {
		if op, ok := m2aOpcodes[word&M2A_LIST]; ok {
			return newInstruction(address, word, op)
		}
	}

	return newInstruction(address, word, opdef{format: FORMAT_INVALID})
}
