// Copyright 2016, Alessandro Gatti

// Package disasm turns a loaded code image into an assembly listing.
//
// Disassembly is a bounded batch computation: every word is decoded first,
// then jump/call targets are collected into a label table, then each
// instruction is rendered as one listing line. Labels may point anywhere
// in the image, so the label pass only runs once the whole image has been
// decoded.
package disasm

import (
	"log"
	"strings"

	"github.com/agatti/disholtek/isa"
	"github.com/agatti/disholtek/overlay"
	"github.com/agatti/disholtek/rom"
)

// Disassembler holds the decoded program and the rendering configuration.
type Disassembler struct {
	Labels  bool             // Generate labels for jump/call targets.
	Verbose bool             // Verbosely log disassembly statistics.
	Symbols *overlay.Symbols // Optional user symbol overlay.

	instructions []isa.Instruction
	labels       map[uint16]string
}

// NewDisassembler creates a disassembler with label generation enabled.
func NewDisassembler() (dis *Disassembler) {
	dis = &Disassembler{
		Labels: true,
	}

	return
}

// Disassemble decodes the whole image and returns its listing, one line
// per instruction in ascending address order.
func (dis *Disassembler) Disassemble(img *rom.Image) string {
	dis.instructions = dis.instructions[:0]
	for address, word := range img.Words() {
		dis.instructions = append(dis.instructions, isa.Decode(address, word))
	}

	dis.labels = map[uint16]string{}
	if dis.Labels {
		dis.labels = assignLabels(dis.instructions)
		dis.renameLabels()
	}

	if dis.Verbose {
		invalid := 0
		for n := range dis.instructions {
			if dis.instructions[n].Format == isa.FORMAT_INVALID {
				invalid++
			}
		}
		log.Printf("disasm: %v words, %v labels, %v invalid opcodes",
			len(dis.instructions), len(dis.labels), invalid)
	}

	var sb strings.Builder
	for n := range dis.instructions {
		dis.formatInstruction(&sb, &dis.instructions[n])
	}

	return sb.String()
}

// renameLabels replaces generated label names with user overlay names.
// Only addresses that are actual jump/call targets are renamed; an overlay
// label at any other address would never be referenced.
func (dis *Disassembler) renameLabels() {
	if dis.Symbols == nil {
		return
	}

	for address, name := range dis.Symbols.Labels {
		if _, ok := dis.labels[address]; ok {
			dis.labels[address] = name
		}
	}
}
