package disasm

import (
	"fmt"

	"github.com/agatti/disholtek/isa"
)

// assignLabels collects every distinct jump/call target into a label
// table. Targets are numbered in the order they are first seen scanning
// from address 0, so the mapping is deterministic for a given program.
func assignLabels(instructions []isa.Instruction) (labels map[uint16]string) {
	labels = map[uint16]string{}

	counter := 0
	for n := range instructions {
		inst := &instructions[n]
		if inst.Format != isa.FORMAT_ADDRESS {
			continue
		}
		if _, ok := labels[inst.First]; ok {
			continue
		}

		labels[inst.First] = fmt.Sprintf("label%04X", counter)
		counter++
	}

	return
}
