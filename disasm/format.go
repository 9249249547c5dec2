package disasm

import (
	"fmt"
	"strings"

	"github.com/agatti/disholtek/isa"
)

// formatInstruction renders one listing line: address and raw word in hex,
// then the mnemonic and operands per the instruction format. A label
// defined at this address is emitted on its own line first.
func (dis *Disassembler) formatInstruction(sb *strings.Builder, inst *isa.Instruction) {
	if label, ok := dis.labels[inst.Address]; ok {
		fmt.Fprintf(sb, "\n%s:\n\n", label)
	}

	fmt.Fprintf(sb, "%04X\t%04X\t", inst.Address, inst.Word)

	switch inst.Format {
	case isa.FORMAT_SPECIAL:
		sb.WriteString(inst.Name)
	case isa.FORMAT_M2A:
		fmt.Fprintf(sb, "%s\t%s, A", inst.Name, dis.memoryName(inst.First))
	case isa.FORMAT_A2M:
		fmt.Fprintf(sb, "%s\tA, %s", inst.Name, dis.memoryName(inst.First))
	case isa.FORMAT_LITERAL:
		fmt.Fprintf(sb, "%s\tA, 0%02Xh", inst.Name, inst.First)
	case isa.FORMAT_ADDRESS:
		target := fmt.Sprintf("0%04Xh", inst.First)
		if dis.Labels {
			target = dis.labels[inst.First]
		}
		fmt.Fprintf(sb, "%s\t%s", inst.Name, target)
	case isa.FORMAT_BIT:
		fmt.Fprintf(sb, "%s\t%s.%d", inst.Name, dis.memoryName(inst.First), inst.Second)
	case isa.FORMAT_MEMORY:
		fmt.Fprintf(sb, "%s\t%s", inst.Name, dis.memoryName(inst.First))
	default:
		fmt.Fprintf(sb, "; (%016b) Invalid opcode", inst.Word)
	}

	sb.WriteByte('\n')
}

// memoryName resolves a data address for rendering: the user overlay wins
// over the fixed register map, and unnamed locations render numerically.
func (dis *Disassembler) memoryName(location uint16) string {
	if dis.Symbols != nil {
		if name, ok := dis.Symbols.Registers[location]; ok {
			return name
		}
	}
	if name, ok := isa.MemoryName(location); ok {
		return name
	}

	return fmt.Sprintf("[0%02Xh]", location)
}
