package isa

// Special-function register names for the data address space. Gaps are
// reserved locations without a documented name.
var memoryMap = [0x60]string{
	// 00H
	"IAR0", "MP0", "IAR1", "MP1", "BP", "ACC", "PCL", "TBLP",
	"TBLH", "TBHP", "STATUS", "SMOD", "CTRL", "INTEG", "INTC0", "INTC1",
	// 10H
	"", "", "", "LVRC", "PA", "PAC", "PAPU", "PAWU",
	"", "", "WDTC", "TBC", "TMR", "TMRC", "EEA", "EED",
	// 20H
	"PB", "PBC", "PBPU", "I2CTOC", "SIMC0", "SIMC1", "SIMD", "SIMC2",
	"", "", "", "", "", "", "", "",
	// 30H
	"", "", "", "", "", "", "", "",
	"", "", "", "", "", "", "", "",
	// 40H
	"", "", "", "", "TKTMR", "TKC0", "TK16DL", "TK16DH",
	"TKC1", "TKM016DL", "TKM016DH", "TKM0ROL", "TKM0ROH", "TKM0C0", "TKM0C1", "TKM116DL",
	// 50H
	"TKM116DH", "TKM1ROL", "TKM1ROH", "TKM1C0", "TKM1C1", "", "", "",
	"", "", "", "", "", "", "", "",
}

// MemoryName resolves a data address to its special-function register name.
// Reserved and out-of-map locations have no name.
func MemoryName(location uint16) (name string, ok bool) {
	if int(location) < len(memoryMap) {
		name = memoryMap[location]
	}
	ok = name != ""

	return
}
