// Package overlay loads user symbol scripts. A script is a Starlark file
// that may define two dicts:
//
//	registers = {0x40: "MYREG"}   # data address to register name
//	labels    = {0x0123: "main"}  # code address to label name
//
// Register entries extend or override the fixed special-function register
// map when operands are rendered; label entries rename generated labels at
// jump/call target addresses.
package overlay

import (
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Address ceilings for the two symbol tables.
const (
	MAX_REGISTER = 0xFF
	MAX_LABEL    = 0x7FF
)

// Symbols carries user-supplied names layered over the generated ones.
type Symbols struct {
	Registers map[uint16]string // Data address to register name.
	Labels    map[uint16]string // Code address to label name.
}

// Load reads and executes a symbol script from disk.
func Load(path string) (sym *Symbols, err error) {
	return Parse(path, nil)
}

// Parse executes a symbol script. src may be a string, a []byte, or an
// io.Reader; a nil src reads the file named by name.
func Parse(name string, src any) (sym *Symbols, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	dict, err := starlark.ExecFileOptions(&opts, &thread, name, src, nil)
	if err != nil {
		err = &ErrScript{Path: name, Err: err}
		return
	}

	sym = &Symbols{}
	sym.Registers, err = symbolTable(dict, "registers", MAX_REGISTER)
	if err != nil {
		err = &ErrScript{Path: name, Err: err}
		return
	}
	sym.Labels, err = symbolTable(dict, "labels", MAX_LABEL)
	if err != nil {
		err = &ErrScript{Path: name, Err: err}
		return
	}

	return
}

// symbolTable extracts one address-to-name dict from the script globals.
// A missing table is an empty table.
func symbolTable(globals starlark.StringDict, key string, limit uint16) (table map[uint16]string, err error) {
	table = map[uint16]string{}

	st_value, ok := globals[key]
	if !ok {
		return
	}
	st_dict, ok := st_value.(*starlark.Dict)
	if !ok {
		err = ErrSymbolTable(key)
		return
	}

	for _, item := range st_dict.Items() {
		st_int, ok := item[0].(starlark.Int)
		if !ok {
			err = ErrSymbolAddress(item[0].String())
			return
		}
		address, ok := st_int.Int64()
		if !ok || address < 0 || address > int64(limit) {
			err = ErrSymbolAddress(item[0].String())
			return
		}

		name, ok := starlark.AsString(item[1])
		if !ok || name == "" {
			err = ErrSymbolName(item[1].String())
			return
		}

		table[uint16(address)] = name
	}

	return
}
