package overlay

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	assert := assert.New(t)

	script := `
registers = {0x10: "FOO", 0x40: "MYREG"}
labels = {0x0000: "reset", 0x0123: "main"}
`
	sym, err := Parse("test.sym", script)
	assert.NoError(err)
	assert.Equal(map[uint16]string{0x10: "FOO", 0x40: "MYREG"}, sym.Registers)
	assert.Equal(map[uint16]string{0x0000: "reset", 0x0123: "main"}, sym.Labels)
}

func TestParse_Empty(t *testing.T) {
	assert := assert.New(t)

	sym, err := Parse("test.sym", "")
	assert.NoError(err)
	assert.Empty(sym.Registers)
	assert.Empty(sym.Labels)
}

func TestParse_PartialTables(t *testing.T) {
	assert := assert.New(t)

	sym, err := Parse("test.sym", `labels = {1: "start"}`)
	assert.NoError(err)
	assert.Empty(sym.Registers)
	assert.Equal(map[uint16]string{1: "start"}, sym.Labels)
}

func TestParse_Computed(t *testing.T) {
	assert := assert.New(t)

	// A script is ordinary Starlark; tables may be built up.
	script := `
base = 0x40
registers = {base + n: "TK%d" % n for n in range(4)}
`
	sym, err := Parse("test.sym", script)
	assert.NoError(err)
	assert.Equal(map[uint16]string{
		0x40: "TK0", 0x41: "TK1", 0x42: "TK2", 0x43: "TK3",
	}, sym.Registers)
}

func TestParse_NotADict(t *testing.T) {
	assert := assert.New(t)

	_, err := Parse("test.sym", `registers = [1, 2]`)
	assert.ErrorIs(err, ErrSymbolTable("registers"))
}

func TestParse_BadAddress(t *testing.T) {
	assert := assert.New(t)

	_, err := Parse("test.sym", `registers = {"IAR0": "FOO"}`)
	assert.ErrorAs(err, new(ErrSymbolAddress))

	// Register addresses are 8-bit, label addresses 11-bit.
	_, err = Parse("test.sym", `registers = {0x100: "FOO"}`)
	assert.ErrorAs(err, new(ErrSymbolAddress))

	_, err = Parse("test.sym", `labels = {0x800: "foo"}`)
	assert.ErrorAs(err, new(ErrSymbolAddress))

	_, err = Parse("test.sym", `labels = {-1: "foo"}`)
	assert.ErrorAs(err, new(ErrSymbolAddress))
}

func TestParse_BadName(t *testing.T) {
	assert := assert.New(t)

	_, err := Parse("test.sym", `registers = {0x10: 42}`)
	assert.ErrorAs(err, new(ErrSymbolName))

	_, err = Parse("test.sym", `registers = {0x10: ""}`)
	assert.ErrorAs(err, new(ErrSymbolName))
}

func TestParse_SyntaxError(t *testing.T) {
	assert := assert.New(t)

	_, err := Parse("test.sym", `registers = {`)
	assert.Error(err)
	assert.Contains(err.Error(), "test.sym")
}

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "symbols.sym")
	assert.NoError(os.WriteFile(path, []byte(`labels = {0: "reset"}`), 0o644))

	sym, err := Load(path)
	assert.NoError(err)
	assert.Equal(map[uint16]string{0: "reset"}, sym.Labels)
}

func TestLoad_Missing(t *testing.T) {
	assert := assert.New(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.sym"))
	assert.Error(err)
}
