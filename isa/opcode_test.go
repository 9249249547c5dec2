package isa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpcodeTables_SelfConsistent(t *testing.T) {
	assert := assert.New(t)

	gated := []struct {
		mask, mark, list uint16
		ops              map[uint16]opdef
	}{
		{SPECIAL_MASK, SPECIAL_MARK, SPECIAL_LIST, specialOpcodes},
		{BIT_MASK, BIT_MARK, BIT_LIST, bitOpcodes},
		{ADDRESS_MASK, ADDRESS_MARK, ADDRESS_LIST, addressOpcodes},
		{LITERAL_MASK, LITERAL_MARK, LITERAL_LIST, literalOpcodes},
		{M2A_MASK, M2A_MARK, M2A_LIST, m2aOpcodes},
	}

	for _, group := range gated {
		for key, op := range group.ops {
			// Every pattern must be reachable: selected by its own
			// group's mark and fully contained in the entry selector.
			assert.Equal(group.mark, key&group.mask)
			assert.Equal(key, key&group.list)
			assert.NotEmpty(op.name)
			assert.NotEqual(FORMAT_INVALID, op.format)
		}
	}

	for key, op := range otherOpcodes {
		assert.Equal(key, key&OTHER_MASK)
		assert.NotEmpty(op.name)
		assert.Contains([]Format{FORMAT_M2A, FORMAT_A2M, FORMAT_MEMORY}, op.format)
	}
}

func TestOpcodeTables_Sizes(t *testing.T) {
	assert := assert.New(t)

	assert.Len(specialOpcodes, 6)
	assert.Len(bitOpcodes, 4)
	assert.Len(addressOpcodes, 2)
	assert.Len(otherOpcodes, 43)
	assert.Len(literalOpcodes, 7)
	assert.Len(m2aOpcodes, 1)
}
