// Copyright (C) 2021  Antonio Lassandro

// This program is free software: you can redistribute it and/or modify it
// under the terms of the GNU General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
// FITNESS FOR A PARTICULAR PURPOSE.  See the GNU General Public License for
// more details.

// You should have received a copy of the GNU General Public License along
// with this program.  If not, see <http://www.gnu.org/licenses/>.

package isa_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lassandro/risc240/pkg/isa"
)

func TestLookup(t *testing.T) {
	for _, mnemonic := range []string{"ADD", "add", "Brnz", "stop"} {
		t.Run(mnemonic, func(t *testing.T) {
			assert.True(t, isa.Exists(mnemonic))

			d, err := isa.Lookup(mnemonic)
			require.NoError(t, err)
			assert.NotNil(t, d)
		})
	}

	_, err := isa.Lookup("JMP")
	assert.True(t, errors.Is(err, isa.ErrUnknownMnemonic))
	assert.False(t, isa.Exists("JMP"))
	assert.False(t, isa.Exists(".ORG"))
}

func TestCatalog(t *testing.T) {
	mnemonics := isa.Mnemonics()
	assert.Len(t, mnemonics, 26)
	assert.IsIncreasing(t, mnemonics)

	for _, mnemonic := range mnemonics {
		d, err := isa.Lookup(mnemonic)
		require.NoError(t, err)

		assert.Equal(t, mnemonic, d.Mnemonic)
		assert.Less(t, d.Class, uint16(1<<7), mnemonic)
		assert.LessOrEqual(t, d.NumOperands(), 3, mnemonic)

		for _, field := range d.Fields {
			if field != isa.FIELD_ZERO {
				index := int(field - isa.FIELD_OP1)
				require.Less(t, index, d.NumOperands(), mnemonic)
				assert.Equal(t, isa.OPERAND_REGISTER, d.OperandKind(index), mnemonic)
			}
		}

		if d.IsLong() {
			assert.Equal(t, uint16(4), d.Size(), mnemonic)
			index := d.SecondWordOperand()
			require.GreaterOrEqual(t, index, 0, mnemonic)
			assert.Equal(t, isa.OPERAND_NUMBER, d.OperandKind(index), mnemonic)
		} else {
			assert.Equal(t, uint16(2), d.Size(), mnemonic)
			assert.Equal(t, -1, d.SecondWordOperand(), mnemonic)
		}
	}
}

func TestDescriptors(t *testing.T) {
	tests := []struct {
		Mnemonic string
		Format   isa.Format
		Operands int
		Class    uint16
	}{
		{"ADD", isa.FORMAT_SHORT, 3, 0b0000000},
		{"ADDI", isa.FORMAT_LONG, 3, 0b0011000},
		{"LI", isa.FORMAT_LONG, 2, 0b0011000},
		{"MV", isa.FORMAT_SHORT, 2, 0b0010000},
		{"SW", isa.FORMAT_LONG, 3, 0b0011100},
		{"BRA", isa.FORMAT_LONG, 1, 0b1111100},
		{"STOP", isa.FORMAT_SHORT, 0, 0b1111111},
	}

	for _, test := range tests {
		t.Run(test.Mnemonic, func(t *testing.T) {
			d, err := isa.Lookup(test.Mnemonic)
			require.NoError(t, err)

			assert.Equal(t, test.Format, d.Format)
			assert.Equal(t, test.Operands, d.NumOperands())
			assert.Equal(t, test.Class, d.Class)
		})
	}

	sw, _ := isa.Lookup("SW")
	assert.Equal(
		t,
		[3]isa.FieldSource{isa.FIELD_ZERO, isa.FIELD_OP1, isa.FIELD_OP2},
		sw.Fields,
	)
	assert.Equal(t, 2, sw.SecondWordOperand())

	li, _ := isa.Lookup("LI")
	assert.Equal(t, 1, li.SecondWordOperand())
}
