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

package encoding_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lassandro/risc240/pkg/encoding"
)

func TestDecodeHex(t *testing.T) {
	good := map[string]uint16{
		"$0":    0x0000,
		"$00":   0x0000,
		"$1987": 0x1987,
		"$FFFF": 0xFFFF,
		"$A":    0x000A,
	}

	for input, want := range good {
		have, err := encoding.DecodeHex(input)
		assert.NoError(t, err, input)
		assert.Equal(t, want, have, input)
	}

	for _, input := range []string{"", "$", "1987", "0x1987", "$12345", "$GG", "$ff", "LABEL"} {
		_, err := encoding.DecodeHex(input)
		assert.ErrorIs(t, err, encoding.ErrInvalidHex, input)
	}
}

func TestDecodeRegister(t *testing.T) {
	for n := 0; n < 8; n++ {
		reg, ok := encoding.DecodeRegister(fmt.Sprintf("R%d", n))
		assert.True(t, ok)
		assert.Equal(t, uint16(n), reg)
	}

	for _, input := range []string{"R8", "R9", "R10", "R", "r1", "RR1", "$1", "X1"} {
		_, ok := encoding.DecodeRegister(input)
		assert.False(t, ok, input)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		Input    string
		Label    bool
		Number   bool
		Register bool
	}{
		{"LOOP", true, true, false},
		{"L_1", true, true, false},
		{"_", true, true, false},
		{"R3", true, false, true},
		{"R8", true, true, false},
		{"$1000", false, true, false},
		{"%EAX", false, false, false},
		{"A-B", false, false, false},
	}

	for _, test := range tests {
		assert.Equal(t, test.Label, encoding.IsLabel(test.Input), test.Input)
		assert.Equal(t, test.Number, encoding.IsNumber(test.Input), test.Input)
		assert.Equal(t, test.Register, encoding.IsRegister(test.Input), test.Input)
	}
}
