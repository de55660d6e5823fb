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
package assembler

import (
	"github.com/lassandro/risc240/pkg/encoding"
)

// Next returns the address of the line following line, which must already
// have been validated at a.
func (a Address) Next(line *SourceLine) Address {
	if line.Directive == DIRECTIVE_ORG {
		value, _ := encoding.DecodeHex(line.Operands[0].Value)
		return Address{Value: uint32(value), Defined: true}
	}

	if !a.Defined {
		return a
	}

	return Address{Value: a.Value + line.Size(), Defined: true}
}
