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

const (
	DIRECTIVE_INVALID DirectiveType = iota
	DIRECTIVE_ORG
	DIRECTIVE_EQU
	DIRECTIVE_DW
)

// MAX_ERRORS is the number of semantic errors after which assembly stops.
const MAX_ERRORS = 5

// ADDRESS_LIMIT is one past the last addressable byte.
const ADDRESS_LIMIT = 0x10000

const (
	LISTING_LABEL_WIDTH = 8
	SYMBOL_MIN_WIDTH    = 7
	SYMBOL_MAX_WIDTH    = 40
)

const LISTING_HEADER = "addr data   label     opcode  operands\n" +
	"---- ----  --------   ------  --------\n"
