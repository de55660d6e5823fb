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
	"fmt"
	"io"
	"strings"
)

const listingRow = "%04X %04X  %-8s   %-6s  %-8s"

func (l *SourceLine) listingOperands() string {
	if l.Directive == DIRECTIVE_DW {
		if len(l.Operands) == 0 {
			return ""
		}
		return l.Operands[0].Value
	}

	if l.IsDirective() {
		return l.Operands[0].Value
	}

	count := l.Instruction.NumOperands()

	if count <= 1 {
		return ""
	}

	if l.Instruction.IsLong() {
		count--
	}

	values := make([]string, 0, count)

	for _, operand := range l.Operands[:count] {
		values = append(values, operand.Value)
	}

	return strings.Join(values, " ")
}

// Listing renders the listing rows of an encoded line, one per word. Lines
// without words produce an empty string.
func (l *SourceLine) Listing() string {
	if len(l.Words) == 0 {
		return ""
	}

	label := " "
	if l.HasLabel() {
		label = l.Label.Value
		if len(label) > LISTING_LABEL_WIDTH {
			label = label[:LISTING_LABEL_WIDTH]
		}
	}

	result := fmt.Sprintf(
		listingRow,
		l.Address.Value,
		l.Words[0],
		label,
		l.Mnemonic.Value,
		l.listingOperands(),
	)

	if len(l.Words) > 1 {
		result += "\n" + fmt.Sprintf(
			listingRow,
			l.Address.Value+2,
			l.Words[1],
			" ",
			" ",
			l.Operands[len(l.Operands)-1].Value,
		)
	}

	return result
}

func (p *Program) WriteListing(w io.Writer) error {
	var b strings.Builder

	b.WriteString(LISTING_HEADER)

	for i := range p.Lines {
		if rows := p.Lines[i].Listing(); rows != "" {
			b.WriteString(rows)
			b.WriteString("\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// String renders the symbol table as a two column text report.
func (st *SymbolTable) String() string {
	var b strings.Builder

	if st.Len() == 0 {
		b.WriteString("Symbol table is empty\n")
		return b.String()
	}

	symbols := st.Symbols()
	width := 0
	truncated := false

	for _, symbol := range symbols {
		if len(symbol.Label) > width {
			width = len(symbol.Label)
		}
	}

	if width > SYMBOL_MAX_WIDTH {
		width = SYMBOL_MAX_WIDTH
		truncated = true
	} else if width < SYMBOL_MIN_WIDTH {
		width = SYMBOL_MIN_WIDTH
	}

	const title = "Label"

	left := (width - len(title)) / 2
	right := width - len(title) - left

	b.WriteString(strings.Repeat(" ", left) + title + strings.Repeat(" ", right))
	b.WriteString("  Address\n")
	b.WriteString(strings.Repeat("-", width))
	b.WriteString("  -------\n")

	for _, symbol := range symbols {
		label := symbol.Label
		if len(label) > SYMBOL_MAX_WIDTH {
			label = label[:SYMBOL_MAX_WIDTH]
		}

		fmt.Fprintf(&b, "%-*s   $%04X\n", width, label, symbol.Addr)
	}

	if truncated {
		b.WriteString("Only 40 characters of long labels are shown. \n")
		b.WriteString("Remaining characters are still significant.\n")
	}

	b.WriteString("\n")
	return b.String()
}

func (st *SymbolTable) WriteText(w io.Writer) error {
	_, err := io.WriteString(w, st.String())
	return err
}
