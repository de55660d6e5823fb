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
	"sort"
)

type Symbol struct {
	Label string
	Addr  uint16
	Line  int
}

// SymbolTable maps labels to addresses for a single assembly run.
type SymbolTable struct {
	symbols map[string]Symbol
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{symbols: make(map[string]Symbol)}
}

// Define binds label to addr. A label may only be defined once; pos locates
// the offending definition in the returned error.
func (st *SymbolTable) Define(label string, addr uint16, pos Cursor) error {
	if prev, exists := st.symbols[label]; exists {
		return &DuplicateLabelError{pos, label, prev.Line}
	}

	st.symbols[label] = Symbol{Label: label, Addr: addr, Line: pos.Line}
	return nil
}

func (st *SymbolTable) Lookup(label string) (uint16, bool) {
	symbol, exists := st.symbols[label]
	return symbol.Addr, exists
}

// Resolve is Lookup for the encoder, reporting a missing label at pos.
func (st *SymbolTable) Resolve(label string, pos Cursor) (uint16, error) {
	if addr, exists := st.Lookup(label); exists {
		return addr, nil
	}

	return 0, &UndefinedLabelError{pos, label}
}

func (st *SymbolTable) Len() int {
	return len(st.symbols)
}

// Symbols returns every definition sorted by label.
func (st *SymbolTable) Symbols() []Symbol {
	result := make([]Symbol, 0, len(st.symbols))

	for _, symbol := range st.symbols {
		result = append(result, symbol)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Label < result[j].Label
	})

	return result
}

func (st *SymbolTable) Reset() {
	st.symbols = make(map[string]Symbol)
}
