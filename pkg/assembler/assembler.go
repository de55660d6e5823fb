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
	"bufio"
	"io"

	"github.com/golang/glog"
)

const maxLineSize = 1024 * 1024

// Program is the state of one assembly run.
type Program struct {
	Lines   []SourceLine
	Symbols *SymbolTable
	Memory  []MemoryLocation
}

// FirstPass reads the whole source, assigning addresses and collecting the
// symbol table. Semantic errors are accumulated until MAX_ERRORS is reached;
// a line that can't be decomposed stops the pass and is returned as fatal.
func FirstPass(input io.Reader) (program *Program, errs []error, fatal error) {
	var addr Address

	program = &Program{Symbols: NewSymbolTable()}

	scanner := bufio.NewScanner(input)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)

	for number := 1; scanner.Scan(); number++ {
		line, err := ParseLine(scanner.Text(), number, addr, program.Symbols)

		if err != nil {
			if structural, ok := err.(*StructuralParseError); ok {
				return program, errs, structural
			}

			errs = append(errs, err)
			program.Lines = append(program.Lines, line)

			if len(errs) >= MAX_ERRORS {
				glog.V(1).Infof("first pass: stopping at line %d, too many errors", number)
				return program, errs, nil
			}

			continue
		}

		program.Lines = append(program.Lines, line)
		addr = addr.Next(&line)
	}

	if err := scanner.Err(); err != nil {
		return program, errs, err
	}

	glog.V(1).Infof(
		"first pass: %d lines, %d symbols, %d errors",
		len(program.Lines), program.Symbols.Len(), len(errs),
	)

	return program, errs, nil
}

// SecondPass encodes every line and collects the memory image. It may only
// run on a program whose first pass produced no errors.
func (p *Program) SecondPass() (errs []error) {
	p.Memory = p.Memory[:0]

	for i := range p.Lines {
		line := &p.Lines[i]

		if err := Encode(line, p.Symbols); err != nil {
			errs = append(errs, err)

			if len(errs) >= MAX_ERRORS {
				glog.V(1).Infof("second pass: stopping at line %d, too many errors", line.Number)
				break
			}

			continue
		}

		p.Memory = append(p.Memory, line.MemoryLocations()...)
	}

	glog.V(1).Infof("second pass: %d words, %d errors", len(p.Memory), len(errs))

	return errs
}

// Assemble runs both passes over input. A program is only returned when no
// errors of either kind occurred.
func Assemble(input io.Reader) (*Program, []error, error) {
	program, errs, err := FirstPass(input)

	if err != nil || len(errs) > 0 {
		return nil, errs, err
	}

	if errs := program.SecondPass(); len(errs) > 0 {
		return nil, errs, nil
	}

	return program, nil, nil
}
