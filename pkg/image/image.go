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
// Package image writes assembled memory in the formats consumed by the
// simulator and by the FPGA synthesis flow.
package image

import (
	"bufio"
	"fmt"
	"io"
	"sort"

	"github.com/lassandro/risc240/pkg/assembler"
)

const mifHeader = `DEPTH = 65536;         % Memory depth and width are required   %
                                       % DEPTH is the number of addresses      %
                WIDTH = 16;            % WIDTH is the number of bits of data per word %
                %  DEPTH and WIDTH should be entered as decimal numbers        %

                ADDRESS_RADIX = HEX;   % Address and value radixes are required  %
                DATA_RADIX = HEX;      % Enter BIN, DEC, HEX, OCT, or UNS; unless  %
                                       % otherwise specified, radixes = HEX    %

                CONTENT
                BEGIN
             
`

// Flatten sorts memory by address. When several words share an address the
// last one wins, and the shared addresses are returned as overlaps.
func Flatten(memory []assembler.MemoryLocation) (result []assembler.MemoryLocation, overlaps []uint16) {
	sorted := make([]assembler.MemoryLocation, len(memory))
	copy(sorted, memory)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Addr < sorted[j].Addr
	})

	for _, loc := range sorted {
		if n := len(result); n > 0 && result[n-1].Addr == loc.Addr {
			if len(overlaps) == 0 || overlaps[len(overlaps)-1] != loc.Addr {
				overlaps = append(overlaps, loc.Addr)
			}

			result[n-1] = loc
			continue
		}

		result = append(result, loc)
	}

	return result, overlaps
}

// WriteHex writes one word per line starting at address 0, filling every gap
// below the last defined word with 0000.
func WriteHex(w io.Writer, memory []assembler.MemoryLocation) error {
	locs, _ := Flatten(memory)
	out := bufio.NewWriter(w)

	var curr uint32

	for _, loc := range locs {
		for curr < uint32(loc.Addr) {
			out.WriteString("0000\n")
			curr += 2
		}

		fmt.Fprintf(out, "%04X\n", loc.Word)
		curr += 2
	}

	return out.Flush()
}

// WriteMIF writes a memory initialization file for the synthesis tools.
func WriteMIF(w io.Writer, memory []assembler.MemoryLocation) error {
	locs, _ := Flatten(memory)
	out := bufio.NewWriter(w)

	out.WriteString(mifHeader)

	for _, loc := range locs {
		fmt.Fprintf(out, "%04X : %04X;\n", loc.Addr, loc.Word)
	}

	out.WriteString("END;\n")
	return out.Flush()
}
