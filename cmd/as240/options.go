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
package main

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

// STDOUT_PATH marks an output that goes to standard output.
const STDOUT_PATH = "-"

type config struct {
	listFile   string
	memFile    string
	mifFile    string
	symbolFile string
	stdout     bool
	dump       bool
}

// outputs holds the resolved file names of one run. An empty name means the
// file is not written.
type outputs struct {
	Source  string
	List    string
	Memory  string
	MIF     string
	Symbols string
}

func (cfg *config) bind(cmd *cobra.Command) {
	flags := cmd.Flags()

	flags.StringVarP(
		&cfg.listFile, "listfile", "l", "",
		"Output the listing to LIST_FILE (default <ASM_FILE base>.list)",
	)
	flags.StringVarP(
		&cfg.memFile, "mfile", "m", "memory.hex",
		"Use the specified filename for the simulation memory image, "+
			"no extension will be added",
	)
	flags.StringVar(
		&cfg.mifFile, "miffilename", "memory.mif",
		"Use the specified filename for the synthesis memory image",
	)
	flags.StringVarP(
		&cfg.symbolFile, "symbolfile", "s", "",
		"Output the symbol table to SYM_FILE",
	)
	flags.StringVar(&cfg.symbolFile, "symfile", "", "")
	flags.MarkHidden("symfile")
	flags.BoolVarP(
		&cfg.stdout, "stdout", "o", false,
		"Send the listing to stdout, no other files are created unless "+
			"named on the command line",
	)
	flags.BoolVar(
		&cfg.dump, "dump", false,
		"Pretty-print the assembled lines and symbols to stderr",
	)
}

// resolveOutputs works out the source and output names for arg. A source
// without an extension gets ".asm".
func (cfg *config) resolveOutputs(cmd *cobra.Command, arg string) outputs {
	var out outputs

	base := arg

	if ext := filepath.Ext(arg); ext == "" {
		out.Source = arg + ".asm"
	} else {
		out.Source = arg
		base = strings.TrimSuffix(arg, ext)
	}

	out.Symbols = cfg.symbolFile

	if cfg.stdout {
		out.List = STDOUT_PATH

		if cmd.Flags().Changed("mfile") {
			out.Memory = cfg.memFile
		}

		if cmd.Flags().Changed("miffilename") {
			out.MIF = cfg.mifFile
		}

		return out
	}

	out.List = cfg.listFile
	if out.List == "" {
		out.List = base + ".list"
	}

	out.Memory = cfg.memFile
	out.MIF = cfg.mifFile

	return out
}
