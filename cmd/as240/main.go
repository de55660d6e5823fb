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
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/glog"
	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"

	"github.com/lassandro/risc240/pkg/assembler"
	"github.com/lassandro/risc240/pkg/image"
)

const version = "3.0"

func init() {
	log.SetFlags(0)
	log.SetOutput(os.Stderr)
}

func newRootCommand(cfg *config, status *int) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "as240 [flags] ASM_FILE",
		Short: "A RISC240 assembler",
		Long: `as240 assembles a RISC240 source file into a listing, a simulation
memory image (memory.hex) and a synthesis memory image (memory.mif).

If syntax errors are found, up to 5 of them are printed and the exit status
is the number of errors. No output file is written in that case.`,
		Version:      version,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// glog reads its settings from the standard flag set
			flag.CommandLine.Parse([]string{})
		},
		Run: func(cmd *cobra.Command, args []string) {
			*status = as240(cfg.resolveOutputs(cmd, args[0]), cfg.dump)
		},
	}

	cfg.bind(cmd)

	flag.Set("logtostderr", "true")
	cmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	return cmd
}

func as240(out outputs, dump bool) int {
	defer glog.Flush()

	source, err := os.ReadFile(out.Source)

	if err != nil {
		glog.Errorf("ASM_FILE can't be read: %v", err)
		return 1
	}

	log.SetPrefix(fmt.Sprintf("\033[1m%s:\033[0m", filepath.Base(out.Source)))

	color := isTerminal(os.Stderr.Fd())
	lines := strings.Split(string(source), "\n")

	program, errs, fatal := assembler.FirstPass(bytes.NewReader(source))

	if fatal == nil && len(errs) == 0 {
		errs = program.SecondPass()
	}

	if dump && program != nil {
		printer := pp.New()
		printer.SetColoringEnabled(color)
		printer.Fprintln(os.Stderr, program.Lines)
		printer.Fprintln(os.Stderr, program.Symbols.Symbols())
	}

	for _, err := range errs {
		report(err, lines, color)
	}

	if fatal != nil {
		report(fatal, lines, color)
	}

	if len(errs) > 0 {
		return len(errs)
	}

	if fatal != nil {
		return 1
	}

	if err := writeOutputs(out, program); err != nil {
		glog.Errorf("%v", err)
		return 1
	}

	return 0
}

// report prints err followed by the offending line with the failing field
// underlined.
func report(err error, lines []string, color bool) {
	lineErr, ok := err.(assembler.LineError)

	if !ok {
		log.Println(err)
		return
	}

	cursor := lineErr.GetPosition()

	if cursor.Line < 1 || cursor.Line > len(lines) {
		log.Println(err)
		return
	}

	text := strings.TrimRight(lines[cursor.Line-1], "\r")

	// Keep tabs so the caret lines up with the source
	var indent strings.Builder
	for i := 0; i < cursor.Column-1 && i < len(text); i++ {
		if text[i] == '\t' {
			indent.WriteByte('\t')
		} else {
			indent.WriteByte(' ')
		}
	}

	underline := indent.String() + "^"
	if cursor.Size > 1 {
		underline += strings.Repeat("~", cursor.Size-1)
	}

	if color {
		underline = "\033[31m" + underline + "\033[0m"
	}

	log.Printf("%s\n%s\n%s", err, text, underline)
}

type artifact struct {
	name string
	data bytes.Buffer
}

// writeOutputs renders every artifact before creating any file, and removes
// the files it created when a later one fails.
func writeOutputs(out outputs, program *assembler.Program) error {
	if _, overlaps := image.Flatten(program.Memory); len(overlaps) > 0 {
		for _, addr := range overlaps {
			glog.Warningf("memory address %04X is written more than once, the last word wins", addr)
		}
	}

	renderers := []struct {
		name   string
		render func(io.Writer) error
	}{
		{out.Symbols, program.Symbols.WriteText},
		{out.List, program.WriteListing},
		{out.Memory, func(w io.Writer) error {
			return image.WriteHex(w, program.Memory)
		}},
		{out.MIF, func(w io.Writer) error {
			return image.WriteMIF(w, program.Memory)
		}},
	}

	var artifacts []*artifact
	var stdout *artifact

	for _, r := range renderers {
		if r.name == "" {
			continue
		}

		a := &artifact{name: r.name}

		if err := r.render(&a.data); err != nil {
			return fmt.Errorf("Error rendering %s: %w", r.name, err)
		}

		if r.name == STDOUT_PATH {
			stdout = a
		} else {
			artifacts = append(artifacts, a)
		}
	}

	var written []string

	for _, a := range artifacts {
		if err := writeFile(a.name, a.data.Bytes()); err != nil {
			for _, name := range written {
				os.Remove(name)
			}

			return err
		}

		written = append(written, a.name)
	}

	if stdout != nil {
		if _, err := os.Stdout.Write(stdout.data.Bytes()); err != nil {
			return fmt.Errorf("Error writing listing: %w", err)
		}
	}

	return nil
}

func writeFile(name string, data []byte) error {
	if err := os.WriteFile(name, data, 0666); err != nil {
		return fmt.Errorf("Error writing %s: %w", name, err)
	}

	glog.V(1).Infof("wrote %s", name)
	return nil
}

func main() {
	var cfg config
	var status int

	if err := newRootCommand(&cfg, &status).Execute(); err != nil {
		os.Exit(1)
	}

	os.Exit(status)
}
