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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolve(t *testing.T, args ...string) outputs {
	t.Helper()

	var cfg config
	var status int

	cmd := newRootCommand(&cfg, &status)

	require.NoError(t, cmd.ParseFlags(args))
	require.Len(t, cmd.Flags().Args(), 1)

	return cfg.resolveOutputs(cmd, cmd.Flags().Arg(0))
}

func TestResolveOutputs(t *testing.T) {
	tests := []struct {
		Name string
		Args []string
		Want outputs
	}{
		{
			"Defaults",
			[]string{"prog.asm"},
			outputs{"prog.asm", "prog.list", "memory.hex", "memory.mif", ""},
		},
		{
			"NoExtension",
			[]string{"prog"},
			outputs{"prog.asm", "prog.list", "memory.hex", "memory.mif", ""},
		},
		{
			"Directory",
			[]string{"./lab.2/prog.s"},
			outputs{"./lab.2/prog.s", "./lab.2/prog.list", "memory.hex", "memory.mif", ""},
		},
		{
			"MemShort",
			[]string{"prog.asm", "-m", "tmp_1"},
			outputs{"prog.asm", "prog.list", "tmp_1", "memory.mif", ""},
		},
		{
			"MemLong",
			[]string{"prog.asm", "--mfile", "tmp_2"},
			outputs{"prog.asm", "prog.list", "tmp_2", "memory.mif", ""},
		},
		{
			"ListShort",
			[]string{"prog.asm", "-l", "tmp_3"},
			outputs{"prog.asm", "tmp_3", "memory.hex", "memory.mif", ""},
		},
		{
			"ListLong",
			[]string{"prog.asm", "--listfile", "tmp_4"},
			outputs{"prog.asm", "tmp_4", "memory.hex", "memory.mif", ""},
		},
		{
			"SymShort",
			[]string{"prog.asm", "-s", "tmp_5"},
			outputs{"prog.asm", "prog.list", "memory.hex", "memory.mif", "tmp_5"},
		},
		{
			"SymAlias",
			[]string{"prog.asm", "--symfile", "tmp_6"},
			outputs{"prog.asm", "prog.list", "memory.hex", "memory.mif", "tmp_6"},
		},
		{
			"SymLong",
			[]string{"prog.asm", "--symbolfile", "tmp_7"},
			outputs{"prog.asm", "prog.list", "memory.hex", "memory.mif", "tmp_7"},
		},
		{
			"MIF",
			[]string{"prog.asm", "--miffilename", "tmp_8"},
			outputs{"prog.asm", "prog.list", "memory.hex", "tmp_8", ""},
		},
		{
			"StdoutOnly",
			[]string{"prog.asm", "-o"},
			outputs{"prog.asm", STDOUT_PATH, "", "", ""},
		},
		{
			"StdoutPlusAll",
			[]string{"prog.asm", "-o", "-m", "x.mem", "-s", "x.sym", "--miffilename", "x.mif"},
			outputs{"prog.asm", STDOUT_PATH, "x.mem", "x.mif", "x.sym"},
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.Name, func(t *testing.T) {
			assert.Equal(t, test.Want, resolve(t, test.Args...))
		})
	}
}

func TestArgumentCount(t *testing.T) {
	for _, args := range [][]string{{}, {"a.asm", "b.asm"}} {
		var cfg config
		var status int

		cmd := newRootCommand(&cfg, &status)
		cmd.SetArgs(args)
		cmd.SetOut(new(nopWriter))
		cmd.SetErr(new(nopWriter))

		assert.Error(t, cmd.Execute())
	}
}

type nopWriter struct{}

func (*nopWriter) Write(p []byte) (int, error) {
	return len(p), nil
}

const source = ` .ORG $0010
START BRA END
TWICE .DW START
END   STOP
`

func TestAssembleFiles(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "prog")

	require.NoError(t, os.WriteFile(name+".asm", []byte(source), 0666))

	out := outputs{
		Source:  name + ".asm",
		List:    name + ".list",
		Memory:  filepath.Join(dir, "memory.hex"),
		MIF:     filepath.Join(dir, "memory.mif"),
		Symbols: name + ".sym",
	}

	assert.Equal(t, 0, as240(out, false))

	hex, err := os.ReadFile(out.Memory)
	require.NoError(t, err)
	assert.Equal(
		t,
		"0000\n0000\n0000\n0000\n0000\n0000\n0000\n0000\nF800\n0016\n0010\nFE00\n",
		string(hex),
	)

	for _, name := range []string{out.List, out.MIF, out.Symbols} {
		_, err := os.Stat(name)
		assert.NoError(t, err, name)
	}
}

func TestAssembleErrors(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "bad.asm")

	input := " .ORG $0\n J1\n J2\n J3\n J4\n J5\n J6\n"
	require.NoError(t, os.WriteFile(name, []byte(input), 0666))

	out := outputs{
		Source: name,
		List:   filepath.Join(dir, "bad.list"),
		Memory: filepath.Join(dir, "memory.hex"),
		MIF:    filepath.Join(dir, "memory.mif"),
	}

	assert.Equal(t, 5, as240(out, false))

	for _, name := range []string{out.List, out.Memory, out.MIF} {
		_, err := os.Stat(name)
		assert.True(t, os.IsNotExist(err), name)
	}

	assert.Equal(t, 1, as240(outputs{Source: filepath.Join(dir, "missing.asm")}, false))
}

func TestAssembleNoPartialOutput(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "prog.asm")

	require.NoError(t, os.WriteFile(name, []byte(source), 0666))

	out := outputs{
		Source:  name,
		List:    filepath.Join(dir, "prog.list"),
		Memory:  filepath.Join(dir, "memory.hex"),
		MIF:     filepath.Join(dir, "missing", "memory.mif"),
		Symbols: filepath.Join(dir, "prog.sym"),
	}

	assert.Equal(t, 1, as240(out, false))

	for _, name := range []string{out.Symbols, out.List, out.Memory, out.MIF} {
		_, err := os.Stat(name)
		assert.True(t, os.IsNotExist(err), name)
	}
}
