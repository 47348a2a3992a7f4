package program

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thruflo/tape/internal/testutil"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  Program
	}{
		{
			name:  "empty",
			input: "",
			want:  Program{},
		},
		{
			name:  "all symbols",
			input: "+-><.,[]",
			want:  Program{Increment, Decrement, MoveRight, MoveLeft, Output, Input, LoopStart, LoopEnd},
		},
		{
			name:  "comments dropped",
			input: "add two: ++ then print .",
			want:  Program{Increment, Increment, Output},
		},
		{
			name:  "whitespace dropped",
			input: " \t+\n-\r\n",
			want:  Program{Increment, Decrement},
		},
		{
			name:  "non-ascii dropped",
			input: "héllo→[ü]",
			want:  Program{LoopStart, LoopEnd},
		},
		{
			name:  "unbalanced brackets kept",
			input: "]][",
			want:  Program{LoopEnd, LoopEnd, LoopStart},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.input))
		})
	}
}

func TestParse_Commented(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Parse(testutil.HelloWorld), Parse(testutil.Commented))
	assert.Equal(t, testutil.HelloWorld, Parse(testutil.Commented).String())
}

func TestInstructionString(t *testing.T) {
	t.Parallel()

	for sym, inst := range symbols {
		assert.Equal(t, string(sym), inst.String())
	}
	assert.Equal(t, "?", Instruction(0).String())
}

func TestProgramCount(t *testing.T) {
	t.Parallel()

	prog := Parse("++[->+<]")
	assert.Equal(t, 3, prog.Count(Increment))
	assert.Equal(t, 1, prog.Count(LoopStart))
	assert.Equal(t, 0, prog.Count(Output))
}

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := testutil.WriteProgram(t, dir, "hello.bf", testutil.Commented)

	prog, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Parse(testutil.HelloWorld), prog)
}

func TestLoad_EmptyFile(t *testing.T) {
	t.Parallel()

	path := testutil.WriteProgram(t, t.TempDir(), "empty.bf", "")

	prog, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, prog)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	binary := filepath.Join(dir, "binary.bf")
	require.NoError(t, os.WriteFile(binary, []byte{'+', 0xff, 0xfe, '.'}, 0o644))

	tests := []struct {
		name string
		path string
		want error
	}{
		{"no path", "", ErrNoFile},
		{"missing file", filepath.Join(dir, "missing.bf"), ErrNotAFile},
		{"directory", dir, ErrNotAFile},
		{"invalid utf-8", binary, ErrNotText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog, err := Load(tt.path)
			require.Error(t, err)
			assert.Nil(t, prog)
			assert.ErrorIs(t, err, tt.want)

			var le *LoadError
			require.True(t, errors.As(err, &le))
			assert.Equal(t, tt.path, le.Path)
		})
	}
}

func TestLoad_Unreadable(t *testing.T) {
	t.Parallel()

	if os.Geteuid() == 0 {
		t.Skip("root can read files regardless of permissions")
	}

	path := testutil.WriteProgram(t, t.TempDir(), "locked.bf", "+.")
	require.NoError(t, os.Chmod(path, 0o000))

	prog, err := Load(path)
	require.Error(t, err)
	assert.Nil(t, prog)
	assert.ErrorIs(t, err, os.ErrPermission)
	assert.Contains(t, err.Error(), "could not read file")
	assert.NotErrorIs(t, err, ErrNotAFile)

	var le *LoadError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, path, le.Path)
}

func TestLoadError_Message(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "no file argument given", (&LoadError{Err: ErrNoFile}).Error())
	assert.Equal(t, "load x.bf: path did not specify a file",
		(&LoadError{Path: "x.bf", Err: ErrNotAFile}).Error())
}
