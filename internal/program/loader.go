package program

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"
)

var (
	// ErrNoFile is returned when no program path was supplied.
	ErrNoFile = errors.New("no file argument given")
	// ErrNotAFile is returned when the path does not name a regular file.
	ErrNotAFile = errors.New("path did not specify a file")
	// ErrNotText is returned when the file contents are not valid UTF-8.
	ErrNotText = errors.New("file is not valid text")
)

// LoadError describes a failure to obtain program text.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load reads the file at path and parses it into a Program.
func Load(path string) (Program, error) {
	if path == "" {
		return nil, &LoadError{Err: ErrNoFile}
	}

	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return nil, &LoadError{Path: path, Err: ErrNotAFile}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("could not read file: %w", err)}
	}
	if !utf8.Valid(data) {
		return nil, &LoadError{Path: path, Err: ErrNotText}
	}

	return Parse(string(data)), nil
}
