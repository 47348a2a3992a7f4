// Package engine executes tape programs.
//
// A Machine owns a fixed tape of TapeSize byte cells, a data pointer that
// starts in the middle of the tape, the instruction pointer, the stack of open
// loop entry points, and the last byte written by Output. Each Machine is an
// independent execution context; nothing is shared between machines except the
// writer they were given.
//
// Loops are matched by scanning the instruction sequence at the moment a loop
// is skipped. No jump table is built ahead of time.
package engine

import (
	"io"

	"github.com/thruflo/tape/internal/program"
)

const (
	// TapeSize is the number of cells on the tape.
	TapeSize = 60000
	// StartPointer is where the data pointer begins.
	StartPointer = 30000
)

// Machine is the state of a single run.
type Machine struct {
	tape  [TapeSize]byte
	ptr   int
	ip    int
	loops []int
	last  byte
	steps int
	out   io.Writer
	obuf  [1]byte
}

// New returns a Machine that writes Output bytes to out.
func New(out io.Writer) *Machine {
	return &Machine{
		ptr: StartPointer,
		out: out,
	}
}

// Pointer returns the current data pointer.
func (m *Machine) Pointer() int { return m.ptr }

// Cell returns the value of cell i. ok is false if i is off the tape.
func (m *Machine) Cell(i int) (v byte, ok bool) {
	if i < 0 || i >= TapeSize {
		return 0, false
	}
	return m.tape[i], true
}

// Current returns the value of the cell under the data pointer.
func (m *Machine) Current() byte { return m.tape[m.ptr] }

// LastOutput returns the most recent byte written by Output.
func (m *Machine) LastOutput() byte { return m.last }

// Depth returns the number of loops currently open.
func (m *Machine) Depth() int { return len(m.loops) }

// Steps returns the number of instructions executed so far.
func (m *Machine) Steps() int { return m.steps }

// IP returns the instruction pointer.
func (m *Machine) IP() int { return m.ip }

// Run executes prog from its first instruction until the instruction pointer
// passes the end, or until the first fatal error.
func (m *Machine) Run(prog program.Program) error {
	for m.ip < len(prog) {
		if err := m.step(prog); err != nil {
			return err
		}
		m.steps++
		m.ip++
	}
	return nil
}

func (m *Machine) step(prog program.Program) error {
	switch prog[m.ip] {
	case program.Increment:
		m.tape[m.ptr]++
	case program.Decrement:
		m.tape[m.ptr]--
	case program.MoveRight:
		return m.move(1)
	case program.MoveLeft:
		return m.move(-1)
	case program.Output:
		return m.output()
	case program.Input:
		m.tape[m.ptr] = m.last
	case program.LoopStart:
		if m.tape[m.ptr] != 0 {
			m.loops = append(m.loops, m.ip)
			return nil
		}
		end, err := matchLoopEnd(prog, m.ip)
		if err != nil {
			return err
		}
		m.ip = end
	case program.LoopEnd:
		if len(m.loops) == 0 {
			return &BracketError{IP: m.ip, Kind: ErrUnbalancedBrackets}
		}
		if m.tape[m.ptr] == 0 {
			m.loops = m.loops[:len(m.loops)-1]
			return nil
		}
		m.ip = m.loops[len(m.loops)-1]
	}
	return nil
}

func (m *Machine) move(delta int) error {
	next := m.ptr + delta
	if next < 0 || next >= TapeSize {
		return &BoundsError{IP: m.ip, Pointer: next}
	}
	m.ptr = next
	return nil
}

func (m *Machine) output() error {
	m.obuf[0] = m.tape[m.ptr]
	if _, err := m.out.Write(m.obuf[:]); err != nil {
		return &OutputError{IP: m.ip, Err: err}
	}
	m.last = m.obuf[0]
	return nil
}

// matchLoopEnd scans forward from the LoopStart at start and returns the index
// of the LoopEnd that closes it.
func matchLoopEnd(prog program.Program, start int) (int, error) {
	depth := 1
	for i := start + 1; i < len(prog); i++ {
		switch prog[i] {
		case program.LoopStart:
			depth++
		case program.LoopEnd:
			depth--
			if depth == 0 {
				return i, nil
			}
		}
	}
	return 0, &BracketError{IP: start, Kind: ErrUnmatchedBracket}
}
