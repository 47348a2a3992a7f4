package engine

import (
	"errors"
	"fmt"
)

// Error categories. Use errors.Is against these to classify a run failure.
var (
	ErrOutOfBounds        = errors.New("data pointer out of bounds")
	ErrUnmatchedBracket   = errors.New("unmatched bracket")
	ErrUnbalancedBrackets = errors.New("unbalanced brackets")
	ErrOutput             = errors.New("could not write output")
)

// BoundsError reports a pointer move off either end of the tape.
type BoundsError struct {
	IP      int // instruction that attempted the move
	Pointer int // pointer value the move would have produced
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("%v: pointer %d at instruction %d (tape holds %d cells)", ErrOutOfBounds, e.Pointer, e.IP, TapeSize)
}

func (e *BoundsError) Unwrap() error {
	return ErrOutOfBounds
}

// BracketError reports a loop instruction with no usable partner.
// Kind is ErrUnmatchedBracket or ErrUnbalancedBrackets.
type BracketError struct {
	IP   int
	Kind error
}

func (e *BracketError) Error() string {
	return fmt.Sprintf("%v at instruction %d", e.Kind, e.IP)
}

func (e *BracketError) Unwrap() error {
	return e.Kind
}

// OutputError wraps a failed write of an Output byte.
type OutputError struct {
	IP  int
	Err error
}

func (e *OutputError) Error() string {
	return fmt.Sprintf("%v at instruction %d: %v", ErrOutput, e.IP, e.Err)
}

func (e *OutputError) Unwrap() []error {
	return []error{ErrOutput, e.Err}
}
