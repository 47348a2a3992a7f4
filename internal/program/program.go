// Package program turns raw program text into the instruction sequence
// executed by the engine. Only the eight instruction symbols are significant;
// every other character is treated as a comment and dropped.
package program

// Instruction is one of the eight tape instructions.
type Instruction byte

const (
	// Increment adds one to the current cell.
	Increment Instruction = iota + 1
	// Decrement subtracts one from the current cell.
	Decrement
	// MoveRight moves the data pointer one cell to the right.
	MoveRight
	// MoveLeft moves the data pointer one cell to the left.
	MoveLeft
	// Output writes the current cell as one byte.
	Output
	// Input stores the last output byte in the current cell.
	Input
	// LoopStart skips past the matching LoopEnd when the current cell is zero.
	LoopStart
	// LoopEnd jumps back into the loop body when the current cell is nonzero.
	LoopEnd
)

var symbols = map[rune]Instruction{
	'+': Increment,
	'-': Decrement,
	'>': MoveRight,
	'<': MoveLeft,
	'.': Output,
	',': Input,
	'[': LoopStart,
	']': LoopEnd,
}

// String returns the source symbol for the instruction.
func (i Instruction) String() string {
	switch i {
	case Increment:
		return "+"
	case Decrement:
		return "-"
	case MoveRight:
		return ">"
	case MoveLeft:
		return "<"
	case Output:
		return "."
	case Input:
		return ","
	case LoopStart:
		return "["
	case LoopEnd:
		return "]"
	}
	return "?"
}

// Program is an ordered instruction sequence. Order is the control flow.
type Program []Instruction

// Parse maps every recognized symbol in text to its instruction and discards
// everything else. Bracket balance is not checked here.
func Parse(text string) Program {
	prog := make(Program, 0, len(text))
	for _, r := range text {
		if inst, ok := symbols[r]; ok {
			prog = append(prog, inst)
		}
	}
	return prog
}

// Count returns how many times inst occurs in the program.
func (p Program) Count(inst Instruction) int {
	n := 0
	for _, i := range p {
		if i == inst {
			n++
		}
	}
	return n
}

// String renders the program back to its symbols, without comments.
func (p Program) String() string {
	buf := make([]byte, 0, len(p))
	for _, i := range p {
		buf = append(buf, i.String()...)
	}
	return string(buf)
}
