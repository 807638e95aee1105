// Completion: 100% - all eight instructions covered
package main

import "strings"

// Instruction is a single Brainfuck operation. The eight instructions map
// one-to-one onto the eight command characters; everything else in a source
// file is a comment and never reaches this level.
type Instruction int

const (
	MovePointerRight Instruction = iota // >
	MovePointerLeft                     // <
	Increment                           // +
	Decrement                           // -
	Output                              // .
	Input                               // ,
	LoopStart                           // [
	LoopEnd                             // ]
)

// String returns the command character for the instruction.
func (in Instruction) String() string {
	switch in {
	case MovePointerRight:
		return ">"
	case MovePointerLeft:
		return "<"
	case Increment:
		return "+"
	case Decrement:
		return "-"
	case Output:
		return "."
	case Input:
		return ","
	case LoopStart:
		return "["
	case LoopEnd:
		return "]"
	default:
		return "?"
	}
}

// Program is a lexed instruction sequence, in source order.
type Program []Instruction

// Source renders the program back as canonical Brainfuck text: the original
// source with every comment byte removed.
func (p Program) Source() string {
	var sb strings.Builder
	sb.Grow(len(p))
	for _, in := range p {
		sb.WriteString(in.String())
	}
	return sb.String()
}
