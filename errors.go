// Completion: 100% - Error handling complete, clear and helpful messages
package main

import (
	"fmt"
	"strings"
)

// SourceLocation represents a position in Brainfuck source code
type SourceLocation struct {
	File   string
	Line   int // 1-based
	Column int // 1-based
	Offset int // 0-based byte offset in the source text
}

func (loc SourceLocation) String() string {
	if loc.Line <= 0 {
		// Positions produced by the code generator refer to instruction
		// indices, not source bytes.
		if loc.File == "" {
			return fmt.Sprintf("instruction %d", loc.Offset)
		}
		return loc.File
	}
	if loc.File == "" {
		return fmt.Sprintf("%d:%d", loc.Line, loc.Column)
	}
	return fmt.Sprintf("%s:%d:%d", loc.File, loc.Line, loc.Column)
}

// UnbalancedLoopError is the one way compilation can fail: a ']' that closes
// nothing, or a '[' that is never closed.
type UnbalancedLoopError struct {
	Message    string
	Location   SourceLocation
	SourceLine string // the line of source containing the offending bracket
	Help       string
}

// Error implements the error interface
func (e *UnbalancedLoopError) Error() string {
	return fmt.Sprintf("%s: %s", e.Location, e.Message)
}

// Format returns a nicely formatted error message with source context
func (e *UnbalancedLoopError) Format(useColor bool) string {
	var sb strings.Builder

	// Error header
	if useColor {
		sb.WriteString("\033[1;31m") // Bold red
	}
	sb.WriteString("error: ")
	if useColor {
		sb.WriteString("\033[0m") // Reset
	}
	sb.WriteString(e.Message)
	sb.WriteString("\n")

	// Location
	if useColor {
		sb.WriteString("\033[1;34m") // Bold blue
	}
	sb.WriteString("  --> ")
	sb.WriteString(e.Location.String())
	if useColor {
		sb.WriteString("\033[0m")
	}
	sb.WriteString("\n")

	// Source context with the bracket underlined
	if e.SourceLine != "" && e.Location.Line > 0 {
		lineNum := fmt.Sprintf("%d", e.Location.Line)
		padding := strings.Repeat(" ", len(lineNum)+1)

		sb.WriteString(padding)
		sb.WriteString("|\n")
		sb.WriteString(lineNum)
		sb.WriteString(" | ")
		sb.WriteString(e.SourceLine)
		sb.WriteString("\n")
		sb.WriteString(padding)
		sb.WriteString("| ")
		if e.Location.Column > 0 {
			sb.WriteString(strings.Repeat(" ", e.Location.Column-1))
			if useColor {
				sb.WriteString("\033[1;31m")
			}
			sb.WriteString("^")
			if useColor {
				sb.WriteString("\033[0m")
			}
		}
		sb.WriteString("\n")
	}

	// Suggestion
	if e.Help != "" {
		if useColor {
			sb.WriteString("\033[1;32m") // Bold green
		}
		sb.WriteString("   help: ")
		if useColor {
			sb.WriteString("\033[0m")
		}
		sb.WriteString(e.Help)
		sb.WriteString("\n")
	}

	return sb.String()
}

// sourceLineAt extracts the line of source containing the byte at offset
func sourceLineAt(source string, offset int) string {
	if offset < 0 || offset >= len(source) {
		return ""
	}
	start := strings.LastIndexByte(source[:offset], '\n') + 1
	end := strings.IndexByte(source[offset:], '\n')
	if end < 0 {
		return source[start:]
	}
	return source[start : offset+end]
}

// Helper functions for creating the two failure classes

// unmatchedLoopEnd creates an error for a ']' with no open loop
func unmatchedLoopEnd(offset, line, column int, sourceLine string) *UnbalancedLoopError {
	return &UnbalancedLoopError{
		Message:    "']' without a matching '['",
		Location:   SourceLocation{Line: line, Column: column, Offset: offset},
		SourceLine: sourceLine,
		Help:       "remove this ']' or add a '[' before it",
	}
}

// unterminatedLoop creates an error for a '[' still open at end of input
func unterminatedLoop(offset, line, column int, sourceLine string) *UnbalancedLoopError {
	return &UnbalancedLoopError{
		Message:    "'[' without a matching ']'",
		Location:   SourceLocation{Line: line, Column: column, Offset: offset},
		SourceLine: sourceLine,
		Help:       "add a matching ']' before the end of the program",
	}
}

// The code generator works on instruction sequences and no longer sees raw
// source positions, so its errors carry instruction indices instead.

// loopEndAtInstruction creates an error for a LoopEnd with no open loop
func loopEndAtInstruction(index int) *UnbalancedLoopError {
	return &UnbalancedLoopError{
		Message:  "']' without a matching '['",
		Location: SourceLocation{Offset: index},
	}
}

// loopStartAtInstruction creates an error for a LoopStart never closed
func loopStartAtInstruction(index int) *UnbalancedLoopError {
	return &UnbalancedLoopError{
		Message:  "'[' without a matching ']'",
		Location: SourceLocation{Offset: index},
	}
}
