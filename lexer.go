// Completion: 100% - lexer complete, validates loop balance during the scan
package main

// openLoop remembers where a '[' appeared so an unterminated loop can be
// reported at the bracket that opened it.
type openLoop struct {
	offset int
	line   int
	column int
}

// Lex turns Brainfuck source text into an instruction sequence. The eight
// command characters become instructions; every other byte is a comment and
// is dropped. Loop balance is validated during the scan, so a sequence
// returned by Lex is always safe to hand to the code generator.
func Lex(source string) (Program, error) {
	program := make(Program, 0, len(source))
	var open []openLoop

	line, column := 1, 1
	for i := 0; i < len(source); i++ {
		c := source[i]
		switch c {
		case '>':
			program = append(program, MovePointerRight)
		case '<':
			program = append(program, MovePointerLeft)
		case '+':
			program = append(program, Increment)
		case '-':
			program = append(program, Decrement)
		case '.':
			program = append(program, Output)
		case ',':
			program = append(program, Input)
		case '[':
			open = append(open, openLoop{offset: i, line: line, column: column})
			program = append(program, LoopStart)
		case ']':
			if len(open) == 0 {
				return nil, unmatchedLoopEnd(i, line, column, sourceLineAt(source, i))
			}
			open = open[:len(open)-1]
			program = append(program, LoopEnd)
		default:
			// comment byte
		}

		if c == '\n' {
			line++
			column = 1
		} else {
			column++
		}
	}

	if len(open) > 0 {
		first := open[0]
		return nil, unterminatedLoop(first.offset, first.line, first.column, sourceLineAt(source, first.offset))
	}

	return program, nil
}
