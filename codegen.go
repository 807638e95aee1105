// Completion: 100% - x86-64 Windows code generation complete
package main

import (
	"fmt"
	"path/filepath"
	"strings"
)

// codegen.go - Brainfuck Code Generator
//
// Transforms a lexed instruction sequence into NASM-syntax x86-64 assembly
// for the Windows x64 calling convention. The generated program links
// against the C runtime and does its I/O through putchar and _getch.
//
// Register use:
// - rbx holds the tape pointer. It is callee-saved under the Win64
//   convention, so it survives the putchar/_getch calls without spilling.
// - ecx carries the putchar argument, al receives the _getch result.
//
// The tape lives in .bss and is zero-filled by the loader. Cells are one
// byte wide and wrap at 256. Pointer moves are not bounds-checked.

// loopFrame is one open loop: its label id and the instruction index of the
// LoopStart that opened it.
type loopFrame struct {
	id    int
	index int
}

// Generator emits assembly for one instruction sequence. Each generation
// pass owns its own label counter and loop stack, so label numbering always
// starts from zero and two passes can never interfere.
type Generator struct {
	out       strings.Builder
	nextLabel int
	loopStack []loopFrame
	tapeSize  int
}

// GeneratorOptions configures a Generator. A TapeSize of zero or less means
// the configured default (BFASM_TAPE_SIZE, or 30000 cells).
type GeneratorOptions struct {
	TapeSize int
}

// NewGenerator creates a Generator with the given options
func NewGenerator(opts GeneratorOptions) *Generator {
	size := opts.TapeSize
	if size <= 0 {
		size = configuredTapeSize()
	}
	return &Generator{tapeSize: size}
}

// Generate compiles program to assembly text using default options. name
// appears in the header comment of the generated file and may be empty.
func Generate(program Program, name string) (string, error) {
	return NewGenerator(GeneratorOptions{}).Generate(program, name)
}

// Generate compiles program to assembly text. On error the returned text is
// empty; partial assembly is never produced.
func (g *Generator) Generate(program Program, name string) (string, error) {
	g.out.Reset()
	g.nextLabel = 0
	g.loopStack = g.loopStack[:0]

	g.emitHeader(name)

	for i, in := range program {
		switch in {
		case MovePointerRight:
			g.line("inc rbx")
		case MovePointerLeft:
			g.line("dec rbx")
		case Increment:
			g.line("inc byte [rbx]")
		case Decrement:
			g.line("dec byte [rbx]")
		case Output:
			g.line("movzx ecx, byte [rbx]")
			g.line("call putchar")
		case Input:
			g.line("call _getch")
			g.line("mov [rbx], al")
		case LoopStart:
			id := g.newLabel()
			g.loopStack = append(g.loopStack, loopFrame{id: id, index: i})
			g.line("cmp byte [rbx], 0")
			g.line("je .loop_%d_end", id)
			g.label(".loop_%d", id)
		case LoopEnd:
			if len(g.loopStack) == 0 {
				return "", loopEndAtInstruction(i)
			}
			frame := g.loopStack[len(g.loopStack)-1]
			g.loopStack = g.loopStack[:len(g.loopStack)-1]
			g.line("cmp byte [rbx], 0")
			g.line("jne .loop_%d", frame.id)
			g.label(".loop_%d_end", frame.id)
		default:
			return "", fmt.Errorf("unknown instruction %d at index %d", in, i)
		}
	}

	if len(g.loopStack) > 0 {
		// Report the first loop that is still open, like the lexer does.
		return "", loopStartAtInstruction(g.loopStack[0].index)
	}

	g.emitFooter()
	return g.out.String(), nil
}

// newLabel allocates the next loop label id
func (g *Generator) newLabel() int {
	id := g.nextLabel
	g.nextLabel++
	return id
}

// line emits one indented instruction line
func (g *Generator) line(format string, args ...interface{}) {
	g.out.WriteString("    ")
	fmt.Fprintf(&g.out, format, args...)
	g.out.WriteString("\n")
}

// label emits a label definition at column zero
func (g *Generator) label(format string, args ...interface{}) {
	fmt.Fprintf(&g.out, format, args...)
	g.out.WriteString(":\n")
}

// raw emits one unindented line, for directives
func (g *Generator) raw(format string, args ...interface{}) {
	fmt.Fprintf(&g.out, format, args...)
	g.out.WriteString("\n")
}

func (g *Generator) emitHeader(name string) {
	if name != "" {
		stem := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
		g.raw("; %s", name)
		g.raw("; assemble: nasm -f win64 %s.asm -o %s.obj", stem, stem)
		g.raw("; link:     gcc %s.obj -o %s.exe", stem, stem)
		g.raw("")
	}
	g.raw("bits 64")
	g.raw("default rel")
	g.raw("")
	g.raw("segment .bss")
	g.raw("tape resb %d", g.tapeSize)
	g.raw("")
	g.raw("segment .text")
	g.raw("global main")
	g.raw("extern _getch")
	g.raw("extern putchar")
	g.raw("")
	g.label("main")
	g.line("push rbp")
	g.line("mov rbp, rsp")
	g.line("push rbx")
	// 32 bytes of shadow space plus 8 to keep rsp 16-aligned at call sites
	g.line("sub rsp, 40")
	g.line("lea rbx, [tape]")
}

func (g *Generator) emitFooter() {
	g.line("add rsp, 40")
	g.line("pop rbx")
	g.line("pop rbp")
	g.line("xor eax, eax")
	g.line("ret")
}
