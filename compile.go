// Completion: 100% - compilation pipeline complete
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Compile runs the full source-to-assembly pipeline with default generator
// options. name is used in diagnostics and in the header comment of the
// generated assembly; it may be empty.
func Compile(source, name string) (string, error) {
	return CompileWithOptions(source, name, GeneratorOptions{})
}

// CompileWithOptions is Compile with explicit generator options.
func CompileWithOptions(source, name string, opts GeneratorOptions) (string, error) {
	program, err := Lex(source)
	if err != nil {
		var loopErr *UnbalancedLoopError
		if errors.As(err, &loopErr) {
			loopErr.Location.File = name
		}
		return "", err
	}
	return NewGenerator(opts).Generate(program, name)
}

// DeriveOutputPath maps a source filename to the assembly filename it
// compiles to: "hello.bf" becomes "hello.asm", anything without a .bf
// extension gets ".asm" appended.
func DeriveOutputPath(sourceFile string) string {
	if strings.HasSuffix(sourceFile, ".bf") {
		return strings.TrimSuffix(sourceFile, ".bf") + ".asm"
	}
	return sourceFile + ".asm"
}

// CompileFile reads sourceFile, compiles it, and writes the assembly to
// outputFile.
func CompileFile(sourceFile, outputFile string, opts GeneratorOptions) error {
	if VerboseMode {
		fmt.Fprintf(os.Stderr, "source file: %s\n", sourceFile)
	}

	data, err := os.ReadFile(sourceFile)
	if err != nil {
		return fmt.Errorf("could not read %s: %v", sourceFile, err)
	}

	asm, err := CompileWithOptions(string(data), filepath.Base(sourceFile), opts)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputFile, []byte(asm), 0o644); err != nil {
		return fmt.Errorf("could not write %s: %v", outputFile, err)
	}
	return nil
}
