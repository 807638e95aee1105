package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestCompilePipeline tests the full source-to-assembly boundary
func TestCompilePipeline(t *testing.T) {
	asm, err := Compile("++[>+<-].", "add.bf")
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	assertContains(t, asm, "; add.bf")
	assertContains(t, asm, "main:")
	assertContains(t, asm, ".loop_0:")
	assertContains(t, asm, "call putchar")
}

// TestCompileErrorCarriesFile tests that diagnostics name the source file
func TestCompileErrorCarriesFile(t *testing.T) {
	_, err := Compile("]", "broken.bf")
	if err == nil {
		t.Fatal("Compile should have failed")
	}
	var loopErr *UnbalancedLoopError
	if !errors.As(err, &loopErr) {
		t.Fatalf("Expected UnbalancedLoopError, got %T: %v", err, err)
	}
	if loopErr.Location.File != "broken.bf" {
		t.Errorf("Expected file %q, got %q", "broken.bf", loopErr.Location.File)
	}
	if loopErr.Location.Offset != 0 {
		t.Errorf("Expected offset 0, got %d", loopErr.Location.Offset)
	}
	if !strings.Contains(err.Error(), "broken.bf:1:1") {
		t.Errorf("Expected location in error message, got %q", err.Error())
	}
}

// TestCompileAllOrNothing tests that no assembly is produced on error
func TestCompileAllOrNothing(t *testing.T) {
	for _, source := range []string{"]", "[", "+++[", "[]]", "[[", "[]["} {
		asm, err := Compile(source, "bad.bf")
		if err == nil {
			t.Fatalf("Compile(%q) should have failed", source)
		}
		if asm != "" {
			t.Errorf("Compile(%q) returned partial assembly on error", source)
		}
	}
}

// TestDeriveOutputPath tests source-to-output filename mapping
func TestDeriveOutputPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"hello.bf", "hello.asm"},
		{"dir/program.bf", "dir/program.asm"},
		{"mandelbrot", "mandelbrot.asm"},
		{"notes.txt", "notes.txt.asm"},
		{".bf", ".asm"},
	}

	for _, tt := range tests {
		if got := DeriveOutputPath(tt.in); got != tt.want {
			t.Errorf("DeriveOutputPath(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

// TestCompileFile tests reading a source file and writing its assembly
func TestCompileFile(t *testing.T) {
	dir := t.TempDir()
	sourceFile := filepath.Join(dir, "hello.bf")
	if err := os.WriteFile(sourceFile, []byte("+++."), 0o644); err != nil {
		t.Fatalf("Failed to write source file: %v", err)
	}

	outputFile := filepath.Join(dir, "hello.asm")
	if err := CompileFile(sourceFile, outputFile, GeneratorOptions{}); err != nil {
		t.Fatalf("CompileFile failed: %v", err)
	}

	data, err := os.ReadFile(outputFile)
	if err != nil {
		t.Fatalf("Failed to read output file: %v", err)
	}
	code := string(data)
	assertContains(t, code, "; hello.bf")
	assertContains(t, code, "inc byte [rbx]")
	assertContains(t, code, "call putchar")
}

// TestCompileFileMissingSource tests the unreadable-input error path
func TestCompileFileMissingSource(t *testing.T) {
	dir := t.TempDir()
	err := CompileFile(filepath.Join(dir, "nope.bf"), filepath.Join(dir, "nope.asm"), GeneratorOptions{})
	if err == nil {
		t.Fatal("CompileFile should have failed for a missing source file")
	}
	if !strings.Contains(err.Error(), "could not read") {
		t.Errorf("Expected a read error, got %q", err.Error())
	}
}

// TestCompileFileLeavesNoOutputOnError tests that a broken program does not
// produce an assembly file
func TestCompileFileLeavesNoOutputOnError(t *testing.T) {
	dir := t.TempDir()
	sourceFile := filepath.Join(dir, "broken.bf")
	if err := os.WriteFile(sourceFile, []byte("[[["), 0o644); err != nil {
		t.Fatalf("Failed to write source file: %v", err)
	}

	outputFile := filepath.Join(dir, "broken.asm")
	err := CompileFile(sourceFile, outputFile, GeneratorOptions{})
	if err == nil {
		t.Fatal("CompileFile should have failed")
	}
	var loopErr *UnbalancedLoopError
	if !errors.As(err, &loopErr) {
		t.Fatalf("Expected UnbalancedLoopError, got %T: %v", err, err)
	}
	if _, statErr := os.Stat(outputFile); !os.IsNotExist(statErr) {
		t.Errorf("Output file should not exist after a failed compile")
	}
}

// TestCompileFileTapeSizeOption tests that generator options reach the output
func TestCompileFileTapeSizeOption(t *testing.T) {
	dir := t.TempDir()
	sourceFile := filepath.Join(dir, "tiny.bf")
	if err := os.WriteFile(sourceFile, []byte("+"), 0o644); err != nil {
		t.Fatalf("Failed to write source file: %v", err)
	}

	outputFile := filepath.Join(dir, "tiny.asm")
	if err := CompileFile(sourceFile, outputFile, GeneratorOptions{TapeSize: 8192}); err != nil {
		t.Fatalf("CompileFile failed: %v", err)
	}

	data, err := os.ReadFile(outputFile)
	if err != nil {
		t.Fatalf("Failed to read output file: %v", err)
	}
	assertContains(t, string(data), "tape resb 8192")
}
