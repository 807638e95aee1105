package main

import (
	"errors"
	"strings"
	"testing"
)

// TestUnbalancedLoopErrorFormat tests the rendered diagnostic layout
func TestUnbalancedLoopErrorFormat(t *testing.T) {
	_, err := Compile("++\n+]", "hello.bf")
	if err == nil {
		t.Fatal("Compile should have failed")
	}
	var loopErr *UnbalancedLoopError
	if !errors.As(err, &loopErr) {
		t.Fatalf("Expected UnbalancedLoopError, got %T: %v", err, err)
	}

	got := loopErr.Format(false)
	want := "error: ']' without a matching '['\n" +
		"  --> hello.bf:2:2\n" +
		"  |\n" +
		"2 | +]\n" +
		"  |  ^\n" +
		"   help: remove this ']' or add a '[' before it\n"
	if got != want {
		t.Errorf("Expected:\n%s\nGot:\n%s", want, got)
	}
}

// TestFormatColor tests that ANSI escapes appear only when requested
func TestFormatColor(t *testing.T) {
	loopErr := unmatchedLoopEnd(0, 1, 1, "]")

	colored := loopErr.Format(true)
	if !strings.Contains(colored, "\033[1;31m") {
		t.Errorf("Expected ANSI color codes, got %q", colored)
	}
	if !strings.Contains(colored, "\033[0m") {
		t.Errorf("Expected ANSI reset code, got %q", colored)
	}

	plain := loopErr.Format(false)
	if strings.Contains(plain, "\033[") {
		t.Errorf("Expected no ANSI codes, got %q", plain)
	}
}

// TestFormatWithoutSourceLine tests the generator-side errors, which carry
// instruction indices instead of source positions
func TestFormatWithoutSourceLine(t *testing.T) {
	loopErr := loopEndAtInstruction(3)

	got := loopErr.Format(false)
	if !strings.Contains(got, "--> instruction 3") {
		t.Errorf("Expected instruction index in location, got %q", got)
	}
	if strings.Contains(got, "|") {
		t.Errorf("Expected no source context without a source line, got %q", got)
	}
}

// TestLocationString tests the location rendering variants
func TestLocationString(t *testing.T) {
	tests := []struct {
		loc  SourceLocation
		want string
	}{
		{SourceLocation{File: "a.bf", Line: 3, Column: 7}, "a.bf:3:7"},
		{SourceLocation{Line: 1, Column: 1}, "1:1"},
		{SourceLocation{Offset: 5}, "instruction 5"},
		{SourceLocation{File: "a.bf", Offset: 5}, "a.bf"},
	}

	for _, tt := range tests {
		if got := tt.loc.String(); got != tt.want {
			t.Errorf("Expected %q, got %q", tt.want, got)
		}
	}
}

// TestErrorMessage tests the plain error interface output
func TestErrorMessage(t *testing.T) {
	loopErr := unmatchedLoopEnd(4, 2, 2, "+]")
	if got := loopErr.Error(); got != "2:2: ']' without a matching '['" {
		t.Errorf("Expected %q, got %q", "2:2: ']' without a matching '['", got)
	}
}

// TestSourceLineAt tests line extraction around an offset
func TestSourceLineAt(t *testing.T) {
	source := "first\nsecond\nthird"
	tests := []struct {
		offset int
		want   string
	}{
		{0, "first"},
		{4, "first"},
		{6, "second"},
		{11, "second"},
		{13, "third"},
		{-1, ""},
		{99, ""},
	}

	for _, tt := range tests {
		if got := sourceLineAt(source, tt.offset); got != tt.want {
			t.Errorf("sourceLineAt(%d): expected %q, got %q", tt.offset, tt.want, got)
		}
	}
}
