// Completion: 100% - environment configuration complete
package main

import (
	"time"

	"github.com/xyproto/env/v2"
)

// DefaultTapeSize is the conventional Brainfuck tape length, in cells.
const DefaultTapeSize = 30000

// configuredTapeSize returns the tape size from BFASM_TAPE_SIZE, falling
// back to DefaultTapeSize when unset or not a positive number.
func configuredTapeSize() int {
	size := env.Int("BFASM_TAPE_SIZE", DefaultTapeSize)
	if size <= 0 {
		return DefaultTapeSize
	}
	return size
}

// colorEnabled reports whether diagnostics should use ANSI colors.
// Honors the NO_COLOR convention: any non-empty value disables color.
func colorEnabled() bool {
	return !env.Has("NO_COLOR")
}

// watchDebounce returns the delay between a file change and a rebuild,
// from BFASM_WATCH_DEBOUNCE_MS.
func watchDebounce() time.Duration {
	ms := env.Int("BFASM_WATCH_DEBOUNCE_MS", 500)
	if ms <= 0 {
		ms = 500
	}
	return time.Duration(ms) * time.Millisecond
}
