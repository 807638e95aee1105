// Completion: 100% - Platform-specific module complete
//go:build !windows
// +build !windows

package main

import (
	"os"
	"os/signal"
	"syscall"
)

// setupReloadSignal makes SIGUSR1 trigger a rebuild, so a recompile can be
// forced without touching the source file.
func setupReloadSignal(recompile func(string)) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGUSR1)
	go func() {
		for range sigChan {
			recompile("Manual rebuild triggered (SIGUSR1)")
		}
	}()
}
