//go:build windows
// +build windows

package main

// Windows has no SIGUSR1, so rebuilds are triggered by file changes only.
func setupReloadSignal(recompile func(string)) {
}
