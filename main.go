// Completion: 95% - CLI complete, watch mode functional
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// A small compiler from Brainfuck to x86-64 assembly for 64-bit Windows

const versionString = "bfasm 1.2.0"

// Global flags for controlling output verbosity
var (
	VerboseMode bool
	QuietMode   bool
)

func main() {
	// NOTE: Go's flag package stops parsing at the first non-flag argument
	// So flags must come BEFORE the filename: bfasm -o out.asm program.bf
	// NOT: bfasm program.bf -o out.asm
	var outputFlag = flag.String("o", "", "output assembly filename")
	var outputLongFlag = flag.String("output", "", "output assembly filename")
	var versionShort = flag.Bool("V", false, "print version information and exit")
	var version = flag.Bool("version", false, "print version information and exit")
	var verbose = flag.Bool("v", false, "verbose mode (show compilation details)")
	var verboseLong = flag.Bool("verbose", false, "verbose mode (show compilation details)")
	var quiet = flag.Bool("q", false, "quiet mode (suppress the output filename message)")
	var quietLong = flag.Bool("quiet", false, "quiet mode (suppress the output filename message)")
	var codeFlag = flag.String("c", "", "compile Brainfuck code given on the command line")
	var stdoutFlag = flag.Bool("stdout", false, "write the generated assembly to standard output")
	var tapeSizeFlag = flag.Int("tape-size", 0, "tape size in cells (default: BFASM_TAPE_SIZE or 30000)")
	var watchFlag = flag.Bool("watch", false, "watch mode: recompile when the source file changes")
	flag.Usage = usage
	flag.Parse()

	if *version || *versionShort {
		fmt.Println(versionString)
		os.Exit(0)
	}

	// Set global verbosity flags (use whichever was specified)
	VerboseMode = *verbose || *verboseLong
	QuietMode = *quiet || *quietLong

	opts := GeneratorOptions{TapeSize: *tapeSizeFlag}

	// Use whichever output flag was specified (prefer short form if both given)
	outputFile := *outputLongFlag
	if *outputFlag != "" {
		outputFile = *outputFlag
	}
	outputFlagProvided := outputFile != ""

	if VerboseMode {
		fmt.Fprintf(os.Stderr, "----=[ %s ]=----\n", versionString)
	}

	// Handle -c flag for inline code compilation
	if *codeFlag != "" {
		asm, err := CompileWithOptions(*codeFlag, "", opts)
		if err != nil {
			reportError(err)
			os.Exit(1)
		}
		if outputFlagProvided && !*stdoutFlag {
			if err := os.WriteFile(outputFile, []byte(asm), 0o644); err != nil {
				fmt.Fprintf(os.Stderr, "Error: could not write %s: %v\n", outputFile, err)
				os.Exit(1)
			}
			if !QuietMode {
				fmt.Println(outputFile)
			}
		} else {
			fmt.Print(asm)
		}
		return
	}

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(1)
	}
	if len(args) > 1 {
		fmt.Fprintf(os.Stderr, "Error: expected one source file, got %d\n", len(args))
		os.Exit(1)
	}

	sourceFile := args[0]
	if !outputFlagProvided {
		outputFile = DeriveOutputPath(sourceFile)
	}

	if *stdoutFlag {
		data, err := os.ReadFile(sourceFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: could not read %s: %v\n", sourceFile, err)
			os.Exit(1)
		}
		asm, err := CompileWithOptions(string(data), filepath.Base(sourceFile), opts)
		if err != nil {
			reportError(err)
			os.Exit(1)
		}
		fmt.Print(asm)
		return
	}

	if err := CompileFile(sourceFile, outputFile, opts); err != nil {
		reportError(err)
		os.Exit(1)
	}

	if VerboseMode {
		fmt.Fprintf(os.Stderr, "-> Wrote assembly: %s\n", outputFile)
	} else if !outputFlagProvided && !QuietMode {
		fmt.Println(outputFile)
	}

	if *watchFlag {
		if err := watchAndRecompile(sourceFile, outputFile, opts); err != nil {
			fmt.Fprintf(os.Stderr, "Watch error: %v\n", err)
			os.Exit(1)
		}
	}
}

// reportError prints a compile error, with source context when available
func reportError(err error) {
	var loopErr *UnbalancedLoopError
	if errors.As(err, &loopErr) {
		fmt.Fprint(os.Stderr, loopErr.Format(colorEnabled()))
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}

// usage displays usage information
func usage() {
	fmt.Printf(`bfasm - Brainfuck to x86-64 assembly compiler (%s)

USAGE:
    bfasm [flags] <file.bf>

The generated assembly targets 64-bit Windows (NASM syntax, Intel style)
and calls putchar and _getch from the C runtime for I/O.

FLAGS:
    -o, --output <file>    Output assembly filename (default: input name with .asm)
    -c <code>              Compile Brainfuck code given on the command line
    --stdout               Write the generated assembly to standard output
    --tape-size <cells>    Tape size in cells (default: BFASM_TAPE_SIZE or 30000)
    --watch                Recompile whenever the source file changes
    -q, --quiet            Quiet mode (suppress the output filename message)
    -v, --verbose          Verbose mode (show compilation details)
    -V, --version          Print version information and exit

EXAMPLES:
    # Compile a program
    bfasm hello.bf
    bfasm -o build/hello.asm hello.bf

    # Compile a one-liner to stdout
    bfasm -c '++++++++[>++++++++<-]>+.'

    # Keep recompiling while editing
    bfasm --watch hello.bf

ASSEMBLING:
    nasm -f win64 hello.asm -o hello.obj
    gcc hello.obj -o hello.exe

ENVIRONMENT:
    BFASM_TAPE_SIZE           Tape size in cells (default: 30000)
    NO_COLOR                  Disable colored diagnostics
    BFASM_WATCH_DEBOUNCE_MS   Delay before rebuilding in watch mode (default: 500)

`, versionString)
}

func watchAndRecompile(sourceFile, outputFile string, opts GeneratorOptions) error {
	absPath, err := filepath.Abs(sourceFile)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "\n🔥 Watch mode enabled - monitoring %s\n", absPath)
	fmt.Fprintf(os.Stderr, "Press Ctrl+C to stop, or send SIGUSR1 to trigger a manual rebuild\n")
	fmt.Fprintf(os.Stderr, "Command: kill -USR1 %d\n\n", os.Getpid())

	// Create recompile function that can be called from multiple sources
	recompile := func(trigger string) {
		fmt.Fprintf(os.Stderr, "\n[%s] %s\n", time.Now().Format("15:04:05"), trigger)

		if err := CompileFile(absPath, outputFile, opts); err != nil {
			fmt.Fprintf(os.Stderr, "❌ Compilation failed\n")
			reportError(err)
			return
		}

		fmt.Fprintf(os.Stderr, "✅ Wrote %s\n", outputFile)
	}

	// Set up signal handler for USR1
	setupReloadSignal(recompile)

	// Set up file watcher
	watcher, err := NewFileWatcher(func(path string) {
		recompile(fmt.Sprintf("File changed: %s", filepath.Base(path)))
	})
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %v", err)
	}
	defer watcher.Close()

	if err := watcher.AddFile(absPath); err != nil {
		return fmt.Errorf("failed to watch file: %v", err)
	}

	watcher.Watch()
	return nil
}
