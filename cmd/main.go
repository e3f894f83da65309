package main

import (
	"flag"
	"fmt"
	"hexmac/internal/compiler"
	"hexmac/internal/config"
	"hexmac/internal/logger"
	"hexmac/pkg/color"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Main entry point for the hexmac compiler.
func main() {
	os.Exit(run(os.Args[0], os.Args[1:], os.Stdout, os.Stderr))
}

// run parses the arguments, compiles the source file and returns the exit code.
// Every failure is reported as a single `Error: <message>` line on stdout.
func run(name string, args []string, stdout, stderr io.Writer) int {
	cfg := config.Load()
	options := compiler.Compiler{Stdout: stdout, Stderr: stderr}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.BoolVar(&options.Help, "h", false, "Show help")
	fs.BoolVar(&options.Verbose, "v", cfg.Verbose, "Verbose mode")
	fs.BoolVar(&options.NoColor, "n", cfg.NoColor, "No color")
	fs.BoolVar(&options.DumpSymbols, "t", false, "Print every resolved variable to stderr")
	fs.IntVar(&options.MaxDepth, "d", cfg.MaxDepth, "Maximum expansion depth (0 = unlimited)")
	fs.StringVar(&options.OutputFile, "o", "", "Write output to a file instead of stdout")

	color.EnableColor(color.Detect(stdout))

	if err := fs.Parse(args); err != nil {
		return report(stdout, err)
	}

	logger.InitWriter(stderr, options.Verbose, options.NoColor)
	if options.Help {
		fmt.Fprintf(stdout, "Usage: %s [options] <file>\n", name)
		fmt.Fprintln(stdout, "Options:")
		fs.SetOutput(stdout)
		fs.PrintDefaults()
		return 0
	}

	if options.NoColor {
		color.EnableColor(false)
	}

	if fs.NArg() > 0 {
		options.SourceFile = fs.Arg(0)
	}

	if err := options.Compile(); err != nil {
		log.Debug("Compilation failed", "error", err)
		return report(stdout, err)
	}

	return 0
}

func report(w io.Writer, err error) int {
	fmt.Fprintln(w, color.Error(err.Error()))
	return 1
}
