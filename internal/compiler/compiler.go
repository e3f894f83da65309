package compiler

import (
	"bytes"
	"fmt"
	"hexmac/pkg/color"
	"hexmac/pkg/emitter"
	"hexmac/pkg/lexer"
	"hexmac/pkg/parser"
	"hexmac/pkg/resolver"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

type Compiler struct {
	Help        bool      // Show help message
	Verbose     bool      // Enable verbose output
	NoColor     bool      // Disable colored output
	DumpSymbols bool      // Print every resolved variable to Stderr
	MaxDepth    int       // Maximum nested definitions (0 = unlimited)
	SourceFile  string    // Path to the source file
	OutputFile  string    // Path to the output file, empty for Stdout
	Stdout      io.Writer // Program output, defaults to os.Stdout
	Stderr      io.Writer // Symbol dump, defaults to os.Stderr
}

// Compile reads the source file, expands `out` and writes the result followed by a newline.
// Nothing is written unless every stage succeeds.
func (opts *Compiler) Compile() error {
	if opts.SourceFile == "" {
		return &UsageError{Msg: "Filename Wasnt provided"}
	}

	log.Info("Processing file", "file", opts.SourceFile)

	input, err := os.ReadFile(opts.SourceFile)
	if err != nil {
		return &IoError{Op: "read", Path: opts.SourceFile, Err: err}
	}

	tokens, err := opts.resolve(string(input))
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := emitter.WriteLine(&buf, tokens); err != nil {
		return err
	}

	return opts.write(buf.Bytes())
}

// CompileSource runs the pipeline on source text and returns the expansion of `out`
func (opts *Compiler) CompileSource(source string) (string, error) {
	tokens, err := opts.resolve(source)
	if err != nil {
		return "", err
	}

	return emitter.Emit(tokens)
}

// resolve lexes and parses the source, then expands `out`
func (opts *Compiler) resolve(source string) ([]lexer.Token, error) {
	table, err := parser.NewParser(lexer.NewLexer(source)).Parse()
	if err != nil {
		return nil, err
	}

	log.Debug("Symbol table built", "variables", table.Len())

	r := resolver.NewResolver(table, resolver.WithMaxDepth(opts.MaxDepth))

	if opts.DumpSymbols {
		opts.dump(table, r)
	}

	return r.ResolveOut()
}

// dump prints `name = expansion` for every variable, sorted by name
func (opts *Compiler) dump(table *parser.SymbolTable, r *resolver.Resolver) {
	w := opts.Stderr
	if w == nil {
		w = os.Stderr
	}

	fmt.Fprintln(w, color.GreenText("=== Symbols ==="))
	for _, name := range table.Names() {
		tokens, err := r.Resolve(name)
		if err != nil {
			fmt.Fprintln(w, color.Assignment(name, color.GrayText(err.Error())))
			continue
		}

		value, err := emitter.Emit(tokens)
		if err != nil {
			fmt.Fprintln(w, color.Assignment(name, color.GrayText(err.Error())))
			continue
		}

		fmt.Fprintln(w, color.Assignment(name, value))
	}
}

// write sends the output to Stdout, or replaces OutputFile through a temporary file
func (opts *Compiler) write(data []byte) error {
	if opts.OutputFile == "" {
		w := opts.Stdout
		if w == nil {
			w = os.Stdout
		}
		_, err := w.Write(data)
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(opts.OutputFile), ".hexmac-*")
	if err != nil {
		return &IoError{Op: "write", Path: opts.OutputFile, Err: err}
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return &IoError{Op: "write", Path: opts.OutputFile, Err: err}
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return &IoError{Op: "write", Path: opts.OutputFile, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &IoError{Op: "write", Path: opts.OutputFile, Err: err}
	}
	if err := os.Rename(tmp.Name(), opts.OutputFile); err != nil {
		return &IoError{Op: "write", Path: opts.OutputFile, Err: err}
	}

	log.Info("Output written", "file", opts.OutputFile, "bytes", len(data))
	return nil
}
