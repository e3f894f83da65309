package compiler

import "fmt"

// UsageError reports a missing or invalid command-line argument
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string {
	return e.Msg
}

// IoError reports a source or output file that could not be read or written
type IoError struct {
	Op   string // "read" or "write"
	Path string
	Err  error
}

func (e *IoError) Error() string {
	return fmt.Sprintf("could not %s file %s: %v", e.Op, e.Path, e.Err)
}

func (e *IoError) Unwrap() error {
	return e.Err
}
