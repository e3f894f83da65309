package lexer

import "fmt"

// LexError reports a literal that could not be scanned
type LexError struct {
	Msg string
	Pos Position
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s at %s", e.Msg, e.Pos.Location())
}

func newLexError(msg string, pos Position) *LexError {
	return &LexError{Msg: msg, Pos: pos}
}
