package emitter

import (
	"fmt"
	"hexmac/pkg/lexer"
	"io"
	"strings"
)

// InvariantViolationError means a non-text token survived resolution
type InvariantViolationError struct {
	Found lexer.Token
}

func (e *InvariantViolationError) Error() string {
	return fmt.Sprintf("emitter accepts only text tokens, found %s", e.Found.Type)
}

// Emit concatenates resolved text tokens in order
func Emit(tokens []lexer.Token) (string, error) {
	var sb strings.Builder
	for _, tok := range tokens {
		if tok.Type != lexer.TEXT {
			return "", &InvariantViolationError{Found: tok}
		}
		sb.WriteString(tok.Literal)
	}

	return sb.String(), nil
}

// WriteLine emits the tokens to w followed by a newline. Nothing is written on error.
func WriteLine(w io.Writer, tokens []lexer.Token) error {
	out, err := Emit(tokens)
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, out+"\n")
	return err
}
