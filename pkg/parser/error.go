package parser

import (
	"fmt"
	"hexmac/pkg/lexer"
)

// SyntaxError reports a statement that is not `identifier = expression`
type SyntaxError struct {
	Expected string      // what the statement needed at this point
	Found    lexer.Token // the token found instead
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("expected %s at %s", e.Expected, e.Found.Pos.Location())
}

// syntaxError builds an error for the current token
func (p *Parser) syntaxError(expected string) error {
	return &SyntaxError{Expected: expected, Found: p.currentToken}
}
