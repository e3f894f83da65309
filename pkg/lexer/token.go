package lexer

import (
	"fmt"
)

type TokenType int

type Token struct {
	Type    TokenType // Type of the token
	Lexeme  string    // Actual string from source code
	Literal string    // Payload: identifier name, address text (with 0x) or text value
	Pos     Position  // Position in source code
}

// NewToken creates a new Token instance
func NewToken(tokenType TokenType, lexeme string, literal string, pos Position) Token {
	return Token{
		Type:    tokenType,
		Lexeme:  lexeme,
		Literal: literal,
		Pos:     pos,
	}
}

// NewText creates a position-less text token, used for resolved fragments
func NewText(value string) Token {
	return Token{Type: TEXT, Lexeme: value, Literal: value}
}

const (
	EOF TokenType = iota // End of file

	ID      // identifier (variable reference)
	ADDRESS // 0x-prefixed address literal
	TEXT    // text literal

	ASSIGN  // =
	NEWLINE // \n
)

var tokenNames = map[TokenType]string{
	EOF:     "$",
	ID:      "id",
	ADDRESS: "address",
	TEXT:    "text",
	ASSIGN:  "=",
	NEWLINE: "newline",
}

// String returns a string representation of the Token
func (t Token) String() string {
	if t.Literal == "" {
		return fmt.Sprintf("T_{%s, %q, nil, %s}",
			t.Type, t.Lexeme, t.Pos.String())
	}

	return fmt.Sprintf("T_{%s, %q, %q, %s}",
		t.Type, t.Lexeme, t.Literal, t.Pos.String())
}

// String returns a string representation of the TokenType
func (t TokenType) String() string {
	if str, ok := tokenNames[t]; ok {
		return str
	}

	return fmt.Sprintf("UNKNOWN(%d)", int(t))
}

