package lexer

import (
	"unicode"
	"unicode/utf8"
)

type Lexer struct {
	input    string // input string to be tokenized
	length   int    // length of the input string
	position int    // current position in the input string
	line     int    // current line number for error reporting
	column   int    // current column number for error reporting
}

// Create a new lexer instance
func NewLexer(s string) *Lexer {
	return &Lexer{
		input:    s,
		length:   len(s),
		position: 0,
		line:     1,
		column:   1,
	}
}

// Get the next token from the input. Characters that start no token are skipped.
func (l *Lexer) NextToken() (Token, error) {
	for {
		l.skipWhitespace()

		// End of input
		if l.position >= l.length {
			return NewToken(EOF, "", "", l.currentPosition()), nil
		}

		remaining := l.input[l.position:]
		pos := l.currentPosition()
		tokenType, lexeme, matched := MatchToken(remaining)

		if !matched {
			if remaining[0] == '"' {
				return Token{}, newLexError("unterminated text literal", pos)
			}

			_, size := utf8.DecodeRuneInString(remaining)
			l.advance(size)
			continue
		}

		var literal string
		switch tokenType {
		case TEXT:
			// Remove the surrounding quotes from the lexeme
			literal = lexeme[1 : len(lexeme)-1]
		case ADDRESS:
			// a bare 0x is an empty address unless the input ends right after it
			if len(lexeme) == len("0x") && len(remaining) == len(lexeme) {
				return Token{}, newLexError("unterminated address literal", pos)
			}
			literal = lexeme
		case NEWLINE, ASSIGN:
			literal = ""
		default:
			literal = lexeme
		}

		l.advance(len(lexeme))
		return NewToken(tokenType, lexeme, literal, pos), nil
	}
}

// Tokenize scans the whole input, without the trailing EOF token
func (l *Lexer) Tokenize() ([]Token, error) {
	tokens := []Token{}
	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}
		if tok.Type == EOF {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}

// Skip horizontal whitespace and comments. Newlines are tokens and are never skipped.
func (l *Lexer) skipWhitespace() {
	for l.position < l.length {
		r, size := utf8.DecodeRuneInString(l.input[l.position:])

		if r != '\n' && unicode.IsSpace(r) {
			l.advance(size)
		} else if isComment(l.input[l.position:]) {
			// the comment stops before its newline so the statement still ends there
			match := commentRegex.FindString(l.input[l.position:])
			l.advance(len(match))
		} else {
			break
		}
	}
}

// Advance the lexer position by n bytes
func (l *Lexer) advance(n int) {
	end := min(l.position+n, l.length)

	for l.position < end {
		r, size := utf8.DecodeRuneInString(l.input[l.position:])
		if r == '\n' {
			l.line++
			l.column = 1
		} else {
			l.column++
		}

		l.position += size
	}
}

// Get the current position of the lexer
func (l *Lexer) currentPosition() Position {
	return Position{
		Line:   l.line,
		Column: l.column,
		Offset: l.position,
	}
}
