package lexer

import (
	"regexp"
)

// Token regex patterns. Alphanumeric means any Unicode letter or digit.
var tokenRegexes = map[TokenType]*regexp.Regexp{
	NEWLINE: regexp.MustCompile(`^\n`),
	ASSIGN:  regexp.MustCompile(`^=`),

	TEXT:    regexp.MustCompile(`^"[^"]*"`),
	ADDRESS: regexp.MustCompile(`^0x[\p{L}\p{N}]*`),
	ID:      regexp.MustCompile(`^[\p{L}\p{N}]+`),
}

var commentRegex = regexp.MustCompile(`^//[^\n]*`)

// Token precedence order for matching (an address wins over an identifier starting with 0x)
var tokenPrecedenceOrder = []TokenType{
	NEWLINE, ASSIGN, TEXT, ADDRESS, ID,
}

// Match the first token kind in precedence order at the start of the string
func MatchToken(s string) (TokenType, string, bool) {
	if s == "" {
		return EOF, "", false
	}

	for _, tokenType := range tokenPrecedenceOrder {
		if regex, ok := tokenRegexes[tokenType]; ok {
			if match := regex.FindString(s); match != "" {
				return tokenType, match, true
			}
		}
	}

	return EOF, "", false
}

// Check if the string starts with a line comment
func isComment(s string) bool {
	return commentRegex.MatchString(s)
}
