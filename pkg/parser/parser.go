package parser

import (
	"hexmac/pkg/lexer"

	"github.com/charmbracelet/log"
)

type Parser struct {
	lexer        *lexer.Lexer // lexer instance
	table        *SymbolTable // symbol table being built
	currentToken lexer.Token  // current token
}

// NewParser creates a new parser instance
func NewParser(l *lexer.Lexer) *Parser {
	return &Parser{
		lexer: l,
		table: NewSymbolTable(),
	}
}

// Parse reads every statement and returns the resulting symbol table.
// A later assignment to a name replaces the earlier one.
func (p *Parser) Parse() (*SymbolTable, error) {
	if err := p.nextToken(); err != nil {
		return nil, err
	}

	for p.currentToken.Type != lexer.EOF {
		switch p.currentToken.Type {
		case lexer.NEWLINE:
			// blank line
			if err := p.nextToken(); err != nil {
				return nil, err
			}
		case lexer.ID:
			if err := p.parseStatement(); err != nil {
				return nil, err
			}
		default:
			return nil, p.syntaxError("identifier")
		}
	}

	return p.table, nil
}

// parseStatement handles `id = operands... (newline | EOF)`
func (p *Parser) parseStatement() error {
	name := p.currentToken
	if err := p.nextToken(); err != nil {
		return err
	}

	if p.currentToken.Type != lexer.ASSIGN {
		return p.syntaxError("'='")
	}
	if err := p.nextToken(); err != nil {
		return err
	}

	body := []lexer.Token{}
	for p.currentToken.Type != lexer.NEWLINE && p.currentToken.Type != lexer.EOF {
		body = append(body, p.currentToken)
		if err := p.nextToken(); err != nil {
			return err
		}
	}

	// the last statement may end without a newline
	if p.currentToken.Type == lexer.NEWLINE {
		if err := p.nextToken(); err != nil {
			return err
		}
	}

	if p.table.Define(name.Literal, body, name.Pos) {
		log.Debug("Variable redefined", "name", name.Literal, "line", name.Pos.Line)
	} else {
		log.Debug("Variable defined", "name", name.Literal, "tokens", len(body), "line", name.Pos.Line)
	}

	return nil
}

// nextToken advances to the next token from the lexer
func (p *Parser) nextToken() error {
	tok, err := p.lexer.NextToken()
	if err != nil {
		return err
	}
	p.currentToken = tok
	return nil
}
