package parser

import (
	"hexmac/pkg/lexer"
	"slices"
)

// Definition is the unresolved right-hand side of one assignment
type Definition struct {
	Name string        // variable name
	Body []lexer.Token // operands in source order
	Pos  lexer.Position
}

// SymbolTable maps variable names to their latest definition.
// It is filled by the parser and only read afterwards.
type SymbolTable struct {
	defs map[string]Definition
}

// NewSymbolTable creates an empty symbol table
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{defs: make(map[string]Definition)}
}

// Define inserts or overwrites a definition and reports whether an earlier one was replaced
func (s *SymbolTable) Define(name string, body []lexer.Token, pos lexer.Position) bool {
	_, redefined := s.defs[name]
	s.defs[name] = Definition{Name: name, Body: body, Pos: pos}
	return redefined
}

// Lookup returns the definition body of a variable
func (s *SymbolTable) Lookup(name string) ([]lexer.Token, bool) {
	def, ok := s.defs[name]
	return def.Body, ok
}

// Definition returns the full definition of a variable
func (s *SymbolTable) Definition(name string) (Definition, bool) {
	def, ok := s.defs[name]
	return def, ok
}

// Has checks if a variable is defined
func (s *SymbolTable) Has(name string) bool {
	_, ok := s.defs[name]
	return ok
}

// Len returns the number of defined variables
func (s *SymbolTable) Len() int {
	return len(s.defs)
}

// Names returns all defined variable names in sorted order
func (s *SymbolTable) Names() []string {
	names := make([]string, 0, len(s.defs))
	for name := range s.defs {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
