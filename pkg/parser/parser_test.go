package parser_test

import (
	"errors"
	"hexmac/pkg/lexer"
	"hexmac/pkg/parser"
	"slices"
	"testing"
)

func parse(t *testing.T, input string) *parser.SymbolTable {
	t.Helper()
	table, err := parser.NewParser(lexer.NewLexer(input)).Parse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return table
}

func TestStatements(t *testing.T) {
	table := parse(t, "a = \"abc\" 0x1 \"def\"\nout = a\n")

	if table.Len() != 2 {
		t.Fatalf("expected 2 definitions, got %d", table.Len())
	}

	body, ok := table.Lookup("a")
	if !ok {
		t.Fatalf("expected a to be defined")
	}

	expected := []lexer.TokenType{lexer.TEXT, lexer.ADDRESS, lexer.TEXT}
	for i, tt := range expected {
		if body[i].Type != tt {
			t.Errorf("Token %d: expected %s, got %s", i, tt, body[i].Type)
		}
	}

	out, _ := table.Lookup("out")
	if len(out) != 1 || out[0].Type != lexer.ID || out[0].Literal != "a" {
		t.Errorf("unexpected body for out: %v", out)
	}
}

func TestFinalStatementWithoutNewline(t *testing.T) {
	table := parse(t, "out = \"x\" 0x41")

	body, ok := table.Lookup("out")
	if !ok || len(body) != 2 {
		t.Fatalf("expected out with 2 tokens, got %v", body)
	}
}

func TestBlankAndCommentLines(t *testing.T) {
	plain := parse(t, "a = \"1\"\nout = a\n")
	commented := parse(t, "// leading\n\n\na = \"1\" // trailing\n  // between\n\nout = a\n\n")

	if !slices.Equal(plain.Names(), commented.Names()) {
		t.Fatalf("expected names %v, got %v", plain.Names(), commented.Names())
	}
	for _, name := range plain.Names() {
		a, _ := plain.Lookup(name)
		b, _ := commented.Lookup(name)
		if len(a) != len(b) {
			t.Errorf("%s: expected %d tokens, got %d", name, len(a), len(b))
		}
	}
}

func TestRedefinition(t *testing.T) {
	table := parse(t, "a = \"first\"\na = \"second\"\nout = a")

	body, _ := table.Lookup("a")
	if len(body) != 1 || body[0].Literal != "second" {
		t.Errorf("expected last definition to win, got %v", body)
	}

	def, _ := table.Definition("a")
	if def.Pos.Line != 2 {
		t.Errorf("expected definition on line 2, got %d", def.Pos.Line)
	}
}

func TestEmptyDefinition(t *testing.T) {
	table := parse(t, "empty =\nout = empty")

	body, ok := table.Lookup("empty")
	if !ok || len(body) != 0 {
		t.Errorf("expected empty body, got %v (defined %v)", body, ok)
	}
}

func TestNames(t *testing.T) {
	table := parse(t, "zeta = \"z\"\nalpha = \"a\"\nout = alpha zeta")

	expected := []string{"alpha", "out", "zeta"}
	if !slices.Equal(table.Names(), expected) {
		t.Errorf("expected %v, got %v", expected, table.Names())
	}
}

func TestSyntaxErrors(t *testing.T) {
	tests := []struct {
		input       string
		expected    string
		line        int
		description string
	}{
		{"a \"x\"\n", "'='", 1, "missing assignment"},
		{"a\n", "'='", 1, "identifier alone"},
		{"a", "'='", 1, "identifier at end of input"},
		{"= \"x\"\n", "identifier", 1, "missing identifier"},
		{"a = \"x\"\n\"y\" = a\n", "identifier", 2, "text at statement start"},
		{"0x41 = a\n", "identifier", 1, "address at statement start"},
	}

	for _, test := range tests {
		_, err := parser.NewParser(lexer.NewLexer(test.input)).Parse()
		var syntaxErr *parser.SyntaxError
		if !errors.As(err, &syntaxErr) {
			t.Errorf("%s: expected SyntaxError, got %v", test.description, err)
			continue
		}
		if syntaxErr.Expected != test.expected {
			t.Errorf("%s: expected %s, got %s", test.description, test.expected, syntaxErr.Expected)
		}
		if syntaxErr.Found.Pos.Line != test.line {
			t.Errorf("%s: expected line %d, got %d", test.description, test.line, syntaxErr.Found.Pos.Line)
		}
	}
}

func TestLexErrorPropagates(t *testing.T) {
	_, err := parser.NewParser(lexer.NewLexer("out = \"open")).Parse()
	var lexErr *lexer.LexError
	if !errors.As(err, &lexErr) {
		t.Errorf("expected LexError, got %v", err)
	}
}
