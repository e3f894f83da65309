package resolver

import (
	"fmt"
	"hexmac/pkg/lexer"
	"strings"
)

// UndefinedVariableError reports a reference to a name with no definition
type UndefinedVariableError struct {
	Name string
	Pos  lexer.Position // position of the reference, zero when requested directly
}

func (e *UndefinedVariableError) Error() string {
	if !e.Pos.IsValid() {
		return fmt.Sprintf("%s doesn't exist", e.Name)
	}
	return fmt.Sprintf("%s doesn't exist (%s)", e.Name, e.Pos.Location())
}

// CyclicDefinitionError reports a variable whose expansion reaches itself
type CyclicDefinitionError struct {
	Chain []string // names from the first occurrence back to it, e.g. a b a
	Pos   lexer.Position
}

func (e *CyclicDefinitionError) Error() string {
	return "cyclic definition: " + strings.Join(e.Chain, " -> ")
}

// MissingOutError reports a program without an `out` binding
type MissingOutError struct{}

func (e *MissingOutError) Error() string {
	return "Return variable " + OutName + " wasnt provided"
}

// DepthExceededError reports an expansion nested deeper than the configured limit
type DepthExceededError struct {
	Limit int
	Name  string
}

func (e *DepthExceededError) Error() string {
	return fmt.Sprintf("expansion depth exceeded %d while expanding %s", e.Limit, e.Name)
}
