package resolver

import (
	"hexmac/pkg/lexer"
	"hexmac/pkg/parser"
	"hexmac/pkg/parser/stack"

	"github.com/charmbracelet/log"
)

// OutName is the variable whose expansion is the program output
const OutName = "out"

// DefaultMaxDepth bounds how many definitions may be open at once
const DefaultMaxDepth = 1024

// frame is one definition being expanded
type frame struct {
	name string
	body []lexer.Token
	next int // index of the next body token to expand
}

// Resolver expands variables into flat sequences of text tokens
type Resolver struct {
	table    *parser.SymbolTable
	maxDepth int // 0 = unlimited
}

type Option func(*Resolver)

// WithMaxDepth sets the maximum number of nested definitions (0 = unlimited)
func WithMaxDepth(n int) Option {
	return func(r *Resolver) { r.maxDepth = n }
}

// NewResolver creates a resolver over a finished symbol table
func NewResolver(table *parser.SymbolTable, opts ...Option) *Resolver {
	r := &Resolver{
		table:    table,
		maxDepth: DefaultMaxDepth,
	}

	for _, o := range opts {
		o(r)
	}

	return r
}

// ResolveOut expands the `out` variable
func (r *Resolver) ResolveOut() ([]lexer.Token, error) {
	if !r.table.Has(OutName) {
		return nil, &MissingOutError{}
	}

	return r.Resolve(OutName)
}

// Resolve expands a variable depth-first, left to right. References are
// followed with an explicit stack; reaching a name that is still being
// expanded is a CyclicDefinitionError.
func (r *Resolver) Resolve(name string) ([]lexer.Token, error) {
	body, ok := r.table.Lookup(name)
	if !ok {
		return nil, &UndefinedVariableError{Name: name}
	}

	result := []lexer.Token{}
	active := map[string]bool{name: true}
	work := stack.NewStack(&frame{name: name, body: body})

	for work.Size() > 0 {
		top, _ := work.Peek()

		if top.next >= len(top.body) {
			work.Pop()
			delete(active, top.name)
			continue
		}

		tok := top.body[top.next]
		top.next++

		switch tok.Type {
		case lexer.ID:
			ref := tok.Literal
			refBody, ok := r.table.Lookup(ref)
			if !ok {
				return nil, &UndefinedVariableError{Name: ref, Pos: tok.Pos}
			}

			if active[ref] {
				return nil, &CyclicDefinitionError{Chain: cycleChain(work, ref), Pos: tok.Pos}
			}

			if r.maxDepth > 0 && work.Size() >= r.maxDepth {
				return nil, &DepthExceededError{Limit: r.maxDepth, Name: ref}
			}

			active[ref] = true
			work.Push(&frame{name: ref, body: refBody})

		case lexer.ADDRESS:
			result = append(result, lexer.NewText(EncodeAddress(tok.Literal)))

		case lexer.TEXT:
			result = append(result, tok)

		default:
			// structural tokens expand to nothing
		}
	}

	log.Debug("Resolved variable", "name", name, "fragments", len(result))

	return result, nil
}

// cycleChain lists the open definitions from the first occurrence of name, closed by name again
func cycleChain(work *stack.Stack[*frame], name string) []string {
	chain := []string{}
	for _, f := range work.Array() {
		if f.name == name || len(chain) > 0 {
			chain = append(chain, f.name)
		}
	}

	return append(chain, name)
}
