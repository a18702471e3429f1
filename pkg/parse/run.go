package parse

import (
	"github.com/charmbracelet/log"

	"github.com/yaklabco/flexar/pkg/diag"
	"github.com/yaklabco/flexar/pkg/lex"
)

type state struct {
	logger *log.Logger
}

// Option configures a parse run.
type Option func(*state)

// WithLogger traces symbol commits and exhausted alternatives at debug level.
func WithLogger(logger *log.Logger) Option {
	return func(st *state) {
		st.logger = logger
	}
}

func newState(opts []Option) *state {
	st := &state{}
	for _, opt := range opts {
		opt(st)
	}
	return st
}

// Run parses tokens as a single sym and requires every token to be consumed.
// The error is the winning failure's *diag.Diagnostic, or a trailing-input
// diagnostic when tokens remain.
func Run[V, T any](sym *Symbol[V, T], tokens []lex.Token[V], opts ...Option) (Node[T], error) {
	st := newState(opts)
	cur := NewCursor(tokens)

	node, failure := sym.parse(st, &cur)
	if failure != nil {
		return Node[T]{}, failure.Diag
	}
	if tok, ok := cur.Current(); ok {
		return Node[T]{}, diag.TrailingInput.At(tok.Pos, tok.Value)
	}
	return node, nil
}

// All parses sym repeatedly until every token is consumed and returns the
// nodes in order. Empty input yields no nodes. The first failure stops
// parsing.
func All[V, T any](sym *Symbol[V, T], tokens []lex.Token[V], opts ...Option) ([]Node[T], error) {
	st := newState(opts)
	cur := NewCursor(tokens)

	var nodes []Node[T]
	for !cur.AtEOF() {
		before := cur.Index()
		node, failure := sym.parse(st, &cur)
		if failure != nil {
			return nil, failure.Diag
		}
		if cur.Index() == before {
			tok, _ := cur.Current()
			return nil, diag.UnexpectedToken.At(tok.Pos, tok.Value)
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}
