package parse

import (
	"github.com/yaklabco/flexar/pkg/diag"
)

// Step is one requirement of an alternative: a token test or a call to
// another symbol.
type Step[V any] struct {
	label   string
	pred    func(V) bool
	capture bool
	sub     func(st *state, cur *Cursor[V]) (any, *Failure)
	expect  func(at Cursor[V]) *diag.Diagnostic
}

// Tok requires the current token to satisfy pred and consumes it.
func Tok[V any](pred func(V) bool) Step[V] {
	return Step[V]{label: "token", pred: pred}
}

// Capture is Tok that also captures the lex.Token[V] it consumed.
func Capture[V any](pred func(V) bool) Step[V] {
	return Step[V]{label: "capture", pred: pred, capture: true}
}

// Sub parses sym at the current token and captures the resulting Node[U].
// A failure inside sym counts the steps already matched by the caller.
func Sub[V, U any](sym *Symbol[V, U]) Step[V] {
	return Step[V]{
		label:   sym.name,
		capture: true,
		sub: func(st *state, cur *Cursor[V]) (any, *Failure) {
			node, failure := sym.parse(st, cur)
			if failure != nil {
				return nil, failure
			}
			return node, nil
		},
	}
}

// Expect makes a token mismatch a recorded failure with the diagnostic built
// by fn, at the depth reached so far. Without Expect a mismatch just abandons
// the alternative. Expect has no effect on Sub steps.
func (s Step[V]) Expect(fn func(at Cursor[V]) *diag.Diagnostic) Step[V] {
	s.expect = fn
	return s
}

// Is returns a predicate matching values equal to want.
func Is[V comparable](want V) func(V) bool {
	return func(v V) bool {
		return v == want
	}
}

// match runs the step on cur. ok reports success; on failure, failure is the
// failure to record, or nil when the mismatch records nothing.
func (s Step[V]) match(st *state, cur *Cursor[V], depth int) (any, bool, *Failure) {
	if s.sub != nil {
		value, failure := s.sub(st, cur)
		if failure != nil {
			return nil, false, &Failure{Depth: depth + failure.Depth, Diag: failure.Diag}
		}
		return value, true, nil
	}

	tok, ok := cur.Current()
	if !ok || !s.pred(tok.Value) {
		if s.expect == nil {
			return nil, false, nil
		}
		d := s.expect(*cur)
		if d == nil {
			d = cur.unexpected()
		}
		return nil, false, &Failure{Depth: depth, Diag: d}
	}
	cur.Advance()
	if s.capture {
		return tok, true, nil
	}
	return nil, true, nil
}
