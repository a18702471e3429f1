package parse

import (
	"fmt"

	"github.com/yaklabco/flexar/pkg/diag"
)

// Symbol is a grammar symbol producing values of type T from tokens of
// type V. Create symbols first and Define them afterwards so that they can
// refer to each other recursively.
type Symbol[V, T any] struct {
	name  string
	block *Block[V, T]
}

// NewSymbol returns an undefined symbol.
func NewSymbol[V, T any](name string) *Symbol[V, T] {
	return &Symbol[V, T]{name: name}
}

// Name returns the symbol name.
func (s *Symbol[V, T]) Name() string {
	return s.name
}

// Define sets the symbol's alternatives. Defining a symbol twice, or with an
// alternative that neither builds a value nor continues into a nested block,
// panics with *diag.InternalError.
func (s *Symbol[V, T]) Define(block *Block[V, T]) *Symbol[V, T] {
	if s.block != nil {
		panic(&diag.InternalError{Msg: fmt.Sprintf("parse: symbol %s defined twice", s.name)})
	}
	block.validate(s.name)
	s.block = block
	return s
}

// Seq starts an alternative requiring steps in order.
func (s *Symbol[V, T]) Seq(steps ...Step[V]) *Alt[V, T] {
	return &Alt[V, T]{steps: steps}
}

// Block groups alternatives tried in declaration order.
func (s *Symbol[V, T]) Block(alts ...*Alt[V, T]) *Block[V, T] {
	return &Block[V, T]{alts: alts}
}

// Default is a fallback that succeeds with fn's value without consuming
// anything beyond what the enclosing alternatives already matched.
func (s *Symbol[V, T]) Default(fn func(vals Values) T) Fallback[V, T] {
	return Fallback[V, T]{
		apply: func(_ *state, cur Cursor[V], _ int, vals Values) result[V, T] {
			return result[V, T]{value: fn(vals), cursor: cur, ok: true}
		},
	}
}

// Raise is a fallback that fails with the diagnostic built by fn. fn sees
// the cursor where the block started.
func (s *Symbol[V, T]) Raise(fn func(at Cursor[V]) *diag.Diagnostic) Fallback[V, T] {
	return Fallback[V, T]{
		apply: func(_ *state, cur Cursor[V], baseline int, _ Values) result[V, T] {
			d := fn(cur)
			if d == nil {
				d = cur.unexpected()
			}
			return result[V, T]{cursor: cur, failure: &Failure{Depth: baseline, Diag: d}}
		},
	}
}

// Delegate is a fallback that parses other from where the block started and
// wraps its node. A failure of other is offset by the depth the block had
// reached.
func Delegate[V, T, U any](other *Symbol[V, U], wrap func(Node[U]) T) Fallback[V, T] {
	return Fallback[V, T]{
		apply: func(st *state, cur Cursor[V], baseline int, _ Values) result[V, T] {
			node, failure := other.parse(st, &cur)
			if failure != nil {
				return result[V, T]{
					cursor:  cur,
					failure: &Failure{Depth: baseline + failure.Depth, Diag: failure.Diag},
				}
			}
			return result[V, T]{value: wrap(node), cursor: cur, ok: true}
		},
	}
}

// Alt is one alternative of a block: a chain of steps finished by a builder
// or a nested block.
type Alt[V, T any] struct {
	steps []Step[V]
	build func(vals Values) T
	then  *Block[V, T]
}

// Build finishes the alternative with a value built from the captured values.
func (a *Alt[V, T]) Build(fn func(vals Values) T) *Alt[V, T] {
	a.build = fn
	return a
}

// Then continues the alternative into nested alternatives, which see the
// values captured so far followed by their own.
func (a *Alt[V, T]) Then(block *Block[V, T]) *Alt[V, T] {
	a.then = block
	return a
}

// Block is an ordered list of alternatives with an optional fallback.
type Block[V, T any] struct {
	alts     []*Alt[V, T]
	fallback *Fallback[V, T]
}

// Else sets the fallback applied when no alternative got past the block's
// starting depth.
func (b *Block[V, T]) Else(fallback Fallback[V, T]) *Block[V, T] {
	b.fallback = &fallback
	return b
}

// Fallback decides the outcome of a block whose alternatives all failed
// without getting deeper than the block itself. See Symbol.Default,
// Symbol.Raise and Delegate.
type Fallback[V, T any] struct {
	apply func(st *state, cur Cursor[V], baseline int, vals Values) result[V, T]
}

// result is the outcome of a block. A failed result with a nil failure
// recorded nothing.
type result[V, T any] struct {
	value   T
	cursor  Cursor[V]
	ok      bool
	failure *Failure
}

func (b *Block[V, T]) validate(name string) {
	for idx, alt := range b.alts {
		switch {
		case alt.build == nil && alt.then == nil:
			panic(&diag.InternalError{Msg: fmt.Sprintf("parse: symbol %s alternative %d has no Build or Then", name, idx)})
		case alt.build != nil && alt.then != nil:
			panic(&diag.InternalError{Msg: fmt.Sprintf("parse: symbol %s alternative %d has both Build and Then", name, idx)})
		case alt.then != nil:
			alt.then.validate(name)
		}
	}
}

// run tries the alternatives on children of cur. baseline is the depth
// already reached when the block starts and vals what was captured on the way.
func (b *Block[V, T]) run(st *state, cur Cursor[V], baseline int, vals Values) result[V, T] {
	var best *Failure
	record := func(failure *Failure) {
		if failure != nil && (best == nil || failure.Depth > best.Depth) {
			best = failure
		}
	}

	for _, alt := range b.alts {
		child := cur.Spawn()
		depth := baseline
		captured := append(Values(nil), vals...)

		matched := true
		for _, step := range alt.steps {
			value, ok, failure := step.match(st, &child, depth)
			if !ok {
				record(failure)
				matched = false
				break
			}
			depth++
			if step.capture {
				captured = append(captured, value)
			}
		}
		if !matched {
			continue
		}

		if alt.then != nil {
			res := alt.then.run(st, child, depth, captured)
			if res.ok {
				return res
			}
			record(res.failure)
			continue
		}
		return result[V, T]{value: alt.build(captured), cursor: child, ok: true}
	}

	if st.logger != nil && best != nil {
		st.logger.Debug("alternatives exhausted", "depth", best.Depth, "baseline", baseline, "code", best.Diag.Code)
	}

	if best != nil && best.Depth > baseline {
		return result[V, T]{cursor: cur, failure: best}
	}
	if b.fallback != nil {
		return b.fallback.apply(st, cur, baseline, vals)
	}
	return result[V, T]{cursor: cur, failure: best}
}

// parse runs the symbol at cur and commits on success.
func (s *Symbol[V, T]) parse(st *state, cur *Cursor[V]) (Node[T], *Failure) {
	if s.block == nil {
		panic(&diag.InternalError{Msg: fmt.Sprintf("parse: symbol %s used before Define", s.name)})
	}

	entry := *cur
	res := s.block.run(st, entry, 0, nil)
	if !res.ok {
		failure := res.failure
		if failure == nil {
			failure = &Failure{Depth: 0, Diag: entry.unexpected()}
		}
		if st.logger != nil {
			st.logger.Debug("symbol failed", "symbol", s.name, "depth", failure.Depth, "at", entry.Position().String())
		}
		return Node[T]{}, failure
	}

	cur.Commit(res.cursor)
	node := Node[T]{Pos: cur.spanFrom(entry), Value: res.value}
	if st.logger != nil {
		st.logger.Debug("commit", "symbol", s.name, "tokens", cur.Index()-entry.Index(), "pos", node.Pos.String())
	}
	return node, nil
}
