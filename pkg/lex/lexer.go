package lex

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/flexar/pkg/diag"
	"github.com/yaklabco/flexar/pkg/source"
)

// NoMatchFunc builds the diagnostic raised when no rule accepts char.
type NoMatchFunc func(pos source.Position, char rune) *diag.Diagnostic

// Option configures a Lexer.
type Option func(*options)

type options struct {
	noMatch NoMatchFunc
	logger  *log.Logger
}

// WithNoMatch replaces the default "invalid character" diagnostic. A nil
// result falls back to the default.
func WithNoMatch(fn NoMatchFunc) Option {
	return func(o *options) {
		o.noMatch = fn
	}
}

// WithLogger traces emitted tokens at debug level.
func WithLogger(logger *log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Lexer applies an ordered rule list to source text.
// A Lexer is immutable and may be shared between goroutines.
type Lexer[V any] struct {
	rules []Rule[V]
	opts  options
}

// New returns a lexer trying rules in the given order.
func New[V any](rules []Rule[V], opts ...Option) *Lexer[V] {
	lexer := &Lexer[V]{
		rules: append([]Rule[V](nil), rules...),
	}
	for _, opt := range opts {
		opt(&lexer.opts)
	}
	return lexer
}

// Lex tokenizes text under the given file name.
func (l *Lexer[V]) Lex(name, text string) ([]Token[V], error) {
	return l.Tokenize(source.NewFileContent(name, text))
}

// Tokenize runs the rules over file until end of input. The first diagnostic
// stops tokenization and is returned as the error.
func (l *Lexer[V]) Tokenize(file *source.FileContent) ([]Token[V], error) {
	var tokens []Token[V]

	cursor := NewMatchCursor(source.Start(file))
	for !cursor.AtEOF() {
		tok, emit, err := l.step(&cursor)
		if err != nil {
			if l.opts.logger != nil {
				l.opts.logger.Debug("lex failed", "file", file.Name(), "tokens", len(tokens), "error", err)
			}
			return nil, err
		}
		if emit {
			tokens = append(tokens, tok)
		}
	}

	if l.opts.logger != nil {
		l.opts.logger.Debug("lexed", "file", file.Name(), "tokens", len(tokens))
	}
	return tokens, nil
}

// step applies the first matching rule at cursor and commits its progress.
func (l *Lexer[V]) step(cursor *MatchCursor) (Token[V], bool, error) {
	for _, rule := range l.rules {
		child := cursor.Spawn()
		result, value, err := rule.apply(&child)
		if err != nil {
			return Token[V]{}, false, err
		}
		if result == declined {
			continue
		}
		if child.Consumed() == 0 {
			panic(&diag.InternalError{Msg: fmt.Sprintf("lex: rule %s accepted without consuming input at %s",
				rule.name, cursor.Cursor())})
		}
		cursor.Commit(child)

		if result == skipped {
			return Token[V]{}, false, nil
		}
		tok := Token[V]{Pos: child.Position(), Value: value}
		if l.opts.logger != nil {
			l.opts.logger.Debug("token", "rule", rule.name, "value", tok.Value, "pos", tok.Pos.String())
		}
		return tok, true, nil
	}

	char, _ := cursor.Current()
	if l.opts.noMatch != nil {
		if d := l.opts.noMatch(cursor.Here(), char); d != nil {
			return Token[V]{}, false, d
		}
	}
	return Token[V]{}, false, diag.InvalidCharacter.At(cursor.Here(), printable(char))
}

// printable renders control characters the way they would be typed.
func printable(char rune) string {
	switch char {
	case '\n':
		return `\n`
	case '\t':
		return `\t`
	case '\r':
		return `\r`
	default:
		return string(char)
	}
}
