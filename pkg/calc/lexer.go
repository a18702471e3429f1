package calc

import (
	"strconv"
	"strings"

	"github.com/yaklabco/flexar/pkg/diag"
	"github.com/yaklabco/flexar/pkg/lex"
	"github.com/yaklabco/flexar/pkg/source"
)

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isIdentStart(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || isDigit(r) || r == '-'
}

// NewLexer returns the calculator lexer.
func NewLexer(opts ...lex.Option) *lex.Lexer[Token] {
	rules := []lex.Rule[Token]{
		lex.Char('+', Token{Kind: Plus}),
		lex.Char('(', Token{Kind: LParen}),
		lex.Char(')', Token{Kind: RParen}),
		lex.Char('-', Token{Kind: Minus}),
		lex.Char('*', Token{Kind: Mul}),
		lex.Char('=', Token{Kind: EQ}),
		lex.Char(';', Token{Kind: Semi}),
		lex.Skip[Token](lex.OneOf(" \n\t\r")).Named("whitespace"),
		lex.Detailed(lex.Is('/'), lexSlash).Named("slash"),
		lex.Detailed(isIdentStart, lexIdent).Named("ident"),
		lex.Detailed(isDigit, lexNumber).Named("number"),
	}

	opts = append([]lex.Option{lex.WithNoMatch(func(pos source.Position, char rune) *diag.Diagnostic {
		return ErrUnexpectedCharacter.At(pos, string(char))
	})}, opts...)

	return lex.New(rules, opts...)
}

// lexSlash reads a division operator or skips a `//` comment up to the end
// of the line.
func lexSlash(m *lex.Match[Token]) error {
	next, ok := m.Advance()
	if !ok || next != '/' {
		return m.Emit(Token{Kind: Div})
	}
	for {
		cur, ok := m.Current()
		if !ok || cur == '\n' {
			return m.Skip()
		}
		m.Advance()
	}
}

// endsIdent reports whether a `-` followed by next is a minus operator
// rather than part of an identifier.
func endsIdent(next rune, ok bool) bool {
	return !ok || strings.ContainsRune(" \n\t\r+-*/=;()", next)
}

// lexIdent reads an identifier. A `-` followed by whitespace, an operator or
// the end of input is left for the next token.
func lexIdent(m *lex.Match[Token]) error {
	for {
		cur, ok := m.Current()
		if !ok || !isIdentPart(cur) {
			break
		}
		if cur == '-' && endsIdent(m.Peek()) {
			break
		}
		m.Advance()
	}
	if m.Text() == "let" {
		return m.Emit(Token{Kind: Let})
	}
	return m.Emit(Token{Kind: Ident, Name: m.Text()})
}

// lexNumber reads digits with at most one decimal point. A second point ends
// the literal and is left for the next token.
func lexNumber(m *lex.Match[Token]) error {
	dot := false
	for {
		cur, ok := m.Current()
		if !ok {
			break
		}
		if cur == '.' {
			if dot {
				break
			}
			dot = true
		} else if !isDigit(cur) {
			break
		}
		m.Advance()
	}

	text := m.Text()
	if dot {
		value, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return m.FailAt(m.Position(), diag.InvalidNumber, text)
		}
		return m.Emit(Token{Kind: Float, Float: value})
	}
	value, err := strconv.ParseUint(text, 10, 32)
	if err != nil {
		return m.FailAt(m.Position(), diag.InvalidNumber, text)
	}
	return m.Emit(Token{Kind: Int, Int: uint32(value)})
}
