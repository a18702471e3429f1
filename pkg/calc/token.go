// Package calc implements a small calculator language on top of the lex and
// parse engines: floating point arithmetic, `let` variables, `//` comments,
// and statements terminated by `;`.
package calc

import (
	"strconv"
)

// Kind classifies a calculator token.
type Kind int

// Token kinds.
const (
	LParen Kind = iota
	RParen
	Int
	Float
	Plus
	Minus
	Mul
	Div
	Let
	EQ
	Semi
	Ident
)

//nolint:gochecknoglobals // Lookup table.
var kindNames = [...]string{
	LParen: "(",
	RParen: ")",
	Int:    "int",
	Float:  "float",
	Plus:   "+",
	Minus:  "-",
	Mul:    "*",
	Div:    "/",
	Let:    "let",
	EQ:     "=",
	Semi:   ";",
	Ident:  "ident",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Token is a calculator token value. Only the field matching Kind is set.
type Token struct {
	Kind  Kind
	Int   uint32
	Float float64
	Name  string
}

// String returns the token as it would appear in source.
func (t Token) String() string {
	switch t.Kind {
	case Int:
		return strconv.FormatUint(uint64(t.Int), 10)
	case Float:
		return strconv.FormatFloat(t.Float, 'f', -1, 64)
	case Ident:
		return t.Name
	default:
		return t.Kind.String()
	}
}

func is(kind Kind) func(Token) bool {
	return func(t Token) bool {
		return t.Kind == kind
	}
}
