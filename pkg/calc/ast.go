package calc

import (
	"strconv"
	"strings"

	"github.com/yaklabco/flexar/pkg/parse"
)

// Op is a binary operator. OpNone marks a node that wraps its left operand.
type Op int

// Binary operators.
const (
	OpNone Op = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
)

func (o Op) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	default:
		return ""
	}
}

// NumberKind classifies an operand.
type NumberKind int

// Operand kinds.
const (
	NumInt NumberKind = iota
	NumFloat
	NumGet
	NumNeg
	NumGroup
)

// Number is an operand: a literal, a variable read, a negation, or a
// parenthesized expression.
type Number struct {
	Kind  NumberKind
	Int   uint32
	Float float64
	Name  string
	Inner *parse.Node[Number]
	Group *parse.Node[Expr]
}

// Factor is `Left Op Right` for * and /, or Left alone.
type Factor struct {
	Op    Op
	Left  parse.Node[Number]
	Right *parse.Node[Factor]
}

// Expr is `Left Op Right` for + and -, or Left alone. Both chains are
// right-associative.
type Expr struct {
	Op    Op
	Left  parse.Node[Factor]
	Right *parse.Node[Expr]
}

// Stmt is an expression statement or a `let` binding.
type Stmt struct {
	Let  bool
	Name string
	Expr parse.Node[Expr]
}

// Program is a parsed source file.
type Program []parse.Node[Stmt]

// String renders the operand as an s-expression.
func (n Number) String() string {
	switch n.Kind {
	case NumInt:
		return strconv.FormatUint(uint64(n.Int), 10)
	case NumFloat:
		return strconv.FormatFloat(n.Float, 'f', -1, 64)
	case NumGet:
		return n.Name
	case NumNeg:
		return "(neg " + n.Inner.Value.String() + ")"
	case NumGroup:
		return n.Group.Value.String()
	default:
		return "?"
	}
}

func (f Factor) String() string {
	if f.Op == OpNone {
		return f.Left.Value.String()
	}
	return "(" + f.Op.String() + " " + f.Left.Value.String() + " " + f.Right.Value.String() + ")"
}

func (e Expr) String() string {
	if e.Op == OpNone {
		return e.Left.Value.String()
	}
	return "(" + e.Op.String() + " " + e.Left.Value.String() + " " + e.Right.Value.String() + ")"
}

func (s Stmt) String() string {
	if s.Let {
		return "(let " + s.Name + " " + s.Expr.Value.String() + ")"
	}
	return s.Expr.Value.String()
}

// String renders one statement per line.
func (p Program) String() string {
	var builder strings.Builder
	for _, stmt := range p {
		builder.WriteString(stmt.Value.String())
		builder.WriteByte('\n')
	}
	return builder.String()
}
