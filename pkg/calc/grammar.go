package calc

import (
	"sync"

	"github.com/yaklabco/flexar/pkg/diag"
	"github.com/yaklabco/flexar/pkg/lex"
	"github.com/yaklabco/flexar/pkg/parse"
)

type grammar struct {
	number  *parse.Symbol[Token, Number]
	factor  *parse.Symbol[Token, Factor]
	expr    *parse.Symbol[Token, Expr]
	stmt    *parse.Symbol[Token, Stmt]
	program *parse.Symbol[Token, Stmt]
}

// rules is built once; symbols are read-only after Define.
//
//nolint:gochecknoglobals // Immutable grammar.
var rules = sync.OnceValue(newGrammar)

// found builds a diagnostic naming the token at the cursor.
func found(tmpl diag.Template) func(parse.Cursor[Token]) *diag.Diagnostic {
	return func(at parse.Cursor[Token]) *diag.Diagnostic {
		return tmpl.At(at.Position(), at.Found())
	}
}

func token(vals parse.Values, idx int) Token {
	return parse.Get[lex.Token[Token]](vals, idx).Value
}

func newGrammar() *grammar {
	g := &grammar{
		number:  parse.NewSymbol[Token, Number]("number"),
		factor:  parse.NewSymbol[Token, Factor]("factor"),
		expr:    parse.NewSymbol[Token, Expr]("expr"),
		stmt:    parse.NewSymbol[Token, Stmt]("stmt"),
		program: parse.NewSymbol[Token, Stmt]("program"),
	}

	number := g.number
	number.Define(number.Block(
		number.Seq(parse.Capture(is(Ident))).Build(func(vals parse.Values) Number {
			return Number{Kind: NumGet, Name: token(vals, 0).Name}
		}),
		number.Seq(parse.Tok(is(Plus)), parse.Sub(number)).Build(func(vals parse.Values) Number {
			return parse.Get[parse.Node[Number]](vals, 0).Value
		}),
		number.Seq(parse.Tok(is(Minus)), parse.Sub(number)).Build(func(vals parse.Values) Number {
			inner := parse.Get[parse.Node[Number]](vals, 0)
			return Number{Kind: NumNeg, Inner: &inner}
		}),
		number.Seq(parse.Capture(is(Int))).Build(func(vals parse.Values) Number {
			return Number{Kind: NumInt, Int: token(vals, 0).Int}
		}),
		number.Seq(parse.Capture(is(Float))).Build(func(vals parse.Values) Number {
			return Number{Kind: NumFloat, Float: token(vals, 0).Float}
		}),
		number.Seq(parse.Tok(is(LParen)), parse.Sub(g.expr)).Then(number.Block(
			number.Seq(parse.Tok(is(RParen))).Build(func(vals parse.Values) Number {
				group := parse.Get[parse.Node[Expr]](vals, 0)
				return Number{Kind: NumGroup, Group: &group}
			}),
		).Else(number.Raise(func(at parse.Cursor[Token]) *diag.Diagnostic {
			return ErrUnclosedParen.At(at.Position())
		}))),
	).Else(number.Raise(found(ErrExpectedNumber))))

	factor := g.factor
	factor.Define(factor.Block(
		factor.Seq(parse.Sub(number)).Then(factor.Block(
			factor.Seq(parse.Tok(is(Mul)), parse.Sub(factor)).Build(binaryFactor(OpMul)),
			factor.Seq(parse.Tok(is(Div)), parse.Sub(factor)).Build(binaryFactor(OpDiv)),
		).Else(factor.Default(func(vals parse.Values) Factor {
			return Factor{Left: parse.Get[parse.Node[Number]](vals, 0)}
		}))),
	).Else(parse.Delegate(number, func(node parse.Node[Number]) Factor {
		return Factor{Left: node}
	})))

	expr := g.expr
	expr.Define(expr.Block(
		expr.Seq(parse.Sub(factor)).Then(expr.Block(
			expr.Seq(parse.Tok(is(Plus)), parse.Sub(expr)).Build(binaryExpr(OpAdd)),
			expr.Seq(parse.Tok(is(Minus)), parse.Sub(expr)).Build(binaryExpr(OpSub)),
		).Else(expr.Default(func(vals parse.Values) Expr {
			return Expr{Left: parse.Get[parse.Node[Factor]](vals, 0)}
		}))),
	).Else(expr.Raise(found(ErrExpectedExpr))))

	stmt := g.stmt
	stmt.Define(stmt.Block(
		stmt.Seq(parse.Sub(expr)).Build(func(vals parse.Values) Stmt {
			return Stmt{Expr: parse.Get[parse.Node[Expr]](vals, 0)}
		}),
		stmt.Seq(parse.Tok(is(Let))).Then(stmt.Block(
			stmt.Seq(parse.Capture(is(Ident))).Then(stmt.Block(
				stmt.Seq(parse.Tok(is(EQ)), parse.Sub(expr)).Build(func(vals parse.Values) Stmt {
					return Stmt{
						Let:  true,
						Name: token(vals, 0).Name,
						Expr: parse.Get[parse.Node[Expr]](vals, 1),
					}
				}),
			).Else(stmt.Raise(found(ErrExpectedAssign)))),
		).Else(stmt.Raise(found(ErrExpectedIdent)))),
	).Else(stmt.Raise(found(ErrUnexpectedToken))))

	program := g.program
	program.Define(program.Block(
		program.Seq(parse.Sub(stmt)).Then(program.Block(
			program.Seq(parse.Tok(is(Semi))).Build(func(vals parse.Values) Stmt {
				return parse.Get[parse.Node[Stmt]](vals, 0).Value
			}),
		).Else(program.Raise(found(ErrExpectedSemi)))),
	).Else(program.Raise(found(ErrUnexpectedToken))))

	return g
}

func binaryFactor(op Op) func(parse.Values) Factor {
	return func(vals parse.Values) Factor {
		right := parse.Get[parse.Node[Factor]](vals, 1)
		return Factor{Op: op, Left: parse.Get[parse.Node[Number]](vals, 0), Right: &right}
	}
}

func binaryExpr(op Op) func(parse.Values) Expr {
	return func(vals parse.Values) Expr {
		right := parse.Get[parse.Node[Expr]](vals, 1)
		return Expr{Op: op, Left: parse.Get[parse.Node[Factor]](vals, 0), Right: &right}
	}
}
