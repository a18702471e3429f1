package calc

import (
	"fmt"
	"io"
	"maps"
	"strconv"

	"github.com/yaklabco/flexar/pkg/parse"
)

// Interpreter evaluates programs, keeping variables across calls to Exec.
type Interpreter struct {
	vars map[string]float64
	out  io.Writer
}

// NewInterpreter returns an interpreter printing expression results to out.
// A nil out discards them.
func NewInterpreter(out io.Writer) *Interpreter {
	if out == nil {
		out = io.Discard
	}
	return &Interpreter{vars: make(map[string]float64), out: out}
}

// Vars returns a copy of the variables bound so far.
func (in *Interpreter) Vars() map[string]float64 {
	return maps.Clone(in.vars)
}

// Exec runs each statement in order. Expression statements print their value
// on a line of their own and are returned in order.
func (in *Interpreter) Exec(prog Program) ([]float64, error) {
	var results []float64
	for _, stmt := range prog {
		value, err := in.Eval(stmt.Value.Expr)
		if err != nil {
			return results, err
		}
		if stmt.Value.Let {
			in.vars[stmt.Value.Name] = value
			continue
		}
		results = append(results, value)
		if _, err := fmt.Fprintln(in.out, FormatValue(value)); err != nil {
			return results, fmt.Errorf("writing result: %w", err)
		}
	}
	return results, nil
}

// Eval evaluates an expression.
func (in *Interpreter) Eval(node parse.Node[Expr]) (float64, error) {
	left, err := in.factor(node.Value.Left)
	if err != nil || node.Value.Op == OpNone {
		return left, err
	}
	right, err := in.Eval(*node.Value.Right)
	if err != nil {
		return 0, err
	}
	if node.Value.Op == OpSub {
		return left - right, nil
	}
	return left + right, nil
}

func (in *Interpreter) factor(node parse.Node[Factor]) (float64, error) {
	left, err := in.number(node.Value.Left)
	if err != nil || node.Value.Op == OpNone {
		return left, err
	}
	right, err := in.factor(*node.Value.Right)
	if err != nil {
		return 0, err
	}
	if node.Value.Op == OpDiv {
		return left / right, nil
	}
	return left * right, nil
}

func (in *Interpreter) number(node parse.Node[Number]) (float64, error) {
	num := node.Value
	switch num.Kind {
	case NumInt:
		return float64(num.Int), nil
	case NumFloat:
		return num.Float, nil
	case NumGet:
		value, ok := in.vars[num.Name]
		if !ok {
			return 0, ErrUnknownVariable.At(node.Pos, num.Name)
		}
		return value, nil
	case NumNeg:
		value, err := in.number(*num.Inner)
		return -value, err
	case NumGroup:
		return in.Eval(*num.Group)
	default:
		return 0, fmt.Errorf("unknown operand kind %d", num.Kind)
	}
}

// FormatValue renders a result the way Exec prints it.
func FormatValue(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
