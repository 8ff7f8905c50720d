package expr

import (
	"fmt"
	"math"

	"deskcalc/internal/domain/types"
)

// Evaluate parses and evaluates input in one step.
func Evaluate(input string) (float64, error) {
	n, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return Eval(n)
}

// Eval interprets an AST. Node kinds outside the package's closed set are
// rejected with InvalidExpression.
func Eval(n Node) (float64, error) {
	switch n := n.(type) {
	case *Number:
		return checkFinite(n.Value)
	case *Negate:
		v, err := Eval(n.X)
		if err != nil {
			return 0, err
		}
		return -v, nil
	case *Percent:
		v, err := Eval(n.X)
		if err != nil {
			return 0, err
		}
		return PercentOf(1, v)
	case *Binary:
		left, err := Eval(n.Left)
		if err != nil {
			return 0, err
		}
		var right float64
		if p, negated := percentOperand(n.Right); p != nil {
			x, err := Eval(p.X)
			if err != nil {
				return 0, err
			}
			if negated {
				x = -x
			}
			if right, err = PercentOf(left, x); err != nil {
				return 0, err
			}
		} else if right, err = Eval(n.Right); err != nil {
			return 0, err
		}
		return Apply(left, n.Op, right)
	case nil:
		return 0, invalid("missing operand", nil)
	default:
		return 0, invalid(fmt.Sprintf("unsupported node %T", n), nil)
	}
}

// percentOperand unwraps sign changes around a right-hand percent so
// "200+-10%" takes 10% of 200 and then negates it.
func percentOperand(n Node) (*Percent, bool) {
	negated := false
	for {
		switch v := n.(type) {
		case *Negate:
			negated = !negated
			n = v.X
		case *Percent:
			return v, negated
		default:
			return nil, false
		}
	}
}

// Apply computes left op right.
func Apply(left float64, op types.Operator, right float64) (float64, error) {
	var v float64
	switch op {
	case types.OpAdd:
		v = left + right
	case types.OpSub:
		v = left - right
	case types.OpMul:
		v = left * right
	case types.OpDiv:
		if right == 0 {
			return 0, &types.EvalError{
				Kind: types.KindDivisionByZero,
				Msg:  fmt.Sprintf("%g / 0", left),
			}
		}
		v = left / right
	default:
		return 0, invalid(fmt.Sprintf("unsupported operator %q", string(op)), nil)
	}
	return checkFinite(v)
}

// PercentOf returns base * x / 100. With base 1 it is the plain x/100.
func PercentOf(base, x float64) (float64, error) {
	return checkFinite(base * x / 100)
}

func checkFinite(v float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &types.EvalError{Kind: types.KindOverflow, Msg: fmt.Sprintf("non-finite result %v", v)}
	}
	return v, nil
}
