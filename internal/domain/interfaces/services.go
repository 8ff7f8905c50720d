package interfaces

import (
	domaintypes "deskcalc/internal/domain/types"
)

// Evaluator computes results from text or from already-parsed operands.
type Evaluator interface {
	Evaluate(expression string) domaintypes.Result
	Apply(left float64, op domaintypes.Operator, right float64) domaintypes.Result
	Percent(x float64) domaintypes.Result
	PercentOf(base, x float64) domaintypes.Result
	Negate(x float64) float64
}

// Formatter renders numbers for display.
type Formatter interface {
	Format(v float64) string
}

// Controller is the keystroke state machine behind a front end.
type Controller interface {
	Press(k domaintypes.Key) domaintypes.Display
	Display() domaintypes.Display
	State() domaintypes.State
	Reset()
}
