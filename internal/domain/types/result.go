package types

import "fmt"

// ErrorKind classifies evaluation failures.
type ErrorKind int

const (
	KindInvalidExpression ErrorKind = iota + 1
	KindDivisionByZero
	KindOverflow
)

// String returns the snake_case name used on the wire.
func (k ErrorKind) String() string {
	switch k {
	case KindInvalidExpression:
		return "invalid_expression"
	case KindDivisionByZero:
		return "division_by_zero"
	case KindOverflow:
		return "overflow"
	default:
		return "unknown"
	}
}

// Message is the user-visible text for the kind.
func (k ErrorKind) Message() string {
	switch k {
	case KindDivisionByZero:
		return "Cannot divide by zero"
	case KindOverflow:
		return "Overflow"
	default:
		return "Error"
	}
}

// EvalError is the typed failure returned by the evaluator.
type EvalError struct {
	Kind ErrorKind
	// Msg is a diagnostic detail; Kind.Message() is what users see.
	Msg string
	Err error
}

func (e *EvalError) Error() string {
	if e.Msg == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *EvalError) Unwrap() error { return e.Err }

// Is matches any *EvalError of the same kind, so callers can compare
// against the sentinels with errors.Is.
func (e *EvalError) Is(target error) bool {
	t, ok := target.(*EvalError)
	return ok && t.Kind == e.Kind
}

// Result is either a number or an evaluation error.
type Result struct {
	Value float64
	Err   *EvalError
}

// Number returns a successful Result.
func Number(v float64) Result { return Result{Value: v} }

// Failure returns a failed Result.
func Failure(err *EvalError) Result { return Result{Err: err} }

// OK reports whether the result holds a number.
func (r Result) OK() bool { return r.Err == nil }

// Display is what a front end renders after each key.
type Display struct {
	Expression string `json:"expression"`
	Current    string `json:"current"`
	Error      string `json:"error,omitempty"`
}
