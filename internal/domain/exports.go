package domain

import (
	interfaces "deskcalc/internal/domain/interfaces"
	types "deskcalc/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Operator  = types.Operator
	State     = types.State
	Key       = types.Key
	ErrorKind = types.ErrorKind
	EvalError = types.EvalError
	Result    = types.Result
	Display   = types.Display
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	Evaluator  = interfaces.Evaluator
	Formatter  = interfaces.Formatter
	Controller = interfaces.Controller
)

const (
	OpNone = types.OpNone
	OpAdd  = types.OpAdd
	OpSub  = types.OpSub
	OpMul  = types.OpMul
	OpDiv  = types.OpDiv

	StateFirstOperand    = types.StateFirstOperand
	StateOperatorPending = types.StateOperatorPending
	StateSecondOperand   = types.StateSecondOperand
	StateResult          = types.StateResult

	KeyDecimal    = types.KeyDecimal
	KeyEquals     = types.KeyEquals
	KeyPercent    = types.KeyPercent
	KeyNegate     = types.KeyNegate
	KeyClear      = types.KeyClear
	KeyClearEntry = types.KeyClearEntry
	KeyBackspace  = types.KeyBackspace
	KeyAdd        = types.KeyAdd
	KeySubtract   = types.KeySubtract
	KeyMultiply   = types.KeyMultiply
	KeyDivide     = types.KeyDivide

	KindInvalidExpression = types.KindInvalidExpression
	KindDivisionByZero    = types.KindDivisionByZero
	KindOverflow          = types.KindOverflow
)

// Sentinels for errors.Is; EvalError.Is matches on Kind.
var (
	ErrInvalidExpression = &types.EvalError{Kind: types.KindInvalidExpression}
	ErrDivisionByZero    = &types.EvalError{Kind: types.KindDivisionByZero}
	ErrOverflow          = &types.EvalError{Kind: types.KindOverflow}
)

// Re-exported constructors.
var (
	Number        = types.Number
	Failure       = types.Failure
	ParseKey      = types.ParseKey
	ParseKeys     = types.ParseKeys
	ParseOperator = types.ParseOperator
)
