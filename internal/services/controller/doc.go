// Package controller implements the keystroke state machine of the calculator.
//
// An Engine owns one Expression: the operand being typed, an optional pending
// left operand and operator, and the last error. Each Press routes one key
// through the state machine, calls the evaluator where arithmetic is needed
// and returns the Display a front end should render.
//
// States move EnteringFirstOperand -> OperatorPending ->
// EnteringSecondOperand -> Result. A second operator evaluates the pending
// operation immediately ("3 + 4 +" shows 7). Digits typed in Result start a
// fresh Expression.
//
// Concurrency: Engine is NOT safe for concurrent use. Each front end owns its
// engine and drives it from a single goroutine.
package controller
