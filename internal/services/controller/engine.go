package controller

import (
	"log/slog"
	"strconv"
	"strings"

	"deskcalc/internal/domain"
)

// DefaultMaxDigits caps operand length when no limit is configured.
const DefaultMaxDigits = 16

// Engine is the calculator's Input/Display controller.
type Engine struct {
	eval      domain.Evaluator
	format    domain.Formatter
	maxDigits int
	log       *slog.Logger

	state   domain.State
	entry   string  // operand text while typing
	typing  bool    // digits append to entry
	value   float64 // current operand when not typing
	left    float64
	op      domain.Operator
	summary string // expression line shown in StateResult
	err     *domain.EvalError
}

// New returns an engine in EnteringFirstOperand with an empty Expression.
// A nil logger uses slog.Default().
func New(eval domain.Evaluator, format domain.Formatter, maxDigits int, log *slog.Logger) *Engine {
	if maxDigits <= 0 {
		maxDigits = DefaultMaxDigits
	}
	if log == nil {
		log = slog.Default()
	}
	return &Engine{
		eval:      eval,
		format:    format,
		maxDigits: maxDigits,
		log:       log.With(slog.String("component", "controller")),
	}
}

// Press applies one key and returns the new display.
func (e *Engine) Press(k domain.Key) domain.Display {
	from := e.state
	switch {
	case k == domain.KeyClear:
		e.Reset()
	case k == domain.KeyClearEntry:
		e.clearEntry()
	case k == domain.KeyBackspace:
		e.backspace()
	case k == domain.KeyEquals:
		e.equals()
	case k == domain.KeyPercent:
		e.percent()
	case k == domain.KeyNegate:
		e.negate()
	case k == domain.KeyDecimal:
		e.inputDecimal()
	case k.IsDigit():
		e.inputDigit(string(k))
	default:
		op, ok := k.Operator()
		if !ok {
			e.log.Warn("ignoring unknown key", slog.String("key", k.String()))
			return e.Display()
		}
		e.applyOperator(op)
	}
	e.log.Debug("key",
		slog.String("key", k.String()),
		slog.String("from", from.String()),
		slog.String("to", e.state.String()),
	)
	return e.Display()
}

// Display renders the current Expression.
func (e *Engine) Display() domain.Display {
	if e.err != nil {
		return domain.Display{Current: "0", Error: e.err.Kind.Message()}
	}
	d := domain.Display{Current: e.currentText()}
	switch {
	case e.op != domain.OpNone:
		d.Expression = e.format.Format(e.left) + " " + e.op.Symbol()
	case e.state == domain.StateResult:
		d.Expression = e.summary
	}
	return d
}

// State reports the current state machine position.
func (e *Engine) State() domain.State { return e.state }

// Err returns the error being displayed, if any.
func (e *Engine) Err() *domain.EvalError { return e.err }

// Reset discards the Expression and any error (the C key).
func (e *Engine) Reset() {
	e.state = domain.StateFirstOperand
	e.entry = ""
	e.typing = false
	e.value = 0
	e.left = 0
	e.op = domain.OpNone
	e.summary = ""
	e.err = nil
}

func (e *Engine) inputDigit(d string) {
	e.startFresh()
	switch {
	case !e.typing:
		e.entry = d
		e.typing = true
	case e.entry == "0":
		e.entry = d
	case e.entry == "-0":
		e.entry = "-" + d
	case countDigits(e.entry) < e.maxDigits:
		e.entry += d
	}
	e.enterOperand()
}

func (e *Engine) inputDecimal() {
	e.startFresh()
	switch {
	case !e.typing:
		e.entry = "0."
		e.typing = true
	case !strings.Contains(e.entry, "."):
		e.entry += "."
	}
	e.enterOperand()
}

func (e *Engine) applyOperator(op domain.Operator) {
	e.clearError()
	switch e.state {
	case domain.StateOperatorPending:
		// no operand since the last operator: replace it
	case domain.StateSecondOperand:
		res := e.eval.Apply(e.left, e.op, e.currentValue())
		if !res.OK() {
			e.setError(res.Err)
			return
		}
		e.left = res.Value
	default:
		e.left = e.currentValue()
	}
	e.op = op
	e.value = e.left
	e.completeOperand()
	e.summary = ""
	e.state = domain.StateOperatorPending
}

func (e *Engine) equals() {
	e.clearError()
	if e.op == domain.OpNone {
		e.value = e.currentValue()
		e.summary = ""
	} else {
		right := e.currentValue()
		res := e.eval.Apply(e.left, e.op, right)
		if !res.OK() {
			e.setError(res.Err)
			return
		}
		e.summary = e.format.Format(e.left) + " " + e.op.Symbol() + " " + e.format.Format(right) + " ="
		e.value = res.Value
		e.left = 0
		e.op = domain.OpNone
	}
	e.completeOperand()
	e.state = domain.StateResult
}

// percent uses x/100 alone and left*x/100 with a pending operator.
func (e *Engine) percent() {
	e.clearError()
	x := e.currentValue()
	var res domain.Result
	if e.op != domain.OpNone {
		res = e.eval.PercentOf(e.left, x)
	} else {
		res = e.eval.Percent(x)
	}
	if !res.OK() {
		e.setError(res.Err)
		return
	}
	e.value = res.Value
	e.completeOperand()
	e.enterOperand()
}

func (e *Engine) negate() {
	e.clearError()
	if e.typing {
		if strings.HasPrefix(e.entry, "-") {
			e.entry = e.entry[1:]
		} else {
			e.entry = "-" + e.entry
		}
		return
	}
	e.value = e.eval.Negate(e.currentValue())
	e.enterOperand()
}

func (e *Engine) clearEntry() {
	e.clearError()
	e.completeOperand()
	e.value = 0
	if e.state == domain.StateResult {
		e.state = domain.StateFirstOperand
		e.summary = ""
	}
}

func (e *Engine) backspace() {
	e.clearError()
	if !e.typing {
		return
	}
	e.entry = e.entry[:len(e.entry)-1]
	if e.entry == "" || e.entry == "-" {
		e.completeOperand()
		e.value = 0
	}
}

// startFresh clears a shown error, and a shown result when a new number begins.
func (e *Engine) startFresh() {
	e.clearError()
	if e.state == domain.StateResult {
		e.Reset()
	}
}

// enterOperand moves to the operand state matching the pending operator.
func (e *Engine) enterOperand() {
	if e.op == domain.OpNone {
		e.state = domain.StateFirstOperand
		e.summary = ""
		return
	}
	e.state = domain.StateSecondOperand
}

// completeOperand stops typing; value holds the operand from now on.
func (e *Engine) completeOperand() {
	e.entry = ""
	e.typing = false
}

func (e *Engine) currentValue() float64 {
	if !e.typing {
		return e.value
	}
	v, err := strconv.ParseFloat(e.entry, 64)
	if err != nil {
		// entry only ever holds digits, one point and a sign
		e.log.Error("unparsable entry", slog.String("entry", e.entry), slog.String("error", err.Error()))
		return 0
	}
	return v
}

func (e *Engine) currentText() string {
	if e.typing {
		return e.entry
	}
	return e.format.Format(e.value)
}

func (e *Engine) clearError() {
	if e.err != nil {
		e.Reset()
	}
}

func (e *Engine) setError(err *domain.EvalError) {
	e.Reset()
	e.err = err
	e.log.Info("expression cleared after error", slog.String("kind", err.Kind.String()))
}

func countDigits(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			n++
		}
	}
	return n
}

// Compile-time assertion that Engine implements domain.Controller.
var _ domain.Controller = (*Engine)(nil)
