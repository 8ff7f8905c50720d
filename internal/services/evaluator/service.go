package evaluator

import (
	"errors"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"deskcalc/internal/domain"
	"deskcalc/internal/expr"
)

// DefaultMaxLength bounds expression text when no limit is configured.
const DefaultMaxLength = 256

// Service evaluates expressions. It holds no mutable state and is safe to share.
type Service struct {
	maxLength int
	log       *slog.Logger
}

// New returns an evaluator that rejects expressions longer than maxLength
// runes. A nil logger uses slog.Default().
func New(maxLength int, log *slog.Logger) *Service {
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}
	if log == nil {
		log = slog.Default()
	}
	return &Service{maxLength: maxLength, log: log.With(slog.String("component", "evaluator"))}
}

// Evaluate parses and computes a textual expression.
func (s *Service) Evaluate(expression string) domain.Result {
	if n := utf8.RuneCountInString(expression); n > s.maxLength {
		return s.fail("evaluate", &domain.EvalError{
			Kind: domain.KindInvalidExpression,
			Msg:  fmt.Sprintf("expression is %d characters, limit is %d", n, s.maxLength),
		})
	}
	v, err := expr.Evaluate(expression)
	if err != nil {
		return s.fail("evaluate", err)
	}
	s.log.Debug("evaluated", slog.String("expression", expression), slog.Float64("value", v))
	return domain.Number(v)
}

// Apply computes left op right.
func (s *Service) Apply(left float64, op domain.Operator, right float64) domain.Result {
	v, err := expr.Apply(left, op, right)
	if err != nil {
		return s.fail("apply", err)
	}
	s.log.Debug("applied",
		slog.Float64("left", left),
		slog.String("op", op.String()),
		slog.Float64("right", right),
		slog.Float64("value", v),
	)
	return domain.Number(v)
}

// Percent returns x / 100.
func (s *Service) Percent(x float64) domain.Result {
	return s.PercentOf(1, x)
}

// PercentOf returns base * x / 100.
func (s *Service) PercentOf(base, x float64) domain.Result {
	v, err := expr.PercentOf(base, x)
	if err != nil {
		return s.fail("percent", err)
	}
	return domain.Number(v)
}

// Negate flips the sign of x.
func (s *Service) Negate(x float64) float64 { return -x }

func (s *Service) fail(op string, err error) domain.Result {
	var evalErr *domain.EvalError
	if !errors.As(err, &evalErr) {
		evalErr = &domain.EvalError{Kind: domain.KindInvalidExpression, Msg: err.Error(), Err: err}
	}
	s.log.Info("evaluation failed",
		slog.String("op", op),
		slog.String("kind", evalErr.Kind.String()),
		slog.String("error", evalErr.Error()),
	)
	return domain.Failure(evalErr)
}

// Compile-time assertion that Service implements domain.Evaluator.
var _ domain.Evaluator = (*Service)(nil)
