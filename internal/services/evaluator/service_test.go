package evaluator_test

import (
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deskcalc/internal/domain"
	"deskcalc/internal/services/evaluator"
)

func newService(maxLength int) *evaluator.Service {
	return evaluator.New(maxLength, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestEvaluate_TwoPlusTwo(t *testing.T) {
	res := newService(0).Evaluate("2+2")
	require.True(t, res.OK())
	assert.Equal(t, 4.0, res.Value)
}

func TestEvaluate_DivisionByZero(t *testing.T) {
	res := newService(0).Evaluate("5/0")
	require.False(t, res.OK())
	assert.Equal(t, domain.KindDivisionByZero, res.Err.Kind)
	assert.True(t, errors.Is(res.Err, domain.ErrDivisionByZero))
}

func TestEvaluate_UnaryPercent(t *testing.T) {
	res := newService(0).Evaluate("10%")
	require.True(t, res.OK())
	assert.InDelta(t, 0.1, res.Value, 1e-12)
}

func TestEvaluate_RejectsLongInput(t *testing.T) {
	res := newService(8).Evaluate(strings.Repeat("1+", 5) + "1")
	require.False(t, res.OK())
	assert.Equal(t, domain.KindInvalidExpression, res.Err.Kind)
}

func TestEvaluate_RejectsCode(t *testing.T) {
	res := newService(0).Evaluate(`__import__("os").system("ls")`)
	require.False(t, res.OK())
	assert.Equal(t, domain.KindInvalidExpression, res.Err.Kind)
	assert.Equal(t, "Error", res.Err.Kind.Message())
}

func TestEvaluate_Idempotent(t *testing.T) {
	svc := newService(0)
	for _, in := range []string{"3+4", "1/3", "9*9", "7-10", "4/0", "x"} {
		assert.Equal(t, svc.Evaluate(in), svc.Evaluate(in), in)
	}
}

func TestApply(t *testing.T) {
	svc := newService(0)

	res := svc.Apply(3, domain.OpAdd, 4)
	require.True(t, res.OK())
	assert.Equal(t, 7.0, res.Value)

	res = svc.Apply(1, domain.OpDiv, 0)
	require.False(t, res.OK())
	assert.Equal(t, domain.KindDivisionByZero, res.Err.Kind)

	res = svc.Apply(1, domain.OpNone, 2)
	require.False(t, res.OK())
	assert.Equal(t, domain.KindInvalidExpression, res.Err.Kind)
}

func TestPercentOf(t *testing.T) {
	svc := newService(0)
	assert.Equal(t, 20.0, svc.PercentOf(200, 10).Value)
	assert.Equal(t, 0.5, svc.Percent(50).Value)
}

func TestNegate_SelfInverse(t *testing.T) {
	svc := newService(0)
	for _, x := range []float64{0, 1, -1, 3.25, 1e300, -7e-12} {
		assert.Equal(t, x, svc.Negate(svc.Negate(x)))
	}
}
