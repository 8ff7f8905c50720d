package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deskcalc/internal/domain/types"
)

func TestParseKey_Aliases(t *testing.T) {
	tests := []struct {
		in   string
		want types.Key
	}{
		{"7", "7"},
		{".", types.KeyDecimal},
		{"×", types.KeyMultiply},
		{"÷", types.KeyDivide},
		{"x", types.KeyMultiply},
		{"+/-", types.KeyNegate},
		{"neg", types.KeyNegate},
		{"Backspace", types.KeyBackspace},
		{"bs", types.KeyBackspace},
		{"CE", types.KeyClearEntry},
		{"C", types.KeyClear},
		{"Return", types.KeyEquals},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := types.ParseKey(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseKey_Unknown(t *testing.T) {
	_, err := types.ParseKey("sqrt")
	assert.Error(t, err)
}

func TestParseKeys_MixesRunsAndNamedKeys(t *testing.T) {
	keys, err := types.ParseKeys([]string{"12+3", "CE", "4", "="})
	require.NoError(t, err)
	assert.Equal(t, []types.Key{"1", "2", "+", "3", "CE", "4", "="}, keys)
}

func TestParseKeys_RejectsUnknownCharacter(t *testing.T) {
	_, err := types.ParseKeys([]string{"1+a"})
	assert.Error(t, err)
}

func TestEvalError_IsMatchesKind(t *testing.T) {
	err := &types.EvalError{Kind: types.KindDivisionByZero, Msg: "5 / 0"}
	assert.True(t, err.Is(&types.EvalError{Kind: types.KindDivisionByZero}))
	assert.False(t, err.Is(&types.EvalError{Kind: types.KindOverflow}))
	assert.Equal(t, "division_by_zero: 5 / 0", err.Error())
	assert.Equal(t, "Cannot divide by zero", err.Kind.Message())
}
