package format_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deskcalc/internal/format"
)

func newFormatter(t *testing.T, mutate func(*format.Options)) *format.Formatter {
	t.Helper()
	opts := format.DefaultOptions()
	if mutate != nil {
		mutate(&opts)
	}
	f, err := format.New(opts)
	require.NoError(t, err)
	return f
}

func TestFormat_Plain(t *testing.T) {
	f := newFormatter(t, nil)
	tests := []struct {
		in   float64
		want string
	}{
		{4, "4"},
		{0.1 + 0.2, "0.3"},
		{1.0 / 3.0, "0.333333333333333"},
		{-2.5, "-2.5"},
		{220, "220"},
		{123456789012345, "123456789012345"},
		{0.000001, "0.000001"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, f.Format(tt.in), "Format(%v)", tt.in)
	}
}

func TestFormat_NegativeZero(t *testing.T) {
	f := newFormatter(t, nil)
	assert.Equal(t, "0", f.Format(math.Copysign(0, -1)))
	assert.Equal(t, "0", f.Format(0))
}

func TestFormat_ScientificBeyondThresholds(t *testing.T) {
	f := newFormatter(t, nil)
	assert.Equal(t, "1e+15", f.Format(1e15))
	assert.Equal(t, "-2.5e+20", f.Format(-2.5e20))
	assert.Equal(t, "1.5e-10", f.Format(1.5e-10))
}

func TestFormat_ConfigurableThreshold(t *testing.T) {
	f := newFormatter(t, func(o *format.Options) { o.SciThreshold = 1000 })
	assert.Equal(t, "999", f.Format(999))
	assert.Equal(t, "1e+03", f.Format(1000))
}

func TestFormat_NonFinite(t *testing.T) {
	f := newFormatter(t, nil)
	assert.Equal(t, "Error", f.Format(math.Inf(1)))
	assert.Equal(t, "Error", f.Format(math.NaN()))
}

func TestFormat_LocaleGrouping(t *testing.T) {
	f := newFormatter(t, func(o *format.Options) { o.Locale = "en" })
	assert.Equal(t, "1,234,567", f.Format(1234567))
	assert.Equal(t, "1,234.5", f.Format(1234.5))
}

func TestNew_RejectsBadOptions(t *testing.T) {
	_, err := format.New(format.Options{Precision: 0, SciThreshold: 1})
	assert.Error(t, err)

	opts := format.DefaultOptions()
	opts.Locale = "not a locale!"
	_, err = format.New(opts)
	assert.Error(t, err)
}
