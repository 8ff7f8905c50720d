// Package format renders calculator values for display.
package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Options controls display rounding and notation.
type Options struct {
	// Precision is the number of significant digits kept for display.
	Precision int
	// SciThreshold switches to scientific notation at or above this magnitude.
	SciThreshold float64
	// SmallThreshold switches to scientific notation for non-zero values below it.
	SmallThreshold float64
	// Locale is a BCP 47 tag; empty means plain ASCII digits without grouping.
	Locale string
}

// DefaultOptions returns the settings used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Precision:      15,
		SciThreshold:   1e15,
		SmallThreshold: 1e-9,
	}
}

// Formatter turns float64 values into display strings.
type Formatter struct {
	opts    Options
	printer *message.Printer
}

// New validates opts and returns a Formatter.
func New(opts Options) (*Formatter, error) {
	if opts.Precision <= 0 || opts.Precision > 17 {
		return nil, fmt.Errorf("precision must be between 1 and 17, got %d", opts.Precision)
	}
	if opts.SciThreshold <= 0 {
		return nil, fmt.Errorf("sci threshold must be positive, got %g", opts.SciThreshold)
	}
	f := &Formatter{opts: opts}
	if opts.Locale != "" {
		tag, err := language.Parse(opts.Locale)
		if err != nil {
			return nil, fmt.Errorf("parsing locale %q: %w", opts.Locale, err)
		}
		f.printer = message.NewPrinter(tag)
	}
	return f, nil
}

// Format rounds v to the configured precision, trims trailing zeros and
// picks plain or scientific notation.
func (f *Formatter) Format(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "Error"
	}
	r := f.Round(v)
	if r == 0 {
		return "0"
	}
	abs := math.Abs(r)
	if abs >= f.opts.SciThreshold || abs < f.opts.SmallThreshold {
		return strconv.FormatFloat(r, 'e', -1, 64)
	}
	plain := strconv.FormatFloat(r, 'f', -1, 64)
	if f.printer == nil {
		return plain
	}
	frac := 0
	if i := strings.IndexByte(plain, '.'); i >= 0 {
		frac = len(plain) - i - 1
	}
	return f.printer.Sprint(number.Decimal(r, number.MaxFractionDigits(frac)))
}

// Round applies display-level rounding to the configured significant digits.
func (f *Formatter) Round(v float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'g', f.opts.Precision, 64), 64)
	if err != nil {
		return v
	}
	return r
}
