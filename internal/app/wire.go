package app

import (
	"fmt"
	"log/slog"

	"deskcalc/internal/format"
	"deskcalc/internal/services/evaluator"
)

// Wire constructs the dependency graph from cfg.
func Wire(cfg Config) (*App, error) {
	log := cfg.Log
	if log == nil {
		log = slog.Default()
	}

	// Display formatting
	d := cfg.Settings.Display
	formatter, err := format.New(format.Options{
		Precision:      d.Precision,
		SciThreshold:   d.SciThreshold,
		SmallThreshold: d.SmallThreshold,
		Locale:         d.Locale,
	})
	if err != nil {
		return nil, fmt.Errorf("building formatter: %w", err)
	}

	// Stateless evaluator shared by every controller
	eval := evaluator.New(cfg.Settings.Evaluator.MaxLength, log)

	return &App{
		Settings:  cfg.Settings,
		Evaluator: eval,
		Formatter: formatter,
		Log:       log,
	}, nil
}
