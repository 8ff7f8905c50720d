package app

import (
	"log/slog"

	"deskcalc/internal/config"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Settings config.Config // loaded configuration file
	Log      *slog.Logger  // optional; defaults to slog.Default()
}
