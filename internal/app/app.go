package app

import (
	"log/slog"

	"deskcalc/internal/config"
	"deskcalc/internal/domain"
	"deskcalc/internal/services/controller"
)

// App bundles the shared services. Controllers are per front end.
type App struct {
	Settings  config.Config
	Evaluator domain.Evaluator
	Formatter domain.Formatter
	Log       *slog.Logger
}

// NewController returns a fresh controller with an empty Expression.
func (a *App) NewController() *controller.Engine {
	return controller.New(a.Evaluator, a.Formatter, a.Settings.Display.MaxDigits, a.Log)
}
