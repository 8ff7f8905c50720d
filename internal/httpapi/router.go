package httpapi

import (
	"log/slog"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"deskcalc/internal/app"
	"deskcalc/internal/domain"
)

// NewRouter builds the gin engine serving a.
func NewRouter(a *app.App) *gin.Engine {
	if !a.Settings.Server.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery(), AccessLog(a.Log))
	router.Use(cors.New(cors.Config{
		AllowOrigins:  a.Settings.Server.AllowOrigins,
		AllowMethods:  []string{"POST", "GET"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Content-Length"},
		ExposeHeaders: []string{"Content-Type", "Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	router.GET("/", HealthCheckHandle)
	v1Root := router.Group("/v1")

	v1APIHandlers := NewHTTPHandler(
		a.Evaluator,
		a.Formatter,
		func() domain.Controller { return a.NewController() },
	)
	v1APIHandlers.AddCalculatorAPI(v1Root)

	slog.Debug("routes registered", slog.Int("count", len(router.Routes())))
	return router
}
