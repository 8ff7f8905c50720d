// Package httpapi exposes the evaluator and the controller over HTTP.
//
// Every request is stateless: /v1/keys replays its keys through a controller
// built for that request only.
package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"deskcalc/internal/domain"
)

// MaxKeys bounds the key sequence accepted by /v1/keys.
const MaxKeys = 1024

func HealthCheckHandle(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

type HttpEndpoints struct {
	evaluator     domain.Evaluator
	formatter     domain.Formatter
	newController func() domain.Controller
}

func NewHTTPHandler(
	evaluator domain.Evaluator,
	formatter domain.Formatter,
	newController func() domain.Controller,
) *HttpEndpoints {
	return &HttpEndpoints{
		evaluator:     evaluator,
		formatter:     formatter,
		newController: newController,
	}
}

func (h *HttpEndpoints) AddCalculatorAPI(rg *gin.RouterGroup) {
	rg.POST("/evaluate", RequirePayload(), h.evaluate)
	rg.POST("/keys", RequirePayload(), h.pressKeys)
}

type EvaluateRequest struct {
	Expression string `json:"expression"`
}

type EvaluateResponse struct {
	Value   float64 `json:"value"`
	Display string  `json:"display"`
}

func (h *HttpEndpoints) evaluate(c *gin.Context) {
	var req EvaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Debug("error parsing request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "error parsing request body"})
		return
	}

	res := h.evaluator.Evaluate(req.Expression)
	if !res.OK() {
		slog.Debug("evaluation failed", slog.String("kind", res.Err.Kind.String()))
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": res.Err.Kind.Message(),
			"kind":  res.Err.Kind.String(),
		})
		return
	}
	c.JSON(http.StatusOK, EvaluateResponse{
		Value:   res.Value,
		Display: h.formatter.Format(res.Value),
	})
}

type KeysRequest struct {
	Keys []string `json:"keys" binding:"required"`
}

func (h *HttpEndpoints) pressKeys(c *gin.Context) {
	var req KeysRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Debug("error parsing request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "error parsing request body"})
		return
	}
	if len(req.Keys) > MaxKeys {
		c.JSON(http.StatusBadRequest, gin.H{"error": "too many keys"})
		return
	}

	keys := make([]domain.Key, 0, len(req.Keys))
	for _, label := range req.Keys {
		k, err := domain.ParseKey(label)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		keys = append(keys, k)
	}

	ctrl := h.newController()
	d := ctrl.Display()
	for _, k := range keys {
		d = ctrl.Press(k)
	}
	c.JSON(http.StatusOK, d)
}

