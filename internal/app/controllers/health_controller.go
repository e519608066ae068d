package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eduadvisor/backoffice/internal/app/models/dto"
	"github.com/eduadvisor/backoffice/internal/app/repositories"
	"github.com/eduadvisor/backoffice/internal/pkg/logger"
)

// HealthController reports service liveness
type HealthController struct {
	store repositories.Pinger
}

// NewHealthController creates a new HealthController
func NewHealthController(store repositories.Pinger) *HealthController {
	return &HealthController{store: store}
}

// Health pings the backing store
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	if err := c.store.Ping(ctx.Request.Context()); err != nil {
		logger.Warn().Err(err).Msg("Health check: database unreachable")
		ctx.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Status: "degraded", Database: "unreachable"})
		return
	}
	ctx.JSON(http.StatusOK, dto.HealthResponse{Status: "ok", Database: "ok"})
}
