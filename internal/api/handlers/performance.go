package handlers

import (
	"net/http"

	"taskask-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PerformanceHandler handles HTTP requests for the performance rollup
type PerformanceHandler struct {
	performanceService service.PerformanceServiceInterface
}

// NewPerformanceHandler creates a new performance handler
func NewPerformanceHandler(performanceService service.PerformanceServiceInterface) *PerformanceHandler {
	return &PerformanceHandler{
		performanceService: performanceService,
	}
}

// GetPerformanceSummary handles GET /admin/performance
// @Summary Cross-task completion statistics (admin)
// @Description Global and per-assignee completion counts and rates, per-user entries sorted by rate descending
// @Tags admin
// @Produce json
// @Success 200 {object} service.PerformanceSummary "Performance summary"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /admin/performance [get]
func (h *PerformanceHandler) GetPerformanceSummary(c *gin.Context) {
	summary, err := h.performanceService.GetSummary()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
