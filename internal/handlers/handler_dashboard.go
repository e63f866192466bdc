package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/transbook/transbook-backend/internal/core/ports/services"
)

type dashboardHandler struct {
	dashboardService portssvc.DashboardSvcFacade
}

func newDashboardHandler(ds portssvc.DashboardSvcFacade) *dashboardHandler {
	return &dashboardHandler{dashboardService: ds}
}

func registerDashboardRoutes(rg *gin.RouterGroup, dashboardService portssvc.DashboardSvcFacade) {
	h := newDashboardHandler(dashboardService)

	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("/stats", h.getStats)
	}
}

// getStats godoc
// @Summary Dashboard statistics
// @Description Computes the calling account's dashboard snapshot: total revenue from completed trips, active trip count, pending invoice payments and fleet availability
// @Tags dashboard
// @Produce  json
// @Success 200 {object} domain.DashboardStats
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboard/stats [get]
func (h *dashboardHandler) getStats(c *gin.Context) {
	ownerID, ok := callerID(c)
	if !ok {
		return
	}

	stats, err := h.dashboardService.GetStats(c.Request.Context(), ownerID)
	if err != nil {
		respondServiceError(c, err, "Dashboard")
		return
	}
	c.JSON(http.StatusOK, stats)
}
