package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bingo-arena-backend/internal/services"
)

type ReportsHandler struct {
	analytics *services.RevenueAnalytics
	manager   *services.GameSessionManager
}

func NewReportsHandler(analytics *services.RevenueAnalytics, manager *services.GameSessionManager) *ReportsHandler {
	return &ReportsHandler{
		analytics: analytics,
		manager:   manager,
	}
}

func (h *ReportsHandler) DailyRevenue(c *gin.Context) {
	report := h.analytics.CalculateDailyRevenue(h.manager.ListSessions())
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"report":  report,
	})
}

func (h *ReportsHandler) PlayerStats(c *gin.Context) {
	stats := h.analytics.CalculatePlayerStats(h.manager.ListSessions())
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"stats":   stats,
	})
}
