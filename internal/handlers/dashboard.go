package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/elevita-health/elevita-backend/internal/logger"
	"github.com/elevita-health/elevita-backend/internal/services"
)

type DashboardHandler struct {
	log              *logger.Logger
	dashboardService services.DashboardService
}

func NewDashboardHandler(log *logger.Logger, dashboardService services.DashboardService) *DashboardHandler {
	return &DashboardHandler{log: log.With("handler", "DashboardHandler"), dashboardService: dashboardService}
}

func (dh *DashboardHandler) Stats(c *gin.Context) {
	stats, err := dh.dashboardService.GetStats(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, dh.log, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (dh *DashboardHandler) Timeline(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	events, err := dh.dashboardService.GetTimeline(c.Request.Context(), currentUserID(c), limit)
	if err != nil {
		respondError(c, dh.log, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

func (dh *DashboardHandler) Reminders(c *gin.Context) {
	reminders, err := dh.dashboardService.TodayReminders(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, dh.log, err)
		return
	}
	c.JSON(http.StatusOK, reminders)
}
