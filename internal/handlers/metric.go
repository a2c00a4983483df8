package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elevita-health/elevita-backend/internal/logger"
	"github.com/elevita-health/elevita-backend/internal/services"
	"github.com/elevita-health/elevita-backend/internal/types"
)

type HealthMetricHandler struct {
	log           *logger.Logger
	metricService services.HealthMetricService
}

func NewHealthMetricHandler(log *logger.Logger, metricService services.HealthMetricService) *HealthMetricHandler {
	return &HealthMetricHandler{log: log.With("handler", "HealthMetricHandler"), metricService: metricService}
}

func (mh *HealthMetricHandler) List(c *gin.Context) {
	metrics, err := mh.metricService.ListMetrics(c.Request.Context(), currentUserID(c), c.Query("type"))
	if err != nil {
		respondError(c, mh.log, err)
		return
	}
	c.JSON(http.StatusOK, metrics)
}

func (mh *HealthMetricHandler) Create(c *gin.Context) {
	var metric types.HealthMetric
	if err := c.ShouldBindJSON(&metric); err != nil {
		respondBadBody(c)
		return
	}
	created, err := mh.metricService.CreateMetric(c.Request.Context(), currentUserID(c), &metric)
	if err != nil {
		respondError(c, mh.log, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}
