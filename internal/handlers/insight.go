package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elevita-health/elevita-backend/internal/logger"
	"github.com/elevita-health/elevita-backend/internal/services"
)

type InsightHandler struct {
	log            *logger.Logger
	insightService services.InsightService
}

func NewInsightHandler(log *logger.Logger, insightService services.InsightService) *InsightHandler {
	return &InsightHandler{log: log.With("handler", "InsightHandler"), insightService: insightService}
}

func (ih *InsightHandler) List(c *gin.Context) {
	insights, err := ih.insightService.ListInsights(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, ih.log, err)
		return
	}
	c.JSON(http.StatusOK, insights)
}

func (ih *InsightHandler) Generate(c *gin.Context) {
	insights, err := ih.insightService.GenerateInsights(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, ih.log, err)
		return
	}
	c.JSON(http.StatusOK, insights)
}

func (ih *InsightHandler) MarkRead(c *gin.Context) {
	insightID, ok := pathID(c)
	if !ok {
		return
	}
	if err := ih.insightService.MarkInsightRead(c.Request.Context(), insightID, currentUserID(c)); err != nil {
		respondError(c, ih.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "marked as read"})
}

func (ih *InsightHandler) TranslateTerm(c *gin.Context) {
	var req struct {
		Term string `json:"term"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c)
		return
	}
	translation, err := ih.insightService.TranslateTerm(c.Request.Context(), req.Term)
	if err != nil {
		respondError(c, ih.log, err)
		return
	}
	c.JSON(http.StatusOK, translation)
}
