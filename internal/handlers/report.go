package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elevita-health/elevita-backend/internal/logger"
	"github.com/elevita-health/elevita-backend/internal/services"
)

type ReportHandler struct {
	log           *logger.Logger
	reportService services.ReportService
}

func NewReportHandler(log *logger.Logger, reportService services.ReportService) *ReportHandler {
	return &ReportHandler{log: log.With("handler", "ReportHandler"), reportService: reportService}
}

func (rh *ReportHandler) List(c *gin.Context) {
	reports, err := rh.reportService.ListReports(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, rh.log, err)
		return
	}
	c.JSON(http.StatusOK, reports)
}

func (rh *ReportHandler) Generate(c *gin.Context) {
	var input services.GenerateReportInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadBody(c)
		return
	}
	report, err := rh.reportService.GenerateReport(c.Request.Context(), currentUserID(c), &input)
	if err != nil {
		respondError(c, rh.log, err)
		return
	}
	c.JSON(http.StatusCreated, report)
}
