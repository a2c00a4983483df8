package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/elevita-health/elevita-backend/internal/logger"
	"github.com/elevita-health/elevita-backend/internal/services"
	"github.com/elevita-health/elevita-backend/internal/types"
)

type MedicationHandler struct {
	log               *logger.Logger
	medicationService services.MedicationService
}

func NewMedicationHandler(log *logger.Logger, medicationService services.MedicationService) *MedicationHandler {
	return &MedicationHandler{log: log.With("handler", "MedicationHandler"), medicationService: medicationService}
}

func (mh *MedicationHandler) List(c *gin.Context) {
	medications, err := mh.medicationService.ListMedications(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, mh.log, err)
		return
	}
	c.JSON(http.StatusOK, medications)
}

func (mh *MedicationHandler) Create(c *gin.Context) {
	// is_active binds through a pointer so an omitted field defaults to true
	var req struct {
		types.Medication
		IsActive *bool `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c)
		return
	}
	medication := req.Medication
	medication.IsActive = req.IsActive == nil || *req.IsActive
	created, err := mh.medicationService.CreateMedication(c.Request.Context(), currentUserID(c), &medication)
	if err != nil {
		respondError(c, mh.log, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (mh *MedicationHandler) Update(c *gin.Context) {
	medicationID, ok := pathID(c)
	if !ok {
		return
	}
	var input services.MedicationUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadBody(c)
		return
	}
	updated, err := mh.medicationService.UpdateMedication(c.Request.Context(), medicationID, currentUserID(c), &input)
	if err != nil {
		respondError(c, mh.log, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (mh *MedicationHandler) Delete(c *gin.Context) {
	medicationID, ok := pathID(c)
	if !ok {
		return
	}
	if err := mh.medicationService.DeleteMedication(c.Request.Context(), medicationID, currentUserID(c)); err != nil {
		respondError(c, mh.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (mh *MedicationHandler) ListLogs(c *gin.Context) {
	medicationID, ok := pathID(c)
	if !ok {
		return
	}
	logs, err := mh.medicationService.ListLogs(c.Request.Context(), currentUserID(c), &medicationID)
	if err != nil {
		respondError(c, mh.log, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

func (mh *MedicationHandler) LogIntake(c *gin.Context) {
	medicationID, ok := pathID(c)
	if !ok {
		return
	}
	var log types.MedicationLog
	if err := c.ShouldBindJSON(&log); err != nil {
		respondBadBody(c)
		return
	}
	created, err := mh.medicationService.LogIntake(c.Request.Context(), currentUserID(c), medicationID, &log)
	if err != nil {
		respondError(c, mh.log, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (mh *MedicationHandler) Adherence(c *gin.Context) {
	medicationID, ok := pathID(c)
	if !ok {
		return
	}
	days, _ := strconv.Atoi(c.Query("days"))
	rate, err := mh.medicationService.Adherence(c.Request.Context(), currentUserID(c), medicationID, days)
	if err != nil {
		respondError(c, mh.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"adherence_rate": rate})
}
