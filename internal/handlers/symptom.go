package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elevita-health/elevita-backend/internal/logger"
	"github.com/elevita-health/elevita-backend/internal/services"
	"github.com/elevita-health/elevita-backend/internal/types"
)

type SymptomHandler struct {
	log            *logger.Logger
	symptomService services.SymptomService
}

func NewSymptomHandler(log *logger.Logger, symptomService services.SymptomService) *SymptomHandler {
	return &SymptomHandler{log: log.With("handler", "SymptomHandler"), symptomService: symptomService}
}

func (sh *SymptomHandler) List(c *gin.Context) {
	symptoms, err := sh.symptomService.ListSymptoms(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, sh.log, err)
		return
	}
	c.JSON(http.StatusOK, symptoms)
}

func (sh *SymptomHandler) Create(c *gin.Context) {
	var symptom types.Symptom
	if err := c.ShouldBindJSON(&symptom); err != nil {
		respondBadBody(c)
		return
	}
	created, err := sh.symptomService.CreateSymptom(c.Request.Context(), currentUserID(c), &symptom)
	if err != nil {
		respondError(c, sh.log, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (sh *SymptomHandler) Update(c *gin.Context) {
	symptomID, ok := pathID(c)
	if !ok {
		return
	}
	var input services.SymptomUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadBody(c)
		return
	}
	updated, err := sh.symptomService.UpdateSymptom(c.Request.Context(), symptomID, currentUserID(c), &input)
	if err != nil {
		respondError(c, sh.log, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (sh *SymptomHandler) Delete(c *gin.Context) {
	symptomID, ok := pathID(c)
	if !ok {
		return
	}
	if err := sh.symptomService.DeleteSymptom(c.Request.Context(), symptomID, currentUserID(c)); err != nil {
		respondError(c, sh.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
