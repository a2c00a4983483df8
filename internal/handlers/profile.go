package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elevita-health/elevita-backend/internal/logger"
	"github.com/elevita-health/elevita-backend/internal/services"
	"github.com/elevita-health/elevita-backend/internal/types"
)

type HealthProfileHandler struct {
	log            *logger.Logger
	profileService services.HealthProfileService
}

func NewHealthProfileHandler(log *logger.Logger, profileService services.HealthProfileService) *HealthProfileHandler {
	return &HealthProfileHandler{log: log.With("handler", "HealthProfileHandler"), profileService: profileService}
}

func (hh *HealthProfileHandler) Get(c *gin.Context) {
	profile, err := hh.profileService.GetProfile(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, hh.log, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// Save upserts: first write creates the row, later writes replace it.
func (hh *HealthProfileHandler) Save(c *gin.Context) {
	var profile types.HealthProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		respondBadBody(c)
		return
	}
	saved, err := hh.profileService.SaveProfile(c.Request.Context(), currentUserID(c), &profile)
	if err != nil {
		respondError(c, hh.log, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}
